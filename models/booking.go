package models

import (
	"gorm.io/gorm"
)

type BookingStatus string

const (
	BookingConfirmed BookingStatus = "confirmed"
)

type PaymentMethod string

const (
	PaymentCard   PaymentMethod = "card"
	PaymentPayPal PaymentMethod = "paypal"
	PaymentMobile PaymentMethod = "mobile"
)

// PaymentMethodDisplay maps a payment method to its human-readable label
// used in booking summaries and confirmation emails.
func PaymentMethodDisplay(m PaymentMethod) string {
	switch m {
	case PaymentCard:
		return "Credit/Debit Card"
	case PaymentPayPal:
		return "PayPal"
	case PaymentMobile:
		return "Mobile Money"
	}
	return "Not selected"
}

// Booking is a finalized booking record. Records are append-only: the
// system never updates or deletes them after confirmation.
type Booking struct {
	gorm.Model
	BookingID       string        `json:"booking_id" gorm:"uniqueIndex"`
	Provider        string        `json:"provider"`
	Service         string        `json:"service"`
	Price           float64       `json:"price"`
	PaymentMethod   PaymentMethod `json:"payment_method"`
	PaymentRef      string        `json:"payment_ref,omitempty"`
	FullName        string        `json:"full_name"`
	Email           string        `json:"email"`
	Phone           string        `json:"phone"`
	Address         string        `json:"address"`
	ServiceDate     string        `json:"service_date"` // "YYYY-MM-DD"
	SpecialRequests string        `json:"special_requests"`
	Status          BookingStatus `json:"status"`
	CustomerID      uint          `json:"customer_id"`
	Customer        User          `json:"customer,omitempty" gorm:"foreignKey:CustomerID"`
}

func (b *Booking) BeforeCreate(tx *gorm.DB) error {
	if b.Status == "" {
		b.Status = BookingConfirmed
	}
	return nil
}
