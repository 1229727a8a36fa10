package models

import (
	"fmt"
	"strings"
)

// Wizard steps. The flow is linear: details -> payment -> confirm.
const (
	StepDetails = 1
	StepPayment = 2
	StepConfirm = 3
)

// CustomerDetails holds the step-1 form fields of a draft.
type CustomerDetails struct {
	FullName        string `json:"full_name"`
	Email           string `json:"email"`
	Phone           string `json:"phone"`
	Address         string `json:"address"`
	ServiceDate     string `json:"service_date"` // "YYYY-MM-DD"
	SpecialRequests string `json:"special_requests"`
}

// CardDetails holds the step-2 card fields. Only presence is validated
// here; real verification happens at the payment processor.
type CardDetails struct {
	Number string `json:"number"`
	Expiry string `json:"expiry"`
	CVV    string `json:"cvv"`
}

// BookingDraft is the in-progress booking being built across wizard steps.
// It lives only for the duration of one wizard session and is discarded
// when the wizard is closed.
type BookingDraft struct {
	ID            string          `json:"id"`
	Provider      string          `json:"provider"`
	Service       string          `json:"service"`
	Price         float64         `json:"price"`
	PaymentMethod PaymentMethod   `json:"payment_method,omitempty"`
	Step          int             `json:"step"`
	Details       CustomerDetails `json:"details"`
	Card          CardDetails     `json:"card"`
}

// BookingSummary is the human-readable summary synthesized when the
// draft advances into the confirmation step.
type BookingSummary struct {
	Provider        string  `json:"provider"`
	Service         string  `json:"service"`
	Date            string  `json:"date"`
	Price           float64 `json:"price"`
	FullName        string  `json:"full_name"`
	Email           string  `json:"email"`
	Phone           string  `json:"phone"`
	PaymentMethod   string  `json:"payment_method"`
	SpecialRequests string  `json:"special_requests,omitempty"`
}

// NewBookingDraft creates a draft for the selected provider offer,
// forced to the details step.
func NewBookingDraft(id, provider, service string, price float64) *BookingDraft {
	return &BookingDraft{
		ID:       id,
		Provider: provider,
		Service:  service,
		Price:    price,
		Step:     StepDetails,
	}
}

// ValidateStep checks the form state of the given step. The confirm
// step has no validation of its own.
func (d *BookingDraft) ValidateStep(step int) error {
	switch step {
	case StepDetails:
		return d.validateDetails()
	case StepPayment:
		return d.validatePayment()
	case StepConfirm:
		return nil
	}
	return fmt.Errorf("unknown step %d", step)
}

func (d *BookingDraft) validateDetails() error {
	var missing []string
	if strings.TrimSpace(d.Details.FullName) == "" {
		missing = append(missing, "full_name")
	}
	if strings.TrimSpace(d.Details.Email) == "" {
		missing = append(missing, "email")
	}
	if strings.TrimSpace(d.Details.Phone) == "" {
		missing = append(missing, "phone")
	}
	if strings.TrimSpace(d.Details.ServiceDate) == "" {
		missing = append(missing, "service_date")
	}
	if len(missing) > 0 {
		return fmt.Errorf("please fill in all required fields: %s", strings.Join(missing, ", "))
	}
	return nil
}

func (d *BookingDraft) validatePayment() error {
	switch d.PaymentMethod {
	case PaymentCard:
		if strings.TrimSpace(d.Card.Number) == "" ||
			strings.TrimSpace(d.Card.Expiry) == "" ||
			strings.TrimSpace(d.Card.CVV) == "" {
			return fmt.Errorf("please fill in all card details")
		}
		return nil
	case PaymentPayPal, PaymentMobile:
		return nil
	case "":
		return fmt.Errorf("please select a payment method")
	}
	return fmt.Errorf("unsupported payment method: %s", d.PaymentMethod)
}

// Advance validates the current step and, only on success, moves the
// draft forward to the requested step.
func (d *BookingDraft) Advance(to int) error {
	if to <= d.Step || to > StepConfirm {
		return fmt.Errorf("invalid transition from step %d to %d", d.Step, to)
	}
	if err := d.ValidateStep(d.Step); err != nil {
		return err
	}
	d.Step = to
	return nil
}

// Back moves the draft to an earlier step. Going backward never
// validates.
func (d *BookingDraft) Back(to int) error {
	if to < StepDetails || to >= d.Step {
		return fmt.Errorf("invalid transition from step %d to %d", d.Step, to)
	}
	d.Step = to
	return nil
}

// Summary synthesizes the confirmation summary from the current draft
// and form values.
func (d *BookingDraft) Summary() BookingSummary {
	return BookingSummary{
		Provider:        d.Provider,
		Service:         d.Service,
		Date:            d.Details.ServiceDate,
		Price:           d.Price,
		FullName:        d.Details.FullName,
		Email:           d.Details.Email,
		Phone:           d.Details.Phone,
		PaymentMethod:   PaymentMethodDisplay(d.PaymentMethod),
		SpecialRequests: d.Details.SpecialRequests,
	}
}
