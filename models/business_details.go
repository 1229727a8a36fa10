package models

import (
	"time"

	"gorm.io/gorm"
)

// BusinessDetails contains information about the provider's business.
// A provider cannot log in until Approved is set by the approval worker.
type BusinessDetails struct {
	gorm.Model
	ProviderID   uint       `json:"provider_id"`
	BusinessName string     `json:"business_name"`
	Description  string     `json:"description"`
	Address      string     `json:"address"`
	City         string     `json:"city"`
	Country      string     `json:"country"`
	PhoneNumber  string     `json:"phone_number"`
	Email        string     `json:"email"`
	Website      string     `json:"website"`
	LogoURL      string     `json:"logo_url"`
	ServiceType  string     `json:"service_type"` // e.g. "carsharing", "detailing"
	Approved     bool       `json:"approved" gorm:"default:false"`
	ApprovedAt   *time.Time `json:"approved_at,omitempty"`
}
