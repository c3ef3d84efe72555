package models

import (
	"time"

	"github.com/google/uuid"
)

// CompanyProfile is the single company record stamped onto rendered
// assessment documents.
type CompanyProfile struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	Name         string    `gorm:"size:255;not null" json:"name"`
	AddressLine1 string    `gorm:"size:255" json:"addressLine1,omitempty"`
	AddressLine2 string    `gorm:"size:255" json:"addressLine2,omitempty"`
	City         string    `gorm:"size:100" json:"city,omitempty"`
	Postcode     string    `gorm:"size:20" json:"postcode,omitempty"`
	Phone        string    `gorm:"size:30" json:"phone,omitempty"`
	Email        string    `gorm:"size:100" json:"email,omitempty"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

func (CompanyProfile) TableName() string {
	return "company_profiles"
}
