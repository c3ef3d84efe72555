package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// Vehicle is one fleet vehicle. Plain CRUD record, no business rules.
type Vehicle struct {
	ID           uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	Registration string    `gorm:"column:registration;size:20;uniqueIndex;not null" json:"registration"`
	Make         string    `gorm:"column:make;size:100;not null" json:"make"`
	Model        string    `gorm:"column:model;size:100;not null" json:"model"`
	Year         int       `gorm:"column:year" json:"year,omitempty"`
	Status       string    `gorm:"column:status;size:30;not null;default:'active'" json:"status"`
	Notes        *string   `gorm:"column:notes" json:"notes,omitempty"`

	CreatedAt time.Time      `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt time.Time      `gorm:"autoUpdateTime" json:"updatedAt"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}

// Driver is one registered driver.
type Driver struct {
	ID            uuid.UUID   `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	FullName      string      `gorm:"column:full_name;size:100;not null" json:"fullName"`
	Phone         string      `gorm:"column:phone;size:20" json:"phone,omitempty"`
	LicenceNumber string      `gorm:"column:licence_number;size:50;not null" json:"licenceNumber"`
	LicenceExpiry *time.Time  `gorm:"column:licence_expiry" json:"licenceExpiry,omitempty"`
	Categories    StringArray `gorm:"column:categories;type:jsonb" json:"categories"`

	CreatedAt time.Time      `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt time.Time      `gorm:"autoUpdateTime" json:"updatedAt"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}

// VehicleChecklist is one completed walk-around checklist submission.
// Items is a JSON array of {name, status, comment}.
type VehicleChecklist struct {
	ID          uuid.UUID      `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	VehicleID   uuid.UUID      `gorm:"type:uuid;index;not null" json:"vehicleId"`
	Vehicle     *Vehicle       `gorm:"foreignKey:VehicleID" json:"vehicle,omitempty"`
	CompletedBy string         `gorm:"column:completed_by;size:100;not null" json:"completedBy"`
	Items       datatypes.JSON `gorm:"column:items;type:jsonb;not null" json:"items"`
	Defects     *string        `gorm:"column:defects" json:"defects,omitempty"`
	CompletedAt JSONTime       `gorm:"column:completed_at;not null" json:"completedAt"`

	CreatedAt time.Time      `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt time.Time      `gorm:"autoUpdateTime" json:"updatedAt"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}

// VehicleInventoryItem is one stocked item carried in a vehicle
// (first aid kit, fire extinguisher, ...).
type VehicleInventoryItem struct {
	ID         uuid.UUID  `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	VehicleID  uuid.UUID  `gorm:"type:uuid;index;not null" json:"vehicleId"`
	Vehicle    *Vehicle   `gorm:"foreignKey:VehicleID" json:"vehicle,omitempty"`
	Name       string     `gorm:"column:name;size:100;not null" json:"name"`
	Quantity   int        `gorm:"column:quantity;not null;default:1" json:"quantity"`
	ExpiryDate *time.Time `gorm:"column:expiry_date" json:"expiryDate,omitempty"`

	CreatedAt time.Time      `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt time.Time      `gorm:"autoUpdateTime" json:"updatedAt"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}
