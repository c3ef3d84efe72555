package config

import (
	"github.com/go-gormigrate/gormigrate/v2"
	"gorm.io/gorm"
	"p9e.in/safeguard/forms"
	"p9e.in/safeguard/models"
)

func Migrations(db *gorm.DB) error {
	m := gormigrate.New(db, gormigrate.DefaultOptions, []*gormigrate.Migration{
		{
			ID: "20250812_create_core_tables",
			Migrate: func(tx *gorm.DB) error {
				return tx.AutoMigrate(&models.User{}, &models.CompanyProfile{})
			},
		},
		{
			ID: "20250812_create_assessment_table",
			Migrate: func(tx *gorm.DB) error {
				// The assessment table carries one column per fixed
				// field plus the jsonb buckets, so it is created from
				// the form schema rather than a struct.
				return tx.Exec(forms.AssessmentTableSQL()).Error
			},
		},
		{
			ID: "20250902_create_fleet_tables",
			Migrate: func(tx *gorm.DB) error {
				return tx.AutoMigrate(&models.Vehicle{}, &models.Driver{},
					&models.VehicleChecklist{}, &models.VehicleInventoryItem{})
			},
		},
	})
	return m.Migrate()
}
