package models

import (
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
)

// DatabaseConfig holds database configuration
type DatabaseConfig struct {
	DSN string
}

// InitDB opens the MySQL connection and runs migrations. Migration failures
// are returned to the caller so startup can abort before accepting traffic.
func InitDB(config DatabaseConfig) (*gorm.DB, error) {
	db, err := gorm.Open(mysql.Open(config.DSN), &gorm.Config{})
	if err != nil {
		return nil, err
	}

	if err := Migrate(db); err != nil {
		return nil, err
	}

	return db, nil
}

// Migrate creates the tables if they don't exist and applies the guarded
// category migration for appointments tables created before the column was
// introduced.
func Migrate(db *gorm.DB) error {
	hadAppointments := db.Migrator().HasTable(&Appointment{})
	hadCategory := hadAppointments && db.Migrator().HasColumn(&Appointment{}, "category")

	if err := db.AutoMigrate(
		&Appointment{},
		&Admin{},
		&Session{},
	); err != nil {
		return err
	}

	// Backfill rows that predate the category column.
	if hadAppointments && !hadCategory {
		if err := db.Model(&Appointment{}).
			Where("category IS NULL OR category = ''").
			Update("category", DefaultCategory).Error; err != nil {
			return err
		}
	}

	return nil
}
