package models

import (
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// SeedAdmin ensures the admins table exists and inserts an admin with the
// given credentials, doing nothing if the username is already taken.
func SeedAdmin(db *gorm.DB, username, password string) error {
	if err := db.AutoMigrate(&Admin{}); err != nil {
		return err
	}

	admin := Admin{Username: username}
	if err := admin.SetPassword(password); err != nil {
		return err
	}

	return db.Clauses(clause.OnConflict{DoNothing: true}).Create(&admin).Error
}
