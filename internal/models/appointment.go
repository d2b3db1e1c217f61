package models

import (
	"time"
)

// DefaultCategory is assigned to appointment rows created before the
// category column existed.
const DefaultCategory = "General"

// Appointment represents a booking request submitted through the public form
type Appointment struct {
	ID              uint      `gorm:"primaryKey" json:"id"`
	FullName        string    `gorm:"size:255;not null" json:"full_name"`
	Phone           string    `gorm:"size:50;not null" json:"phone"`
	Category        string    `gorm:"size:100;not null;default:'General'" json:"category"`
	Service         string    `gorm:"size:100;not null" json:"service"`
	AppointmentDate string    `gorm:"type:date;not null" json:"appointment_date"`
	AppointmentTime string    `gorm:"type:time;not null" json:"appointment_time"`
	CreatedAt       time.Time `gorm:"autoCreateTime" json:"created_at"`
}
