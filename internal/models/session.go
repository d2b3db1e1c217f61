package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Session stores an authenticated admin's server-side session. Absence of a
// row (or an expired one) means unauthenticated.
type Session struct {
	Token     string    `gorm:"primaryKey;size:36" json:"-"`
	AdminID   uint      `gorm:"index;not null" json:"admin_id"`
	ExpiresAt time.Time `gorm:"index;not null" json:"expires_at"`
	CreatedAt time.Time `json:"created_at"`
}

// CreateSession inserts a new session row for the admin and returns it.
func CreateSession(db *gorm.DB, adminID uint, ttl time.Duration) (*Session, error) {
	session := Session{
		Token:     uuid.New().String(),
		AdminID:   adminID,
		ExpiresAt: time.Now().Add(ttl),
	}
	if err := db.Create(&session).Error; err != nil {
		return nil, err
	}
	return &session, nil
}

// LookupSession resolves a token to its session row. Expired sessions are
// treated as not found.
func LookupSession(db *gorm.DB, token string) (*Session, error) {
	var session Session
	if err := db.Where("token = ? AND expires_at > ?", token, time.Now()).
		First(&session).Error; err != nil {
		return nil, err
	}
	return &session, nil
}

// DestroySession deletes the session row for the token. Deleting a token
// that no longer exists is not an error.
func DestroySession(db *gorm.DB, token string) error {
	return db.Delete(&Session{}, "token = ?", token).Error
}
