package models

import (
	"path/filepath"
	"testing"
	"time"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(filepath.Join(t.TempDir(), "test.db")), &gorm.Config{})
	if err != nil {
		t.Fatalf("db open: %v", err)
	}
	return db
}

func TestSeedAdminIdempotent(t *testing.T) {
	db := newTestDB(t)

	if err := SeedAdmin(db, "root", "secret"); err != nil {
		t.Fatalf("first seed: %v", err)
	}
	// Seeding the same username again must be a no-op, even with a new password.
	if err := SeedAdmin(db, "root", "other"); err != nil {
		t.Fatalf("second seed: %v", err)
	}

	var count int64
	if err := db.Model(&Admin{}).Count(&count).Error; err != nil {
		t.Fatalf("count: %v", err)
	}
	if count != 1 {
		t.Fatalf("expected exactly one admin, got %d", count)
	}

	var admin Admin
	if err := db.Where("username = ?", "root").First(&admin).Error; err != nil {
		t.Fatalf("lookup: %v", err)
	}
	if !admin.CheckPassword("secret") {
		t.Fatalf("original password no longer valid")
	}
	if admin.CheckPassword("other") {
		t.Fatalf("duplicate seed overwrote the password")
	}
}

func TestAdminPasswordHashing(t *testing.T) {
	var admin Admin
	if err := admin.SetPassword("hunter2"); err != nil {
		t.Fatalf("set password: %v", err)
	}
	if admin.PasswordHash == "hunter2" || admin.PasswordHash == "" {
		t.Fatalf("password stored unhashed")
	}
	if !admin.CheckPassword("hunter2") {
		t.Fatalf("correct password rejected")
	}
	if admin.CheckPassword("hunter3") {
		t.Fatalf("wrong password accepted")
	}
}

func TestSessionLifecycle(t *testing.T) {
	db := newTestDB(t)
	if err := Migrate(db); err != nil {
		t.Fatalf("migrate: %v", err)
	}

	session, err := CreateSession(db, 42, time.Hour)
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if session.Token == "" {
		t.Fatalf("empty token")
	}

	got, err := LookupSession(db, session.Token)
	if err != nil {
		t.Fatalf("lookup: %v", err)
	}
	if got.AdminID != 42 {
		t.Fatalf("expected admin 42, got %d", got.AdminID)
	}

	if err := DestroySession(db, session.Token); err != nil {
		t.Fatalf("destroy: %v", err)
	}
	if _, err := LookupSession(db, session.Token); err == nil {
		t.Fatalf("destroyed session still resolves")
	}

	// Destroying an unknown token is not an error.
	if err := DestroySession(db, "no-such-token"); err != nil {
		t.Fatalf("destroy unknown: %v", err)
	}

	expired, err := CreateSession(db, 42, -time.Hour)
	if err != nil {
		t.Fatalf("create expired: %v", err)
	}
	if _, err := LookupSession(db, expired.Token); err == nil {
		t.Fatalf("expired session still resolves")
	}
}

func TestMigrateAddsCategoryColumn(t *testing.T) {
	db := newTestDB(t)

	// Simulate a table created before the category column existed.
	if err := db.Exec(`CREATE TABLE appointments (
		id integer primary key autoincrement,
		full_name text,
		phone text,
		service text,
		appointment_date text,
		appointment_time text,
		created_at datetime
	)`).Error; err != nil {
		t.Fatalf("create legacy table: %v", err)
	}
	if err := db.Exec(`INSERT INTO appointments (full_name, phone, service, appointment_date, appointment_time)
		VALUES ('Old Row', '555-0100', 'Checkup', '2024-01-01', '09:00')`).Error; err != nil {
		t.Fatalf("insert legacy row: %v", err)
	}

	if err := Migrate(db); err != nil {
		t.Fatalf("migrate: %v", err)
	}

	if !db.Migrator().HasColumn(&Appointment{}, "category") {
		t.Fatalf("category column not added")
	}
	var appointment Appointment
	if err := db.First(&appointment).Error; err != nil {
		t.Fatalf("legacy row lost: %v", err)
	}
	if appointment.Category != DefaultCategory {
		t.Fatalf("expected category %q, got %q", DefaultCategory, appointment.Category)
	}
}
