// Command seedadmin creates the first admin account. It is meant to be run
// once per deployment:
//
//	seedadmin <username> <password>
//
// Seeding an existing username is a no-op. Only missing arguments produce a
// non-zero exit status; store errors are reported on stderr but the process
// still exits 0.
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/joho/godotenv"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"

	"appointment-booking-server/internal/config"
	"appointment-booking-server/internal/models"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr io.Writer) int {
	if len(args) < 2 {
		fmt.Fprintln(stderr, "Usage: seedadmin <username> <password>")
		return 1
	}
	username, password := args[0], args[1]

	_ = godotenv.Load()

	cfg, err := config.LoadConfig()
	if err != nil {
		fmt.Fprintf(stderr, "Error loading config: %v\n", err)
		return 0
	}

	db, err := gorm.Open(mysql.Open(cfg.Database.DSN), &gorm.Config{})
	if err != nil {
		fmt.Fprintf(stderr, "Error connecting to database: %v\n", err)
		return 0
	}

	if err := models.SeedAdmin(db, username, password); err != nil {
		fmt.Fprintf(stderr, "Error seeding admin: %v\n", err)
		return 0
	}

	fmt.Fprintf(stdout, "Admin user '%s' seeded successfully.\n", username)
	return 0
}
