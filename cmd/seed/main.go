package main

import (
	"context"
	"log"
	"os"

	"staff-scheduler-api/config"
	"staff-scheduler-api/controllers"
	"staff-scheduler-api/store"

	"github.com/joho/godotenv"
)

// Seeds the configured database with demo data: a small crew, four
// projects, a month of assignments and an admin login. Intended for fresh
// development databases; it does not check for existing rows.
func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	config.InitDB()
	s := store.NewGormStore(config.DB)

	data := store.Fixtures()

	// SEED_ADMIN_PASSWORD overrides the fixture admin password.
	if password := os.Getenv("SEED_ADMIN_PASSWORD"); password != "" {
		hash, err := controllers.HashPassword(password)
		if err != nil {
			log.Fatalf("Failed to hash admin password: %v", err)
		}
		for i := range data.Users {
			data.Users[i].PasswordHash = hash
		}
	}

	if err := store.Seed(context.Background(), s, data); err != nil {
		log.Fatalf("Seeding failed: %v", err)
	}

	log.Printf("Seeded %d staff, %d projects, %d schedules, %d job costs, %d workdays, %d users",
		len(data.Staff), len(data.Projects), len(data.Schedules),
		len(data.JobCosts), len(data.Workdays), len(data.Users))
}
