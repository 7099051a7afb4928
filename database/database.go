package database

import (
	"fmt"
	"log"
	"os"

	"github.com/eklipse1999/dating-platform-sub000/internal/domain/billing"
	"github.com/eklipse1999/dating-platform-sub000/internal/domain/events"
	"github.com/eklipse1999/dating-platform-sub000/internal/domain/matches"
	"github.com/eklipse1999/dating-platform-sub000/internal/domain/users"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

var DB *gorm.DB

func InitDB() {
	dsn := os.Getenv("DB_URL")
	if dsn == "" {
		log.Fatal("❌ DB_URL not set")
	}

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatal("❌ Failed to connect to database:", err)
	}

	DB = db

	if err := DB.AutoMigrate(
		// core
		&users.User{},
		&users.VerificationToken{},
		&billing.PointPack{},
		&billing.Payment{},

		// matching
		&matches.Like{},
		&matches.Match{},
		&matches.Message{},
		&matches.DateRequest{},

		// events
		&events.Event{},
		&events.RSVP{},
	); err != nil {
		log.Fatal("❌ AutoMigrate error:", err)
	}

	fmt.Println("✅ Connected and migrated successfully")
}
