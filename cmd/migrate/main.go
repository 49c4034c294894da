package main

import (
	"context"
	"flag"
	"log"
	"time"

	"github.com/joho/godotenv"
	migrate "github.com/rubenv/sql-migrate"

	"github.com/johnquangdev/agendacraft/internal/infrastructure/database"
	"github.com/johnquangdev/agendacraft/pkg/config"
)

func main() {
	direction := flag.String("direction", "up", "migration direction: up or down")
	steps := flag.Int("steps", 0, "maximum migrations to apply (0 = all)")
	flag.Parse()

	var dir migrate.MigrationDirection
	switch *direction {
	case "up":
		dir = migrate.Up
	case "down":
		dir = migrate.Down
	default:
		log.Fatalf("Unknown direction %q, expected up or down", *direction)
	}

	// Load .env file if exists
	_ = godotenv.Load()

	// The migrator only needs the database section, so the full
	// application validation (API keys etc.) is skipped here.
	cfg, err := config.FromEnv()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	db, err := database.NewPostgresDB(context.Background(), cfg, 30*time.Second)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer database.CloseDB(db)

	log.Println("✅ Database connected successfully")

	// Get the underlying SQL database connection from GORM
	sqlDB, err := db.DB()
	if err != nil {
		log.Fatalf("Failed to get database connection: %v", err)
	}

	log.Printf("🔄 Applying embedded migrations (%s)...", *direction)
	n, err := migrate.ExecMax(sqlDB, "postgres", database.MigrationSource(), dir, *steps)
	if err != nil {
		log.Fatalf("Failed to apply migrations: %v", err)
	}

	log.Printf("✅ Successfully applied %d migration(s)!\n", n)
}
