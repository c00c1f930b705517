package main

import (
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/lac-hong-legacy/edu_api/model"
	"github.com/lac-hong-legacy/edu_api/seed/seeders"
	"github.com/lac-hong-legacy/edu_api/services"
	log "github.com/sirupsen/logrus"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Info("No .env file found, using system environment variables")
	}

	var (
		seedType = flag.String("type", "all", "Type of seeding: all, subjects, games, achievements, admin")
		driver   = flag.String("driver", "", "Database driver (overrides DB_DRIVER env var)")
		dsn      = flag.String("dsn", "", "Database DSN (overrides DATABASE_URL and DB_* env vars)")
		help     = flag.Bool("help", false, "Show help message")
	)
	flag.Parse()

	if *help {
		showHelp()
		return
	}

	dbDriver := strings.ToLower(*driver)
	if dbDriver == "" {
		dbDriver = strings.ToLower(os.Getenv("DB_DRIVER"))
	}
	if dbDriver == "" {
		dbDriver = services.DriverPostgres
	}
	databaseDSN := *dsn
	if databaseDSN == "" {
		databaseDSN = services.DatabaseDSN(dbDriver)
	}

	dialector, err := services.Dialector(dbDriver, databaseDSN)
	if err != nil {
		log.Fatalf("Failed to pick database driver: %v", err)
	}

	db, err := gorm.Open(dialector, &gorm.Config{
		Logger: logger.Default.LogMode(logger.Warn),
	})
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	if err := db.AutoMigrate(model.AllModels()...); err != nil {
		log.Fatalf("Failed to migrate database: %v", err)
	}

	log.WithField("driver", dbDriver).Info("Connected to database")

	mainSeeder := seeders.NewMainSeeder(db)

	steps := map[string]func() error{
		"all":          mainSeeder.SeedAll,
		"subjects":     mainSeeder.SeedSubjectsOnly,
		"games":        mainSeeder.SeedGamesOnly,
		"achievements": mainSeeder.SeedAchievementsOnly,
		"admin":        mainSeeder.SeedAdminOnly,
	}

	step, ok := steps[*seedType]
	if !ok {
		log.Fatalf("Unknown seed type: %s. Use 'all', 'subjects', 'games', 'achievements' or 'admin'", *seedType)
	}

	log.WithField("type", *seedType).Info("Running database seeding...")
	if err := step(); err != nil {
		log.Fatalf("Failed to seed database: %v", err)
	}

	log.Info("Seeding operation completed successfully!")
}

func showHelp() {
	fmt.Println(`
Database Seeding Tool for the EduPlatform API

Usage: go run ./seed [flags]

Flags:
  -type string
        Type of seeding to perform (default "all")
        Options: all, subjects, games, achievements, admin
  -driver string
        postgres, mysql or sqlite (overrides DB_DRIVER)
  -dsn string
        Connection string (overrides DATABASE_URL and DB_*)
  -help
        Show this help message

Examples:
  # Seed everything
  go run ./seed

  # Seed a local sqlite file
  go run ./seed -driver=sqlite -dsn=./edu_api.db

Environment Variables:
  DB_DRIVER      - Database driver (default: postgres)
  DATABASE_URL   - Full connection string
  ADMIN_EMAIL    - Admin account email (default: admin@eduplatform.com)
  ADMIN_PASSWORD - Admin account password (default: admin123)`)
}
