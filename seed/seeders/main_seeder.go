package seeders

import (
	log "github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// MainSeeder coordinates all seeding operations
type MainSeeder struct {
	db *gorm.DB
}

// NewMainSeeder creates a new main seeder
func NewMainSeeder(db *gorm.DB) *MainSeeder {
	return &MainSeeder{db: db}
}

// SeedAll runs all seeders in the correct order
func (s *MainSeeder) SeedAll() error {
	log.Info("Starting database seeding...")

	// Subjects and topics first, games reference subjects
	if err := s.SeedSubjectsOnly(); err != nil {
		log.WithError(err).Error("Subject seeding failed")
		return err
	}

	gameSeeder := NewGameSeeder(s.db)
	if err := gameSeeder.SeedGames(); err != nil {
		log.WithError(err).Error("Game seeding failed")
		return err
	}

	if err := gameSeeder.SeedAchievements(); err != nil {
		log.WithError(err).Error("Achievement seeding failed")
		return err
	}

	if err := s.SeedAdminOnly(); err != nil {
		log.WithError(err).Error("Admin seeding failed")
		return err
	}

	log.Info("Database seeding completed successfully!")
	return nil
}

// SeedSubjectsOnly seeds only subjects and topics
func (s *MainSeeder) SeedSubjectsOnly() error {
	return NewCatalogSeeder(s.db).SeedSubjects()
}

// SeedGamesOnly seeds only games
func (s *MainSeeder) SeedGamesOnly() error {
	return NewGameSeeder(s.db).SeedGames()
}

// SeedAchievementsOnly seeds only achievements
func (s *MainSeeder) SeedAchievementsOnly() error {
	return NewGameSeeder(s.db).SeedAchievements()
}

// SeedAdminOnly seeds only the admin account
func (s *MainSeeder) SeedAdminOnly() error {
	return NewAdminSeeder(s.db).SeedAdmin()
}
