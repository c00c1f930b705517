package seeders

import (
	"os"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/lac-hong-legacy/edu_api/model"
	log "github.com/sirupsen/logrus"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// AdminSeeder handles seeding admin users
type AdminSeeder struct {
	db *gorm.DB
}

// NewAdminSeeder creates a new admin seeder
func NewAdminSeeder(db *gorm.DB) *AdminSeeder {
	return &AdminSeeder{db: db}
}

// SeedAdmin creates the admin from ADMIN_EMAIL and ADMIN_PASSWORD unless
// an account with that email exists.
func (s *AdminSeeder) SeedAdmin() error {
	email := strings.ToLower(strings.TrimSpace(os.Getenv("ADMIN_EMAIL")))
	if email == "" {
		email = "admin@eduplatform.com"
	}
	password := os.Getenv("ADMIN_PASSWORD")
	if password == "" {
		password = "admin123"
	}

	var count int64
	if err := s.db.Model(&model.User{}).Where("email = ?", email).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		log.WithField("email", email).Info("Admin user already exists, skipping admin seeding")
		return nil
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	now := time.Now()
	admin := model.User{
		ID:            uuid.Must(uuid.NewV7()).String(),
		Username:      "admin",
		Email:         email,
		PasswordHash:  string(hashedPassword),
		Role:          model.RoleAdmin,
		FirstName:     "Admin",
		LastName:      "User",
		IsActive:      true,
		EmailVerified: true,
		CreatedAt:     now,
		UpdatedAt:     now,
	}

	if err := s.db.Create(&admin).Error; err != nil {
		log.WithError(err).Error("Error creating admin user")
		return err
	}

	log.WithField("email", admin.Email).Warn("Created admin user, change its password")
	return nil
}
