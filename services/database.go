package services

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/alphabatem/common/context"
	"github.com/google/uuid"
	"github.com/lac-hong-legacy/edu_api/model"
	"github.com/lac-hong-legacy/edu_api/services/repositories"
	log "github.com/sirupsen/logrus"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/mysql"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

const (
	DriverPostgres = "postgres"
	DriverMySQL    = "mysql"
	DriverSqlite   = "sqlite"
)

type DatabaseService struct {
	context.DefaultService
	db *gorm.DB

	driver   string
	database string

	users     *repositories.UserRepository
	students  *repositories.StudentRepository
	games     *repositories.GameRepository
	analytics *repositories.AnalyticRepository
}

const DATABASE_SVC = "database_svc"

func (ds DatabaseService) Id() string {
	return DATABASE_SVC
}

func (ds *DatabaseService) Configure(ctx *context.Context) error {
	ds.driver = strings.ToLower(os.Getenv("DB_DRIVER"))
	if ds.driver == "" {
		ds.driver = DriverPostgres
	}
	ds.database = DatabaseDSN(ds.driver)

	return ds.DefaultService.Configure(ctx)
}

// DatabaseDSN builds a connection string for driver from DATABASE_URL or
// the individual DB_* variables.
func DatabaseDSN(driver string) string {
	if dsn := os.Getenv("DATABASE_URL"); dsn != "" {
		return dsn
	}

	env := func(key, fallback string) string {
		if v := os.Getenv(key); v != "" {
			return v
		}
		return fallback
	}

	switch driver {
	case DriverSqlite:
		return env("DB_NAME", "edu_api.db")
	case DriverMySQL:
		return fmt.Sprintf("%s:%s@tcp(%s:%s)/%s?charset=utf8mb4&parseTime=True&loc=UTC",
			env("DB_USER", "root"), env("DB_PASSWORD", ""), env("DB_HOST", "localhost"),
			env("DB_PORT", "3306"), env("DB_NAME", "edu_platform"))
	default:
		return fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%s sslmode=%s TimeZone=%s",
			env("DB_HOST", "localhost"), env("DB_USER", "postgres"), env("DB_PASSWORD", "postgres"),
			env("DB_NAME", "edu_platform"), env("DB_PORT", "5432"), env("DB_SSLMODE", "disable"),
			env("DB_TIMEZONE", "UTC"))
	}
}

// Dialector picks the gorm driver for a DB_DRIVER value.
func Dialector(driver, dsn string) (gorm.Dialector, error) {
	switch driver {
	case DriverPostgres:
		return postgres.Open(dsn), nil
	case DriverMySQL:
		return mysql.Open(dsn), nil
	case DriverSqlite:
		return sqlite.Open(dsn), nil
	default:
		return nil, fmt.Errorf("unsupported DB_DRIVER %q", driver)
	}
}

func (ds *DatabaseService) Start() (err error) {
	dialector, err := Dialector(ds.driver, ds.database)
	if err != nil {
		return err
	}

	// Retry connection with exponential backoff
	maxRetries := 10
	retryDelay := time.Second

	for attempt := 1; attempt <= maxRetries; attempt++ {
		log.Printf("Attempting to connect to %s database (attempt %d/%d)...", ds.driver, attempt, maxRetries)

		ds.db, err = gorm.Open(dialector, &gorm.Config{
			Logger:         logger.Default.LogMode(logger.Error),
			TranslateError: true,
		})

		if err == nil {
			sqlDB, dbErr := ds.db.DB()
			if dbErr == nil {
				pingErr := sqlDB.Ping()
				if pingErr == nil {
					log.Println("Successfully connected to database")
					break
				}
				err = pingErr
			} else {
				err = dbErr
			}
		}

		if attempt == maxRetries {
			log.Printf("Failed to connect to database after %d attempts: %v", maxRetries, err)
			return err
		}

		log.Printf("Database connection failed: %v. Retrying in %v...", err, retryDelay)
		time.Sleep(retryDelay)

		retryDelay *= 2
		if retryDelay > 10*time.Second {
			retryDelay = 10 * time.Second
		}
	}

	if ds.driver == DriverSqlite {
		// One writer at a time keeps SQLite from returning SQLITE_BUSY.
		if sqlDB, err := ds.db.DB(); err == nil {
			sqlDB.SetMaxOpenConns(1)
		}
	}

	if err = ds.db.AutoMigrate(model.AllModels()...); err != nil {
		log.Printf("Failed to migrate database: %v", err)
		return err
	}

	if err = ds.createDefaultAdmin(); err != nil {
		log.Printf("Failed to seed initial data: %v", err)
		return err
	}

	ds.initRepositories()

	log.Println("Database connected and migrated successfully")
	return nil
}

// NewDatabaseService wraps an open, migrated connection.
func NewDatabaseService(db *gorm.DB) *DatabaseService {
	ds := &DatabaseService{db: db}
	ds.initRepositories()
	return ds
}

func (ds *DatabaseService) initRepositories() {
	ds.users = repositories.NewUserRepository(ds.db)
	ds.students = repositories.NewStudentRepository(ds.db)
	ds.games = repositories.NewGameRepository(ds.db)
	ds.analytics = repositories.NewAnalyticRepository(ds.db)
}

func (ds *DatabaseService) Shutdown() {
	if ds.db == nil {
		return
	}
	sqlDB, err := ds.db.DB()
	if err == nil {
		sqlDB.Close()
	}
}

func (ds *DatabaseService) Users() *repositories.UserRepository {
	return ds.users
}

func (ds *DatabaseService) Students() *repositories.StudentRepository {
	return ds.students
}

func (ds *DatabaseService) Games() *repositories.GameRepository {
	return ds.games
}

func (ds *DatabaseService) Analytics() *repositories.AnalyticRepository {
	return ds.analytics
}

// IsDuplicateKey reports whether err is a unique constraint violation on
// any of the supported drivers.
func IsDuplicateKey(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	msg := err.Error()
	return strings.Contains(msg, "duplicate key value violates unique constraint") ||
		strings.Contains(msg, "UNIQUE constraint failed") ||
		strings.Contains(msg, "Duplicate entry")
}

// createDefaultAdmin makes sure at least one admin can sign in.
func (ds *DatabaseService) createDefaultAdmin() error {
	var count int64
	if err := ds.db.Model(&model.User{}).Where("role = ?", model.RoleAdmin).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	email := os.Getenv("ADMIN_EMAIL")
	if email == "" {
		email = "admin@eduplatform.com"
	}
	password := os.Getenv("ADMIN_PASSWORD")
	if password == "" {
		password = "admin123"
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), bcryptCost())
	if err != nil {
		return err
	}

	now := time.Now()
	admin := &model.User{
		ID:            uuid.Must(uuid.NewV7()).String(),
		Username:      "admin",
		Email:         strings.ToLower(email),
		PasswordHash:  string(hashedPassword),
		Role:          model.RoleAdmin,
		FirstName:     "Admin",
		LastName:      "User",
		IsActive:      true,
		EmailVerified: true,
		CreatedAt:     now,
		UpdatedAt:     now,
	}

	if err := ds.db.Create(admin).Error; err != nil {
		log.Printf("Failed to create admin user: %v", err)
		return err
	}

	log.WithField("email", admin.Email).Warn("Default admin user created, change its password")
	return nil
}
