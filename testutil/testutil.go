package testutil

import (
	"fmt"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/lac-hong-legacy/edu_api/model"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormLogger "gorm.io/gorm/logger"
)

// DB opens a private in-memory SQLite database with every model migrated.
// Each call gets its own database so tests can run in parallel.
func DB(tb testing.TB) *gorm.DB {
	tb.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared&_foreign_keys=1", uuid.NewString())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: gormLogger.Default.LogMode(gormLogger.Silent),
	})
	if err != nil {
		tb.Fatalf("open test db: %v", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		tb.Fatalf("test db handle: %v", err)
	}
	sqlDB.SetMaxOpenConns(1)
	tb.Cleanup(func() {
		_ = sqlDB.Close()
	})

	if err := db.AutoMigrate(model.AllModels()...); err != nil {
		tb.Fatalf("migrate test db: %v", err)
	}
	return db
}

func SeedStudent(tb testing.TB, db *gorm.DB, first, last string, totalPoints int) (*model.User, *model.Student) {
	tb.Helper()
	now := time.Now()

	u := &model.User{
		ID:            uuid.NewString(),
		Username:      fmt.Sprintf("%s%s%d", first, last, now.UnixNano()),
		Email:         fmt.Sprintf("%s.%s.%s@example.com", first, last, uuid.NewString()[:8]),
		PasswordHash:  "x",
		Role:          model.RoleStudent,
		FirstName:     first,
		LastName:      last,
		IsActive:      true,
		EmailVerified: true,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	if err := db.Create(u).Error; err != nil {
		tb.Fatalf("seed user: %v", err)
	}

	s := &model.Student{
		ID:           uuid.NewString(),
		UserID:       u.ID,
		GradeLevel:   4,
		CurrentLevel: model.LevelFor(totalPoints),
		TotalPoints:  totalPoints,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := db.Create(s).Error; err != nil {
		tb.Fatalf("seed student: %v", err)
	}
	return u, s
}

func SeedUser(tb testing.TB, db *gorm.DB, email, role string) *model.User {
	tb.Helper()
	now := time.Now()
	u := &model.User{
		ID:            uuid.NewString(),
		Username:      "user" + uuid.NewString()[:8],
		Email:         email,
		PasswordHash:  "x",
		Role:          role,
		FirstName:     "Test",
		LastName:      "User",
		IsActive:      true,
		EmailVerified: true,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	if err := db.Create(u).Error; err != nil {
		tb.Fatalf("seed user: %v", err)
	}
	return u
}

func SeedTopic(tb testing.TB, db *gorm.DB, subjectName string) (*model.Subject, *model.Topic) {
	tb.Helper()
	now := time.Now()

	subject := &model.Subject{
		ID:         uuid.NewString(),
		Name:       subjectName,
		GradeLevel: 1,
		ColorCode:  "#EF4444",
		IsActive:   true,
		CreatedAt:  now,
	}
	if err := db.Create(subject).Error; err != nil {
		tb.Fatalf("seed subject: %v", err)
	}

	topic := &model.Topic{
		ID:              uuid.NewString(),
		SubjectID:       subject.ID,
		Name:            subjectName + " basics",
		DifficultyLevel: "easy",
		IsActive:        true,
		CreatedAt:       now,
	}
	if err := db.Create(topic).Error; err != nil {
		tb.Fatalf("seed topic: %v", err)
	}
	return subject, topic
}

func SeedGame(tb testing.TB, db *gorm.DB, name string, pointsReward int, subjectID *string) *model.Game {
	tb.Helper()
	g := &model.Game{
		ID:              uuid.NewString(),
		Name:            name,
		GameType:        model.GameTypeQuiz,
		SubjectID:       subjectID,
		DifficultyLevel: "easy",
		PointsReward:    pointsReward,
		TimeLimit:       300,
		IsActive:        true,
		CreatedAt:       time.Now(),
	}
	if err := db.Create(g).Error; err != nil {
		tb.Fatalf("seed game: %v", err)
	}
	return g
}
