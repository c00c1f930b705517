package model

import (
	"math"
	"time"
)

const (
	RoleStudent = "student"
	RoleTeacher = "teacher"
	RoleAdmin   = "admin"
)

// User is the credential record. Accounts are deactivated, never deleted.
type User struct {
	ID            string    `json:"id" gorm:"primaryKey;size:36"`
	Username      string    `json:"username" gorm:"uniqueIndex;not null;size:100"`
	Email         string    `json:"email" gorm:"uniqueIndex;not null;size:100"`
	PasswordHash  string    `json:"-" gorm:"not null"`
	Role          string    `json:"role" gorm:"not null;size:20;index"`
	FirstName     string    `json:"firstName" gorm:"not null;size:50"`
	LastName      string    `json:"lastName" gorm:"not null;size:50"`
	AvatarURL     string    `json:"avatarUrl,omitempty" gorm:"size:255"`
	IsActive      bool      `json:"isActive" gorm:"not null"`
	EmailVerified bool      `json:"emailVerified" gorm:"not null"`
	CreatedAt     time.Time `json:"createdAt"`
	UpdatedAt     time.Time `json:"updatedAt"`
}

// Student extends a User with role=student. Points and level are only
// mutated through the ledger's award primitive.
type Student struct {
	ID           string     `json:"id" gorm:"primaryKey;size:36"`
	UserID       string     `json:"userId" gorm:"uniqueIndex;not null;size:36"`
	GradeLevel   int        `json:"gradeLevel" gorm:"not null"`
	CurrentLevel int        `json:"currentLevel" gorm:"not null"`
	TotalPoints  int        `json:"totalPoints" gorm:"not null;index"`
	DailyPoints  int        `json:"dailyPoints" gorm:"not null"`
	StreakDays   int        `json:"streakDays" gorm:"not null"`
	LastLogin    *time.Time `json:"lastLogin,omitempty"`
	CreatedAt    time.Time  `json:"createdAt"`
	UpdatedAt    time.Time  `json:"updatedAt"`
}

// UserWithStudent is the joined read model used by auth and admin queries.
// Student columns are nil for teachers and admins.
type UserWithStudent struct {
	User
	StudentID    *string    `json:"studentId,omitempty"`
	GradeLevel   *int       `json:"grade,omitempty"`
	CurrentLevel *int       `json:"currentLevel,omitempty"`
	TotalPoints  *int       `json:"totalPoints,omitempty"`
	DailyPoints  *int       `json:"dailyPoints,omitempty"`
	StreakDays   *int       `json:"streakDays,omitempty"`
	LastLogin    *time.Time `json:"lastLogin,omitempty"`
}

// LevelFor derives the level from a points total.
func LevelFor(totalPoints int) int {
	if totalPoints < 0 {
		totalPoints = 0
	}
	return totalPoints/100 + 1
}

// NextStreak applies a login at now to a streak last touched at last:
// same day keeps it, the following day extends it, any gap restarts at 1.
func NextStreak(current int, last *time.Time, now time.Time) int {
	if last == nil || current <= 0 {
		return 1
	}

	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	l := last.In(now.Location())
	lastDay := time.Date(l.Year(), l.Month(), l.Day(), 0, 0, 0, 0, now.Location())

	switch int(math.Round(today.Sub(lastDay).Hours() / 24)) {
	case 0:
		return current
	case 1:
		return current + 1
	default:
		return 1
	}
}
