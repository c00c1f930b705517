// model/content.go
package model

import "time"

const (
	GameTypeQuiz       = "quiz"
	GameTypePuzzle     = "puzzle"
	GameTypeSimulation = "simulation"
	GameTypeAdventure  = "adventure"
	GameTypeStrategy   = "strategy"

	SessionStatusWaiting   = "waiting"
	SessionStatusActive    = "active"
	SessionStatusCompleted = "completed"
	SessionStatusCancelled = "cancelled"

	CriteriaPoints     = "points"
	CriteriaStreak     = "streak"
	CriteriaAccuracy   = "accuracy"
	CriteriaCompletion = "completion"
	CriteriaSocial     = "social"
)

// Subject is a grade-scoped area of study (Mathematics, Science, ...)
type Subject struct {
	ID          string    `json:"id" gorm:"primaryKey;size:36"`
	Name        string    `json:"name" gorm:"not null;size:100"`
	GradeLevel  int       `json:"gradeLevel" gorm:"not null;index"`
	Description string    `json:"description" gorm:"type:text"`
	IconURL     string    `json:"iconUrl,omitempty" gorm:"size:255"`
	ColorCode   string    `json:"colorCode" gorm:"size:7"`
	IsActive    bool      `json:"isActive" gorm:"not null"`
	CreatedAt   time.Time `json:"createdAt"`
}

// Topic belongs to a Subject and is the unit progress is tracked against
type Topic struct {
	ID                string    `json:"id" gorm:"primaryKey;size:36"`
	SubjectID         string    `json:"subjectId" gorm:"not null;index;size:36"`
	Name              string    `json:"name" gorm:"not null;size:200"`
	Description       string    `json:"description" gorm:"type:text"`
	DifficultyLevel   string    `json:"difficultyLevel" gorm:"size:20"`
	EstimatedDuration int       `json:"estimatedDuration"`
	IsActive          bool      `json:"isActive" gorm:"not null"`
	CreatedAt         time.Time `json:"createdAt"`
}

type Game struct {
	ID              string    `json:"id" gorm:"primaryKey;size:36"`
	Name            string    `json:"name" gorm:"not null;size:100"`
	Description     string    `json:"description" gorm:"type:text"`
	GameType        string    `json:"gameType" gorm:"not null;size:20"`
	SubjectID       *string   `json:"subjectId,omitempty" gorm:"size:36;index"`
	TopicID         *string   `json:"topicId,omitempty" gorm:"size:36"`
	DifficultyLevel string    `json:"difficultyLevel" gorm:"size:20"`
	PointsReward    int       `json:"pointsReward" gorm:"not null"`
	TimeLimit       int       `json:"timeLimit" gorm:"not null"` // seconds
	IsActive        bool      `json:"isActive" gorm:"not null"`
	CreatedAt       time.Time `json:"createdAt"`
}

type GameSession struct {
	ID             string     `json:"id" gorm:"primaryKey;size:36"`
	GameID         string     `json:"gameId" gorm:"not null;index;size:36"`
	SessionCode    string     `json:"sessionCode" gorm:"uniqueIndex;not null;size:20"`
	Status         string     `json:"status" gorm:"not null;size:20;index"`
	TotalQuestions int        `json:"totalQuestions"`
	TimeRemaining  int        `json:"timeRemaining"`
	CreatedBy      string     `json:"createdBy" gorm:"not null;size:36"`
	StartedAt      *time.Time `json:"startedAt,omitempty"`
	EndedAt        *time.Time `json:"endedAt,omitempty"`
	CreatedAt      time.Time  `json:"createdAt"`
}

type GameParticipant struct {
	ID             string    `json:"id" gorm:"primaryKey;size:36"`
	SessionID      string    `json:"sessionId" gorm:"not null;uniqueIndex:idx_session_user;size:36"`
	UserID         string    `json:"userId" gorm:"not null;uniqueIndex:idx_session_user;size:36"`
	Score          int       `json:"score"`
	CorrectAnswers int       `json:"correctAnswers"`
	TotalAnswers   int       `json:"totalAnswers"`
	TimeTaken      int       `json:"timeTaken"`
	JoinedAt       time.Time `json:"joinedAt"`
}

type Achievement struct {
	ID            string    `json:"id" gorm:"primaryKey;size:36"`
	Name          string    `json:"name" gorm:"uniqueIndex;not null;size:100"`
	Description   string    `json:"description" gorm:"type:text"`
	IconURL       string    `json:"iconUrl,omitempty" gorm:"size:255"`
	PointsReward  int       `json:"pointsReward"`
	CriteriaType  string    `json:"criteriaType" gorm:"not null;size:20"`
	CriteriaValue int       `json:"criteriaValue" gorm:"not null"`
	IsActive      bool      `json:"isActive" gorm:"not null"`
	CreatedAt     time.Time `json:"createdAt"`
}

type StudentAchievement struct {
	ID            string    `json:"id" gorm:"primaryKey;size:36"`
	StudentID     string    `json:"studentId" gorm:"not null;uniqueIndex:idx_student_achievement;size:36"`
	AchievementID string    `json:"achievementId" gorm:"not null;uniqueIndex:idx_student_achievement;size:36"`
	EarnedAt      time.Time `json:"earnedAt"`
	PointsEarned  int       `json:"pointsEarned"`
}
