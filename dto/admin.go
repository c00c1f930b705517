package dto

import "time"

// ==================== ADMIN DTOs ====================

type AdminStudent struct {
	ID           string     `json:"id"`
	StudentID    string     `json:"studentId"`
	FirstName    string     `json:"firstName"`
	LastName     string     `json:"lastName"`
	Email        string     `json:"email"`
	IsActive     bool       `json:"isActive"`
	GradeLevel   int        `json:"gradeLevel"`
	CurrentLevel int        `json:"currentLevel"`
	TotalPoints  int        `json:"totalPoints"`
	DailyPoints  int        `json:"dailyPoints"`
	StreakDays   int        `json:"streakDays"`
	LastLogin    *time.Time `json:"lastLogin,omitempty"`
}

type AddStudentRequest struct {
	FirstName string `json:"firstName" validate:"required,notblank,min=2,max=50" example:"Grace"`
	LastName  string `json:"lastName" validate:"required,notblank,min=2,max=50" example:"Hopper"`
	Email     string `json:"email" validate:"required,email,max=100" example:"grace@example.com"`
	Grade     int    `json:"grade" validate:"required,gte=1,lte=12" example:"5"`
	Password  string `json:"password" validate:"required,min=6,max=72" example:"secret123"`
}

func (r AddStudentRequest) Validate() error {
	return GetValidator().Struct(r)
}

// RegisterRequest lets the admin path reuse the registration transaction.
func (r AddStudentRequest) RegisterRequest() RegisterRequest {
	req := RegisterRequest{
		FirstName:       r.FirstName,
		LastName:        r.LastName,
		Email:           r.Email,
		Grade:           r.Grade,
		Password:        r.Password,
		ConfirmPassword: r.Password,
	}
	req.Normalize()
	return req
}

type AddStudentResponse struct {
	ID        string `json:"id"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Email     string `json:"email"`
	Grade     int    `json:"grade"`
}

type PlatformStats struct {
	TotalStudents int64 `json:"totalStudents"`
	TotalGames    int64 `json:"totalGames"`
	TotalSubjects int64 `json:"totalSubjects"`
	AvgProgress   int   `json:"avgProgress"`
}

const (
	ActivityStudentRegistered = "student_registered"
	ActivityGameCompleted     = "game_completed"
)

type ActivityItem struct {
	ActivityType string    `json:"activityType" example:"student_registered"`
	FirstName    string    `json:"firstName"`
	LastName     string    `json:"lastName"`
	GameName     string    `json:"gameName,omitempty"`
	Score        *int      `json:"score,omitempty"`
	CreatedAt    time.Time `json:"createdAt"`
}

// ==================== ANALYTICS DTOs ====================

type PlatformAnalytics struct {
	TotalUsers    int64 `json:"totalUsers"`
	TotalStudents int64 `json:"totalStudents"`
	TotalGames    int64 `json:"totalGames"`
	TotalSessions int64 `json:"totalSessions"`
}

type SubjectPerformance struct {
	SubjectName     string  `json:"subjectName"`
	AvgCompletion   float64 `json:"avgCompletion"`
	TotalTime       int     `json:"totalTime"`
	TopicsAttempted int     `json:"topicsAttempted"`
}

type GameAnalytics struct {
	GameName      string  `json:"gameName"`
	GameType      string  `json:"gameType"`
	TotalSessions int     `json:"totalSessions"`
	AvgScore      float64 `json:"avgScore"`
	UniquePlayers int     `json:"uniquePlayers"`
}

type StudentStatusRequest struct {
	IsActive *bool `json:"isActive" validate:"required" example:"false"`
}

func (r StudentStatusRequest) Validate() error {
	return GetValidator().Struct(r)
}
