package handlers

import (
	"context"
	"io"

	"github.com/lac-hong-legacy/edu_api/dto"
)

type AuthServiceInterface interface {
	Register(req dto.RegisterRequest) (*dto.AuthResponse, error)
	Login(req dto.LoginRequest) (*dto.AuthResponse, error)
	CurrentUser(userID string) (*dto.VerifyResponse, error)
}

type StudentServiceInterface interface {
	RecordProgress(userID string, req dto.ProgressRequest) (*dto.ProgressResult, error)
	SubjectProgress(userID string) ([]dto.SubjectProgress, error)
	Achievements(userID string) ([]dto.StudentAchievementResponse, error)
	Leaderboard(limit int) ([]dto.LeaderboardEntry, error)
}

type GameServiceInterface interface {
	ListGames() ([]dto.GameResponse, error)
	GetGame(gameID string) (*dto.GameResponse, error)
	StartGame(userID, gameID string) (*dto.StartGameResponse, error)
	SubmitGame(userID, gameID string, req dto.SubmitGameRequest) (*dto.SubmitGameResponse, error)
	Leaderboard(gameID string) ([]dto.GameLeaderboardEntry, error)
}

type ExamServiceInterface interface {
	Paper(subject, difficulty string) (*dto.ExamPaper, error)
	Submit(userID, subject string, req dto.SubmitExamRequest) (*dto.ExamResult, error)
}

type AdminServiceInterface interface {
	Stats(ctx context.Context) (*dto.PlatformStats, error)
	Students() ([]dto.AdminStudent, error)
	AddStudent(req dto.AddStudentRequest) (*dto.AddStudentResponse, error)
	SetStudentStatus(userID string, active bool) error
	Games() ([]dto.GameResponse, error)
	Activity(ctx context.Context) ([]dto.ActivityItem, error)
}

type AnalyticsServiceInterface interface {
	Platform(ctx context.Context) (*dto.PlatformAnalytics, error)
	StudentPerformance(ctx context.Context, studentID string) ([]dto.SubjectPerformance, error)
	GameStats(ctx context.Context) ([]dto.GameAnalytics, error)
}

type UserServiceInterface interface {
	GetUserProfile(userID string) (*dto.UserProfileResponse, error)
	UploadAvatar(userID, contentType string, size int64, body io.Reader) (*dto.AvatarUploadResponse, error)
}
