package dto

import "time"

// User Profile DTOs
type UserProfileResponse struct {
	UserInfo
	Username  string     `json:"username"`
	JoinedAt  time.Time  `json:"joinedAt"`
	LastLogin *time.Time `json:"lastLogin,omitempty"`
}

type AvatarUploadResponse struct {
	AvatarURL string `json:"avatarUrl" example:"http://localhost:9000/edu-platform/avatars/01920f7e.png"`
	Size      int64  `json:"size" example:"20480"`
}

// Domain events published after a ledger write commits.
type PointsAwardedEvent struct {
	StudentID    string    `json:"studentId"`
	UserID       string    `json:"userId"`
	Source       string    `json:"source"` // progress, game, exam
	PointsEarned int       `json:"pointsEarned"`
	TotalPoints  int       `json:"totalPoints"`
	NewLevel     int       `json:"newLevel"`
	LeveledUp    bool      `json:"leveledUp"`
	OccurredAt   time.Time `json:"occurredAt"`
}
