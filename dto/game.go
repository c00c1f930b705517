package dto

import "time"

type GameResponse struct {
	ID              string    `json:"id"`
	Name            string    `json:"name" example:"Math Quiz Adventure"`
	Description     string    `json:"description"`
	GameType        string    `json:"gameType" example:"quiz"`
	PointsReward    int       `json:"pointsReward" example:"100"`
	TimeLimit       int       `json:"timeLimit" example:"300"`
	DifficultyLevel string    `json:"difficultyLevel" example:"medium"`
	IsActive        bool      `json:"isActive"`
	SubjectName     *string   `json:"subjectName,omitempty" example:"Mathematics"`
	SubjectColor    *string   `json:"subjectColor,omitempty" example:"#EF4444"`
	CreatedAt       time.Time `json:"createdAt"`
}

type StartGameResponse struct {
	SessionID     string       `json:"sessionId"`
	SessionCode   string       `json:"sessionCode" example:"K3J9QX"`
	Game          GameResponse `json:"game"`
	TimeRemaining int          `json:"timeRemaining" example:"300"`
}

type SubmitGameRequest struct {
	SessionID      string `json:"sessionId" validate:"required,notblank" example:"01920f7e-8b4e-7c3a-9d1f-2b6c8e4a5f10"`
	Score          int    `json:"score" validate:"gte=0" example:"80"`
	CorrectAnswers int    `json:"correctAnswers" validate:"gte=0,ltefield=TotalAnswers" example:"8"`
	TotalAnswers   int    `json:"totalAnswers" validate:"required,gte=1" example:"10"`
	TimeTaken      int    `json:"timeTaken" validate:"gte=0" example:"95"`
}

func (r SubmitGameRequest) Validate() error {
	return GetValidator().Struct(r)
}

type SubmitGameResponse struct {
	Score        int `json:"score" example:"80"`
	PointsEarned int `json:"pointsEarned" example:"80"`
	NewLevel     int `json:"newLevel" example:"2"`
	TotalPoints  int `json:"totalPoints" example:"180"`
}

type GameLeaderboardEntry struct {
	FirstName      string  `json:"firstName"`
	LastName       string  `json:"lastName"`
	Score          int     `json:"score"`
	CorrectAnswers int     `json:"correctAnswers"`
	TotalAnswers   int     `json:"totalAnswers"`
	TimeTaken      int     `json:"timeTaken"`
	Accuracy       float64 `json:"accuracy"`
}
