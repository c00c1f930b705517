package dto

import "time"

type ProgressRequest struct {
	TopicID              string  `json:"topicId" validate:"required,notblank,max=36" example:"01920f7e-8b4e-7c3a-9d1f-2b6c8e4a5f10"`
	CompletionPercentage float64 `json:"completionPercentage" validate:"gte=0,lte=100" example:"50"`
	TimeSpent            int     `json:"timeSpent" validate:"gte=0" example:"120"`
	QuestionsCorrect     int     `json:"questionsCorrect" validate:"gte=0,ltefield=QuestionsAttempted" example:"4"`
	QuestionsAttempted   int     `json:"questionsAttempted" validate:"gte=0" example:"5"`
}

func (r ProgressRequest) Validate() error {
	return GetValidator().Struct(r)
}

// ProgressResult is the ledger's answer to a recorded update.
type ProgressResult struct {
	PointsEarned int `json:"pointsEarned" example:"500"`
	NewLevel     int `json:"newLevel" example:"6"`
	TotalPoints  int `json:"totalPoints" example:"500"`
}

// AwardResult is the post-award state of a student row.
type AwardResult struct {
	StudentID    string `json:"studentId"`
	PointsEarned int    `json:"pointsEarned"`
	TotalPoints  int    `json:"totalPoints"`
	PrevLevel    int    `json:"prevLevel"`
	NewLevel     int    `json:"newLevel"`
}

func (a AwardResult) LeveledUp() bool {
	return a.NewLevel > a.PrevLevel
}

type SubjectProgress struct {
	SubjectID       string  `json:"subjectId"`
	SubjectName     string  `json:"subjectName" example:"Mathematics"`
	AvgProgress     float64 `json:"avgProgress" example:"62.5"`
	TopicsCompleted int     `json:"topicsCompleted" example:"2"`
}

type LeaderboardEntry struct {
	Rank         int    `json:"rank" example:"1"`
	StudentID    string `json:"studentId"`
	Name         string `json:"name" example:"Ada Lovelace"`
	FirstName    string `json:"firstName" example:"Ada"`
	LastName     string `json:"lastName" example:"Lovelace"`
	TotalPoints  int    `json:"totalPoints" example:"300"`
	CurrentLevel int    `json:"currentLevel" example:"4"`
	GradeLevel   int    `json:"gradeLevel" example:"4"`
}

type StudentAchievementResponse struct {
	Name         string    `json:"name" example:"First Steps"`
	Description  string    `json:"description"`
	IconURL      string    `json:"iconUrl,omitempty"`
	PointsReward int       `json:"pointsReward" example:"50"`
	EarnedAt     time.Time `json:"earnedAt"`
	PointsEarned int       `json:"pointsEarned" example:"50"`
}
