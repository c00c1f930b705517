package dto

type ExamQuestion struct {
	ID       string   `json:"id" example:"math-easy-1"`
	Question string   `json:"question" example:"What is 5 + 3?"`
	Options  []string `json:"options"`
}

// ExamPaper is handed to the client without the answer key.
type ExamPaper struct {
	Subject    string         `json:"subject" example:"math"`
	Difficulty string         `json:"difficulty" example:"easy"`
	Questions  []ExamQuestion `json:"questions"`
}

type ExamAnswer struct {
	QuestionID string `json:"questionId" validate:"required,notblank"`
	Selected   int    `json:"selected" validate:"gte=0,lte=9"`
}

type SubmitExamRequest struct {
	Difficulty string       `json:"difficulty" validate:"required,oneof=easy moderate" example:"easy"`
	Answers    []ExamAnswer `json:"answers" validate:"required,min=1,dive"`
}

func (r SubmitExamRequest) Validate() error {
	return GetValidator().Struct(r)
}

type ExamReview struct {
	QuestionID  string `json:"questionId"`
	Question    string `json:"question"`
	Selected    int    `json:"selected"`
	Correct     int    `json:"correct"`
	IsCorrect   bool   `json:"isCorrect"`
	Explanation string `json:"explanation"`
}

type ExamResult struct {
	Subject      string       `json:"subject" example:"math"`
	Difficulty   string       `json:"difficulty" example:"easy"`
	Correct      int          `json:"correct" example:"4"`
	Total        int          `json:"total" example:"5"`
	Score        int          `json:"score" example:"80"`
	PointsEarned int          `json:"pointsEarned" example:"40"`
	NewLevel     int          `json:"newLevel" example:"2"`
	TotalPoints  int          `json:"totalPoints" example:"140"`
	Review       []ExamReview `json:"review"`
}
