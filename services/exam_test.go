package services

import (
	"net/http"
	"testing"

	"github.com/lac-hong-legacy/edu_api/dto"
	"github.com/lac-hong-legacy/edu_api/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// answerPaper answers the first `right` questions correctly and the rest wrong.
func answerPaper(t *testing.T, env *testEnv, subject, difficulty string, right int) dto.SubmitExamRequest {
	t.Helper()
	paper, err := env.examSvc.Paper(subject, difficulty)
	require.NoError(t, err)

	req := dto.SubmitExamRequest{Difficulty: difficulty}
	for i, q := range paper.Questions {
		full, ok := env.examSvc.bank.Lookup(subject, difficulty, q.ID)
		require.True(t, ok)
		selected := full.Answer
		if i >= right {
			selected = (full.Answer + 1) % len(full.Options)
		}
		req.Answers = append(req.Answers, dto.ExamAnswer{QuestionID: q.ID, Selected: selected})
	}
	return req
}

func TestExamPaper(t *testing.T) {
	env := newTestEnv(t)

	paper, err := env.examSvc.Paper("Math", "")
	require.NoError(t, err)
	assert.Equal(t, "math", paper.Subject)
	assert.Equal(t, "easy", paper.Difficulty)
	assert.Len(t, paper.Questions, 5)

	paper, err = env.examSvc.Paper("science", "moderate")
	require.NoError(t, err)
	assert.Len(t, paper.Questions, 8)

	_, err = env.examSvc.Paper("history", "easy")
	requireAppError(t, err, http.StatusNotFound, "Exam subject not found")

	_, err = env.examSvc.Paper("math", "hard")
	requireAppError(t, err, http.StatusBadRequest, "Difficulty must be easy or moderate")
}

func TestExamSubmitAwardsPoints(t *testing.T) {
	env := newTestEnv(t)
	user, _ := testutil.SeedStudent(t, env.db, "ada", "lovelace", 0)

	// 3 of 5 is 60%, worth 30 points.
	res, err := env.examSvc.Submit(user.ID, "math", answerPaper(t, env, "math", "easy", 3))
	require.NoError(t, err)
	assert.Equal(t, 3, res.Correct)
	assert.Equal(t, 5, res.Total)
	assert.Equal(t, 60, res.Score)
	assert.Equal(t, 30, res.PointsEarned)
	assert.Equal(t, 30, res.TotalPoints)
	assert.Len(t, res.Review, 5)

	// 7 of 8 is 88%, rounded to 90% for 45 points.
	res, err = env.examSvc.Submit(user.ID, "math", answerPaper(t, env, "math", "moderate", 7))
	require.NoError(t, err)
	assert.Equal(t, 88, res.Score)
	assert.Equal(t, 45, res.PointsEarned)
	assert.Equal(t, 75, res.TotalPoints)
}

func TestExamGradeRejectsBadPapers(t *testing.T) {
	env := newTestEnv(t)

	req := answerPaper(t, env, "math", "easy", 5)
	short := dto.SubmitExamRequest{Difficulty: "easy", Answers: req.Answers[:4]}
	_, _, _, err := env.examSvc.Grade("math", short)
	requireAppError(t, err, http.StatusBadRequest, "A easy exam has exactly 5 answers")

	repeated := dto.SubmitExamRequest{Difficulty: "easy", Answers: append([]dto.ExamAnswer{}, req.Answers...)}
	repeated.Answers[4] = repeated.Answers[0]
	_, _, _, err = env.examSvc.Grade("math", repeated)
	requireAppError(t, err, http.StatusBadRequest, "")

	foreign := dto.SubmitExamRequest{Difficulty: "easy", Answers: append([]dto.ExamAnswer{}, req.Answers...)}
	foreign.Answers[0].QuestionID = "science-easy-1"
	_, _, _, err = env.examSvc.Grade("math", foreign)
	requireAppError(t, err, http.StatusBadRequest, "")

	badOption := dto.SubmitExamRequest{Difficulty: "easy", Answers: append([]dto.ExamAnswer{}, req.Answers...)}
	badOption.Answers[0].Selected = 9
	_, _, _, err = env.examSvc.Grade("math", badOption)
	requireAppError(t, err, http.StatusBadRequest, "")
}
