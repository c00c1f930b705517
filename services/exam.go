package services

import (
	"errors"
	"fmt"
	"strings"

	"github.com/alphabatem/common/context"
	"github.com/lac-hong-legacy/edu_api/dto"
	"github.com/lac-hong-legacy/edu_api/exam"
	"github.com/lac-hong-legacy/edu_api/shared"
	log "github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

var errBadPaper = errors.New("submitted answers do not match an exam paper")

// ExamService serves exam papers and scores submissions by replaying them
// through an exam.Runner. No exam state lives on the server between calls.
type ExamService struct {
	context.DefaultService

	bank       *exam.Bank
	studentSvc *StudentService
}

const EXAM_SVC = "exam_svc"

func (svc ExamService) Id() string {
	return EXAM_SVC
}

func (svc *ExamService) Configure(ctx *context.Context) error {
	bank, err := exam.LoadDefault()
	if err != nil {
		return err
	}
	svc.bank = bank
	return svc.DefaultService.Configure(ctx)
}

func (svc *ExamService) Start() error {
	svc.studentSvc = svc.Service(STUDENT_SVC).(*StudentService)
	return nil
}

func NewExamService(bank *exam.Bank, studentSvc *StudentService) *ExamService {
	return &ExamService{bank: bank, studentSvc: studentSvc}
}

func (svc *ExamService) resolve(subject, difficulty string) (string, string, error) {
	subject = strings.ToLower(strings.TrimSpace(subject))
	difficulty = strings.ToLower(strings.TrimSpace(difficulty))
	if difficulty == "" {
		difficulty = exam.DifficultyEasy
	}

	if _, err := svc.bank.Questions(subject, difficulty); err != nil {
		if errors.Is(err, exam.ErrUnknownSubject) {
			return "", "", shared.NewNotFoundError(err, "Exam subject not found")
		}
		return "", "", shared.NewBadRequestError(err, "Difficulty must be easy or moderate")
	}
	return subject, difficulty, nil
}

// Paper draws a shuffled paper without the answer key.
func (svc *ExamService) Paper(subject, difficulty string) (*dto.ExamPaper, error) {
	subject, difficulty, err := svc.resolve(subject, difficulty)
	if err != nil {
		return nil, err
	}

	questions, err := svc.bank.Draw(subject, difficulty, nil)
	if err != nil {
		return nil, shared.NewInternalError(err)
	}

	paper := &dto.ExamPaper{
		Subject:    subject,
		Difficulty: difficulty,
		Questions:  make([]dto.ExamQuestion, 0, len(questions)),
	}
	for _, q := range questions {
		paper.Questions = append(paper.Questions, dto.ExamQuestion{
			ID:       q.ID,
			Question: q.Question,
			Options:  q.Options,
		})
	}
	return paper, nil
}

// Grade replays answers through a fresh runner and returns the result.
func (svc *ExamService) Grade(subject string, req dto.SubmitExamRequest) (string, string, exam.Result, error) {
	subject, difficulty, err := svc.resolve(subject, req.Difficulty)
	if err != nil {
		return "", "", exam.Result{}, err
	}

	count, _ := exam.QuestionCount(difficulty)
	if len(req.Answers) != count {
		return "", "", exam.Result{}, shared.NewBadRequestError(errBadPaper,
			fmt.Sprintf("A %s exam has exactly %d answers", difficulty, count))
	}

	questions := make([]exam.Question, 0, count)
	seen := make(map[string]bool, count)
	for _, a := range req.Answers {
		q, ok := svc.bank.Lookup(subject, difficulty, a.QuestionID)
		if !ok || seen[a.QuestionID] {
			return "", "", exam.Result{}, shared.NewBadRequestError(errBadPaper, "Unknown or repeated question: "+a.QuestionID)
		}
		seen[a.QuestionID] = true
		questions = append(questions, q)
	}

	runner, err := exam.NewRunner(questions)
	if err != nil {
		return "", "", exam.Result{}, shared.NewBadRequestError(err, "Exam has no questions")
	}
	for _, a := range req.Answers {
		if err := runner.Select(a.Selected); err != nil {
			return "", "", exam.Result{}, shared.NewBadRequestError(err, "Invalid option for question "+a.QuestionID)
		}
		if err := runner.Next(); err != nil {
			return "", "", exam.Result{}, shared.NewInternalError(err)
		}
	}

	result, err := runner.Result()
	if err != nil {
		return "", "", exam.Result{}, shared.NewInternalError(err)
	}
	return subject, difficulty, result, nil
}

// Submit grades a paper and credits round(score/10)*5 points to the student.
func (svc *ExamService) Submit(userID, subject string, req dto.SubmitExamRequest) (*dto.ExamResult, error) {
	studentID, err := svc.studentSvc.StudentIDForUser(userID)
	if err != nil {
		return nil, err
	}

	subject, difficulty, result, err := svc.Grade(subject, req)
	if err != nil {
		return nil, err
	}

	var award *dto.AwardResult
	err = svc.studentSvc.Repository().Transaction(func(tx *gorm.DB) error {
		award, err = svc.studentSvc.AwardInTx(tx, studentID, result.Points)
		return err
	})
	if err != nil {
		log.WithFields(log.Fields{"student_id": studentID, "subject": subject, "error": err.Error()}).Error("Exam award failed")
		return nil, shared.NewInternalError(err)
	}
	svc.studentSvc.Awarded(userID, SourceExam, award)

	out := &dto.ExamResult{
		Subject:      subject,
		Difficulty:   difficulty,
		Correct:      result.Correct,
		Total:        result.Total,
		Score:        result.Score,
		PointsEarned: award.PointsEarned,
		NewLevel:     award.NewLevel,
		TotalPoints:  award.TotalPoints,
		Review:       make([]dto.ExamReview, 0, len(result.Answers)),
	}
	for _, a := range result.Answers {
		out.Review = append(out.Review, dto.ExamReview{
			QuestionID:  a.Question.ID,
			Question:    a.Question.Question,
			Selected:    a.Selected,
			Correct:     a.Question.Answer,
			IsCorrect:   a.Correct,
			Explanation: a.Question.Explanation,
		})
	}
	return out, nil
}
