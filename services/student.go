package services

import (
	"errors"
	"math"
	"time"

	"github.com/alphabatem/common/context"
	"github.com/lac-hong-legacy/edu_api/dto"
	"github.com/lac-hong-legacy/edu_api/model"
	"github.com/lac-hong-legacy/edu_api/services/repositories"
	"github.com/lac-hong-legacy/edu_api/shared"
	log "github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

const (
	SourceProgress = "progress"
	SourceGame     = "game"
	SourceExam     = "exam"
)

// StudentService is the progress ledger: progress upserts, point awards
// and the rankings that read them.
type StudentService struct {
	context.DefaultService

	students *repositories.StudentRepository
	eventSvc *EventService
}

const STUDENT_SVC = "student_svc"

func (svc StudentService) Id() string {
	return STUDENT_SVC
}

func (svc *StudentService) Configure(ctx *context.Context) error {
	return svc.DefaultService.Configure(ctx)
}

func (svc *StudentService) Start() error {
	svc.students = svc.Service(DATABASE_SVC).(*DatabaseService).Students()
	if eventSvc, ok := svc.Service(EVENT_SVC).(*EventService); ok {
		svc.eventSvc = eventSvc
	}
	return nil
}

func NewStudentService(students *repositories.StudentRepository, eventSvc *EventService) *StudentService {
	return &StudentService{students: students, eventSvc: eventSvc}
}

// ProgressPoints is the award for one progress update: floor(completion*10).
func ProgressPoints(completion float64) int {
	return int(math.Floor(clampCompletion(completion) * 10))
}

func clampCompletion(c float64) float64 {
	switch {
	case math.IsNaN(c) || c < 0:
		return 0
	case c > 100:
		return 100
	default:
		return c
	}
}

// GamePoints is floor(correct/total * reward); zero when nothing was answered.
func GamePoints(correct, total, reward int) int {
	if total <= 0 || correct <= 0 {
		return 0
	}
	if correct > total {
		correct = total
	}
	return int(math.Floor(float64(correct) / float64(total) * float64(reward)))
}

// student resolves the student row for a user or returns a 404 AppError.
func (svc *StudentService) student(userID string) (*model.Student, error) {
	student, err := svc.students.GetStudentByUserID(userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.NewNotFoundError(err, "Student not found")
		}
		return nil, shared.NewInternalError(err)
	}
	return student, nil
}

// RecordProgress upserts the (student, topic) row and awards points in one
// transaction. Repeating an identical call awards again.
func (svc *StudentService) RecordProgress(userID string, req dto.ProgressRequest) (*dto.ProgressResult, error) {
	student, err := svc.student(userID)
	if err != nil {
		return nil, err
	}

	exists, err := svc.students.TopicExists(req.TopicID)
	if err != nil {
		return nil, shared.NewInternalError(err)
	}
	if !exists {
		return nil, shared.NewNotFoundError(gorm.ErrRecordNotFound, "Topic not found")
	}

	req.CompletionPercentage = clampCompletion(req.CompletionPercentage)
	points := ProgressPoints(req.CompletionPercentage)

	var award *dto.AwardResult
	err = svc.students.Transaction(func(tx *gorm.DB) error {
		if err := svc.students.UpsertProgress(tx, student.ID, req, time.Now()); err != nil {
			return err
		}
		award, err = svc.students.AwardPoints(tx, student.ID, points)
		return err
	})
	if err != nil {
		log.WithFields(log.Fields{"student_id": student.ID, "topic_id": req.TopicID, "error": err.Error()}).Error("Progress update failed")
		return nil, shared.NewInternalError(err)
	}

	svc.Awarded(userID, SourceProgress, award)

	return &dto.ProgressResult{
		PointsEarned: award.PointsEarned,
		NewLevel:     award.NewLevel,
		TotalPoints:  award.TotalPoints,
	}, nil
}

// AwardInTx applies points inside a caller's transaction. Call Awarded once
// the transaction has committed.
func (svc *StudentService) AwardInTx(tx *gorm.DB, studentID string, points int) (*dto.AwardResult, error) {
	return svc.students.AwardPoints(tx, studentID, points)
}

// Awarded records metrics and publishes the domain event for a committed award.
func (svc *StudentService) Awarded(userID, source string, award *dto.AwardResult) {
	if award == nil {
		return
	}
	recordPointsAwarded(source, award.PointsEarned, award.LeveledUp())

	if svc.eventSvc == nil {
		return
	}
	svc.eventSvc.PublishPointsAwarded(dto.PointsAwardedEvent{
		StudentID:    award.StudentID,
		UserID:       userID,
		Source:       source,
		PointsEarned: award.PointsEarned,
		TotalPoints:  award.TotalPoints,
		NewLevel:     award.NewLevel,
		LeveledUp:    award.LeveledUp(),
		OccurredAt:   time.Now().UTC(),
	})
}

func (svc *StudentService) Leaderboard(limit int) ([]dto.LeaderboardEntry, error) {
	if limit <= 0 {
		limit = shared.DefaultLeaderboardLimit
	}
	if limit > shared.MaxLeaderboardLimit {
		limit = shared.MaxLeaderboardLimit
	}

	entries, err := svc.students.Leaderboard(limit)
	if err != nil {
		return nil, shared.NewInternalError(err)
	}
	return entries, nil
}

func (svc *StudentService) SubjectProgress(userID string) ([]dto.SubjectProgress, error) {
	student, err := svc.student(userID)
	if err != nil {
		return nil, err
	}

	rows, err := svc.students.SubjectProgress(student.ID)
	if err != nil {
		return nil, shared.NewInternalError(err)
	}
	return rows, nil
}

func (svc *StudentService) Achievements(userID string) ([]dto.StudentAchievementResponse, error) {
	student, err := svc.student(userID)
	if err != nil {
		return nil, err
	}

	rows, err := svc.students.Achievements(student.ID)
	if err != nil {
		return nil, shared.NewInternalError(err)
	}
	return rows, nil
}

// StudentIDForUser exposes the user to student mapping to sibling services.
func (svc *StudentService) StudentIDForUser(userID string) (string, error) {
	student, err := svc.student(userID)
	if err != nil {
		return "", err
	}
	return student.ID, nil
}

func (svc *StudentService) Repository() *repositories.StudentRepository {
	return svc.students
}
