package services

import (
	stdctx "context"
	"errors"

	"github.com/alphabatem/common/context"
	"github.com/lac-hong-legacy/edu_api/dto"
	"github.com/lac-hong-legacy/edu_api/services/repositories"
	"github.com/lac-hong-legacy/edu_api/shared"
	"golang.org/x/sync/errgroup"
	"gorm.io/gorm"
)

// AnalyticsService backs the teacher/admin reporting endpoints.
type AnalyticsService struct {
	context.DefaultService

	analytics *repositories.AnalyticRepository
	students  *repositories.StudentRepository
}

const ANALYTICS_SVC = "analytics_svc"

func (svc AnalyticsService) Id() string {
	return ANALYTICS_SVC
}

func (svc *AnalyticsService) Configure(ctx *context.Context) error {
	return svc.DefaultService.Configure(ctx)
}

func (svc *AnalyticsService) Start() error {
	dbSvc := svc.Service(DATABASE_SVC).(*DatabaseService)
	svc.analytics = dbSvc.Analytics()
	svc.students = dbSvc.Students()
	return nil
}

func NewAnalyticsService(analytics *repositories.AnalyticRepository, students *repositories.StudentRepository) *AnalyticsService {
	return &AnalyticsService{analytics: analytics, students: students}
}

func (svc *AnalyticsService) Platform(ctx stdctx.Context) (*dto.PlatformAnalytics, error) {
	var out dto.PlatformAnalytics

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		out.TotalUsers, err = svc.analytics.CountActiveUsers(gctx)
		return err
	})
	g.Go(func() (err error) {
		out.TotalStudents, err = svc.analytics.CountActiveStudents(gctx)
		return err
	})
	g.Go(func() (err error) {
		out.TotalGames, err = svc.analytics.CountActiveGames(gctx)
		return err
	})
	g.Go(func() (err error) {
		out.TotalSessions, err = svc.analytics.CountCompletedSessions(gctx)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, shared.NewInternalError(err)
	}
	return &out, nil
}

func (svc *AnalyticsService) StudentPerformance(ctx stdctx.Context, studentID string) ([]dto.SubjectPerformance, error) {
	if _, err := svc.students.GetStudent(studentID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.NewNotFoundError(err, "Student not found")
		}
		return nil, shared.NewInternalError(err)
	}

	rows, err := svc.analytics.StudentPerformance(ctx, studentID)
	if err != nil {
		return nil, shared.NewInternalError(err)
	}
	return rows, nil
}

func (svc *AnalyticsService) GameStats(ctx stdctx.Context) ([]dto.GameAnalytics, error) {
	rows, err := svc.analytics.GameStats(ctx)
	if err != nil {
		return nil, shared.NewInternalError(err)
	}
	return rows, nil
}
