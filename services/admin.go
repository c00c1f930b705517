package services

import (
	stdctx "context"
	"errors"
	"math"

	"github.com/alphabatem/common/context"
	"github.com/lac-hong-legacy/edu_api/dto"
	"github.com/lac-hong-legacy/edu_api/services/repositories"
	"github.com/lac-hong-legacy/edu_api/shared"
	log "github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"
	"gorm.io/gorm"
)

const (
	activityPerKind = 5
	activityLimit   = 10
)

type AdminService struct {
	context.DefaultService

	analytics *repositories.AnalyticRepository
	students  *repositories.StudentRepository
	users     *repositories.UserRepository
	authSvc   *AuthService
	gameSvc   *GameService
}

const ADMIN_SVC = "admin_svc"

func (svc AdminService) Id() string {
	return ADMIN_SVC
}

func (svc *AdminService) Configure(ctx *context.Context) error {
	return svc.DefaultService.Configure(ctx)
}

func (svc *AdminService) Start() error {
	dbSvc := svc.Service(DATABASE_SVC).(*DatabaseService)
	svc.analytics = dbSvc.Analytics()
	svc.students = dbSvc.Students()
	svc.users = dbSvc.Users()
	svc.authSvc = svc.Service(AUTH_SVC).(*AuthService)
	svc.gameSvc = svc.Service(GAME_SVC).(*GameService)
	return nil
}

func NewAdminService(dbSvc *DatabaseService, authSvc *AuthService, gameSvc *GameService) *AdminService {
	return &AdminService{
		analytics: dbSvc.Analytics(),
		students:  dbSvc.Students(),
		users:     dbSvc.Users(),
		authSvc:   authSvc,
		gameSvc:   gameSvc,
	}
}

// Stats runs the dashboard counters concurrently.
func (svc *AdminService) Stats(ctx stdctx.Context) (*dto.PlatformStats, error) {
	var stats dto.PlatformStats
	var avg float64

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		stats.TotalStudents, err = svc.analytics.CountActiveStudents(gctx)
		return err
	})
	g.Go(func() (err error) {
		stats.TotalGames, err = svc.analytics.CountActiveGames(gctx)
		return err
	})
	g.Go(func() (err error) {
		stats.TotalSubjects, err = svc.analytics.CountActiveSubjects(gctx)
		return err
	})
	g.Go(func() (err error) {
		avg, err = svc.analytics.AverageProgress(gctx)
		return err
	})
	if err := g.Wait(); err != nil {
		log.WithError(err).Error("Failed to load admin stats")
		return nil, shared.NewInternalError(err)
	}

	stats.AvgProgress = int(math.Round(avg))
	return &stats, nil
}

func (svc *AdminService) Students() ([]dto.AdminStudent, error) {
	students, err := svc.students.ListStudents()
	if err != nil {
		return nil, shared.NewInternalError(err)
	}
	return students, nil
}

func (svc *AdminService) AddStudent(req dto.AddStudentRequest) (*dto.AddStudentResponse, error) {
	return svc.authSvc.AddStudent(req)
}

func (svc *AdminService) Games() ([]dto.GameResponse, error) {
	return svc.gameSvc.ListAllGames()
}

// Activity merges the latest registrations and completed games.
func (svc *AdminService) Activity(ctx stdctx.Context) ([]dto.ActivityItem, error) {
	items, err := svc.analytics.RecentActivity(ctx, activityPerKind, activityLimit)
	if err != nil {
		return nil, shared.NewInternalError(err)
	}
	return items, nil
}

// SetStudentStatus activates or deactivates a student account. Tokens
// already issued stop working on the next request.
func (svc *AdminService) SetStudentStatus(userID string, active bool) error {
	user, err := svc.users.GetUserWithStudent(userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return shared.NewNotFoundError(err, "Student not found")
		}
		return shared.NewInternalError(err)
	}
	if user.StudentID == nil {
		return shared.NewNotFoundError(gorm.ErrRecordNotFound, "Student not found")
	}

	if err := svc.users.SetActive(userID, active); err != nil {
		return shared.NewInternalError(err)
	}

	log.WithFields(log.Fields{"user_id": userID, "active": active}).Info("Student status changed")
	return nil
}
