package services

import (
	"testing"
	"time"

	"github.com/lac-hong-legacy/edu_api/exam"
	"github.com/lac-hong-legacy/edu_api/shared"
	"github.com/lac-hong-legacy/edu_api/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type testEnv struct {
	db         *gorm.DB
	dbSvc      *DatabaseService
	jwtSvc     *JWTService
	authSvc    *AuthService
	studentSvc *StudentService
	gameSvc    *GameService
	examSvc    *ExamService
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	db := testutil.DB(t)
	dbSvc := NewDatabaseService(db)
	jwtSvc := NewJWTService("test-secret", time.Hour, "edu_api")
	studentSvc := NewStudentService(dbSvc.Students(), nil)

	bank, err := exam.LoadDefault()
	require.NoError(t, err)

	return &testEnv{
		db:         db,
		dbSvc:      dbSvc,
		jwtSvc:     jwtSvc,
		authSvc:    NewAuthService(dbSvc.Users(), jwtSvc, bcrypt.MinCost),
		studentSvc: studentSvc,
		gameSvc:    NewGameService(dbSvc.Games(), studentSvc, nil),
		examSvc:    NewExamService(bank, studentSvc),
	}
}

func requireAppError(t *testing.T, err error, status int, message string) *shared.AppError {
	t.Helper()
	require.Error(t, err)
	appErr, ok := shared.GetAppError(err)
	require.True(t, ok, "expected AppError, got %v", err)
	assert.Equal(t, status, appErr.StatusCode)
	if message != "" {
		assert.Equal(t, message, appErr.Message)
	}
	return appErr
}

