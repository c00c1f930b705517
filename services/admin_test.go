package services

import (
	"context"
	"net/http"
	"testing"

	"github.com/lac-hong-legacy/edu_api/dto"
	"github.com/lac-hong-legacy/edu_api/model"
	"github.com/lac-hong-legacy/edu_api/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAdminStatsAndActivity(t *testing.T) {
	env := newTestEnv(t)
	adminSvc := NewAdminService(env.dbSvc, env.authSvc, env.gameSvc)
	ctx := context.Background()

	ada, _ := testutil.SeedStudent(t, env.db, "ada", "lovelace", 0)
	alan, _ := testutil.SeedStudent(t, env.db, "alan", "turing", 0)
	_, topic := testutil.SeedTopic(t, env.db, "Mathematics")
	game := testutil.SeedGame(t, env.db, "Math Quiz Adventure", 100, nil)

	_, err := env.studentSvc.RecordProgress(ada.ID, dto.ProgressRequest{TopicID: topic.ID, CompletionPercentage: 50})
	require.NoError(t, err)
	_, err = env.studentSvc.RecordProgress(alan.ID, dto.ProgressRequest{TopicID: topic.ID, CompletionPercentage: 100})
	require.NoError(t, err)

	started, err := env.gameSvc.StartGame(ada.ID, game.ID)
	require.NoError(t, err)
	_, err = env.gameSvc.SubmitGame(ada.ID, game.ID, dto.SubmitGameRequest{SessionID: started.SessionID, Score: 90, CorrectAnswers: 9, TotalAnswers: 10})
	require.NoError(t, err)

	stats, err := adminSvc.Stats(ctx)
	require.NoError(t, err)
	assert.EqualValues(t, 2, stats.TotalStudents)
	assert.EqualValues(t, 1, stats.TotalGames)
	assert.EqualValues(t, 1, stats.TotalSubjects)
	assert.Equal(t, 75, stats.AvgProgress)

	activity, err := adminSvc.Activity(ctx)
	require.NoError(t, err)
	require.Len(t, activity, 3)
	kinds := map[string]int{}
	for _, item := range activity {
		kinds[item.ActivityType]++
	}
	assert.Equal(t, 2, kinds[dto.ActivityStudentRegistered])
	assert.Equal(t, 1, kinds[dto.ActivityGameCompleted])
}

func TestAdminAddStudentAndStatus(t *testing.T) {
	env := newTestEnv(t)
	adminSvc := NewAdminService(env.dbSvc, env.authSvc, env.gameSvc)

	added, err := adminSvc.AddStudent(dto.AddStudentRequest{
		FirstName: "Grace",
		LastName:  "Hopper",
		Email:     "Grace@Example.com",
		Grade:     5,
		Password:  "secret123",
	})
	require.NoError(t, err)
	assert.Equal(t, "grace@example.com", added.Email)
	assert.Equal(t, 5, added.Grade)

	students, err := adminSvc.Students()
	require.NoError(t, err)
	require.Len(t, students, 1)
	assert.True(t, students[0].IsActive)

	require.NoError(t, adminSvc.SetStudentStatus(added.ID, false))
	_, err = env.authSvc.Login(dto.LoginRequest{Email: "grace@example.com", Password: "secret123"})
	requireAppError(t, err, http.StatusUnauthorized, MsgAccountDeactivated)

	admin := testutil.SeedUser(t, env.db, "root@example.com", model.RoleAdmin)
	err = adminSvc.SetStudentStatus(admin.ID, false)
	requireAppError(t, err, http.StatusNotFound, "Student not found")

	err = adminSvc.SetStudentStatus("missing", false)
	requireAppError(t, err, http.StatusNotFound, "Student not found")
}

func TestAnalyticsStudentPerformance(t *testing.T) {
	env := newTestEnv(t)
	analyticsSvc := NewAnalyticsService(env.dbSvc.Analytics(), env.dbSvc.Students())
	ctx := context.Background()

	user, student := testutil.SeedStudent(t, env.db, "ada", "lovelace", 0)
	_, topic := testutil.SeedTopic(t, env.db, "Science")
	_, err := env.studentSvc.RecordProgress(user.ID, dto.ProgressRequest{TopicID: topic.ID, CompletionPercentage: 40, TimeSpent: 300})
	require.NoError(t, err)

	perf, err := analyticsSvc.StudentPerformance(ctx, student.ID)
	require.NoError(t, err)
	require.Len(t, perf, 1)
	assert.Equal(t, "Science", perf[0].SubjectName)
	assert.Equal(t, 300, perf[0].TotalTime)
	assert.Equal(t, 1, perf[0].TopicsAttempted)

	_, err = analyticsSvc.StudentPerformance(ctx, "missing")
	requireAppError(t, err, http.StatusNotFound, "")

	platform, err := analyticsSvc.Platform(ctx)
	require.NoError(t, err)
	assert.EqualValues(t, 1, platform.TotalStudents)
	assert.EqualValues(t, 0, platform.TotalSessions)
}
