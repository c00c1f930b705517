package services

import (
	"net/http"
	"testing"

	"github.com/lac-hong-legacy/edu_api/dto"
	"github.com/lac-hong-legacy/edu_api/model"
	"github.com/lac-hong-legacy/edu_api/testutil"
	promtest "github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProgressPoints(t *testing.T) {
	tests := []struct {
		completion float64
		want       int
	}{
		{0, 0},
		{9.99, 99},
		{50, 500},
		{100, 1000},
		{150, 1000},
		{-5, 0},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, ProgressPoints(tt.completion), "completion %v", tt.completion)
	}
}

func TestGamePoints(t *testing.T) {
	tests := []struct {
		correct, total, reward int
		want                   int
	}{
		{8, 10, 100, 80},
		{7, 9, 80, 62},
		{10, 10, 90, 90},
		{0, 10, 100, 0},
		{5, 0, 100, 0},
		{12, 10, 100, 100},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, GamePoints(tt.correct, tt.total, tt.reward), "%d/%d of %d", tt.correct, tt.total, tt.reward)
	}
}

func TestRecordProgressAwardsOnEveryCall(t *testing.T) {
	env := newTestEnv(t)
	user, student := testutil.SeedStudent(t, env.db, "ada", "lovelace", 0)
	_, topic := testutil.SeedTopic(t, env.db, "Mathematics")

	before := promtest.ToFloat64(pointsAwardedTotal.WithLabelValues(SourceProgress))

	req := dto.ProgressRequest{
		TopicID:              topic.ID,
		CompletionPercentage: 50,
		TimeSpent:            120,
		QuestionsCorrect:     4,
		QuestionsAttempted:   5,
	}

	first, err := env.studentSvc.RecordProgress(user.ID, req)
	require.NoError(t, err)
	assert.Equal(t, 500, first.PointsEarned)
	assert.Equal(t, 500, first.TotalPoints)
	assert.Equal(t, 6, first.NewLevel)

	// The same update again is credited again.
	second, err := env.studentSvc.RecordProgress(user.ID, req)
	require.NoError(t, err)
	assert.Equal(t, 500, second.PointsEarned)
	assert.Equal(t, 1000, second.TotalPoints)
	assert.Equal(t, 11, second.NewLevel)

	progress, err := env.dbSvc.Students().GetProgress(student.ID, topic.ID)
	require.NoError(t, err)
	assert.Equal(t, 50.0, progress.CompletionPercentage)
	assert.Equal(t, 240, progress.TimeSpent)
	assert.Equal(t, 10, progress.QuestionsAttempted)
	assert.Equal(t, 8, progress.QuestionsCorrect)

	assert.Equal(t, before+1000, promtest.ToFloat64(pointsAwardedTotal.WithLabelValues(SourceProgress)))
}

func TestRecordProgressReplacesCompletion(t *testing.T) {
	env := newTestEnv(t)
	user, student := testutil.SeedStudent(t, env.db, "alan", "turing", 0)
	_, topic := testutil.SeedTopic(t, env.db, "Science")

	_, err := env.studentSvc.RecordProgress(user.ID, dto.ProgressRequest{TopicID: topic.ID, CompletionPercentage: 80})
	require.NoError(t, err)
	res, err := env.studentSvc.RecordProgress(user.ID, dto.ProgressRequest{TopicID: topic.ID, CompletionPercentage: 20})
	require.NoError(t, err)
	assert.Equal(t, 200, res.PointsEarned)
	assert.Equal(t, 1000, res.TotalPoints)

	progress, err := env.dbSvc.Students().GetProgress(student.ID, topic.ID)
	require.NoError(t, err)
	assert.Equal(t, 20.0, progress.CompletionPercentage)
}

func TestRecordProgressErrors(t *testing.T) {
	env := newTestEnv(t)
	user, _ := testutil.SeedStudent(t, env.db, "grace", "hopper", 0)
	admin := testutil.SeedUser(t, env.db, "root@example.com", model.RoleAdmin)

	_, err := env.studentSvc.RecordProgress(user.ID, dto.ProgressRequest{TopicID: "missing", CompletionPercentage: 10})
	requireAppError(t, err, http.StatusNotFound, "Topic not found")

	_, err = env.studentSvc.RecordProgress(admin.ID, dto.ProgressRequest{TopicID: "missing", CompletionPercentage: 10})
	requireAppError(t, err, http.StatusNotFound, "Student not found")
}

func TestLeaderboardClampsLimit(t *testing.T) {
	env := newTestEnv(t)
	for i := 0; i < 3; i++ {
		testutil.SeedStudent(t, env.db, "s", string(rune('a'+i)), i*100)
	}

	entries, err := env.studentSvc.Leaderboard(0)
	require.NoError(t, err)
	require.Len(t, entries, 3)
	assert.Equal(t, 200, entries[0].TotalPoints)

	entries, err = env.studentSvc.Leaderboard(1000)
	require.NoError(t, err)
	assert.Len(t, entries, 3)
}
