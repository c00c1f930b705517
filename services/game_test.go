package services

import (
	"net/http"
	"testing"

	"github.com/lac-hong-legacy/edu_api/dto"
	"github.com/lac-hong-legacy/edu_api/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGameStartAndSubmit(t *testing.T) {
	env := newTestEnv(t)
	user, _ := testutil.SeedStudent(t, env.db, "ada", "lovelace", 90)
	game := testutil.SeedGame(t, env.db, "Science Puzzle Lab", 80, nil)

	started, err := env.gameSvc.StartGame(user.ID, game.ID)
	require.NoError(t, err)
	assert.Len(t, started.SessionCode, sessionCodeLength)
	assert.Equal(t, game.TimeLimit, started.TimeRemaining)
	assert.Equal(t, game.ID, started.Game.ID)

	req := dto.SubmitGameRequest{SessionID: started.SessionID, Score: 70, CorrectAnswers: 7, TotalAnswers: 9, TimeTaken: 60}
	res, err := env.gameSvc.SubmitGame(user.ID, game.ID, req)
	require.NoError(t, err)
	assert.Equal(t, 62, res.PointsEarned)
	assert.Equal(t, 152, res.TotalPoints)
	assert.Equal(t, 2, res.NewLevel)
	assert.Equal(t, 70, res.Score)

	_, err = env.gameSvc.SubmitGame(user.ID, game.ID, req)
	requireAppError(t, err, http.StatusBadRequest, "Game session already completed")

	board, err := env.gameSvc.Leaderboard(game.ID)
	require.NoError(t, err)
	require.Len(t, board, 1)
	assert.Equal(t, 70, board[0].Score)
}

func TestSubmitGameRejectsForeignSession(t *testing.T) {
	env := newTestEnv(t)
	owner, _ := testutil.SeedStudent(t, env.db, "ada", "lovelace", 0)
	other, _ := testutil.SeedStudent(t, env.db, "alan", "turing", 0)
	game := testutil.SeedGame(t, env.db, "Math Quiz Adventure", 100, nil)

	started, err := env.gameSvc.StartGame(owner.ID, game.ID)
	require.NoError(t, err)

	req := dto.SubmitGameRequest{SessionID: started.SessionID, Score: 100, CorrectAnswers: 10, TotalAnswers: 10}
	_, err = env.gameSvc.SubmitGame(other.ID, game.ID, req)
	requireAppError(t, err, http.StatusNotFound, "Game session not found")

	_, err = env.gameSvc.SubmitGame(owner.ID, "missing", req)
	requireAppError(t, err, http.StatusNotFound, "Game not found")
}

func TestGameLookups(t *testing.T) {
	env := newTestEnv(t)
	user, _ := testutil.SeedStudent(t, env.db, "ada", "lovelace", 0)

	_, err := env.gameSvc.GetGame("missing")
	requireAppError(t, err, http.StatusNotFound, "Game not found")

	_, err = env.gameSvc.StartGame(user.ID, "missing")
	requireAppError(t, err, http.StatusNotFound, "Game not found")

	_, err = env.gameSvc.Leaderboard("missing")
	requireAppError(t, err, http.StatusNotFound, "Game not found")

	testutil.SeedGame(t, env.db, "Word Building Challenge", 90, nil)
	games, err := env.gameSvc.ListGames()
	require.NoError(t, err)
	assert.Len(t, games, 1)
}
