package repositories

import (
	"context"
	"testing"
	"time"

	"github.com/lac-hong-legacy/edu_api/dto"
	"github.com/lac-hong-legacy/edu_api/model"
	"github.com/lac-hong-legacy/edu_api/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func playGame(t *testing.T, repo *GameRepository, game *model.Game, userID, code string, req dto.SubmitGameRequest) {
	t.Helper()
	session := &model.GameSession{GameID: game.ID, SessionCode: code, Status: model.SessionStatusActive, CreatedBy: userID, TotalQuestions: 10}
	participant := &model.GameParticipant{UserID: userID}
	require.NoError(t, repo.StartSession(session, participant))

	req.SessionID = session.ID
	err := repo.Transaction(func(tx *gorm.DB) error {
		if _, err := repo.LockSession(tx, game.ID, session.ID, userID); err != nil {
			return err
		}
		return repo.CompleteSession(tx, session.ID, userID, req, time.Now())
	})
	require.NoError(t, err)
}

func TestGameCatalogue(t *testing.T) {
	db := testutil.DB(t)
	repo := NewGameRepository(db)
	subject, _ := testutil.SeedTopic(t, db, "Mathematics")

	active := testutil.SeedGame(t, db, "Math Quiz Adventure", 100, &subject.ID)
	hidden := testutil.SeedGame(t, db, "Retired", 50, nil)
	require.NoError(t, db.Model(hidden).Update("is_active", false).Error)

	games, err := repo.ListActive()
	require.NoError(t, err)
	require.Len(t, games, 1)
	assert.Equal(t, active.ID, games[0].ID)
	require.NotNil(t, games[0].SubjectName)
	assert.Equal(t, "Mathematics", *games[0].SubjectName)

	all, err := repo.ListAll()
	require.NoError(t, err)
	assert.Len(t, all, 2)

	_, err = repo.GetActive(hidden.ID)
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}

func TestSessionLifecycleAndLeaderboard(t *testing.T) {
	db := testutil.DB(t)
	repo := NewGameRepository(db)
	game := testutil.SeedGame(t, db, "Science Puzzle Lab", 80, nil)
	ada, _ := testutil.SeedStudent(t, db, "ada", "l", 0)
	bob, _ := testutil.SeedStudent(t, db, "bob", "b", 0)
	cat, _ := testutil.SeedStudent(t, db, "cat", "c", 0)

	playGame(t, repo, game, ada.ID, "AAAAAA", dto.SubmitGameRequest{Score: 70, CorrectAnswers: 7, TotalAnswers: 10, TimeTaken: 90})
	playGame(t, repo, game, bob.ID, "BBBBBB", dto.SubmitGameRequest{Score: 90, CorrectAnswers: 9, TotalAnswers: 10, TimeTaken: 120})
	playGame(t, repo, game, cat.ID, "CCCCCC", dto.SubmitGameRequest{Score: 70, CorrectAnswers: 2, TotalAnswers: 3, TimeTaken: 60})

	board, err := repo.GameLeaderboard(game.ID, 10)
	require.NoError(t, err)
	require.Len(t, board, 3)
	assert.Equal(t, "bob", board[0].FirstName)
	assert.Equal(t, "cat", board[1].FirstName)
	assert.Equal(t, 66.67, board[1].Accuracy)
	assert.Equal(t, "ada", board[2].FirstName)

	var session model.GameSession
	require.NoError(t, db.Where("session_code = ?", "AAAAAA").First(&session).Error)
	assert.Equal(t, model.SessionStatusCompleted, session.Status)
	assert.NotNil(t, session.EndedAt)

	stats, err := NewAnalyticRepository(db).GameStats(context.Background())
	require.NoError(t, err)
	require.Len(t, stats, 1)
	assert.Equal(t, 3, stats[0].TotalSessions)
	assert.Equal(t, 3, stats[0].UniquePlayers)
	assert.InDelta(t, 76.67, stats[0].AvgScore, 0.01)
}

func TestLockSessionRequiresParticipant(t *testing.T) {
	db := testutil.DB(t)
	repo := NewGameRepository(db)
	game := testutil.SeedGame(t, db, "Word Building Challenge", 90, nil)
	owner, _ := testutil.SeedStudent(t, db, "own", "er", 0)
	other, _ := testutil.SeedStudent(t, db, "oth", "er", 0)

	session := &model.GameSession{GameID: game.ID, SessionCode: "ZZZZZZ", Status: model.SessionStatusActive, CreatedBy: owner.ID}
	require.NoError(t, repo.StartSession(session, &model.GameParticipant{UserID: owner.ID}))

	_, err := repo.LockSession(nil, game.ID, session.ID, other.ID)
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)

	_, err = repo.LockSession(nil, "other-game", session.ID, owner.ID)
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)

	got, err := repo.LockSession(nil, game.ID, session.ID, owner.ID)
	require.NoError(t, err)
	assert.Equal(t, "ZZZZZZ", got.SessionCode)
}
