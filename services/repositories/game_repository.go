package repositories

import (
	"math"
	"time"

	"github.com/lac-hong-legacy/edu_api/dto"
	"github.com/lac-hong-legacy/edu_api/model"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GameRepository handles the games catalogue and play sessions
type GameRepository struct {
	BaseRepository
}

func NewGameRepository(db *gorm.DB) *GameRepository {
	return &GameRepository{
		BaseRepository: NewBaseRepository(db),
	}
}

const gameColumns = `games.id, games.name, games.description, games.game_type, games.points_reward,
	games.time_limit, games.difficulty_level, games.is_active, games.created_at,
	subjects.name AS subject_name, subjects.color_code AS subject_color`

func (ds *GameRepository) gameQuery() *gorm.DB {
	return ds.db.Table("games").
		Select(gameColumns).
		Joins("LEFT JOIN subjects ON subjects.id = games.subject_id")
}

// ListActive returns the playable catalogue, newest first.
func (ds *GameRepository) ListActive() ([]dto.GameResponse, error) {
	var games []dto.GameResponse
	err := ds.gameQuery().
		Where("games.is_active = ?", true).
		Order("games.created_at DESC").
		Order("games.id ASC").
		Scan(&games).Error
	if err != nil {
		return nil, err
	}
	return games, nil
}

// ListAll includes inactive games for the admin view.
func (ds *GameRepository) ListAll() ([]dto.GameResponse, error) {
	var games []dto.GameResponse
	err := ds.gameQuery().
		Order("games.created_at DESC").
		Order("games.id ASC").
		Scan(&games).Error
	if err != nil {
		return nil, err
	}
	return games, nil
}

func (ds *GameRepository) GetActive(gameID string) (*dto.GameResponse, error) {
	var games []dto.GameResponse
	err := ds.gameQuery().
		Where("games.id = ? AND games.is_active = ?", gameID, true).
		Limit(1).
		Scan(&games).Error
	if err != nil {
		return nil, err
	}
	if len(games) == 0 {
		return nil, gorm.ErrRecordNotFound
	}
	return &games[0], nil
}

func (ds *GameRepository) GetGame(tx *gorm.DB, gameID string) (*model.Game, error) {
	var game model.Game
	if err := ds.conn(tx).Where("id = ?", gameID).First(&game).Error; err != nil {
		return nil, err
	}
	return &game, nil
}

// StartSession opens an active session with its creator as first participant.
func (ds *GameRepository) StartSession(session *model.GameSession, participant *model.GameParticipant) error {
	now := time.Now()
	if session.ID == "" {
		session.ID = newID()
	}
	session.StartedAt = &now
	session.CreatedAt = now

	return ds.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(session).Error; err != nil {
			return err
		}

		if participant.ID == "" {
			participant.ID = newID()
		}
		participant.SessionID = session.ID
		participant.JoinedAt = now
		return tx.Create(participant).Error
	})
}

// LockSession loads a session of gameID that userID takes part in.
func (ds *GameRepository) LockSession(tx *gorm.DB, gameID, sessionID, userID string) (*model.GameSession, error) {
	db := ds.conn(tx)

	q := db.Where("id = ? AND game_id = ?", sessionID, gameID)
	if db.Dialector.Name() != "sqlite" {
		q = q.Clauses(clause.Locking{Strength: "UPDATE"})
	}
	var session model.GameSession
	if err := q.First(&session).Error; err != nil {
		return nil, err
	}

	var count int64
	if err := db.Model(&model.GameParticipant{}).
		Where("session_id = ? AND user_id = ?", sessionID, userID).
		Count(&count).Error; err != nil {
		return nil, err
	}
	if count == 0 {
		return nil, gorm.ErrRecordNotFound
	}
	return &session, nil
}

// CompleteSession stores the participant's result and closes the session.
func (ds *GameRepository) CompleteSession(tx *gorm.DB, sessionID, userID string, req dto.SubmitGameRequest, now time.Time) error {
	db := ds.conn(tx)

	if err := db.Model(&model.GameParticipant{}).
		Where("session_id = ? AND user_id = ?", sessionID, userID).
		Updates(map[string]interface{}{
			"score":           req.Score,
			"correct_answers": req.CorrectAnswers,
			"total_answers":   req.TotalAnswers,
			"time_taken":      req.TimeTaken,
		}).Error; err != nil {
		return err
	}

	return db.Model(&model.GameSession{}).
		Where("id = ?", sessionID).
		Updates(map[string]interface{}{
			"status":   model.SessionStatusCompleted,
			"ended_at": now,
		}).Error
}

type gameLeaderboardRow struct {
	FirstName      string
	LastName       string
	Score          int
	CorrectAnswers int
	TotalAnswers   int
	TimeTaken      int
}

// GameLeaderboard ranks completed plays of a game by score, faster first on ties.
func (ds *GameRepository) GameLeaderboard(gameID string, limit int) ([]dto.GameLeaderboardEntry, error) {
	var rows []gameLeaderboardRow
	err := ds.db.Table("game_participants").
		Select(`users.first_name, users.last_name, game_participants.score,
			game_participants.correct_answers, game_participants.total_answers, game_participants.time_taken`).
		Joins("JOIN game_sessions ON game_sessions.id = game_participants.session_id").
		Joins("JOIN users ON users.id = game_participants.user_id").
		Where("game_sessions.game_id = ? AND game_sessions.status = ?", gameID, model.SessionStatusCompleted).
		Order("game_participants.score DESC").
		Order("game_participants.time_taken ASC").
		Order("game_participants.id ASC").
		Limit(limit).
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	entries := make([]dto.GameLeaderboardEntry, 0, len(rows))
	for _, r := range rows {
		entries = append(entries, dto.GameLeaderboardEntry{
			FirstName:      r.FirstName,
			LastName:       r.LastName,
			Score:          r.Score,
			CorrectAnswers: r.CorrectAnswers,
			TotalAnswers:   r.TotalAnswers,
			TimeTaken:      r.TimeTaken,
			Accuracy:       accuracy(r.CorrectAnswers, r.TotalAnswers),
		})
	}
	return entries, nil
}

// accuracy is a percentage rounded to two decimals.
func accuracy(correct, total int) float64 {
	if total <= 0 {
		return 0
	}
	return math.Round(float64(correct)/float64(total)*10000) / 100
}
