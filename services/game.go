package services

import (
	stdctx "context"
	"errors"
	"math/rand/v2"
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
	gameCatalogueKey  = "games:active"
	gameCatalogueTTL  = 5 * time.Minute
	sessionCodeChars  = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"
	sessionCodeLength = 6
	questionsPerGame  = 10
	gameBoardLimit    = 10
)

var (
	errSessionClosed = errors.New("game session already completed")
)

type GameService struct {
	context.DefaultService

	games      *repositories.GameRepository
	studentSvc *StudentService
	redisSvc   *RedisService
}

const GAME_SVC = "game_svc"

func (svc GameService) Id() string {
	return GAME_SVC
}

func (svc *GameService) Configure(ctx *context.Context) error {
	return svc.DefaultService.Configure(ctx)
}

func (svc *GameService) Start() error {
	svc.games = svc.Service(DATABASE_SVC).(*DatabaseService).Games()
	svc.studentSvc = svc.Service(STUDENT_SVC).(*StudentService)
	if redisSvc, ok := svc.Service(REDIS_SVC).(*RedisService); ok && redisSvc.Enabled() {
		svc.redisSvc = redisSvc
	}
	return nil
}

func NewGameService(games *repositories.GameRepository, studentSvc *StudentService, redisSvc *RedisService) *GameService {
	return &GameService{games: games, studentSvc: studentSvc, redisSvc: redisSvc}
}

// ListGames serves the active catalogue, from redis when it is warm.
func (svc *GameService) ListGames() ([]dto.GameResponse, error) {
	ctx := stdctx.Background()

	if svc.redisSvc != nil {
		var cached []dto.GameResponse
		if err := svc.redisSvc.GetJSON(ctx, gameCatalogueKey, &cached); err == nil && cached != nil {
			return cached, nil
		} else if err != nil {
			log.WithError(err).Warn("Game catalogue cache read failed")
		}
	}

	games, err := svc.games.ListActive()
	if err != nil {
		return nil, shared.NewInternalError(err)
	}

	if svc.redisSvc != nil {
		if err := svc.redisSvc.Set(ctx, gameCatalogueKey, games, gameCatalogueTTL); err != nil {
			log.WithError(err).Warn("Game catalogue cache write failed")
		}
	}
	return games, nil
}

func (svc *GameService) ListAllGames() ([]dto.GameResponse, error) {
	games, err := svc.games.ListAll()
	if err != nil {
		return nil, shared.NewInternalError(err)
	}
	return games, nil
}

func (svc *GameService) GetGame(gameID string) (*dto.GameResponse, error) {
	game, err := svc.games.GetActive(gameID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.NewNotFoundError(err, "Game not found")
		}
		return nil, shared.NewInternalError(err)
	}
	return game, nil
}

func newSessionCode() string {
	b := make([]byte, sessionCodeLength)
	for i := range b {
		b[i] = sessionCodeChars[rand.IntN(len(sessionCodeChars))]
	}
	return string(b)
}

// StartGame opens a session for userID on an active game.
func (svc *GameService) StartGame(userID, gameID string) (*dto.StartGameResponse, error) {
	game, err := svc.GetGame(gameID)
	if err != nil {
		return nil, err
	}

	var session *model.GameSession
	for attempt := 0; attempt < 5; attempt++ {
		session = &model.GameSession{
			GameID:         game.ID,
			SessionCode:    newSessionCode(),
			Status:         model.SessionStatusActive,
			TotalQuestions: questionsPerGame,
			TimeRemaining:  game.TimeLimit,
			CreatedBy:      userID,
		}
		err = svc.games.StartSession(session, &model.GameParticipant{UserID: userID})
		if err == nil || !IsDuplicateKey(err) {
			break
		}
	}
	if err != nil {
		return nil, shared.NewInternalError(err)
	}

	return &dto.StartGameResponse{
		SessionID:     session.ID,
		SessionCode:   session.SessionCode,
		Game:          *game,
		TimeRemaining: game.TimeLimit,
	}, nil
}

// SubmitGame closes the caller's session and awards
// floor(correct/total * pointsReward) through the ledger.
func (svc *GameService) SubmitGame(userID, gameID string, req dto.SubmitGameRequest) (*dto.SubmitGameResponse, error) {
	studentID, err := svc.studentSvc.StudentIDForUser(userID)
	if err != nil {
		return nil, err
	}

	var award *dto.AwardResult
	err = svc.games.Transaction(func(tx *gorm.DB) error {
		game, err := svc.games.GetGame(tx, gameID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return shared.NewNotFoundError(err, "Game not found")
			}
			return err
		}

		session, err := svc.games.LockSession(tx, gameID, req.SessionID, userID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return shared.NewNotFoundError(err, "Game session not found")
			}
			return err
		}
		if session.Status == model.SessionStatusCompleted {
			return shared.NewBadRequestError(errSessionClosed, "Game session already completed")
		}

		if err := svc.games.CompleteSession(tx, session.ID, userID, req, time.Now()); err != nil {
			return err
		}

		points := GamePoints(req.CorrectAnswers, req.TotalAnswers, game.PointsReward)
		award, err = svc.studentSvc.AwardInTx(tx, studentID, points)
		return err
	})
	if err != nil {
		if _, ok := shared.GetAppError(err); ok {
			return nil, err
		}
		return nil, shared.NewInternalError(err)
	}

	svc.studentSvc.Awarded(userID, SourceGame, award)

	return &dto.SubmitGameResponse{
		Score:        req.Score,
		PointsEarned: award.PointsEarned,
		NewLevel:     award.NewLevel,
		TotalPoints:  award.TotalPoints,
	}, nil
}

func (svc *GameService) Leaderboard(gameID string) ([]dto.GameLeaderboardEntry, error) {
	if _, err := svc.games.GetGame(nil, gameID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.NewNotFoundError(err, "Game not found")
		}
		return nil, shared.NewInternalError(err)
	}

	entries, err := svc.games.GameLeaderboard(gameID, gameBoardLimit)
	if err != nil {
		return nil, shared.NewInternalError(err)
	}
	return entries, nil
}
