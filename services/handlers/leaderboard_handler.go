package handlers

import (
	"strconv"

	"github.com/gofiber/fiber/v2"
	"github.com/lac-hong-legacy/edu_api/shared"
)

type LeaderboardHandler struct {
	studentSvc StudentServiceInterface
	gameSvc    GameServiceInterface
}

func NewLeaderboardHandler(studentSvc StudentServiceInterface, gameSvc GameServiceInterface) *LeaderboardHandler {
	return &LeaderboardHandler{
		studentSvc: studentSvc,
		gameSvc:    gameSvc,
	}
}

// @Summary Student leaderboard
// @Description Active students by total points, ties broken by student id
// @Tags leaderboard
// @Produce json
// @Param limit query int false "Limit results (default 10, max 100)"
// @Success 200 {object} shared.Response{data=[]dto.LeaderboardEntry}
// @Router /api/v1/students/leaderboard [get]
func (h *LeaderboardHandler) GetStudentLeaderboard(c *fiber.Ctx) error {
	limit := shared.DefaultLeaderboardLimit
	if l := c.Query("limit"); l != "" {
		if parsed, err := strconv.Atoi(l); err == nil && parsed > 0 && parsed <= shared.MaxLeaderboardLimit {
			limit = parsed
		}
	}

	leaderboard, err := h.studentSvc.Leaderboard(limit)
	if err != nil {
		return err
	}

	return shared.ResponseJSON(c, fiber.StatusOK, "Success", leaderboard)
}

// @Summary Game leaderboard
// @Description Top 10 completed sessions of a game by score, then time
// @Tags leaderboard
// @Produce json
// @Param id path string true "Game ID"
// @Success 200 {object} shared.Response{data=[]dto.GameLeaderboardEntry}
// @Failure 404 {object} dto.ErrorResponse
// @Router /api/v1/games/{id}/leaderboard [get]
func (h *LeaderboardHandler) GetGameLeaderboard(c *fiber.Ctx) error {
	leaderboard, err := h.gameSvc.Leaderboard(c.Params("id"))
	if err != nil {
		return err
	}

	return shared.ResponseJSON(c, fiber.StatusOK, "Success", leaderboard)
}
