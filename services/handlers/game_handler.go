package handlers

import (
	"net/http"

	"github.com/gofiber/fiber/v2"
	"github.com/lac-hong-legacy/edu_api/dto"
	"github.com/lac-hong-legacy/edu_api/middleware"
	"github.com/lac-hong-legacy/edu_api/shared"
)

type GameHandler struct {
	gameSvc GameServiceInterface
}

func NewGameHandler(gameSvc GameServiceInterface) *GameHandler {
	return &GameHandler{
		gameSvc: gameSvc,
	}
}

// @Summary List games
// @Description Active games, newest first
// @Tags games
// @Produce json
// @Success 200 {object} shared.Response{data=[]dto.GameResponse}
// @Router /api/v1/games [get]
func (h *GameHandler) ListGames(c *fiber.Ctx) error {
	games, err := h.gameSvc.ListGames()
	if err != nil {
		return err
	}

	return shared.ResponseOK(c, games)
}

// @Summary Get game
// @Tags games
// @Produce json
// @Param id path string true "Game ID"
// @Success 200 {object} shared.Response{data=dto.GameResponse}
// @Failure 404 {object} dto.ErrorResponse
// @Router /api/v1/games/{id} [get]
func (h *GameHandler) GetGame(c *fiber.Ctx) error {
	game, err := h.gameSvc.GetGame(c.Params("id"))
	if err != nil {
		return err
	}

	return shared.ResponseOK(c, game)
}

// @Summary Start game session
// @Tags games
// @Produce json
// @Security Bearer
// @Param Authorization header string true "Student Bearer Token" default(Bearer <user_token>)
// @Param id path string true "Game ID"
// @Success 201 {object} shared.Response{data=dto.StartGameResponse}
// @Failure 404 {object} dto.ErrorResponse
// @Router /api/v1/games/{id}/start [post]
func (h *GameHandler) StartGame(c *fiber.Ctx) error {
	resp, err := h.gameSvc.StartGame(middleware.CurrentUserID(c), c.Params("id"))
	if err != nil {
		return err
	}

	return shared.ResponseJSON(c, http.StatusCreated, "Game session started", resp)
}

// @Summary Submit game result
// @Description Complete a session and award floor(correct/total * reward) points
// @Tags games
// @Accept json
// @Produce json
// @Security Bearer
// @Param Authorization header string true "Student Bearer Token" default(Bearer <user_token>)
// @Param id path string true "Game ID"
// @Param submitGameRequest body dto.SubmitGameRequest true "Session result"
// @Success 200 {object} shared.Response{data=dto.SubmitGameResponse}
// @Failure 400 {object} dto.ValidationErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /api/v1/games/{id}/submit [post]
func (h *GameHandler) SubmitGame(c *fiber.Ctx) error {
	var req dto.SubmitGameRequest
	if err := c.BodyParser(&req); err != nil {
		return shared.NewBadRequestError(err, "Invalid request body")
	}

	if err := req.Validate(); err != nil {
		validationResp := dto.CreateValidationErrorResponse(err)
		return c.Status(fiber.StatusBadRequest).JSON(validationResp)
	}

	resp, err := h.gameSvc.SubmitGame(middleware.CurrentUserID(c), c.Params("id"), req)
	if err != nil {
		return err
	}

	return shared.ResponseJSON(c, http.StatusOK, "Game completed successfully", resp)
}
