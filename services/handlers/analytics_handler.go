package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/lac-hong-legacy/edu_api/shared"
)

type AnalyticsHandler struct {
	analyticsSvc AnalyticsServiceInterface
}

func NewAnalyticsHandler(analyticsSvc AnalyticsServiceInterface) *AnalyticsHandler {
	return &AnalyticsHandler{analyticsSvc: analyticsSvc}
}

// @Summary Platform analytics
// @Tags analytics
// @Produce json
// @Security Bearer
// @Param Authorization header string true "Admin Bearer Token" default(Bearer <admin_token>)
// @Success 200 {object} shared.Response{data=dto.PlatformAnalytics}
// @Router /api/v1/analytics/platform [get]
func (h *AnalyticsHandler) GetPlatform(c *fiber.Ctx) error {
	resp, err := h.analyticsSvc.Platform(c.UserContext())
	if err != nil {
		return err
	}

	return shared.ResponseOK(c, resp)
}

// @Summary Student performance
// @Description Per-subject completion and time for one student
// @Tags analytics
// @Produce json
// @Security Bearer
// @Param Authorization header string true "Admin Bearer Token" default(Bearer <admin_token>)
// @Param id path string true "Student ID"
// @Success 200 {object} shared.Response{data=[]dto.SubjectPerformance}
// @Failure 404 {object} dto.ErrorResponse
// @Router /api/v1/analytics/students/{id} [get]
func (h *AnalyticsHandler) GetStudentPerformance(c *fiber.Ctx) error {
	resp, err := h.analyticsSvc.StudentPerformance(c.UserContext(), c.Params("id"))
	if err != nil {
		return err
	}

	return shared.ResponseOK(c, resp)
}

// @Summary Game analytics
// @Tags analytics
// @Produce json
// @Security Bearer
// @Param Authorization header string true "Admin Bearer Token" default(Bearer <admin_token>)
// @Success 200 {object} shared.Response{data=[]dto.GameAnalytics}
// @Router /api/v1/analytics/games [get]
func (h *AnalyticsHandler) GetGames(c *fiber.Ctx) error {
	resp, err := h.analyticsSvc.GameStats(c.UserContext())
	if err != nil {
		return err
	}

	return shared.ResponseOK(c, resp)
}
