package handlers

import (
	"net/http"

	"github.com/gofiber/fiber/v2"
	"github.com/lac-hong-legacy/edu_api/dto"
	"github.com/lac-hong-legacy/edu_api/middleware"
	"github.com/lac-hong-legacy/edu_api/shared"
)

type StudentHandler struct {
	studentSvc StudentServiceInterface
}

func NewStudentHandler(studentSvc StudentServiceInterface) *StudentHandler {
	return &StudentHandler{
		studentSvc: studentSvc,
	}
}

// @Summary Record topic progress
// @Description Upsert progress on a topic and award floor(completion*10) points. Every call awards again.
// @Tags students
// @Accept json
// @Produce json
// @Security Bearer
// @Param Authorization header string true "Student Bearer Token" default(Bearer <user_token>)
// @Param progressRequest body dto.ProgressRequest true "Progress update"
// @Success 200 {object} shared.Response{data=dto.ProgressResult}
// @Failure 400 {object} dto.ValidationErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /api/v1/students/progress [post]
func (h *StudentHandler) RecordProgress(c *fiber.Ctx) error {
	var req dto.ProgressRequest
	if err := c.BodyParser(&req); err != nil {
		return shared.NewBadRequestError(err, "Invalid request body")
	}

	if err := req.Validate(); err != nil {
		validationResp := dto.CreateValidationErrorResponse(err)
		return c.Status(fiber.StatusBadRequest).JSON(validationResp)
	}

	resp, err := h.studentSvc.RecordProgress(middleware.CurrentUserID(c), req)
	if err != nil {
		return err
	}

	return shared.ResponseJSON(c, http.StatusOK, "Progress updated successfully", resp)
}

// @Summary Subject progress
// @Description Average completion and completed topics per subject for the current student
// @Tags students
// @Produce json
// @Security Bearer
// @Param Authorization header string true "Student Bearer Token" default(Bearer <user_token>)
// @Success 200 {object} shared.Response{data=[]dto.SubjectProgress}
// @Router /api/v1/students/progress [get]
func (h *StudentHandler) GetProgress(c *fiber.Ctx) error {
	resp, err := h.studentSvc.SubjectProgress(middleware.CurrentUserID(c))
	if err != nil {
		return err
	}

	return shared.ResponseOK(c, resp)
}

// @Summary Student achievements
// @Tags students
// @Produce json
// @Security Bearer
// @Param Authorization header string true "Student Bearer Token" default(Bearer <user_token>)
// @Success 200 {object} shared.Response{data=[]dto.StudentAchievementResponse}
// @Router /api/v1/students/achievements [get]
func (h *StudentHandler) GetAchievements(c *fiber.Ctx) error {
	resp, err := h.studentSvc.Achievements(middleware.CurrentUserID(c))
	if err != nil {
		return err
	}

	return shared.ResponseOK(c, resp)
}
