package handlers

import (
	"net/http"

	"github.com/gofiber/fiber/v2"
	"github.com/lac-hong-legacy/edu_api/dto"
	"github.com/lac-hong-legacy/edu_api/shared"
)

type AdminHandler struct {
	adminSvc AdminServiceInterface
}

func NewAdminHandler(adminSvc AdminServiceInterface) *AdminHandler {
	return &AdminHandler{
		adminSvc: adminSvc,
	}
}

// @Summary List students
// @Description All students with their account and ledger fields
// @Tags admin
// @Produce json
// @Security Bearer
// @Param Authorization header string true "Admin Bearer Token" default(Bearer <admin_token>)
// @Success 200 {object} shared.Response{data=[]dto.AdminStudent}
// @Failure 403 {object} dto.ErrorResponse
// @Router /api/v1/admin/students [get]
func (h *AdminHandler) GetStudents(c *fiber.Ctx) error {
	students, err := h.adminSvc.Students()
	if err != nil {
		return err
	}

	return shared.ResponseOK(c, students)
}

// @Summary Add student
// @Description Create a verified student account
// @Tags admin
// @Accept json
// @Produce json
// @Security Bearer
// @Param Authorization header string true "Admin Bearer Token" default(Bearer <admin_token>)
// @Param addStudentRequest body dto.AddStudentRequest true "Student details"
// @Success 201 {object} shared.Response{data=dto.AddStudentResponse}
// @Failure 400 {object} dto.ValidationErrorResponse
// @Router /api/v1/admin/students [post]
func (h *AdminHandler) AddStudent(c *fiber.Ctx) error {
	var req dto.AddStudentRequest
	if err := c.BodyParser(&req); err != nil {
		return shared.NewBadRequestError(err, "Invalid request body")
	}

	if err := req.Validate(); err != nil {
		validationResp := dto.CreateValidationErrorResponse(err)
		return c.Status(fiber.StatusBadRequest).JSON(validationResp)
	}

	resp, err := h.adminSvc.AddStudent(req)
	if err != nil {
		return err
	}

	return shared.ResponseJSON(c, http.StatusCreated, "Student added successfully", resp)
}

// @Summary Activate or deactivate a student
// @Description Deactivated students cannot log in and drop off the leaderboard
// @Tags admin
// @Accept json
// @Produce json
// @Security Bearer
// @Param Authorization header string true "Admin Bearer Token" default(Bearer <admin_token>)
// @Param id path string true "User ID"
// @Param statusRequest body dto.StudentStatusRequest true "New status"
// @Success 200 {object} shared.Response
// @Failure 404 {object} dto.ErrorResponse
// @Router /api/v1/admin/students/{id}/status [patch]
func (h *AdminHandler) SetStudentStatus(c *fiber.Ctx) error {
	var req dto.StudentStatusRequest
	if err := c.BodyParser(&req); err != nil {
		return shared.NewBadRequestError(err, "Invalid request body")
	}

	if err := req.Validate(); err != nil {
		validationResp := dto.CreateValidationErrorResponse(err)
		return c.Status(fiber.StatusBadRequest).JSON(validationResp)
	}

	if err := h.adminSvc.SetStudentStatus(c.Params("id"), *req.IsActive); err != nil {
		return err
	}

	msg := "Student deactivated"
	if *req.IsActive {
		msg = "Student activated"
	}
	return shared.ResponseJSON(c, http.StatusOK, msg, nil)
}

// @Summary List all games
// @Description Every game including inactive ones
// @Tags admin
// @Produce json
// @Security Bearer
// @Param Authorization header string true "Admin Bearer Token" default(Bearer <admin_token>)
// @Success 200 {object} shared.Response{data=[]dto.GameResponse}
// @Router /api/v1/admin/games [get]
func (h *AdminHandler) GetGames(c *fiber.Ctx) error {
	games, err := h.adminSvc.Games()
	if err != nil {
		return err
	}

	return shared.ResponseOK(c, games)
}

// @Summary Dashboard stats
// @Tags admin
// @Produce json
// @Security Bearer
// @Param Authorization header string true "Admin Bearer Token" default(Bearer <admin_token>)
// @Success 200 {object} shared.Response{data=dto.PlatformStats}
// @Router /api/v1/admin/stats [get]
func (h *AdminHandler) GetStats(c *fiber.Ctx) error {
	stats, err := h.adminSvc.Stats(c.UserContext())
	if err != nil {
		return err
	}

	return shared.ResponseOK(c, stats)
}

// @Summary Recent activity
// @Description Latest registrations and completed games, newest first
// @Tags admin
// @Produce json
// @Security Bearer
// @Param Authorization header string true "Admin Bearer Token" default(Bearer <admin_token>)
// @Success 200 {object} shared.Response{data=[]dto.ActivityItem}
// @Router /api/v1/admin/activity [get]
func (h *AdminHandler) GetActivity(c *fiber.Ctx) error {
	activity, err := h.adminSvc.Activity(c.UserContext())
	if err != nil {
		return err
	}

	return shared.ResponseOK(c, activity)
}
