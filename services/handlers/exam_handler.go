package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/lac-hong-legacy/edu_api/dto"
	"github.com/lac-hong-legacy/edu_api/middleware"
	"github.com/lac-hong-legacy/edu_api/shared"
)

type ExamHandler struct {
	examSvc ExamServiceInterface
}

func NewExamHandler(examSvc ExamServiceInterface) *ExamHandler {
	return &ExamHandler{examSvc: examSvc}
}

// @Summary Get exam paper
// @Description Shuffled questions without answers. easy has 5 questions, moderate has 8.
// @Tags exams
// @Produce json
// @Security Bearer
// @Param Authorization header string true "Student Bearer Token" default(Bearer <user_token>)
// @Param subject path string true "math, science, technology or engineering"
// @Param difficulty query string false "easy or moderate" default(easy)
// @Success 200 {object} shared.Response{data=dto.ExamPaper}
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /api/v1/exams/{subject} [get]
func (h *ExamHandler) GetPaper(c *fiber.Ctx) error {
	paper, err := h.examSvc.Paper(c.Params("subject"), c.Query("difficulty", shared.DifficultyEasy))
	if err != nil {
		return err
	}

	return shared.ResponseOK(c, paper)
}

// @Summary Submit exam
// @Description Score the answers and award round(score/10)*5 points
// @Tags exams
// @Accept json
// @Produce json
// @Security Bearer
// @Param Authorization header string true "Student Bearer Token" default(Bearer <user_token>)
// @Param subject path string true "Exam subject"
// @Param submitExamRequest body dto.SubmitExamRequest true "Answers in paper order"
// @Success 200 {object} shared.Response{data=dto.ExamResult}
// @Failure 400 {object} dto.ValidationErrorResponse
// @Router /api/v1/exams/{subject}/submit [post]
func (h *ExamHandler) Submit(c *fiber.Ctx) error {
	var req dto.SubmitExamRequest
	if err := c.BodyParser(&req); err != nil {
		return shared.NewBadRequestError(err, "Invalid request body")
	}

	if err := req.Validate(); err != nil {
		validationResp := dto.CreateValidationErrorResponse(err)
		return c.Status(fiber.StatusBadRequest).JSON(validationResp)
	}

	result, err := h.examSvc.Submit(middleware.CurrentUserID(c), c.Params("subject"), req)
	if err != nil {
		return err
	}

	return shared.ResponseJSON(c, fiber.StatusOK, "Exam submitted", result)
}
