package handler

import (
	"errors"

	"quiz-runner/internal/domain"
	"quiz-runner/internal/dto"
	"quiz-runner/internal/middleware"
	"quiz-runner/internal/service"

	"github.com/gofiber/fiber/v2"
)

// QuizHandler handles quiz-related HTTP requests
type QuizHandler struct {
	service service.QuizService
}

// NewQuizHandler creates a new QuizHandler instance
func NewQuizHandler(service service.QuizService) *QuizHandler {
	return &QuizHandler{
		service: service,
	}
}

// GetQuiz godoc
// @Summary Get the current quiz state
// @Description Returns everything needed to draw the quiz: question, options, score, review
// @Tags quiz
// @Produce json
// @Success 200 {object} dto.QuizView
// @Router /quiz [get]
func (h *QuizHandler) GetQuiz(c *fiber.Ctx) error {
	return c.JSON(h.service.View())
}

// Answer godoc
// @Summary Answer the current question
// @Description Selects an option by its displayed position. The verdict is revealed after the feedback delay.
// @Tags quiz
// @Accept json
// @Produce json
// @Param answer body dto.AnswerRequest true "Answer Request"
// @Success 200 {object} dto.QuizView
// @Failure 400 {object} middleware.ValidationErrorResponse
// @Failure 409 {object} middleware.ErrorResponse
// @Router /quiz/answer [post]
func (h *QuizHandler) Answer(c *fiber.Ctx) error {
	option, ok := c.Locals(middleware.LocalsOption).(int)
	if !ok {
		return domain.NewInvalidInputError("option is required")
	}
	v, err := h.service.Select(c.UserContext(), option)
	if err != nil {
		return err
	}
	return c.JSON(v)
}

// Next godoc
// @Summary Go to the next question
// @Description Advances after the verdict is shown. Ignored before that.
// @Tags quiz
// @Produce json
// @Success 200 {object} dto.QuizView
// @Failure 409 {object} middleware.ErrorResponse
// @Router /quiz/next [post]
func (h *QuizHandler) Next(c *fiber.Ctx) error {
	v, err := h.service.Next(c.UserContext())
	if err != nil {
		return err
	}
	return c.JSON(v)
}

// Restart godoc
// @Summary Restart the quiz
// @Description Resets score and mistakes and reshuffles the questions
// @Tags quiz
// @Produce json
// @Success 200 {object} dto.QuizView
// @Failure 409 {object} middleware.ErrorResponse
// @Router /quiz/restart [post]
func (h *QuizHandler) Restart(c *fiber.Ctx) error {
	v, err := h.service.Restart(c.UserContext())
	if err != nil {
		return err
	}
	return c.JSON(v)
}

// ToggleTheme godoc
// @Summary Toggle dark mode
// @Tags settings
// @Produce json
// @Success 200 {object} dto.QuizView
// @Router /quiz/theme [post]
func (h *QuizHandler) ToggleTheme(c *fiber.Ctx) error {
	return c.JSON(h.service.ToggleTheme())
}

// SetAutoAdvance godoc
// @Summary Turn auto-advance on or off
// @Tags settings
// @Accept json
// @Produce json
// @Param request body dto.AutoAdvanceRequest true "Auto-advance Request"
// @Success 200 {object} dto.QuizView
// @Failure 400 {object} middleware.ValidationErrorResponse
// @Router /quiz/auto-advance [post]
func (h *QuizHandler) SetAutoAdvance(c *fiber.Ctx) error {
	var req dto.AutoAdvanceRequest
	if err := c.BodyParser(&req); err != nil {
		return domain.ValidationErrors{domain.NewInvalidFormatError("body", err.Error())}
	}
	return c.JSON(h.service.SetAutoAdvance(req.Enabled))
}

// GetResult godoc
// @Summary Get a recorded quiz result
// @Description Returns a finished attempt while it is still retained
// @Tags results
// @Produce json
// @Param id path string true "Result ID"
// @Success 200 {object} dto.QuizResult
// @Failure 400 {object} middleware.ValidationErrorResponse
// @Failure 404 {object} middleware.ErrorResponse
// @Router /quiz/results/{id} [get]
func (h *QuizHandler) GetResult(c *fiber.Ctx) error {
	id, _ := c.Locals(middleware.LocalsResultID).(string)
	result, err := h.service.GetResult(c.UserContext(), id)
	if err != nil {
		if errors.Is(err, service.ErrResultNotFound) {
			return fiber.NewError(fiber.StatusNotFound, "quiz result not found")
		}
		return err
	}
	return c.JSON(result)
}
