package handler

import (
	"rurallearn/internal/middleware"
	"rurallearn/internal/service"
	"rurallearn/internal/view"

	"github.com/gofiber/fiber/v2"
)

const quizPath = "/quiz"

// QuizHandler handles quiz-related HTTP requests
type QuizHandler struct {
	service service.QuizService
	nav     service.NavigationService
}

// NewQuizHandler creates a new QuizHandler instance
func NewQuizHandler(service service.QuizService, nav service.NavigationService) *QuizHandler {
	return &QuizHandler{
		service: service,
		nav:     nav,
	}
}

// Page handles GET /quiz
func (h *QuizHandler) Page(c *fiber.Ctx) error {
	state, err := h.service.State(c.UserContext(), middleware.VisitorID(c))
	if err != nil {
		return err
	}
	return renderPage(c, h.nav, view.PageQuiz, "Interactive Quiz", state)
}

// Select handles POST /quiz/select
func (h *QuizHandler) Select(c *fiber.Ctx) error {
	option := middleware.LocalString(c, middleware.ValidatedOptionKey)
	if _, err := h.service.Select(c.UserContext(), middleware.VisitorID(c), option); err != nil {
		return err
	}
	return backTo(c, quizPath)
}

// Next handles POST /quiz/next
func (h *QuizHandler) Next(c *fiber.Ctx) error {
	if _, err := h.service.Next(c.UserContext(), middleware.VisitorID(c)); err != nil {
		return err
	}
	return backTo(c, quizPath)
}

// Restart handles POST /quiz/restart
func (h *QuizHandler) Restart(c *fiber.Ctx) error {
	if _, err := h.service.Restart(c.UserContext(), middleware.VisitorID(c)); err != nil {
		return err
	}
	return backTo(c, quizPath)
}

// GetQuiz godoc
// @Summary Get the quiz state
// @Description Returns the visitor's current question or, once finished, the results
// @Tags quiz
// @Produce json
// @Success 200 {object} dto.QuizStateResponse
// @Failure 503 {object} middleware.ErrorResponse
// @Router /quiz [get]
func (h *QuizHandler) GetQuiz(c *fiber.Ctx) error {
	state, err := h.service.State(c.UserContext(), middleware.VisitorID(c))
	if err != nil {
		return err
	}
	return c.JSON(state)
}

// SelectOption godoc
// @Summary Select an option
// @Description Records the option index as the pending answer of the current question
// @Tags quiz
// @Accept json
// @Produce json
// @Param request body dto.SelectOptionRequest true "Option index, as a string or a number"
// @Success 200 {object} dto.QuizStateResponse
// @Failure 400 {object} middleware.ErrorResponse
// @Failure 503 {object} middleware.ErrorResponse
// @Router /quiz/select [post]
func (h *QuizHandler) SelectOption(c *fiber.Ctx) error {
	option := middleware.LocalString(c, middleware.ValidatedOptionKey)
	state, err := h.service.Select(c.UserContext(), middleware.VisitorID(c), option)
	if err != nil {
		return err
	}
	return c.JSON(state)
}

// NextQuestion godoc
// @Summary Commit the pending answer
// @Description Advances to the next question, or to the results after the last one. Does nothing while no option is selected.
// @Tags quiz
// @Produce json
// @Success 200 {object} dto.QuizStateResponse
// @Failure 503 {object} middleware.ErrorResponse
// @Router /quiz/next [post]
func (h *QuizHandler) NextQuestion(c *fiber.Ctx) error {
	state, err := h.service.Next(c.UserContext(), middleware.VisitorID(c))
	if err != nil {
		return err
	}
	return c.JSON(state)
}

// RestartQuiz godoc
// @Summary Restart the quiz
// @Description Discards the attempt and starts again at the first question
// @Tags quiz
// @Produce json
// @Success 200 {object} dto.QuizStateResponse
// @Failure 503 {object} middleware.ErrorResponse
// @Router /quiz/restart [post]
func (h *QuizHandler) RestartQuiz(c *fiber.Ctx) error {
	state, err := h.service.Restart(c.UserContext(), middleware.VisitorID(c))
	if err != nil {
		return err
	}
	return c.JSON(state)
}
