package handler

import (
	"context"

	"rurallearn/internal/dto"
	"rurallearn/internal/middleware"
	"rurallearn/internal/service"
	"rurallearn/internal/view"

	"github.com/gofiber/fiber/v2"
)

const classroomPath = "/classroom"

// ClassroomHandler handles the virtual classroom controls
type ClassroomHandler struct {
	service service.ClassroomService
	nav     service.NavigationService
}

// NewClassroomHandler creates a new ClassroomHandler instance
func NewClassroomHandler(service service.ClassroomService, nav service.NavigationService) *ClassroomHandler {
	return &ClassroomHandler{service: service, nav: nav}
}

type classroomAction func(ctx context.Context, visitorID string) (*dto.ClassroomResponse, error)

func (h *ClassroomHandler) redirectAfter(action classroomAction) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if _, err := action(c.UserContext(), middleware.VisitorID(c)); err != nil {
			return err
		}
		return backTo(c, classroomPath)
	}
}

func (h *ClassroomHandler) respondWith(action classroomAction) fiber.Handler {
	return func(c *fiber.Ctx) error {
		resp, err := action(c.UserContext(), middleware.VisitorID(c))
		if err != nil {
			return err
		}
		return c.JSON(resp)
	}
}

func (h *ClassroomHandler) setDraft(c *fiber.Ctx) classroomAction {
	message := middleware.LocalString(c, middleware.ValidatedMessageKey)
	return func(ctx context.Context, visitorID string) (*dto.ClassroomResponse, error) {
		return h.service.SetChatDraft(ctx, visitorID, message)
	}
}

// Page handles GET /classroom
func (h *ClassroomHandler) Page(c *fiber.Ctx) error {
	resp, err := h.service.State(c.UserContext(), middleware.VisitorID(c))
	if err != nil {
		return err
	}
	return renderPage(c, h.nav, view.PageClassroom, "Virtual Classroom", resp)
}

// ToggleMute handles POST /classroom/mute
func (h *ClassroomHandler) ToggleMute(c *fiber.Ctx) error {
	return h.redirectAfter(h.service.ToggleMute)(c)
}

// ToggleAudio handles POST /classroom/audio
func (h *ClassroomHandler) ToggleAudio(c *fiber.Ctx) error {
	return h.redirectAfter(h.service.ToggleAudio)(c)
}

// SaveDraft handles POST /classroom/chat. The draft is kept, never sent.
func (h *ClassroomHandler) SaveDraft(c *fiber.Ctx) error {
	return h.redirectAfter(h.setDraft(c))(c)
}

// GetClassroom godoc
// @Summary Get the classroom
// @Description Returns the session details and the visitor's control state
// @Tags classroom
// @Produce json
// @Success 200 {object} dto.ClassroomResponse
// @Failure 503 {object} middleware.ErrorResponse
// @Router /classroom [get]
func (h *ClassroomHandler) GetClassroom(c *fiber.Ctx) error {
	return h.respondWith(h.service.State)(c)
}

// PostMute godoc
// @Summary Toggle the microphone
// @Tags classroom
// @Produce json
// @Success 200 {object} dto.ClassroomResponse
// @Failure 503 {object} middleware.ErrorResponse
// @Router /classroom/mute [post]
func (h *ClassroomHandler) PostMute(c *fiber.Ctx) error {
	return h.respondWith(h.service.ToggleMute)(c)
}

// PostAudio godoc
// @Summary Toggle incoming audio
// @Tags classroom
// @Produce json
// @Success 200 {object} dto.ClassroomResponse
// @Failure 503 {object} middleware.ErrorResponse
// @Router /classroom/audio [post]
func (h *ClassroomHandler) PostAudio(c *fiber.Ctx) error {
	return h.respondWith(h.service.ToggleAudio)(c)
}

// PutChatDraft godoc
// @Summary Replace the chat draft
// @Description Stores the draft text. Nothing is transmitted.
// @Tags classroom
// @Accept json
// @Produce json
// @Param request body dto.ChatDraftRequest true "Draft"
// @Success 200 {object} dto.ClassroomResponse
// @Failure 400 {object} middleware.ValidationErrorResponse
// @Failure 503 {object} middleware.ErrorResponse
// @Router /classroom/chat [put]
func (h *ClassroomHandler) PutChatDraft(c *fiber.Ctx) error {
	return h.respondWith(h.setDraft(c))(c)
}
