package handler

import (
	"rurallearn/internal/domain"
	"rurallearn/internal/middleware"
	"rurallearn/internal/service"

	"github.com/gofiber/fiber/v2"
)

// NavHandler handles the mobile menu toggle
type NavHandler struct {
	service service.NavigationService
}

// NewNavHandler creates a new NavHandler instance
func NewNavHandler(service service.NavigationService) *NavHandler {
	return &NavHandler{service: service}
}

// returnTo is the form's return_to value when it names a nav route, else "/".
func returnTo(c *fiber.Ctx) string {
	path := domain.CleanNavPath(c.FormValue("return_to"))
	if domain.IsNavRoute(path) {
		return path
	}
	return "/"
}

// ToggleMenu handles POST /nav/menu
func (h *NavHandler) ToggleMenu(c *fiber.Ctx) error {
	if err := h.service.ToggleMenu(c.UserContext(), middleware.VisitorID(c)); err != nil {
		return err
	}
	return backTo(c, returnTo(c))
}

// CloseMenu handles POST /nav/menu/close
func (h *NavHandler) CloseMenu(c *fiber.Ctx) error {
	if err := h.service.CloseMenu(c.UserContext(), middleware.VisitorID(c)); err != nil {
		return err
	}
	return backTo(c, returnTo(c))
}
