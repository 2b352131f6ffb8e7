package handler

import (
	"rurallearn/internal/domain"
	"rurallearn/internal/service"
	"rurallearn/internal/view"

	"github.com/gofiber/fiber/v2"
)

// LandingHandler serves the static home page
type LandingHandler struct {
	landing domain.Landing
	nav     service.NavigationService
}

// NewLandingHandler creates a new LandingHandler instance
func NewLandingHandler(landing domain.Landing, nav service.NavigationService) *LandingHandler {
	return &LandingHandler{landing: landing, nav: nav}
}

// Page handles GET /
func (h *LandingHandler) Page(c *fiber.Ctx) error {
	return renderPage(c, h.nav, view.PageLanding, "Home", h.landing)
}
