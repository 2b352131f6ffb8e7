package handler

import (
	"bytes"

	"rurallearn/internal/export"
	"rurallearn/internal/logger"
	"rurallearn/internal/middleware"
	"rurallearn/internal/service"
	"rurallearn/internal/view"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// LibraryHandler handles content library requests
type LibraryHandler struct {
	service service.LibraryService
	nav     service.NavigationService
}

// NewLibraryHandler creates a new LibraryHandler instance
func NewLibraryHandler(service service.LibraryService, nav service.NavigationService) *LibraryHandler {
	return &LibraryHandler{service: service, nav: nav}
}

func validatedFilter(c *fiber.Ctx) (query, subject string) {
	return middleware.LocalString(c, middleware.ValidatedQueryKey),
		middleware.LocalString(c, middleware.ValidatedSubjectKey)
}

// Page handles GET /library
func (h *LibraryHandler) Page(c *fiber.Ctx) error {
	query, subject := validatedFilter(c)
	return renderPage(c, h.nav, view.PageLibrary, "Content Library", h.service.Browse(query, subject))
}

// GetSubjects godoc
// @Summary List subjects
// @Description Returns the subject selector entries, including "all"
// @Tags library
// @Produce json
// @Success 200 {array} domain.Subject
// @Router /subjects [get]
func (h *LibraryHandler) GetSubjects(c *fiber.Ctx) error {
	return c.JSON(h.service.Subjects())
}

// GetLibrary godoc
// @Summary Filter the content library
// @Description Returns the items whose title, subject or instructor contains q, narrowed by subject
// @Tags library
// @Produce json
// @Param q query string false "Search text"
// @Param subject query string false "Subject id, or all"
// @Success 200 {object} dto.LibraryResponse
// @Failure 400 {object} middleware.ValidationErrorResponse
// @Router /library [get]
func (h *LibraryHandler) GetLibrary(c *fiber.Ctx) error {
	query, subject := validatedFilter(c)
	return c.JSON(h.service.Browse(query, subject))
}

// Export handles GET /library/export.xlsx
func (h *LibraryHandler) Export(c *fiber.Ctx) error {
	query, subject := validatedFilter(c)
	resp := h.service.Browse(query, subject)

	var buf bytes.Buffer
	if err := export.WriteCatalog(&buf, resp.Items, resp.Query, resp.Subject); err != nil {
		logger.Get().Error("Failed to export catalog",
			zap.Error(err),
			zap.String("query", query),
			zap.String("subject", subject),
		)
		return err
	}

	c.Set(fiber.HeaderContentType, export.ContentType)
	c.Attachment("rurallearn-catalog.xlsx")
	return c.Send(buf.Bytes())
}
