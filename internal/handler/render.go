package handler

import (
	"net/http"

	"rurallearn/internal/domain"
	"rurallearn/internal/dto"
	"rurallearn/internal/logger"
	"rurallearn/internal/middleware"
	"rurallearn/internal/service"
	"rurallearn/internal/view"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// renderPage renders a screen wrapped in the layout with the visitor's nav bar.
func renderPage(c *fiber.Ctx, nav service.NavigationService, name, title string, data interface{}) error {
	path := domain.CleanNavPath(c.Path())
	bar, err := nav.Bar(c.UserContext(), middleware.VisitorID(c), path)
	if err != nil {
		return err
	}
	return c.Render(name, view.Page{
		Title: title,
		Path:  path,
		Nav:   bar,
		Data:  data,
	}, view.Layout)
}

// ErrorPage renders the error screen. The nav bar is drawn without the
// visitor's menu state since the session cache may be what failed.
func ErrorPage() middleware.ErrorPage {
	return func(c *fiber.Ctx, status int, message string) error {
		bar := &dto.NavBar{}
		for _, item := range domain.NavItems {
			bar.Links = append(bar.Links, dto.NavLink{Name: item.Name, Href: item.Href})
		}

		err := c.Status(status).Render(view.PageError, view.Page{
			Title: http.StatusText(status),
			Path:  "/",
			Nav:   bar,
			Data:  view.ErrorData{Status: status, Message: message},
		}, view.Layout)
		if err != nil {
			logger.Get().Error("Failed to render error page", zap.Error(err))
			return c.Status(status).SendString(message)
		}
		return nil
	}
}

// backTo redirects a form post to the screen it came from.
func backTo(c *fiber.Ctx, path string) error {
	return c.Redirect(path, fiber.StatusSeeOther)
}
