package middleware

import (
	"time"

	"rurallearn/internal/config"
	"rurallearn/internal/logger"
	"rurallearn/internal/util"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// VisitorIDKey is the locals key holding the visitor id.
const VisitorIDKey = "visitorID"

// Visitor identifies the browser by a ULID cookie, issuing a new one when
// the cookie is missing or malformed. Visitors are anonymous; the id only
// keys their screen state.
func Visitor(cfg config.SessionConfig) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id := c.Cookies(cfg.CookieName)
		if !util.IsULID(id) {
			if id != "" {
				logger.Get().Debug("Visitor: replacing malformed visitor cookie", zap.String("cookie", id))
			}
			id = util.NewULID()
		}

		// sliding expiry
		c.Cookie(&fiber.Cookie{
			Name:     cfg.CookieName,
			Value:    id,
			Path:     "/",
			Expires:  time.Now().Add(cfg.TTL),
			HTTPOnly: true,
			Secure:   cfg.Secure,
			SameSite: fiber.CookieSameSiteLaxMode,
		})

		c.Locals(VisitorIDKey, id)
		return c.Next()
	}
}

// VisitorID returns the id set by Visitor.
func VisitorID(c *fiber.Ctx) string {
	return LocalString(c, VisitorIDKey)
}
