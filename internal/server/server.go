// Package server assembles the fiber application: services, handlers,
// middleware and routes.
package server

import (
	"time"

	"rurallearn/internal/config"
	"rurallearn/internal/domain"
	"rurallearn/internal/handler"
	"rurallearn/internal/metrics"
	"rurallearn/internal/middleware"
	"rurallearn/internal/seed"
	"rurallearn/internal/service"
	"rurallearn/internal/view"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/swagger"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Deps are the long-lived objects the app is built from.
type Deps struct {
	Config  *config.Config
	Catalog *seed.Catalog
	Cache   domain.Cache
	Metrics *metrics.Metrics // nil disables /metrics
}

// New builds the fiber app with every route registered.
func New(d Deps) *fiber.App {
	cfg := d.Config

	sessions := service.NewSessionStore(d.Cache, cfg.Session.TTL, d.Catalog.Quiz.TimePerQuestion)
	navService := service.NewNavigationService(sessions)
	libraryService := service.NewLibraryService(d.Catalog, d.Metrics)
	quizService := service.NewQuizService(d.Catalog, sessions, d.Metrics)
	classroomService := service.NewClassroomService(d.Catalog, sessions, d.Metrics)

	landingHandler := handler.NewLandingHandler(d.Catalog.Landing, navService)
	libraryHandler := handler.NewLibraryHandler(libraryService, navService)
	quizHandler := handler.NewQuizHandler(quizService, navService)
	classroomHandler := handler.NewClassroomHandler(classroomService, navService)
	navHandler := handler.NewNavHandler(navService)
	healthHandler := handler.NewHealthHandler(d.Cache)

	validate := middleware.NewValidationMiddleware()
	visitor := middleware.Visitor(cfg.Session)

	app := fiber.New(fiber.Config{
		AppName:      "RuralLearn",
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
		BodyLimit:    cfg.Server.BodyLimit,
		Views:        view.New(),
		ErrorHandler: middleware.ErrorHandler(handler.ErrorPage()),
	})

	app.Use(middleware.RequestLogger(d.Metrics))
	app.Use(recover.New())

	// Operational routes
	app.Get("/healthz", healthHandler.Check)
	if d.Metrics != nil && cfg.Metrics.Enabled {
		app.Get("/metrics", adaptor.HTTPHandler(promhttp.HandlerFor(d.Metrics.Registry, promhttp.HandlerOpts{})))
	}
	app.Get("/swagger/*", swagger.HandlerDefault)

	// Screens
	app.Get("/", visitor, landingHandler.Page)

	app.Get("/library", visitor, validate.ValidateLibraryQuery(), libraryHandler.Page)
	app.Get("/library/export.xlsx", validate.ValidateLibraryQuery(), libraryHandler.Export)

	quiz := app.Group("/quiz", visitor)
	quiz.Get("/", quizHandler.Page)
	quiz.Post("/select", validate.ValidateOption(), quizHandler.Select)
	quiz.Post("/next", quizHandler.Next)
	quiz.Post("/restart", quizHandler.Restart)

	classroom := app.Group("/classroom", visitor)
	classroom.Get("/", classroomHandler.Page)
	classroom.Post("/mute", classroomHandler.ToggleMute)
	classroom.Post("/audio", classroomHandler.ToggleAudio)
	classroom.Post("/chat", validate.ValidateChatDraft(), classroomHandler.SaveDraft)

	nav := app.Group("/nav", visitor)
	nav.Post("/menu", navHandler.ToggleMenu)
	nav.Post("/menu/close", navHandler.CloseMenu)

	// JSON API
	api := app.Group(middleware.APIPrefix, cors.New(cors.Config{
		AllowOrigins: "*",
		AllowMethods: "GET,POST,PUT,OPTIONS",
		AllowHeaders: "Origin,Content-Type,Accept",
		MaxAge:       int((5 * time.Minute).Seconds()),
	}), visitor)

	api.Get("/subjects", libraryHandler.GetSubjects)
	api.Get("/library", validate.ValidateLibraryQuery(), libraryHandler.GetLibrary)

	api.Get("/quiz", quizHandler.GetQuiz)
	api.Post("/quiz/select", validate.ValidateOption(), quizHandler.SelectOption)
	api.Post("/quiz/next", quizHandler.NextQuestion)
	api.Post("/quiz/restart", quizHandler.RestartQuiz)

	api.Get("/classroom", classroomHandler.GetClassroom)
	api.Post("/classroom/mute", classroomHandler.PostMute)
	api.Post("/classroom/audio", classroomHandler.PostAudio)
	api.Put("/classroom/chat", validate.ValidateChatDraft(), classroomHandler.PutChatDraft)

	return app
}
