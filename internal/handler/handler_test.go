package handler_test

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"testing"
	"time"

	"rurallearn/internal/config"
	"rurallearn/internal/domain"
	"rurallearn/internal/dto"
	"rurallearn/internal/handler"
	"rurallearn/internal/logger"
	"rurallearn/internal/middleware"
	"rurallearn/internal/view"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMain(m *testing.M) {
	if err := logger.Initialize(config.LoggerConfig{Env: "test", Level: "error"}); err != nil {
		panic("Failed to initialize logger for tests: " + err.Error())
	}
	code := m.Run()
	_ = logger.Sync()
	os.Exit(code)
}

// --- Manual Mocks ---

type MockQuizService struct {
	StateFunc   func(ctx context.Context, visitorID string) (*dto.QuizStateResponse, error)
	SelectFunc  func(ctx context.Context, visitorID, option string) (*dto.QuizStateResponse, error)
	NextFunc    func(ctx context.Context, visitorID string) (*dto.QuizStateResponse, error)
	RestartFunc func(ctx context.Context, visitorID string) (*dto.QuizStateResponse, error)
}

func (m *MockQuizService) State(ctx context.Context, visitorID string) (*dto.QuizStateResponse, error) {
	if m.StateFunc != nil {
		return m.StateFunc(ctx, visitorID)
	}
	panic("MockQuizService.StateFunc not implemented")
}

func (m *MockQuizService) Select(ctx context.Context, visitorID, option string) (*dto.QuizStateResponse, error) {
	if m.SelectFunc != nil {
		return m.SelectFunc(ctx, visitorID, option)
	}
	panic("MockQuizService.SelectFunc not implemented")
}

func (m *MockQuizService) Next(ctx context.Context, visitorID string) (*dto.QuizStateResponse, error) {
	if m.NextFunc != nil {
		return m.NextFunc(ctx, visitorID)
	}
	panic("MockQuizService.NextFunc not implemented")
}

func (m *MockQuizService) Restart(ctx context.Context, visitorID string) (*dto.QuizStateResponse, error) {
	if m.RestartFunc != nil {
		return m.RestartFunc(ctx, visitorID)
	}
	panic("MockQuizService.RestartFunc not implemented")
}

type MockNavigationService struct {
	BarFunc        func(ctx context.Context, visitorID, path string) (*dto.NavBar, error)
	ToggleMenuFunc func(ctx context.Context, visitorID string) error
	CloseMenuFunc  func(ctx context.Context, visitorID string) error
}

func (m *MockNavigationService) Bar(ctx context.Context, visitorID, path string) (*dto.NavBar, error) {
	if m.BarFunc != nil {
		return m.BarFunc(ctx, visitorID, path)
	}
	return &dto.NavBar{}, nil
}

func (m *MockNavigationService) ToggleMenu(ctx context.Context, visitorID string) error {
	if m.ToggleMenuFunc != nil {
		return m.ToggleMenuFunc(ctx, visitorID)
	}
	panic("MockNavigationService.ToggleMenuFunc not implemented")
}

func (m *MockNavigationService) CloseMenu(ctx context.Context, visitorID string) error {
	if m.CloseMenuFunc != nil {
		return m.CloseMenuFunc(ctx, visitorID)
	}
	panic("MockNavigationService.CloseMenuFunc not implemented")
}

type stubCache struct {
	pingErr error
}

func (s *stubCache) Get(context.Context, string) (string, error) { return "", domain.ErrCacheMiss }
func (s *stubCache) Set(context.Context, string, string, time.Duration) error {
	return nil
}
func (s *stubCache) Delete(context.Context, string) error { return nil }
func (s *stubCache) Ping(context.Context) error           { return s.pingErr }

// --- Helpers ---

var sessionCfg = config.SessionConfig{TTL: time.Hour, CookieName: "rl_visitor"}

func newApp() *fiber.App {
	app := fiber.New(fiber.Config{
		Views:        view.New(),
		ErrorHandler: middleware.ErrorHandler(handler.ErrorPage()),
	})
	app.Use(middleware.Visitor(sessionCfg))
	return app
}

func answeringState() *dto.QuizStateResponse {
	return &dto.QuizStateResponse{
		Title:          "AI Fundamentals",
		TotalQuestions: 3,
		State:          dto.QuizStateAnswering,
		QuestionNumber: 2,
		Progress:       67,
		Question:       &dto.QuizQuestionResponse{ID: 2, Question: "Which is unsupervised?", Options: []string{"a", "b", "c", "d"}},
		ActionLabel:    "Next",
	}
}

func postForm(path, body string) *http.Request {
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
	req.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationForm)
	return req
}

// --- Tests ---

func TestQuizHandler_Page(t *testing.T) {
	var gotVisitor string
	mockQuiz := &MockQuizService{
		StateFunc: func(ctx context.Context, visitorID string) (*dto.QuizStateResponse, error) {
			gotVisitor = visitorID
			return answeringState(), nil
		},
	}
	h := handler.NewQuizHandler(mockQuiz, &MockNavigationService{})

	app := newApp()
	app.Get("/quiz", h.Page)

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/quiz", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.NotEmpty(t, gotVisitor)

	body, _ := io.ReadAll(resp.Body)
	assert.Contains(t, string(body), "Question 2 of 3")
	assert.Contains(t, string(body), "Which is unsupervised?")
}

func TestQuizHandler_PageTrailingSlash(t *testing.T) {
	var gotPath string
	mockQuiz := &MockQuizService{
		StateFunc: func(ctx context.Context, visitorID string) (*dto.QuizStateResponse, error) {
			return answeringState(), nil
		},
	}
	mockNav := &MockNavigationService{
		BarFunc: func(ctx context.Context, visitorID, path string) (*dto.NavBar, error) {
			gotPath = path
			return &dto.NavBar{}, nil
		},
	}
	h := handler.NewQuizHandler(mockQuiz, mockNav)

	app := newApp()
	app.Get("/quiz", h.Page)

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/quiz/", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Equal(t, "/quiz", gotPath)

	body, _ := io.ReadAll(resp.Body)
	assert.Contains(t, string(body), `name="return_to" value="/quiz"`)
}

func TestQuizHandler_Select(t *testing.T) {
	tests := []struct {
		name             string
		serviceErr       error
		expectedStatus   int
		expectedLocation string
	}{
		{
			name:             "Selected",
			expectedStatus:   fiber.StatusSeeOther,
			expectedLocation: "/quiz",
		},
		{
			name:           "Invalid option",
			serviceErr:     domain.NewInvalidOptionError("5", 4),
			expectedStatus: fiber.StatusBadRequest,
		},
		{
			name:           "Session unavailable",
			serviceErr:     domain.NewSessionUnavailableError(errors.New("redis down")),
			expectedStatus: fiber.StatusServiceUnavailable,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var gotOption string
			mockQuiz := &MockQuizService{
				SelectFunc: func(ctx context.Context, visitorID, option string) (*dto.QuizStateResponse, error) {
					gotOption = option
					if tt.serviceErr != nil {
						return nil, tt.serviceErr
					}
					return answeringState(), nil
				},
			}
			h := handler.NewQuizHandler(mockQuiz, &MockNavigationService{})

			app := newApp()
			app.Post("/quiz/select", middleware.NewValidationMiddleware().ValidateOption(), h.Select)

			resp, err := app.Test(postForm("/quiz/select", "option=5"))
			require.NoError(t, err)
			assert.Equal(t, tt.expectedStatus, resp.StatusCode)
			assert.Equal(t, "5", gotOption)
			if tt.expectedLocation != "" {
				assert.Equal(t, tt.expectedLocation, resp.Header.Get(fiber.HeaderLocation))
			}
		})
	}
}

func TestQuizHandler_GetQuizJSON(t *testing.T) {
	mockQuiz := &MockQuizService{
		StateFunc: func(ctx context.Context, visitorID string) (*dto.QuizStateResponse, error) {
			return answeringState(), nil
		},
	}
	h := handler.NewQuizHandler(mockQuiz, &MockNavigationService{})

	app := newApp()
	app.Get("/api/quiz", h.GetQuiz)

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/api/quiz", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	var state dto.QuizStateResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&state))
	assert.Equal(t, 2, state.QuestionNumber)
	assert.Equal(t, dto.QuizStateAnswering, state.State)
}

func TestQuizHandler_NavFailureRendersErrorPage(t *testing.T) {
	mockQuiz := &MockQuizService{
		StateFunc: func(ctx context.Context, visitorID string) (*dto.QuizStateResponse, error) {
			return answeringState(), nil
		},
	}
	mockNav := &MockNavigationService{
		BarFunc: func(ctx context.Context, visitorID, path string) (*dto.NavBar, error) {
			return nil, domain.NewSessionUnavailableError(errors.New("redis down"))
		},
	}
	h := handler.NewQuizHandler(mockQuiz, mockNav)

	app := newApp()
	app.Get("/quiz", h.Page)

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/quiz", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusServiceUnavailable, resp.StatusCode)

	body, _ := io.ReadAll(resp.Body)
	assert.Contains(t, string(body), "Visitor session is unavailable")
	assert.Contains(t, string(body), `href="/library"`, "error page still shows the nav bar")
}

func TestNavHandler_ReturnTo(t *testing.T) {
	tests := []struct {
		name             string
		body             string
		expectedLocation string
	}{
		{name: "Known route", body: "return_to=/classroom", expectedLocation: "/classroom"},
		{name: "Trailing slash", body: "return_to=/classroom/", expectedLocation: "/classroom"},
		{name: "Missing", body: "", expectedLocation: "/"},
		{name: "External URL", body: "return_to=https://example.com/", expectedLocation: "/"},
		{name: "Unknown path", body: "return_to=/admin", expectedLocation: "/"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			toggled := 0
			mockNav := &MockNavigationService{
				ToggleMenuFunc: func(ctx context.Context, visitorID string) error {
					toggled++
					return nil
				},
			}
			h := handler.NewNavHandler(mockNav)

			app := newApp()
			app.Post("/nav/menu", h.ToggleMenu)

			resp, err := app.Test(postForm("/nav/menu", tt.body))
			require.NoError(t, err)
			assert.Equal(t, fiber.StatusSeeOther, resp.StatusCode)
			assert.Equal(t, tt.expectedLocation, resp.Header.Get(fiber.HeaderLocation))
			assert.Equal(t, 1, toggled)
		})
	}
}

func TestHealthHandler(t *testing.T) {
	tests := []struct {
		name           string
		pingErr        error
		expectedStatus int
		expectedBody   handler.HealthResponse
	}{
		{name: "Healthy", expectedStatus: fiber.StatusOK, expectedBody: handler.HealthResponse{Status: "ok", Cache: "ok"}},
		{name: "Cache down", pingErr: errors.New("dial tcp: refused"), expectedStatus: fiber.StatusServiceUnavailable, expectedBody: handler.HealthResponse{Status: "degraded", Cache: "unreachable"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			app := fiber.New()
			app.Get("/healthz", handler.NewHealthHandler(&stubCache{pingErr: tt.pingErr}).Check)

			resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/healthz", nil))
			require.NoError(t, err)
			assert.Equal(t, tt.expectedStatus, resp.StatusCode)

			var body handler.HealthResponse
			require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
			assert.Equal(t, tt.expectedBody, body)
		})
	}
}
