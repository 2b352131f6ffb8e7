package server

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"os"
	"strings"
	"testing"
	"time"

	"rurallearn/internal/adapter"
	"rurallearn/internal/config"
	"rurallearn/internal/domain"
	"rurallearn/internal/dto"
	"rurallearn/internal/export"
	"rurallearn/internal/logger"
	"rurallearn/internal/metrics"
	"rurallearn/internal/middleware"
	"rurallearn/internal/seed"

	"github.com/alicebob/miniredis/v2"
	"github.com/gofiber/fiber/v2"
	"github.com/redis/go-redis/v9"
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

// client replays the visitor cookie like a browser would.
type client struct {
	t      *testing.T
	app    *fiber.App
	cookie *http.Cookie
}

func newClient(t *testing.T, app *fiber.App) *client {
	return &client{t: t, app: app}
}

func (c *client) do(req *http.Request) *http.Response {
	c.t.Helper()
	if c.cookie != nil {
		req.AddCookie(c.cookie)
	}
	resp, err := c.app.Test(req, -1)
	require.NoError(c.t, err)
	for _, ck := range resp.Cookies() {
		if ck.Name == config.Default().Session.CookieName {
			c.cookie = &http.Cookie{Name: ck.Name, Value: ck.Value}
		}
	}
	return resp
}

func (c *client) get(path string) *http.Response {
	return c.do(httptest.NewRequest(http.MethodGet, path, nil))
}

func (c *client) form(path string, values url.Values) *http.Response {
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(values.Encode()))
	req.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationForm)
	return c.do(req)
}

func (c *client) sendJSON(method, path, body string) *http.Response {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
	return c.do(req)
}

func readBody(t *testing.T, resp *http.Response) string {
	t.Helper()
	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return string(raw)
}

func decode(t *testing.T, resp *http.Response, out interface{}) {
	t.Helper()
	require.NoError(t, json.NewDecoder(resp.Body).Decode(out))
}

func newTestApp(t *testing.T, cache domain.Cache) (*fiber.App, *metrics.Metrics) {
	t.Helper()
	if cache == nil {
		cache = adapter.NewMemoryCacheAdapter(time.Minute)
	}
	m := metrics.New()
	return New(Deps{
		Config:  config.Default(),
		Catalog: seed.MustDefault(),
		Cache:   cache,
		Metrics: m,
	}), m
}

func TestLandingPage(t *testing.T) {
	app, _ := newTestApp(t, nil)
	c := newClient(t, app)

	resp := c.get("/")
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Contains(t, resp.Header.Get(fiber.HeaderContentType), fiber.MIMETextHTML)
	body := readBody(t, resp)
	assert.Contains(t, body, "Bridge the Rural Learning Gap")
	assert.Contains(t, body, `<a href="/" class="active">Home</a>`)
	require.NotNil(t, c.cookie, "a visitor cookie is issued")
}

func TestQuizFlow_HTML(t *testing.T) {
	app, _ := newTestApp(t, nil)
	c := newClient(t, app)

	body := readBody(t, c.get("/quiz"))
	assert.Contains(t, body, "Question 1 of 3")
	assert.Contains(t, body, `<button type="submit" disabled>Next</button>`)

	// Next without a selection changes nothing
	resp := c.form("/quiz/next", nil)
	assert.Equal(t, fiber.StatusSeeOther, resp.StatusCode)
	assert.Equal(t, "/quiz", resp.Header.Get(fiber.HeaderLocation))
	assert.Contains(t, readBody(t, c.get("/quiz")), "Question 1 of 3")

	for _, option := range []string{"1", "2", "0"} {
		resp := c.form("/quiz/select", url.Values{"option": {option}})
		require.Equal(t, fiber.StatusSeeOther, resp.StatusCode)
		resp = c.form("/quiz/next", nil)
		require.Equal(t, fiber.StatusSeeOther, resp.StatusCode)
	}

	body = readBody(t, c.get("/quiz"))
	assert.Contains(t, body, "<strong>2/3</strong> (67%)")
	assert.Contains(t, body, "Good Job!")
	assert.Contains(t, body, "Take Another Quiz")

	resp = c.form("/quiz/restart", nil)
	assert.Equal(t, fiber.StatusSeeOther, resp.StatusCode)
	assert.Contains(t, readBody(t, c.get("/quiz")), "Question 1 of 3")
}

func TestQuizFlow_API(t *testing.T) {
	app, _ := newTestApp(t, nil)
	c := newClient(t, app)

	var state dto.QuizStateResponse
	for _, option := range []string{"1", "2", "2"} {
		resp := c.sendJSON(http.MethodPost, "/api/quiz/select", `{"option":"`+option+`"}`)
		require.Equal(t, fiber.StatusOK, resp.StatusCode)
		resp = c.sendJSON(http.MethodPost, "/api/quiz/next", "")
		require.Equal(t, fiber.StatusOK, resp.StatusCode)
		state = dto.QuizStateResponse{}
		decode(t, resp, &state)
	}

	assert.Equal(t, dto.QuizStateResults, state.State)
	require.NotNil(t, state.Result)
	assert.Equal(t, 3, state.Result.Score)
	assert.Equal(t, 100, state.Result.Percentage)
	assert.Equal(t, domain.BandExcellent, state.Result.Band)

	// another visitor starts from scratch
	other := newClient(t, app)
	resp := other.get("/api/quiz")
	var fresh dto.QuizStateResponse
	decode(t, resp, &fresh)
	assert.Equal(t, dto.QuizStateAnswering, fresh.State)
	assert.Equal(t, 1, fresh.QuestionNumber)
}

func TestQuiz_InvalidOption(t *testing.T) {
	app, _ := newTestApp(t, nil)
	c := newClient(t, app)

	tests := []struct {
		name         string
		body         string
		expectedCode string
	}{
		{name: "Out of range", body: `{"option":"7"}`, expectedCode: string(domain.CodeInvalidOption)},
		{name: "Missing", body: `{}`, expectedCode: string(domain.CodeValidation)},
		{name: "Not a number", body: `{"option":"b"}`, expectedCode: string(domain.CodeValidation)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp := c.sendJSON(http.MethodPost, "/api/quiz/select", tt.body)
			assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)

			var errResp struct {
				Code string `json:"code"`
			}
			decode(t, resp, &errResp)
			assert.Equal(t, tt.expectedCode, errResp.Code)
		})
	}

	resp := c.form("/quiz/select", url.Values{"option": {"9"}})
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
	assert.Contains(t, resp.Header.Get(fiber.HeaderContentType), fiber.MIMETextHTML)
}

func TestLibrary(t *testing.T) {
	app, _ := newTestApp(t, nil)
	c := newClient(t, app)

	var lib dto.LibraryResponse
	decode(t, c.get("/api/library?q=dr.&subject=ai"), &lib)
	require.Equal(t, 2, lib.Count)
	assert.Equal(t, int64(1), lib.Items[0].ID)
	assert.Equal(t, int64(4), lib.Items[1].ID)

	lib = dto.LibraryResponse{}
	decode(t, c.get("/api/library"), &lib)
	assert.Equal(t, 4, lib.Count)
	assert.Equal(t, domain.SubjectAll, lib.Subject)

	var subjects []domain.Subject
	decode(t, c.get("/api/subjects"), &subjects)
	assert.Len(t, subjects, 6)

	body := readBody(t, c.get("/library?q=zzz"))
	assert.Contains(t, body, "Showing 0 results")
	assert.Contains(t, body, `id="empty"`)

	resp := c.get("/api/library?q=" + strings.Repeat("x", 101))
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
}

func TestLibraryExport(t *testing.T) {
	app, _ := newTestApp(t, nil)
	c := newClient(t, app)

	resp := c.get("/library/export.xlsx?subject=vlsi")
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Equal(t, export.ContentType, resp.Header.Get(fiber.HeaderContentType))
	assert.Contains(t, resp.Header.Get(fiber.HeaderContentDisposition), "rurallearn-catalog.xlsx")
	assert.NotEmpty(t, readBody(t, resp))
}

func TestClassroom(t *testing.T) {
	app, _ := newTestApp(t, nil)
	c := newClient(t, app)

	var room dto.ClassroomResponse
	decode(t, c.get("/api/classroom"), &room)
	assert.False(t, room.Controls.Muted)
	assert.True(t, room.Controls.AudioEnabled)

	room = dto.ClassroomResponse{}
	decode(t, c.sendJSON(http.MethodPost, "/api/classroom/mute", ""), &room)
	assert.True(t, room.Controls.Muted)
	assert.True(t, room.Controls.AudioEnabled)

	room = dto.ClassroomResponse{}
	decode(t, c.sendJSON(http.MethodPut, "/api/classroom/chat", `{"message":"Hello"}`), &room)
	assert.Equal(t, "Hello", room.Controls.ChatDraft)

	resp := c.form("/classroom/audio", nil)
	assert.Equal(t, fiber.StatusSeeOther, resp.StatusCode)
	assert.Equal(t, "/classroom", resp.Header.Get(fiber.HeaderLocation))

	body := readBody(t, c.get("/classroom"))
	assert.Contains(t, body, "Unmute")
	assert.Contains(t, body, "Audio Off")
	assert.Contains(t, body, `value="Hello"`)

	resp = c.sendJSON(http.MethodPut, "/api/classroom/chat", `{"message":"`+strings.Repeat("a", domain.MaxChatDraftLength+1)+`"}`)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
}

func TestNavMenu(t *testing.T) {
	app, _ := newTestApp(t, nil)
	c := newClient(t, app)

	resp := c.form("/nav/menu", url.Values{"return_to": {"/library"}})
	assert.Equal(t, fiber.StatusSeeOther, resp.StatusCode)
	assert.Equal(t, "/library", resp.Header.Get(fiber.HeaderLocation))
	assert.Contains(t, readBody(t, c.get("/library")), `action="/nav/menu/close"`)

	resp = c.form("/nav/menu/close", url.Values{"return_to": {"https://example.com"}})
	assert.Equal(t, "/", resp.Header.Get(fiber.HeaderLocation))
	assert.NotContains(t, readBody(t, c.get("/")), `action="/nav/menu/close"`)
}

func TestNotFound(t *testing.T) {
	app, _ := newTestApp(t, nil)
	c := newClient(t, app)

	resp := c.get("/nope")
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
	assert.Contains(t, resp.Header.Get(fiber.HeaderContentType), fiber.MIMETextHTML)

	resp = c.get("/api/nope")
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
	var errResp middleware.ErrorResponse
	decode(t, resp, &errResp)
	assert.Equal(t, "HTTP_ERROR", errResp.Code)
}

func TestRedisSessionsAndHealth(t *testing.T) {
	rs := miniredis.RunT(t)
	rc := redis.NewClient(&redis.Options{Addr: rs.Addr()})
	t.Cleanup(func() { _ = rc.Close() })

	app, _ := newTestApp(t, adapter.NewRedisCacheAdapter(rc))
	c := newClient(t, app)

	resp := c.get("/healthz")
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	c.sendJSON(http.MethodPost, "/api/classroom/mute", "")
	require.NotNil(t, c.cookie)
	assert.True(t, rs.Exists("rurallearn:session:classroom:"+c.cookie.Value))

	rs.Close()

	resp = c.get("/healthz")
	assert.Equal(t, fiber.StatusServiceUnavailable, resp.StatusCode)

	resp = c.get("/api/classroom")
	assert.Equal(t, fiber.StatusServiceUnavailable, resp.StatusCode)
	var errResp middleware.ErrorResponse
	decode(t, resp, &errResp)
	assert.Equal(t, string(domain.CodeSessionUnavailable), errResp.Code)
}

func TestMetricsEndpoint(t *testing.T) {
	app, _ := newTestApp(t, nil)
	c := newClient(t, app)

	c.get("/library?q=energy")
	body := readBody(t, c.get("/metrics"))
	assert.Contains(t, body, "rurallearn_http_requests_total")
	assert.Contains(t, body, "rurallearn_library_search_results")
}
