// Package view renders the HTML screens through fiber's html template
// engine. Pages are wrapped in the shared layout, which pulls in the nav bar
// and places the page body at {{embed}}.
package view

import (
	"embed"
	"io/fs"
	"net/http"
	"strconv"
	"strings"

	"rurallearn/internal/domain"
	"rurallearn/internal/dto"

	"github.com/gofiber/template/html/v2"
)

//go:embed templates
var embedded embed.FS

const extension = ".html"

// Layout is the outer template every page is wrapped in.
const Layout = "layout"

// Page names, relative to the template root.
const (
	PageLanding   = "pages/landing"
	PageLibrary   = "pages/library"
	PageQuiz      = "pages/quiz"
	PageClassroom = "pages/classroom"
	PageError     = "pages/error"
)

// Page is the binding passed to every template.
type Page struct {
	Title string
	Path  string
	Nav   *dto.NavBar
	Data  interface{}
}

// ErrorData is the Data of the error page.
type ErrorData struct {
	Status  int
	Message string
}

// New creates an engine over the embedded templates.
func New() *html.Engine {
	sub, err := fs.Sub(embedded, "templates")
	if err != nil {
		panic(err)
	}
	return NewFromFS(sub)
}

// NewFromFS creates an engine over fsys, which must hold layout.html,
// nav.html and pages/*.html.
func NewFromFS(fsys fs.FS) *html.Engine {
	engine := html.NewFileSystem(http.FS(fsys), extension)
	engine.AddFuncMap(funcs)
	return engine
}

var funcs = map[string]interface{}{
	"inc":   func(i int) int { return i + 1 },
	"itoa":  strconv.Itoa,
	"badge": badge,
	"lower": strings.ToLower,
}

func badge(t domain.ContentType) string {
	switch t {
	case domain.ContentTypeLecture:
		return "Lecture"
	case domain.ContentTypeQuiz:
		return "Quiz"
	case domain.ContentTypeWorkshop:
		return "Workshop"
	}
	return string(t)
}
