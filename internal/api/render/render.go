package render

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"net/http"

	"github.com/m04kA/SMC-ProfileService/internal/presenter"
)

//go:embed templates/*.html
var templatesFS embed.FS

const (
	pageProfile = "profile.html"
	pageError   = "error.html"
)

// Renderer отрисовывает HTML страницы из встроенных шаблонов
type Renderer struct {
	pages map[string]*template.Template
}

// errorView данные страницы ошибки
type errorView struct {
	Message string
}

// New разбирает шаблоны. Каждая страница собирается вместе с layout.
func New() (*Renderer, error) {
	r := &Renderer{pages: make(map[string]*template.Template)}
	for _, name := range []string{pageProfile, pageError} {
		tpl, err := template.New(name).ParseFS(templatesFS, "templates/layout.html", "templates/"+name)
		if err != nil {
			return nil, fmt.Errorf("render: parse %s: %w", name, err)
		}
		r.pages[name] = tpl
	}
	return r, nil
}

// Profile отрисовывает страницу профиля
func (r *Renderer) Profile(w http.ResponseWriter, status int, model presenter.PageModel) error {
	return r.execute(w, status, pageProfile, model)
}

// Error отрисовывает страницу ошибки
func (r *Renderer) Error(w http.ResponseWriter, status int, message string) error {
	return r.execute(w, status, pageError, errorView{Message: message})
}

func (r *Renderer) execute(w http.ResponseWriter, status int, page string, data interface{}) error {
	tpl, ok := r.pages[page]
	if !ok {
		return fmt.Errorf("render: unknown page %s", page)
	}

	// рендерим в буфер, чтобы ошибка шаблона не оставила полстраницы
	var buf bytes.Buffer
	if err := tpl.ExecuteTemplate(&buf, "layout", data); err != nil {
		return fmt.Errorf("render: execute %s: %w", page, err)
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Header().Set("Cache-Control", "no-store")
	w.WriteHeader(status)
	_, err := buf.WriteTo(w)
	return err
}
