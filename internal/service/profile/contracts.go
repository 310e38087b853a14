package profile

import (
	"context"

	"github.com/m04kA/SMC-ProfileService/internal/viewstate"
)

// SessionStore интерфейс хранилища сессий страницы
type SessionStore interface {
	Create(ctx context.Context, page *viewstate.Page) error
	Get(ctx context.Context, id string) (*viewstate.Page, error)
	Update(ctx context.Context, id string, fn func(page *viewstate.Page) error) (*viewstate.Page, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
