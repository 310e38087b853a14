package session

import (
	"context"

	"github.com/m04kA/SMC-ProfileService/internal/viewstate"
)

// Store хранилище состояний страниц профиля
type Store interface {
	Create(ctx context.Context, page *viewstate.Page) error
	Get(ctx context.Context, id string) (*viewstate.Page, error)
	// Update атомарно применяет fn к состоянию сессии.
	// Если fn вернула ошибку, изменения не сохраняются.
	Update(ctx context.Context, id string, fn func(page *viewstate.Page) error) (*viewstate.Page, error)
	Delete(ctx context.Context, id string) error
}

// Gauge получает число сессий в памяти
type Gauge interface {
	SetActiveSessions(n int)
}
