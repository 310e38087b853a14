package load_profile

import (
	"context"

	"github.com/m04kA/SMC-ProfileService/internal/domain"
	"github.com/m04kA/SMC-ProfileService/internal/infra/storage/journal"
	"github.com/m04kA/SMC-ProfileService/internal/viewstate"
)

// SessionStore интерфейс хранилища сессий страницы
type SessionStore interface {
	Update(ctx context.Context, id string, fn func(page *viewstate.Page) error) (*viewstate.Page, error)
}

// HotelAPIClient интерфейс клиента hotel API
type HotelAPIClient interface {
	GetProfile(ctx context.Context) (*domain.User, error)
	GetMyReservations(ctx context.Context) ([]domain.Reservation, error)
	GetMyIncidents(ctx context.Context) ([]domain.Incident, error)
}

// Journal интерфейс журнала действий
type Journal interface {
	Record(ctx context.Context, entry journal.Entry) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
