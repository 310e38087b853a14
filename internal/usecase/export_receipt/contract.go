package export_receipt

import (
	"context"

	"github.com/m04kA/SMC-ProfileService/internal/infra/storage/journal"
	"github.com/m04kA/SMC-ProfileService/internal/receipt"
	"github.com/m04kA/SMC-ProfileService/internal/viewstate"
)

// SessionStore интерфейс хранилища сессий страницы
type SessionStore interface {
	Get(ctx context.Context, id string) (*viewstate.Page, error)
	Update(ctx context.Context, id string, fn func(page *viewstate.Page) error) (*viewstate.Page, error)
}

// Exporter интерфейс генератора квитанций
type Exporter interface {
	Export(doc receipt.Document) ([]byte, error)
}

// Journal интерфейс журнала действий
type Journal interface {
	Record(ctx context.Context, entry journal.Entry) error
}

// Metrics интерфейс счётчика квитанций
type Metrics interface {
	IncReceipt()
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
