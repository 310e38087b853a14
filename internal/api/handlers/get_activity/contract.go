package get_activity

import (
	"context"

	"github.com/m04kA/SMC-ProfileService/internal/infra/storage/journal"
)

type ActivityJournal interface {
	ListBySubject(ctx context.Context, subject string, limit uint64) ([]journal.Entry, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
