package session

import (
	"fmt"
	"time"

	"github.com/go-co-op/gocron/v2"
)

// Sweeper удаляет истёкшие сессии
type Sweeper interface {
	Sweep() int
}

// Logger для сообщений очистки
type Logger interface {
	Info(format string, v ...interface{})
}

// NewJanitor создает планировщик, который раз в interval чистит истёкшие сессии.
// Планировщик нужно запустить через Start и остановить через Shutdown.
func NewJanitor(store Sweeper, interval time.Duration, logger Logger) (gocron.Scheduler, error) {
	s, err := gocron.NewScheduler()
	if err != nil {
		return nil, fmt.Errorf("%w: NewJanitor - create scheduler: %v", ErrJanitor, err)
	}

	_, err = s.NewJob(
		gocron.DurationJob(interval),
		gocron.NewTask(func() {
			if removed := store.Sweep(); removed > 0 {
				logger.Info("Session janitor: removed %d expired sessions", removed)
			}
		}),
		gocron.WithSingletonMode(gocron.LimitModeReschedule),
	)
	if err != nil {
		_ = s.Shutdown()
		return nil, fmt.Errorf("%w: NewJanitor - register job: %v", ErrJanitor, err)
	}

	return s, nil
}
