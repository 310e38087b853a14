package load_profile

import (
	"context"
	"errors"
	"fmt"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/m04kA/SMC-ProfileService/internal/infra/storage/journal"
	"github.com/m04kA/SMC-ProfileService/internal/infra/storage/session"
	"github.com/m04kA/SMC-ProfileService/internal/viewstate"
)

// UseCase use case загрузки профиля, бронирований и инцидентов
type UseCase struct {
	store   SessionStore
	client  HotelAPIClient
	journal Journal
	logger  Logger
	now     func() time.Time
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(store SessionStore, client HotelAPIClient, journal Journal, logger Logger) *UseCase {
	return &UseCase{
		store:   store,
		client:  client,
		journal: journal,
		logger:  logger,
		now:     time.Now,
	}
}

// Execute загружает три набора данных параллельно и ждёт завершения всех запросов.
// Ошибка любого запроса переводит страницу в состояние ошибки без частичных данных.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("LoadProfile: session=%s, subject=%s", req.SessionID, req.Subject)

	// 1. Переводим сессию в загрузку
	_, err := uc.store.Update(ctx, req.SessionID, func(p *viewstate.Page) error {
		if err := p.CheckOwner(req.Subject); err != nil {
			return err
		}
		return p.BeginLoad()
	})
	if err != nil {
		return nil, uc.mapError("begin load", req.SessionID, err)
	}

	// 2. Три независимых запроса. Ошибка одного не отменяет остальные.
	res := uc.fetch(ctx)

	// 3. Применяем результат
	page, err := uc.store.Update(context.WithoutCancel(ctx), req.SessionID, func(p *viewstate.Page) error {
		return p.CompleteLoad(res)
	})
	if err != nil {
		return nil, uc.mapError("complete load", req.SessionID, err)
	}

	// 4. Журнал
	entry := journal.Entry{
		SessionID: req.SessionID,
		Subject:   req.Subject,
		Action:    journal.ActionProfileLoaded,
		CreatedAt: uc.now(),
	}
	if res.Failed() {
		entry.Action = journal.ActionProfileLoadFailed
		entry.Details = failureDetails(res)
		uc.logger.Warn("LoadProfile: session=%s failed: %s", req.SessionID, entry.Details)
	} else {
		uc.logger.Info("LoadProfile: session=%s loaded %d reservations, %d incidents",
			req.SessionID, len(page.Data.Reservations), len(page.Data.Incidents))
	}
	if err := uc.journal.Record(ctx, entry); err != nil {
		uc.logger.Warn("LoadProfile: failed to record journal entry: %v", err)
	}

	return &Response{Page: page}, nil
}

func (uc *UseCase) fetch(ctx context.Context) viewstate.LoadResult {
	var (
		res viewstate.LoadResult
		g   errgroup.Group
	)

	g.Go(func() error {
		res.User, res.UserErr = uc.client.GetProfile(ctx)
		return res.UserErr
	})
	g.Go(func() error {
		res.Reservations, res.ReservationsErr = uc.client.GetMyReservations(ctx)
		return res.ReservationsErr
	})
	g.Go(func() error {
		res.Incidents, res.IncidentsErr = uc.client.GetMyIncidents(ctx)
		return res.IncidentsErr
	})

	if err := g.Wait(); err != nil {
		uc.logger.Error("LoadProfile: fetch failed: %v", err)
	}
	return res
}

func (uc *UseCase) mapError(step, sessionID string, err error) error {
	switch {
	case errors.Is(err, session.ErrSessionNotFound), errors.Is(err, viewstate.ErrForeignSession):
		uc.logger.Warn("LoadProfile: %s: session=%s not found", step, sessionID)
		return ErrSessionNotFound
	case errors.Is(err, viewstate.ErrInvalidTransition):
		uc.logger.Warn("LoadProfile: %s: session=%s: %v", step, sessionID, err)
		return ErrLoadInProgress
	default:
		uc.logger.Error("LoadProfile: %s: session=%s: %v", step, sessionID, err)
		return fmt.Errorf("%w: %s: %v", ErrInternal, step, err)
	}
}

func failureDetails(res viewstate.LoadResult) string {
	var details string
	add := func(section string, err error) {
		if err == nil {
			return
		}
		if details != "" {
			details += "; "
		}
		details += section + ": " + err.Error()
	}
	add("profile", res.UserErr)
	add("reservations", res.ReservationsErr)
	add("incidents", res.IncidentsErr)
	return details
}
