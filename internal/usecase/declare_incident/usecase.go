package declare_incident

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/m04kA/SMC-ProfileService/internal/infra/storage/journal"
	"github.com/m04kA/SMC-ProfileService/internal/infra/storage/session"
	"github.com/m04kA/SMC-ProfileService/internal/viewstate"
)

// UseCase use case объявления инцидента для комнаты
type UseCase struct {
	store   SessionStore
	client  HotelAPIClient
	journal Journal
	metrics Metrics
	logger  Logger
	now     func() time.Time
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(store SessionStore, client HotelAPIClient, journal Journal, metrics Metrics, logger Logger) *UseCase {
	return &UseCase{
		store:   store,
		client:  client,
		journal: journal,
		metrics: metrics,
		logger:  logger,
		now:     time.Now,
	}
}

// Execute отправляет заявку об инциденте для комнаты, выбранной в диалоге
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	description := normalizeDescription(req.Description)

	// 1. Переводим диалог в отправку. Повторная отправка отклоняется.
	var roomID int64
	_, err := uc.store.Update(ctx, req.SessionID, func(p *viewstate.Page) error {
		if err := p.CheckOwner(req.Subject); err != nil {
			return err
		}
		id, err := p.BeginIncidentSubmit(description)
		if err != nil {
			return err
		}
		roomID = id
		return nil
	})
	if err != nil {
		if viewstate.IsSilentGuard(err) {
			uc.logger.Info("DeclareIncident: session=%s skipped: %v", req.SessionID, err)
			return &Response{Outcome: OutcomeSkipped}, nil
		}
		return nil, uc.mapError(req.SessionID, err)
	}

	uc.logger.Info("DeclareIncident: session=%s, room=%d", req.SessionID, roomID)

	// 2. Запрос в hotel API. Дальнейшие шаги не должны зависеть от отмены входящего запроса,
	// иначе диалог останется в состоянии отправки.
	bg := context.WithoutCancel(ctx)
	incident, callErr := uc.client.CreateIncident(ctx, roomID, description)

	entry := journal.Entry{
		SessionID: req.SessionID,
		Subject:   req.Subject,
		RoomID:    &roomID,
		CreatedAt: uc.now(),
	}

	// 3. Применяем результат
	var page *viewstate.Page
	if callErr != nil {
		uc.logger.Error("DeclareIncident: failed to create incident for room=%d: %v", roomID, callErr)
		page, err = uc.store.Update(bg, req.SessionID, func(p *viewstate.Page) error {
			return p.FailIncident()
		})
		entry.Action = journal.ActionIncidentFailed
		entry.Details = callErr.Error()
	} else {
		page, err = uc.store.Update(bg, req.SessionID, func(p *viewstate.Page) error {
			return p.CompleteIncident(*incident)
		})
		entry.Action = journal.ActionIncidentDeclared
		entry.Details = fmt.Sprintf("incident=%d", incident.ID)
	}
	if err != nil {
		return nil, uc.mapError(req.SessionID, err)
	}

	outcome := OutcomeSubmitted
	if callErr != nil {
		outcome = OutcomeFailed
	}
	uc.metrics.IncSubmission(flowName, string(outcome))

	if err := uc.journal.Record(bg, entry); err != nil {
		uc.logger.Warn("DeclareIncident: failed to record journal entry: %v", err)
	}

	uc.logger.Info("DeclareIncident: session=%s, room=%d, outcome=%s", req.SessionID, roomID, outcome)
	return &Response{Outcome: outcome, Page: page}, nil
}

func (uc *UseCase) mapError(sessionID string, err error) error {
	switch {
	case errors.Is(err, session.ErrSessionNotFound), errors.Is(err, viewstate.ErrForeignSession):
		uc.logger.Warn("DeclareIncident: session=%s not found", sessionID)
		return ErrSessionNotFound
	case errors.Is(err, viewstate.ErrNotLoaded):
		uc.logger.Warn("DeclareIncident: session=%s not loaded", sessionID)
		return ErrNotLoaded
	case errors.Is(err, viewstate.ErrSubmitInProgress), errors.Is(err, session.ErrConflict):
		uc.logger.Warn("DeclareIncident: session=%s already submitting: %v", sessionID, err)
		return ErrSubmitInProgress
	default:
		uc.logger.Error("DeclareIncident: session=%s: %v", sessionID, err)
		return fmt.Errorf("%w: %v", ErrInternal, err)
	}
}
