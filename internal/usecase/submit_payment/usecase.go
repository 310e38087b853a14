package submit_payment

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/m04kA/SMC-ProfileService/internal/infra/storage/journal"
	"github.com/m04kA/SMC-ProfileService/internal/infra/storage/session"
	"github.com/m04kA/SMC-ProfileService/internal/viewstate"
)

// UseCase use case оплаты бронирования
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

// Execute оплачивает бронирование, выбранное в диалоге.
// Email в hotel API не передаётся: эндпоинт оплаты не принимает тело.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	// 1. Переводим диалог в отправку
	var reservationID int64
	_, err := uc.store.Update(ctx, req.SessionID, func(p *viewstate.Page) error {
		if err := p.CheckOwner(req.Subject); err != nil {
			return err
		}
		id, err := p.BeginPaymentSubmit(req.Email)
		if err != nil {
			return err
		}
		reservationID = id
		return nil
	})
	if err != nil {
		if viewstate.IsSilentGuard(err) {
			uc.logger.Info("SubmitPayment: session=%s skipped: %v", req.SessionID, err)
			return &Response{Outcome: OutcomeSkipped}, nil
		}
		return nil, uc.mapError(req.SessionID, err)
	}
	if !viewstate.EmailLooksValid(req.Email) {
		uc.logger.Warn("SubmitPayment: session=%s unrecognized email format, paying anyway", req.SessionID)
	}

	uc.logger.Info("SubmitPayment: session=%s, reservation=%d", req.SessionID, reservationID)

	bg := context.WithoutCancel(ctx)
	entry := journal.Entry{
		SessionID:     req.SessionID,
		Subject:       req.Subject,
		ReservationID: &reservationID,
		CreatedAt:     uc.now(),
	}

	// 2. Оплата
	var (
		outcome Outcome
		page    *viewstate.Page
	)
	if payErr := uc.client.PayReservation(ctx, reservationID); payErr != nil {
		uc.logger.Error("SubmitPayment: failed to pay reservation=%d: %v", reservationID, payErr)
		outcome = OutcomeFailed
		entry.Action = journal.ActionPaymentFailed
		entry.Details = payErr.Error()
		page, err = uc.store.Update(bg, req.SessionID, func(p *viewstate.Page) error {
			return p.FailPayment()
		})
	} else {
		// 3. Подтверждаем статус повторным запросом списка
		outcome = OutcomeSubmitted
		entry.Action = journal.ActionPaymentSubmitted
		confirmed, fetchErr := uc.client.GetMyReservations(bg)
		if fetchErr != nil {
			uc.logger.Warn("SubmitPayment: failed to confirm reservation=%d, marking locally: %v", reservationID, fetchErr)
			outcome = OutcomeSubmittedLocal
			entry.Details = "confirmation unavailable"
		}
		page, err = uc.store.Update(bg, req.SessionID, func(p *viewstate.Page) error {
			if fetchErr != nil {
				return p.CompletePaymentLocal()
			}
			ok, err := p.CompletePayment(confirmed)
			if err != nil {
				return err
			}
			// fn может вызываться повторно при конфликте записи
			outcome, entry.Details = OutcomeSubmitted, ""
			if !ok {
				outcome = OutcomeSubmittedLocal
				entry.Details = "payment not yet visible in confirmed list"
			}
			return nil
		})
		if outcome == OutcomeSubmittedLocal && fetchErr == nil {
			uc.logger.Warn("SubmitPayment: reservation=%d not yet paid in confirmed list, marked locally", reservationID)
		}
	}
	if err != nil {
		return nil, uc.mapError(req.SessionID, err)
	}

	result := "submitted"
	if outcome == OutcomeFailed {
		result = "failed"
	}
	uc.metrics.IncSubmission(flowName, result)

	if err := uc.journal.Record(bg, entry); err != nil {
		uc.logger.Warn("SubmitPayment: failed to record journal entry: %v", err)
	}

	uc.logger.Info("SubmitPayment: session=%s, reservation=%d, outcome=%s", req.SessionID, reservationID, outcome)
	return &Response{Outcome: outcome, Page: page}, nil
}

func (uc *UseCase) mapError(sessionID string, err error) error {
	switch {
	case errors.Is(err, session.ErrSessionNotFound), errors.Is(err, viewstate.ErrForeignSession):
		uc.logger.Warn("SubmitPayment: session=%s not found", sessionID)
		return ErrSessionNotFound
	case errors.Is(err, viewstate.ErrNotLoaded):
		uc.logger.Warn("SubmitPayment: session=%s not loaded", sessionID)
		return ErrNotLoaded
	case errors.Is(err, viewstate.ErrSubmitInProgress), errors.Is(err, session.ErrConflict):
		uc.logger.Warn("SubmitPayment: session=%s already submitting: %v", sessionID, err)
		return ErrSubmitInProgress
	default:
		uc.logger.Error("SubmitPayment: session=%s: %v", sessionID, err)
		return fmt.Errorf("%w: %v", ErrInternal, err)
	}
}
