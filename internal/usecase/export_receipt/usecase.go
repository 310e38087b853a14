package export_receipt

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/m04kA/SMC-ProfileService/internal/domain"
	"github.com/m04kA/SMC-ProfileService/internal/infra/storage/journal"
	"github.com/m04kA/SMC-ProfileService/internal/infra/storage/session"
	"github.com/m04kA/SMC-ProfileService/internal/receipt"
	"github.com/m04kA/SMC-ProfileService/internal/viewstate"
)

// UseCase use case выгрузки PDF квитанции по оплаченному бронированию
type UseCase struct {
	store    SessionStore
	exporter Exporter
	journal  Journal
	metrics  Metrics
	logger   Logger
	now      func() time.Time
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(store SessionStore, exporter Exporter, journal Journal, metrics Metrics, logger Logger) *UseCase {
	return &UseCase{
		store:    store,
		exporter: exporter,
		journal:  journal,
		metrics:  metrics,
		logger:   logger,
		now:      time.Now,
	}
}

// Execute формирует квитанцию из уже загруженных данных страницы, без запросов в hotel API
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("ExportReceipt: session=%s, reservation=%d", req.SessionID, req.ReservationID)

	page, err := uc.store.Get(ctx, req.SessionID)
	if err != nil {
		if errors.Is(err, session.ErrSessionNotFound) {
			uc.logger.Warn("ExportReceipt: session=%s not found", req.SessionID)
			return nil, ErrSessionNotFound
		}
		uc.logger.Error("ExportReceipt: failed to get session=%s: %v", req.SessionID, err)
		return nil, fmt.Errorf("%w: get session: %v", ErrInternal, err)
	}
	if err := page.CheckOwner(req.Subject); err != nil {
		uc.logger.Warn("ExportReceipt: session=%s is not owned by subject=%s", req.SessionID, req.Subject)
		return nil, ErrSessionNotFound
	}

	doc, err := buildDocument(page, req.ReservationID)
	if err != nil {
		uc.logger.Warn("ExportReceipt: reservation=%d rejected: %v", req.ReservationID, err)
		return nil, err
	}

	content, err := uc.exporter.Export(doc)
	if err != nil {
		uc.logger.Error("ExportReceipt: failed to render receipt for reservation=%d: %v", req.ReservationID, err)
		return nil, fmt.Errorf("%w: render: %v", ErrInternal, err)
	}

	if _, err := uc.store.Update(ctx, req.SessionID, func(p *viewstate.Page) error {
		p.NotifyReceipt()
		return nil
	}); err != nil {
		uc.logger.Warn("ExportReceipt: failed to set notice for session=%s: %v", req.SessionID, err)
	}

	uc.metrics.IncReceipt()

	reservationID := req.ReservationID
	if err := uc.journal.Record(ctx, journal.Entry{
		SessionID:     req.SessionID,
		Subject:       req.Subject,
		Action:        journal.ActionReceiptExported,
		ReservationID: &reservationID,
		Details:       "room " + doc.RoomNumber,
		CreatedAt:     uc.now(),
	}); err != nil {
		uc.logger.Warn("ExportReceipt: failed to record journal entry: %v", err)
	}

	uc.logger.Info("ExportReceipt: generated receipt for reservation=%d (%d bytes)", req.ReservationID, len(content))
	return &Response{
		FileName: receipt.FileName(doc.RoomNumber),
		Content:  content,
	}, nil
}

func buildDocument(page *viewstate.Page, reservationID int64) (receipt.Document, error) {
	if page.Data.Phase != viewstate.LoadLoaded {
		return receipt.Document{}, ErrNotLoaded
	}

	reservation, ok := domain.FindReservation(page.Data.Reservations, reservationID)
	if !ok {
		return receipt.Document{}, ErrReservationNotFound
	}
	if !reservation.IsPaid() {
		return receipt.Document{}, ErrNotPaid
	}

	return receipt.Document{
		RoomNumber:   reservation.Room.Numero,
		ResidentName: page.Data.User.Name,
		Email:        page.Data.User.Email,
		Price:        reservation.Room.Price,
	}, nil
}
