package profile

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-ProfileService/internal/domain"
	"github.com/m04kA/SMC-ProfileService/internal/infra/storage/session"
	"github.com/m04kA/SMC-ProfileService/internal/viewstate"
)

// Service сервис сессий страницы профиля: создание, чтение и работа с диалогами
type Service struct {
	store  SessionStore
	logger Logger
	now    func() time.Time
}

// NewService создает новый экземпляр сервиса профиля
func NewService(store SessionStore, logger Logger) *Service {
	return &Service{
		store:  store,
		logger: logger,
		now:    time.Now,
	}
}

// NewSession создает пустую сессию страницы для пользователя
func (s *Service) NewSession(ctx context.Context, subject string) (*viewstate.Page, error) {
	page := viewstate.New(uuid.NewString(), subject, s.now())
	if err := s.store.Create(ctx, page); err != nil {
		s.logger.Error("NewSession: failed to store session for subject=%s: %v", subject, err)
		return nil, fmt.Errorf("%w: NewSession - store: %v", ErrInternal, err)
	}

	s.logger.Info("NewSession: created session=%s for subject=%s", page.ID, subject)
	return page, nil
}

// GetPage возвращает состояние для отрисовки.
// Уведомление возвращается один раз и удаляется из сессии.
func (s *Service) GetPage(ctx context.Context, sessionID, subject string) (*viewstate.Page, error) {
	var notice *viewstate.Notice
	page, err := s.update(ctx, "GetPage", sessionID, subject, func(p *viewstate.Page) error {
		notice = p.TakeNotice()
		return nil
	})
	if err != nil {
		return nil, err
	}
	page.Notice = notice
	return page, nil
}

// Snapshot возвращает состояние сессии без изменений
func (s *Service) Snapshot(ctx context.Context, sessionID, subject string) (*viewstate.Page, error) {
	page, err := s.store.Get(ctx, sessionID)
	if err != nil {
		return nil, s.mapStoreError("Snapshot", sessionID, err)
	}
	if err := page.CheckOwner(subject); err != nil {
		s.logger.Warn("Snapshot: session=%s is not owned by subject=%s", sessionID, subject)
		return nil, ErrSessionNotFound
	}
	return page, nil
}

// OpenIncidentDialog открывает диалог инцидента для комнаты из бронирований пользователя
func (s *Service) OpenIncidentDialog(ctx context.Context, sessionID, subject string, roomID int64) (*viewstate.Page, error) {
	s.logger.Info("OpenIncidentDialog: session=%s, room=%d", sessionID, roomID)

	return s.update(ctx, "OpenIncidentDialog", sessionID, subject, func(p *viewstate.Page) error {
		if p.Data.Phase != viewstate.LoadLoaded {
			return viewstate.ErrNotLoaded
		}
		if !domain.HasRoom(p.Data.Reservations, roomID) {
			return ErrRoomNotFound
		}
		return p.OpenIncident(roomID)
	})
}

// OpenPaymentDialog открывает диалог оплаты бронирования.
// Для оплаченного бронирования диалог тоже открывается.
func (s *Service) OpenPaymentDialog(ctx context.Context, sessionID, subject string, reservationID int64) (*viewstate.Page, error) {
	s.logger.Info("OpenPaymentDialog: session=%s, reservation=%d", sessionID, reservationID)

	return s.update(ctx, "OpenPaymentDialog", sessionID, subject, func(p *viewstate.Page) error {
		if p.Data.Phase != viewstate.LoadLoaded {
			return viewstate.ErrNotLoaded
		}
		if _, ok := domain.FindReservation(p.Data.Reservations, reservationID); !ok {
			return ErrReservationNotFound
		}
		return p.OpenPayment(reservationID)
	})
}

// CloseDialog закрывает диалог без отправки
func (s *Service) CloseDialog(ctx context.Context, sessionID, subject string, dialog Dialog) (*viewstate.Page, error) {
	return s.update(ctx, "CloseDialog", sessionID, subject, func(p *viewstate.Page) error {
		switch dialog {
		case DialogIncident:
			return p.CloseIncident()
		case DialogPayment:
			return p.ClosePayment()
		default:
			return ErrUnknownDialog
		}
	})
}

func (s *Service) update(ctx context.Context, op, sessionID, subject string, fn func(p *viewstate.Page) error) (*viewstate.Page, error) {
	page, err := s.store.Update(ctx, sessionID, func(p *viewstate.Page) error {
		if err := p.CheckOwner(subject); err != nil {
			return err
		}
		return fn(p)
	})
	if err == nil {
		return page, nil
	}

	switch {
	case errors.Is(err, viewstate.ErrForeignSession):
		s.logger.Warn("%s: session=%s is not owned by subject=%s", op, sessionID, subject)
		return nil, ErrSessionNotFound
	case errors.Is(err, ErrRoomNotFound),
		errors.Is(err, ErrReservationNotFound),
		errors.Is(err, ErrUnknownDialog),
		errors.Is(err, viewstate.ErrNotLoaded),
		errors.Is(err, viewstate.ErrSubmitInProgress):
		s.logger.Warn("%s: session=%s rejected: %v", op, sessionID, err)
		return nil, err
	case errors.Is(err, session.ErrConflict):
		// параллельное изменение той же сессии обрабатывается как идущая отправка
		s.logger.Warn("%s: session=%s concurrent update: %v", op, sessionID, err)
		return nil, fmt.Errorf("%w: %v", viewstate.ErrSubmitInProgress, err)
	default:
		return nil, s.mapStoreError(op, sessionID, err)
	}
}

func (s *Service) mapStoreError(op, sessionID string, err error) error {
	if errors.Is(err, session.ErrSessionNotFound) {
		s.logger.Warn("%s: session=%s not found", op, sessionID)
		return ErrSessionNotFound
	}
	s.logger.Error("%s: store error for session=%s: %v", op, sessionID, err)
	return fmt.Errorf("%w: %s - store: %v", ErrInternal, op, err)
}
