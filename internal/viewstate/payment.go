package viewstate

import (
	"fmt"

	"github.com/go-playground/validator/v10"

	"github.com/m04kA/SMC-ProfileService/internal/domain"
)

const msgInvalidEmail = "Please enter a valid email address"

var validate = validator.New()

// OpenPayment открывает диалог оплаты для бронирования.
// Для уже оплаченного бронирования диалог тоже открывается.
func (p *Page) OpenPayment(reservationID int64) error {
	if err := p.requireLoaded(); err != nil {
		return err
	}
	if p.Payment.Phase == DialogSubmitting {
		return ErrSubmitInProgress
	}
	p.Payment.Phase = DialogOpen
	p.Payment.ReservationID = &reservationID
	p.Payment.LastError = ""
	return nil
}

// ClosePayment закрывает диалог оплаты. Введённый email сохраняется.
func (p *Page) ClosePayment() error {
	if p.Payment.Phase == DialogSubmitting {
		return ErrSubmitInProgress
	}
	p.Payment.Phase = DialogClosed
	p.Payment.ReservationID = nil
	p.Payment.LastError = ""
	return nil
}

// EmailLooksValid сообщает, похожа ли строка на адрес электронной почты
func EmailLooksValid(email string) bool {
	return validate.Var(email, fmt.Sprintf("email,max=%d", domain.MaxEmailLength)) == nil
}

// BeginPaymentSubmit переводит диалог в отправку и возвращает ID бронирования.
// Формат email не блокирует оплату: для нераспознанного адреса сохраняется подсказка.
func (p *Page) BeginPaymentSubmit(email string) (int64, error) {
	if err := p.requireLoaded(); err != nil {
		return 0, err
	}
	if p.Payment.Phase == DialogSubmitting {
		return 0, ErrSubmitInProgress
	}

	if email == "" {
		return 0, ErrEmailRequired
	}
	if p.Payment.ReservationID == nil {
		return 0, ErrNoReservationSelected
	}
	if p.Payment.Phase == DialogClosed {
		return 0, ErrDialogClosed
	}

	p.Payment.Email = email
	p.Payment.EmailHint = ""
	if !EmailLooksValid(email) {
		p.Payment.EmailHint = msgInvalidEmail
	}

	p.Payment.Phase = DialogSubmitting
	p.Payment.LastError = ""
	return *p.Payment.ReservationID, nil
}

// CompletePayment переносит из подтверждённого списка статус только оплаченного бронирования.
// Остальные бронирования не меняются. Возвращает false, если сервер ещё не показывает оплату:
// тогда бронирование отмечается оплаченным локально.
func (p *Page) CompletePayment(confirmed []domain.Reservation) (bool, error) {
	if p.Payment.Phase != DialogSubmitting {
		return false, fmt.Errorf("%w: complete payment from phase %s", ErrInvalidTransition, p.Payment.Phase)
	}
	id := *p.Payment.ReservationID
	server, ok := domain.FindReservation(confirmed, id)
	isConfirmed := ok && server.IsPaid()
	p.markPaid(id)
	p.finishPayment()
	return isConfirmed, nil
}

// CompletePaymentLocal отмечает оплаченным только выбранное бронирование.
// Используется, когда подтверждённый список получить не удалось.
func (p *Page) CompletePaymentLocal() error {
	if p.Payment.Phase != DialogSubmitting {
		return fmt.Errorf("%w: complete payment from phase %s", ErrInvalidTransition, p.Payment.Phase)
	}
	p.markPaid(*p.Payment.ReservationID)
	p.finishPayment()
	return nil
}

func (p *Page) markPaid(id int64) {
	for i := range p.Data.Reservations {
		if p.Data.Reservations[i].ID == id {
			p.Data.Reservations[i].MarkPaid()
		}
	}
}

func (p *Page) finishPayment() {
	p.Payment = PaymentDialog{Phase: DialogClosed}
	p.notify(NoticeSuccess, domain.MsgPaymentSubmitted)
}

// FailPayment оставляет диалог открытым для повторной попытки
func (p *Page) FailPayment() error {
	if p.Payment.Phase != DialogSubmitting {
		return fmt.Errorf("%w: fail payment from phase %s", ErrInvalidTransition, p.Payment.Phase)
	}
	p.Payment.Phase = DialogError
	p.Payment.LastError = domain.MsgPaymentFailed
	p.notify(NoticeError, domain.MsgPaymentFailed)
	return nil
}

// NotifyReceipt выставляет уведомление о сгенерированной квитанции
func (p *Page) NotifyReceipt() {
	p.notify(NoticeSuccess, domain.MsgReceiptGenerated)
}
