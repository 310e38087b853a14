package submit_payment

import "github.com/m04kA/SMC-ProfileService/internal/viewstate"

// Outcome итог отправки оплаты
type Outcome string

const (
	// OutcomeSubmitted оплата принята, список бронирований подтверждён сервером
	OutcomeSubmitted Outcome = "submitted"
	// OutcomeSubmittedLocal оплата принята, но сервер ещё не подтвердил её в списке бронирований
	OutcomeSubmittedLocal Outcome = "submitted_local"
	// OutcomeFailed hotel API вернул ошибку, диалог остаётся открытым
	OutcomeFailed Outcome = "failed"
	// OutcomeSkipped сработало защитное условие, запрос не отправлялся
	OutcomeSkipped Outcome = "skipped"
)

const flowName = "payment"

// Request запрос на оплату выбранного бронирования
type Request struct {
	SessionID string
	Subject   string
	Email     string
}

// Response результат отправки. Page пуст для OutcomeSkipped.
type Response struct {
	Outcome Outcome
	Page    *viewstate.Page
}
