package declare_incident

import "github.com/m04kA/SMC-ProfileService/internal/viewstate"

// Outcome итог отправки заявки
type Outcome string

const (
	// OutcomeSubmitted инцидент создан
	OutcomeSubmitted Outcome = "submitted"
	// OutcomeFailed hotel API вернул ошибку, диалог остаётся открытым
	OutcomeFailed Outcome = "failed"
	// OutcomeSkipped сработало защитное условие, запрос не отправлялся
	OutcomeSkipped Outcome = "skipped"
)

const flowName = "incident"

// Request запрос на объявление инцидента
type Request struct {
	SessionID   string
	Subject     string
	Description string
}

// Response результат отправки. Page пуст для OutcomeSkipped.
type Response struct {
	Outcome Outcome
	Page    *viewstate.Page
}
