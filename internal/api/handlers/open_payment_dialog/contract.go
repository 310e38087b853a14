package open_payment_dialog

import (
	"context"

	"github.com/m04kA/SMC-ProfileService/internal/viewstate"
)

type ProfileService interface {
	OpenPaymentDialog(ctx context.Context, sessionID, subject string, reservationID int64) (*viewstate.Page, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
