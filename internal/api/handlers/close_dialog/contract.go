package close_dialog

import (
	"context"

	"github.com/m04kA/SMC-ProfileService/internal/service/profile"
	"github.com/m04kA/SMC-ProfileService/internal/viewstate"
)

type ProfileService interface {
	CloseDialog(ctx context.Context, sessionID, subject string, dialog profile.Dialog) (*viewstate.Page, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
