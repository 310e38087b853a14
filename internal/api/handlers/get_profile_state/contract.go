package get_profile_state

import (
	"context"

	"github.com/m04kA/SMC-ProfileService/internal/viewstate"
)

type ProfileService interface {
	Snapshot(ctx context.Context, sessionID, subject string) (*viewstate.Page, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
