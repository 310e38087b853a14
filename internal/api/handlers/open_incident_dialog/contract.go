package open_incident_dialog

import (
	"context"

	"github.com/m04kA/SMC-ProfileService/internal/viewstate"
)

type ProfileService interface {
	OpenIncidentDialog(ctx context.Context, sessionID, subject string, roomID int64) (*viewstate.Page, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
