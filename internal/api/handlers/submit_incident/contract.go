package submit_incident

import (
	"context"

	"github.com/m04kA/SMC-ProfileService/internal/usecase/declare_incident"
)

type DeclareIncidentUseCase interface {
	Execute(ctx context.Context, req *declare_incident.Request) (*declare_incident.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
