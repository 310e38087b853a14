package show_profile

import (
	"context"
	"net/http"

	"github.com/m04kA/SMC-ProfileService/internal/presenter"
	"github.com/m04kA/SMC-ProfileService/internal/usecase/load_profile"
	"github.com/m04kA/SMC-ProfileService/internal/viewstate"
)

type ProfileService interface {
	NewSession(ctx context.Context, subject string) (*viewstate.Page, error)
	GetPage(ctx context.Context, sessionID, subject string) (*viewstate.Page, error)
}

type LoadProfileUseCase interface {
	Execute(ctx context.Context, req *load_profile.Request) (*load_profile.Response, error)
}

type Renderer interface {
	Profile(w http.ResponseWriter, status int, model presenter.PageModel) error
	Error(w http.ResponseWriter, status int, message string) error
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
