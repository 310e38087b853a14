package close_dialog

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-ProfileService/internal/api/handlers"
	"github.com/m04kA/SMC-ProfileService/internal/api/middleware"
	"github.com/m04kA/SMC-ProfileService/internal/service/profile"
	"github.com/m04kA/SMC-ProfileService/internal/viewstate"
)

type Handler struct {
	service ProfileService
	page    handlers.ErrorPage
	cookie  handlers.SessionCookie
	logger  Logger
}

func NewHandler(service ProfileService, page handlers.ErrorPage, cookie handlers.SessionCookie, logger Logger) *Handler {
	return &Handler{
		service: service,
		page:    page,
		cookie:  cookie,
		logger:  logger,
	}
}

// Handle POST /profile/dialogs/{dialog}/close
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	dialog, err := profile.ParseDialog(mux.Vars(r)["dialog"])
	if err != nil {
		h.logger.Warn("POST /profile/dialogs/{dialog}/close - Unknown dialog: %s", mux.Vars(r)["dialog"])
		handlers.RespondErrorPage(w, h.page, http.StatusNotFound, handlers.MsgNotFound)
		return
	}

	subject, _ := middleware.SubjectFromContext(r.Context())
	sessionID, ok := h.cookie.Read(r)
	if !ok {
		handlers.RedirectSeeOther(w, r, handlers.PathProfile)
		return
	}

	_, err = h.service.CloseDialog(r.Context(), sessionID, subject, dialog)
	if err != nil {
		switch {
		case errors.Is(err, profile.ErrSessionNotFound):
			handlers.RedirectSeeOther(w, r, handlers.PathProfile)
		case errors.Is(err, viewstate.ErrSubmitInProgress):
			// закрыть диалог во время отправки нельзя, показываем текущее состояние
			handlers.RedirectSeeOther(w, r, handlers.PathProfileCurrent)
		default:
			h.logger.Error("POST /profile/dialogs/{dialog}/close - Failed to close %s dialog: %v", dialog, err)
			handlers.RespondErrorPage(w, h.page, http.StatusInternalServerError, handlers.MsgSomethingWrong)
		}
		return
	}

	handlers.RedirectSeeOther(w, r, handlers.PathProfileCurrent)
}
