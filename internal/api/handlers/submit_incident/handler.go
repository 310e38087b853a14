package submit_incident

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-ProfileService/internal/api/handlers"
	"github.com/m04kA/SMC-ProfileService/internal/api/middleware"
	"github.com/m04kA/SMC-ProfileService/internal/usecase/declare_incident"
)

type Handler struct {
	useCase DeclareIncidentUseCase
	page    handlers.ErrorPage
	cookie  handlers.SessionCookie
	logger  Logger
}

func NewHandler(useCase DeclareIncidentUseCase, page handlers.ErrorPage, cookie handlers.SessionCookie, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		page:    page,
		cookie:  cookie,
		logger:  logger,
	}
}

// Handle POST /profile/incidents
// Результат (успех, ошибка hotel API или пропуск) отражается в состоянии страницы.
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, maxFormBytes)
	if err := r.ParseForm(); err != nil {
		h.logger.Warn("POST /profile/incidents - Invalid form: %v", err)
		handlers.RespondErrorPage(w, h.page, http.StatusBadRequest, handlers.MsgSomethingWrong)
		return
	}

	subject, _ := middleware.SubjectFromContext(r.Context())
	sessionID, ok := h.cookie.Read(r)
	if !ok {
		handlers.RedirectSeeOther(w, r, handlers.PathProfile)
		return
	}

	resp, err := h.useCase.Execute(r.Context(), &declare_incident.Request{
		SessionID:   sessionID,
		Subject:     subject,
		Description: r.PostForm.Get(formDescription),
	})
	if err != nil {
		switch {
		case errors.Is(err, declare_incident.ErrSessionNotFound):
			handlers.RedirectSeeOther(w, r, handlers.PathProfile)
		case errors.Is(err, declare_incident.ErrNotLoaded), errors.Is(err, declare_incident.ErrSubmitInProgress):
			handlers.RedirectSeeOther(w, r, handlers.PathProfileCurrent)
		default:
			h.logger.Error("POST /profile/incidents - Failed to declare incident: session=%s, error=%v", sessionID, err)
			handlers.RespondErrorPage(w, h.page, http.StatusInternalServerError, handlers.MsgSomethingWrong)
		}
		return
	}

	h.logger.Info("POST /profile/incidents - session=%s, outcome=%s", sessionID, resp.Outcome)
	handlers.RedirectSeeOther(w, r, handlers.PathProfileCurrent)
}
