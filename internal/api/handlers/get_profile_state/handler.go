package get_profile_state

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-ProfileService/internal/api/handlers"
	"github.com/m04kA/SMC-ProfileService/internal/api/middleware"
	"github.com/m04kA/SMC-ProfileService/internal/presenter"
	"github.com/m04kA/SMC-ProfileService/internal/service/profile"
)

const msgSessionNotFound = "сессия страницы не найдена"

type Handler struct {
	service ProfileService
	cookie  handlers.SessionCookie
	logger  Logger
}

func NewHandler(service ProfileService, cookie handlers.SessionCookie, logger Logger) *Handler {
	return &Handler{
		service: service,
		cookie:  cookie,
		logger:  logger,
	}
}

// Handle GET /api/v1/profile/state
// Уведомление не снимается, его показывает только HTML страница.
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	subject, ok := middleware.SubjectFromContext(r.Context())
	if !ok {
		handlers.RespondUnauthorized(w)
		return
	}

	sessionID, ok := h.cookie.Read(r)
	if !ok {
		handlers.RespondNotFound(w, msgSessionNotFound)
		return
	}

	page, err := h.service.Snapshot(r.Context(), sessionID, subject)
	if err != nil {
		if errors.Is(err, profile.ErrSessionNotFound) {
			h.logger.Warn("GET /api/v1/profile/state - Session not found: session=%s", sessionID)
			handlers.RespondNotFound(w, msgSessionNotFound)
			return
		}
		h.logger.Error("GET /api/v1/profile/state - Failed to get session=%s: %v", sessionID, err)
		handlers.RespondInternalError(w)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, presenter.Build(page))
}
