package get_activity

import (
	"net/http"
	"strconv"

	"github.com/m04kA/SMC-ProfileService/internal/api/handlers"
	"github.com/m04kA/SMC-ProfileService/internal/api/middleware"
)

const (
	defaultLimit = 20
	maxLimit     = 100

	msgInvalidLimit = "параметр limit должен быть числом от 1 до 100"
)

type Handler struct {
	journal ActivityJournal
	logger  Logger
}

func NewHandler(journal ActivityJournal, logger Logger) *Handler {
	return &Handler{
		journal: journal,
		logger:  logger,
	}
}

// Handle GET /api/v1/profile/activity?limit=N
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	subject, ok := middleware.SubjectFromContext(r.Context())
	if !ok {
		handlers.RespondUnauthorized(w)
		return
	}

	limit := uint64(defaultLimit)
	if raw := r.URL.Query().Get("limit"); raw != "" {
		n, err := strconv.ParseUint(raw, 10, 64)
		if err != nil || n == 0 || n > maxLimit {
			h.logger.Warn("GET /api/v1/profile/activity - Invalid limit: %q", raw)
			handlers.RespondBadRequest(w, msgInvalidLimit)
			return
		}
		limit = n
	}

	entries, err := h.journal.ListBySubject(r.Context(), subject, limit)
	if err != nil {
		h.logger.Error("GET /api/v1/profile/activity - Failed to list journal for subject=%s: %v", subject, err)
		handlers.RespondInternalError(w)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, toResponse(entries))
}
