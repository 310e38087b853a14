package open_payment_dialog

import (
	"errors"
	"net/http"
	"strconv"

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

// Handle POST /profile/reservations/{reservationId}/payment-dialog
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	reservationID, err := strconv.ParseInt(mux.Vars(r)["reservationId"], 10, 64)
	if err != nil {
		h.logger.Warn("POST /profile/reservations/{id}/payment-dialog - Invalid reservation ID: %v", err)
		handlers.RespondErrorPage(w, h.page, http.StatusBadRequest, handlers.MsgNotFound)
		return
	}

	subject, _ := middleware.SubjectFromContext(r.Context())
	sessionID, ok := h.cookie.Read(r)
	if !ok {
		handlers.RedirectSeeOther(w, r, handlers.PathProfile)
		return
	}

	_, err = h.service.OpenPaymentDialog(r.Context(), sessionID, subject, reservationID)
	if err != nil {
		switch {
		case errors.Is(err, profile.ErrSessionNotFound):
			handlers.RedirectSeeOther(w, r, handlers.PathProfile)
		case errors.Is(err, profile.ErrReservationNotFound):
			h.logger.Warn("POST /profile/reservations/{id}/payment-dialog - Reservation not found: reservation_id=%d", reservationID)
			handlers.RespondErrorPage(w, h.page, http.StatusNotFound, handlers.MsgNotFound)
		case errors.Is(err, viewstate.ErrNotLoaded), errors.Is(err, viewstate.ErrSubmitInProgress):
			handlers.RedirectSeeOther(w, r, handlers.PathProfileCurrent)
		default:
			h.logger.Error("POST /profile/reservations/{id}/payment-dialog - Failed to open dialog: reservation_id=%d, error=%v", reservationID, err)
			handlers.RespondErrorPage(w, h.page, http.StatusInternalServerError, handlers.MsgSomethingWrong)
		}
		return
	}

	handlers.RedirectSeeOther(w, r, handlers.PathProfileCurrent)
}
