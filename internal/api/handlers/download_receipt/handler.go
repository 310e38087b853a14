package download_receipt

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-ProfileService/internal/api/handlers"
	"github.com/m04kA/SMC-ProfileService/internal/api/middleware"
	"github.com/m04kA/SMC-ProfileService/internal/usecase/export_receipt"
)

const msgNotPaid = "A receipt is available only for paid reservations."

type Handler struct {
	useCase ExportReceiptUseCase
	page    handlers.ErrorPage
	cookie  handlers.SessionCookie
	logger  Logger
}

func NewHandler(useCase ExportReceiptUseCase, page handlers.ErrorPage, cookie handlers.SessionCookie, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		page:    page,
		cookie:  cookie,
		logger:  logger,
	}
}

// Handle GET /profile/reservations/{reservationId}/receipt
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	reservationID, err := strconv.ParseInt(mux.Vars(r)["reservationId"], 10, 64)
	if err != nil {
		h.logger.Warn("GET /profile/reservations/{id}/receipt - Invalid reservation ID: %v", err)
		handlers.RespondErrorPage(w, h.page, http.StatusBadRequest, handlers.MsgNotFound)
		return
	}

	subject, _ := middleware.SubjectFromContext(r.Context())
	sessionID, ok := h.cookie.Read(r)
	if !ok {
		handlers.RedirectSeeOther(w, r, handlers.PathProfile)
		return
	}

	resp, err := h.useCase.Execute(r.Context(), &export_receipt.Request{
		SessionID:     sessionID,
		Subject:       subject,
		ReservationID: reservationID,
	})
	if err != nil {
		switch {
		case errors.Is(err, export_receipt.ErrSessionNotFound):
			handlers.RedirectSeeOther(w, r, handlers.PathProfile)
		case errors.Is(err, export_receipt.ErrReservationNotFound):
			handlers.RespondErrorPage(w, h.page, http.StatusNotFound, handlers.MsgNotFound)
		case errors.Is(err, export_receipt.ErrNotPaid), errors.Is(err, export_receipt.ErrNotLoaded):
			handlers.RespondErrorPage(w, h.page, http.StatusConflict, msgNotPaid)
		default:
			h.logger.Error("GET /profile/reservations/{id}/receipt - Failed to export receipt: reservation_id=%d, error=%v", reservationID, err)
			handlers.RespondErrorPage(w, h.page, http.StatusInternalServerError, handlers.MsgSomethingWrong)
		}
		return
	}

	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", resp.FileName))
	w.Header().Set("Content-Length", strconv.Itoa(len(resp.Content)))
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(resp.Content); err != nil {
		h.logger.Warn("GET /profile/reservations/{id}/receipt - Failed to write response: %v", err)
		return
	}

	h.logger.Info("GET /profile/reservations/{id}/receipt - Sent %s", resp.FileName)
}
