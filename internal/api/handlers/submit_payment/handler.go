package submit_payment

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-ProfileService/internal/api/handlers"
	"github.com/m04kA/SMC-ProfileService/internal/api/middleware"
	paymentUseCase "github.com/m04kA/SMC-ProfileService/internal/usecase/submit_payment"
)

type Handler struct {
	useCase SubmitPaymentUseCase
	page    handlers.ErrorPage
	cookie  handlers.SessionCookie
	logger  Logger
}

func NewHandler(useCase SubmitPaymentUseCase, page handlers.ErrorPage, cookie handlers.SessionCookie, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		page:    page,
		cookie:  cookie,
		logger:  logger,
	}
}

// Handle POST /profile/payments
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, maxFormBytes)
	if err := r.ParseForm(); err != nil {
		h.logger.Warn("POST /profile/payments - Invalid form: %v", err)
		handlers.RespondErrorPage(w, h.page, http.StatusBadRequest, handlers.MsgSomethingWrong)
		return
	}

	subject, _ := middleware.SubjectFromContext(r.Context())
	sessionID, ok := h.cookie.Read(r)
	if !ok {
		handlers.RedirectSeeOther(w, r, handlers.PathProfile)
		return
	}

	resp, err := h.useCase.Execute(r.Context(), &paymentUseCase.Request{
		SessionID: sessionID,
		Subject:   subject,
		Email:     r.PostForm.Get(formEmail),
	})
	if err != nil {
		switch {
		case errors.Is(err, paymentUseCase.ErrSessionNotFound):
			handlers.RedirectSeeOther(w, r, handlers.PathProfile)
		case errors.Is(err, paymentUseCase.ErrNotLoaded), errors.Is(err, paymentUseCase.ErrSubmitInProgress):
			handlers.RedirectSeeOther(w, r, handlers.PathProfileCurrent)
		default:
			h.logger.Error("POST /profile/payments - Failed to submit payment: session=%s, error=%v", sessionID, err)
			handlers.RespondErrorPage(w, h.page, http.StatusInternalServerError, handlers.MsgSomethingWrong)
		}
		return
	}

	h.logger.Info("POST /profile/payments - session=%s, outcome=%s", sessionID, resp.Outcome)
	handlers.RedirectSeeOther(w, r, handlers.PathProfileCurrent)
}
