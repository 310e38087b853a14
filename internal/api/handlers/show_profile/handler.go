package show_profile

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-ProfileService/internal/api/handlers"
	"github.com/m04kA/SMC-ProfileService/internal/api/middleware"
	"github.com/m04kA/SMC-ProfileService/internal/presenter"
	"github.com/m04kA/SMC-ProfileService/internal/service/profile"
	"github.com/m04kA/SMC-ProfileService/internal/usecase/load_profile"
	"github.com/m04kA/SMC-ProfileService/internal/viewstate"
)

type Handler struct {
	service  ProfileService
	loader   LoadProfileUseCase
	renderer Renderer
	cookie   handlers.SessionCookie
	logger   Logger
}

func NewHandler(service ProfileService, loader LoadProfileUseCase, renderer Renderer, cookie handlers.SessionCookie, logger Logger) *Handler {
	return &Handler{
		service:  service,
		loader:   loader,
		renderer: renderer,
		cookie:   cookie,
		logger:   logger,
	}
}

// HandleNew GET /profile
// Каждое открытие страницы создаёт новую сессию и загружает данные заново.
func (h *Handler) HandleNew(w http.ResponseWriter, r *http.Request) {
	subject, ok := middleware.SubjectFromContext(r.Context())
	if !ok {
		handlers.RespondErrorPage(w, h.renderer, http.StatusUnauthorized, handlers.MsgSignIn)
		return
	}

	page, err := h.service.NewSession(r.Context(), subject)
	if err != nil {
		h.logger.Error("GET /profile - Failed to create session: subject=%s, error=%v", subject, err)
		handlers.RespondErrorPage(w, h.renderer, http.StatusInternalServerError, handlers.MsgSomethingWrong)
		return
	}
	h.cookie.Set(w, page.ID)

	resp, err := h.loader.Execute(r.Context(), &load_profile.Request{SessionID: page.ID, Subject: subject})
	if err != nil {
		h.logger.Error("GET /profile - Failed to load profile: session=%s, error=%v", page.ID, err)
		handlers.RespondErrorPage(w, h.renderer, http.StatusInternalServerError, handlers.MsgSomethingWrong)
		return
	}

	h.logger.Info("GET /profile - Rendered session=%s, phase=%s", page.ID, resp.Page.Data.Phase)
	h.render(w, resp.Page)
}

// HandleCurrent GET /profile/current
// Показывает текущую сессию без перезагрузки данных.
func (h *Handler) HandleCurrent(w http.ResponseWriter, r *http.Request) {
	subject, ok := middleware.SubjectFromContext(r.Context())
	if !ok {
		handlers.RespondErrorPage(w, h.renderer, http.StatusUnauthorized, handlers.MsgSignIn)
		return
	}

	sessionID, ok := h.cookie.Read(r)
	if !ok {
		handlers.RedirectSeeOther(w, r, handlers.PathProfile)
		return
	}

	page, err := h.service.GetPage(r.Context(), sessionID, subject)
	if err != nil {
		if errors.Is(err, profile.ErrSessionNotFound) {
			h.logger.Warn("GET /profile/current - Session not found: session=%s", sessionID)
			handlers.RedirectSeeOther(w, r, handlers.PathProfile)
			return
		}
		h.logger.Error("GET /profile/current - Failed to get session=%s: %v", sessionID, err)
		handlers.RespondErrorPage(w, h.renderer, http.StatusInternalServerError, handlers.MsgSomethingWrong)
		return
	}

	h.render(w, page)
}

func (h *Handler) render(w http.ResponseWriter, page *viewstate.Page) {
	if err := h.renderer.Profile(w, http.StatusOK, presenter.Build(page)); err != nil {
		h.logger.Error("Failed to render profile page: session=%s, error=%v", page.ID, err)
		http.Error(w, handlers.MsgSomethingWrong, http.StatusInternalServerError)
	}
}
