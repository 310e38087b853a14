package show_profile

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-ProfileService/internal/api/handlers"
	"github.com/m04kA/SMC-ProfileService/internal/api/middleware"
	"github.com/m04kA/SMC-ProfileService/internal/api/render"
	"github.com/m04kA/SMC-ProfileService/internal/domain"
	"github.com/m04kA/SMC-ProfileService/internal/service/profile"
	"github.com/m04kA/SMC-ProfileService/internal/usecase/load_profile"
	"github.com/m04kA/SMC-ProfileService/internal/viewstate"
	"github.com/m04kA/SMC-ProfileService/pkg/logger"
)

var cookie = handlers.SessionCookie{Name: "profile_session", TTL: time.Minute}

type fakeService struct {
	page    *viewstate.Page
	getErr  error
	created int
}

func (f *fakeService) NewSession(_ context.Context, subject string) (*viewstate.Page, error) {
	f.created++
	return viewstate.New("sess-new", subject, time.Now()), nil
}

func (f *fakeService) GetPage(_ context.Context, _, _ string) (*viewstate.Page, error) {
	return f.page, f.getErr
}

type fakeLoader struct {
	page *viewstate.Page
	err  error
	reqs []*load_profile.Request
}

func (f *fakeLoader) Execute(_ context.Context, req *load_profile.Request) (*load_profile.Response, error) {
	f.reqs = append(f.reqs, req)
	if f.err != nil {
		return nil, f.err
	}
	return &load_profile.Response{Page: f.page}, nil
}

func loadedPage(t *testing.T) *viewstate.Page {
	t.Helper()
	p := viewstate.New("sess-new", "user-1", time.Now())
	require.NoError(t, p.BeginLoad())
	require.NoError(t, p.CompleteLoad(viewstate.LoadResult{
		User:         &domain.User{Name: "Alice", Email: "alice@example.com"},
		Reservations: []domain.Reservation{{ID: 1, Room: domain.Room{ID: 10, Numero: "12A"}}},
	}))
	return p
}

func newHandler(t *testing.T, svc *fakeService, loader *fakeLoader) *Handler {
	t.Helper()
	renderer, err := render.New()
	require.NoError(t, err)
	return NewHandler(svc, loader, renderer, cookie, logger.Nop{})
}

func authed(req *http.Request) *http.Request {
	return req.WithContext(middleware.WithSubject(req.Context(), "user-1"))
}

func TestHandleNew(t *testing.T) {
	svc := &fakeService{}
	loader := &fakeLoader{page: loadedPage(t)}
	h := newHandler(t, svc, loader)

	rec := httptest.NewRecorder()
	h.HandleNew(rec, authed(httptest.NewRequest(http.MethodGet, "/profile", nil)))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Room 12A")
	assert.Equal(t, 1, svc.created)
	require.Len(t, loader.reqs, 1)
	assert.Equal(t, "sess-new", loader.reqs[0].SessionID)

	cookies := rec.Result().Cookies()
	require.Len(t, cookies, 1)
	assert.Equal(t, "sess-new", cookies[0].Value)
}

func TestHandleNew_LoadErrorRendersMessage(t *testing.T) {
	p := viewstate.New("sess-new", "user-1", time.Now())
	require.NoError(t, p.BeginLoad())
	require.NoError(t, p.CompleteLoad(viewstate.LoadResult{UserErr: errors.New("boom")}))

	h := newHandler(t, &fakeService{}, &fakeLoader{page: p})

	rec := httptest.NewRecorder()
	h.HandleNew(rec, authed(httptest.NewRequest(http.MethodGet, "/profile", nil)))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), domain.MsgLoadFailed)
}

func TestHandleNew_Unauthenticated(t *testing.T) {
	h := newHandler(t, &fakeService{}, &fakeLoader{})

	rec := httptest.NewRecorder()
	h.HandleNew(rec, httptest.NewRequest(http.MethodGet, "/profile", nil))
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestHandleCurrent(t *testing.T) {
	svc := &fakeService{page: loadedPage(t)}
	h := newHandler(t, svc, &fakeLoader{})

	req := authed(httptest.NewRequest(http.MethodGet, "/profile/current", nil))
	req.AddCookie(&http.Cookie{Name: cookie.Name, Value: "sess-new"})

	rec := httptest.NewRecorder()
	h.HandleCurrent(rec, req)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Alice")
}

func TestHandleCurrent_RedirectsWithoutSession(t *testing.T) {
	h := newHandler(t, &fakeService{getErr: profile.ErrSessionNotFound}, &fakeLoader{})

	rec := httptest.NewRecorder()
	h.HandleCurrent(rec, authed(httptest.NewRequest(http.MethodGet, "/profile/current", nil)))
	assert.Equal(t, http.StatusSeeOther, rec.Code)
	assert.Equal(t, "/profile", rec.Header().Get("Location"))

	req := authed(httptest.NewRequest(http.MethodGet, "/profile/current", nil))
	req.AddCookie(&http.Cookie{Name: cookie.Name, Value: "expired"})
	rec = httptest.NewRecorder()
	h.HandleCurrent(rec, req)
	assert.Equal(t, http.StatusSeeOther, rec.Code)
	assert.Equal(t, "/profile", rec.Header().Get("Location"))
}
