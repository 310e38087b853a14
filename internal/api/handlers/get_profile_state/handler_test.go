package get_profile_state

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/cookiejar"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-ProfileService/internal/api/handlers"
	"github.com/m04kA/SMC-ProfileService/internal/api/middleware"
	"github.com/m04kA/SMC-ProfileService/internal/domain"
	"github.com/m04kA/SMC-ProfileService/internal/presenter"
	"github.com/m04kA/SMC-ProfileService/internal/service/profile"
	"github.com/m04kA/SMC-ProfileService/internal/viewstate"
	"github.com/m04kA/SMC-ProfileService/pkg/logger"
)

type fakeService struct {
	page *viewstate.Page
	err  error
}

func (f *fakeService) Snapshot(context.Context, string, string) (*viewstate.Page, error) {
	return f.page, f.err
}

var cookie = handlers.SessionCookie{Name: "profile_session", TTL: time.Minute}

func newRequest(subject string) *http.Request {
	req := httptest.NewRequest(http.MethodGet, "/api/v1/profile/state", nil)
	req.AddCookie(&http.Cookie{Name: cookie.Name, Value: "sess-1"})
	if subject != "" {
		req = req.WithContext(middleware.WithSubject(req.Context(), subject))
	}
	return req
}

func TestHandle(t *testing.T) {
	p := viewstate.New("sess-1", "user-1", time.Now())
	require.NoError(t, p.BeginLoad())
	require.NoError(t, p.CompleteLoad(viewstate.LoadResult{
		User:         &domain.User{Name: "Alice"},
		Reservations: []domain.Reservation{{ID: 1, Room: domain.Room{Numero: "12A"}, PayementStatus: domain.PaymentPaid}},
	}))

	h := NewHandler(&fakeService{page: p}, cookie, logger.Nop{})
	rec := httptest.NewRecorder()
	h.Handle(rec, newRequest("user-1"))

	require.Equal(t, http.StatusOK, rec.Code)
	var model presenter.PageModel
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &model))
	assert.Equal(t, presenter.StatusReady, model.Status)
	require.Len(t, model.Reservations, 1)
	assert.Equal(t, "Paid", model.Reservations[0].PayLabel)
	assert.True(t, model.EmptyIncidents)
}

func TestHandle_Errors(t *testing.T) {
	h := NewHandler(&fakeService{err: profile.ErrSessionNotFound}, cookie, logger.Nop{})

	rec := httptest.NewRecorder()
	h.Handle(rec, newRequest("user-1"))
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Contains(t, rec.Body.String(), `"error"`)

	rec = httptest.NewRecorder()
	h.Handle(rec, newRequest(""))
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	h = NewHandler(&fakeService{err: profile.ErrInternal}, cookie, logger.Nop{})
	rec = httptest.NewRecorder()
	h.Handle(rec, newRequest("user-1"))
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}

type recordingService struct {
	fakeService
	gotSessionID string
}

func (f *recordingService) Snapshot(ctx context.Context, sessionID, subject string) (*viewstate.Page, error) {
	f.gotSessionID = sessionID
	return f.fakeService.Snapshot(ctx, sessionID, subject)
}

func TestHandle_CookieFromPageReachesAPI(t *testing.T) {
	svc := &recordingService{fakeService: fakeService{page: viewstate.New("sess-42", "user-1", time.Now())}}
	h := NewHandler(svc, cookie, logger.Nop{})

	withSubject := func(next http.HandlerFunc) http.HandlerFunc {
		return func(w http.ResponseWriter, r *http.Request) {
			next(w, r.WithContext(middleware.WithSubject(r.Context(), "user-1")))
		}
	}

	mux := http.NewServeMux()
	mux.HandleFunc(handlers.PathProfile, func(w http.ResponseWriter, r *http.Request) {
		cookie.Set(w, "sess-42")
		w.WriteHeader(http.StatusOK)
	})
	mux.HandleFunc("/api/v1/profile/state", withSubject(h.Handle))
	srv := httptest.NewServer(mux)
	defer srv.Close()

	jar, err := cookiejar.New(nil)
	require.NoError(t, err)
	client := &http.Client{Jar: jar}

	resp, err := client.Get(srv.URL + handlers.PathProfile)
	require.NoError(t, err)
	resp.Body.Close()

	resp, err = client.Get(srv.URL + "/api/v1/profile/state")
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "sess-42", svc.gotSessionID)
}
