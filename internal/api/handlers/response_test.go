package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRespondJSON(t *testing.T) {
	rec := httptest.NewRecorder()
	RespondJSON(rec, http.StatusOK, map[string]int{"count": 2})

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))
	assert.JSONEq(t, `{"count":2}`, rec.Body.String())
}

func TestRespondJSON_Nil(t *testing.T) {
	rec := httptest.NewRecorder()
	RespondJSON(rec, http.StatusOK, nil)
	assert.Equal(t, "null", rec.Body.String())
}

func TestRespondError(t *testing.T) {
	rec := httptest.NewRecorder()
	RespondError(rec, http.StatusConflict, "conflict", map[string]string{"field": "email"})

	assert.Equal(t, http.StatusConflict, rec.Code)
	var body ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "conflict", body.Error)
	assert.NotNil(t, body.Details)
}

func TestRespondUnauthorized_OmitsDetails(t *testing.T) {
	rec := httptest.NewRecorder()
	RespondUnauthorized(rec)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.NotContains(t, rec.Body.String(), "details")
}

func TestRedirectSeeOther(t *testing.T) {
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/profile/incidents", nil)
	RedirectSeeOther(rec, req, PathProfileCurrent)

	assert.Equal(t, http.StatusSeeOther, rec.Code)
	assert.Equal(t, PathProfileCurrent, rec.Header().Get("Location"))
}

type stubPage struct {
	err error
}

func (s stubPage) Error(w http.ResponseWriter, status int, message string) error {
	if s.err != nil {
		return s.err
	}
	w.WriteHeader(status)
	_, _ = w.Write([]byte("<p>" + message + "</p>"))
	return nil
}

func TestRespondErrorPage(t *testing.T) {
	rec := httptest.NewRecorder()
	RespondErrorPage(rec, stubPage{}, http.StatusNotFound, MsgNotFound)
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Contains(t, rec.Body.String(), "<p>")

	rec = httptest.NewRecorder()
	RespondErrorPage(rec, stubPage{err: assert.AnError}, http.StatusNotFound, MsgNotFound)
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Contains(t, rec.Body.String(), MsgNotFound)
}

func TestSessionCookie(t *testing.T) {
	c := SessionCookie{Name: "profile_session", TTL: 30 * time.Minute}

	rec := httptest.NewRecorder()
	c.Set(rec, "sess-1")
	cookies := rec.Result().Cookies()
	require.Len(t, cookies, 1)
	assert.Equal(t, 1800, cookies[0].MaxAge)
	assert.True(t, cookies[0].HttpOnly)

	req := httptest.NewRequest(http.MethodGet, PathProfileCurrent, nil)
	req.AddCookie(cookies[0])
	id, ok := c.Read(req)
	assert.True(t, ok)
	assert.Equal(t, "sess-1", id)

	_, ok = c.Read(httptest.NewRequest(http.MethodGet, PathProfileCurrent, nil))
	assert.False(t, ok)
}
