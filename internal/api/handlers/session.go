package handlers

import (
	"net/http"
	"time"
)

// SessionCookie cookie с ID сессии страницы профиля
type SessionCookie struct {
	Name   string
	TTL    time.Duration
	Secure bool
}

// Set выставляет cookie сессии. Path "/" нужен, чтобы cookie доходила и до JSON API.
func (c SessionCookie) Set(w http.ResponseWriter, sessionID string) {
	http.SetCookie(w, &http.Cookie{
		Name:     c.Name,
		Value:    sessionID,
		Path:     "/",
		MaxAge:   int(c.TTL.Seconds()),
		HttpOnly: true,
		Secure:   c.Secure,
		SameSite: http.SameSiteLaxMode,
	})
}

// Read возвращает ID сессии из запроса
func (c SessionCookie) Read(r *http.Request) (string, bool) {
	cookie, err := r.Cookie(c.Name)
	if err != nil || cookie.Value == "" {
		return "", false
	}
	return cookie.Value, true
}
