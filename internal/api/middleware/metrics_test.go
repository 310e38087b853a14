package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
)

type observation struct {
	method, route, status string
}

type fakeObserver struct {
	seen []observation
}

func (f *fakeObserver) ObserveHTTP(method, route, status string, _ time.Duration) {
	f.seen = append(f.seen, observation{method, route, status})
}

func TestMetricsMiddleware_UsesRouteTemplate(t *testing.T) {
	obs := &fakeObserver{}
	r := mux.NewRouter()
	r.Use(MetricsMiddleware(obs))
	r.HandleFunc("/profile/reservations/{reservationId}/receipt", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusConflict)
	})

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/profile/reservations/7/receipt", nil))

	assert.Equal(t, []observation{{"GET", "/profile/reservations/{reservationId}/receipt", "409"}}, obs.seen)
}
