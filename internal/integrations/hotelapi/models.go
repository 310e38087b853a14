package hotelapi

import (
	"context"
	"time"
)

// createIncidentRequest тело POST /api/incidents/create/{roomId}
type createIncidentRequest struct {
	Description string `json:"description"`
}

// Credentials учётные данные пользователя, пробрасываемые в hotel API
type Credentials struct {
	BearerToken string
	Cookie      string // исходный заголовок Cookie
}

type credentialsKey struct{}

// WithCredentials кладёт учётные данные пользователя в контекст
func WithCredentials(ctx context.Context, creds Credentials) context.Context {
	return context.WithValue(ctx, credentialsKey{}, creds)
}

// CredentialsFromContext достаёт учётные данные пользователя из контекста
func CredentialsFromContext(ctx context.Context) (Credentials, bool) {
	creds, ok := ctx.Value(credentialsKey{}).(Credentials)
	return creds, ok
}

// Названия операций для логов и метрик
const (
	opGetProfile      = "get_profile"
	opGetReservations = "get_reservations"
	opGetIncidents    = "get_incidents"
	opCreateIncident  = "create_incident"
	opPayReservation  = "pay_reservation"
	resultSuccess     = "success"
	resultFailure     = "failure"
)

// Observer получает длительность и результат каждого вызова
type Observer interface {
	ObserveHotelAPI(operation, result string, d time.Duration)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
