package journal

import (
	"database/sql"
	"time"
)

// Action тип действия пользователя на странице профиля
type Action string

const (
	ActionProfileLoaded     Action = "profile_loaded"
	ActionProfileLoadFailed Action = "profile_load_failed"
	ActionIncidentDeclared  Action = "incident_declared"
	ActionIncidentFailed    Action = "incident_failed"
	ActionPaymentSubmitted  Action = "payment_submitted"
	ActionPaymentFailed     Action = "payment_failed"
	ActionReceiptExported   Action = "receipt_exported"
)

const tableName = "activity_journal"

// Entry запись журнала действий
type Entry struct {
	ID            int64
	SessionID     string
	Subject       string
	Action        Action
	RoomID        *int64
	ReservationID *int64
	Details       string
	CreatedAt     time.Time
}

func nullInt64(v *int64) sql.NullInt64 {
	if v == nil {
		return sql.NullInt64{}
	}
	return sql.NullInt64{Int64: *v, Valid: true}
}
