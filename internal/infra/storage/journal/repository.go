package journal

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/m04kA/SMC-ProfileService/pkg/psqlbuilder"
)

// Repository журнал действий на странице профиля в PostgreSQL
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр журнала
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Record добавляет запись в журнал
func (r *Repository) Record(ctx context.Context, entry Entry) error {
	query, args, err := psqlbuilder.Insert(tableName).
		Columns(
			"session_id",
			"subject",
			"action",
			"room_id",
			"reservation_id",
			"details",
			"created_at",
		).
		Values(
			entry.SessionID,
			entry.Subject,
			string(entry.Action),
			nullInt64(entry.RoomID),
			nullInt64(entry.ReservationID),
			entry.Details,
			entry.CreatedAt,
		).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: Record - build insert query: %v", ErrBuildQuery, err)
	}

	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("%w: Record - execute insert: %v", ErrExecQuery, err)
	}
	return nil
}

// ListBySubject возвращает последние записи пользователя, новые первыми
func (r *Repository) ListBySubject(ctx context.Context, subject string, limit uint64) ([]Entry, error) {
	query, args, err := psqlbuilder.Select(
		"id",
		"session_id",
		"subject",
		"action",
		"room_id",
		"reservation_id",
		"details",
		"created_at",
	).
		From(tableName).
		Where(squirrel.Eq{"subject": subject}).
		OrderBy("created_at DESC", "id DESC").
		Limit(limit).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: ListBySubject - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListBySubject - execute select: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	entries := make([]Entry, 0)
	for rows.Next() {
		var (
			e             Entry
			action        string
			roomID        sql.NullInt64
			reservationID sql.NullInt64
		)
		if err := rows.Scan(
			&e.ID,
			&e.SessionID,
			&e.Subject,
			&action,
			&roomID,
			&reservationID,
			&e.Details,
			&e.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("%w: ListBySubject - scan: %v", ErrScanRow, err)
		}
		e.Action = Action(action)
		if roomID.Valid {
			e.RoomID = &roomID.Int64
		}
		if reservationID.Valid {
			e.ReservationID = &reservationID.Int64
		}
		entries = append(entries, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: ListBySubject - rows: %v", ErrScanRow, err)
	}

	return entries, nil
}

// Nop журнал, который ничего не пишет. Используется, когда база данных отключена.
type Nop struct{}

func (Nop) Record(context.Context, Entry) error { return nil }

func (Nop) ListBySubject(context.Context, string, uint64) ([]Entry, error) { return []Entry{}, nil }
