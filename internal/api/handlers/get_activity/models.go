package get_activity

import (
	"time"

	"github.com/m04kA/SMC-ProfileService/internal/infra/storage/journal"
)

// ActivityItem одна запись журнала в ответе
type ActivityItem struct {
	Action        string    `json:"action"`
	RoomID        *int64    `json:"roomId,omitempty"`
	ReservationID *int64    `json:"reservationId,omitempty"`
	Details       string    `json:"details,omitempty"`
	CreatedAt     time.Time `json:"createdAt"`
}

type Response struct {
	Items []ActivityItem `json:"items"`
}

func toResponse(entries []journal.Entry) Response {
	items := make([]ActivityItem, 0, len(entries))
	for _, e := range entries {
		items = append(items, ActivityItem{
			Action:        string(e.Action),
			RoomID:        e.RoomID,
			ReservationID: e.ReservationID,
			Details:       e.Details,
			CreatedAt:     e.CreatedAt,
		})
	}
	return Response{Items: items}
}
