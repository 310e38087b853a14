package domain

// IncidentStatus статус обработки инцидента
type IncidentStatus string

const (
	IncidentPending  IncidentStatus = "PENDING"
	IncidentOngoing  IncidentStatus = "ONGOING"
	IncidentResolved IncidentStatus = "RESOLVED"
)

// Incident заявка пользователя о неисправности в комнате
type Incident struct {
	ID          int64          `json:"id"`
	Description string         `json:"description"`
	Status      IncidentStatus `json:"status"`
	Technician  *Technician    `json:"technician"` // nil = техник ещё не назначен
	Room        Room           `json:"room"`
}
