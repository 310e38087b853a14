package domain

// BadgeColor категория цвета для отображения статуса.
// Влияет только на представление, не на данные.
type BadgeColor string

const (
	BadgePositive      BadgeColor = "positive"
	BadgeNegative      BadgeColor = "negative"
	BadgeWarning       BadgeColor = "warning"
	BadgeInformational BadgeColor = "informational"
	BadgeNeutral       BadgeColor = "neutral"
)

// ReservationBadge maps a reservation status to its badge color
func ReservationBadge(status ReservationStatus) BadgeColor {
	switch status {
	case ReservationAccepted:
		return BadgePositive
	case ReservationDeclined:
		return BadgeNegative
	case ReservationPending:
		return BadgeWarning
	default:
		return BadgeNeutral
	}
}

// IncidentBadge maps an incident status to its badge color
func IncidentBadge(status IncidentStatus) BadgeColor {
	switch status {
	case IncidentPending:
		return BadgeWarning
	case IncidentResolved:
		return BadgePositive
	case IncidentOngoing:
		return BadgeInformational
	default:
		return BadgeNeutral
	}
}
