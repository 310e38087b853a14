package presenter

import (
	"fmt"

	"github.com/m04kA/SMC-ProfileService/internal/domain"
	"github.com/m04kA/SMC-ProfileService/internal/viewstate"
)

// Status что показывать на странице
type Status string

const (
	StatusLoading Status = "loading"
	StatusError   Status = "error"
	StatusReady   Status = "ready"
)

const (
	labelPay  = "Pay"
	labelPaid = "Paid"
)

// Badge бейдж статуса
type Badge struct {
	Label string            `json:"label"`
	Color domain.BadgeColor `json:"color"`
	Class string            `json:"class"`
}

// ReservationRow строка списка "My Rooms"
type ReservationRow struct {
	ID               int64  `json:"id"`
	RoomID           int64  `json:"roomId"`
	RoomNumber       string `json:"roomNumber"`
	Title            string `json:"title"`
	Image            string `json:"image"`
	Status           Badge  `json:"status"`
	Paid             bool   `json:"paid"`
	PayLabel         string `json:"payLabel"`
	PayClass         string `json:"payClass"`
	ReceiptAvailable bool   `json:"receiptAvailable"`
}

// IncidentRow строка таблицы "My Incidents"
type IncidentRow struct {
	ID                 int64  `json:"id"`
	Description        string `json:"description"`
	Status             Badge  `json:"status"`
	Technician         string `json:"technician"`
	TechnicianAssigned bool   `json:"technicianAssigned"`
	Speciality         string `json:"speciality"`
}

// IncidentDialogModel модель диалога инцидента
type IncidentDialogModel struct {
	Open        bool   `json:"open"`
	Submitting  bool   `json:"submitting"`
	RoomID      int64  `json:"roomId,omitempty"`
	Description string `json:"description"`
	Error       string `json:"error,omitempty"`
}

// PaymentDialogModel модель диалога оплаты
type PaymentDialogModel struct {
	Open          bool   `json:"open"`
	Submitting    bool   `json:"submitting"`
	ReservationID int64  `json:"reservationId,omitempty"`
	Email         string `json:"email"`
	EmailHint     string `json:"emailHint,omitempty"`
	Error         string `json:"error,omitempty"`
}

// PageModel всё, что нужно шаблону страницы профиля
type PageModel struct {
	SessionID      string              `json:"sessionId"`
	Status         Status              `json:"status"`
	ErrorMessage   string              `json:"errorMessage,omitempty"`
	User           domain.User         `json:"user"`
	Reservations   []ReservationRow    `json:"reservations"`
	Incidents      []IncidentRow       `json:"incidents"`
	EmptyIncidents bool                `json:"emptyIncidents"`
	EmptyText      string              `json:"emptyText,omitempty"`
	IncidentDialog IncidentDialogModel `json:"incidentDialog"`
	PaymentDialog  PaymentDialogModel  `json:"paymentDialog"`
	Notice         *viewstate.Notice   `json:"notice,omitempty"`
}

// Build строит модель страницы из состояния сессии
func Build(p *viewstate.Page) PageModel {
	m := PageModel{
		SessionID: p.ID,
		Notice:    p.Notice,
	}

	switch p.Data.Phase {
	case viewstate.LoadError:
		m.Status = StatusError
		m.ErrorMessage = p.Data.Error
		return m
	case viewstate.LoadLoaded:
		m.Status = StatusReady
	default:
		m.Status = StatusLoading
		return m
	}

	m.User = p.Data.User

	m.Reservations = make([]ReservationRow, 0, len(p.Data.Reservations))
	for _, r := range p.Data.Reservations {
		m.Reservations = append(m.Reservations, reservationRow(r))
	}

	m.Incidents = make([]IncidentRow, 0, len(p.Data.Incidents))
	for _, inc := range p.Data.Incidents {
		m.Incidents = append(m.Incidents, incidentRow(inc))
	}
	m.EmptyIncidents = len(m.Incidents) == 0
	if m.EmptyIncidents {
		m.EmptyText = domain.MsgNoIncidents
	}

	m.IncidentDialog = IncidentDialogModel{
		Open:        p.Incident.Phase != viewstate.DialogClosed,
		Submitting:  p.Incident.Phase == viewstate.DialogSubmitting,
		Description: p.Incident.Description,
		Error:       p.Incident.LastError,
	}
	if p.Incident.RoomID != nil {
		m.IncidentDialog.RoomID = *p.Incident.RoomID
	}

	m.PaymentDialog = PaymentDialogModel{
		Open:       p.Payment.Phase != viewstate.DialogClosed,
		Submitting: p.Payment.Phase == viewstate.DialogSubmitting,
		Email:      p.Payment.Email,
		EmailHint:  p.Payment.EmailHint,
		Error:      p.Payment.LastError,
	}
	if p.Payment.ReservationID != nil {
		m.PaymentDialog.ReservationID = *p.Payment.ReservationID
	}

	return m
}

func reservationRow(r domain.Reservation) ReservationRow {
	row := ReservationRow{
		ID:         r.ID,
		RoomID:     r.Room.ID,
		RoomNumber: r.Room.Numero,
		Title:      fmt.Sprintf("Room %s", r.Room.Numero),
		Image:      r.Room.Image,
		Status:     badge(string(r.StatusReservation), domain.ReservationBadge(r.StatusReservation)),
		Paid:       r.IsPaid(),
	}
	if row.Paid {
		row.PayLabel = labelPaid
		row.PayClass = BadgeClass(domain.BadgePositive)
		row.ReceiptAvailable = true
	} else {
		row.PayLabel = labelPay
		row.PayClass = BadgeClass(domain.BadgeWarning)
	}
	return row
}

func incidentRow(inc domain.Incident) IncidentRow {
	row := IncidentRow{
		ID:          inc.ID,
		Description: inc.Description,
		Status:      badge(string(inc.Status), domain.IncidentBadge(inc.Status)),
		Technician:  domain.MsgNotAssigned,
		Speciality:  domain.MsgNoSpeciality,
	}
	if inc.Technician != nil {
		row.Technician = inc.Technician.Name
		row.Speciality = inc.Technician.Speciality
		row.TechnicianAssigned = true
	}
	return row
}

func badge(label string, color domain.BadgeColor) Badge {
	return Badge{Label: label, Color: color, Class: BadgeClass(color)}
}

// BadgeClass CSS класс для категории цвета
func BadgeClass(color domain.BadgeColor) string {
	switch color {
	case domain.BadgePositive:
		return "bg-green-500"
	case domain.BadgeNegative:
		return "bg-red-500"
	case domain.BadgeWarning:
		return "bg-yellow-500"
	case domain.BadgeInformational:
		return "bg-blue-500"
	default:
		return "bg-gray-500"
	}
}
