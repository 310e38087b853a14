package domain

// ReservationStatus статус одобрения бронирования
type ReservationStatus string

const (
	ReservationAccepted ReservationStatus = "ACCEPTED"
	ReservationDeclined ReservationStatus = "DECLINED"
	ReservationPending  ReservationStatus = "PENDING"
)

// PaymentStatus статус оплаты бронирования.
// Значимо только PAID, любая другая строка означает "не оплачено".
type PaymentStatus string

const (
	PaymentPaid PaymentStatus = "PAID"
)

// Reservation бронирование комнаты пользователем
type Reservation struct {
	ID                int64             `json:"id"`
	Room              Room              `json:"room"`
	StatusReservation ReservationStatus `json:"statusReservation"`
	PayementStatus    PaymentStatus     `json:"payementStatus"`
}

// IsPaid returns true if the reservation has been paid
func (r *Reservation) IsPaid() bool {
	return r.PayementStatus == PaymentPaid
}

// MarkPaid sets payment status to PAID
func (r *Reservation) MarkPaid() {
	r.PayementStatus = PaymentPaid
}

// FindReservation ищет бронирование по ID
func FindReservation(reservations []Reservation, id int64) (Reservation, bool) {
	for _, r := range reservations {
		if r.ID == id {
			return r, true
		}
	}
	return Reservation{}, false
}

// HasRoom проверяет, что комната присутствует хотя бы в одном бронировании
func HasRoom(reservations []Reservation, roomID int64) bool {
	for _, r := range reservations {
		if r.Room.ID == roomID {
			return true
		}
	}
	return false
}
