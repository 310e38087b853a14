package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestReservationBadge(t *testing.T) {
	tests := []struct {
		status   ReservationStatus
		expected BadgeColor
	}{
		{ReservationAccepted, BadgePositive},
		{ReservationDeclined, BadgeNegative},
		{ReservationPending, BadgeWarning},
		{"UNKNOWN", BadgeNeutral},
		{"", BadgeNeutral},
	}

	for _, tt := range tests {
		t.Run(string(tt.status), func(t *testing.T) {
			assert.Equal(t, tt.expected, ReservationBadge(tt.status))
		})
	}
}

func TestReservationBadge_Distinct(t *testing.T) {
	seen := map[BadgeColor]bool{}
	for _, s := range []ReservationStatus{ReservationAccepted, ReservationDeclined, ReservationPending, "UNKNOWN"} {
		seen[ReservationBadge(s)] = true
	}
	assert.Len(t, seen, 4)
}

func TestIncidentBadge(t *testing.T) {
	assert.Equal(t, BadgeWarning, IncidentBadge(IncidentPending))
	assert.Equal(t, BadgePositive, IncidentBadge(IncidentResolved))
	assert.Equal(t, BadgeInformational, IncidentBadge(IncidentOngoing))
	assert.Equal(t, BadgeNeutral, IncidentBadge("CLOSED"))
}

func TestReservation_IsPaid(t *testing.T) {
	paid := Reservation{PayementStatus: PaymentPaid}
	unpaid := Reservation{PayementStatus: "UNPAID"}
	empty := Reservation{}

	assert.True(t, paid.IsPaid())
	assert.False(t, unpaid.IsPaid())
	assert.False(t, empty.IsPaid())

	unpaid.MarkPaid()
	assert.True(t, unpaid.IsPaid())
	assert.Equal(t, PaymentPaid, unpaid.PayementStatus)
}

func TestFindReservationAndHasRoom(t *testing.T) {
	list := []Reservation{
		{ID: 1, Room: Room{ID: 10}},
		{ID: 2, Room: Room{ID: 20}},
	}

	r, ok := FindReservation(list, 2)
	assert.True(t, ok)
	assert.Equal(t, int64(20), r.Room.ID)

	_, ok = FindReservation(list, 3)
	assert.False(t, ok)

	assert.True(t, HasRoom(list, 10))
	assert.False(t, HasRoom(list, 30))
}
