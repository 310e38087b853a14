package profile

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-ProfileService/internal/domain"
	"github.com/m04kA/SMC-ProfileService/internal/infra/storage/session"
	"github.com/m04kA/SMC-ProfileService/internal/viewstate"
	"github.com/m04kA/SMC-ProfileService/pkg/logger"
)

func newLoadedSession(t *testing.T, svc *Service, subject string) string {
	t.Helper()
	ctx := context.Background()

	page, err := svc.NewSession(ctx, subject)
	require.NoError(t, err)

	_, err = svc.store.Update(ctx, page.ID, func(p *viewstate.Page) error {
		if err := p.BeginLoad(); err != nil {
			return err
		}
		return p.CompleteLoad(viewstate.LoadResult{
			User: &domain.User{Name: "Alice"},
			Reservations: []domain.Reservation{
				{ID: 1, Room: domain.Room{ID: 10, Numero: "12A"}},
				{ID: 2, Room: domain.Room{ID: 20, Numero: "14"}, PayementStatus: domain.PaymentPaid},
			},
		})
	})
	require.NoError(t, err)
	return page.ID
}

func newTestService() *Service {
	return NewService(session.NewMemoryStore(time.Minute, nil), logger.Nop{})
}

func TestNewSession(t *testing.T) {
	svc := newTestService()

	page, err := svc.NewSession(context.Background(), "user-1")
	require.NoError(t, err)
	assert.NotEmpty(t, page.ID)
	assert.Equal(t, "user-1", page.Subject)
	assert.Equal(t, viewstate.LoadIdle, page.Data.Phase)
}

type failingStore struct{ SessionStore }

func (failingStore) Create(context.Context, *viewstate.Page) error {
	return errors.New("redis down")
}

func TestNewSession_StoreError(t *testing.T) {
	svc := NewService(failingStore{}, logger.Nop{})

	_, err := svc.NewSession(context.Background(), "user-1")
	assert.ErrorIs(t, err, ErrInternal)
}

func TestGetPage_NoticeShownOnce(t *testing.T) {
	svc := newTestService()
	ctx := context.Background()
	id := newLoadedSession(t, svc, "user-1")

	_, err := svc.store.Update(ctx, id, func(p *viewstate.Page) error {
		p.NotifyReceipt()
		return nil
	})
	require.NoError(t, err)

	first, err := svc.GetPage(ctx, id, "user-1")
	require.NoError(t, err)
	require.NotNil(t, first.Notice)
	assert.Equal(t, domain.MsgReceiptGenerated, first.Notice.Text)

	second, err := svc.GetPage(ctx, id, "user-1")
	require.NoError(t, err)
	assert.Nil(t, second.Notice)
}

func TestGetPage_ForeignOrMissingSession(t *testing.T) {
	svc := newTestService()
	ctx := context.Background()
	id := newLoadedSession(t, svc, "user-1")

	_, err := svc.GetPage(ctx, id, "user-2")
	assert.ErrorIs(t, err, ErrSessionNotFound)

	_, err = svc.GetPage(ctx, "unknown", "user-1")
	assert.ErrorIs(t, err, ErrSessionNotFound)

	_, err = svc.Snapshot(ctx, id, "user-2")
	assert.ErrorIs(t, err, ErrSessionNotFound)
}

func TestSnapshot_KeepsNotice(t *testing.T) {
	svc := newTestService()
	ctx := context.Background()
	id := newLoadedSession(t, svc, "user-1")

	_, err := svc.store.Update(ctx, id, func(p *viewstate.Page) error {
		p.NotifyReceipt()
		return nil
	})
	require.NoError(t, err)

	snap, err := svc.Snapshot(ctx, id, "user-1")
	require.NoError(t, err)
	require.NotNil(t, snap.Notice)

	page, err := svc.GetPage(ctx, id, "user-1")
	require.NoError(t, err)
	assert.NotNil(t, page.Notice)
}

func TestOpenIncidentDialog(t *testing.T) {
	svc := newTestService()
	ctx := context.Background()
	id := newLoadedSession(t, svc, "user-1")

	page, err := svc.OpenIncidentDialog(ctx, id, "user-1", 10)
	require.NoError(t, err)
	assert.Equal(t, viewstate.DialogOpen, page.Incident.Phase)
	assert.Equal(t, int64(10), *page.Incident.RoomID)

	page, err = svc.OpenIncidentDialog(ctx, id, "user-1", 20)
	require.NoError(t, err)
	assert.Equal(t, int64(20), *page.Incident.RoomID)

	_, err = svc.OpenIncidentDialog(ctx, id, "user-1", 999)
	assert.ErrorIs(t, err, ErrRoomNotFound)
}

func TestOpenIncidentDialog_NotLoaded(t *testing.T) {
	svc := newTestService()
	ctx := context.Background()

	page, err := svc.NewSession(ctx, "user-1")
	require.NoError(t, err)

	_, err = svc.OpenIncidentDialog(ctx, page.ID, "user-1", 10)
	assert.ErrorIs(t, err, viewstate.ErrNotLoaded)
}

func TestOpenPaymentDialog(t *testing.T) {
	svc := newTestService()
	ctx := context.Background()
	id := newLoadedSession(t, svc, "user-1")

	page, err := svc.OpenPaymentDialog(ctx, id, "user-1", 2)
	require.NoError(t, err)
	assert.Equal(t, viewstate.DialogOpen, page.Payment.Phase)
	assert.Equal(t, int64(2), *page.Payment.ReservationID)

	_, err = svc.OpenPaymentDialog(ctx, id, "user-1", 42)
	assert.ErrorIs(t, err, ErrReservationNotFound)
}

func TestCloseDialog(t *testing.T) {
	svc := newTestService()
	ctx := context.Background()
	id := newLoadedSession(t, svc, "user-1")

	_, err := svc.OpenIncidentDialog(ctx, id, "user-1", 10)
	require.NoError(t, err)

	page, err := svc.CloseDialog(ctx, id, "user-1", DialogIncident)
	require.NoError(t, err)
	assert.Equal(t, viewstate.DialogClosed, page.Incident.Phase)
	assert.Nil(t, page.Incident.RoomID)

	_, err = svc.CloseDialog(ctx, id, "user-1", Dialog("settings"))
	assert.ErrorIs(t, err, ErrUnknownDialog)
}

func TestParseDialog(t *testing.T) {
	d, err := ParseDialog("payment")
	require.NoError(t, err)
	assert.Equal(t, DialogPayment, d)

	_, err = ParseDialog("other")
	assert.ErrorIs(t, err, ErrUnknownDialog)
}

type conflictStore struct{ SessionStore }

func (conflictStore) Update(context.Context, string, func(*viewstate.Page) error) (*viewstate.Page, error) {
	return nil, fmt.Errorf("%w: Update - retries exhausted", session.ErrConflict)
}

func TestOpenPaymentDialog_StoreConflict(t *testing.T) {
	svc := NewService(conflictStore{}, logger.Nop{})

	_, err := svc.OpenPaymentDialog(context.Background(), "sess-1", "user-1", 1)
	assert.ErrorIs(t, err, viewstate.ErrSubmitInProgress)
	assert.NotErrorIs(t, err, ErrInternal)
}
