package load_profile

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-ProfileService/internal/domain"
	"github.com/m04kA/SMC-ProfileService/internal/infra/storage/journal"
	"github.com/m04kA/SMC-ProfileService/internal/infra/storage/session"
	"github.com/m04kA/SMC-ProfileService/internal/viewstate"
	"github.com/m04kA/SMC-ProfileService/pkg/logger"
)

type fakeClient struct {
	user            *domain.User
	userErr         error
	reservations    []domain.Reservation
	reservationsErr error
	incidents       []domain.Incident
	incidentsErr    error

	mu    sync.Mutex
	calls int
}

func (f *fakeClient) hit() {
	f.mu.Lock()
	f.calls++
	f.mu.Unlock()
}

func (f *fakeClient) GetProfile(context.Context) (*domain.User, error) {
	f.hit()
	return f.user, f.userErr
}

func (f *fakeClient) GetMyReservations(context.Context) ([]domain.Reservation, error) {
	f.hit()
	return f.reservations, f.reservationsErr
}

func (f *fakeClient) GetMyIncidents(context.Context) ([]domain.Incident, error) {
	f.hit()
	return f.incidents, f.incidentsErr
}

type fakeJournal struct {
	entries []journal.Entry
}

func (f *fakeJournal) Record(_ context.Context, e journal.Entry) error {
	f.entries = append(f.entries, e)
	return nil
}

func setup(t *testing.T, client *fakeClient) (*UseCase, *session.MemoryStore, *fakeJournal, string) {
	t.Helper()
	store := session.NewMemoryStore(time.Minute, nil)
	page := viewstate.New("sess-1", "user-1", time.Now())
	require.NoError(t, store.Create(context.Background(), page))

	j := &fakeJournal{}
	return NewUseCase(store, client, j, logger.Nop{}), store, j, page.ID
}

func TestExecute_AllSucceed(t *testing.T) {
	client := &fakeClient{
		user: &domain.User{Name: "Alice", Email: "alice@example.com"},
		reservations: []domain.Reservation{
			{ID: 1, Room: domain.Room{ID: 10, Numero: "12A"}},
			{ID: 2, Room: domain.Room{ID: 20, Numero: "14"}},
		},
		incidents: []domain.Incident{{ID: 5, Description: "leak"}},
	}
	uc, _, j, id := setup(t, client)

	resp, err := uc.Execute(context.Background(), &Request{SessionID: id, Subject: "user-1"})
	require.NoError(t, err)

	data := resp.Page.Data
	assert.Equal(t, viewstate.LoadLoaded, data.Phase)
	assert.Equal(t, "Alice", data.User.Name)
	assert.Len(t, data.Reservations, 2)
	assert.Len(t, data.Incidents, 1)
	assert.Equal(t, 3, client.calls)

	require.Len(t, j.entries, 1)
	assert.Equal(t, journal.ActionProfileLoaded, j.entries[0].Action)
}

func TestExecute_EmptyLists(t *testing.T) {
	client := &fakeClient{user: &domain.User{Name: "Alice"}}
	uc, _, _, id := setup(t, client)

	resp, err := uc.Execute(context.Background(), &Request{SessionID: id, Subject: "user-1"})
	require.NoError(t, err)
	assert.Equal(t, viewstate.LoadLoaded, resp.Page.Data.Phase)
	assert.NotNil(t, resp.Page.Data.Reservations)
	assert.Empty(t, resp.Page.Data.Reservations)
	assert.Empty(t, resp.Page.Data.Incidents)
}

func TestExecute_OneFailureDropsEverything(t *testing.T) {
	client := &fakeClient{
		user:         &domain.User{Name: "Alice"},
		reservations: []domain.Reservation{{ID: 1}},
		incidentsErr: errors.New("boom"),
	}
	uc, _, j, id := setup(t, client)

	resp, err := uc.Execute(context.Background(), &Request{SessionID: id, Subject: "user-1"})
	require.NoError(t, err)

	data := resp.Page.Data
	assert.Equal(t, viewstate.LoadError, data.Phase)
	assert.Equal(t, domain.MsgLoadFailed, data.Error)
	assert.Empty(t, data.Reservations)
	assert.Empty(t, data.User.Name)
	assert.Equal(t, viewstate.SectionSuccess, data.Sections.Reservations.Status)
	assert.Equal(t, viewstate.SectionFailure, data.Sections.Incidents.Status)
	assert.Equal(t, 3, client.calls)

	require.Len(t, j.entries, 1)
	assert.Equal(t, journal.ActionProfileLoadFailed, j.entries[0].Action)
	assert.Contains(t, j.entries[0].Details, "incidents: boom")
}

func TestExecute_ForeignSession(t *testing.T) {
	client := &fakeClient{}
	uc, _, _, id := setup(t, client)

	_, err := uc.Execute(context.Background(), &Request{SessionID: id, Subject: "user-2"})
	assert.ErrorIs(t, err, ErrSessionNotFound)
	assert.Zero(t, client.calls)
}

func TestExecute_MissingSession(t *testing.T) {
	uc, _, _, _ := setup(t, &fakeClient{})

	_, err := uc.Execute(context.Background(), &Request{SessionID: "missing", Subject: "user-1"})
	assert.ErrorIs(t, err, ErrSessionNotFound)
}

func TestExecute_LoadInProgress(t *testing.T) {
	client := &fakeClient{}
	uc, store, _, id := setup(t, client)

	_, err := store.Update(context.Background(), id, func(p *viewstate.Page) error {
		return p.BeginLoad()
	})
	require.NoError(t, err)

	_, err = uc.Execute(context.Background(), &Request{SessionID: id, Subject: "user-1"})
	assert.ErrorIs(t, err, ErrLoadInProgress)
	assert.Zero(t, client.calls)
}
