package session

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-ProfileService/internal/domain"
	"github.com/m04kA/SMC-ProfileService/internal/viewstate"
)

func loadedPage(t *testing.T, id string) *viewstate.Page {
	t.Helper()
	p := viewstate.New(id, "user-1", time.Now())
	require.NoError(t, p.BeginLoad())
	require.NoError(t, p.CompleteLoad(viewstate.LoadResult{
		User:         &domain.User{Name: "Alice", Email: "alice@example.com"},
		Reservations: []domain.Reservation{{ID: 1, Room: domain.Room{ID: 10, Numero: "12A"}}},
		Incidents:    []domain.Incident{},
	}))
	return p
}

// runStoreContract проверяет поведение, общее для всех реализаций Store
func runStoreContract(t *testing.T, store Store) {
	ctx := context.Background()

	t.Run("get missing", func(t *testing.T) {
		_, err := store.Get(ctx, "missing")
		assert.ErrorIs(t, err, ErrSessionNotFound)
	})

	t.Run("create and get", func(t *testing.T) {
		require.NoError(t, store.Create(ctx, loadedPage(t, "s1")))

		got, err := store.Get(ctx, "s1")
		require.NoError(t, err)
		assert.Equal(t, "Alice", got.Data.User.Name)
		assert.Equal(t, viewstate.LoadLoaded, got.Data.Phase)
		require.Len(t, got.Data.Reservations, 1)
	})

	t.Run("update persists", func(t *testing.T) {
		require.NoError(t, store.Create(ctx, loadedPage(t, "s2")))

		updated, err := store.Update(ctx, "s2", func(p *viewstate.Page) error {
			return p.OpenIncident(10)
		})
		require.NoError(t, err)
		assert.Equal(t, viewstate.DialogOpen, updated.Incident.Phase)

		got, err := store.Get(ctx, "s2")
		require.NoError(t, err)
		assert.Equal(t, viewstate.DialogOpen, got.Incident.Phase)
		assert.Equal(t, int64(10), *got.Incident.RoomID)
	})

	t.Run("failed update is discarded", func(t *testing.T) {
		require.NoError(t, store.Create(ctx, loadedPage(t, "s3")))
		boom := errors.New("boom")

		_, err := store.Update(ctx, "s3", func(p *viewstate.Page) error {
			_ = p.OpenPayment(1)
			return boom
		})
		assert.ErrorIs(t, err, boom)

		got, err := store.Get(ctx, "s3")
		require.NoError(t, err)
		assert.Equal(t, viewstate.DialogClosed, got.Payment.Phase)
	})

	t.Run("update missing", func(t *testing.T) {
		_, err := store.Update(ctx, "nope", func(p *viewstate.Page) error { return nil })
		assert.ErrorIs(t, err, ErrSessionNotFound)
	})

	t.Run("delete", func(t *testing.T) {
		require.NoError(t, store.Create(ctx, loadedPage(t, "s4")))
		require.NoError(t, store.Delete(ctx, "s4"))
		_, err := store.Get(ctx, "s4")
		assert.ErrorIs(t, err, ErrSessionNotFound)
	})

	t.Run("only one concurrent submit wins", func(t *testing.T) {
		page := loadedPage(t, "s5")
		require.NoError(t, page.OpenIncident(10))
		require.NoError(t, store.Create(ctx, page))

		var (
			wg       sync.WaitGroup
			mu       sync.Mutex
			started  int
			rejected int
		)
		for i := 0; i < 10; i++ {
			wg.Add(1)
			go func() {
				defer wg.Done()
				_, err := store.Update(ctx, "s5", func(p *viewstate.Page) error {
					_, err := p.BeginIncidentSubmit("leak")
					return err
				})
				mu.Lock()
				defer mu.Unlock()
				if err == nil {
					started++
				} else if errors.Is(err, viewstate.ErrSubmitInProgress) || errors.Is(err, ErrConflict) {
					rejected++
				}
			}()
		}
		wg.Wait()

		assert.Equal(t, 1, started)
		assert.Equal(t, 9, rejected)
	})
}

type countingGauge struct {
	last int
}

func (g *countingGauge) SetActiveSessions(n int) { g.last = n }

func TestMemoryStore(t *testing.T) {
	runStoreContract(t, NewMemoryStore(time.Minute, nil))
}

func TestMemoryStore_Expiry(t *testing.T) {
	gauge := &countingGauge{}
	store := NewMemoryStore(time.Minute, gauge)
	now := time.Date(2025, 10, 15, 10, 0, 0, 0, time.UTC)
	store.now = func() time.Time { return now }

	ctx := context.Background()
	require.NoError(t, store.Create(ctx, loadedPage(t, "a")))
	require.NoError(t, store.Create(ctx, loadedPage(t, "b")))
	assert.Equal(t, 2, gauge.last)

	now = now.Add(2 * time.Minute)
	_, err := store.Get(ctx, "a")
	assert.ErrorIs(t, err, ErrSessionNotFound)

	assert.Equal(t, 1, store.Sweep())
	assert.Equal(t, 0, gauge.last)
}

func TestMemoryStore_ReturnsCopies(t *testing.T) {
	store := NewMemoryStore(time.Minute, nil)
	ctx := context.Background()
	require.NoError(t, store.Create(ctx, loadedPage(t, "c")))

	got, err := store.Get(ctx, "c")
	require.NoError(t, err)
	got.Data.Reservations[0].PayementStatus = domain.PaymentPaid

	again, err := store.Get(ctx, "c")
	require.NoError(t, err)
	assert.False(t, again.Data.Reservations[0].IsPaid())
}

func TestRedisStore(t *testing.T) {
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })

	store := NewRedisStore(client, "profile:session:", time.Minute)
	runStoreContract(t, store)

	assert.True(t, mr.Exists("profile:session:s1"))
	ttl := mr.TTL("profile:session:s1")
	assert.Greater(t, ttl, time.Duration(0))
}

func TestRedisStore_Expiry(t *testing.T) {
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })

	store := NewRedisStore(client, "p:", time.Minute)
	ctx := context.Background()
	require.NoError(t, store.Create(ctx, loadedPage(t, "x")))

	mr.FastForward(2 * time.Minute)
	_, err := store.Get(ctx, "x")
	assert.ErrorIs(t, err, ErrSessionNotFound)
}
