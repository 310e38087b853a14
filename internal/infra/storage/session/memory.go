package session

import (
	"context"
	"sync"
	"time"

	"github.com/m04kA/SMC-ProfileService/internal/viewstate"
)

type memoryEntry struct {
	page    *viewstate.Page
	expires time.Time
}

// MemoryStore хранит сессии в памяти процесса
type MemoryStore struct {
	mu      sync.Mutex
	entries map[string]memoryEntry
	ttl     time.Duration
	now     func() time.Time
	gauge   Gauge
}

// NewMemoryStore создает хранилище в памяти с TTL сессии
func NewMemoryStore(ttl time.Duration, gauge Gauge) *MemoryStore {
	return &MemoryStore{
		entries: make(map[string]memoryEntry),
		ttl:     ttl,
		now:     time.Now,
		gauge:   gauge,
	}
}

func (s *MemoryStore) Create(_ context.Context, page *viewstate.Page) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.entries[page.ID] = memoryEntry{page: page.Clone(), expires: s.now().Add(s.ttl)}
	s.reportLocked()
	return nil
}

func (s *MemoryStore) Get(_ context.Context, id string) (*viewstate.Page, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	e, ok := s.liveLocked(id)
	if !ok {
		return nil, ErrSessionNotFound
	}
	return e.page.Clone(), nil
}

func (s *MemoryStore) Update(_ context.Context, id string, fn func(page *viewstate.Page) error) (*viewstate.Page, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	e, ok := s.liveLocked(id)
	if !ok {
		return nil, ErrSessionNotFound
	}

	// fn работает с копией, чтобы ошибка не оставила частично изменённое состояние
	working := e.page.Clone()
	if err := fn(working); err != nil {
		return nil, err
	}
	working.Touch(s.now())

	s.entries[id] = memoryEntry{page: working, expires: s.now().Add(s.ttl)}
	return working.Clone(), nil
}

func (s *MemoryStore) Delete(_ context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.entries, id)
	s.reportLocked()
	return nil
}

// Sweep удаляет истёкшие сессии и возвращает их количество
func (s *MemoryStore) Sweep() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	removed := 0
	for id, e := range s.entries {
		if now.After(e.expires) {
			delete(s.entries, id)
			removed++
		}
	}
	s.reportLocked()
	return removed
}

func (s *MemoryStore) liveLocked(id string) (memoryEntry, bool) {
	e, ok := s.entries[id]
	if !ok {
		return memoryEntry{}, false
	}
	if s.now().After(e.expires) {
		delete(s.entries, id)
		s.reportLocked()
		return memoryEntry{}, false
	}
	return e, true
}

func (s *MemoryStore) reportLocked() {
	if s.gauge != nil {
		s.gauge.SetActiveSessions(len(s.entries))
	}
}
