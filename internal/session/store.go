package session

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
)

// Store maps session handles to quiz state. Get returns ErrNoActiveSession
// for unknown or expired handles. Implementations must be safe for
// concurrent use; writes to the same handle are last-writer-wins.
type Store interface {
	Get(ctx context.Context, handle uuid.UUID) (*State, error)
	Save(ctx context.Context, state *State) error
	Delete(ctx context.Context, handle uuid.UUID) error
}

type memoryEntry struct {
	state     State
	expiresAt time.Time
}

// MemoryStore keeps sessions in process. Expired entries are dropped lazily
// on read and swept at most once a minute on write.
type MemoryStore struct {
	mu        sync.Mutex
	ttl       time.Duration
	now       func() time.Time
	entries   map[uuid.UUID]memoryEntry
	lastSweep time.Time
}

func NewMemoryStore(ttl time.Duration) *MemoryStore {
	return &MemoryStore{
		ttl:     ttl,
		now:     time.Now,
		entries: make(map[uuid.UUID]memoryEntry),
	}
}

func (m *MemoryStore) Get(_ context.Context, handle uuid.UUID) (*State, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	e, ok := m.entries[handle]
	if !ok {
		return nil, ErrNoActiveSession
	}
	if m.expired(e, m.now()) {
		delete(m.entries, handle)
		return nil, ErrNoActiveSession
	}

	st := e.state.clone()
	return &st, nil
}

func (m *MemoryStore) Save(_ context.Context, state *State) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	now := m.now()
	if now.Sub(m.lastSweep) > time.Minute {
		m.sweep(now)
	}

	e := memoryEntry{state: state.clone()}
	if m.ttl > 0 {
		e.expiresAt = now.Add(m.ttl)
	}
	m.entries[state.Handle] = e
	return nil
}

func (m *MemoryStore) Delete(_ context.Context, handle uuid.UUID) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	delete(m.entries, handle)
	return nil
}

func (m *MemoryStore) Len() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.entries)
}

func (m *MemoryStore) expired(e memoryEntry, now time.Time) bool {
	return !e.expiresAt.IsZero() && now.After(e.expiresAt)
}

func (m *MemoryStore) sweep(now time.Time) {
	for h, e := range m.entries {
		if m.expired(e, now) {
			delete(m.entries, h)
		}
	}
	m.lastSweep = now
}
