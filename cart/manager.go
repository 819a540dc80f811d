package cart

import (
	"context"
	"log"
	"sync"
	"time"

	"github.com/google/uuid"
)

// Manager hands out one Store per cart key. A key the manager has never
// seen is rehydrated from the Persister, or started empty if nothing was
// persisted under it. Every store the manager creates persists itself after
// each mutation.
type Manager struct {
	mu        sync.Mutex
	stores    map[string]*Store
	persister Persister
}

func NewManager(persister Persister) *Manager {
	return &Manager{
		stores:    make(map[string]*Store),
		persister: persister,
	}
}

// Create mints a fresh cart under a new key.
func (m *Manager) Create() *Store {
	key := uuid.New().String()

	m.mu.Lock()
	defer m.mu.Unlock()
	store := NewStore(key, Snapshot{}, m.persistFunc(key))
	m.stores[key] = store
	return store
}

// Get returns the store for key, rehydrating it from persisted state on
// first touch. An unknown key yields a fresh empty cart under that key.
func (m *Manager) Get(ctx context.Context, key string) (*Store, error) {
	m.mu.Lock()
	if store, ok := m.stores[key]; ok {
		m.mu.Unlock()
		return store, nil
	}
	m.mu.Unlock()

	snap, _, err := m.persister.Load(ctx, key)
	if err != nil {
		return nil, err
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	if store, ok := m.stores[key]; ok {
		return store, nil
	}
	store := NewStore(key, snap, m.persistFunc(key))
	m.stores[key] = store
	return store, nil
}

// persistFunc writes each snapshot through to the persister. A failed write
// is logged and does not fail the mutation: the in-memory state stays
// authoritative for the session.
func (m *Manager) persistFunc(key string) ChangeFunc {
	return func(snap Snapshot) {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := m.persister.Save(ctx, key, snap); err != nil {
			log.Printf("cart: persisting cart %s failed: %v", key, err)
		}
	}
}
