package state

import "sync"

// TableStore remembers which game tables have already been provisioned in
// this process so the create statement can be skipped on later requests.
type TableStore interface {
	IsProvisioned(gameName string) bool
	MarkProvisioned(gameName string)
}

type InMemoryTableStore struct {
	mu     sync.RWMutex
	tables map[string]struct{}
}

func NewInMemoryTableStore() *InMemoryTableStore {
	return &InMemoryTableStore{tables: make(map[string]struct{})}
}

func (i *InMemoryTableStore) IsProvisioned(gameName string) bool {
	i.mu.RLock()
	defer i.mu.RUnlock()
	_, exists := i.tables[gameName]
	return exists
}

func (i *InMemoryTableStore) MarkProvisioned(gameName string) {
	i.mu.Lock()
	defer i.mu.Unlock()
	i.tables[gameName] = struct{}{}
}

// NoopTableStore never remembers anything, so every request provisions.
type NoopTableStore struct{}

func (NoopTableStore) IsProvisioned(string) bool { return false }

func (NoopTableStore) MarkProvisioned(string) {}
