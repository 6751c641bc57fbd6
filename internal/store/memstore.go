package store

import (
	"sync"

	"lgame/internal/match"
)

type MemoryStore struct {
	mu      sync.RWMutex
	matches map[string]*match.Match
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		matches: map[string]*match.Match{},
	}
}

func (m *MemoryStore) GetMatch(id string) (*match.Match, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	mt, ok := m.matches[id]
	return mt, ok
}

func (m *MemoryStore) SaveMatch(mt *match.Match) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.matches[mt.ID] = mt
}

func (m *MemoryStore) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.matches)
}
