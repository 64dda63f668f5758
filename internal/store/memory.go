package store

import (
	"sync"

	"github.com/mjrivers/mailtrail/internal/model"
)

// MemoryStore holds the latest load snapshot. A successful load replaces
// the snapshot wholesale; nothing is merged across loads and a failed
// load leaves the previous snapshot in place.
type MemoryStore struct {
	mu   sync.RWMutex
	snap *model.Snapshot
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{}
}

func (s *MemoryStore) Replace(snap *model.Snapshot) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.snap = snap
}

// Snapshot returns the current snapshot, or false when nothing has been
// loaded yet. Callers must treat the snapshot as read-only.
func (s *MemoryStore) Snapshot() (*model.Snapshot, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.snap == nil {
		return nil, false
	}
	return s.snap, true
}
