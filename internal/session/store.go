// Package session holds the deal collection for the current session.
// There is no persistence: state lives in memory until the next
// upload replaces it or a clear drops it.
package session

import (
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/lmercier/dealdesk/internal/deal"
)

// Store is the injectable state container owned by the composition
// root. Each upload swaps in a whole new snapshot; records are never
// mutated in place, so readers always see a consistent collection.
type Store struct {
	mu         sync.RWMutex
	deals      []deal.Deal
	uploadID   string
	uploadedAt time.Time
}

func NewStore() *Store {
	return &Store{}
}

// Snapshot is the session state visible to readers.
type Snapshot struct {
	Deals      []deal.Deal
	UploadID   string
	UploadedAt time.Time
}

// ReplaceAll swaps in a freshly ingested collection, stamping the
// upload time and a new upload id. Collections replace wholesale,
// never merge.
func (s *Store) ReplaceAll(deals []deal.Deal) string {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.deals = deals
	s.uploadID = uuid.NewString()
	s.uploadedAt = time.Now()
	return s.uploadID
}

// Clear drops the collection and the upload stamp.
func (s *Store) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.deals = nil
	s.uploadID = ""
	s.uploadedAt = time.Time{}
}

// Deals returns the current snapshot. Callers must not mutate it.
func (s *Store) Deals() []deal.Deal {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.deals
}

// UploadedAt reports when the current collection was uploaded; ok is
// false when nothing is loaded.
func (s *Store) UploadedAt() (time.Time, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.uploadedAt, !s.uploadedAt.IsZero()
}

// Snapshot returns the deals together with their upload stamp in one
// consistent read.
func (s *Store) Snapshot() Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return Snapshot{Deals: s.deals, UploadID: s.uploadID, UploadedAt: s.uploadedAt}
}
