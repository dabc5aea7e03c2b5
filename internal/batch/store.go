package batch

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Document is one uploaded settlement file. Immutable once stored; identity
// is positional within its batch.
type Document struct {
	Name string
	Data []byte
}

type entry struct {
	documents []Document
	touchedAt time.Time
}

// Store is the in-memory session cache mapping an opaque batch id to the
// documents currently selected for it. Batches survive across requests so
// the caller can recompute with a different field without re-uploading.
// State is volatile: nothing persists across process restart.
type Store struct {
	mu      sync.Mutex
	batches map[string]entry
	ttl     time.Duration
	now     func() time.Time
	logger  *zap.Logger
}

// NewStore creates a store whose batches expire ttl after their last use.
// A zero ttl disables expiry.
func NewStore(ttl time.Duration, logger *zap.Logger) *Store {
	return &Store{
		batches: make(map[string]entry),
		ttl:     ttl,
		now:     time.Now,
		logger:  logger,
	}
}

// Put stores documents under id, minting a fresh opaque id when none is
// supplied. Replacement is total: the new list fully supersedes any prior
// list under the same id. The id actually used is returned.
func (s *Store) Put(id string, documents []Document) string {
	if id == "" {
		id = uuid.NewString()
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.batches[id] = entry{documents: documents, touchedAt: s.now()}
	s.logger.Debug("Batch stored",
		zap.String("batch_id", id),
		zap.Int("file_count", len(documents)))
	return id
}

// Get returns the documents stored under id. An unknown id yields an empty
// slice, not an error: an empty batch and a missing batch are equivalent.
func (s *Store) Get(id string) []Document {
	s.mu.Lock()
	defer s.mu.Unlock()

	e, ok := s.batches[id]
	if !ok {
		return nil
	}
	e.touchedAt = s.now()
	s.batches[id] = e
	return e.documents
}

// Filter replaces the list under id with only the documents satisfying
// keep, returning how many were removed. Unknown ids remove nothing.
func (s *Store) Filter(id string, keep func(Document) bool) int {
	s.mu.Lock()
	defer s.mu.Unlock()

	e, ok := s.batches[id]
	if !ok {
		return 0
	}

	retained := make([]Document, 0, len(e.documents))
	for _, doc := range e.documents {
		if keep(doc) {
			retained = append(retained, doc)
		}
	}
	removed := len(e.documents) - len(retained)

	s.batches[id] = entry{documents: retained, touchedAt: s.now()}
	s.logger.Debug("Batch filtered",
		zap.String("batch_id", id),
		zap.Int("removed", removed),
		zap.Int("retained", len(retained)))
	return removed
}

// Remove deletes the batch entirely. Idempotent on missing ids.
func (s *Store) Remove(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.batches, id)
}

// Len reports how many batches are currently cached.
func (s *Store) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.batches)
}

// Sweep drops every batch untouched for longer than the store's ttl and
// returns how many were dropped. A zero ttl never expires anything.
func (s *Store) Sweep() int {
	if s.ttl == 0 {
		return 0
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	cutoff := s.now().Add(-s.ttl)
	removed := 0
	for id, e := range s.batches {
		if e.touchedAt.Before(cutoff) {
			delete(s.batches, id)
			removed++
		}
	}
	if removed > 0 {
		s.logger.Info("Expired idle batches", zap.Int("count", removed))
	}
	return removed
}

// StartJanitor sweeps expired batches on the given interval until ctx is
// cancelled.
func (s *Store) StartJanitor(ctx context.Context, interval time.Duration) {
	if s.ttl == 0 || interval <= 0 {
		return
	}
	go func() {
		ticker := time.NewTicker(interval)
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				s.Sweep()
			}
		}
	}()
}
