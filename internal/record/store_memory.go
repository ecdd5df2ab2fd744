package record

import (
	"context"
	"sort"
	"sync"

	"github.com/google/uuid"

	"archivum/pkg/platform/sentinel"
)

// MemoryStore keeps records in memory. Used in tests and single-node
// deployments without PostgreSQL.
type MemoryStore struct {
	mu      sync.RWMutex
	records map[uuid.UUID]Record
}

// NewMemoryStore creates an empty in-memory record store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{records: make(map[uuid.UUID]Record)}
}

// Save upserts the record. The stored value is a copy; later mutation of the
// caller's struct does not leak into the store.
func (s *MemoryStore) Save(_ context.Context, rec Record) error {
	if err := rec.Validate(); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.records[rec.ID] = rec
	return nil
}

// FindByID returns the record or sentinel.ErrNotFound.
func (s *MemoryStore) FindByID(_ context.Context, id uuid.UUID) (Record, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	rec, ok := s.records[id]
	if !ok {
		return Record{}, sentinel.ErrNotFound
	}
	return rec, nil
}

// List returns records matching the filter, ordered by registration time then
// ID so paging stays stable.
func (s *MemoryStore) List(_ context.Context, filter ListFilter) ([]Record, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	matched := make([]Record, 0, len(s.records))
	for _, rec := range s.records {
		if filter.Category != "" && rec.Category != filter.Category {
			continue
		}
		if filter.Body != "" && rec.Body != filter.Body {
			continue
		}
		matched = append(matched, rec)
	}

	sort.Slice(matched, func(i, j int) bool {
		if !matched[i].RegisteredAt.Equal(matched[j].RegisteredAt) {
			return matched[i].RegisteredAt.Before(matched[j].RegisteredAt)
		}
		return matched[i].ID.String() < matched[j].ID.String()
	})

	if filter.Limit > 0 && len(matched) > filter.Limit {
		matched = matched[:filter.Limit]
	}
	return matched, nil
}

// Delete removes the record or returns sentinel.ErrNotFound.
func (s *MemoryStore) Delete(_ context.Context, id uuid.UUID) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.records[id]; !ok {
		return sentinel.ErrNotFound
	}
	delete(s.records, id)
	return nil
}
