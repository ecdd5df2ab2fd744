// Package cache holds the assessment cache: recently computed compliance
// statuses keyed by record ID. Assessments are deterministic, so a cached
// status is valid until the record or the hotspot register changes; writers
// invalidate on mutation and the TTL bounds staleness after missed
// invalidations.
package cache

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/google/uuid"

	"archivum/internal/compliance"
)

// ErrMiss is returned when no cached status exists for the record.
var ErrMiss = errors.New("assessment cache miss")

// Cache is the assessment cache port.
type Cache interface {
	Get(ctx context.Context, recordID uuid.UUID) (compliance.Status, error)
	Set(ctx context.Context, recordID uuid.UUID, status compliance.Status) error
	Invalidate(ctx context.Context, recordID uuid.UUID) error
}

type entry struct {
	status   compliance.Status
	storedAt time.Time
}

// Memory is an in-memory assessment cache with TTL expiration.
type Memory struct {
	mu      sync.RWMutex
	entries map[uuid.UUID]entry
	ttl     time.Duration
}

// NewMemory creates an in-memory cache with the given TTL.
func NewMemory(ttl time.Duration) *Memory {
	return &Memory{entries: make(map[uuid.UUID]entry), ttl: ttl}
}

func (m *Memory) Get(_ context.Context, recordID uuid.UUID) (compliance.Status, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	cached, ok := m.entries[recordID]
	if !ok || time.Since(cached.storedAt) >= m.ttl {
		return compliance.Status{}, ErrMiss
	}
	return cached.status, nil
}

func (m *Memory) Set(_ context.Context, recordID uuid.UUID, status compliance.Status) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.entries[recordID] = entry{status: status, storedAt: time.Now()}
	return nil
}

func (m *Memory) Invalidate(_ context.Context, recordID uuid.UUID) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.entries, recordID)
	return nil
}
