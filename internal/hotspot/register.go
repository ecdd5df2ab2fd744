package hotspot

import (
	"fmt"
	"sync"
	"time"

	"archivum/internal/catalog"
	"archivum/pkg/platform/sentinel"
)

// Register holds the hotspots declared by the archive administrator.
// Registrations are rare administrative actions while matches happen on every
// resolution, so the register uses a single-writer/many-reader lock.
type Register struct {
	mu       sync.RWMutex
	hotspots []Hotspot
}

// NewRegister returns an empty register.
func NewRegister() *Register {
	return &Register{}
}

// Register appends a hotspot. IDs must be caller-unique; a duplicate ID is a
// conflict. Names are deliberately not deduplicated.
func (r *Register) Register(h Hotspot) error {
	if h.ID == "" {
		return fmt.Errorf("hotspot: missing id")
	}
	if h.End != nil && h.End.Before(h.Start) {
		return fmt.Errorf("hotspot %q: end %s precedes start %s",
			h.ID, h.End.Format("2006-01-02"), h.Start.Format("2006-01-02"))
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, existing := range r.hotspots {
		if existing.ID == h.ID {
			return fmt.Errorf("hotspot %q: %w", h.ID, sentinel.ErrConflict)
		}
	}
	r.hotspots = append(r.hotspots, h.clone())
	return nil
}

// Close sets the end date of a registered hotspot. The window may only be
// closed, never reopened or shortened below its start.
func (r *Register) Close(id string, end time.Time) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range r.hotspots {
		if r.hotspots[i].ID != id {
			continue
		}
		if end.Before(r.hotspots[i].Start) {
			return fmt.Errorf("hotspot %q: end precedes start", id)
		}
		r.hotspots[i].End = &end
		return nil
	}
	return fmt.Errorf("hotspot %q: %w", id, sentinel.ErrNotFound)
}

// All returns a snapshot of every registered hotspot in registration order.
func (r *Register) All() []Hotspot {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]Hotspot, 0, len(r.hotspots))
	for _, h := range r.hotspots {
		out = append(out, h.clone())
	}
	return out
}

// ActiveOn returns the hotspots whose window covers the given date, in
// registration order.
func (r *Register) ActiveOn(d time.Time) []Hotspot {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var out []Hotspot
	for _, h := range r.hotspots {
		if h.ActiveOn(d) {
			out = append(out, h.clone())
		}
	}
	return out
}

// Matching returns the first registered hotspot that is active on the date
// and covers the category. First-registered-wins is a deliberate
// simplification; there is no priority rule for simultaneously active
// hotspots yet.
func (r *Register) Matching(cat catalog.ProcessCategory, d time.Time) (Hotspot, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, h := range r.hotspots {
		if h.ActiveOn(d) && h.Covers(cat) {
			return h.clone(), true
		}
	}
	return Hotspot{}, false
}
