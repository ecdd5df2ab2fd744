// Package hotspot tracks socially significant events that override archival
// appraisal. Records touched by an active hotspot are kept permanently no
// matter what the retention schedule says; the override only ever upgrades.
package hotspot

import (
	"time"

	"archivum/internal/catalog"
)

// Hotspot is a named, time-bounded event tagged with the process categories
// it affects. Once registered it is never mutated except to extend its
// category list or close its end date; resolved retentions embed a copy, not
// a live reference.
type Hotspot struct {
	ID          string                    `json:"id"`
	Name        string                    `json:"name"`
	Description string                    `json:"description"`
	Start       time.Time                 `json:"start"`
	End         *time.Time                `json:"end,omitempty"`
	Categories  []catalog.ProcessCategory `json:"categories"`
	// PublishedAt is the official gazette publication date, when known.
	PublishedAt *time.Time `json:"published_at,omitempty"`
	URL         string     `json:"url,omitempty"`
}

// ActiveOn reports whether the hotspot window covers the given date:
// Start <= d and (End absent or d <= End).
func (h Hotspot) ActiveOn(d time.Time) bool {
	if d.Before(h.Start) {
		return false
	}
	if h.End == nil {
		return true
	}
	return !d.After(*h.End)
}

// Covers reports whether the hotspot affects the given process category.
func (h Hotspot) Covers(cat catalog.ProcessCategory) bool {
	for _, c := range h.Categories {
		if c == cat {
			return true
		}
	}
	return false
}

// clone returns a deep copy so register reads never alias caller slices.
func (h Hotspot) clone() Hotspot {
	out := h
	out.Categories = append([]catalog.ProcessCategory(nil), h.Categories...)
	if h.End != nil {
		end := *h.End
		out.End = &end
	}
	if h.PublishedAt != nil {
		pub := *h.PublishedAt
		out.PublishedAt = &pub
	}
	return out
}
