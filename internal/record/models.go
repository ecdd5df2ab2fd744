// Package record holds the government-record model and its persistence
// stores. A record carries the classification attributes the retention and
// compliance engines consume, plus the stores' own bookkeeping.
package record

import (
	"time"

	"github.com/google/uuid"

	"archivum/internal/catalog"
	"archivum/internal/compliance"
	"archivum/internal/retention"
)

// Record is one registered government record.
type Record struct {
	ID    uuid.UUID `json:"id"`
	Title string    `json:"title"`

	// Classification attributes driving retention resolution.
	Category     catalog.ProcessCategory `json:"process_category"`
	DecisionType catalog.DecisionType    `json:"decision_type"`
	Body         catalog.BodyKind        `json:"body"`
	CreatedAt    time.Time               `json:"created_at"`

	// Stored compliance markings, compared against fresh assessments.
	DisclosureFlagged bool                    `json:"disclosure_flagged"`
	PrivacyLevel      compliance.PrivacyLevel `json:"privacy_level"`

	// Retention and Compliance hold the latest classification outcome, if one
	// has been computed. Both are snapshots: reclassification replaces them.
	Retention  *retention.Resolved `json:"retention,omitempty"`
	Compliance *compliance.Status  `json:"compliance,omitempty"`

	RegisteredAt time.Time `json:"registered_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// Facts projects the record's stored compliance markings for assessment.
func (r *Record) Facts() compliance.RecordFacts {
	return compliance.RecordFacts{
		DisclosureFlagged: r.DisclosureFlagged,
		PrivacyLevel:      r.PrivacyLevel,
	}
}

// Validate checks the attributes a record needs before it can be classified.
func (r *Record) Validate() error {
	if r.ID == uuid.Nil {
		return ErrMissingID
	}
	if r.Title == "" {
		return ErrMissingTitle
	}
	if !r.Category.Valid() {
		return ErrUnknownCategory
	}
	if r.CreatedAt.IsZero() {
		return ErrMissingCreatedAt
	}
	return nil
}
