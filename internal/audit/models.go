// Package audit records classification activity for accountability. Events
// are append-only: the trail is evidence, never working state.
package audit

import (
	"time"

	"github.com/google/uuid"
)

// Action names an auditable activity.
type Action string

const (
	ActionRecordRegistered   Action = "record_registered"
	ActionRecordClassified   Action = "record_classified"
	ActionRecordReclassified Action = "record_reclassified"
	ActionRecordDeleted      Action = "record_deleted"
	ActionHotspotRegistered  Action = "hotspot_registered"
	ActionHotspotClosed      Action = "hotspot_closed"
)

// Event is emitted from domain logic to capture key actions. Keep it
// transport-agnostic so stores and sinks can fan out.
type Event struct {
	ID        uuid.UUID `json:"id"`
	Action    Action    `json:"action"`
	Timestamp time.Time `json:"timestamp"`

	// RecordID is set for record-scoped events, nil for register-level ones.
	RecordID *uuid.UUID `json:"record_id,omitempty"`
	// Actor is the authenticated subject that triggered the action, or
	// "system" for scheduled work.
	Actor string `json:"actor"`
	// Outcome is a short machine-readable result, e.g. the final archival
	// value or the overall compliance score bucket.
	Outcome string `json:"outcome,omitempty"`
	// Detail carries event-specific context such as catalog references.
	Detail map[string]string `json:"detail,omitempty"`
}
