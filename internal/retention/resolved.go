// Package retention resolves the archival lifecycle of a record: which
// schedule era applies, how long the record must be kept, when it becomes
// destructible or transferable, and why. Resolution is a pure function of the
// record's classification attributes; the engine holds no timers and performs
// no side effects.
package retention

import (
	"time"

	"archivum/internal/catalog"
	"archivum/internal/hotspot"
)

// transferHorizonYears is the fixed horizon after which permanently retained
// records move to the permanent archive.
const transferHorizonYears = 20

// Resolved is the outcome of a retention resolution. It is a plain,
// serializable value object; the API layer exposes it and the storage layer
// persists it as record columns.
type Resolved struct {
	// Era is the schedule era that applied, derived from the creation year.
	Era catalog.Era `json:"era"`
	// CatalogReference identifies the schedule entry (or fallback) that
	// produced the base policy, for audit trails.
	CatalogReference string `json:"catalog_reference"`
	// BasePolicy is the rule the schedule assigned before any override. It is
	// kept even when a hotspot overrides it, for audit purposes.
	BasePolicy catalog.RetentionRule `json:"base_policy"`
	// FallbackApplied reports that no schedule entry existed and the default
	// temporary policy was used instead.
	FallbackApplied bool `json:"fallback_applied,omitempty"`
	// AppliedHotspot is a snapshot of the hotspot that forced permanent
	// retention, if any.
	AppliedHotspot *hotspot.Hotspot `json:"applied_hotspot,omitempty"`
	// FinalValue is the effective archival verdict after overrides.
	FinalValue catalog.ArchivalValue `json:"final_value"`
	// DestructionDate is set iff FinalValue is temporary.
	DestructionDate *time.Time `json:"destruction_date,omitempty"`
	// TransferDate is set iff FinalValue is permanent.
	TransferDate *time.Time `json:"transfer_date,omitempty"`
	// Rationale is the ordered explanation trail of the resolution.
	Rationale []string `json:"rationale"`
}

// IsPermanent reports whether the record must be retained permanently.
func (r *Resolved) IsPermanent() bool {
	return r.FinalValue == catalog.ValuePermanent
}

// IsDestructibleAsOf reports whether the record may be destroyed as of the
// given date. Permanently retained records are never destructible. Advancing
// state (actually destroying) is entirely the caller's responsibility.
func (r *Resolved) IsDestructibleAsOf(now time.Time) bool {
	if r.DestructionDate == nil {
		return false
	}
	return !now.Before(*r.DestructionDate)
}

// IsTransferableAsOf reports whether the record is due for transfer to the
// permanent archive as of the given date.
func (r *Resolved) IsTransferableAsOf(now time.Time) bool {
	if r.TransferDate == nil {
		return false
	}
	return !now.Before(*r.TransferDate)
}
