// Package compliance scores records against the three regulatory frameworks
// that apply to government information: the disclosure duty (proactive
// publication of government records), privacy law (personal-data exposure),
// and archival law (retention completeness). Each framework is assessed
// independently and the findings are folded into one status object with a
// severity-weighted score.
package compliance

import "time"

// Severity ranks a compliance issue.
type Severity string

const (
	SeverityLow      Severity = "low"
	SeverityMedium   Severity = "medium"
	SeverityHigh     Severity = "high"
	SeverityCritical Severity = "critical"
)

// Weight returns the fixed score deduction for the severity. The overall
// score subtracts raw weights: it is deliberately not averaged or normalized
// by issue count, so one severe gap outweighs several minor ones while minor
// gaps can still accumulate. This is a policy decision, not a tunable.
func (s Severity) Weight() float64 {
	switch s {
	case SeverityCritical:
		return 0.4
	case SeverityHigh:
		return 0.25
	case SeverityMedium:
		return 0.15
	case SeverityLow:
		return 0.05
	}
	return 0
}

// Issue is one actionable compliance finding.
type Issue struct {
	Severity          Severity `json:"severity"`
	Category          string   `json:"category"`
	Description       string   `json:"description"`
	RecommendedAction string   `json:"recommended_action"`
}

// DisclosureStatus is the record's standing under the disclosure duty.
type DisclosureStatus string

const (
	DisclosureCompliant      DisclosureStatus = "compliant"
	DisclosurePendingReview  DisclosureStatus = "pending_review"
	DisclosureActionRequired DisclosureStatus = "action_required"
	DisclosureNotApplicable  DisclosureStatus = "not_applicable"
)

// PrivacyStatus is the record's standing under privacy law.
type PrivacyStatus string

const (
	PrivacyCompliant      PrivacyStatus = "compliant"
	PrivacyActionRequired PrivacyStatus = "action_required"
	PrivacyNotApplicable  PrivacyStatus = "not_applicable"
)

// ArchivalStatus is the record's standing under archival law.
type ArchivalStatus string

const (
	ArchivalCompliant              ArchivalStatus = "compliant"
	ArchivalMissingRetentionPeriod ArchivalStatus = "missing_retention_period"
	ArchivalOverdueDestruction     ArchivalStatus = "overdue_destruction"
	ArchivalPendingTransfer        ArchivalStatus = "pending_transfer"
)

// Status is the aggregated compliance snapshot for one record. Recomputed on
// demand and never mutated in place: each assessment is a fresh value.
type Status struct {
	Disclosure DisclosureStatus `json:"disclosure_status"`
	Privacy    PrivacyStatus    `json:"privacy_status"`
	Archival   ArchivalStatus   `json:"archival_status"`

	// DisclosureAssessment carries the scored relevance detail.
	DisclosureAssessment DisclosureAssessment `json:"disclosure_assessment"`
	// DetectedPrivacyLevel is the privacy level derived from text signals.
	DetectedPrivacyLevel PrivacyLevel `json:"detected_privacy_level"`

	// OverallScore is in [0,1]: 1 minus the summed issue weights, floored at 0.
	OverallScore float64 `json:"overall_score"`
	// Issues are ordered: disclosure findings first, then privacy, then
	// archival.
	Issues     []Issue   `json:"issues"`
	AssessedAt time.Time `json:"assessed_at"`
}
