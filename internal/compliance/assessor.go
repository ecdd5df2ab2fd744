package compliance

import (
	"fmt"
	"time"

	"archivum/internal/catalog"
	"archivum/internal/retention"
)

// Assessor runs the three framework assessments and aggregates their
// findings. It is stateless and safe for concurrent use; construction exists
// so callers depend on a value rather than package functions.
type Assessor struct{}

// NewAssessor returns a compliance assessor.
func NewAssessor() *Assessor {
	return &Assessor{}
}

// Assess folds the record facts, its resolved retention and its text signals
// into one compliance status as of the given time. No input combination
// produces an error: every missing piece degrades to a not-applicable or
// pending bucket, because a compliance engine that fails closed on bad input
// is worse than one that flags it for human review.
func (a *Assessor) Assess(facts RecordFacts, resolved *retention.Resolved, sig Signals, asOf time.Time) Status {
	var issues []Issue

	disclosure := AssessDisclosure(sig)
	var disclosureStatus DisclosureStatus
	switch {
	case disclosure.IsRelevant && !facts.DisclosureFlagged:
		issues = append(issues, Issue{
			Severity:          SeverityMedium,
			Category:          "disclosure",
			Description:       "record appears disclosure-relevant but is not flagged as such",
			RecommendedAction: "flag the record as disclosure-relevant",
		})
		disclosureStatus = DisclosureActionRequired
	case facts.DisclosureFlagged:
		disclosureStatus = DisclosurePendingReview
	default:
		disclosureStatus = DisclosureNotApplicable
	}

	detected := AssessPrivacy(sig.PrivacyTerms)
	privacyStatus := PrivacyCompliant
	if detected != PrivacyLevelNone && facts.PrivacyLevel == PrivacyLevelNone {
		severity := SeverityMedium
		if detected == PrivacyLevelSpecial {
			severity = SeverityHigh
		}
		issues = append(issues, Issue{
			Severity:          severity,
			Category:          "privacy",
			Description:       fmt.Sprintf("record appears to contain %s personal data but is marked as containing none", describeLevel(detected)),
			RecommendedAction: "review and set the record's privacy level",
		})
		privacyStatus = PrivacyActionRequired
	}

	archivalStatus, archivalIssues := assessArchival(resolved, asOf)
	issues = append(issues, archivalIssues...)

	return Status{
		Disclosure:           disclosureStatus,
		Privacy:              privacyStatus,
		Archival:             archivalStatus,
		DisclosureAssessment: disclosure,
		DetectedPrivacyLevel: detected,
		OverallScore:         overallScore(issues),
		Issues:               issues,
		AssessedAt:           asOf,
	}
}

// overallScore subtracts the raw issue weights from a perfect score, floored
// at zero so stacked findings cannot push the score negative.
func overallScore(issues []Issue) float64 {
	score := 1.0
	for _, issue := range issues {
		score -= issue.Severity.Weight()
	}
	if score < 0 {
		return 0
	}
	return score
}

// assessArchival derives the archival standing from the resolved retention.
// A missing resolution is itself a compliance gap; an expired term that has
// not been acted on is a more serious one.
func assessArchival(resolved *retention.Resolved, asOf time.Time) (ArchivalStatus, []Issue) {
	if resolved == nil {
		return ArchivalMissingRetentionPeriod, []Issue{{
			Severity:          SeverityLow,
			Category:          "archival",
			Description:       "no retention period resolved for this record",
			RecommendedAction: "resolve a retention period from the selection schedule",
		}}
	}

	if resolved.FinalValue == catalog.ValueTemporary && resolved.IsDestructibleAsOf(asOf) {
		return ArchivalOverdueDestruction, []Issue{{
			Severity:          SeverityHigh,
			Category:          "archival",
			Description:       fmt.Sprintf("record should have been destroyed on %s", resolved.DestructionDate.Format("2006-01-02")),
			RecommendedAction: "destroy the record in accordance with archival law",
		}}
	}

	if resolved.FinalValue == catalog.ValuePermanent && resolved.IsTransferableAsOf(asOf) {
		return ArchivalPendingTransfer, []Issue{{
			Severity:          SeverityHigh,
			Category:          "archival",
			Description:       fmt.Sprintf("record was due for archive transfer on %s", resolved.TransferDate.Format("2006-01-02")),
			RecommendedAction: "transfer the record to the permanent archive",
		}}
	}

	return ArchivalCompliant, nil
}

func describeLevel(level PrivacyLevel) string {
	switch level {
	case PrivacyLevelSpecial:
		return "special-category"
	case PrivacyLevelCriminal:
		return "criminal-record"
	case PrivacyLevelOrdinary:
		return "ordinary"
	}
	return string(level)
}
