package compliance

import "strings"

// DisclosureClass buckets a record's suggested openness.
type DisclosureClass string

const (
	ClassPublic          DisclosureClass = "public"
	ClassPartiallyPublic DisclosureClass = "partially_public"
	ClassNotYetAssessed  DisclosureClass = "not_yet_assessed"
)

// DisclosureAssessment is the scored disclosure-duty relevance of a record.
type DisclosureAssessment struct {
	IsRelevant     bool            `json:"is_relevant"`
	Confidence     float64         `json:"confidence"`
	SuggestedClass DisclosureClass `json:"suggested_class"`
	Reasoning      string          `json:"reasoning"`
}

// disclosureTermWeights are the fixed per-term contributions to the
// relevance score. The weights come from the published assessment heuristic;
// changing them requires domain sign-off.
var disclosureTermWeights = map[string]float64{
	"decision":    0.15,
	"permit":      0.12,
	"ruling":      0.12,
	"objection":   0.10,
	"subsidy":     0.08,
	"application": 0.05,
	"policy":      0.05,
	"advice":      0.05,
}

const (
	formalDecisionWeight = 0.8
	alreadyPublicWeight  = 0.3

	relevanceThreshold       = 0.5
	publicClassThreshold     = 0.7
	partiallyPublicThreshold = 0.4
)

// AssessDisclosure computes the disclosure-duty relevance of a record from
// its text signals. Pure function: identical signals yield an identical
// assessment.
func AssessDisclosure(sig Signals) DisclosureAssessment {
	var score float64
	var reasons []string

	if sig.IsFormalDecision {
		score += formalDecisionWeight
		reasons = append(reasons, "formal decisions are disclosure-relevant by default")
	}
	if sig.AlreadyPublic {
		score += alreadyPublicWeight
		reasons = append(reasons, "record carries a public classification")
	}

	// Term weights are looked up in the declaration order of the signal so
	// the reasoning trail stays deterministic.
	for _, term := range sig.DisclosureTerms {
		weight, ok := disclosureTermWeights[strings.ToLower(term)]
		if !ok {
			continue
		}
		score += weight
		reasons = append(reasons, strings.ToLower(term))
	}

	if score > 1.0 {
		score = 1.0
	}

	var class DisclosureClass
	switch {
	case score > publicClassThreshold:
		class = ClassPublic
	case score > partiallyPublicThreshold:
		class = ClassPartiallyPublic
	default:
		class = ClassNotYetAssessed
	}

	return DisclosureAssessment{
		IsRelevant:     score > relevanceThreshold,
		Confidence:     score,
		SuggestedClass: class,
		Reasoning:      strings.Join(reasons, ", "),
	}
}
