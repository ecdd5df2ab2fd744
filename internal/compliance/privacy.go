package compliance

import "strings"

// PrivacyLevel classifies a record's personal-data exposure, ordered by
// severity: special-category data outranks criminal-record data, which
// outranks ordinary personal data.
type PrivacyLevel string

const (
	PrivacyLevelNone     PrivacyLevel = "none"
	PrivacyLevelOrdinary PrivacyLevel = "ordinary"
	PrivacyLevelSpecial  PrivacyLevel = "special_category"
	PrivacyLevelCriminal PrivacyLevel = "criminal_record"
)

// Term lists for privacy detection. The lists are disjoint and checked most
// severe first; the first list with a hit decides the level.
var (
	specialCategoryTerms = []string{
		"health data",
		"medical",
		"religion",
		"belief",
		"political",
		"trade union",
		"sexual",
		"biometric",
		"genetic",
		"race",
		"ethnic",
	}

	criminalRecordTerms = []string{
		"criminal record",
		"conviction",
		"offence",
		"prosecution",
		"suspect",
		"penalty",
	}

	ordinaryPersonalTerms = []string{
		"citizen service number",
		"national identification number",
		"date of birth",
		"home address",
		"phone number",
		"email address",
		"personal data",
	}
)

// AssessPrivacy derives the privacy level from the detected privacy terms.
// Matching is case-insensitive substring containment; no terms means no
// evidence, which maps to PrivacyLevelNone rather than an error.
func AssessPrivacy(terms []string) PrivacyLevel {
	if matchesAny(terms, specialCategoryTerms) {
		return PrivacyLevelSpecial
	}
	if matchesAny(terms, criminalRecordTerms) {
		return PrivacyLevelCriminal
	}
	if matchesAny(terms, ordinaryPersonalTerms) {
		return PrivacyLevelOrdinary
	}
	return PrivacyLevelNone
}

func matchesAny(terms, list []string) bool {
	for _, term := range terms {
		lowered := strings.ToLower(term)
		for _, known := range list {
			if strings.Contains(lowered, known) {
				return true
			}
		}
	}
	return false
}
