package compliance

// Signals are the pre-extracted text features the assessors consume. Free
// text itself never enters this package: the entity-extraction collaborator
// reduces content to these plain values before assessment. Missing signals
// degrade to "no evidence", never to an error.
type Signals struct {
	// IsFormalDecision reports that the record embodies a formal
	// administrative decision.
	IsFormalDecision bool `json:"is_formal_decision"`
	// AlreadyPublic reports that the record carries a public classification.
	AlreadyPublic bool `json:"already_public"`
	// DisclosureTerms are the disclosure-relevant terms detected in the text.
	DisclosureTerms []string `json:"disclosure_terms,omitempty"`
	// PrivacyTerms are the privacy-sensitive terms detected in the text.
	PrivacyTerms []string `json:"privacy_terms,omitempty"`
}

// RecordFacts are the stored compliance markings of a record, compared
// against the freshly computed assessment to surface gaps.
type RecordFacts struct {
	// DisclosureFlagged reports that the record is already marked
	// disclosure-relevant.
	DisclosureFlagged bool `json:"disclosure_flagged"`
	// PrivacyLevel is the privacy level currently stored on the record.
	PrivacyLevel PrivacyLevel `json:"privacy_level"`
}
