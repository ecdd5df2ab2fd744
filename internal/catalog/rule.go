package catalog

// ArchivalValue is the archival verdict a schedule assigns to a record kind:
// keep forever and transfer to the permanent archive, or keep for a fixed
// number of years and then destroy.
type ArchivalValue string

const (
	ValuePermanent ArchivalValue = "permanent"
	ValueTemporary ArchivalValue = "temporary"
)

// RetentionRule is one entry of a retention schedule: how long records of a
// given category and decision type must be kept, plus the schedule reference
// that justifies it in audit trails.
type RetentionRule struct {
	// Years is the retention duration. Nil means permanent retention.
	Years *int `json:"years,omitempty"`
	// Value is the archival verdict implied by Years.
	Value ArchivalValue `json:"value"`
	// Reference is the deterministic schedule reference, e.g. "arch-2020-fin1".
	Reference string `json:"reference"`
}

// Permanent builds a permanent retention rule.
func Permanent(reference string) RetentionRule {
	return RetentionRule{Value: ValuePermanent, Reference: reference}
}

// Temporary builds a temporary retention rule. Years must be positive; the
// catalog validator rejects zero-year rules at load time.
func Temporary(years int, reference string) RetentionRule {
	return RetentionRule{Years: &years, Value: ValueTemporary, Reference: reference}
}

// IsPermanent reports whether the rule mandates permanent retention.
func (r RetentionRule) IsPermanent() bool {
	return r.Value == ValuePermanent
}
