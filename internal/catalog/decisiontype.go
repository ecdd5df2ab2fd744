package catalog

// DecisionType is the kind of document or decision a record embodies, the
// second half of every retention schedule key. Closed enumeration.
type DecisionType string

const (
	TypeRegulation     DecisionType = "regulation"
	TypePolicyRule     DecisionType = "policy_rule"
	TypeDecision       DecisionType = "decision"
	TypeAppointment    DecisionType = "appointment"
	TypePermit         DecisionType = "permit"
	TypeSubsidyGrant   DecisionType = "subsidy_grant"
	TypeContract       DecisionType = "contract"
	TypeApplication    DecisionType = "application"
	TypeAdvice         DecisionType = "advice"
	TypeReport         DecisionType = "report"
	TypeCorrespondence DecisionType = "correspondence"
	TypeEmail          DecisionType = "email"
	TypeInternalNote   DecisionType = "internal_note"
	TypeMinutes        DecisionType = "minutes"
)

// DecisionTypes returns every decision type.
func DecisionTypes() []DecisionType {
	return []DecisionType{
		TypeRegulation,
		TypePolicyRule,
		TypeDecision,
		TypeAppointment,
		TypePermit,
		TypeSubsidyGrant,
		TypeContract,
		TypeApplication,
		TypeAdvice,
		TypeReport,
		TypeCorrespondence,
		TypeEmail,
		TypeInternalNote,
		TypeMinutes,
	}
}

// Valid reports whether the decision type is a known catalog value.
func (t DecisionType) Valid() bool {
	for _, known := range DecisionTypes() {
		if t == known {
			return true
		}
	}
	return false
}

// BodyKind distinguishes records issued by the primary provincial organs from
// records issued by the King's Commissioner acting as a national-government
// office. The latter falls under a separate, much smaller schedule.
type BodyKind string

const (
	BodyProvincialOrgans  BodyKind = "provincial_organs"
	BodyKingsCommissioner BodyKind = "kings_commissioner"
)

// Valid reports whether the body kind is known.
func (b BodyKind) Valid() bool {
	return b == BodyProvincialOrgans || b == BodyKingsCommissioner
}
