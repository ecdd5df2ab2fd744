package catalog

// Builders for the fixed retention schedules. The rule set mirrors the
// published provincial selection lists: one schedule per era for the
// provincial organs, plus the separate national-rules schedule for the
// King's Commissioner. Regulations and policy rules are permanent in every
// category and every era; that override is baked into the tables here so a
// plain lookup already returns it.

// Default returns the full catalog used in production.
func Default() *Catalog {
	return New(
		provincial2020(),
		provincial2014(),
		provincial2005(),
		commissioner2020(),
	)
}

// addUniversalRules lays down the blanket entries every provincial schedule
// shares: regulations and policy rules are permanent for all categories.
func addUniversalRules(s *Schedule, regulationRef, policyRuleRef string) {
	for _, cat := range Categories() {
		s.Add(cat, TypeRegulation, Permanent(regulationRef))
		s.Add(cat, TypePolicyRule, Permanent(policyRuleRef))
	}
}

func provincial2020() *Schedule {
	s := NewSchedule(Era2020, BodyProvincialOrgans, "Provincial organs selection list (2020)")
	addUniversalRules(s, "arch-2020-v", "arch-2020-br")

	// Decisions with lasting administrative impact.
	for _, entry := range []struct {
		cat ProcessCategory
		typ DecisionType
		ref string
	}{
		{CategoryGovernance, TypeDecision, "arch-2020-b1"},
		{CategoryStrategy, TypeDecision, "arch-2020-b2"},
		{CategorySpatialPlanning, TypeDecision, "arch-2020-b3"},
		{CategoryEnvironment, TypePermit, "arch-2020-m1"},
	} {
		s.Add(entry.cat, entry.typ, Permanent(entry.ref))
	}

	// Executive paperwork with fixed destruction terms.
	s.Add(CategoryHumanResources, TypeAppointment, Temporary(90, "arch-2020-hr1"))
	s.Add(CategoryFinance, TypeSubsidyGrant, Temporary(20, "arch-2020-fin1"))
	s.Add(CategoryFinance, TypeContract, Temporary(10, "arch-2020-fin2"))
	s.Add(CategoryInformationManagement, TypeEmail, Temporary(5, "arch-2020-ict1"))
	s.Add(CategoryCommunication, TypeCorrespondence, Temporary(10, "arch-2020-com1"))
	s.Add(CategoryTraffic, TypeCorrespondence, Temporary(10, "arch-2020-vv1"))
	s.Add(CategoryPublicSafety, TypeApplication, Temporary(15, "arch-2020-v1"))

	// Agendas and minutes of the governing bodies stay permanent.
	for _, cat := range []ProcessCategory{CategoryGovernance, CategoryStrategy, CategoryCorporateControl} {
		s.Add(cat, TypeMinutes, Permanent("arch-2020-an"))
	}

	return s
}

func provincial2014() *Schedule {
	s := NewSchedule(Era2014, BodyProvincialOrgans, "Provincial organs selection list (2014-2019)")
	addUniversalRules(s, "arch-2014-v", "arch-2014-br")

	s.Add(CategoryGovernance, TypeDecision, Permanent("arch-2014-b1"))
	s.Add(CategorySpatialPlanning, TypeDecision, Permanent("arch-2014-b2"))
	s.Add(CategoryFinance, TypeSubsidyGrant, Temporary(15, "arch-2014-fin1"))
	s.Add(CategoryFinance, TypeContract, Temporary(10, "arch-2014-fin2"))
	s.Add(CategoryInformationManagement, TypeEmail, Temporary(7, "arch-2014-ict1"))
	s.Add(CategoryCommunication, TypeCorrespondence, Temporary(10, "arch-2014-com1"))
	for _, cat := range []ProcessCategory{CategoryGovernance, CategoryStrategy} {
		s.Add(cat, TypeMinutes, Permanent("arch-2014-an"))
	}

	return s
}

func provincial2005() *Schedule {
	// The 2005 list was document-oriented and much coarser; only the entries
	// still needed to resolve legacy records are carried.
	s := NewSchedule(Era2005, BodyProvincialOrgans, "Provincial organs selection list (2005)")
	addUniversalRules(s, "arch-2005-v", "arch-2005-br")

	s.Add(CategoryGovernance, TypeDecision, Permanent("arch-2005-b1"))
	s.Add(CategoryFinance, TypeSubsidyGrant, Temporary(10, "arch-2005-fin1"))
	s.Add(CategoryCommunication, TypeCorrespondence, Temporary(10, "arch-2005-com1"))

	return s
}

func commissioner2020() *Schedule {
	// The King's Commissioner acts under national instructions; the schedule
	// is small and mostly temporary, except mayoral appointments.
	s := NewSchedule(Era2020, BodyKingsCommissioner, "King's Commissioner selection list (2020)")

	s.Add(CategoryGovernance, TypeAppointment, Permanent("arch-kc-2020-b1"))
	s.Add(CategoryGovernance, TypeAdvice, Temporary(20, "arch-kc-2020-a1"))
	s.Add(CategoryPublicSafety, TypeDecision, Temporary(15, "arch-kc-2020-v1"))

	return s
}
