package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEraForYear(t *testing.T) {
	assert.Equal(t, Era2020, EraForYear(2024))
	assert.Equal(t, Era2020, EraForYear(2020))
	assert.Equal(t, Era2014, EraForYear(2018))
	assert.Equal(t, Era2014, EraForYear(2014))
	assert.Equal(t, Era2005, EraForYear(2010))
	assert.Equal(t, Era2005, EraForYear(2005))

	// Pre-history records fall back to the earliest schedule, not an error.
	assert.Equal(t, Era2005, EraForYear(1998))
}

func TestEraBounds(t *testing.T) {
	open := 0
	for _, era := range Eras() {
		_, _, isOpen := era.Bounds()
		if isOpen {
			open++
		}
	}
	assert.Equal(t, 1, open, "exactly one era must be open-ended")
}

func TestDefaultCatalogValidates(t *testing.T) {
	require.NoError(t, Default().Validate())
}

func TestLookupUniversalOverride(t *testing.T) {
	c := Default()

	// Regulations and policy rules are permanent in every category and era.
	for _, era := range Eras() {
		for _, cat := range Categories() {
			for _, typ := range []DecisionType{TypeRegulation, TypePolicyRule} {
				rule, ok := c.Lookup(cat, typ, BodyProvincialOrgans, era)
				require.True(t, ok, "missing %s/%s in era %s", cat, typ, era)
				assert.Equal(t, ValuePermanent, rule.Value)
				assert.Nil(t, rule.Years)
			}
		}
	}
}

func TestLookupTemporaryRule(t *testing.T) {
	c := Default()

	rule, ok := c.Lookup(CategoryFinance, TypeSubsidyGrant, BodyProvincialOrgans, Era2020)
	require.True(t, ok)
	assert.Equal(t, ValueTemporary, rule.Value)
	require.NotNil(t, rule.Years)
	assert.Equal(t, 20, *rule.Years)
	assert.Equal(t, "arch-2020-fin1", rule.Reference)
}

func TestLookupMissesReturnFalse(t *testing.T) {
	c := Default()

	// No rule for this tuple; the resolver applies its own fallback.
	_, ok := c.Lookup(CategoryWater, TypeInternalNote, BodyProvincialOrgans, Era2020)
	assert.False(t, ok)

	// The commissioner schedule is separate and smaller.
	_, ok = c.Lookup(CategoryFinance, TypeSubsidyGrant, BodyKingsCommissioner, Era2020)
	assert.False(t, ok)

	rule, ok := c.Lookup(CategoryGovernance, TypeAppointment, BodyKingsCommissioner, Era2020)
	require.True(t, ok)
	assert.Equal(t, ValuePermanent, rule.Value)
}

func TestValidateRejectsZeroYearRule(t *testing.T) {
	s := NewSchedule(Era2020, BodyProvincialOrgans, "broken schedule")
	s.Add(CategoryFinance, TypeContract, Temporary(0, "broken-1"))

	err := New(s).Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "broken-1")
}

func TestValidateRejectsPermanentWithDuration(t *testing.T) {
	years := 5
	s := NewSchedule(Era2020, BodyProvincialOrgans, "broken schedule")
	s.Add(CategoryFinance, TypeContract, RetentionRule{
		Years:     &years,
		Value:     ValuePermanent,
		Reference: "broken-2",
	})

	err := New(s).Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "broken-2")
}
