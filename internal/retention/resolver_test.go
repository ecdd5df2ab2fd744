package retention

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"archivum/internal/catalog"
	"archivum/internal/hotspot"
)

func date(y, m, d int) time.Time {
	return time.Date(y, time.Month(m), d, 0, 0, 0, 0, time.UTC)
}

func newResolver(t *testing.T) *Resolver {
	t.Helper()
	c := catalog.Default()
	require.NoError(t, c.Validate())
	return NewResolver(c, 0)
}

func TestResolveRegulationIsPermanent(t *testing.T) {
	r := newResolver(t)

	resolved := r.Resolve(catalog.CategorySpatialPlanning, catalog.TypeRegulation,
		catalog.BodyProvincialOrgans, date(2024, 1, 15), nil)

	assert.Equal(t, catalog.ValuePermanent, resolved.FinalValue)
	assert.Equal(t, catalog.Era2020, resolved.Era)
	assert.Nil(t, resolved.DestructionDate)
	require.NotNil(t, resolved.TransferDate)
	assert.Equal(t, date(2044, 1, 15), *resolved.TransferDate)
	assert.False(t, resolved.FallbackApplied)
}

func TestResolveTemporaryDestructionDate(t *testing.T) {
	r := newResolver(t)

	resolved := r.Resolve(catalog.CategoryFinance, catalog.TypeSubsidyGrant,
		catalog.BodyProvincialOrgans, date(2024, 2, 8), nil)

	assert.Equal(t, catalog.ValueTemporary, resolved.FinalValue)
	assert.Equal(t, "arch-2020-fin1", resolved.CatalogReference)
	require.NotNil(t, resolved.DestructionDate)
	assert.Equal(t, date(2044, 2, 8), *resolved.DestructionDate, "20-year subsidy term")
	assert.Nil(t, resolved.TransferDate)
}

func TestDestructionDateLaw(t *testing.T) {
	r := newResolver(t)
	created := date(2020, 3, 10)

	resolved := r.Resolve(catalog.CategoryInformationManagement, catalog.TypeEmail,
		catalog.BodyProvincialOrgans, created, nil)

	require.NotNil(t, resolved.DestructionDate)
	assert.Equal(t, created.AddDate(5, 0, 0), *resolved.DestructionDate)

	assert.True(t, resolved.IsDestructibleAsOf(*resolved.DestructionDate))
	assert.False(t, resolved.IsDestructibleAsOf(resolved.DestructionDate.AddDate(0, 0, -1)))
	assert.False(t, resolved.IsTransferableAsOf(date(2100, 1, 1)))
}

func TestPermanentNeverDestructible(t *testing.T) {
	r := newResolver(t)

	resolved := r.Resolve(catalog.CategoryGovernance, catalog.TypeMinutes,
		catalog.BodyProvincialOrgans, date(2021, 5, 1), nil)

	require.True(t, resolved.IsPermanent())
	assert.Nil(t, resolved.DestructionDate)
	assert.False(t, resolved.IsDestructibleAsOf(date(2500, 1, 1)))
	assert.True(t, resolved.IsTransferableAsOf(date(2041, 5, 1)))
	assert.False(t, resolved.IsTransferableAsOf(date(2041, 4, 30)))
}

func TestHotspotUpgradeIsMonotonic(t *testing.T) {
	r := newResolver(t)
	created := date(2024, 6, 1)

	reg := hotspot.NewRegister()
	require.NoError(t, reg.Register(hotspot.Hotspot{
		ID:         "hs-1",
		Name:       "Airport restructuring",
		Start:      date(2024, 1, 1),
		Categories: []catalog.ProcessCategory{catalog.CategoryTraffic},
	}))

	// Correspondence is normally temporary; the hotspot flips it.
	withHotspot := r.Resolve(catalog.CategoryTraffic, catalog.TypeCorrespondence,
		catalog.BodyProvincialOrgans, created, reg)

	assert.Equal(t, catalog.ValuePermanent, withHotspot.FinalValue)
	require.NotNil(t, withHotspot.AppliedHotspot)
	assert.Equal(t, "hs-1", withHotspot.AppliedHotspot.ID)
	assert.Nil(t, withHotspot.DestructionDate)
	require.NotNil(t, withHotspot.TransferDate)
	assert.Equal(t, date(2044, 6, 1), *withHotspot.TransferDate)

	// Base policy is preserved for audit even when overridden.
	assert.Equal(t, catalog.ValueTemporary, withHotspot.BasePolicy.Value)

	// Rationale mentions the hotspot by name.
	require.NotEmpty(t, withHotspot.Rationale)
	assert.Contains(t, withHotspot.Rationale[len(withHotspot.Rationale)-1], "Airport restructuring")

	// Without the hotspot the base policy is reproduced exactly.
	without := r.Resolve(catalog.CategoryTraffic, catalog.TypeCorrespondence,
		catalog.BodyProvincialOrgans, created, nil)
	assert.Equal(t, catalog.ValueTemporary, without.FinalValue)
	assert.Equal(t, withHotspot.BasePolicy, without.BasePolicy)

	// Moving the record outside the hotspot window has the same effect.
	outside := r.Resolve(catalog.CategoryTraffic, catalog.TypeCorrespondence,
		catalog.BodyProvincialOrgans, date(2023, 6, 1), reg)
	assert.Equal(t, catalog.ValueTemporary, outside.FinalValue)
	assert.Nil(t, outside.AppliedHotspot)
}

func TestFallbackForUnknownTuple(t *testing.T) {
	r := newResolver(t)

	resolved := r.Resolve(catalog.CategoryWater, catalog.TypeInternalNote,
		catalog.BodyProvincialOrgans, date(2024, 3, 1), nil)

	assert.True(t, resolved.FallbackApplied)
	assert.Equal(t, catalog.ValueTemporary, resolved.FinalValue, "fallback must never be permanent")
	require.NotNil(t, resolved.DestructionDate)
	assert.Equal(t, date(2034, 3, 1), *resolved.DestructionDate)
	assert.Equal(t, "default-2020", resolved.CatalogReference)
	require.NotEmpty(t, resolved.Rationale)
	assert.Contains(t, resolved.Rationale[0], "no schedule entry")
}

func TestStartupValidationBlocksZeroYearRule(t *testing.T) {
	s := catalog.NewSchedule(catalog.Era2020, catalog.BodyProvincialOrgans, "broken schedule")
	s.Add(catalog.CategoryFinance, catalog.TypeContract, catalog.Temporary(0, "broken-1"))
	c := catalog.New(s)

	// Nothing in the resolver itself blocks a zero-year rule: it would make
	// the record destructible on its creation date.
	created := date(2024, 2, 8)
	resolved := NewResolver(c, 0).Resolve(catalog.CategoryFinance, catalog.TypeContract,
		catalog.BodyProvincialOrgans, created, nil)
	require.NotNil(t, resolved.DestructionDate)
	assert.Equal(t, created, *resolved.DestructionDate)
	assert.True(t, resolved.IsDestructibleAsOf(created))

	// The catalog gate that startup wiring runs refuses the rule set before a
	// resolver is ever built on it.
	err := c.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "broken-1")
}

func TestConfigurableFallbackYears(t *testing.T) {
	c := catalog.Default()
	r := NewResolver(c, 3)

	resolved := r.Resolve(catalog.CategoryWater, catalog.TypeInternalNote,
		catalog.BodyProvincialOrgans, date(2024, 3, 1), nil)

	require.NotNil(t, resolved.DestructionDate)
	assert.Equal(t, date(2027, 3, 1), *resolved.DestructionDate)
}

func TestPreHistoryDatesResolve(t *testing.T) {
	r := newResolver(t)

	resolved := r.Resolve(catalog.CategoryGovernance, catalog.TypeDecision,
		catalog.BodyProvincialOrgans, date(1998, 7, 1), nil)

	assert.Equal(t, catalog.Era2005, resolved.Era)
	assert.Equal(t, catalog.ValuePermanent, resolved.FinalValue)
}

func TestEraSelectionByCreationYear(t *testing.T) {
	r := newResolver(t)

	in2018 := r.Resolve(catalog.CategoryFinance, catalog.TypeSubsidyGrant,
		catalog.BodyProvincialOrgans, date(2018, 2, 1), nil)
	require.NotNil(t, in2018.DestructionDate)
	assert.Equal(t, catalog.Era2014, in2018.Era)
	assert.Equal(t, date(2033, 2, 1), *in2018.DestructionDate, "2014 schedule: 15 years")

	in2024 := r.Resolve(catalog.CategoryFinance, catalog.TypeSubsidyGrant,
		catalog.BodyProvincialOrgans, date(2024, 2, 1), nil)
	require.NotNil(t, in2024.DestructionDate)
	assert.Equal(t, catalog.Era2020, in2024.Era)
	assert.Equal(t, date(2044, 2, 1), *in2024.DestructionDate, "2020 schedule: 20 years")
}

func TestResolveIsDeterministic(t *testing.T) {
	r := newResolver(t)
	reg := hotspot.NewRegister()
	require.NoError(t, reg.Register(hotspot.Hotspot{
		ID:         "hs-1",
		Name:       "Energy transition",
		Start:      date(2022, 1, 1),
		Categories: []catalog.ProcessCategory{catalog.CategoryEnergyClimate},
	}))

	first := r.Resolve(catalog.CategoryEnergyClimate, catalog.TypeReport,
		catalog.BodyProvincialOrgans, date(2023, 4, 1), reg)
	second := r.Resolve(catalog.CategoryEnergyClimate, catalog.TypeReport,
		catalog.BodyProvincialOrgans, date(2023, 4, 1), reg)

	a, err := json.Marshal(first)
	require.NoError(t, err)
	b, err := json.Marshal(second)
	require.NoError(t, err)
	assert.Equal(t, string(a), string(b))
}
