package hotspot

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"archivum/internal/catalog"
	"archivum/pkg/platform/sentinel"
)

func date(y, m, d int) time.Time {
	return time.Date(y, time.Month(m), d, 0, 0, 0, 0, time.UTC)
}

func datePtr(y, m, d int) *time.Time {
	t := date(y, m, d)
	return &t
}

func TestHotspotActiveWindow(t *testing.T) {
	h := Hotspot{
		ID:    "hs-1",
		Name:  "Airport restructuring",
		Start: date(2020, 1, 1),
		End:   datePtr(2020, 12, 31),
	}

	assert.True(t, h.ActiveOn(date(2020, 6, 1)))
	assert.True(t, h.ActiveOn(date(2020, 1, 1)), "start date is inclusive")
	assert.True(t, h.ActiveOn(date(2020, 12, 31)), "end date is inclusive")
	assert.False(t, h.ActiveOn(date(2019, 12, 31)))
	assert.False(t, h.ActiveOn(date(2021, 1, 1)))
}

func TestHotspotOpenEnded(t *testing.T) {
	h := Hotspot{ID: "hs-2", Name: "Flood response", Start: date(2021, 7, 1)}

	assert.True(t, h.ActiveOn(date(2030, 1, 1)))
	assert.False(t, h.ActiveOn(date(2021, 6, 30)))
}

func TestRegisterRejectsInvalidWindow(t *testing.T) {
	r := NewRegister()
	err := r.Register(Hotspot{
		ID:    "hs-bad",
		Start: date(2022, 1, 1),
		End:   datePtr(2021, 1, 1),
	})
	require.Error(t, err)
}

func TestRegisterRejectsDuplicateID(t *testing.T) {
	r := NewRegister()
	require.NoError(t, r.Register(Hotspot{ID: "hs-1", Start: date(2022, 1, 1)}))

	err := r.Register(Hotspot{ID: "hs-1", Start: date(2023, 1, 1)})
	require.ErrorIs(t, err, sentinel.ErrConflict)
}

func TestMatchingFirstRegisteredWins(t *testing.T) {
	r := NewRegister()
	require.NoError(t, r.Register(Hotspot{
		ID:         "hs-1",
		Name:       "First",
		Start:      date(2024, 1, 1),
		Categories: []catalog.ProcessCategory{catalog.CategoryTraffic},
	}))
	require.NoError(t, r.Register(Hotspot{
		ID:         "hs-2",
		Name:       "Second",
		Start:      date(2024, 1, 1),
		Categories: []catalog.ProcessCategory{catalog.CategoryTraffic},
	}))

	match, ok := r.Matching(catalog.CategoryTraffic, date(2024, 6, 1))
	require.True(t, ok)
	assert.Equal(t, "hs-1", match.ID)
}

func TestMatchingFiltersCategoryAndDate(t *testing.T) {
	r := NewRegister()
	require.NoError(t, r.Register(Hotspot{
		ID:         "hs-1",
		Name:       "Nitrogen crisis",
		Start:      date(2019, 5, 29),
		End:        datePtr(2023, 12, 31),
		Categories: []catalog.ProcessCategory{catalog.CategoryAgriculture, catalog.CategoryNatureLandscape},
	}))

	_, ok := r.Matching(catalog.CategoryFinance, date(2020, 1, 1))
	assert.False(t, ok, "category not covered")

	_, ok = r.Matching(catalog.CategoryAgriculture, date(2024, 1, 1))
	assert.False(t, ok, "outside window")

	match, ok := r.Matching(catalog.CategoryAgriculture, date(2020, 1, 1))
	require.True(t, ok)
	assert.Equal(t, "hs-1", match.ID)
}

func TestActiveOnReturnsRegistrationOrder(t *testing.T) {
	r := NewRegister()
	require.NoError(t, r.Register(Hotspot{ID: "a", Start: date(2020, 1, 1)}))
	require.NoError(t, r.Register(Hotspot{ID: "b", Start: date(2020, 1, 1), End: datePtr(2020, 6, 30)}))
	require.NoError(t, r.Register(Hotspot{ID: "c", Start: date(2021, 1, 1)}))

	active := r.ActiveOn(date(2020, 3, 1))
	require.Len(t, active, 2)
	assert.Equal(t, "a", active[0].ID)
	assert.Equal(t, "b", active[1].ID)
}

func TestCloseEndsWindow(t *testing.T) {
	r := NewRegister()
	require.NoError(t, r.Register(Hotspot{ID: "hs-1", Start: date(2020, 1, 1)}))
	require.NoError(t, r.Close("hs-1", date(2022, 12, 31)))

	active := r.ActiveOn(date(2023, 6, 1))
	assert.Empty(t, active)

	require.ErrorIs(t, r.Close("missing", date(2022, 1, 1)), sentinel.ErrNotFound)
}

func TestRegisterSnapshotsAreIsolated(t *testing.T) {
	r := NewRegister()
	cats := []catalog.ProcessCategory{catalog.CategoryWater}
	require.NoError(t, r.Register(Hotspot{ID: "hs-1", Start: date(2020, 1, 1), Categories: cats}))

	// Mutating the caller's slice must not leak into the register.
	cats[0] = catalog.CategoryFinance
	match, ok := r.Matching(catalog.CategoryWater, date(2020, 2, 1))
	require.True(t, ok)
	assert.Equal(t, "hs-1", match.ID)
}
