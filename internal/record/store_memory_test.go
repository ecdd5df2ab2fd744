package record

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"archivum/internal/catalog"
	"archivum/internal/compliance"
	"archivum/pkg/platform/sentinel"
)

func testRecord(title string, cat catalog.ProcessCategory) Record {
	now := time.Date(2025, 1, 10, 0, 0, 0, 0, time.UTC)
	return Record{
		ID:           uuid.New(),
		Title:        title,
		Category:     cat,
		DecisionType: catalog.TypeDecision,
		Body:         catalog.BodyProvincialOrgans,
		CreatedAt:    time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC),
		PrivacyLevel: compliance.PrivacyLevelNone,
		RegisteredAt: now,
		UpdatedAt:    now,
	}
}

func TestMemoryStoreSaveAndFind(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()
	rec := testRecord("Subsidy decision 2024/118", catalog.CategoryFinance)

	require.NoError(t, store.Save(ctx, rec))

	found, err := store.FindByID(ctx, rec.ID)
	require.NoError(t, err)
	assert.Equal(t, rec, found)
}

func TestMemoryStoreFindMissing(t *testing.T) {
	store := NewMemoryStore()

	_, err := store.FindByID(context.Background(), uuid.New())

	assert.ErrorIs(t, err, sentinel.ErrNotFound)
}

func TestMemoryStoreSaveValidates(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()

	rec := testRecord("", catalog.CategoryFinance)
	assert.ErrorIs(t, store.Save(ctx, rec), ErrMissingTitle)

	rec = testRecord("ok", "not_a_category")
	assert.ErrorIs(t, store.Save(ctx, rec), ErrUnknownCategory)

	rec = testRecord("ok", catalog.CategoryFinance)
	rec.ID = uuid.Nil
	assert.ErrorIs(t, store.Save(ctx, rec), ErrMissingID)

	rec = testRecord("ok", catalog.CategoryFinance)
	rec.CreatedAt = time.Time{}
	assert.ErrorIs(t, store.Save(ctx, rec), ErrMissingCreatedAt)
}

func TestMemoryStoreSaveUpserts(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()
	rec := testRecord("v1", catalog.CategoryFinance)

	require.NoError(t, store.Save(ctx, rec))
	rec.Title = "v2"
	require.NoError(t, store.Save(ctx, rec))

	found, err := store.FindByID(ctx, rec.ID)
	require.NoError(t, err)
	assert.Equal(t, "v2", found.Title)
}

func TestMemoryStoreListFilters(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()

	finance := testRecord("finance", catalog.CategoryFinance)
	traffic := testRecord("traffic", catalog.CategoryTraffic)
	commissioner := testRecord("commissioner", catalog.CategoryGovernance)
	commissioner.Body = catalog.BodyKingsCommissioner

	for _, rec := range []Record{finance, traffic, commissioner} {
		require.NoError(t, store.Save(ctx, rec))
	}

	all, err := store.List(ctx, ListFilter{})
	require.NoError(t, err)
	assert.Len(t, all, 3)

	byCategory, err := store.List(ctx, ListFilter{Category: catalog.CategoryTraffic})
	require.NoError(t, err)
	require.Len(t, byCategory, 1)
	assert.Equal(t, "traffic", byCategory[0].Title)

	byBody, err := store.List(ctx, ListFilter{Body: catalog.BodyKingsCommissioner})
	require.NoError(t, err)
	require.Len(t, byBody, 1)
	assert.Equal(t, "commissioner", byBody[0].Title)

	limited, err := store.List(ctx, ListFilter{Limit: 2})
	require.NoError(t, err)
	assert.Len(t, limited, 2)
}

func TestMemoryStoreListOrderStable(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()

	oldest := testRecord("oldest", catalog.CategoryFinance)
	oldest.RegisteredAt = time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	newest := testRecord("newest", catalog.CategoryFinance)
	newest.RegisteredAt = time.Date(2025, 2, 1, 0, 0, 0, 0, time.UTC)

	require.NoError(t, store.Save(ctx, newest))
	require.NoError(t, store.Save(ctx, oldest))

	listed, err := store.List(ctx, ListFilter{})
	require.NoError(t, err)
	require.Len(t, listed, 2)
	assert.Equal(t, "oldest", listed[0].Title)
	assert.Equal(t, "newest", listed[1].Title)
}

func TestMemoryStoreDelete(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()
	rec := testRecord("to delete", catalog.CategoryFinance)

	require.NoError(t, store.Save(ctx, rec))
	require.NoError(t, store.Delete(ctx, rec.ID))

	_, err := store.FindByID(ctx, rec.ID)
	assert.ErrorIs(t, err, sentinel.ErrNotFound)

	assert.ErrorIs(t, store.Delete(ctx, rec.ID), sentinel.ErrNotFound)
}
