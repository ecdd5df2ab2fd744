package classify

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"archivum/internal/catalog"
	"archivum/internal/compliance"
)

func TestClassifyBatchMixedResults(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	first, err := f.service.Register(ctx, newTestRecord())
	require.NoError(t, err)
	second, err := f.service.Register(ctx, newTestRecord())
	require.NoError(t, err)
	missing := uuid.New()

	results, err := f.service.ClassifyBatch(ctx, []BatchItem{
		{RecordID: first.ID},
		{RecordID: missing},
		{RecordID: second.ID, Signals: compliance.Signals{IsFormalDecision: true}},
	})
	require.NoError(t, err)
	require.Len(t, results, 3)

	assert.Equal(t, first.ID, results[0].RecordID)
	require.NotNil(t, results[0].Outcome)
	assert.Equal(t, catalog.ValueTemporary, results[0].Outcome.Retention.FinalValue)
	assert.Empty(t, results[0].Err)

	assert.Equal(t, missing, results[1].RecordID)
	assert.Nil(t, results[1].Outcome)
	assert.NotEmpty(t, results[1].Err)

	require.NotNil(t, results[2].Outcome)
	assert.Equal(t, compliance.DisclosureActionRequired, results[2].Outcome.Compliance.Disclosure)
}

func TestClassifyBatchEmpty(t *testing.T) {
	f := newFixture(t)

	results, err := f.service.ClassifyBatch(context.Background(), nil)
	require.NoError(t, err)
	assert.Empty(t, results)
}

func TestClassifyBatchManyItems(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	items := make([]BatchItem, 0, 30)
	for i := 0; i < 30; i++ {
		saved, err := f.service.Register(ctx, newTestRecord())
		require.NoError(t, err)
		items = append(items, BatchItem{RecordID: saved.ID})
	}

	results, err := f.service.ClassifyBatch(ctx, items)
	require.NoError(t, err)
	require.Len(t, results, 30)
	for i, result := range results {
		assert.Equal(t, items[i].RecordID, result.RecordID)
		assert.NotNil(t, result.Outcome)
		assert.Empty(t, result.Err)
	}
}
