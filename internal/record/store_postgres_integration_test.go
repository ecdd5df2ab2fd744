//go:build integration

package record_test

import (
	"context"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"

	"archivum/internal/catalog"
	"archivum/internal/compliance"
	"archivum/internal/record"
	"archivum/internal/retention"
	"archivum/pkg/platform/sentinel"
	"archivum/pkg/testutil/containers"
)

type PostgresStoreSuite struct {
	suite.Suite
	postgres *containers.PostgresContainer
	store    *record.PostgresStore
}

func TestPostgresStoreSuite(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}
	suite.Run(t, new(PostgresStoreSuite))
}

func (s *PostgresStoreSuite) SetupSuite() {
	s.postgres = containers.NewPostgresContainer(s.T())
	s.store = record.NewPostgresStore(s.postgres.DB)
}

func (s *PostgresStoreSuite) SetupTest() {
	err := s.postgres.TruncateTables(context.Background(), "records")
	s.Require().NoError(err)
}

func (s *PostgresStoreSuite) newRecord(title string) record.Record {
	now := time.Date(2025, 1, 10, 0, 0, 0, 0, time.UTC)
	return record.Record{
		ID:           uuid.New(),
		Title:        title,
		Category:     catalog.CategoryFinance,
		DecisionType: catalog.TypeSubsidyGrant,
		Body:         catalog.BodyProvincialOrgans,
		CreatedAt:    time.Date(2024, 2, 8, 0, 0, 0, 0, time.UTC),
		PrivacyLevel: compliance.PrivacyLevelNone,
		RegisteredAt: now,
		UpdatedAt:    now,
	}
}

func (s *PostgresStoreSuite) TestSaveAndFindRoundTrip() {
	ctx := context.Background()
	rec := s.newRecord("Subsidy decision 2024/118")

	resolver := retention.NewResolver(catalog.Default(), 0)
	resolved := resolver.Resolve(rec.Category, rec.DecisionType, rec.Body, rec.CreatedAt, nil)
	rec.Retention = &resolved

	s.Require().NoError(s.store.Save(ctx, rec))

	found, err := s.store.FindByID(ctx, rec.ID)
	s.Require().NoError(err)
	s.Equal(rec.Title, found.Title)
	s.Equal(rec.Category, found.Category)
	s.True(rec.CreatedAt.Equal(found.CreatedAt))
	s.Require().NotNil(found.Retention)
	s.Equal(resolved.FinalValue, found.Retention.FinalValue)
	s.Equal(resolved.CatalogReference, found.Retention.CatalogReference)
	s.Nil(found.Compliance)
}

func (s *PostgresStoreSuite) TestFindMissing() {
	_, err := s.store.FindByID(context.Background(), uuid.New())
	s.ErrorIs(err, sentinel.ErrNotFound)
}

func (s *PostgresStoreSuite) TestUpsertReplacesSnapshot() {
	ctx := context.Background()
	rec := s.newRecord("v1")
	s.Require().NoError(s.store.Save(ctx, rec))

	rec.Title = "v2"
	rec.Compliance = &compliance.Status{
		Disclosure:   compliance.DisclosureNotApplicable,
		Privacy:      compliance.PrivacyCompliant,
		Archival:     compliance.ArchivalCompliant,
		OverallScore: 1.0,
		AssessedAt:   time.Date(2025, 2, 1, 0, 0, 0, 0, time.UTC),
	}
	s.Require().NoError(s.store.Save(ctx, rec))

	found, err := s.store.FindByID(ctx, rec.ID)
	s.Require().NoError(err)
	s.Equal("v2", found.Title)
	s.Require().NotNil(found.Compliance)
	s.Equal(1.0, found.Compliance.OverallScore)
}

func (s *PostgresStoreSuite) TestListFiltersByCategory() {
	ctx := context.Background()

	finance := s.newRecord("finance")
	traffic := s.newRecord("traffic")
	traffic.Category = catalog.CategoryTraffic
	traffic.DecisionType = catalog.TypeCorrespondence

	s.Require().NoError(s.store.Save(ctx, finance))
	s.Require().NoError(s.store.Save(ctx, traffic))

	listed, err := s.store.List(ctx, record.ListFilter{Category: catalog.CategoryTraffic})
	s.Require().NoError(err)
	s.Require().Len(listed, 1)
	s.Equal("traffic", listed[0].Title)

	all, err := s.store.List(ctx, record.ListFilter{})
	s.Require().NoError(err)
	s.Len(all, 2)
}

func (s *PostgresStoreSuite) TestDelete() {
	ctx := context.Background()
	rec := s.newRecord("to delete")

	s.Require().NoError(s.store.Save(ctx, rec))
	s.Require().NoError(s.store.Delete(ctx, rec.ID))

	_, err := s.store.FindByID(ctx, rec.ID)
	s.ErrorIs(err, sentinel.ErrNotFound)

	s.ErrorIs(s.store.Delete(ctx, rec.ID), sentinel.ErrNotFound)
}

func (s *PostgresStoreSuite) TestConcurrentUpserts() {
	ctx := context.Background()
	rec := s.newRecord("concurrent")
	const goroutines = 50

	var wg sync.WaitGroup
	var successCount atomic.Int32

	for i := 0; i < goroutines; i++ {
		wg.Add(1)
		go func(idx int) {
			defer wg.Done()
			copied := rec
			copied.Title = "concurrent " + string(rune('A'+idx%26))
			if err := s.store.Save(ctx, copied); err == nil {
				successCount.Add(1)
			}
		}(i)
	}
	wg.Wait()

	s.Equal(int32(goroutines), successCount.Load())

	found, err := s.store.FindByID(ctx, rec.ID)
	s.Require().NoError(err)
	s.NotEmpty(found.Title)
}
