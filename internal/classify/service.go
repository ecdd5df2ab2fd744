// Package classify orchestrates the classification pipeline: retention
// resolution, compliance assessment, persistence, caching and audit. The
// engines themselves stay pure; everything stateful happens here.
package classify

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"archivum/internal/audit"
	"archivum/internal/classify/cache"
	"archivum/internal/classify/metrics"
	"archivum/internal/compliance"
	"archivum/internal/hotspot"
	"archivum/internal/record"
	"archivum/internal/retention"
)

// ErrNotAssessed is returned when a record has never been classified and no
// compliance snapshot exists for it.
var ErrNotAssessed = errors.New("record has not been assessed")

// AuditPublisher is the audit sink port. Emit failures on the hot path are
// logged, not propagated: classification must not fail on audit fan-out.
type AuditPublisher interface {
	Emit(ctx context.Context, event audit.Event) error
}

// Outcome is the full result of classifying one record.
type Outcome struct {
	Record     record.Record      `json:"record"`
	Retention  retention.Resolved `json:"retention"`
	Compliance compliance.Status  `json:"compliance"`
}

// Service wires the retention resolver and compliance assessor to storage.
type Service struct {
	records  record.Store
	resolver *retention.Resolver
	assessor *compliance.Assessor
	hotspots *hotspot.Register

	cache   cache.Cache
	audit   AuditPublisher
	logger  *slog.Logger
	metrics *metrics.Metrics
	now     func() time.Time
}

// Option configures the Service.
type Option func(*Service)

// WithCache enables the assessment cache.
func WithCache(c cache.Cache) Option {
	return func(s *Service) { s.cache = c }
}

// WithAudit sets the audit sink.
func WithAudit(p AuditPublisher) Option {
	return func(s *Service) { s.audit = p }
}

// WithMetrics sets the metrics collector.
func WithMetrics(m *metrics.Metrics) Option {
	return func(s *Service) { s.metrics = m }
}

// WithClock overrides the time source, for tests.
func WithClock(now func() time.Time) Option {
	return func(s *Service) { s.now = now }
}

// NewService constructs the classification service.
func NewService(
	records record.Store,
	resolver *retention.Resolver,
	assessor *compliance.Assessor,
	hotspots *hotspot.Register,
	logger *slog.Logger,
	opts ...Option,
) *Service {
	s := &Service{
		records:  records,
		resolver: resolver,
		assessor: assessor,
		hotspots: hotspots,
		logger:   logger,
		now:      func() time.Time { return time.Now().UTC() },
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Register stores a new record. A zero ID gets one assigned; registration
// does not classify.
func (s *Service) Register(ctx context.Context, rec record.Record) (record.Record, error) {
	if rec.ID == uuid.Nil {
		rec.ID = uuid.New()
	}
	now := s.now()
	if rec.RegisteredAt.IsZero() {
		rec.RegisteredAt = now
	}
	rec.UpdatedAt = now
	if rec.PrivacyLevel == "" {
		rec.PrivacyLevel = compliance.PrivacyLevelNone
	}

	if err := s.records.Save(ctx, rec); err != nil {
		return record.Record{}, fmt.Errorf("register record: %w", err)
	}

	s.emit(ctx, audit.Event{
		Action:   audit.ActionRecordRegistered,
		RecordID: &rec.ID,
		Actor:    actorFrom(ctx),
		Detail:   map[string]string{"category": string(rec.Category), "decision_type": string(rec.DecisionType)},
	})
	s.logger.InfoContext(ctx, "record registered",
		"record_id", rec.ID,
		"category", rec.Category,
		"decision_type", rec.DecisionType)
	return rec, nil
}

// Classify resolves retention and assesses compliance for a stored record,
// persisting both snapshots on the record.
func (s *Service) Classify(ctx context.Context, recordID uuid.UUID, sig compliance.Signals) (Outcome, error) {
	start := s.now()

	rec, err := s.records.FindByID(ctx, recordID)
	if err != nil {
		return Outcome{}, fmt.Errorf("load record: %w", err)
	}

	reclassified := rec.Compliance != nil
	outcome := s.evaluate(rec, sig, start)

	outcome.Record.UpdatedAt = s.now()
	if err := s.records.Save(ctx, outcome.Record); err != nil {
		return Outcome{}, fmt.Errorf("persist classification: %w", err)
	}

	if s.cache != nil {
		if err := s.cache.Set(ctx, rec.ID, outcome.Compliance); err != nil {
			s.logger.WarnContext(ctx, "assessment cache write failed", "record_id", rec.ID, "error", err)
		}
	}

	action := audit.ActionRecordClassified
	if reclassified {
		action = audit.ActionRecordReclassified
	}
	s.emit(ctx, audit.Event{
		Action:   action,
		RecordID: &rec.ID,
		Actor:    actorFrom(ctx),
		Outcome:  string(outcome.Retention.FinalValue),
		Detail: map[string]string{
			"era":               string(outcome.Retention.Era),
			"catalog_reference": outcome.Retention.CatalogReference,
			"overall_score":     fmt.Sprintf("%.2f", outcome.Compliance.OverallScore),
		},
	})

	s.observe(outcome)
	s.metrics.ObserveClassifyLatency(time.Since(start))
	s.logger.InfoContext(ctx, "record classified",
		"record_id", rec.ID,
		"era", outcome.Retention.Era,
		"final_value", outcome.Retention.FinalValue,
		"overall_score", outcome.Compliance.OverallScore,
		"issues", len(outcome.Compliance.Issues))
	return outcome, nil
}

// Preview classifies a record without persisting anything. Used for
// what-if assessment of records not yet registered.
func (s *Service) Preview(_ context.Context, rec record.Record, sig compliance.Signals) (Outcome, error) {
	if rec.ID == uuid.Nil {
		rec.ID = uuid.New()
	}
	if err := rec.Validate(); err != nil {
		return Outcome{}, err
	}
	return s.evaluate(rec, sig, s.now()), nil
}

// Compliance returns the latest compliance snapshot for a record, preferring
// the cache.
func (s *Service) Compliance(ctx context.Context, recordID uuid.UUID) (compliance.Status, error) {
	if s.cache != nil {
		status, err := s.cache.Get(ctx, recordID)
		if err == nil {
			s.metrics.RecordCacheHit()
			return status, nil
		}
		if !errors.Is(err, cache.ErrMiss) {
			s.logger.WarnContext(ctx, "assessment cache read failed", "record_id", recordID, "error", err)
		}
		s.metrics.RecordCacheMiss()
	}

	rec, err := s.records.FindByID(ctx, recordID)
	if err != nil {
		return compliance.Status{}, fmt.Errorf("load record: %w", err)
	}
	if rec.Compliance == nil {
		return compliance.Status{}, ErrNotAssessed
	}

	if s.cache != nil {
		if err := s.cache.Set(ctx, recordID, *rec.Compliance); err != nil {
			s.logger.WarnContext(ctx, "assessment cache write failed", "record_id", recordID, "error", err)
		}
	}
	return *rec.Compliance, nil
}

// Get returns a stored record.
func (s *Service) Get(ctx context.Context, recordID uuid.UUID) (record.Record, error) {
	return s.records.FindByID(ctx, recordID)
}

// List returns stored records matching the filter.
func (s *Service) List(ctx context.Context, filter record.ListFilter) ([]record.Record, error) {
	return s.records.List(ctx, filter)
}

// Delete removes a record and its cached assessment.
func (s *Service) Delete(ctx context.Context, recordID uuid.UUID) error {
	if err := s.records.Delete(ctx, recordID); err != nil {
		return err
	}
	if s.cache != nil {
		if err := s.cache.Invalidate(ctx, recordID); err != nil {
			s.logger.WarnContext(ctx, "assessment cache invalidation failed", "record_id", recordID, "error", err)
		}
	}
	s.emit(ctx, audit.Event{
		Action:   audit.ActionRecordDeleted,
		RecordID: &recordID,
		Actor:    actorFrom(ctx),
	})
	return nil
}

// RegisterHotspot adds a hotspot to the register. Existing compliance
// snapshots are not recomputed; they refresh on the next classification.
func (s *Service) RegisterHotspot(ctx context.Context, h hotspot.Hotspot) error {
	if err := s.hotspots.Register(h); err != nil {
		return err
	}
	s.emit(ctx, audit.Event{
		Action: audit.ActionHotspotRegistered,
		Actor:  actorFrom(ctx),
		Detail: map[string]string{"hotspot_id": h.ID, "name": h.Name},
	})
	s.logger.InfoContext(ctx, "hotspot registered", "hotspot_id", h.ID, "name", h.Name)
	return nil
}

// CloseHotspot ends a hotspot's validity window.
func (s *Service) CloseHotspot(ctx context.Context, id string, end time.Time) error {
	if err := s.hotspots.Close(id, end); err != nil {
		return err
	}
	s.emit(ctx, audit.Event{
		Action: audit.ActionHotspotClosed,
		Actor:  actorFrom(ctx),
		Detail: map[string]string{"hotspot_id": id, "end": end.Format("2006-01-02")},
	})
	return nil
}

// Hotspots returns a snapshot of all registered hotspots.
func (s *Service) Hotspots(context.Context) []hotspot.Hotspot {
	return s.hotspots.All()
}

func (s *Service) evaluate(rec record.Record, sig compliance.Signals, asOf time.Time) Outcome {
	resolved := s.resolver.Resolve(rec.Category, rec.DecisionType, rec.Body, rec.CreatedAt, s.hotspots)
	status := s.assessor.Assess(rec.Facts(), &resolved, sig, asOf)

	rec.Retention = &resolved
	rec.Compliance = &status
	return Outcome{Record: rec, Retention: resolved, Compliance: status}
}

func (s *Service) observe(outcome Outcome) {
	s.metrics.IncrementOutcome(string(outcome.Retention.FinalValue), string(outcome.Retention.Era))
	if outcome.Retention.AppliedHotspot != nil {
		s.metrics.IncrementHotspotUpgrade()
	}
	for _, issue := range outcome.Compliance.Issues {
		s.metrics.IncrementIssue(issue.Category, string(issue.Severity))
	}
}

func (s *Service) emit(ctx context.Context, event audit.Event) {
	if s.audit == nil {
		return
	}
	if err := s.audit.Emit(ctx, event); err != nil {
		s.logger.WarnContext(ctx, "audit emit failed", "action", event.Action, "error", err)
	}
}

type actorContextKey struct{}

// WithActor stamps the acting subject on the context for audit attribution.
func WithActor(ctx context.Context, actor string) context.Context {
	return context.WithValue(ctx, actorContextKey{}, actor)
}

func actorFrom(ctx context.Context) string {
	if actor, ok := ctx.Value(actorContextKey{}).(string); ok && actor != "" {
		return actor
	}
	return "system"
}
