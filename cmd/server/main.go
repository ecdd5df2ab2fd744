package main

import (
	"context"
	"database/sql"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "github.com/lib/pq"

	"archivum/internal/audit"
	"archivum/internal/catalog"
	"archivum/internal/classify"
	"archivum/internal/classify/cache"
	classifymetrics "archivum/internal/classify/metrics"
	"archivum/internal/compliance"
	"archivum/internal/hotspot"
	"archivum/internal/platform/config"
	"archivum/internal/platform/httpserver"
	"archivum/internal/platform/logger"
	platformredis "archivum/internal/platform/redis"
	"archivum/internal/platform/token"
	"archivum/internal/record"
	"archivum/internal/retention"
	httptransport "archivum/internal/transport/http"
	"archivum/pkg/platform/middleware/auth"
)

// main wires high-level dependencies, exposes the HTTP router, and keeps the
// server lifecycle small. Business logic lives in internal services packages.
func main() {
	cfg := config.FromEnv()
	log := logger.New(cfg.Server.LogLevel)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	records, closeDB, err := newRecordStore(cfg.Postgres)
	if err != nil {
		log.Error("record store init failed", "error", err)
		os.Exit(1)
	}
	defer closeDB()

	assessCache, closeCache, err := newAssessmentCache(cfg)
	if err != nil {
		log.Error("assessment cache init failed", "error", err)
		os.Exit(1)
	}
	defer closeCache()

	auditPublisher, closeAudit, err := newAuditPublisher(ctx, cfg.Kafka, log)
	if err != nil {
		log.Error("audit publisher init failed", "error", err)
		os.Exit(1)
	}
	defer closeAudit()

	cat := catalog.Default()
	if err := cat.Validate(); err != nil {
		log.Error("retention catalog invalid", "error", err)
		os.Exit(1)
	}

	service := classify.NewService(
		records,
		retention.NewResolver(cat, cfg.Engine.FallbackYears),
		compliance.NewAssessor(),
		hotspot.NewRegister(),
		log,
		classify.WithCache(assessCache),
		classify.WithAudit(auditPublisher),
		classify.WithMetrics(classifymetrics.New()),
	)

	tokens := token.NewService(cfg.Server.JWTSigningKey, "archivum")
	router := httptransport.NewRouter(httptransport.NewHandler(service, log), &tokenValidator{tokens})

	srv := httpserver.New(cfg.Server.Addr, router)

	go func() {
		log.Info("starting archivum", "addr", cfg.Server.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Error("server error", "error", err)
			stop()
		}
	}()

	<-ctx.Done()
	log.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("graceful shutdown failed", "error", err)
	}
}

// tokenValidator adapts the token service to the auth middleware port.
type tokenValidator struct {
	tokens *token.Service
}

func (v *tokenValidator) Validate(tokenString string) (*auth.TokenClaims, error) {
	claims, err := v.tokens.Validate(tokenString)
	if err != nil {
		return nil, err
	}
	return &auth.TokenClaims{Subject: claims.Subject, Role: claims.Role}, nil
}

func newRecordStore(cfg config.Postgres) (record.Store, func(), error) {
	if cfg.DSN == "" {
		return record.NewMemoryStore(), func() {}, nil
	}
	db, err := sql.Open("postgres", cfg.DSN)
	if err != nil {
		return nil, nil, err
	}
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, nil, err
	}
	return record.NewPostgresStore(db), func() { _ = db.Close() }, nil
}

func newAssessmentCache(cfg config.Config) (cache.Cache, func(), error) {
	client, err := platformredis.New(cfg.Redis)
	if err != nil {
		return nil, nil, err
	}
	if client == nil {
		return cache.NewMemory(cfg.Engine.AssessmentCacheTTL), func() {}, nil
	}
	return cache.NewRedis(client.Client, cfg.Engine.AssessmentCacheTTL), func() { _ = client.Close() }, nil
}

func newAuditPublisher(ctx context.Context, cfg config.Kafka, log *slog.Logger) (classify.AuditPublisher, func(), error) {
	store := audit.NewMemoryStore()
	inbox := make(chan audit.Event, 256)
	worker := audit.NewWorker(store, inbox, log)

	// The worker drains remaining events when ctx is cancelled; shutdown
	// waits for it so the local trail stays complete.
	workerDone := make(chan struct{})
	go func() {
		defer close(workerDone)
		_ = worker.Run(ctx)
	}()

	local := audit.NewAsyncPublisher(inbox)
	if len(cfg.Brokers) == 0 {
		return local, func() { <-workerDone }, nil
	}
	kafka, err := audit.NewKafkaPublisher(ctx, cfg.Brokers, cfg.Topic, log)
	if err != nil {
		return nil, nil, err
	}
	return &fanoutPublisher{local: local, kafka: kafka}, func() {
		flushCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = kafka.Flush(flushCtx)
		kafka.Close()
		<-workerDone
	}, nil
}

// fanoutPublisher appends locally and ships to Kafka.
type fanoutPublisher struct {
	local *audit.AsyncPublisher
	kafka *audit.KafkaPublisher
}

func (p *fanoutPublisher) Emit(ctx context.Context, event audit.Event) error {
	if err := p.local.Emit(ctx, event); err != nil {
		return err
	}
	return p.kafka.Emit(ctx, event)
}
