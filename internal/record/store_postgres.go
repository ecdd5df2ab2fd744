package record

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"archivum/internal/catalog"
	"archivum/internal/compliance"
	"archivum/internal/retention"
	"archivum/pkg/platform/sentinel"
)

// PostgresStore persists records in PostgreSQL. The retention and compliance
// snapshots are stored as JSONB: they are audit artifacts read back whole,
// never queried field by field.
type PostgresStore struct {
	db *sql.DB
}

// NewPostgresStore constructs a PostgreSQL-backed record store.
func NewPostgresStore(db *sql.DB) *PostgresStore {
	return &PostgresStore{db: db}
}

func (s *PostgresStore) Save(ctx context.Context, rec Record) error {
	if err := rec.Validate(); err != nil {
		return err
	}

	retentionJSON, err := marshalNullable(rec.Retention)
	if err != nil {
		return fmt.Errorf("marshal retention snapshot: %w", err)
	}
	complianceJSON, err := marshalNullable(rec.Compliance)
	if err != nil {
		return fmt.Errorf("marshal compliance snapshot: %w", err)
	}

	query := `
		INSERT INTO records (
			id, title, process_category, decision_type, body, created_at,
			disclosure_flagged, privacy_level, retention, compliance,
			registered_at, updated_at
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
		ON CONFLICT (id) DO UPDATE SET
			title = EXCLUDED.title,
			process_category = EXCLUDED.process_category,
			decision_type = EXCLUDED.decision_type,
			body = EXCLUDED.body,
			created_at = EXCLUDED.created_at,
			disclosure_flagged = EXCLUDED.disclosure_flagged,
			privacy_level = EXCLUDED.privacy_level,
			retention = EXCLUDED.retention,
			compliance = EXCLUDED.compliance,
			updated_at = EXCLUDED.updated_at
	`
	_, err = s.db.ExecContext(ctx, query,
		rec.ID,
		rec.Title,
		string(rec.Category),
		string(rec.DecisionType),
		string(rec.Body),
		rec.CreatedAt,
		rec.DisclosureFlagged,
		string(rec.PrivacyLevel),
		retentionJSON,
		complianceJSON,
		rec.RegisteredAt,
		rec.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("save record: %w", err)
	}
	return nil
}

func (s *PostgresStore) FindByID(ctx context.Context, id uuid.UUID) (Record, error) {
	query := `
		SELECT id, title, process_category, decision_type, body, created_at,
			   disclosure_flagged, privacy_level, retention, compliance,
			   registered_at, updated_at
		FROM records
		WHERE id = $1
	`
	rec, err := scanRecord(s.db.QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Record{}, sentinel.ErrNotFound
		}
		return Record{}, fmt.Errorf("find record by id: %w", err)
	}
	return rec, nil
}

func (s *PostgresStore) List(ctx context.Context, filter ListFilter) ([]Record, error) {
	query := `
		SELECT id, title, process_category, decision_type, body, created_at,
			   disclosure_flagged, privacy_level, retention, compliance,
			   registered_at, updated_at
		FROM records
		WHERE ($1 = '' OR process_category = $1)
		  AND ($2 = '' OR body = $2)
		ORDER BY registered_at, id
	`
	args := []any{string(filter.Category), string(filter.Body)}
	if filter.Limit > 0 {
		query += " LIMIT $3"
		args = append(args, filter.Limit)
	}

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query records: %w", err)
	}
	defer rows.Close()

	var records []Record
	for rows.Next() {
		rec, err := scanRecord(rows)
		if err != nil {
			return nil, fmt.Errorf("scan record: %w", err)
		}
		records = append(records, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate records: %w", err)
	}
	return records, nil
}

func (s *PostgresStore) Delete(ctx context.Context, id uuid.UUID) error {
	result, err := s.db.ExecContext(ctx, `DELETE FROM records WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete record: %w", err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("delete record: %w", err)
	}
	if affected == 0 {
		return sentinel.ErrNotFound
	}
	return nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanRecord(row rowScanner) (Record, error) {
	var (
		rec            Record
		category       string
		decisionType   string
		body           string
		privacyLevel   string
		retentionJSON  []byte
		complianceJSON []byte
		createdAt      time.Time
	)
	err := row.Scan(
		&rec.ID,
		&rec.Title,
		&category,
		&decisionType,
		&body,
		&createdAt,
		&rec.DisclosureFlagged,
		&privacyLevel,
		&retentionJSON,
		&complianceJSON,
		&rec.RegisteredAt,
		&rec.UpdatedAt,
	)
	if err != nil {
		return Record{}, err
	}

	rec.Category = catalog.ProcessCategory(category)
	rec.DecisionType = catalog.DecisionType(decisionType)
	rec.Body = catalog.BodyKind(body)
	rec.PrivacyLevel = compliance.PrivacyLevel(privacyLevel)
	rec.CreatedAt = createdAt.UTC()
	rec.RegisteredAt = rec.RegisteredAt.UTC()
	rec.UpdatedAt = rec.UpdatedAt.UTC()

	if len(retentionJSON) > 0 {
		var resolved retention.Resolved
		if err := json.Unmarshal(retentionJSON, &resolved); err != nil {
			return Record{}, fmt.Errorf("unmarshal retention snapshot: %w", err)
		}
		rec.Retention = &resolved
	}
	if len(complianceJSON) > 0 {
		var status compliance.Status
		if err := json.Unmarshal(complianceJSON, &status); err != nil {
			return Record{}, fmt.Errorf("unmarshal compliance snapshot: %w", err)
		}
		rec.Compliance = &status
	}
	return rec, nil
}

func marshalNullable[T any](v *T) ([]byte, error) {
	if v == nil {
		return nil, nil
	}
	return json.Marshal(v)
}
