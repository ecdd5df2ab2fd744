package record

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"archivum/internal/catalog"
)

var (
	ErrMissingID        = errors.New("record id is required")
	ErrMissingTitle     = errors.New("record title is required")
	ErrUnknownCategory  = errors.New("unknown process category")
	ErrMissingCreatedAt = errors.New("record creation date is required")
)

// ListFilter narrows List results. Zero values mean no constraint.
type ListFilter struct {
	Category catalog.ProcessCategory
	Body     catalog.BodyKind
	Limit    int
}

// Store is interface-driven so the classification service stays testable and
// the memory and PostgreSQL implementations remain interchangeable.
type Store interface {
	Save(ctx context.Context, rec Record) error
	FindByID(ctx context.Context, id uuid.UUID) (Record, error)
	List(ctx context.Context, filter ListFilter) ([]Record, error)
	Delete(ctx context.Context, id uuid.UUID) error
}
