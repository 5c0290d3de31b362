package repository

import (
	"context"

	"github.com/google/uuid"
	"github.com/suriya388/backoffice-api/internal/domain/entity"
	"github.com/suriya388/backoffice-api/internal/domain/enum"
)

// RecordRepository defines the interface for record data operations.
// A record and its line items / deductions are always read and written as one
// unit; Update replaces all children atomically.
type RecordRepository interface {
	Create(ctx context.Context, record *entity.Record) error
	GetByID(ctx context.Context, kind enum.RecordKind, id uuid.UUID) (*entity.Record, error)
	List(ctx context.Context, kind enum.RecordKind) ([]entity.Record, error)
	Update(ctx context.Context, record *entity.Record) error
	Delete(ctx context.Context, kind enum.RecordKind, id uuid.UUID) error
	ListItems(ctx context.Context, kind enum.RecordKind) ([]entity.LineItem, map[uuid.UUID]entity.Record, error)
}
