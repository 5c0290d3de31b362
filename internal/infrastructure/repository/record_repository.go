package repository

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/suriya388/backoffice-api/internal/domain/entity"
	"github.com/suriya388/backoffice-api/internal/domain/enum"
	domainRepo "github.com/suriya388/backoffice-api/internal/domain/repository"
)

type recordRepository struct {
	db *gorm.DB
}

// NewRecordRepository creates a new record repository
func NewRecordRepository(db *gorm.DB) domainRepo.RecordRepository {
	return &recordRepository{db: db}
}

// withChildren preloads items and deductions in their stored order.
func withChildren(db *gorm.DB) *gorm.DB {
	return db.
		Preload("Items", func(db *gorm.DB) *gorm.DB {
			return db.Order("position ASC")
		}).
		Preload("Deductions", func(db *gorm.DB) *gorm.DB {
			return db.Order("position ASC")
		})
}

func (r *recordRepository) Create(ctx context.Context, record *entity.Record) error {
	return r.db.WithContext(ctx).Create(record).Error
}

func (r *recordRepository) GetByID(ctx context.Context, kind enum.RecordKind, id uuid.UUID) (*entity.Record, error) {
	var record entity.Record
	err := withChildren(r.db.WithContext(ctx)).
		First(&record, "id = ? AND kind = ?", id, kind).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &record, err
}

func (r *recordRepository) List(ctx context.Context, kind enum.RecordKind) ([]entity.Record, error) {
	var records []entity.Record
	err := withChildren(r.db.WithContext(ctx)).
		Where("kind = ?", kind).
		Order("date DESC, created_at DESC").
		Find(&records).Error
	return records, err
}

// Update rewrites the record and replaces its children in one transaction, so
// a reader never sees a record with half the old rows and half the new.
func (r *recordRepository) Update(ctx context.Context, record *entity.Record) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("record_id = ?", record.ID).Delete(&entity.LineItem{}).Error; err != nil {
			return err
		}
		if err := tx.Where("record_id = ?", record.ID).Delete(&entity.Deduction{}).Error; err != nil {
			return err
		}
		if err := tx.Omit(clause.Associations).Save(record).Error; err != nil {
			return err
		}
		for i := range record.Items {
			record.Items[i].ID = uuid.Nil
			record.Items[i].RecordID = record.ID
		}
		for i := range record.Deductions {
			record.Deductions[i].ID = uuid.Nil
			record.Deductions[i].RecordID = record.ID
		}
		if len(record.Items) > 0 {
			if err := tx.Create(&record.Items).Error; err != nil {
				return err
			}
		}
		if len(record.Deductions) > 0 {
			if err := tx.Create(&record.Deductions).Error; err != nil {
				return err
			}
		}
		return nil
	})
}

func (r *recordRepository) Delete(ctx context.Context, kind enum.RecordKind, id uuid.UUID) error {
	return r.db.WithContext(ctx).
		Where("id = ? AND kind = ?", id, kind).
		Delete(&entity.Record{}).Error
}

// ListItems returns every line item of a kind plus the records they belong
// to, keyed by record ID, for the summary groupings.
func (r *recordRepository) ListItems(ctx context.Context, kind enum.RecordKind) ([]entity.LineItem, map[uuid.UUID]entity.Record, error) {
	var records []entity.Record
	err := r.db.WithContext(ctx).
		Where("kind = ?", kind).
		Order("date ASC, created_at ASC").
		Find(&records).Error
	if err != nil {
		return nil, nil, err
	}
	if len(records) == 0 {
		return nil, map[uuid.UUID]entity.Record{}, nil
	}

	ids := make([]uuid.UUID, len(records))
	byID := make(map[uuid.UUID]entity.Record, len(records))
	for i, rec := range records {
		ids[i] = rec.ID
		byID[rec.ID] = rec
	}

	var items []entity.LineItem
	err = r.db.WithContext(ctx).
		Where("record_id IN ?", ids).
		Order("record_id ASC, position ASC").
		Find(&items).Error
	return items, byID, err
}
