package store

import (
	"context"

	"gorm.io/gorm"

	"thrift_manager/internal/domain"
)

// Thrifts reads and writes thrift rows
type Thrifts struct{ db *gorm.DB }

// Create inserts t
func (r *Thrifts) Create(ctx context.Context, t *domain.Thrift) error {
	return r.db.WithContext(ctx).Create(t).Error
}

// Save writes every column of t, zero values included
func (r *Thrifts) Save(ctx context.Context, t *domain.Thrift) error {
	return r.db.WithContext(ctx).Save(t).Error
}

// FindByID is unscoped; ownership is decided by the caller
func (r *Thrifts) FindByID(ctx context.Context, id string) (*domain.Thrift, error) {
	var t domain.Thrift
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&t).Error; err != nil {
		return nil, notFound(err)
	}
	return &t, nil
}

// ListByOwner returns one page of ownerID's thrifts, newest first
func (r *Thrifts) ListByOwner(ctx context.Context, ownerID string, offset, limit int) ([]domain.Thrift, error) {
	thrifts := make([]domain.Thrift, 0, limit)
	err := r.db.WithContext(ctx).
		Where("user_id = ?", ownerID).
		Order("created_at desc, id desc").
		Offset(offset).
		Limit(limit).
		Find(&thrifts).Error
	return thrifts, err
}

// CountByOwner counts ownerID's thrifts
func (r *Thrifts) CountByOwner(ctx context.Context, ownerID string) (int64, error) {
	var total int64
	err := r.db.WithContext(ctx).Model(&domain.Thrift{}).Where("user_id = ?", ownerID).Count(&total).Error
	return total, err
}

// IDsByOwner resolves the thrift id set that scopes contribution queries
func (r *Thrifts) IDsByOwner(ctx context.Context, ownerID string) ([]string, error) {
	ids := make([]string, 0)
	err := r.db.WithContext(ctx).Model(&domain.Thrift{}).Where("user_id = ?", ownerID).Pluck("id", &ids).Error
	return ids, err
}
