package store

import (
	"context"

	"gorm.io/gorm"

	"thrift_manager/internal/domain"
)

// Members reads and writes member rows
type Members struct{ db *gorm.DB }

// Create inserts m
func (r *Members) Create(ctx context.Context, m *domain.Member) error {
	return r.db.WithContext(ctx).Create(m).Error
}

// FindOwned returns the member only when it belongs to ownerID
func (r *Members) FindOwned(ctx context.Context, id, ownerID string) (*domain.Member, error) {
	var m domain.Member
	if err := r.db.WithContext(ctx).Where("id = ? AND user_id = ?", id, ownerID).First(&m).Error; err != nil {
		return nil, notFound(err)
	}
	return &m, nil
}

// ListByOwner returns every member of ownerID, oldest first
func (r *Members) ListByOwner(ctx context.Context, ownerID string) ([]domain.Member, error) {
	members := make([]domain.Member, 0)
	err := r.db.WithContext(ctx).
		Where("user_id = ?", ownerID).
		Order("created_at asc, id asc").
		Find(&members).Error
	return members, err
}

// CountByOwner counts ownerID's members
func (r *Members) CountByOwner(ctx context.Context, ownerID string) (int64, error) {
	var total int64
	err := r.db.WithContext(ctx).Model(&domain.Member{}).Where("user_id = ?", ownerID).Count(&total).Error
	return total, err
}
