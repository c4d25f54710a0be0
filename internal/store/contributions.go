package store

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"thrift_manager/internal/domain"
)

// Contributions reads and writes contribution rows
type Contributions struct{ db *gorm.DB }

// Create inserts c; a transactionRef collision yields domain.ErrDuplicateKey
func (r *Contributions) Create(ctx context.Context, c *domain.Contribution) error {
	err := r.db.WithContext(ctx).Omit("Member", "Thrift").Create(c).Error
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return domain.ErrDuplicateKey
	}
	return err
}

// ListByThrifts returns one page of contributions toward thriftIDs, newest
// first, with member and thrift names preloaded
func (r *Contributions) ListByThrifts(ctx context.Context, thriftIDs []string, offset, limit int) ([]domain.Contribution, error) {
	contributions := make([]domain.Contribution, 0, limit)
	if len(thriftIDs) == 0 {
		return contributions, nil
	}
	err := r.db.WithContext(ctx).
		Preload("Member").
		Preload("Thrift").
		Where("thrift_id IN ?", thriftIDs).
		Order("created_at desc, id desc").
		Offset(offset).
		Limit(limit).
		Find(&contributions).Error
	return contributions, err
}

// CountByThrifts counts the contributions toward thriftIDs
func (r *Contributions) CountByThrifts(ctx context.Context, thriftIDs []string) (int64, error) {
	var total int64
	if len(thriftIDs) == 0 {
		return 0, nil
	}
	err := r.db.WithContext(ctx).Model(&domain.Contribution{}).Where("thrift_id IN ?", thriftIDs).Count(&total).Error
	return total, err
}

// SumByThrifts totals the amounts toward thriftIDs; no rows sums to 0
func (r *Contributions) SumByThrifts(ctx context.Context, thriftIDs []string) (float64, error) {
	var total float64
	if len(thriftIDs) == 0 {
		return 0, nil
	}
	err := r.db.WithContext(ctx).
		Model(&domain.Contribution{}).
		Select("COALESCE(SUM(amount), 0)").
		Where("thrift_id IN ?", thriftIDs).
		Scan(&total).Error
	return total, err
}
