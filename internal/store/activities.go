package store

import (
	"context"

	"gorm.io/gorm"

	"thrift_manager/internal/domain"
)

// Activities is the append-only activity log table
type Activities struct{ db *gorm.DB }

// Create appends a to the log
func (r *Activities) Create(ctx context.Context, a *domain.Activity) error {
	return r.db.WithContext(ctx).Create(a).Error
}

// Recent returns ownerID's latest n activities, newest first. Rows stamped in
// the same instant are ordered by id so the feed is stable.
func (r *Activities) Recent(ctx context.Context, ownerID string, n int) ([]domain.Activity, error) {
	activities := make([]domain.Activity, 0, n)
	err := r.db.WithContext(ctx).
		Where("user_id = ?", ownerID).
		Order("created_at desc, id desc").
		Limit(n).
		Find(&activities).Error
	return activities, err
}
