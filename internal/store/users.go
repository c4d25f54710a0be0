package store

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"thrift_manager/internal/domain"
)

// Users reads and writes credential records
type Users struct{ db *gorm.DB }

// Create inserts u; a second user with the same email yields domain.ErrDuplicateUser
func (r *Users) Create(ctx context.Context, u *domain.User) error {
	err := r.db.WithContext(ctx).Create(u).Error
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return domain.ErrDuplicateUser
	}
	return err
}

// FindByEmail looks up a user by normalized email
func (r *Users) FindByEmail(ctx context.Context, email string) (*domain.User, error) {
	var u domain.User
	if err := r.db.WithContext(ctx).Where("email = ?", email).First(&u).Error; err != nil {
		return nil, notFound(err)
	}
	return &u, nil
}

// FindByID looks up a user by id
func (r *Users) FindByID(ctx context.Context, id string) (*domain.User, error) {
	var u domain.User
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&u).Error; err != nil {
		return nil, notFound(err)
	}
	return &u, nil
}
