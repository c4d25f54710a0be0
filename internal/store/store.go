// Package store holds the gorm repositories. Every query is scoped by the
// owning user id supplied by the caller.
package store

import (
	"errors"

	"gorm.io/gorm"

	"thrift_manager/internal/domain"
)

// Store bundles the repositories over one connection pool
type Store struct {
	Users         *Users
	Members       *Members
	Thrifts       *Thrifts
	Contributions *Contributions
	Activities    *Activities
}

// New builds all repositories over db
func New(db *gorm.DB) *Store {
	return &Store{
		Users:         &Users{db: db},
		Members:       &Members{db: db},
		Thrifts:       &Thrifts{db: db},
		Contributions: &Contributions{db: db},
		Activities:    &Activities{db: db},
	}
}

// notFound maps gorm's missing-row error onto the domain taxonomy
func notFound(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return domain.ErrNotFound
	}
	return err
}
