package service

import (
	"context"

	"thrift_manager/internal/domain"
)

// UserRepository persists credential records
type UserRepository interface {
	Create(ctx context.Context, u *domain.User) error
	FindByEmail(ctx context.Context, email string) (*domain.User, error)
	FindByID(ctx context.Context, id string) (*domain.User, error)
}

// MemberRepository persists members scoped by owner
type MemberRepository interface {
	Create(ctx context.Context, m *domain.Member) error
	FindOwned(ctx context.Context, id, ownerID string) (*domain.Member, error)
	ListByOwner(ctx context.Context, ownerID string) ([]domain.Member, error)
	CountByOwner(ctx context.Context, ownerID string) (int64, error)
}

// ThriftRepository persists thrift plans scoped by owner
type ThriftRepository interface {
	Create(ctx context.Context, t *domain.Thrift) error
	Save(ctx context.Context, t *domain.Thrift) error
	FindByID(ctx context.Context, id string) (*domain.Thrift, error)
	ListByOwner(ctx context.Context, ownerID string, offset, limit int) ([]domain.Thrift, error)
	CountByOwner(ctx context.Context, ownerID string) (int64, error)
	IDsByOwner(ctx context.Context, ownerID string) ([]string, error)
}

// ContributionRepository persists contributions; reads are scoped by thrift id set
type ContributionRepository interface {
	Create(ctx context.Context, c *domain.Contribution) error
	ListByThrifts(ctx context.Context, thriftIDs []string, offset, limit int) ([]domain.Contribution, error)
	CountByThrifts(ctx context.Context, thriftIDs []string) (int64, error)
	SumByThrifts(ctx context.Context, thriftIDs []string) (float64, error)
}

// ActivityRepository persists the append-only activity log
type ActivityRepository interface {
	Create(ctx context.Context, a *domain.Activity) error
	Recent(ctx context.Context, ownerID string, n int) ([]domain.Activity, error)
}
