package service

import (
	"context"
	"fmt"
	"time"

	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"

	"thrift_manager/internal/domain"
	"thrift_manager/internal/utils"
)

// RecentCount is the size of the recent contribution and activity feeds
const RecentCount = 5

// RecentContribution is a contribution resolved with member and thrift names
type RecentContribution struct {
	ID         string                    `json:"_id"`
	Amount     float64                   `json:"amount"`
	Date       time.Time                 `json:"date"`
	Status     domain.ContributionStatus `json:"status"`
	MemberName string                    `json:"memberName"`
	ThriftName string                    `json:"thriftName"`
}

// Stats is the dashboard summary of one user
type Stats struct {
	TotalMembers       int64                `json:"totalMembers"`
	TotalThrifts       int64                `json:"totalThrifts"`
	TotalContributions float64              `json:"totalContributions"`
	RecentActivity     []RecentContribution `json:"recentActivity"`
}

// DashboardService aggregates a user's records. Contributions are scoped
// through the user's thrifts, so their reads wait for the thrift id set.
type DashboardService struct {
	members       MemberRepository
	thrifts       ThriftRepository
	contributions ContributionRepository
	activity      *ActivityService
	cache         utils.Cache
}

// NewDashboardService creates a DashboardService reading through cache
func NewDashboardService(members MemberRepository, thrifts ThriftRepository, contributions ContributionRepository, activity *ActivityService, cache utils.Cache) *DashboardService {
	return &DashboardService{
		members:       members,
		thrifts:       thrifts,
		contributions: contributions,
		activity:      activity,
		cache:         cache,
	}
}

// Stats counts members and thrifts, sums contributions and lists the latest
// ones. Independent reads run concurrently.
func (s *DashboardService) Stats(ctx context.Context, ownerID string) (*Stats, error) {
	key := dashboardKeyPrefix(ownerID) + "stats"
	var cached Stats
	if s.cacheGet(ctx, key, &cached) {
		return &cached, nil
	}

	var (
		stats  = &Stats{RecentActivity: make([]RecentContribution, 0, RecentCount)}
		recent []domain.Contribution
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		n, err := s.members.CountByOwner(gctx, ownerID)
		if err != nil {
			return fmt.Errorf("count members: %w", err)
		}
		stats.TotalMembers = n
		return nil
	})
	g.Go(func() error {
		n, err := s.thrifts.CountByOwner(gctx, ownerID)
		if err != nil {
			return fmt.Errorf("count thrifts: %w", err)
		}
		stats.TotalThrifts = n
		return nil
	})
	g.Go(func() error {
		thriftIDs, err := s.thrifts.IDsByOwner(gctx, ownerID)
		if err != nil {
			return fmt.Errorf("resolve thrifts: %w", err)
		}
		inner, ictx := errgroup.WithContext(gctx)
		inner.Go(func() error {
			sum, err := s.contributions.SumByThrifts(ictx, thriftIDs)
			if err != nil {
				return fmt.Errorf("sum contributions: %w", err)
			}
			stats.TotalContributions = sum
			return nil
		})
		inner.Go(func() error {
			list, err := s.contributions.ListByThrifts(ictx, thriftIDs, 0, RecentCount)
			if err != nil {
				return fmt.Errorf("recent contributions: %w", err)
			}
			recent = list
			return nil
		})
		return inner.Wait()
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	for _, c := range recent {
		rc := RecentContribution{ID: c.ID, Amount: c.Amount, Date: c.Date, Status: c.Status}
		if c.Member != nil {
			rc.MemberName = c.Member.Name
		}
		if c.Thrift != nil {
			rc.ThriftName = c.Thrift.Name
		}
		stats.RecentActivity = append(stats.RecentActivity, rc)
	}

	s.cacheSet(ctx, key, stats)
	return stats, nil
}

// Activities returns ownerID's latest activities, newest first
func (s *DashboardService) Activities(ctx context.Context, ownerID string) ([]domain.Activity, error) {
	key := dashboardKeyPrefix(ownerID) + "activities"
	cached := make([]domain.Activity, 0, RecentCount)
	if s.cacheGet(ctx, key, &cached) {
		return cached, nil
	}

	activities, err := s.activity.Recent(ctx, ownerID, RecentCount)
	if err != nil {
		return nil, fmt.Errorf("recent activities: %w", err)
	}
	s.cacheSet(ctx, key, activities)
	return activities, nil
}

// cacheGet treats cache errors as misses
func (s *DashboardService) cacheGet(ctx context.Context, key string, dest any) bool {
	found, err := s.cache.Get(ctx, key, dest)
	if err != nil {
		logrus.WithFields(logrus.Fields{"key": key, "error": err.Error()}).Warn("Cache read failed")
		return false
	}
	return found
}

func (s *DashboardService) cacheSet(ctx context.Context, key string, value any) {
	if err := s.cache.Set(ctx, key, value); err != nil {
		logrus.WithFields(logrus.Fields{"key": key, "error": err.Error()}).Warn("Cache write failed")
	}
}
