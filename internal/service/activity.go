package service

import (
	"context"
	"time"

	"github.com/sirupsen/logrus"

	"thrift_manager/internal/domain"
	"thrift_manager/internal/utils"
)

// Feed icons
const (
	IconMember       = "🤝"
	IconThrift       = "📈"
	IconContribution = "💰"
)

const displayTimeLayout = "3:04 PM"

// ActivityService appends to and reads the per-user activity log. It also owns
// invalidation of the user's cached dashboard, since every logged write changes it.
type ActivityService struct {
	activities ActivityRepository
	cache      utils.Cache
	now        func() time.Time
}

// NewActivityService creates an ActivityService that invalidates through cache
func NewActivityService(activities ActivityRepository, cache utils.Cache) *ActivityService {
	return &ActivityService{activities: activities, cache: cache, now: time.Now}
}

// Record appends an activity for ownerID. Failures are logged and swallowed:
// the log is best-effort audit and never fails the write it describes.
func (s *ActivityService) Record(ctx context.Context, ownerID, action, icon string) {
	a := &domain.Activity{
		UserID: ownerID,
		Action: action,
		Time:   s.now().Format(displayTimeLayout),
		Icon:   icon,
	}
	if err := s.activities.Create(ctx, a); err != nil {
		logrus.WithFields(logrus.Fields{
			"user_id": ownerID,
			"action":  action,
			"error":   err.Error(),
		}).Error("Failed to record activity")
	}
	s.invalidate(ctx, ownerID)
}

// Recent returns ownerID's latest n activities, newest first
func (s *ActivityService) Recent(ctx context.Context, ownerID string, n int) ([]domain.Activity, error) {
	return s.activities.Recent(ctx, ownerID, n)
}

func (s *ActivityService) invalidate(ctx context.Context, ownerID string) {
	if err := s.cache.DeletePrefix(ctx, dashboardKeyPrefix(ownerID)); err != nil {
		logrus.WithFields(logrus.Fields{
			"user_id": ownerID,
			"error":   err.Error(),
		}).Warn("Failed to invalidate dashboard cache")
	}
}

func dashboardKeyPrefix(ownerID string) string {
	return "dashboard:user:" + ownerID + ":"
}
