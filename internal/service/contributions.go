package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"thrift_manager/internal/domain"
	"thrift_manager/internal/utils"
)

const (
	defaultContributionPageSize = 20
	refAttempts                 = 3
)

// ContributionInput is the contribution creation payload
type ContributionInput struct {
	MemberID string   `json:"memberId" validate:"required"`
	ThriftID string   `json:"thriftId" validate:"required"`
	Amount   *float64 `json:"amount" validate:"required,gte=0"`
	Date     string   `json:"date" validate:"required"`
}

// ContributionPage is one page of the contributions toward a user's thrifts
type ContributionPage struct {
	Contributions      []domain.Contribution `json:"contributions"`
	CurrentPage        int                   `json:"currentPage"`
	TotalPages         int                   `json:"totalPages"`
	TotalContributions int64                 `json:"totalContributions"`
}

// ContributionService records and lists contributions for a user's own members and thrifts
type ContributionService struct {
	contributions ContributionRepository
	members       MemberRepository
	thrifts       ThriftRepository
	activity      *ActivityService
	now           func() time.Time
}

// NewContributionService creates a ContributionService
func NewContributionService(contributions ContributionRepository, members MemberRepository, thrifts ThriftRepository, activity *ActivityService) *ContributionService {
	return &ContributionService{
		contributions: contributions,
		members:       members,
		thrifts:       thrifts,
		activity:      activity,
		now:           time.Now,
	}
}

// DefaultPageSize is used when the caller supplies no limit
func (s *ContributionService) DefaultPageSize() int { return defaultContributionPageSize }

// Create records a pending contribution. The referenced member and thrift must
// exist and belong to ownerID.
func (s *ContributionService) Create(ctx context.Context, ownerID string, in ContributionInput) (*domain.Contribution, error) {
	in.MemberID = strings.TrimSpace(in.MemberID)
	in.ThriftID = strings.TrimSpace(in.ThriftID)
	if err := validateInput(in, "Please include member, amount, date, and associated thrift for the contribution."); err != nil {
		return nil, err
	}
	date, err := utils.ParseDate(in.Date)
	if err != nil {
		return nil, domain.Validation("date must be a date (YYYY-MM-DD)")
	}

	member, err := s.members.FindOwned(ctx, in.MemberID, ownerID)
	if errors.Is(err, domain.ErrNotFound) {
		return nil, domain.NotFound("Member not found")
	}
	if err != nil {
		return nil, fmt.Errorf("find member: %w", err)
	}
	thrift, err := s.thrifts.FindByID(ctx, in.ThriftID)
	if errors.Is(err, domain.ErrNotFound) || (err == nil && thrift.UserID != ownerID) {
		return nil, domain.NotFound("Thrift not found")
	}
	if err != nil {
		return nil, fmt.Errorf("find thrift: %w", err)
	}

	c := &domain.Contribution{
		UserID:   ownerID,
		MemberID: member.ID,
		ThriftID: thrift.ID,
		Amount:   *in.Amount,
		Date:     date,
		Status:   domain.ContributionPending,
	}
	// Retry on the unlikely reference collision
	for attempt := 1; ; attempt++ {
		c.ID = ""
		c.TransactionRef = s.newTransactionRef()
		err = s.contributions.Create(ctx, c)
		if !errors.Is(err, domain.ErrDuplicateKey) || attempt == refAttempts {
			break
		}
	}
	if err != nil {
		return nil, fmt.Errorf("create contribution: %w", err)
	}
	logrus.WithFields(logrus.Fields{
		"user_id":         ownerID,
		"contribution_id": c.ID,
		"thrift_id":       thrift.ID,
		"amount":          c.Amount,
	}).Info("Contribution created")

	s.activity.Record(ctx, ownerID,
		fmt.Sprintf("%s contribution received from %s", utils.FormatNaira(c.Amount), member.Name),
		IconContribution)
	return c, nil
}

// List returns one page of contributions toward ownerID's thrifts, newest first
func (s *ContributionService) List(ctx context.Context, ownerID string, page utils.Page) (*ContributionPage, error) {
	thriftIDs, err := s.thrifts.IDsByOwner(ctx, ownerID)
	if err != nil {
		return nil, fmt.Errorf("resolve thrifts: %w", err)
	}
	total, err := s.contributions.CountByThrifts(ctx, thriftIDs)
	if err != nil {
		return nil, fmt.Errorf("count contributions: %w", err)
	}
	contributions, err := s.contributions.ListByThrifts(ctx, thriftIDs, page.Offset(), page.Limit)
	if err != nil {
		return nil, fmt.Errorf("list contributions: %w", err)
	}
	return &ContributionPage{
		Contributions:      contributions,
		CurrentPage:        page.Number,
		TotalPages:         page.TotalPages(total),
		TotalContributions: total,
	}, nil
}

// newTransactionRef builds TRN-<unix ms>-<8 hex>
func (s *ContributionService) newTransactionRef() string {
	return fmt.Sprintf("TRN-%d-%s", s.now().UnixMilli(), uuid.NewString()[:8])
}
