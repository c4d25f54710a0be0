package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/sirupsen/logrus"

	"thrift_manager/internal/domain"
	"thrift_manager/internal/utils"
)

const defaultThriftPageSize = 25

// ThriftInput is the payload for creating and updating a thrift. maxMembers is
// required on create only.
type ThriftInput struct {
	Name           string   `json:"name" validate:"required,max=100"`
	StartDate      string   `json:"startDate" validate:"required"`
	EndDate        string   `json:"endDate"`
	AmountPerCycle *float64 `json:"amountPerCycle" validate:"required,gt=0"`
	Frequency      string   `json:"frequency" validate:"required,oneof=daily weekly bi-weekly monthly yearly"`
	Status         string   `json:"status" validate:"omitempty,oneof=pending active completed cancelled"`
	MaxMembers     *int     `json:"maxMembers" validate:"omitempty,min=2"`
	Description    string   `json:"description" validate:"max=1000"`
	IsPublic       *bool    `json:"isPublic"`
}

// ThriftPage is one page of a user's thrifts
type ThriftPage struct {
	Thrifts      []domain.Thrift `json:"thrifts"`
	CurrentPage  int             `json:"currentPage"`
	TotalPages   int             `json:"totalPages"`
	TotalThrifts int64           `json:"totalThrifts"`
}

// ThriftService manages a user's thrift plans
type ThriftService struct {
	thrifts  ThriftRepository
	activity *ActivityService
}

// NewThriftService creates a ThriftService
func NewThriftService(thrifts ThriftRepository, activity *ActivityService) *ThriftService {
	return &ThriftService{thrifts: thrifts, activity: activity}
}

// DefaultPageSize is used when the caller supplies no limit
func (s *ThriftService) DefaultPageSize() int { return defaultThriftPageSize }

// Create stores a thrift owned by ownerID. Status defaults to pending and isPublic to true.
func (s *ThriftService) Create(ctx context.Context, ownerID string, in ThriftInput) (*domain.Thrift, error) {
	in.Name = strings.TrimSpace(in.Name)
	if in.MaxMembers == nil {
		return nil, domain.Validation("Please fill all required thrift fields")
	}
	t := &domain.Thrift{UserID: ownerID, Status: domain.ThriftPending, IsPublic: true}
	if err := applyThriftInput(t, in, "Please fill all required thrift fields"); err != nil {
		return nil, err
	}

	if err := s.thrifts.Create(ctx, t); err != nil {
		return nil, fmt.Errorf("create thrift: %w", err)
	}
	logrus.WithFields(logrus.Fields{"user_id": ownerID, "thrift_id": t.ID}).Info("Thrift created")

	s.activity.Record(ctx, ownerID, fmt.Sprintf("New thrift plan created: %q", t.Name), IconThrift)
	return t, nil
}

// List returns one page of ownerID's thrifts, newest first
func (s *ThriftService) List(ctx context.Context, ownerID string, page utils.Page) (*ThriftPage, error) {
	total, err := s.thrifts.CountByOwner(ctx, ownerID)
	if err != nil {
		return nil, fmt.Errorf("count thrifts: %w", err)
	}
	thrifts, err := s.thrifts.ListByOwner(ctx, ownerID, page.Offset(), page.Limit)
	if err != nil {
		return nil, fmt.Errorf("list thrifts: %w", err)
	}
	return &ThriftPage{
		Thrifts:      thrifts,
		CurrentPage:  page.Number,
		TotalPages:   page.TotalPages(total),
		TotalThrifts: total,
	}, nil
}

// Update overwrites the mutable fields of thrift id. The checks run in order:
// the thrift must exist, belong to callerID, and the payload must be valid.
func (s *ThriftService) Update(ctx context.Context, id, callerID string, in ThriftInput) (*domain.Thrift, error) {
	t, err := s.thrifts.FindByID(ctx, id)
	if errors.Is(err, domain.ErrNotFound) {
		return nil, domain.NotFound("Thrift not found")
	}
	if err != nil {
		return nil, fmt.Errorf("find thrift: %w", err)
	}
	if t.UserID != callerID {
		logrus.WithFields(logrus.Fields{"user_id": callerID, "thrift_id": id}).Warn("Thrift update by non-owner")
		return nil, domain.Forbidden("Not authorized to update this thrift")
	}

	// Work on a copy so a failed validation leaves t untouched
	updated := *t
	updated.MaxMembers = nil
	updated.EndDate = nil
	if err := applyThriftInput(&updated, in, "Please fill all required fields: name, startDate, amountPerCycle, frequency"); err != nil {
		return nil, err
	}

	if err := s.thrifts.Save(ctx, &updated); err != nil {
		return nil, fmt.Errorf("save thrift: %w", err)
	}
	logrus.WithFields(logrus.Fields{"user_id": callerID, "thrift_id": id}).Info("Thrift updated")

	s.activity.Record(ctx, callerID, fmt.Sprintf("Thrift Updated: %q", updated.Name), IconThrift)
	return &updated, nil
}

// applyThriftInput validates in and copies it onto t
func applyThriftInput(t *domain.Thrift, in ThriftInput, requiredMsg string) error {
	in.Name = strings.TrimSpace(in.Name)
	if err := validateInput(in, requiredMsg); err != nil {
		return err
	}
	start, err := utils.ParseDate(in.StartDate)
	if err != nil {
		return domain.Validation("startDate must be a date (YYYY-MM-DD)")
	}
	var end *time.Time
	if strings.TrimSpace(in.EndDate) != "" {
		e, err := utils.ParseDate(in.EndDate)
		if err != nil {
			return domain.Validation("endDate must be a date (YYYY-MM-DD)")
		}
		if e.Before(start) {
			return domain.Validation("endDate must not be before startDate")
		}
		end = &e
	}

	t.Name = in.Name
	t.StartDate = start
	t.EndDate = end
	t.AmountPerCycle = *in.AmountPerCycle
	t.Frequency = domain.Frequency(in.Frequency)
	if in.Status != "" {
		t.Status = domain.ThriftStatus(in.Status)
	}
	if in.MaxMembers != nil {
		t.MaxMembers = in.MaxMembers
	}
	t.Description = strings.TrimSpace(in.Description)
	if in.IsPublic != nil {
		t.IsPublic = *in.IsPublic
	}
	return nil
}
