package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/sirupsen/logrus"

	"thrift_manager/internal/domain"
)

// MemberInput is the member creation payload
type MemberInput struct {
	Name    string `json:"name" validate:"required,max=100"`
	Phone   string `json:"phone" validate:"max=32"`
	Address string `json:"address" validate:"max=255"`
}

// MemberService manages a user's members
type MemberService struct {
	members  MemberRepository
	activity *ActivityService
}

// NewMemberService creates a MemberService
func NewMemberService(members MemberRepository, activity *ActivityService) *MemberService {
	return &MemberService{members: members, activity: activity}
}

// Create stores a member owned by ownerID and logs the activity
func (s *MemberService) Create(ctx context.Context, ownerID string, in MemberInput) (*domain.Member, error) {
	in.Name = strings.TrimSpace(in.Name)
	if err := validateInput(in, "Please include a member name"); err != nil {
		return nil, err
	}

	m := &domain.Member{
		UserID:  ownerID,
		Name:    in.Name,
		Phone:   strings.TrimSpace(in.Phone),
		Address: strings.TrimSpace(in.Address),
	}
	if err := s.members.Create(ctx, m); err != nil {
		return nil, fmt.Errorf("create member: %w", err)
	}
	logrus.WithFields(logrus.Fields{"user_id": ownerID, "member_id": m.ID}).Info("Member created")

	s.activity.Record(ctx, ownerID, "New member added: "+m.Name, IconMember)
	return m, nil
}

// List returns all of ownerID's members; this listing is not paginated
func (s *MemberService) List(ctx context.Context, ownerID string) ([]domain.Member, error) {
	members, err := s.members.ListByOwner(ctx, ownerID)
	if err != nil {
		return nil, fmt.Errorf("list members: %w", err)
	}
	return members, nil
}
