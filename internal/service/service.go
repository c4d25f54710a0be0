// Package service implements authentication, ownership-scoped data access,
// the activity log and the dashboard aggregation.
package service

import (
	"time"

	"thrift_manager/internal/store"
	"thrift_manager/internal/utils"
)

// Services bundles every service over one store
type Services struct {
	Auth          *AuthService
	Members       *MemberService
	Thrifts       *ThriftService
	Contributions *ContributionService
	Activity      *ActivityService
	Dashboard     *DashboardService
}

// New wires the services over st. cache may be utils.NopCache{}.
func New(st *store.Store, cache utils.Cache, jwtSecret string, sessionTTL time.Duration) *Services {
	activity := NewActivityService(st.Activities, cache)
	return &Services{
		Auth:          NewAuthService(st.Users, jwtSecret, sessionTTL),
		Members:       NewMemberService(st.Members, activity),
		Thrifts:       NewThriftService(st.Thrifts, activity),
		Contributions: NewContributionService(st.Contributions, st.Members, st.Thrifts, activity),
		Activity:      activity,
		Dashboard:     NewDashboardService(st.Members, st.Thrifts, st.Contributions, activity, cache),
	}
}
