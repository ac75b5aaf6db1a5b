package domain

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

const (
	VisibilityPublic    = "PUBLIC"
	VisibilityFollowers = "FOLLOWERS"
	VisibilityPrivate   = "PRIVATE"

	ParticipantStatusPending  = "PENDING"
	ParticipantStatusApproved = "APPROVED"
	ParticipantStatusRejected = "REJECTED"

	ParticipationActionApprove = "APPROVE"
	ParticipationActionReject  = "REJECT"
)

func IsValidVisibility(v string) bool {
	switch v {
	case VisibilityPublic, VisibilityFollowers, VisibilityPrivate:
		return true
	default:
		return false
	}
}

func IsValidParticipationAction(v string) bool {
	switch strings.ToUpper(strings.TrimSpace(v)) {
	case ParticipationActionApprove, ParticipationActionReject:
		return true
	default:
		return false
	}
}

// Plan is a schedulable event published under a calendar.
// MaxParticipants == 0 means unlimited capacity.
type Plan struct {
	PlanID          uuid.UUID
	Title           string
	Description     string
	StartDate       time.Time
	EndDate         time.Time
	Location        string
	OnlineLink      string
	MaxParticipants int
	Price           float64
	Tags            []string
	Visibility      string
	OwnerID         uuid.UUID
	CalendarID      uuid.UUID
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

func (p Plan) IsPublic() bool { return p.Visibility == VisibilityPublic }

// HasCapacityFor reports whether one more approval fits under the limit.
func (p Plan) HasCapacityFor(approvedCount int) bool {
	if p.MaxParticipants <= 0 {
		return true
	}
	return approvedCount < p.MaxParticipants
}

// PlanParticipant records one user's participation state on one plan.
// A (plan, user) pair has at most one row.
type PlanParticipant struct {
	ParticipantID uuid.UUID
	PlanID        uuid.UUID
	UserID        uuid.UUID
	Status        string
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// Decided reports whether the row reached a terminal state.
func (p PlanParticipant) Decided() bool {
	return p.Status == ParticipantStatusApproved || p.Status == ParticipantStatusRejected
}
