package application

import (
	"time"

	"github.com/google/uuid"

	"github.com/planora/planora/internal/domain"
)

type RegisterInput struct {
	Username string
	Name     string
	Email    string
	Password string
}

type RegisterResult struct {
	User domain.User
}

type LoginInput struct {
	Email    string
	Password string
}

type LoginResult struct {
	Token     string
	ExpiresAt time.Time
	User      domain.User
}

type CreatePlanInput struct {
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
	CalendarID      uuid.UUID
	// AllowManagers widens authorization from strict calendar ownership to
	// calendar managers and managers of the owning professional card. The
	// full creation endpoint always sets it; the quick-create endpoint
	// keeps it false.
	AllowManagers bool
}

type PlanDetails struct {
	Plan         domain.Plan
	Owner        domain.PublicUser
	Participants []ParticipantDetails
}

type ParticipantDetails struct {
	Participant domain.PlanParticipant
	User        domain.PublicUser
}

// CalendarEvent is the calendar-feed projection of a plan.
type CalendarEvent struct {
	PlanID       uuid.UUID
	Title        string
	Start        time.Time
	End          time.Time
	CalendarID   uuid.UUID
	CalendarName string
	Color        string
}

type CalendarSummary struct {
	Calendar domain.Calendar
	CardName string
}

type ManageParticipationInput struct {
	ParticipationID uuid.UUID
	Action          string
}

type CreateCardInput struct {
	Name        string
	Category    string
	Description string
	Address     string
	Phone       string
	Email       string
	Website     string
	Instagram   string
	Tags        []string
}

type CreateCardResult struct {
	Card     domain.ProfessionalCard
	Calendar domain.Calendar
}

type CardCalendarPlans struct {
	Calendar domain.Calendar
	Plans    []domain.Plan
}

type CardDetails struct {
	Card          domain.ProfessionalCard
	Owner         domain.PublicUser
	Calendars     []CardCalendarPlans
	FollowerCount int
	IsFollowing   bool
}

type CardSummary struct {
	Card          domain.ProfessionalCard
	FollowerCount int
	Calendars     []domain.Calendar
	IsFollowing   bool
}

type ConnectionRequestDetails struct {
	Request domain.ConnectionRequest
	From    domain.PublicUser
}

type ProfileSummary struct {
	User              domain.User
	CalendarCount     int
	PlanCount         int
	CardCount         int
	ConnectionCount   int
	FollowedCardCount int
}

type ProfilePlan struct {
	Plan             domain.Plan
	ParticipantCount int
	CalendarName     string
	CalendarColor    string
	CardName         string
}

type ProfilePlans struct {
	Created       []ProfilePlan
	Participating []ProfilePlan
}

type ProfileCards struct {
	Managed  []CardSummary
	Followed []CardSummary
}
