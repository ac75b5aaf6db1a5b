package ports

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/planora/planora/internal/domain"
)

// UserRepository persists accounts. Registration bundles the user and the
// default personal calendar into one transaction so they cannot diverge.
type UserRepository interface {
	CreateWithCalendarTx(ctx context.Context, user domain.User, personal domain.Calendar) (domain.User, error)
	GetByID(ctx context.Context, userID uuid.UUID) (domain.User, error)
	GetByEmail(ctx context.Context, email string) (domain.User, error)
	GetByUsername(ctx context.Context, username string) (domain.User, error)
}

type CalendarRepository interface {
	GetByID(ctx context.Context, calendarID uuid.UUID) (domain.Calendar, error)
	// ListVisible returns calendars the user owns plus public calendars of
	// professional cards the user follows, newest first.
	ListVisible(ctx context.Context, userID uuid.UUID) ([]domain.Calendar, error)
	ListByOwner(ctx context.Context, userID uuid.UUID) ([]domain.Calendar, error)
	ListByCard(ctx context.Context, cardID uuid.UUID) ([]domain.Calendar, error)
	ListPublicByCard(ctx context.Context, cardID uuid.UUID) ([]domain.Calendar, error)
}

type CalendarManagerRepository interface {
	Create(ctx context.Context, row domain.CalendarManager) error
	Exists(ctx context.Context, calendarID, userID uuid.UUID) (bool, error)
	ListByCalendar(ctx context.Context, calendarID uuid.UUID) ([]domain.CalendarManager, error)
}

type PlanRepository interface {
	Create(ctx context.Context, row domain.Plan) error
	GetByID(ctx context.Context, planID uuid.UUID) (domain.Plan, error)
	// ListVisibleTo returns the discovery feed: plans the user owns, plans
	// with an APPROVED participation by the user, and public plans on public
	// calendars of cards the user follows; ordered by start ascending.
	ListVisibleTo(ctx context.Context, userID uuid.UUID) ([]domain.Plan, error)
	ListByOwner(ctx context.Context, userID uuid.UUID) ([]domain.Plan, error)
	ListByApprovedParticipant(ctx context.Context, userID uuid.UUID) ([]domain.Plan, error)
	// ListUpcomingPublicByCalendar returns public plans on the calendar that
	// have not yet ended, ordered by start ascending.
	ListUpcomingPublicByCalendar(ctx context.Context, calendarID uuid.UUID, now time.Time) ([]domain.Plan, error)
}

type ParticipantRepository interface {
	Create(ctx context.Context, row domain.PlanParticipant) error
	GetByID(ctx context.Context, participantID uuid.UUID) (domain.PlanParticipant, error)
	GetByPlanUser(ctx context.Context, planID, userID uuid.UUID) (domain.PlanParticipant, error)
	ListByPlan(ctx context.Context, planID uuid.UUID) ([]domain.PlanParticipant, error)
	CountApproved(ctx context.Context, planID uuid.UUID) (int, error)
	CountByPlan(ctx context.Context, planID uuid.UUID) (int, error)
	// Decide transitions a pending row to the given terminal status. For an
	// approval with capacity > 0 the implementation must recount approved
	// rows and apply the update atomically, returning ErrCapacityReached
	// when the limit is already met. This closes the approve/approve race.
	Decide(ctx context.Context, participantID uuid.UUID, status string, capacity int, decidedAt time.Time) (domain.PlanParticipant, error)
}

// ProfessionalCardRepository persists cards. Creation bundles the card and
// its auto-provisioned public calendar into one transaction.
type ProfessionalCardRepository interface {
	CreateWithCalendarTx(ctx context.Context, card domain.ProfessionalCard, calendar domain.Calendar) error
	GetByID(ctx context.Context, cardID uuid.UUID) (domain.ProfessionalCard, error)
	ListByOwner(ctx context.Context, userID uuid.UUID) ([]domain.ProfessionalCard, error)
	ListFollowedBy(ctx context.Context, userID uuid.UUID) ([]domain.ProfessionalCard, error)
}

// FollowerRepository maintains the Follower/Following pair. The two tables
// are written and deleted together inside one transaction so they never
// diverge.
type FollowerRepository interface {
	CreatePairTx(ctx context.Context, follower domain.Follower, following domain.Following) error
	DeletePairTx(ctx context.Context, userID, cardID uuid.UUID) error
	Get(ctx context.Context, userID, cardID uuid.UUID) (domain.Follower, error)
	CountByCard(ctx context.Context, cardID uuid.UUID) (int, error)
	CountFollowedBy(ctx context.Context, userID uuid.UUID) (int, error)
}

type CardManagerRepository interface {
	Create(ctx context.Context, row domain.ProfessionalCardManager) error
	Exists(ctx context.Context, cardID, userID uuid.UUID) (bool, error)
	ListByCard(ctx context.Context, cardID uuid.UUID) ([]domain.ProfessionalCardManager, error)
}

type ConnectionRepository interface {
	// ListEdges returns every edge touching the user, in either direction.
	ListEdges(ctx context.Context, userID uuid.UUID) ([]domain.Connection, error)
	// Exists reports whether an edge links the two users in either direction.
	Exists(ctx context.Context, userID, otherID uuid.UUID) (bool, error)
	CountByUser(ctx context.Context, userID uuid.UUID) (int, error)
}

// ConnectionRequestRepository persists requests together with their
// notification side effects. Accept's three-part write (status, edge,
// notification) is a single transaction.
type ConnectionRequestRepository interface {
	CreateWithNotificationTx(ctx context.Context, req domain.ConnectionRequest, notif domain.Notification) error
	GetByID(ctx context.Context, requestID uuid.UUID) (domain.ConnectionRequest, error)
	ListPendingTo(ctx context.Context, userID uuid.UUID) ([]domain.ConnectionRequest, error)
	ExistsPendingBetween(ctx context.Context, userID, otherID uuid.UUID) (bool, error)
	AcceptTx(ctx context.Context, requestID uuid.UUID, edge domain.Connection, notif domain.Notification, decidedAt time.Time) error
	RejectTx(ctx context.Context, requestID uuid.UUID, notif domain.Notification, decidedAt time.Time) error
}

type NotificationRepository interface {
	Create(ctx context.Context, row domain.Notification) error
	GetByID(ctx context.Context, notificationID uuid.UUID) (domain.Notification, error)
	ListByUser(ctx context.Context, userID uuid.UUID) ([]domain.Notification, error)
	Update(ctx context.Context, row domain.Notification) error
}
