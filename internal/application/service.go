package application

import (
	"time"

	"github.com/google/uuid"

	"github.com/planora/planora/internal/ports"
)

type Config struct {
	ServiceName string
	TokenTTL    time.Duration
}

// Actor identifies the authenticated caller resolved from the session.
// A zero UserID means the request carried no valid session.
type Actor struct {
	UserID    uuid.UUID
	Email     string
	SessionID uuid.UUID
	RequestID string
}

func (a Actor) Authenticated() bool { return a.UserID != uuid.Nil }

type Service struct {
	cfg Config

	users              ports.UserRepository
	calendars          ports.CalendarRepository
	calendarManagers   ports.CalendarManagerRepository
	plans              ports.PlanRepository
	participants       ports.ParticipantRepository
	cards              ports.ProfessionalCardRepository
	followers          ports.FollowerRepository
	cardManagers       ports.CardManagerRepository
	connections        ports.ConnectionRepository
	connectionRequests ports.ConnectionRequestRepository
	notifications      ports.NotificationRepository

	hasher      ports.PasswordHasher
	tokens      ports.TokenSigner
	revocations ports.SessionRevocationStore
	nowFn       func() time.Time
}

type Dependencies struct {
	Config Config

	Users              ports.UserRepository
	Calendars          ports.CalendarRepository
	CalendarManagers   ports.CalendarManagerRepository
	Plans              ports.PlanRepository
	Participants       ports.ParticipantRepository
	Cards              ports.ProfessionalCardRepository
	Followers          ports.FollowerRepository
	CardManagers       ports.CardManagerRepository
	Connections        ports.ConnectionRepository
	ConnectionRequests ports.ConnectionRequestRepository
	Notifications      ports.NotificationRepository

	Hasher      ports.PasswordHasher
	Tokens      ports.TokenSigner
	Revocations ports.SessionRevocationStore
}

func NewService(deps Dependencies) *Service {
	cfg := deps.Config
	if cfg.ServiceName == "" {
		cfg.ServiceName = "planora"
	}
	if cfg.TokenTTL <= 0 {
		cfg.TokenTTL = 24 * time.Hour
	}
	return &Service{
		cfg:                cfg,
		users:              deps.Users,
		calendars:          deps.Calendars,
		calendarManagers:   deps.CalendarManagers,
		plans:              deps.Plans,
		participants:       deps.Participants,
		cards:              deps.Cards,
		followers:          deps.Followers,
		cardManagers:       deps.CardManagers,
		connections:        deps.Connections,
		connectionRequests: deps.ConnectionRequests,
		notifications:      deps.Notifications,
		hasher:             deps.Hasher,
		tokens:             deps.Tokens,
		revocations:        deps.Revocations,
		nowFn:              func() time.Time { return time.Now().UTC() },
	}
}
