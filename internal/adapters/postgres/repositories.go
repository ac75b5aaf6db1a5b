package postgres

import (
	"gorm.io/gorm"

	"github.com/planora/planora/internal/ports"
)

// Repositories bundles every Postgres-backed port implementation.
type Repositories struct {
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
}

func NewRepositories(db *gorm.DB) Repositories {
	return Repositories{
		Users:              &userRepository{db: db},
		Calendars:          &calendarRepository{db: db},
		CalendarManagers:   &calendarManagerRepository{db: db},
		Plans:              &planRepository{db: db},
		Participants:       &participantRepository{db: db},
		Cards:              &cardRepository{db: db},
		Followers:          &followerRepository{db: db},
		CardManagers:       &cardManagerRepository{db: db},
		Connections:        &connectionRepository{db: db},
		ConnectionRequests: &connectionRequestRepository{db: db},
		Notifications:      &notificationRepository{db: db},
	}
}
