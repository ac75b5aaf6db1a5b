package domain

import (
	"time"

	"github.com/google/uuid"
)

// ProfessionalCard is a public-facing profile representing a business or
// professional offering plans through its own public calendar.
type ProfessionalCard struct {
	CardID      uuid.UUID
	Name        string
	Category    string
	Description string
	Address     string
	Phone       string
	Email       string
	Website     string
	Instagram   string
	Tags        []string
	OwnerID     uuid.UUID
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// Follower records that a user follows a professional card. It is always
// created and deleted together with the matching Following row.
type Follower struct {
	FollowerID uuid.UUID
	UserID     uuid.UUID
	CardID     uuid.UUID
	CreatedAt  time.Time
}

// Following is the user-side mirror of a Follower row.
type Following struct {
	FollowingID uuid.UUID
	UserID      uuid.UUID
	CardID      uuid.UUID
	CreatedAt   time.Time
}

// ProfessionalCardManager grants a user co-management rights over a card.
type ProfessionalCardManager struct {
	ManagerID uuid.UUID
	CardID    uuid.UUID
	UserID    uuid.UUID
	CreatedAt time.Time
}
