package domain

import (
	"time"

	"github.com/google/uuid"
)

// DefaultCalendarColor is applied to auto-provisioned calendars.
const DefaultCalendarColor = "#4F46E5"

// Calendar is a named container of plans. A personal calendar is created at
// registration; a professional calendar is created with its ProfessionalCard
// and carries that card's ID.
type Calendar struct {
	CalendarID         uuid.UUID
	Name               string
	Description        string
	IsPublic           bool
	Color              string
	OwnerID            uuid.UUID
	ProfessionalCardID *uuid.UUID
	CreatedAt          time.Time
	UpdatedAt          time.Time
}

// CalendarManager grants a user co-management rights over a calendar.
type CalendarManager struct {
	ManagerID  uuid.UUID
	CalendarID uuid.UUID
	UserID     uuid.UUID
	CreatedAt  time.Time
}
