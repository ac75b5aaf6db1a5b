package domain

import (
	"time"

	"github.com/google/uuid"
)

const (
	NotificationConnectionRequest    = "CONNECTION_REQUEST"
	NotificationConnectionAccepted   = "CONNECTION_ACCEPTED"
	NotificationConnectionRejected   = "CONNECTION_REJECTED"
	NotificationPlanParticipation    = "PLAN_PARTICIPATION"
	NotificationParticipationDecided = "PARTICIPATION_DECIDED"
)

// Notification is a persisted in-app message. Data carries an opaque payload
// the UI uses to link back to the triggering entity.
type Notification struct {
	NotificationID uuid.UUID
	UserID         uuid.UUID
	Type           string
	Title          string
	Message        string
	Data           map[string]any
	CreatedAt      time.Time
	ReadAt         *time.Time
}

func (n Notification) IsRead() bool { return n.ReadAt != nil }

func (n *Notification) MarkRead(at time.Time) {
	if n.ReadAt == nil {
		t := at.UTC()
		n.ReadAt = &t
	}
}
