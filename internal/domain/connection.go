package domain

import (
	"time"

	"github.com/google/uuid"
)

const (
	ConnectionRequestPending  = "PENDING"
	ConnectionRequestAccepted = "ACCEPTED"
	ConnectionRequestRejected = "REJECTED"
)

// Connection is a directed edge from the requester to the acceptor. Listing
// merges both directions, so a single row makes the pair mutually visible.
type Connection struct {
	ConnectionID    uuid.UUID
	UserID          uuid.UUID
	ConnectedUserID uuid.UUID
	CreatedAt       time.Time
}

// ConnectionRequest is a pending invitation to form a connection.
// Accepting creates the Connection row; rejecting only updates status.
type ConnectionRequest struct {
	RequestID uuid.UUID
	FromID    uuid.UUID
	ToID      uuid.UUID
	Status    string
	CreatedAt time.Time
	UpdatedAt time.Time
}
