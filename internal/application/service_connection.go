package application

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/planora/planora/internal/domain"
)

// RequestConnection creates a PENDING request plus a notification to the
// target in one transaction. Existing edges or pending requests in either
// direction are rejected up front.
func (s *Service) RequestConnection(ctx context.Context, actor Actor, targetEmail string) (domain.ConnectionRequest, error) {
	if !actor.Authenticated() {
		return domain.ConnectionRequest{}, domain.ErrUnauthorized
	}
	targetEmail = domain.NormalizeEmail(targetEmail)
	if targetEmail == "" {
		return domain.ConnectionRequest{}, fmt.Errorf("%w: email is required", domain.ErrInvalidInput)
	}
	target, err := s.users.GetByEmail(ctx, targetEmail)
	if err != nil {
		return domain.ConnectionRequest{}, err
	}
	if target.UserID == actor.UserID {
		return domain.ConnectionRequest{}, fmt.Errorf("%w: cannot connect to yourself", domain.ErrInvalidInput)
	}
	if connected, err := s.connections.Exists(ctx, actor.UserID, target.UserID); err != nil {
		return domain.ConnectionRequest{}, err
	} else if connected {
		return domain.ConnectionRequest{}, fmt.Errorf("%w: already connected", domain.ErrConflict)
	}
	if pending, err := s.connectionRequests.ExistsPendingBetween(ctx, actor.UserID, target.UserID); err != nil {
		return domain.ConnectionRequest{}, err
	} else if pending {
		return domain.ConnectionRequest{}, fmt.Errorf("%w: a pending request already exists", domain.ErrConflict)
	}

	sender, err := s.users.GetByID(ctx, actor.UserID)
	if err != nil {
		return domain.ConnectionRequest{}, err
	}
	now := s.nowFn()
	req := domain.ConnectionRequest{
		RequestID: uuid.New(),
		FromID:    actor.UserID,
		ToID:      target.UserID,
		Status:    domain.ConnectionRequestPending,
		CreatedAt: now,
		UpdatedAt: now,
	}
	notif := domain.Notification{
		NotificationID: uuid.New(),
		UserID:         target.UserID,
		Type:           domain.NotificationConnectionRequest,
		Title:          "New Connection Request",
		Message:        fmt.Sprintf("%s sent you a connection request", sender.DisplayName()),
		Data: map[string]any{
			"requestId": req.RequestID.String(),
			"fromUser":  sender.Public(),
		},
		CreatedAt: now,
	}
	if err := s.connectionRequests.CreateWithNotificationTx(ctx, req, notif); err != nil {
		return domain.ConnectionRequest{}, err
	}
	return req, nil
}

// ListConnections merges both edge directions into one undirected peer list.
func (s *Service) ListConnections(ctx context.Context, actor Actor) ([]domain.PublicUser, error) {
	if !actor.Authenticated() {
		return nil, domain.ErrUnauthorized
	}
	edges, err := s.connections.ListEdges(ctx, actor.UserID)
	if err != nil {
		return nil, err
	}
	out := make([]domain.PublicUser, 0, len(edges))
	for _, edge := range edges {
		peerID := edge.ConnectedUserID
		if peerID == actor.UserID {
			peerID = edge.UserID
		}
		peer, err := s.users.GetByID(ctx, peerID)
		if err != nil {
			continue
		}
		out = append(out, peer.Public())
	}
	return out, nil
}

// ListConnectionRequests returns the caller's incoming pending requests
// with sender identity, newest first.
func (s *Service) ListConnectionRequests(ctx context.Context, actor Actor) ([]ConnectionRequestDetails, error) {
	if !actor.Authenticated() {
		return nil, domain.ErrUnauthorized
	}
	rows, err := s.connectionRequests.ListPendingTo(ctx, actor.UserID)
	if err != nil {
		return nil, err
	}
	out := make([]ConnectionRequestDetails, 0, len(rows))
	for _, row := range rows {
		from, err := s.users.GetByID(ctx, row.FromID)
		if err != nil {
			continue
		}
		out = append(out, ConnectionRequestDetails{Request: row, From: from.Public()})
	}
	return out, nil
}

// AcceptConnectionRequest applies the three-part write atomically: the
// request becomes ACCEPTED, one directed edge from requester to recipient
// is created, and the requester is notified. Only the designated recipient
// may accept.
func (s *Service) AcceptConnectionRequest(ctx context.Context, actor Actor, requestID uuid.UUID) error {
	req, recipient, err := s.loadDecidableRequest(ctx, actor, requestID)
	if err != nil {
		return err
	}
	now := s.nowFn()
	edge := domain.Connection{
		ConnectionID:    uuid.New(),
		UserID:          req.FromID,
		ConnectedUserID: req.ToID,
		CreatedAt:       now,
	}
	notif := domain.Notification{
		NotificationID: uuid.New(),
		UserID:         req.FromID,
		Type:           domain.NotificationConnectionAccepted,
		Title:          "Connection Request Accepted",
		Message:        fmt.Sprintf("%s accepted your connection request", recipient.DisplayName()),
		Data:           map[string]any{"user": recipient.Public()},
		CreatedAt:      now,
	}
	return s.connectionRequests.AcceptTx(ctx, req.RequestID, edge, notif, now)
}

// RejectConnectionRequest flips the request to REJECTED and notifies the
// requester; no edge is created.
func (s *Service) RejectConnectionRequest(ctx context.Context, actor Actor, requestID uuid.UUID) error {
	req, recipient, err := s.loadDecidableRequest(ctx, actor, requestID)
	if err != nil {
		return err
	}
	now := s.nowFn()
	notif := domain.Notification{
		NotificationID: uuid.New(),
		UserID:         req.FromID,
		Type:           domain.NotificationConnectionRejected,
		Title:          "Connection Request Rejected",
		Message:        fmt.Sprintf("%s rejected your connection request", recipient.DisplayName()),
		Data:           map[string]any{"user": recipient.Public()},
		CreatedAt:      now,
	}
	return s.connectionRequests.RejectTx(ctx, req.RequestID, notif, now)
}

func (s *Service) loadDecidableRequest(ctx context.Context, actor Actor, requestID uuid.UUID) (domain.ConnectionRequest, domain.User, error) {
	if !actor.Authenticated() {
		return domain.ConnectionRequest{}, domain.User{}, domain.ErrUnauthorized
	}
	if requestID == uuid.Nil {
		return domain.ConnectionRequest{}, domain.User{}, fmt.Errorf("%w: request id is required", domain.ErrInvalidInput)
	}
	req, err := s.connectionRequests.GetByID(ctx, requestID)
	if err != nil {
		return domain.ConnectionRequest{}, domain.User{}, err
	}
	if req.ToID != actor.UserID {
		return domain.ConnectionRequest{}, domain.User{}, domain.ErrForbidden
	}
	if req.Status != domain.ConnectionRequestPending {
		return domain.ConnectionRequest{}, domain.User{}, fmt.Errorf("%w: request already decided", domain.ErrConflict)
	}
	recipient, err := s.users.GetByID(ctx, actor.UserID)
	if err != nil {
		return domain.ConnectionRequest{}, domain.User{}, err
	}
	return req, recipient, nil
}
