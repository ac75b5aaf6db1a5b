package application

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/planora/planora/internal/domain"
)

// ListNotifications returns the caller's notifications, newest first.
func (s *Service) ListNotifications(ctx context.Context, actor Actor) ([]domain.Notification, error) {
	if !actor.Authenticated() {
		return nil, domain.ErrUnauthorized
	}
	return s.notifications.ListByUser(ctx, actor.UserID)
}

// MarkNotificationRead marks a notification read. Only the recipient may
// touch it; marking an already-read row is a no-op.
func (s *Service) MarkNotificationRead(ctx context.Context, actor Actor, notificationID uuid.UUID) (domain.Notification, error) {
	if !actor.Authenticated() {
		return domain.Notification{}, domain.ErrUnauthorized
	}
	if notificationID == uuid.Nil {
		return domain.Notification{}, fmt.Errorf("%w: notification id is required", domain.ErrInvalidInput)
	}
	row, err := s.notifications.GetByID(ctx, notificationID)
	if err != nil {
		return domain.Notification{}, err
	}
	if row.UserID != actor.UserID {
		return domain.Notification{}, domain.ErrForbidden
	}
	if row.IsRead() {
		return row, nil
	}
	row.MarkRead(s.nowFn())
	if err := s.notifications.Update(ctx, row); err != nil {
		return domain.Notification{}, err
	}
	return row, nil
}
