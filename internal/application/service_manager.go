package application

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/planora/planora/internal/domain"
)

// AddCalendarManager grants co-management over a calendar. The caller must
// own the calendar or already manage the owning professional card, and the
// grantee must be an established connection of the caller.
func (s *Service) AddCalendarManager(ctx context.Context, actor Actor, calendarID uuid.UUID, granteeEmail string) (domain.PublicUser, error) {
	if !actor.Authenticated() {
		return domain.PublicUser{}, domain.ErrUnauthorized
	}
	cal, err := s.calendars.GetByID(ctx, calendarID)
	if err != nil {
		return domain.PublicUser{}, err
	}
	allowed := cal.OwnerID == actor.UserID
	if !allowed && cal.ProfessionalCardID != nil {
		allowed, err = s.cardManagers.Exists(ctx, *cal.ProfessionalCardID, actor.UserID)
		if err != nil {
			return domain.PublicUser{}, err
		}
	}
	if !allowed {
		return domain.PublicUser{}, domain.ErrForbidden
	}

	grantee, err := s.resolveConnectedGrantee(ctx, actor, granteeEmail)
	if err != nil {
		return domain.PublicUser{}, err
	}
	if ok, err := s.calendarManagers.Exists(ctx, calendarID, grantee.UserID); err != nil {
		return domain.PublicUser{}, err
	} else if ok {
		return domain.PublicUser{}, fmt.Errorf("%w: user already manages this calendar", domain.ErrConflict)
	}

	row := domain.CalendarManager{
		ManagerID:  uuid.New(),
		CalendarID: calendarID,
		UserID:     grantee.UserID,
		CreatedAt:  s.nowFn(),
	}
	if err := s.calendarManagers.Create(ctx, row); err != nil {
		return domain.PublicUser{}, err
	}
	return grantee.Public(), nil
}

// ListCalendarManagers is gated like the write path: only the calendar
// owner or an authorized manager may read the manager roster.
func (s *Service) ListCalendarManagers(ctx context.Context, actor Actor, calendarID uuid.UUID) ([]domain.PublicUser, error) {
	if !actor.Authenticated() {
		return nil, domain.ErrUnauthorized
	}
	cal, err := s.calendars.GetByID(ctx, calendarID)
	if err != nil {
		return nil, err
	}
	allowed, err := s.canManageCalendar(ctx, cal, actor.UserID)
	if err != nil {
		return nil, err
	}
	if !allowed {
		return nil, domain.ErrForbidden
	}
	rows, err := s.calendarManagers.ListByCalendar(ctx, calendarID)
	if err != nil {
		return nil, err
	}
	out := make([]domain.PublicUser, 0, len(rows))
	for _, row := range rows {
		user, err := s.users.GetByID(ctx, row.UserID)
		if err != nil {
			continue
		}
		out = append(out, user.Public())
	}
	return out, nil
}

// AddCardManager grants co-management over a professional card. Only the
// card owner may delegate, and only to an established connection.
func (s *Service) AddCardManager(ctx context.Context, actor Actor, cardID uuid.UUID, granteeEmail string) (domain.PublicUser, error) {
	if !actor.Authenticated() {
		return domain.PublicUser{}, domain.ErrUnauthorized
	}
	card, err := s.cards.GetByID(ctx, cardID)
	if err != nil {
		return domain.PublicUser{}, err
	}
	if card.OwnerID != actor.UserID {
		return domain.PublicUser{}, domain.ErrForbidden
	}

	grantee, err := s.resolveConnectedGrantee(ctx, actor, granteeEmail)
	if err != nil {
		return domain.PublicUser{}, err
	}
	if ok, err := s.cardManagers.Exists(ctx, cardID, grantee.UserID); err != nil {
		return domain.PublicUser{}, err
	} else if ok {
		return domain.PublicUser{}, fmt.Errorf("%w: user already manages this card", domain.ErrConflict)
	}

	row := domain.ProfessionalCardManager{
		ManagerID: uuid.New(),
		CardID:    cardID,
		UserID:    grantee.UserID,
		CreatedAt: s.nowFn(),
	}
	if err := s.cardManagers.Create(ctx, row); err != nil {
		return domain.PublicUser{}, err
	}
	return grantee.Public(), nil
}

// ListCardManagers is restricted to the card owner and existing managers.
func (s *Service) ListCardManagers(ctx context.Context, actor Actor, cardID uuid.UUID) ([]domain.PublicUser, error) {
	if !actor.Authenticated() {
		return nil, domain.ErrUnauthorized
	}
	card, err := s.cards.GetByID(ctx, cardID)
	if err != nil {
		return nil, err
	}
	allowed := card.OwnerID == actor.UserID
	if !allowed {
		allowed, err = s.cardManagers.Exists(ctx, cardID, actor.UserID)
		if err != nil {
			return nil, err
		}
	}
	if !allowed {
		return nil, domain.ErrForbidden
	}
	rows, err := s.cardManagers.ListByCard(ctx, cardID)
	if err != nil {
		return nil, err
	}
	out := make([]domain.PublicUser, 0, len(rows))
	for _, row := range rows {
		user, err := s.users.GetByID(ctx, row.UserID)
		if err != nil {
			continue
		}
		out = append(out, user.Public())
	}
	return out, nil
}

// resolveConnectedGrantee looks up the target user by email and verifies an
// existing connection edge. Delegation stays inside the caller's trusted
// network.
func (s *Service) resolveConnectedGrantee(ctx context.Context, actor Actor, email string) (domain.User, error) {
	email = domain.NormalizeEmail(email)
	if email == "" {
		return domain.User{}, fmt.Errorf("%w: email is required", domain.ErrInvalidInput)
	}
	grantee, err := s.users.GetByEmail(ctx, email)
	if err != nil {
		return domain.User{}, err
	}
	connected, err := s.connections.Exists(ctx, actor.UserID, grantee.UserID)
	if err != nil {
		return domain.User{}, err
	}
	if !connected {
		return domain.User{}, fmt.Errorf("%w: only your connections can be added as managers", domain.ErrForbidden)
	}
	return grantee, nil
}
