package application

import (
	"context"

	"github.com/google/uuid"

	"github.com/planora/planora/internal/domain"
)

// ListCalendars returns the caller's calendar directory: owned calendars
// plus public calendars of professional cards the caller follows.
func (s *Service) ListCalendars(ctx context.Context, actor Actor) ([]CalendarSummary, error) {
	if !actor.Authenticated() {
		return nil, domain.ErrUnauthorized
	}
	rows, err := s.calendars.ListVisible(ctx, actor.UserID)
	if err != nil {
		return nil, err
	}
	out := make([]CalendarSummary, 0, len(rows))
	for _, cal := range rows {
		summary := CalendarSummary{Calendar: cal}
		if cal.ProfessionalCardID != nil {
			if card, err := s.cards.GetByID(ctx, *cal.ProfessionalCardID); err == nil {
				summary.CardName = card.Name
			}
		}
		out = append(out, summary)
	}
	return out, nil
}

// canManageCalendar reports whether the user may publish on the calendar:
// the owner always may; a calendar manager or a manager of the owning
// professional card may when manager delegation applies.
func (s *Service) canManageCalendar(ctx context.Context, cal domain.Calendar, userID uuid.UUID) (bool, error) {
	if cal.OwnerID == userID {
		return true, nil
	}
	ok, err := s.calendarManagers.Exists(ctx, cal.CalendarID, userID)
	if err != nil || ok {
		return ok, err
	}
	if cal.ProfessionalCardID == nil {
		return false, nil
	}
	return s.cardManagers.Exists(ctx, *cal.ProfessionalCardID, userID)
}
