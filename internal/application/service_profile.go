package application

import (
	"context"

	"github.com/planora/planora/internal/domain"
)

// GetProfile aggregates the caller's identity with headline counts.
func (s *Service) GetProfile(ctx context.Context, actor Actor) (ProfileSummary, error) {
	if !actor.Authenticated() {
		return ProfileSummary{}, domain.ErrUnauthorized
	}
	user, err := s.users.GetByID(ctx, actor.UserID)
	if err != nil {
		return ProfileSummary{}, err
	}
	calendars, err := s.calendars.ListByOwner(ctx, actor.UserID)
	if err != nil {
		return ProfileSummary{}, err
	}
	plans, err := s.plans.ListByOwner(ctx, actor.UserID)
	if err != nil {
		return ProfileSummary{}, err
	}
	cards, err := s.cards.ListByOwner(ctx, actor.UserID)
	if err != nil {
		return ProfileSummary{}, err
	}
	connectionCount, err := s.connections.CountByUser(ctx, actor.UserID)
	if err != nil {
		return ProfileSummary{}, err
	}
	followedCount, err := s.followers.CountFollowedBy(ctx, actor.UserID)
	if err != nil {
		return ProfileSummary{}, err
	}
	return ProfileSummary{
		User:              user,
		CalendarCount:     len(calendars),
		PlanCount:         len(plans),
		CardCount:         len(cards),
		ConnectionCount:   connectionCount,
		FollowedCardCount: followedCount,
	}, nil
}

// GetProfilePlans returns the caller's created plans and the plans they
// participate in with APPROVED status, each with calendar context and the
// current participant count.
func (s *Service) GetProfilePlans(ctx context.Context, actor Actor) (ProfilePlans, error) {
	if !actor.Authenticated() {
		return ProfilePlans{}, domain.ErrUnauthorized
	}
	created, err := s.plans.ListByOwner(ctx, actor.UserID)
	if err != nil {
		return ProfilePlans{}, err
	}
	participating, err := s.plans.ListByApprovedParticipant(ctx, actor.UserID)
	if err != nil {
		return ProfilePlans{}, err
	}
	out := ProfilePlans{}
	out.Created, err = s.annotatePlans(ctx, created)
	if err != nil {
		return ProfilePlans{}, err
	}
	out.Participating, err = s.annotatePlans(ctx, participating)
	if err != nil {
		return ProfilePlans{}, err
	}
	return out, nil
}

// GetProfileCards returns the caller's managed and followed cards together.
func (s *Service) GetProfileCards(ctx context.Context, actor Actor) (ProfileCards, error) {
	if !actor.Authenticated() {
		return ProfileCards{}, domain.ErrUnauthorized
	}
	managed, err := s.ListManagedCards(ctx, actor)
	if err != nil {
		return ProfileCards{}, err
	}
	followed, err := s.ListFollowedCards(ctx, actor)
	if err != nil {
		return ProfileCards{}, err
	}
	return ProfileCards{Managed: managed, Followed: followed}, nil
}

func (s *Service) annotatePlans(ctx context.Context, plans []domain.Plan) ([]ProfilePlan, error) {
	out := make([]ProfilePlan, 0, len(plans))
	for _, plan := range plans {
		count, err := s.participants.CountByPlan(ctx, plan.PlanID)
		if err != nil {
			return nil, err
		}
		row := ProfilePlan{Plan: plan, ParticipantCount: count, CalendarColor: domain.DefaultCalendarColor}
		if cal, err := s.calendars.GetByID(ctx, plan.CalendarID); err == nil {
			row.CalendarName = cal.Name
			if cal.Color != "" {
				row.CalendarColor = cal.Color
			}
			if cal.ProfessionalCardID != nil {
				if card, err := s.cards.GetByID(ctx, *cal.ProfessionalCardID); err == nil {
					row.CardName = card.Name
				}
			}
		}
		out = append(out, row)
	}
	return out, nil
}
