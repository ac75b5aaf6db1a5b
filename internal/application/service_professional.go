package application

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/planora/planora/internal/domain"
)

// CreateCard persists a professional card and, atomically with it, a public
// calendar linked to the card.
func (s *Service) CreateCard(ctx context.Context, actor Actor, input CreateCardInput) (CreateCardResult, error) {
	if !actor.Authenticated() {
		return CreateCardResult{}, domain.ErrUnauthorized
	}
	input.Name = strings.TrimSpace(input.Name)
	input.Category = strings.TrimSpace(input.Category)
	input.Description = strings.TrimSpace(input.Description)
	if input.Name == "" || input.Category == "" || input.Description == "" {
		return CreateCardResult{}, fmt.Errorf("%w: name, category and description are required", domain.ErrInvalidInput)
	}

	now := s.nowFn()
	card := domain.ProfessionalCard{
		CardID:      uuid.New(),
		Name:        input.Name,
		Category:    input.Category,
		Description: input.Description,
		Address:     strings.TrimSpace(input.Address),
		Phone:       strings.TrimSpace(input.Phone),
		Email:       strings.TrimSpace(input.Email),
		Website:     strings.TrimSpace(input.Website),
		Instagram:   strings.TrimSpace(input.Instagram),
		Tags:        domain.NormalizeTags(input.Tags),
		OwnerID:     actor.UserID,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	cardID := card.CardID
	calendar := domain.Calendar{
		CalendarID:         uuid.New(),
		Name:               card.Name + " Calendar",
		Description:        "Calendar provisioned for the professional card",
		IsPublic:           true,
		Color:              domain.DefaultCalendarColor,
		OwnerID:            actor.UserID,
		ProfessionalCardID: &cardID,
		CreatedAt:          now,
		UpdatedAt:          now,
	}
	if err := s.cards.CreateWithCalendarTx(ctx, card, calendar); err != nil {
		return CreateCardResult{}, err
	}
	return CreateCardResult{Card: card, Calendar: calendar}, nil
}

// GetCard returns a card with its owner, public calendars carrying upcoming
// public plans, follower count and the caller's follow state. Auth is
// optional; an anonymous caller simply gets IsFollowing=false.
func (s *Service) GetCard(ctx context.Context, actor Actor, cardID uuid.UUID) (CardDetails, error) {
	if cardID == uuid.Nil {
		return CardDetails{}, fmt.Errorf("%w: card id is required", domain.ErrInvalidInput)
	}
	card, err := s.cards.GetByID(ctx, cardID)
	if err != nil {
		return CardDetails{}, err
	}
	owner, err := s.users.GetByID(ctx, card.OwnerID)
	if err != nil {
		return CardDetails{}, err
	}
	calendars, err := s.calendars.ListPublicByCard(ctx, cardID)
	if err != nil {
		return CardDetails{}, err
	}
	now := s.nowFn()
	details := CardDetails{Card: card, Owner: owner.Public(), Calendars: make([]CardCalendarPlans, 0, len(calendars))}
	for _, cal := range calendars {
		plans, err := s.plans.ListUpcomingPublicByCalendar(ctx, cal.CalendarID, now)
		if err != nil {
			return CardDetails{}, err
		}
		details.Calendars = append(details.Calendars, CardCalendarPlans{Calendar: cal, Plans: plans})
	}
	details.FollowerCount, err = s.followers.CountByCard(ctx, cardID)
	if err != nil {
		return CardDetails{}, err
	}
	if actor.Authenticated() {
		if _, err := s.followers.Get(ctx, actor.UserID, cardID); err == nil {
			details.IsFollowing = true
		}
	}
	return details, nil
}

// Follow subscribes the caller to a card. The Follower and Following rows
// are created together so the two tables never diverge.
func (s *Service) Follow(ctx context.Context, actor Actor, cardID uuid.UUID) error {
	if !actor.Authenticated() {
		return domain.ErrUnauthorized
	}
	if cardID == uuid.Nil {
		return fmt.Errorf("%w: card id is required", domain.ErrInvalidInput)
	}
	card, err := s.cards.GetByID(ctx, cardID)
	if err != nil {
		return err
	}
	if card.OwnerID == actor.UserID {
		return fmt.Errorf("%w: cannot follow your own card", domain.ErrInvalidInput)
	}
	switch _, err := s.followers.Get(ctx, actor.UserID, cardID); {
	case err == nil:
		return fmt.Errorf("%w: already following this card", domain.ErrConflict)
	case !errors.Is(err, domain.ErrNotFound):
		return err
	}

	now := s.nowFn()
	follower := domain.Follower{FollowerID: uuid.New(), UserID: actor.UserID, CardID: cardID, CreatedAt: now}
	following := domain.Following{FollowingID: uuid.New(), UserID: actor.UserID, CardID: cardID, CreatedAt: now}
	return s.followers.CreatePairTx(ctx, follower, following)
}

// Unfollow deletes the Follower row and any matching Following rows in one
// transaction.
func (s *Service) Unfollow(ctx context.Context, actor Actor, cardID uuid.UUID) error {
	if !actor.Authenticated() {
		return domain.ErrUnauthorized
	}
	if cardID == uuid.Nil {
		return fmt.Errorf("%w: card id is required", domain.ErrInvalidInput)
	}
	if _, err := s.followers.Get(ctx, actor.UserID, cardID); err != nil {
		return err
	}
	return s.followers.DeletePairTx(ctx, actor.UserID, cardID)
}

// ListManagedCards returns the caller's own cards, newest first.
func (s *Service) ListManagedCards(ctx context.Context, actor Actor) ([]CardSummary, error) {
	if !actor.Authenticated() {
		return nil, domain.ErrUnauthorized
	}
	cards, err := s.cards.ListByOwner(ctx, actor.UserID)
	if err != nil {
		return nil, err
	}
	return s.summarizeCards(ctx, cards, false, func(cardID uuid.UUID) ([]domain.Calendar, error) {
		return s.calendars.ListByCard(ctx, cardID)
	})
}

// ListFollowedCards returns the cards the caller follows, newest first,
// restricted to their public calendars.
func (s *Service) ListFollowedCards(ctx context.Context, actor Actor) ([]CardSummary, error) {
	if !actor.Authenticated() {
		return nil, domain.ErrUnauthorized
	}
	cards, err := s.cards.ListFollowedBy(ctx, actor.UserID)
	if err != nil {
		return nil, err
	}
	return s.summarizeCards(ctx, cards, true, func(cardID uuid.UUID) ([]domain.Calendar, error) {
		return s.calendars.ListPublicByCard(ctx, cardID)
	})
}

func (s *Service) summarizeCards(ctx context.Context, cards []domain.ProfessionalCard, following bool, listCalendars func(uuid.UUID) ([]domain.Calendar, error)) ([]CardSummary, error) {
	out := make([]CardSummary, 0, len(cards))
	for _, card := range cards {
		count, err := s.followers.CountByCard(ctx, card.CardID)
		if err != nil {
			return nil, err
		}
		calendars, err := listCalendars(card.CardID)
		if err != nil {
			return nil, err
		}
		out = append(out, CardSummary{Card: card, FollowerCount: count, Calendars: calendars, IsFollowing: following})
	}
	return out, nil
}
