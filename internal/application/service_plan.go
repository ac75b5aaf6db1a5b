package application

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/google/uuid"

	"github.com/planora/planora/internal/domain"
)

// CreatePlan validates and persists a plan under the target calendar. Both
// creation endpoints run through here; AllowManagers and Visibility on the
// input are the only differences between them.
func (s *Service) CreatePlan(ctx context.Context, actor Actor, input CreatePlanInput) (domain.Plan, error) {
	if !actor.Authenticated() {
		return domain.Plan{}, domain.ErrUnauthorized
	}
	input.Title = strings.TrimSpace(input.Title)
	if input.Title == "" || input.CalendarID == uuid.Nil || input.StartDate.IsZero() || input.EndDate.IsZero() {
		return domain.Plan{}, fmt.Errorf("%w: title, start date, end date and calendar are required", domain.ErrInvalidInput)
	}
	now := s.nowFn()
	if err := domain.ValidatePlanWindow(input.StartDate, input.EndDate, now); err != nil {
		return domain.Plan{}, err
	}
	if input.MaxParticipants < 0 {
		return domain.Plan{}, fmt.Errorf("%w: max participants must be positive", domain.ErrInvalidInput)
	}
	if input.Price < 0 {
		return domain.Plan{}, fmt.Errorf("%w: price must not be negative", domain.ErrInvalidInput)
	}
	visibility := strings.ToUpper(strings.TrimSpace(input.Visibility))
	if visibility == "" {
		visibility = domain.VisibilityPublic
	}
	if !domain.IsValidVisibility(visibility) {
		return domain.Plan{}, fmt.Errorf("%w: invalid visibility", domain.ErrInvalidInput)
	}

	cal, err := s.calendars.GetByID(ctx, input.CalendarID)
	if err != nil {
		return domain.Plan{}, err
	}
	allowed := cal.OwnerID == actor.UserID
	if !allowed && input.AllowManagers {
		allowed, err = s.canManageCalendar(ctx, cal, actor.UserID)
		if err != nil {
			return domain.Plan{}, err
		}
	}
	if !allowed {
		return domain.Plan{}, domain.ErrForbidden
	}

	plan := domain.Plan{
		PlanID:          uuid.New(),
		Title:           input.Title,
		Description:     strings.TrimSpace(input.Description),
		StartDate:       input.StartDate.UTC(),
		EndDate:         input.EndDate.UTC(),
		Location:        strings.TrimSpace(input.Location),
		OnlineLink:      strings.TrimSpace(input.OnlineLink),
		MaxParticipants: input.MaxParticipants,
		Price:           input.Price,
		Tags:            domain.NormalizeTags(input.Tags),
		Visibility:      visibility,
		OwnerID:         actor.UserID,
		CalendarID:      cal.CalendarID,
		CreatedAt:       now,
		UpdatedAt:       now,
	}
	if err := s.plans.Create(ctx, plan); err != nil {
		return domain.Plan{}, err
	}
	slog.Default().InfoContext(ctx, "plan created",
		"module", "application",
		"layer", "application",
		"operation", "create_plan",
		"outcome", "success",
		"plan_id", plan.PlanID,
		"calendar_id", plan.CalendarID,
		"visibility", plan.Visibility,
	)
	return plan, nil
}

// GetPlan returns a plan with its owner and participants. Public plans are
// visible to anyone; non-public plans only to their owner.
func (s *Service) GetPlan(ctx context.Context, actor Actor, planID uuid.UUID) (PlanDetails, error) {
	if planID == uuid.Nil {
		return PlanDetails{}, fmt.Errorf("%w: plan id is required", domain.ErrInvalidInput)
	}
	plan, err := s.plans.GetByID(ctx, planID)
	if err != nil {
		return PlanDetails{}, err
	}
	if !plan.IsPublic() && plan.OwnerID != actor.UserID {
		return PlanDetails{}, domain.ErrForbidden
	}

	owner, err := s.users.GetByID(ctx, plan.OwnerID)
	if err != nil {
		return PlanDetails{}, err
	}
	rows, err := s.participants.ListByPlan(ctx, planID)
	if err != nil {
		return PlanDetails{}, err
	}
	details := PlanDetails{Plan: plan, Owner: owner.Public(), Participants: make([]ParticipantDetails, 0, len(rows))}
	for _, p := range rows {
		user, err := s.users.GetByID(ctx, p.UserID)
		if err != nil {
			continue
		}
		details.Participants = append(details.Participants, ParticipantDetails{Participant: p, User: user.Public()})
	}
	return details, nil
}

// ListEvents returns the caller's discovery feed in calendar-event shape.
func (s *Service) ListEvents(ctx context.Context, actor Actor) ([]CalendarEvent, error) {
	if !actor.Authenticated() {
		return nil, domain.ErrUnauthorized
	}
	plans, err := s.plans.ListVisibleTo(ctx, actor.UserID)
	if err != nil {
		return nil, err
	}
	events := make([]CalendarEvent, 0, len(plans))
	for _, plan := range plans {
		event := CalendarEvent{
			PlanID:     plan.PlanID,
			Title:      plan.Title,
			Start:      plan.StartDate,
			End:        plan.EndDate,
			CalendarID: plan.CalendarID,
			Color:      domain.DefaultCalendarColor,
		}
		if cal, err := s.calendars.GetByID(ctx, plan.CalendarID); err == nil {
			event.CalendarName = cal.Name
			if cal.Color != "" {
				event.Color = cal.Color
			}
		}
		events = append(events, event)
	}
	return events, nil
}
