package application

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/google/uuid"

	"github.com/planora/planora/internal/domain"
)

// RequestParticipation creates a PENDING participation row for the caller.
// The owner cannot join their own plan, a (plan, user) pair may only exist
// once, and a full plan rejects new requests up front.
func (s *Service) RequestParticipation(ctx context.Context, actor Actor, planID uuid.UUID) (domain.PlanParticipant, error) {
	if !actor.Authenticated() {
		return domain.PlanParticipant{}, domain.ErrUnauthorized
	}
	if planID == uuid.Nil {
		return domain.PlanParticipant{}, fmt.Errorf("%w: plan id is required", domain.ErrInvalidInput)
	}
	plan, err := s.plans.GetByID(ctx, planID)
	if err != nil {
		return domain.PlanParticipant{}, err
	}
	if plan.OwnerID == actor.UserID {
		return domain.PlanParticipant{}, fmt.Errorf("%w: cannot join your own plan", domain.ErrInvalidInput)
	}
	if plan.MaxParticipants > 0 {
		approved, err := s.participants.CountApproved(ctx, planID)
		if err != nil {
			return domain.PlanParticipant{}, err
		}
		if !plan.HasCapacityFor(approved) {
			return domain.PlanParticipant{}, domain.ErrCapacityReached
		}
	}
	switch _, err := s.participants.GetByPlanUser(ctx, planID, actor.UserID); {
	case err == nil:
		return domain.PlanParticipant{}, fmt.Errorf("%w: participation request already exists", domain.ErrConflict)
	case !errors.Is(err, domain.ErrNotFound):
		return domain.PlanParticipant{}, err
	}

	now := s.nowFn()
	row := domain.PlanParticipant{
		ParticipantID: uuid.New(),
		PlanID:        planID,
		UserID:        actor.UserID,
		Status:        domain.ParticipantStatusPending,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	if err := s.participants.Create(ctx, row); err != nil {
		return domain.PlanParticipant{}, err
	}
	s.notifyParticipationRequested(ctx, plan, actor)
	return row, nil
}

// ManageParticipation lets the plan owner approve or reject a pending
// request. Approval recounts approved rows atomically with the update so
// concurrent approvals cannot overbook the plan.
func (s *Service) ManageParticipation(ctx context.Context, actor Actor, input ManageParticipationInput) (domain.PlanParticipant, error) {
	if !actor.Authenticated() {
		return domain.PlanParticipant{}, domain.ErrUnauthorized
	}
	if input.ParticipationID == uuid.Nil {
		return domain.PlanParticipant{}, fmt.Errorf("%w: participation id is required", domain.ErrInvalidInput)
	}
	action := strings.ToUpper(strings.TrimSpace(input.Action))
	if !domain.IsValidParticipationAction(action) {
		return domain.PlanParticipant{}, fmt.Errorf("%w: action must be APPROVE or REJECT", domain.ErrInvalidInput)
	}

	row, err := s.participants.GetByID(ctx, input.ParticipationID)
	if err != nil {
		return domain.PlanParticipant{}, err
	}
	plan, err := s.plans.GetByID(ctx, row.PlanID)
	if err != nil {
		return domain.PlanParticipant{}, err
	}
	if plan.OwnerID != actor.UserID {
		return domain.PlanParticipant{}, domain.ErrForbidden
	}
	if row.Decided() {
		return domain.PlanParticipant{}, fmt.Errorf("%w: participation already decided", domain.ErrConflict)
	}

	status := domain.ParticipantStatusRejected
	capacity := 0
	if action == domain.ParticipationActionApprove {
		status = domain.ParticipantStatusApproved
		capacity = plan.MaxParticipants
	}
	decided, err := s.participants.Decide(ctx, row.ParticipantID, status, capacity, s.nowFn())
	if err != nil {
		return domain.PlanParticipant{}, err
	}
	slog.Default().InfoContext(ctx, "participation decided",
		"module", "application",
		"layer", "application",
		"operation", "manage_participation",
		"outcome", "success",
		"plan_id", plan.PlanID,
		"participant_id", decided.ParticipantID,
		"status", decided.Status,
	)
	s.notifyParticipationDecided(ctx, plan, decided)
	return decided, nil
}

func (s *Service) notifyParticipationRequested(ctx context.Context, plan domain.Plan, actor Actor) {
	requester, err := s.users.GetByID(ctx, actor.UserID)
	if err != nil {
		return
	}
	s.createNotification(ctx, domain.Notification{
		UserID:  plan.OwnerID,
		Type:    domain.NotificationPlanParticipation,
		Title:   "New Participation Request",
		Message: fmt.Sprintf("%s wants to join %s", requester.DisplayName(), plan.Title),
		Data: map[string]any{
			"planId": plan.PlanID.String(),
			"userId": requester.UserID.String(),
		},
	})
}

func (s *Service) notifyParticipationDecided(ctx context.Context, plan domain.Plan, row domain.PlanParticipant) {
	verb := "approved"
	if row.Status == domain.ParticipantStatusRejected {
		verb = "rejected"
	}
	s.createNotification(ctx, domain.Notification{
		UserID:  row.UserID,
		Type:    domain.NotificationParticipationDecided,
		Title:   "Participation Request Updated",
		Message: fmt.Sprintf("Your request to join %s was %s", plan.Title, verb),
		Data: map[string]any{
			"planId": plan.PlanID.String(),
			"status": row.Status,
		},
	})
}

// createNotification persists a notification on a best-effort basis; a
// failed side-channel write never fails the primary operation.
func (s *Service) createNotification(ctx context.Context, notif domain.Notification) {
	notif.NotificationID = uuid.New()
	notif.CreatedAt = s.nowFn()
	if err := s.notifications.Create(ctx, notif); err != nil {
		slog.Default().WarnContext(ctx, "notification write failed",
			"module", "application",
			"layer", "application",
			"operation", "create_notification",
			"outcome", "failure",
			"notification_type", notif.Type,
		)
	}
}
