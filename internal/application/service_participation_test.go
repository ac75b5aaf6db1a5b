package application_test

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"

	"github.com/planora/planora/internal/application"
	"github.com/planora/planora/internal/domain"
)

func TestParticipation_RequestApproveReject(t *testing.T) {
	svc, _ := newTestService()
	ctx := context.Background()
	_, alice := registerUser(t, svc, "alice")
	_, bob := registerUser(t, svc, "bob")
	_, carol := registerUser(t, svc, "carol")
	cal := personalCalendar(t, svc, alice)
	plan := createTestPlan(t, svc, alice, cal.CalendarID, domain.VisibilityPublic, 0)

	bobRow, err := svc.RequestParticipation(ctx, bob, plan.PlanID)
	if err != nil {
		t.Fatalf("bob request: %v", err)
	}
	if bobRow.Status != domain.ParticipantStatusPending {
		t.Fatalf("expected PENDING, got %q", bobRow.Status)
	}
	carolRow, err := svc.RequestParticipation(ctx, carol, plan.PlanID)
	if err != nil {
		t.Fatalf("carol request: %v", err)
	}

	approved, err := svc.ManageParticipation(ctx, alice, application.ManageParticipationInput{
		ParticipationID: bobRow.ParticipantID,
		Action:          "approve",
	})
	if err != nil {
		t.Fatalf("approve: %v", err)
	}
	if approved.Status != domain.ParticipantStatusApproved {
		t.Fatalf("expected APPROVED, got %q", approved.Status)
	}

	rejected, err := svc.ManageParticipation(ctx, alice, application.ManageParticipationInput{
		ParticipationID: carolRow.ParticipantID,
		Action:          domain.ParticipationActionReject,
	})
	if err != nil {
		t.Fatalf("reject: %v", err)
	}
	if rejected.Status != domain.ParticipantStatusRejected {
		t.Fatalf("expected REJECTED, got %q", rejected.Status)
	}

	// Both sides got notified.
	bobNotifs, err := svc.ListNotifications(ctx, bob)
	if err != nil {
		t.Fatalf("bob notifications: %v", err)
	}
	if len(bobNotifs) != 1 || bobNotifs[0].Type != domain.NotificationParticipationDecided {
		t.Fatalf("bob expected one decision notification, got %+v", bobNotifs)
	}
	aliceNotifs, err := svc.ListNotifications(ctx, alice)
	if err != nil {
		t.Fatalf("alice notifications: %v", err)
	}
	if len(aliceNotifs) != 2 {
		t.Fatalf("alice expected two request notifications, got %d", len(aliceNotifs))
	}
}

func TestParticipation_RequestGuards(t *testing.T) {
	svc, _ := newTestService()
	ctx := context.Background()
	_, alice := registerUser(t, svc, "alice")
	_, bob := registerUser(t, svc, "bob")
	cal := personalCalendar(t, svc, alice)
	plan := createTestPlan(t, svc, alice, cal.CalendarID, domain.VisibilityPublic, 0)

	if _, err := svc.RequestParticipation(ctx, alice, plan.PlanID); !errors.Is(err, domain.ErrInvalidInput) {
		t.Fatalf("owner joining own plan: expected invalid input, got %v", err)
	}
	if _, err := svc.RequestParticipation(ctx, bob, plan.PlanID); err != nil {
		t.Fatalf("first request: %v", err)
	}
	if _, err := svc.RequestParticipation(ctx, bob, plan.PlanID); !errors.Is(err, domain.ErrConflict) {
		t.Fatalf("duplicate request: expected conflict, got %v", err)
	}
	if _, err := svc.RequestParticipation(ctx, bob, uuid.New()); !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("missing plan: expected not found, got %v", err)
	}
}

func TestParticipation_CapacityReached(t *testing.T) {
	svc, _ := newTestService()
	ctx := context.Background()
	_, alice := registerUser(t, svc, "alice")
	_, bob := registerUser(t, svc, "bob")
	_, carol := registerUser(t, svc, "carol")
	cal := personalCalendar(t, svc, alice)
	plan := createTestPlan(t, svc, alice, cal.CalendarID, domain.VisibilityPublic, 1)

	bobRow, err := svc.RequestParticipation(ctx, bob, plan.PlanID)
	if err != nil {
		t.Fatalf("bob request: %v", err)
	}
	carolRow, err := svc.RequestParticipation(ctx, carol, plan.PlanID)
	if err != nil {
		t.Fatalf("carol request: %v", err)
	}
	if _, err := svc.ManageParticipation(ctx, alice, application.ManageParticipationInput{
		ParticipationID: bobRow.ParticipantID,
		Action:          domain.ParticipationActionApprove,
	}); err != nil {
		t.Fatalf("approve bob: %v", err)
	}

	// The last seat is gone: approving another pending row fails, and new
	// requests are refused up front.
	if _, err := svc.ManageParticipation(ctx, alice, application.ManageParticipationInput{
		ParticipationID: carolRow.ParticipantID,
		Action:          domain.ParticipationActionApprove,
	}); !errors.Is(err, domain.ErrCapacityReached) {
		t.Fatalf("approve over capacity: expected capacity reached, got %v", err)
	}
	_, dave := registerUser(t, svc, "dave")
	if _, err := svc.RequestParticipation(ctx, dave, plan.PlanID); !errors.Is(err, domain.ErrCapacityReached) {
		t.Fatalf("request on full plan: expected capacity reached, got %v", err)
	}

	// Rejecting the remaining pending row still works.
	if _, err := svc.ManageParticipation(ctx, alice, application.ManageParticipationInput{
		ParticipationID: carolRow.ParticipantID,
		Action:          domain.ParticipationActionReject,
	}); err != nil {
		t.Fatalf("reject within full plan: %v", err)
	}
}

func TestParticipation_ConcurrentApprovalsRespectCapacity(t *testing.T) {
	svc, _ := newTestService()
	ctx := context.Background()
	_, alice := registerUser(t, svc, "alice")
	_, bob := registerUser(t, svc, "bob")
	_, carol := registerUser(t, svc, "carol")
	cal := personalCalendar(t, svc, alice)
	plan := createTestPlan(t, svc, alice, cal.CalendarID, domain.VisibilityPublic, 1)

	bobRow, err := svc.RequestParticipation(ctx, bob, plan.PlanID)
	if err != nil {
		t.Fatalf("bob request: %v", err)
	}
	carolRow, err := svc.RequestParticipation(ctx, carol, plan.PlanID)
	if err != nil {
		t.Fatalf("carol request: %v", err)
	}

	// Two approvals race for the last seat; the decision path must admit
	// exactly one.
	errCh := make(chan error, 2)
	for _, id := range []uuid.UUID{bobRow.ParticipantID, carolRow.ParticipantID} {
		go func(participantID uuid.UUID) {
			_, err := svc.ManageParticipation(ctx, alice, application.ManageParticipationInput{
				ParticipationID: participantID,
				Action:          domain.ParticipationActionApprove,
			})
			errCh <- err
		}(id)
	}
	var approvals, refusals int
	for i := 0; i < 2; i++ {
		switch err := <-errCh; {
		case err == nil:
			approvals++
		case errors.Is(err, domain.ErrCapacityReached):
			refusals++
		default:
			t.Fatalf("unexpected decision error: %v", err)
		}
	}
	if approvals != 1 || refusals != 1 {
		t.Fatalf("expected one approval and one refusal, got %d/%d", approvals, refusals)
	}

	approved, err := svc.GetPlan(ctx, alice, plan.PlanID)
	if err != nil {
		t.Fatalf("get plan: %v", err)
	}
	var approvedCount int
	for _, p := range approved.Participants {
		if p.Participant.Status == domain.ParticipantStatusApproved {
			approvedCount++
		}
	}
	if approvedCount != 1 {
		t.Fatalf("approved count %d exceeds capacity 1", approvedCount)
	}
}

func TestManageParticipation_Guards(t *testing.T) {
	svc, _ := newTestService()
	ctx := context.Background()
	_, alice := registerUser(t, svc, "alice")
	_, bob := registerUser(t, svc, "bob")
	cal := personalCalendar(t, svc, alice)
	plan := createTestPlan(t, svc, alice, cal.CalendarID, domain.VisibilityPublic, 0)

	row, err := svc.RequestParticipation(ctx, bob, plan.PlanID)
	if err != nil {
		t.Fatalf("request: %v", err)
	}

	if _, err := svc.ManageParticipation(ctx, bob, application.ManageParticipationInput{
		ParticipationID: row.ParticipantID,
		Action:          domain.ParticipationActionApprove,
	}); !errors.Is(err, domain.ErrForbidden) {
		t.Fatalf("non-owner managing: expected forbidden, got %v", err)
	}
	if _, err := svc.ManageParticipation(ctx, alice, application.ManageParticipationInput{
		ParticipationID: row.ParticipantID,
		Action:          "MAYBE",
	}); !errors.Is(err, domain.ErrInvalidInput) {
		t.Fatalf("bad action: expected invalid input, got %v", err)
	}

	if _, err := svc.ManageParticipation(ctx, alice, application.ManageParticipationInput{
		ParticipationID: row.ParticipantID,
		Action:          domain.ParticipationActionApprove,
	}); err != nil {
		t.Fatalf("approve: %v", err)
	}
	if _, err := svc.ManageParticipation(ctx, alice, application.ManageParticipationInput{
		ParticipationID: row.ParticipantID,
		Action:          domain.ParticipationActionReject,
	}); !errors.Is(err, domain.ErrConflict) {
		t.Fatalf("re-deciding: expected conflict, got %v", err)
	}
}
