package application_test

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"

	"github.com/planora/planora/internal/application"
	"github.com/planora/planora/internal/domain"
)

func TestGetProfile_HeadlineCounts(t *testing.T) {
	svc, _ := newTestService()
	ctx := context.Background()
	aliceUser, alice := registerUser(t, svc, "alice")
	bobUser, bob := registerUser(t, svc, "bob")
	connectUsers(t, svc, alice, bobUser, bob)

	card := createTestCard(t, svc, alice, "Chez Alice")
	cal := personalCalendar(t, svc, alice)
	createTestPlan(t, svc, alice, cal.CalendarID, domain.VisibilityPublic, 0)
	createTestPlan(t, svc, alice, card.Calendar.CalendarID, domain.VisibilityPublic, 0)
	theirs := createTestCard(t, svc, bob, "Bob Barbers")
	if err := svc.Follow(ctx, alice, theirs.Card.CardID); err != nil {
		t.Fatalf("follow: %v", err)
	}

	profile, err := svc.GetProfile(ctx, alice)
	if err != nil {
		t.Fatalf("get profile: %v", err)
	}
	if profile.User.UserID != aliceUser.UserID {
		t.Fatalf("profile user mismatch")
	}
	if profile.CalendarCount != 2 {
		t.Fatalf("expected 2 calendars, got %d", profile.CalendarCount)
	}
	if profile.PlanCount != 2 {
		t.Fatalf("expected 2 plans, got %d", profile.PlanCount)
	}
	if profile.CardCount != 1 {
		t.Fatalf("expected 1 card, got %d", profile.CardCount)
	}
	if profile.ConnectionCount != 1 {
		t.Fatalf("expected 1 connection, got %d", profile.ConnectionCount)
	}
	if profile.FollowedCardCount != 1 {
		t.Fatalf("expected 1 followed card, got %d", profile.FollowedCardCount)
	}
}

func TestGetProfilePlans_CreatedAndParticipating(t *testing.T) {
	svc, _ := newTestService()
	ctx := context.Background()
	_, alice := registerUser(t, svc, "alice")
	_, bob := registerUser(t, svc, "bob")

	aliceCal := personalCalendar(t, svc, alice)
	bobCal := personalCalendar(t, svc, bob)
	own := createTestPlan(t, svc, alice, aliceCal.CalendarID, domain.VisibilityPublic, 0)
	joined := createTestPlan(t, svc, bob, bobCal.CalendarID, domain.VisibilityPublic, 0)
	pendingOnly := createTestPlan(t, svc, bob, bobCal.CalendarID, domain.VisibilityPublic, 0)

	row, err := svc.RequestParticipation(ctx, alice, joined.PlanID)
	if err != nil {
		t.Fatalf("request: %v", err)
	}
	if _, err := svc.ManageParticipation(ctx, bob, application.ManageParticipationInput{
		ParticipationID: row.ParticipantID,
		Action:          domain.ParticipationActionApprove,
	}); err != nil {
		t.Fatalf("approve: %v", err)
	}
	if _, err := svc.RequestParticipation(ctx, alice, pendingOnly.PlanID); err != nil {
		t.Fatalf("pending request: %v", err)
	}

	plans, err := svc.GetProfilePlans(ctx, alice)
	if err != nil {
		t.Fatalf("profile plans: %v", err)
	}
	if len(plans.Created) != 1 || plans.Created[0].Plan.PlanID != own.PlanID {
		t.Fatalf("created list mismatch: %+v", plans.Created)
	}
	if plans.Created[0].CalendarName != aliceCal.Name {
		t.Fatalf("calendar annotation missing: %+v", plans.Created[0])
	}
	// Only APPROVED participations count; the pending one stays out.
	if len(plans.Participating) != 1 || plans.Participating[0].Plan.PlanID != joined.PlanID {
		t.Fatalf("participating list mismatch: %+v", plans.Participating)
	}
	if plans.Participating[0].ParticipantCount != 1 {
		t.Fatalf("participant count mismatch: %d", plans.Participating[0].ParticipantCount)
	}
}

func TestGetProfileCards_ManagedAndFollowed(t *testing.T) {
	svc, _ := newTestService()
	ctx := context.Background()
	_, alice := registerUser(t, svc, "alice")
	_, bob := registerUser(t, svc, "bob")

	mine := createTestCard(t, svc, alice, "Chez Alice")
	theirs := createTestCard(t, svc, bob, "Bob Barbers")
	if err := svc.Follow(ctx, alice, theirs.Card.CardID); err != nil {
		t.Fatalf("follow: %v", err)
	}

	cards, err := svc.GetProfileCards(ctx, alice)
	if err != nil {
		t.Fatalf("profile cards: %v", err)
	}
	if len(cards.Managed) != 1 || cards.Managed[0].Card.CardID != mine.Card.CardID {
		t.Fatalf("managed mismatch: %+v", cards.Managed)
	}
	if len(cards.Followed) != 1 || cards.Followed[0].Card.CardID != theirs.Card.CardID {
		t.Fatalf("followed mismatch: %+v", cards.Followed)
	}
}

func TestNotifications_MarkRead(t *testing.T) {
	svc, _ := newTestService()
	ctx := context.Background()
	_, alice := registerUser(t, svc, "alice")
	bobUser, bob := registerUser(t, svc, "bob")

	if _, err := svc.RequestConnection(ctx, alice, bobUser.Email); err != nil {
		t.Fatalf("request: %v", err)
	}
	notifs, err := svc.ListNotifications(ctx, bob)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(notifs) != 1 || notifs[0].IsRead() {
		t.Fatalf("expected one unread notification, got %+v", notifs)
	}
	target := notifs[0]

	// Only the recipient may touch it.
	if _, err := svc.MarkNotificationRead(ctx, alice, target.NotificationID); !errors.Is(err, domain.ErrForbidden) {
		t.Fatalf("foreign mark read: expected forbidden, got %v", err)
	}

	updated, err := svc.MarkNotificationRead(ctx, bob, target.NotificationID)
	if err != nil {
		t.Fatalf("mark read: %v", err)
	}
	if !updated.IsRead() {
		t.Fatalf("notification still unread")
	}

	// Idempotent on the second call.
	again, err := svc.MarkNotificationRead(ctx, bob, target.NotificationID)
	if err != nil {
		t.Fatalf("mark read twice: %v", err)
	}
	if again.ReadAt == nil || !again.ReadAt.Equal(*updated.ReadAt) {
		t.Fatalf("read timestamp must not move on repeat calls")
	}

	if _, err := svc.MarkNotificationRead(ctx, bob, uuid.New()); !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("missing notification: expected not found, got %v", err)
	}
}

func TestUnauthenticatedAccessRejected(t *testing.T) {
	svc, _ := newTestService()
	ctx := context.Background()
	anonymous := application.Actor{}

	if _, err := svc.GetProfile(ctx, anonymous); !errors.Is(err, domain.ErrUnauthorized) {
		t.Fatalf("profile: expected unauthorized, got %v", err)
	}
	if _, err := svc.ListCalendars(ctx, anonymous); !errors.Is(err, domain.ErrUnauthorized) {
		t.Fatalf("calendars: expected unauthorized, got %v", err)
	}
	if _, err := svc.ListEvents(ctx, anonymous); !errors.Is(err, domain.ErrUnauthorized) {
		t.Fatalf("events: expected unauthorized, got %v", err)
	}
	if _, err := svc.ListNotifications(ctx, anonymous); !errors.Is(err, domain.ErrUnauthorized) {
		t.Fatalf("notifications: expected unauthorized, got %v", err)
	}
	if _, err := svc.CreatePlan(ctx, anonymous, application.CreatePlanInput{}); !errors.Is(err, domain.ErrUnauthorized) {
		t.Fatalf("create plan: expected unauthorized, got %v", err)
	}
	if err := svc.Follow(ctx, anonymous, uuid.New()); !errors.Is(err, domain.ErrUnauthorized) {
		t.Fatalf("follow: expected unauthorized, got %v", err)
	}
}
