package application_test

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"

	"github.com/planora/planora/internal/application"
	"github.com/planora/planora/internal/domain"
)

func createTestCard(t *testing.T, svc *application.Service, actor application.Actor, name string) application.CreateCardResult {
	t.Helper()
	result, err := svc.CreateCard(context.Background(), actor, application.CreateCardInput{
		Name:        name,
		Category:    "Food",
		Description: "Neighborhood bistro",
		Tags:        []string{"food", "local", "food"},
	})
	if err != nil {
		t.Fatalf("create card %s: %v", name, err)
	}
	return result
}

func TestCreateCard_ProvisionsPublicCalendar(t *testing.T) {
	svc, _ := newTestService()
	_, alice := registerUser(t, svc, "alice")

	result := createTestCard(t, svc, alice, "Chez Alice")
	if result.Card.OwnerID != alice.UserID {
		t.Fatalf("card owner mismatch")
	}
	if len(result.Card.Tags) != 2 {
		t.Fatalf("tags not de-duplicated: %v", result.Card.Tags)
	}
	if !result.Calendar.IsPublic {
		t.Fatalf("card calendar must be public")
	}
	if result.Calendar.ProfessionalCardID == nil || *result.Calendar.ProfessionalCardID != result.Card.CardID {
		t.Fatalf("calendar not linked to card")
	}

	if _, err := svc.CreateCard(context.Background(), alice, application.CreateCardInput{Name: "No category"}); !errors.Is(err, domain.ErrInvalidInput) {
		t.Fatalf("missing fields: expected invalid input, got %v", err)
	}
}

func TestFollowUnfollow_Lifecycle(t *testing.T) {
	svc, _ := newTestService()
	ctx := context.Background()
	_, alice := registerUser(t, svc, "alice")
	_, bob := registerUser(t, svc, "bob")
	card := createTestCard(t, svc, alice, "Chez Alice")

	if err := svc.Follow(ctx, alice, card.Card.CardID); !errors.Is(err, domain.ErrInvalidInput) {
		t.Fatalf("following own card: expected invalid input, got %v", err)
	}
	if err := svc.Follow(ctx, bob, card.Card.CardID); err != nil {
		t.Fatalf("follow: %v", err)
	}
	if err := svc.Follow(ctx, bob, card.Card.CardID); !errors.Is(err, domain.ErrConflict) {
		t.Fatalf("double follow: expected conflict, got %v", err)
	}

	details, err := svc.GetCard(ctx, bob, card.Card.CardID)
	if err != nil {
		t.Fatalf("get card: %v", err)
	}
	if details.FollowerCount != 1 || !details.IsFollowing {
		t.Fatalf("expected follower count 1 and IsFollowing, got %d %v", details.FollowerCount, details.IsFollowing)
	}

	if err := svc.Unfollow(ctx, bob, card.Card.CardID); err != nil {
		t.Fatalf("unfollow: %v", err)
	}
	if err := svc.Unfollow(ctx, bob, card.Card.CardID); !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("unfollow twice: expected not found, got %v", err)
	}

	details, err = svc.GetCard(ctx, bob, card.Card.CardID)
	if err != nil {
		t.Fatalf("get card after unfollow: %v", err)
	}
	if details.FollowerCount != 0 || details.IsFollowing {
		t.Fatalf("expected no followers after unfollow")
	}
}

func TestGetCard_PublicViewWithUpcomingPlans(t *testing.T) {
	svc, _ := newTestService()
	ctx := context.Background()
	aliceUser, alice := registerUser(t, svc, "alice")
	card := createTestCard(t, svc, alice, "Chez Alice")
	plan := createTestPlan(t, svc, alice, card.Calendar.CalendarID, domain.VisibilityPublic, 0)

	// Anonymous caller sees the card, its public calendar and the plan.
	details, err := svc.GetCard(ctx, application.Actor{}, card.Card.CardID)
	if err != nil {
		t.Fatalf("get card anonymous: %v", err)
	}
	if details.Owner.UserID != aliceUser.UserID {
		t.Fatalf("owner mismatch")
	}
	if details.IsFollowing {
		t.Fatalf("anonymous caller cannot be following")
	}
	if len(details.Calendars) != 1 {
		t.Fatalf("expected one public calendar, got %d", len(details.Calendars))
	}
	plans := details.Calendars[0].Plans
	if len(plans) != 1 || plans[0].PlanID != plan.PlanID {
		t.Fatalf("expected the upcoming public plan, got %+v", plans)
	}

	if _, err := svc.GetCard(ctx, application.Actor{}, uuid.New()); !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("missing card: expected not found, got %v", err)
	}
}

func TestListManagedAndFollowedCards(t *testing.T) {
	svc, _ := newTestService()
	ctx := context.Background()
	_, alice := registerUser(t, svc, "alice")
	_, bob := registerUser(t, svc, "bob")

	mine := createTestCard(t, svc, alice, "Chez Alice")
	theirs := createTestCard(t, svc, bob, "Bob Barbers")
	if err := svc.Follow(ctx, alice, theirs.Card.CardID); err != nil {
		t.Fatalf("follow: %v", err)
	}

	managed, err := svc.ListManagedCards(ctx, alice)
	if err != nil {
		t.Fatalf("list managed: %v", err)
	}
	if len(managed) != 1 || managed[0].Card.CardID != mine.Card.CardID {
		t.Fatalf("managed list mismatch: %+v", managed)
	}
	if managed[0].IsFollowing {
		t.Fatalf("own card must not be flagged as followed")
	}

	followed, err := svc.ListFollowedCards(ctx, alice)
	if err != nil {
		t.Fatalf("list followed: %v", err)
	}
	if len(followed) != 1 || followed[0].Card.CardID != theirs.Card.CardID {
		t.Fatalf("followed list mismatch: %+v", followed)
	}
	if !followed[0].IsFollowing || followed[0].FollowerCount != 1 {
		t.Fatalf("followed summary mismatch: %+v", followed[0])
	}
}
