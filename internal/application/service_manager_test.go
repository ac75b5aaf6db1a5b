package application_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/planora/planora/internal/application"
	"github.com/planora/planora/internal/domain"
)

func TestAddCalendarManager_RequiresConnection(t *testing.T) {
	svc, _ := newTestService()
	ctx := context.Background()
	_, alice := registerUser(t, svc, "alice")
	bobUser, bob := registerUser(t, svc, "bob")
	cal := personalCalendar(t, svc, alice)

	if _, err := svc.AddCalendarManager(ctx, alice, cal.CalendarID, bobUser.Email); !errors.Is(err, domain.ErrForbidden) {
		t.Fatalf("unconnected grantee: expected forbidden, got %v", err)
	}

	connectUsers(t, svc, alice, bobUser, bob)
	grantee, err := svc.AddCalendarManager(ctx, alice, cal.CalendarID, bobUser.Email)
	if err != nil {
		t.Fatalf("add manager: %v", err)
	}
	if grantee.UserID != bobUser.UserID {
		t.Fatalf("grantee mismatch")
	}
	if _, err := svc.AddCalendarManager(ctx, alice, cal.CalendarID, bobUser.Email); !errors.Is(err, domain.ErrConflict) {
		t.Fatalf("duplicate grant: expected conflict, got %v", err)
	}
	if _, err := svc.AddCalendarManager(ctx, alice, cal.CalendarID, "nobody@example.com"); !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("unknown grantee: expected not found, got %v", err)
	}
}

func TestAddCalendarManager_OnlyOwnerOrCardManager(t *testing.T) {
	svc, _ := newTestService()
	ctx := context.Background()
	_, alice := registerUser(t, svc, "alice")
	bobUser, bob := registerUser(t, svc, "bob")
	cal := personalCalendar(t, svc, alice)

	if _, err := svc.AddCalendarManager(ctx, bob, cal.CalendarID, bobUser.Email); !errors.Is(err, domain.ErrForbidden) {
		t.Fatalf("stranger granting: expected forbidden, got %v", err)
	}
}

func TestListCalendarManagers_Gated(t *testing.T) {
	svc, _ := newTestService()
	ctx := context.Background()
	_, alice := registerUser(t, svc, "alice")
	bobUser, bob := registerUser(t, svc, "bob")
	_, carol := registerUser(t, svc, "carol")
	connectUsers(t, svc, alice, bobUser, bob)
	cal := personalCalendar(t, svc, alice)

	if _, err := svc.AddCalendarManager(ctx, alice, cal.CalendarID, bobUser.Email); err != nil {
		t.Fatalf("add manager: %v", err)
	}

	managers, err := svc.ListCalendarManagers(ctx, alice, cal.CalendarID)
	if err != nil {
		t.Fatalf("owner list: %v", err)
	}
	if len(managers) != 1 || managers[0].UserID != bobUser.UserID {
		t.Fatalf("manager roster mismatch: %+v", managers)
	}

	// A manager can see the roster, an outsider cannot.
	if _, err := svc.ListCalendarManagers(ctx, bob, cal.CalendarID); err != nil {
		t.Fatalf("manager list: %v", err)
	}
	if _, err := svc.ListCalendarManagers(ctx, carol, cal.CalendarID); !errors.Is(err, domain.ErrForbidden) {
		t.Fatalf("outsider list: expected forbidden, got %v", err)
	}
}

func TestCardManager_DelegationFlow(t *testing.T) {
	svc, _ := newTestService()
	ctx := context.Background()
	_, alice := registerUser(t, svc, "alice")
	bobUser, bob := registerUser(t, svc, "bob")
	_, carol := registerUser(t, svc, "carol")
	connectUsers(t, svc, alice, bobUser, bob)
	card := createTestCard(t, svc, alice, "Chez Alice")

	if _, err := svc.AddCardManager(ctx, bob, card.Card.CardID, bobUser.Email); !errors.Is(err, domain.ErrForbidden) {
		t.Fatalf("non-owner delegating: expected forbidden, got %v", err)
	}
	grantee, err := svc.AddCardManager(ctx, alice, card.Card.CardID, bobUser.Email)
	if err != nil {
		t.Fatalf("add card manager: %v", err)
	}
	if grantee.UserID != bobUser.UserID {
		t.Fatalf("grantee mismatch")
	}
	if _, err := svc.AddCardManager(ctx, alice, card.Card.CardID, bobUser.Email); !errors.Is(err, domain.ErrConflict) {
		t.Fatalf("duplicate grant: expected conflict, got %v", err)
	}

	managers, err := svc.ListCardManagers(ctx, bob, card.Card.CardID)
	if err != nil {
		t.Fatalf("manager listing roster: %v", err)
	}
	if len(managers) != 1 {
		t.Fatalf("expected one manager, got %d", len(managers))
	}
	if _, err := svc.ListCardManagers(ctx, carol, card.Card.CardID); !errors.Is(err, domain.ErrForbidden) {
		t.Fatalf("outsider roster: expected forbidden, got %v", err)
	}

	// Card management extends to the card's calendars.
	start := time.Now().Add(24 * time.Hour)
	if _, err := svc.CreatePlan(ctx, bob, application.CreatePlanInput{
		Title:         "Tasting night",
		StartDate:     start,
		EndDate:       start.Add(3 * time.Hour),
		CalendarID:    card.Calendar.CalendarID,
		AllowManagers: true,
	}); err != nil {
		t.Fatalf("card manager creating plan: %v", err)
	}
}
