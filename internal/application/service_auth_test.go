package application_test

import (
	"context"
	"errors"
	"testing"

	"github.com/planora/planora/internal/application"
	"github.com/planora/planora/internal/domain"
)

func TestRegister_CreatesUserAndPersonalCalendar(t *testing.T) {
	svc, _ := newTestService()
	ctx := context.Background()

	result, err := svc.Register(ctx, application.RegisterInput{
		Username: "alice",
		Name:     "Alice",
		Email:    "Alice@Example.com",
		Password: "password123",
	})
	if err != nil {
		t.Fatalf("register: %v", err)
	}
	if result.User.Email != "alice@example.com" {
		t.Fatalf("email not normalized: %q", result.User.Email)
	}
	if result.User.PasswordHash == "password123" {
		t.Fatalf("password stored in the clear")
	}

	actor := application.Actor{UserID: result.User.UserID, Email: result.User.Email}
	calendars, err := svc.ListCalendars(ctx, actor)
	if err != nil {
		t.Fatalf("list calendars: %v", err)
	}
	if len(calendars) != 1 {
		t.Fatalf("expected one default calendar, got %d", len(calendars))
	}
	cal := calendars[0].Calendar
	if cal.IsPublic {
		t.Fatalf("personal calendar must be private")
	}
	if cal.OwnerID != result.User.UserID {
		t.Fatalf("calendar owner mismatch")
	}
	if cal.Color != domain.DefaultCalendarColor {
		t.Fatalf("expected default color, got %q", cal.Color)
	}
}

func TestRegister_RejectsDuplicates(t *testing.T) {
	svc, _ := newTestService()
	ctx := context.Background()
	registerUser(t, svc, "alice")

	_, err := svc.Register(ctx, application.RegisterInput{
		Username: "alice",
		Name:     "Other Alice",
		Email:    "other@example.com",
		Password: "password123",
	})
	if !errors.Is(err, domain.ErrConflict) {
		t.Fatalf("duplicate username: expected conflict, got %v", err)
	}

	_, err = svc.Register(ctx, application.RegisterInput{
		Username: "alice2",
		Name:     "Other Alice",
		Email:    "ALICE@example.com",
		Password: "password123",
	})
	if !errors.Is(err, domain.ErrConflict) {
		t.Fatalf("duplicate email: expected conflict, got %v", err)
	}
}

func TestRegister_ValidatesInput(t *testing.T) {
	svc, _ := newTestService()
	ctx := context.Background()

	cases := []application.RegisterInput{
		{Username: "al", Name: "A", Email: "a@example.com", Password: "password123"},
		{Username: "alice", Name: "A", Email: "not-an-email", Password: "password123"},
		{Username: "alice", Name: "A", Email: "a@example.com", Password: "short"},
		{Username: "", Name: "", Email: "", Password: ""},
	}
	for _, input := range cases {
		if _, err := svc.Register(ctx, input); !errors.Is(err, domain.ErrInvalidInput) {
			t.Fatalf("input %+v: expected invalid input, got %v", input, err)
		}
	}
}

func TestLogin_IssuesValidToken(t *testing.T) {
	svc, _ := newTestService()
	ctx := context.Background()
	user, _ := registerUser(t, svc, "alice")

	result, err := svc.Login(ctx, application.LoginInput{Email: "ALICE@example.com", Password: "password123"})
	if err != nil {
		t.Fatalf("login: %v", err)
	}
	if result.Token == "" {
		t.Fatalf("empty token")
	}

	actor, claims, err := svc.Authenticate(ctx, result.Token)
	if err != nil {
		t.Fatalf("authenticate: %v", err)
	}
	if actor.UserID != user.UserID {
		t.Fatalf("actor user mismatch")
	}
	if claims.Email != user.Email {
		t.Fatalf("claims email mismatch")
	}
}

func TestLogin_RejectsBadCredentials(t *testing.T) {
	svc, _ := newTestService()
	ctx := context.Background()
	registerUser(t, svc, "alice")

	if _, err := svc.Login(ctx, application.LoginInput{Email: "alice@example.com", Password: "wrongpassword"}); !errors.Is(err, domain.ErrInvalidCredentials) {
		t.Fatalf("wrong password: expected invalid credentials, got %v", err)
	}
	if _, err := svc.Login(ctx, application.LoginInput{Email: "nobody@example.com", Password: "password123"}); !errors.Is(err, domain.ErrInvalidCredentials) {
		t.Fatalf("unknown email: expected invalid credentials, got %v", err)
	}
}

func TestRevokeSession_BlocksFurtherUse(t *testing.T) {
	svc, _ := newTestService()
	ctx := context.Background()
	registerUser(t, svc, "alice")

	result, err := svc.Login(ctx, application.LoginInput{Email: "alice@example.com", Password: "password123"})
	if err != nil {
		t.Fatalf("login: %v", err)
	}
	_, claims, err := svc.Authenticate(ctx, result.Token)
	if err != nil {
		t.Fatalf("authenticate before logout: %v", err)
	}
	if err := svc.RevokeSession(ctx, claims); err != nil {
		t.Fatalf("revoke session: %v", err)
	}
	if _, _, err := svc.Authenticate(ctx, result.Token); !errors.Is(err, domain.ErrSessionRevoked) {
		t.Fatalf("expected session revoked, got %v", err)
	}
}

func TestAuthenticate_RejectsGarbageToken(t *testing.T) {
	svc, _ := newTestService()
	if _, _, err := svc.Authenticate(context.Background(), "not-a-token"); !errors.Is(err, domain.ErrUnauthorized) {
		t.Fatalf("expected unauthorized, got %v", err)
	}
}
