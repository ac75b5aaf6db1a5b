package application_test

import (
	"context"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/planora/planora/internal/adapters/memory"
	"github.com/planora/planora/internal/application"
	"github.com/planora/planora/internal/domain"
	"github.com/planora/planora/internal/ports"
)

// plainHasher avoids bcrypt cost in tests; the real adapter is wired in
// bootstrap.
type plainHasher struct{}

func (plainHasher) Hash(password string) (string, error) { return "hashed:" + password, nil }

func (plainHasher) Compare(hash, password string) error {
	if hash != "hashed:"+password {
		return fmt.Errorf("password mismatch")
	}
	return nil
}

type fakeSigner struct {
	mu     sync.Mutex
	tokens map[string]ports.AuthClaims
	seq    int
}

func newFakeSigner() *fakeSigner {
	return &fakeSigner{tokens: map[string]ports.AuthClaims{}}
}

func (f *fakeSigner) Sign(claims ports.AuthClaims) (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.seq++
	token := fmt.Sprintf("token-%d", f.seq)
	f.tokens[token] = claims
	return token, nil
}

func (f *fakeSigner) ParseAndValidate(raw string) (ports.AuthClaims, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	claims, ok := f.tokens[raw]
	if !ok {
		return ports.AuthClaims{}, domain.ErrUnauthorized
	}
	if time.Now().After(claims.ExpiresAt) {
		return ports.AuthClaims{}, domain.ErrTokenExpired
	}
	return claims, nil
}

type fakeRevocations struct {
	mu      sync.Mutex
	revoked map[uuid.UUID]bool
}

func newFakeRevocations() *fakeRevocations {
	return &fakeRevocations{revoked: map[uuid.UUID]bool{}}
}

func (f *fakeRevocations) MarkRevoked(_ context.Context, sessionID uuid.UUID, _ time.Time) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.revoked[sessionID] = true
	return nil
}

func (f *fakeRevocations) IsRevoked(_ context.Context, sessionID uuid.UUID) (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.revoked[sessionID], nil
}

func newTestDependencies() (application.Dependencies, *memory.Repositories) {
	repos := memory.NewRepositories()
	deps := application.Dependencies{
		Config:             application.Config{ServiceName: "planora-test", TokenTTL: time.Hour},
		Users:              repos.Users,
		Calendars:          repos.Calendars,
		CalendarManagers:   repos.CalendarManagers,
		Plans:              repos.Plans,
		Participants:       repos.Participants,
		Cards:              repos.Cards,
		Followers:          repos.Followers,
		CardManagers:       repos.CardManagers,
		Connections:        repos.Connections,
		ConnectionRequests: repos.ConnectionRequests,
		Notifications:      repos.Notifications,
		Hasher:             plainHasher{},
		Tokens:             newFakeSigner(),
		Revocations:        newFakeRevocations(),
	}
	return deps, repos
}

func newTestService() (*application.Service, *memory.Repositories) {
	deps, repos := newTestDependencies()
	return application.NewService(deps), repos
}

func registerUser(t *testing.T, svc *application.Service, username string) (domain.User, application.Actor) {
	t.Helper()
	result, err := svc.Register(context.Background(), application.RegisterInput{
		Username: username,
		Name:     "User " + username,
		Email:    username + "@example.com",
		Password: "password123",
	})
	if err != nil {
		t.Fatalf("register %s: %v", username, err)
	}
	actor := application.Actor{UserID: result.User.UserID, Email: result.User.Email, SessionID: uuid.New()}
	return result.User, actor
}

func personalCalendar(t *testing.T, svc *application.Service, actor application.Actor) domain.Calendar {
	t.Helper()
	calendars, err := svc.ListCalendars(context.Background(), actor)
	if err != nil {
		t.Fatalf("list calendars: %v", err)
	}
	for _, summary := range calendars {
		if summary.Calendar.OwnerID == actor.UserID && summary.Calendar.ProfessionalCardID == nil {
			return summary.Calendar
		}
	}
	t.Fatalf("no personal calendar for user %s", actor.UserID)
	return domain.Calendar{}
}

// connectUsers establishes a connection edge between the two actors via the
// request/accept flow.
func connectUsers(t *testing.T, svc *application.Service, from application.Actor, to domain.User, toActor application.Actor) {
	t.Helper()
	req, err := svc.RequestConnection(context.Background(), from, to.Email)
	if err != nil {
		t.Fatalf("request connection: %v", err)
	}
	if err := svc.AcceptConnectionRequest(context.Background(), toActor, req.RequestID); err != nil {
		t.Fatalf("accept connection: %v", err)
	}
}

func createTestPlan(t *testing.T, svc *application.Service, actor application.Actor, calendarID uuid.UUID, visibility string, maxParticipants int) domain.Plan {
	t.Helper()
	start := time.Now().Add(24 * time.Hour)
	plan, err := svc.CreatePlan(context.Background(), actor, application.CreatePlanInput{
		Title:           "Evening Meetup",
		Description:     "Casual get-together",
		StartDate:       start,
		EndDate:         start.Add(2 * time.Hour),
		Location:        "Main Square",
		MaxParticipants: maxParticipants,
		Visibility:      visibility,
		CalendarID:      calendarID,
	})
	if err != nil {
		t.Fatalf("create plan: %v", err)
	}
	return plan
}
