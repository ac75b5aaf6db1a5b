package application

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/google/uuid"

	"github.com/planora/planora/internal/domain"
	"github.com/planora/planora/internal/ports"
)

// Register creates an account and its default personal calendar in one
// transaction. This guarantees every user has a calendar to publish under.
func (s *Service) Register(ctx context.Context, input RegisterInput) (RegisterResult, error) {
	input.Username = strings.TrimSpace(input.Username)
	input.Name = strings.TrimSpace(input.Name)
	input.Email = domain.NormalizeEmail(input.Email)

	if input.Username == "" || input.Name == "" || input.Email == "" || input.Password == "" {
		return RegisterResult{}, fmt.Errorf("%w: username, name, email and password are required", domain.ErrInvalidInput)
	}
	if err := domain.ValidateUsername(input.Username); err != nil {
		return RegisterResult{}, err
	}
	if err := domain.ValidateEmail(input.Email); err != nil {
		return RegisterResult{}, err
	}
	if err := domain.ValidatePassword(input.Password); err != nil {
		return RegisterResult{}, err
	}

	switch _, err := s.users.GetByUsername(ctx, input.Username); {
	case err == nil:
		return RegisterResult{}, fmt.Errorf("%w: username already taken", domain.ErrConflict)
	case !errors.Is(err, domain.ErrNotFound):
		return RegisterResult{}, err
	}
	switch _, err := s.users.GetByEmail(ctx, input.Email); {
	case err == nil:
		return RegisterResult{}, fmt.Errorf("%w: email already registered", domain.ErrConflict)
	case !errors.Is(err, domain.ErrNotFound):
		return RegisterResult{}, err
	}

	passwordHash, err := s.hasher.Hash(input.Password)
	if err != nil {
		return RegisterResult{}, fmt.Errorf("hash password: %w", err)
	}

	now := s.nowFn()
	user := domain.User{
		UserID:       uuid.New(),
		Username:     input.Username,
		Name:         input.Name,
		Email:        input.Email,
		PasswordHash: passwordHash,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	personal := domain.Calendar{
		CalendarID:  uuid.New(),
		Name:        "Personal Calendar",
		Description: "Calendar for your personal plans",
		IsPublic:    false,
		Color:       domain.DefaultCalendarColor,
		OwnerID:     user.UserID,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	created, err := s.users.CreateWithCalendarTx(ctx, user, personal)
	if err != nil {
		return RegisterResult{}, err
	}
	slog.Default().InfoContext(ctx, "user registered",
		"module", "application",
		"layer", "application",
		"operation", "register",
		"outcome", "success",
		"user_id", created.UserID,
	)
	return RegisterResult{User: created}, nil
}

// Login verifies credentials and issues a session token. Failures do not
// reveal whether the email or the password was wrong.
func (s *Service) Login(ctx context.Context, input LoginInput) (LoginResult, error) {
	email := domain.NormalizeEmail(input.Email)
	if email == "" || input.Password == "" {
		return LoginResult{}, fmt.Errorf("%w: email and password are required", domain.ErrInvalidInput)
	}

	user, err := s.users.GetByEmail(ctx, email)
	if err != nil {
		return LoginResult{}, domain.ErrInvalidCredentials
	}
	if user.PasswordHash == "" {
		return LoginResult{}, domain.ErrInvalidCredentials
	}
	if err := s.hasher.Compare(user.PasswordHash, input.Password); err != nil {
		slog.Default().WarnContext(ctx, "login rejected",
			"module", "application",
			"layer", "application",
			"operation", "login",
			"outcome", "failure",
			"email", email,
		)
		return LoginResult{}, domain.ErrInvalidCredentials
	}

	now := s.nowFn()
	claims := ports.AuthClaims{
		UserID:    user.UserID,
		Email:     user.Email,
		SessionID: uuid.New(),
		IssuedAt:  now,
		ExpiresAt: now.Add(s.cfg.TokenTTL),
	}
	token, err := s.tokens.Sign(claims)
	if err != nil {
		return LoginResult{}, fmt.Errorf("sign token: %w", err)
	}
	return LoginResult{Token: token, ExpiresAt: claims.ExpiresAt, User: user}, nil
}

// RevokeSession revokes the given session until its token expiry. Logout
// routes here with the claims the middleware already validated.
func (s *Service) RevokeSession(ctx context.Context, claims ports.AuthClaims) error {
	if claims.SessionID == uuid.Nil {
		return domain.ErrUnauthorized
	}
	return s.revocations.MarkRevoked(ctx, claims.SessionID, claims.ExpiresAt)
}

// Authenticate validates a raw bearer token and resolves it to an Actor.
// Revoked sessions fail closed.
func (s *Service) Authenticate(ctx context.Context, rawToken string) (Actor, ports.AuthClaims, error) {
	claims, err := s.tokens.ParseAndValidate(rawToken)
	if err != nil {
		return Actor{}, ports.AuthClaims{}, domain.ErrUnauthorized
	}
	revoked, err := s.revocations.IsRevoked(ctx, claims.SessionID)
	if err != nil {
		return Actor{}, ports.AuthClaims{}, err
	}
	if revoked {
		return Actor{}, ports.AuthClaims{}, domain.ErrSessionRevoked
	}
	return Actor{UserID: claims.UserID, Email: claims.Email, SessionID: claims.SessionID}, claims, nil
}
