package ports

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// AuthClaims is the session payload carried inside the bearer token.
type AuthClaims struct {
	UserID    uuid.UUID
	Email     string
	SessionID uuid.UUID
	IssuedAt  time.Time
	ExpiresAt time.Time
}

// PasswordHasher abstracts the slow hash so the application layer stays
// crypto-library agnostic.
type PasswordHasher interface {
	Hash(password string) (string, error)
	Compare(hash, password string) error
}

type TokenSigner interface {
	Sign(claims AuthClaims) (string, error)
	ParseAndValidate(raw string) (AuthClaims, error)
}

// SessionRevocationStore remembers revoked session IDs until their token
// would have expired anyway. Logout writes here; the auth middleware reads.
type SessionRevocationStore interface {
	MarkRevoked(ctx context.Context, sessionID uuid.UUID, expiresAt time.Time) error
	IsRevoked(ctx context.Context, sessionID uuid.UUID) (bool, error)
}
