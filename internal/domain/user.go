package domain

import (
	"time"

	"github.com/google/uuid"
)

// User is a registered account. PasswordHash is empty for accounts
// provisioned through an external identity provider.
type User struct {
	UserID       uuid.UUID
	Username     string
	Name         string
	Email        string
	PasswordHash string
	Image        string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// PublicUser is the projection of a user safe to return to other users.
type PublicUser struct {
	UserID uuid.UUID `json:"id"`
	Name   string    `json:"name"`
	Email  string    `json:"email"`
	Image  string    `json:"image,omitempty"`
}

func (u User) Public() PublicUser {
	return PublicUser{UserID: u.UserID, Name: u.Name, Email: u.Email, Image: u.Image}
}

// DisplayName prefers the human name and falls back to the email,
// matching how notification messages identify the acting user.
func (u User) DisplayName() string {
	if u.Name != "" {
		return u.Name
	}
	return u.Email
}
