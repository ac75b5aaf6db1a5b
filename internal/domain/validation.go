package domain

import (
	"fmt"
	"regexp"
	"strings"
	"time"
)

var (
	usernameRe = regexp.MustCompile(`^[a-zA-Z0-9_]{3,20}$`)
	emailRe    = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)
)

// ValidateUsername enforces the 3-20 character alnum+underscore format.
func ValidateUsername(username string) error {
	if !usernameRe.MatchString(username) {
		return fmt.Errorf("%w: username must be 3-20 characters of letters, digits and underscores", ErrInvalidInput)
	}
	return nil
}

// ValidateEmail checks the basic shape only; deliverability is not our concern.
func ValidateEmail(email string) error {
	if !emailRe.MatchString(email) {
		return fmt.Errorf("%w: invalid email format", ErrInvalidInput)
	}
	return nil
}

// NormalizeEmail lowercases and trims; all lookups go through this so the
// unique constraint on email behaves case-insensitively.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// ValidatePassword keeps a minimal strength floor.
func ValidatePassword(password string) error {
	if len(password) < 8 {
		return fmt.Errorf("%w: password must be at least 8 characters", ErrInvalidInput)
	}
	return nil
}

// ValidatePlanWindow enforces end strictly after start and a non-past start.
func ValidatePlanWindow(start, end, now time.Time) error {
	if !end.After(start) {
		return fmt.Errorf("%w: end date must be after start date", ErrInvalidInput)
	}
	if start.Before(now) {
		return fmt.Errorf("%w: start date must not be in the past", ErrInvalidInput)
	}
	return nil
}

// NormalizeTags trims, drops empties and de-duplicates while preserving order.
func NormalizeTags(tags []string) []string {
	out := make([]string, 0, len(tags))
	seen := map[string]bool{}
	for _, tag := range tags {
		tag = strings.TrimSpace(tag)
		if tag == "" || seen[tag] {
			continue
		}
		seen[tag] = true
		out = append(out, tag)
	}
	return out
}
