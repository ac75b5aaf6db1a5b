package domain

import (
	"errors"
	"reflect"
	"testing"
	"time"
)

func TestValidateUsername(t *testing.T) {
	for _, valid := range []string{"bob", "alice_99", "ABCDEFGHIJ0123456789"} {
		if err := ValidateUsername(valid); err != nil {
			t.Fatalf("%q should be valid: %v", valid, err)
		}
	}
	for _, invalid := range []string{"ab", "way_too_long_username_here", "has space", "dash-ed", ""} {
		if err := ValidateUsername(invalid); !errors.Is(err, ErrInvalidInput) {
			t.Fatalf("%q should be invalid, got %v", invalid, err)
		}
	}
}

func TestValidateEmail(t *testing.T) {
	if err := ValidateEmail("user@example.com"); err != nil {
		t.Fatalf("valid email rejected: %v", err)
	}
	for _, invalid := range []string{"", "plain", "a@b", "a b@c.com", "@example.com"} {
		if err := ValidateEmail(invalid); !errors.Is(err, ErrInvalidInput) {
			t.Fatalf("%q should be invalid, got %v", invalid, err)
		}
	}
}

func TestNormalizeEmail(t *testing.T) {
	if got := NormalizeEmail("  Alice@Example.COM "); got != "alice@example.com" {
		t.Fatalf("got %q", got)
	}
}

func TestValidatePlanWindow(t *testing.T) {
	now := time.Now()
	start := now.Add(time.Hour)

	if err := ValidatePlanWindow(start, start.Add(time.Hour), now); err != nil {
		t.Fatalf("valid window rejected: %v", err)
	}
	if err := ValidatePlanWindow(start, start, now); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("zero-length window: expected invalid input, got %v", err)
	}
	if err := ValidatePlanWindow(start, start.Add(-time.Minute), now); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("inverted window: expected invalid input, got %v", err)
	}
	if err := ValidatePlanWindow(now.Add(-time.Minute), start, now); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("past start: expected invalid input, got %v", err)
	}
}

func TestNormalizeTags(t *testing.T) {
	got := NormalizeTags([]string{" food ", "", "food", "music", "  "})
	want := []string{"food", "music"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("got %v, want %v", got, want)
	}
}

func TestPlanCapacity(t *testing.T) {
	unlimited := Plan{MaxParticipants: 0}
	if !unlimited.HasCapacityFor(1000) {
		t.Fatalf("unlimited plan should always have capacity")
	}
	limited := Plan{MaxParticipants: 2}
	if !limited.HasCapacityFor(1) {
		t.Fatalf("one seat left, should have capacity")
	}
	if limited.HasCapacityFor(2) {
		t.Fatalf("full plan should refuse")
	}
}

func TestNotificationMarkRead(t *testing.T) {
	n := Notification{}
	if n.IsRead() {
		t.Fatalf("fresh notification should be unread")
	}
	at := time.Now()
	n.MarkRead(at)
	if !n.IsRead() || n.ReadAt == nil || !n.ReadAt.Equal(at) {
		t.Fatalf("mark read did not stick: %+v", n)
	}
}
