package cache

import (
	"testing"
	"time"
)

func TestTimeUntilNextClose(t *testing.T) {
	t.Parallel()

	duration := TimeUntilNextClose()

	// Duration should always be positive and less than 24 hours
	if duration <= 0 {
		t.Errorf("expected positive duration, got %v", duration)
	}
	if duration > 24*time.Hour {
		t.Errorf("expected duration less than 24 hours, got %v", duration)
	}
}

func TestTimeUntilNextClose_ReturnsValidDuration(t *testing.T) {
	t.Parallel()

	duration := TimeUntilNextClose()

	// Calculate what the next 6 PM Eastern should be
	now := time.Now()
	loc, err := time.LoadLocation("America/New_York")
	if err != nil {
		t.Fatalf("failed to load America/New_York timezone: %v", err)
	}

	next := time.Date(now.Year(), now.Month(), now.Day(), 18, 0, 0, 0, loc)
	if now.After(next) {
		next = next.Add(24 * time.Hour)
	}

	// The calculated time should be approximately the same
	expectedDuration := next.Sub(now)
	diff := duration - expectedDuration
	if diff < 0 {
		diff = -diff
	}

	// Allow 1 second tolerance for test execution time
	if diff > time.Second {
		t.Errorf("duration %v differs from expected %v by more than 1 second", duration, expectedDuration)
	}
}
