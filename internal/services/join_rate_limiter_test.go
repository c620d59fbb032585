package services

import (
	"testing"
	"time"

	models "hockey-playdate/clubhouse/internal/models/gorm"
)

func memberWithWindow(start time.Time, count int) *models.Member {
	return &models.Member{
		JoinWindowStart:  &start,
		JoinRequestCount: count,
	}
}

func TestEvaluateJoinAttempt_FirstAttempt(t *testing.T) {
	now := time.Now()

	attempt := EvaluateJoinAttempt(nil, now)

	if !attempt.Allowed {
		t.Error("Expected first attempt to be allowed")
	}
	if attempt.Count != 1 {
		t.Errorf("Expected count 1, got %d", attempt.Count)
	}
	if !attempt.WindowStart.Equal(now) {
		t.Errorf("Expected window start %v, got %v", now, attempt.WindowStart)
	}
}

func TestEvaluateJoinAttempt_NoExistingWindow(t *testing.T) {
	now := time.Now()
	member := &models.Member{JoinWindowStart: nil, JoinRequestCount: 0}

	attempt := EvaluateJoinAttempt(member, now)

	if !attempt.Allowed || attempt.Count != 1 || !attempt.WindowStart.Equal(now) {
		t.Errorf("Expected fresh window (1, allowed, start=now), got %+v", attempt)
	}
}

func TestEvaluateJoinAttempt_WithinWindow(t *testing.T) {
	now := time.Now()
	start := now.Add(-1 * time.Hour)

	attempt := EvaluateJoinAttempt(memberWithWindow(start, 1), now)

	if !attempt.Allowed {
		t.Error("Expected second attempt within window to be allowed")
	}
	if attempt.Count != 2 {
		t.Errorf("Expected count 2, got %d", attempt.Count)
	}
	if !attempt.WindowStart.Equal(start) {
		t.Errorf("Expected window start unchanged at %v, got %v", start, attempt.WindowStart)
	}
}

func TestEvaluateJoinAttempt_ThirdAttemptAllowed(t *testing.T) {
	now := time.Now()
	start := now.Add(-2 * time.Hour)

	attempt := EvaluateJoinAttempt(memberWithWindow(start, 2), now)

	if !attempt.Allowed {
		t.Error("Expected third attempt to be allowed")
	}
	if attempt.Count != 3 {
		t.Errorf("Expected count 3, got %d", attempt.Count)
	}
}

func TestEvaluateJoinAttempt_FourthAttemptDenied(t *testing.T) {
	now := time.Now()
	start := now.Add(-23 * time.Hour)

	attempt := EvaluateJoinAttempt(memberWithWindow(start, 3), now)

	if attempt.Allowed {
		t.Error("Expected fourth attempt within window to be denied")
	}
	if attempt.Count != 4 {
		t.Errorf("Expected candidate count 4, got %d", attempt.Count)
	}
	if !attempt.WindowStart.Equal(start) {
		t.Errorf("Expected window start unchanged at %v, got %v", start, attempt.WindowStart)
	}
}

func TestEvaluateJoinAttempt_ExpiredWindowResets(t *testing.T) {
	now := time.Now()
	start := now.Add(-25 * time.Hour)

	attempt := EvaluateJoinAttempt(memberWithWindow(start, 3), now)

	if !attempt.Allowed {
		t.Error("Expected attempt after window expiry to be allowed")
	}
	if attempt.Count != 1 {
		t.Errorf("Expected count reset to 1, got %d", attempt.Count)
	}
	if !attempt.WindowStart.Equal(now) {
		t.Errorf("Expected window start reset to %v, got %v", now, attempt.WindowStart)
	}
}

func TestEvaluateJoinAttempt_WindowBoundaryContinues(t *testing.T) {
	// A window exactly JoinRequestWindow old is not yet expired; the
	// anchor only moves once the start is strictly older than now-24h.
	now := time.Now()
	start := now.Add(-JoinRequestWindow)

	attempt := EvaluateJoinAttempt(memberWithWindow(start, 3), now)

	if attempt.Allowed {
		t.Error("Expected attempt at exact window boundary to be denied")
	}
	if attempt.Count != 4 {
		t.Errorf("Expected count 4, got %d", attempt.Count)
	}
	if !attempt.WindowStart.Equal(start) {
		t.Errorf("Expected window start unchanged at %v, got %v", start, attempt.WindowStart)
	}
}
