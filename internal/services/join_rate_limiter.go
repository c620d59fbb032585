package services

import (
	"time"

	models "hockey-playdate/clubhouse/internal/models/gorm"
)

const (
	// JoinRequestWindow is the fixed rate-limit window for join attempts.
	JoinRequestWindow = 24 * time.Hour

	// MaxJoinRequests is the number of attempts allowed per window.
	MaxJoinRequests = 3
)

// JoinAttempt is the candidate rate-limiter state for one join request.
// It is computed on both allow and deny; only the caller decides whether
// the values are committed.
type JoinAttempt struct {
	WindowStart time.Time
	Count       int
	Allowed     bool
}

// EvaluateJoinAttempt applies the fixed-window limiter to a join request at
// the given instant. The window is anchored at the first attempt, not a
// trailing 24-hour lookback: a window that started at T0 keeps counting
// attempts against T0 until it is a full JoinRequestWindow old, then the
// next attempt starts a fresh window.
func EvaluateJoinAttempt(member *models.Member, now time.Time) JoinAttempt {
	if member == nil || member.JoinWindowStart == nil ||
		member.JoinWindowStart.Before(now.Add(-JoinRequestWindow)) {
		return JoinAttempt{
			WindowStart: now,
			Count:       1,
			Allowed:     true,
		}
	}

	count := member.JoinRequestCount + 1
	return JoinAttempt{
		WindowStart: *member.JoinWindowStart,
		Count:       count,
		Allowed:     count <= MaxJoinRequests,
	}
}
