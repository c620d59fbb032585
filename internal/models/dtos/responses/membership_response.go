package responses

import "time"

// MembershipStatusResponse describes the calling user's standing in a chapter.
type MembershipStatusResponse struct {
	ChapterSlug    string `json:"chapter_slug"`
	Classification string `json:"classification"`
	Role           string `json:"role,omitempty"`
	MemberID       string `json:"member_id,omitempty"`
}

// OperationResponse is the envelope body for lifecycle mutations.
type OperationResponse struct {
	Message string `json:"message"`
}

// MemberSummary is one roster row.
type MemberSummary struct {
	MemberID string    `json:"member_id"`
	UserID   string    `json:"user_id"`
	Name     string    `json:"name,omitempty"`
	Role     string    `json:"role"`
	JoinedAt time.Time `json:"joined_at"`
}

// RosterResponse lists a chapter's members.
type RosterResponse struct {
	ChapterSlug string          `json:"chapter_slug"`
	Members     []MemberSummary `json:"members"`
}
