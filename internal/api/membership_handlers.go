package api

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"hockey-playdate/clubhouse/internal/auth"
	"hockey-playdate/clubhouse/internal/constants"
	"hockey-playdate/clubhouse/internal/models/dtos/requests"
	"hockey-playdate/clubhouse/internal/models/dtos/responses"
	"hockey-playdate/clubhouse/internal/services"
)

// statusForFailure maps the user-facing failure message to an HTTP status.
func statusForFailure(message string) int {
	switch message {
	case constants.MsgTooManyRequests:
		return http.StatusTooManyRequests
	case constants.MsgSelfManagement:
		return http.StatusForbidden
	case constants.MsgSoleManager:
		return http.StatusConflict
	}
	return http.StatusBadRequest
}

func writeOperationResult(w http.ResponseWriter, result services.OperationResult) {
	if !result.OK {
		respondWithError(w, statusForFailure(result.Message), result.Message)
		return
	}
	respondWithSuccess(w, http.StatusOK, &responses.OperationResponse{Message: result.Message})
}

// RequestJoin handles POST /api/v1/chapters/{chapterSlug}/join
func RequestJoin(svc *services.MembershipService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		slug := chi.URLParam(r, "chapterSlug")
		userID := auth.CallerUserID(r.Context())

		writeOperationResult(w, svc.RequestJoin(r.Context(), slug, userID))
	}
}

// CancelJoinRequest handles DELETE /api/v1/chapters/{chapterSlug}/join
func CancelJoinRequest(svc *services.MembershipService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		slug := chi.URLParam(r, "chapterSlug")
		userID := auth.CallerUserID(r.Context())

		writeOperationResult(w, svc.CancelJoinRequest(r.Context(), slug, userID))
	}
}

// LeaveChapter handles POST /api/v1/chapters/{chapterSlug}/leave
func LeaveChapter(svc *services.MembershipService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		slug := chi.URLParam(r, "chapterSlug")
		userID := auth.CallerUserID(r.Context())

		writeOperationResult(w, svc.LeaveChapter(r.Context(), slug, userID))
	}
}

// SetMemberRole handles PUT /api/v1/chapters/{chapterSlug}/members/{memberID}/role
func SetMemberRole(svc *services.MembershipService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		slug := chi.URLParam(r, "chapterSlug")
		memberID := chi.URLParam(r, "memberID")
		userID := auth.CallerUserID(r.Context())

		var req requests.SetMemberRoleRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			respondWithError(w, http.StatusBadRequest, constants.MsgUnableToProcess)
			return
		}

		writeOperationResult(w, svc.SetMemberRole(r.Context(), slug, memberID, req.Role, userID))
	}
}

// MembershipStatus handles GET /api/v1/chapters/{chapterSlug}/membership
func MembershipStatus(svc *services.MembershipService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		slug := chi.URLParam(r, "chapterSlug")
		userID := auth.CallerUserID(r.Context())

		class, member, err := svc.Status(r.Context(), slug, userID)
		if err != nil {
			respondWithError(w, http.StatusBadRequest, constants.MsgUnableToProcess)
			return
		}

		resp := responses.MembershipStatusResponse{
			ChapterSlug:    slug,
			Classification: class.String(),
		}
		if member != nil {
			resp.Role = member.Role.String()
			resp.MemberID = member.ID
		}

		respondWithSuccess(w, http.StatusOK, &resp)
	}
}

// ChapterRoster handles GET /api/v1/chapters/{chapterSlug}/members
func ChapterRoster(svc *services.MembershipService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		slug := chi.URLParam(r, "chapterSlug")

		members, err := svc.Roster(r.Context(), slug)
		if err != nil {
			respondWithError(w, http.StatusBadRequest, constants.MsgUnableToProcess)
			return
		}

		summaries := make([]responses.MemberSummary, 0, len(members))
		for _, m := range members {
			summary := responses.MemberSummary{
				MemberID: m.ID,
				UserID:   m.UserID,
				Role:     m.Role.String(),
				JoinedAt: m.JoinedAt,
			}
			if m.User.Name != nil {
				summary.Name = *m.User.Name
			}
			summaries = append(summaries, summary)
		}

		respondWithSuccess(w, http.StatusOK, &responses.RosterResponse{
			ChapterSlug: slug,
			Members:     summaries,
		})
	}
}
