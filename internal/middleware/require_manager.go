package middleware

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"hockey-playdate/clubhouse/internal/auth"
	"hockey-playdate/clubhouse/internal/constants"
	"hockey-playdate/clubhouse/internal/services"
)

// RequireManagerMiddleware gates a route group to chapter managers. The
// chapter comes from the {chapterSlug} URL parameter. Non-managers get the
// same generic refusal as any other failed precondition.
func RequireManagerMiddleware(membershipSvc *services.MembershipService) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {

		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {

			slug := chi.URLParam(r, "chapterSlug")
			userID := auth.CallerUserID(r.Context())

			class, _, err := membershipSvc.Status(r.Context(), slug, userID)
			if err != nil || class != constants.ClassManagerMember {
				http.Error(w, constants.MsgUnableToProcess, http.StatusForbidden)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
