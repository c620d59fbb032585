package api

import (
	"net/http"

	"hockey-playdate/clubhouse/internal/common"
	"hockey-playdate/clubhouse/internal/logging"
	"hockey-playdate/clubhouse/internal/middleware"
	"hockey-playdate/clubhouse/internal/models/dtos/responses"
)

// Logout handles POST /api/v1/auth/logout. The session is removed from
// Redis and the cookie cleared; a missing or already-expired session still
// gets a success response so logout is idempotent.
func Logout(sessionSvc *common.SessionService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if cookie, err := r.Cookie(middleware.SessionCookieName); err == nil && cookie.Value != "" {
			if err := sessionSvc.DeleteSession(r.Context(), cookie.Value); err != nil {
				logging.Warn("logout: session delete failed", "error", err.Error())
			}
		}

		http.SetCookie(w, &http.Cookie{
			Name:     middleware.SessionCookieName,
			Value:    "",
			Path:     "/",
			MaxAge:   -1,
			HttpOnly: true,
		})

		respondWithSuccess(w, http.StatusOK, &responses.OperationResponse{Message: "Signed out"})
	}
}
