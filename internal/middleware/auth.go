package middleware

import (
	"errors"
	"net/http"
	"strings"

	"hockey-playdate/clubhouse/internal/auth"
	"hockey-playdate/clubhouse/internal/common"
	"hockey-playdate/clubhouse/internal/db/repositories"
	"hockey-playdate/clubhouse/internal/logging"
)

// SessionCookieName carries the Redis session ID for browser callers.
const SessionCookieName = "clubhouse_session"

// AuthMiddleware resolves the caller's identity from a session cookie or a
// bearer token and stores typed claims in the request context. It never
// reveals which check failed.
func AuthMiddleware(sessionSvc *common.SessionService, userRepo *repositories.UserRepository, jwtSecret []byte) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {

		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {

			var claims auth.UserClaims

			authHeader := r.Header.Get("Authorization")
			cookie, cookieErr := r.Cookie(SessionCookieName)

			switch {
			case cookieErr == nil && cookie.Value != "":
				session, err := sessionSvc.GetSession(r.Context(), cookie.Value)
				if err != nil {
					if !errors.Is(err, common.ErrSessionNotFound) {
						logging.Error("session lookup failed", "error", err.Error())
					}
					http.Error(w, "Unauthorized", http.StatusUnauthorized)
					return
				}

				user, err := userRepo.GetByID(r.Context(), session.UserID)
				if err != nil || !user.IsActive {
					http.Error(w, "Unauthorized", http.StatusUnauthorized)
					return
				}

				claims = &auth.SessionClaims{
					UserIDValue: session.UserID,
					EmailValue:  session.Email,
					NameValue:   session.Name,
				}

			case strings.HasPrefix(authHeader, "Bearer "):
				token := strings.TrimPrefix(authHeader, "Bearer ")
				parsed, err := auth.ParseBearerToken(jwtSecret, token)
				if err != nil {
					http.Error(w, "Unauthorized", http.StatusUnauthorized)
					return
				}
				claims = parsed

			default:
				http.Error(w, "Unauthorized", http.StatusUnauthorized)
				return
			}

			ctx := auth.SetUserClaims(r.Context(), claims)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
