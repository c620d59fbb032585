package routes

import (
	"github.com/go-chi/chi/v5"

	"hockey-playdate/clubhouse/internal/api"
	"hockey-playdate/clubhouse/internal/metrics"
	"hockey-playdate/clubhouse/internal/middleware"
)

// RegisterAPIRoutes registers all API v1 routes and handlers
// This keeps API route registration separate from the main router setup
func RegisterAPIRoutes(r chi.Router, metricsReg *metrics.MetricsRegistry, deps *api.Dependencies, jwtSecret []byte) {

	membershipSvc := deps.Services.Membership

	// API v1 routes
	r.Route("/api/v1", func(v1 chi.Router) {
		v1.Use(middleware.MetricsMiddleware(metricsReg))
		v1.Use(middleware.AuthMiddleware(deps.Services.Session, deps.Repo.User, jwtSecret))

		v1.Post("/auth/logout", api.Logout(deps.Services.Session))

		v1.Route("/chapters/{chapterSlug}", func(chapter chi.Router) {
			// The four lifecycle operations authorize inside the
			// membership core; the route itself only requires an
			// authenticated caller.
			chapter.Post("/join", api.RequestJoin(membershipSvc))
			chapter.Delete("/join", api.CancelJoinRequest(membershipSvc))
			chapter.Post("/leave", api.LeaveChapter(membershipSvc))
			chapter.Put("/members/{memberID}/role", api.SetMemberRole(membershipSvc))

			chapter.Get("/membership", api.MembershipStatus(membershipSvc))

			// Manager-only group
			chapter.Group(func(manager chi.Router) {
				manager.Use(middleware.RequireManagerMiddleware(membershipSvc))
				manager.Get("/members", api.ChapterRoster(membershipSvc))
			})
		})
	})
}
