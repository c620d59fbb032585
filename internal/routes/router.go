package routes

import (
	"net/http"
	"os"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	"github.com/redis/go-redis/v9"

	"hockey-playdate/clubhouse/internal/api"
	"hockey-playdate/clubhouse/internal/db"
	"hockey-playdate/clubhouse/internal/logging"
	"hockey-playdate/clubhouse/internal/metrics"
	"hockey-playdate/clubhouse/internal/middleware"
	"hockey-playdate/clubhouse/internal/workers"
)

func RegisterRoutes(upSince time.Time, redisClient *redis.Client) http.Handler {

	// initialize Chi router
	r := chi.NewRouter()

	// Initialize metrics registry
	metricsReg := metrics.NewMetricsRegistry()

	// global middleware
	r.Use(middleware.RequestIDMiddleware)
	r.Use(middleware.RateLimitMiddleware)

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"https://*", "http://localhost:3000"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-Request-ID"},
		ExposedHeaders:   []string{"Link"},
		AllowCredentials: true,
		MaxAge:           300, // Maximum value not ignored by any of major browsers
	}))

	// health check
	r.Get("/healthCheck", api.HealthCheckHandler(db.DB, upSince))

	// Initialize dependencies using DI pattern
	deps, err := api.InitDependencies(metricsReg, redisClient)
	if err != nil {
		panic("Failed to initialize dependencies: " + err.Error())
	}

	logging.Info("Router initialized with metrics and rate-limit middleware")

	// Register API routes
	jwtSecret := []byte(os.Getenv("JWT_SECRET"))
	RegisterAPIRoutes(r, metricsReg, deps, jwtSecret)

	// Background gauge refresh for member counts
	workers.InitWorkers(deps.Repo.Member, metricsReg)

	return r
}
