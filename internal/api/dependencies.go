package api

import (
	"os"

	"github.com/redis/go-redis/v9"

	"hockey-playdate/clubhouse/internal/common"
	"hockey-playdate/clubhouse/internal/db"
	"hockey-playdate/clubhouse/internal/db/repositories"
	"hockey-playdate/clubhouse/internal/metrics"
	"hockey-playdate/clubhouse/internal/services"
)

type Repositories struct {
	Chapter *repositories.ChapterRepository
	Member  *repositories.MemberRepository
	User    *repositories.UserRepository
}

type Services struct {
	Cache      common.CacheInterface
	Session    *common.SessionService
	Resolver   *services.StatusResolver
	Membership *services.MembershipService
}

type Dependencies struct {
	Repo     *Repositories
	Services *Services
	Metrics  *metrics.MetricsRegistry
}

func InitDependencies(metricsReg *metrics.MetricsRegistry, redisClient *redis.Client) (*Dependencies, error) {

	repos := &Repositories{
		Chapter: repositories.NewChapterRepository(db.DB),
		Member:  repositories.NewMemberRepository(db.PgDB),
		User:    repositories.NewUserRepository(db.PgDB),
	}

	var cacheSvc common.CacheInterface
	if os.Getenv("CACHE_BACKEND") == "redis" {
		cacheSvc = common.NewRedisCacheService(redisClient)
	} else {
		cacheSvc = common.NewCacheService(300, 600)
	}

	resolver := services.NewStatusResolver(repos.Member)

	svcs := &Services{
		Cache:      cacheSvc,
		Session:    common.NewSessionService(redisClient),
		Resolver:   resolver,
		Membership: services.NewMembershipService(repos.Chapter, repos.Member, resolver, cacheSvc, metricsReg),
	}

	return &Dependencies{
		Repo:     repos,
		Services: svcs,
		Metrics:  metricsReg,
	}, nil

}
