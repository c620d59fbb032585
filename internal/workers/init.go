package workers

import (
	"context"

	"hockey-playdate/clubhouse/internal/db/repositories"
	"hockey-playdate/clubhouse/internal/metrics"
)

type WorkersContainer struct {
	Stats *MembershipStatsWorker
}

func InitWorkers(
	memberRepo *repositories.MemberRepository,
	metricsReg *metrics.MetricsRegistry,
) *WorkersContainer {
	stats := NewMembershipStatsWorker(memberRepo, metricsReg)

	go stats.Start(context.Background())

	return &WorkersContainer{
		Stats: stats,
	}
}
