package workers

import (
	"context"
	"time"

	"golang.org/x/sync/errgroup"

	"hockey-playdate/clubhouse/internal/db/repositories"
	"hockey-playdate/clubhouse/internal/logging"
	"hockey-playdate/clubhouse/internal/metrics"
)

const statsRefreshInterval = 60 * time.Second

// MembershipStatsWorker periodically refreshes the member-count gauges.
// Read-only: it never mutates membership state.
type MembershipStatsWorker struct {
	members *repositories.MemberRepository
	metrics *metrics.MetricsRegistry
}

func NewMembershipStatsWorker(members *repositories.MemberRepository, metricsReg *metrics.MetricsRegistry) *MembershipStatsWorker {
	return &MembershipStatsWorker{
		members: members,
		metrics: metricsReg,
	}
}

func (w *MembershipStatsWorker) Start(ctx context.Context) {
	ticker := time.NewTicker(statsRefreshInterval)
	defer ticker.Stop()

	w.refresh(ctx)

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			w.refresh(ctx)
		}
	}
}

func (w *MembershipStatsWorker) refresh(ctx context.Context) {
	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		count, err := w.members.CountActive(gctx)
		if err != nil {
			return err
		}
		w.metrics.MembersActive.Set(float64(count))
		return nil
	})

	g.Go(func() error {
		count, err := w.members.CountApplicants(gctx)
		if err != nil {
			return err
		}
		w.metrics.ApplicantsPending.Set(float64(count))
		return nil
	})

	if err := g.Wait(); err != nil {
		logging.Warn("membership stats refresh failed", "error", err.Error())
	}
}
