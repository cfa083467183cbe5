package jobs

import (
	"context"
	"log/slog"
	"time"

	"careshare/internal/core/application/usecases/queries"
	"careshare/internal/core/domain/model/workflow"

	"github.com/robfig/cron/v3"
)

// DefaultStatsSchedule takes a snapshot every thirty seconds.
const DefaultStatsSchedule = "@every 30s"

const snapshotTimeout = 10 * time.Second

// EntityGauge receives the snapshot figures.
type EntityGauge interface {
	SetEntityCount(kind workflow.Kind, status string, count int64)
}

// StatsSnapshotJob periodically copies the dashboard counts into gauges.
type StatsSnapshotJob struct {
	handler  queries.GetDashboardStatsQueryHandler
	gauge    EntityGauge
	schedule string
	cron     *cron.Cron
	logger   *slog.Logger
}

func NewStatsSnapshotJob(
	handler queries.GetDashboardStatsQueryHandler,
	gauge EntityGauge,
	schedule string,
	logger *slog.Logger,
) *StatsSnapshotJob {
	if schedule == "" {
		schedule = DefaultStatsSchedule
	}
	return &StatsSnapshotJob{
		handler:  handler,
		gauge:    gauge,
		schedule: schedule,
		cron:     cron.New(),
		logger:   logger.With("component", "stats_snapshot_job"),
	}
}

func (j *StatsSnapshotJob) Start() error {
	if _, err := j.cron.AddFunc(j.schedule, func() {
		ctx, cancel := context.WithTimeout(context.Background(), snapshotTimeout)
		defer cancel()
		j.Run(ctx)
	}); err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Stats snapshot job started", "schedule", j.schedule)
	return nil
}

// Run takes one snapshot. Failures are logged; the previous gauge values stay.
func (j *StatsSnapshotJob) Run(ctx context.Context) {
	stats, err := j.handler.Handle(ctx, queries.NewGetDashboardStatsQuery())
	if err != nil {
		j.logger.ErrorContext(ctx, "Stats snapshot failed", "error", err)
		return
	}

	for _, k := range stats.Kinds {
		kind, err := workflow.ParseKind(k.Kind)
		if err != nil {
			j.logger.ErrorContext(ctx, "Stats snapshot returned an unknown kind", "kind", k.Kind)
			continue
		}
		for status, count := range k.ByStatus {
			j.gauge.SetEntityCount(kind, status, count)
		}
	}
}

// Stop waits for a running snapshot to finish.
func (j *StatsSnapshotJob) Stop() {
	<-j.cron.Stop().Done()
	j.logger.InfoContext(context.Background(), "Stats snapshot job stopped")
}
