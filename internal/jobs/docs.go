// Package jobs provides scheduled background tasks for the workflow service.
//
// Jobs are cron-based (github.com/robfig/cron/v3) and only read state; they
// never apply transitions.
//
// # Available Jobs
//
// StatsSnapshotJob counts every (kind, status) pair through the dashboard
// stats query and publishes the figures as Prometheus gauges.
//
// # Usage
//
//	jobManager := jobs.NewJobManager(statsHandler, metrics, "@every 30s", logger)
//	if err := jobManager.StartAll(); err != nil {
//		return err
//	}
//	defer jobManager.StopAll()
package jobs
