// Package jobs provides scheduled background tasks for the restaurant system.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3
// to handle periodic operations that no request triggers.
//
// # Available Jobs
//
// 1. LowStockReportJob - Periodically scans every branch for menu items at or
// below the restock threshold and logs them so managers can reorder.
//
// # Usage
//
// Jobs are managed through JobManager which provides a unified interface:
//
//	jobManager := jobs.NewJobManager(lowStockHandler, threshold, logger)
//
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//
//	defer jobManager.StopAll()
//
// # Scheduling
//
// The low stock report uses the cron expression "0 */15 * * * *", running
// every fifteen minutes. Stock only moves when orders are placed, so a tighter
// schedule would just repeat the same report.
package jobs
