// Package jobs provides scheduled background tasks for the warehouse.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3.
// Jobs only read; they never change stock or orders.
//
// # Available Jobs
//
// 1. StockReportJob - logs catalog size, units on hand and out-of-stock products
// 2. OrderBacklogJob - logs how many orders are pending and confirmed
//
// # Usage
//
// Jobs are managed through JobManager which provides a unified interface:
//
//	jobManager := jobs.NewJobManager(listProductsHandler, listOrdersHandler, jobs.Schedules{
//		StockReport:  "0 */5 * * * *",
//		OrderBacklog: "0 * * * * *",
//	}, logger)
//
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//	defer jobManager.StopAll()
//
// # Scheduling
//
// Schedules are six field cron expressions with a leading seconds field and
// come from configuration.
//
// # Error Handling
//
// - A failed report is logged and retried at the next tick
// - An invalid schedule fails StartAll; jobs already started are stopped
package jobs
