// Package jobs provides scheduled background tasks for the order workflow.
//
// Jobs are cron-based (github.com/robfig/cron/v3, seconds-enabled specs) and
// only read data. Nothing here submits events to orders: the workflow has no
// time-based transitions.
//
// # Available Jobs
//
//  1. OrderStatusReportJob - counts orders per status, updates the
//     orderflow_orders gauge and logs the counts
//
// # Usage
//
//	report := jobs.NewOrderStatusReportJob(countsHandler, metrics, "0 * * * * *", logger)
//	jobManager := jobs.NewJobManager(report)
//
//	if err := jobManager.StartAll(); err != nil {
//		return err
//	}
//	defer jobManager.StopAll()
package jobs
