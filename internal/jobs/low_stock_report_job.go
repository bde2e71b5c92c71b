package jobs

import (
	"context"
	"log/slog"

	"restaurant/internal/core/application/usecases/queries"
	"restaurant/internal/core/domain/model/access"

	"github.com/robfig/cron/v3"
)

// LowStockReportJob periodically reports menu items running low on stock.
// It reads across all branches; the report is the one place where a
// branch-scoped rule does not apply, since it exists for head office.
type LowStockReportJob struct {
	handler   queries.GetLowStockItemsQueryHandler
	threshold int
	cron      *cron.Cron
	logger    *slog.Logger
}

// NewLowStockReportJob creates a job reporting items at or below threshold.
func NewLowStockReportJob(
	handler queries.GetLowStockItemsQueryHandler,
	threshold int,
	logger *slog.Logger,
) *LowStockReportJob {
	return &LowStockReportJob{
		handler:   handler,
		threshold: threshold,
		cron:      cron.New(cron.WithSeconds()),
		logger:    logger.With("component", "low_stock_report_job"),
	}
}

// Start schedules the report to run every fifteen minutes.
func (j *LowStockReportJob) Start() error {
	_, err := j.cron.AddFunc("0 */15 * * * *", j.run)
	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(),
		"Low stock report job started (running every 15 minutes)",
		"threshold", j.threshold)
	return nil
}

// Stop stops the report job.
func (j *LowStockReportJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Low stock report job stopped")
}

func (j *LowStockReportJob) run() {
	ctx := context.Background()

	query, err := queries.NewGetLowStockItemsQuery(access.ScopeAll(), j.threshold)
	if err != nil {
		j.logger.ErrorContext(ctx, "Low stock report job misconfigured", "error", err)
		return
	}

	items, err := j.handler.Handle(ctx, query)
	if err != nil {
		j.logger.ErrorContext(ctx, "Low stock report job failed", "error", err)
		return
	}

	if len(items) == 0 {
		return
	}

	for _, item := range items {
		j.logger.WarnContext(ctx, "Menu item running low",
			"branchId", item.BranchID.String(),
			"menuItemId", item.ID.String(),
			"name", item.Name,
			"quantity", item.Quantity)
	}
}
