package jobs

import (
	"context"
	"fmt"

	"github.com/wonny/robosector/internal/pipeline"
	"github.com/wonny/robosector/pkg/logger"
)

// DailyAnalysisJob runs the full sector analysis pipeline after market close
// ⭐ SSOT: 일일 분석 작업은 이 Job에서만
type DailyAnalysisJob struct {
	runner *pipeline.Runner
	logger *logger.Logger
}

// NewDailyAnalysisJob creates a new daily analysis job
func NewDailyAnalysisJob(runner *pipeline.Runner, log *logger.Logger) *DailyAnalysisJob {
	return &DailyAnalysisJob{
		runner: runner,
		logger: log,
	}
}

// Name returns the job name
func (j *DailyAnalysisJob) Name() string {
	return "daily_analysis"
}

// Schedule returns the cron schedule
// 평일 18:10 KST (장 마감 후 데이터 확정 시점)
func (j *DailyAnalysisJob) Schedule() string {
	return "0 10 18 * * MON-FRI"
}

// Run executes the daily analysis
func (j *DailyAnalysisJob) Run(ctx context.Context) error {
	j.logger.Info("Starting daily sector analysis")

	report, err := j.runner.Run(ctx)
	if err != nil {
		return fmt.Errorf("daily analysis failed: %w", err)
	}

	j.logger.WithFields(map[string]interface{}{
		"stocks":      report.Sector.StockCount,
		"buy":         report.Sector.BuyCount,
		"hold":        report.Sector.HoldCount,
		"sell":        report.Sector.SellCount,
		"flow_signal": report.Flow.Signal,
	}).Info("Daily sector analysis completed")

	return nil
}
