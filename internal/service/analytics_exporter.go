package service

import (
	"context"
	"time"

	"f1-monk/internal/models"

	"go.uber.org/zap"
)

// AnalyticsSink persists analytics snapshots.
type AnalyticsSink interface {
	UpsertBatch(ctx context.Context, records []models.QuestionAnalytics) error
}

// AnalyticsExporter periodically writes tracker snapshots to a sink.
type AnalyticsExporter struct {
	tracker  *AnalyticsTracker
	sink     AnalyticsSink
	interval time.Duration
	logger   *zap.Logger
}

func NewAnalyticsExporter(tracker *AnalyticsTracker, sink AnalyticsSink, interval time.Duration, logger *zap.Logger) *AnalyticsExporter {
	if interval <= 0 {
		interval = time.Minute
	}
	return &AnalyticsExporter{
		tracker:  tracker,
		sink:     sink,
		interval: interval,
		logger:   logger,
	}
}

// Run exports on every tick until ctx is done, then performs a final export.
func (e *AnalyticsExporter) Run(ctx context.Context) {
	ticker := time.NewTicker(e.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			// ctx is already cancelled; give the final flush its own deadline.
			flushCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			if err := e.Export(flushCtx); err != nil {
				e.logger.Error("Final analytics export failed", zap.Error(err))
			}
			return
		case <-ticker.C:
			if err := e.Export(ctx); err != nil {
				e.logger.Warn("Analytics export failed", zap.Error(err))
			}
		}
	}
}

// Export writes the current snapshot once. Empty snapshots are skipped.
func (e *AnalyticsExporter) Export(ctx context.Context) error {
	records := e.tracker.Snapshot()
	if len(records) == 0 {
		return nil
	}

	if err := e.sink.UpsertBatch(ctx, records); err != nil {
		return err
	}

	e.logger.Debug("Analytics exported", zap.Int("records", len(records)))
	return nil
}
