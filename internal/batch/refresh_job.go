package batch

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"credit-dashboard/internal/analytics"
	"credit-dashboard/internal/domain/portfolio"
	"credit-dashboard/internal/event"
	"credit-dashboard/internal/infrastructure/monitoring"
)

// RefreshSnapshotJob regenerates the portfolio snapshot against a fresh "now"
// and swaps it into the store. Installment states are frozen per snapshot, so
// without the periodic rebuild a long-running process would report arrears
// against an ever-staler clock.
//
// After each rebuild the job evaluates the unfiltered delinquency rate against
// the configured thresholds and publishes an alert event when the level
// changes.
type RefreshSnapshotJob struct {
	store      *portfolio.Store
	publisher  event.EventPublisher
	thresholds analytics.AlertThresholds
	seed       int64
	loanCount  int
	logger     *slog.Logger

	lastLevel analytics.AlertLevel
}

func NewRefreshSnapshotJob(
	store *portfolio.Store,
	publisher event.EventPublisher,
	thresholds analytics.AlertThresholds,
	seed int64,
	loanCount int,
	logger *slog.Logger,
) *RefreshSnapshotJob {
	if store == nil || publisher == nil || logger == nil {
		panic("RefreshSnapshotJob dependencies cannot be nil")
	}
	return &RefreshSnapshotJob{
		store:      store,
		publisher:  publisher,
		thresholds: thresholds,
		seed:       seed,
		loanCount:  loanCount,
		logger:     logger.With("job", "RefreshSnapshot"),
		lastLevel:  analytics.AlertNone,
	}
}

func (j *RefreshSnapshotJob) Run(ctx context.Context) error {
	startTime := time.Now()
	j.logger.InfoContext(ctx, "Starting portfolio snapshot refresh.")

	snap, err := portfolio.BuildSnapshot(j.seed, j.loanCount, time.Now())
	if err != nil {
		j.logger.ErrorContext(ctx, "Snapshot generation failed, keeping previous snapshot.", slog.Any("error", err))
		return fmt.Errorf("cannot refresh snapshot: %w", err)
	}
	j.store.Replace(snap)

	summary, err := j.summarize(snap)
	if err != nil {
		return err
	}

	duration := time.Since(startTime)
	monitoring.RecordSnapshotRebuild(duration, len(snap.Loans), len(snap.Installments), summary.DelinquencyRate)

	if pubErr := j.publisher.PublishSnapshotRebuilt(ctx, event.SnapshotRebuiltEvent{
		Seed:         snap.Seed,
		Loans:        len(snap.Loans),
		Installments: len(snap.Installments),
		GeneratedAt:  snap.GeneratedAt,
	}); pubErr != nil {
		j.logger.WarnContext(ctx, "Failed to publish snapshot rebuilt event", slog.Any("error", pubErr))
	}

	j.evaluateAlert(ctx, summary)

	j.logger.InfoContext(ctx, "Portfolio snapshot refresh finished.",
		slog.Duration("duration", duration),
		slog.Int("loans", len(snap.Loans)),
		slog.Int("installments", len(snap.Installments)),
		slog.Float64("delinquency_rate", summary.DelinquencyRate),
	)
	return nil
}

// summarize computes the headline figures over the whole snapshot, with the
// filter opened to its full extent.
func (j *RefreshSnapshotJob) summarize(snap *portfolio.Snapshot) (analytics.Summary, error) {
	view, err := analytics.NewView(snap, analytics.Filter{
		From:              snap.GeneratedAt.AddDate(-1, 0, -1),
		To:                snap.GeneratedAt,
		Categories:        portfolio.ClientCategories,
		LoanStatuses:      portfolio.LoanStatuses,
		InstallmentStates: portfolio.InstallmentStates,
	})
	if err != nil {
		return analytics.Summary{}, fmt.Errorf("cannot summarize refreshed snapshot: %w", err)
	}
	return view.Summarize(), nil
}

func (j *RefreshSnapshotJob) evaluateAlert(ctx context.Context, summary analytics.Summary) {
	level := analytics.EvaluateAlert(summary.DelinquencyRate, j.thresholds)
	if level == j.lastLevel {
		return
	}
	j.lastLevel = level

	if level == analytics.AlertNone {
		j.logger.InfoContext(ctx, "Delinquency rate back under thresholds.",
			slog.Float64("rate", summary.DelinquencyRate))
		return
	}

	monitoring.RecordAlertRaised(string(level))
	if err := j.publisher.PublishAlertRaised(ctx, event.AlertRaisedEvent{
		Level:           string(level),
		DelinquencyRate: summary.DelinquencyRate,
		OverdueTotal:    summary.OverdueTotal,
		Timestamp:       time.Now(),
	}); err != nil {
		j.logger.ErrorContext(ctx, "Failed to publish alert event", slog.Any("error", err))
	}
}
