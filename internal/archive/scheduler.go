package archive

import (
	"context"
	"time"

	"go.uber.org/zap"

	"la-carta/internal/clock"
	"la-carta/internal/store"
	"la-carta/pkg/models"
)

// ReportWriter emits the external report for one archive snapshot.
type ReportWriter interface {
	Write(date time.Time, orders []models.Order) error
}

// Scheduler drains the order store into the history log on a fixed period.
// The period counts from process start, not from calendar midnight; that is
// the observable behavior displays rely on, so it stays interval-based and
// the interval is configurable instead.
type Scheduler struct {
	orders   *store.OrderStore
	history  *store.HistoryLog
	reports  ReportWriter
	interval time.Duration
	clock    clock.Clock
	zaplog   *zap.Logger
}

func NewScheduler(orders *store.OrderStore, history *store.HistoryLog, reports ReportWriter,
	interval time.Duration, clk clock.Clock, zaplog *zap.Logger) *Scheduler {
	return &Scheduler{
		orders:   orders,
		history:  history,
		reports:  reports,
		interval: interval,
		clock:    clk,
		zaplog:   zaplog,
	}
}

// Run fires an archive cycle every interval until the context is canceled.
// Cycle errors are logged and never stop the schedule.
func (s *Scheduler) Run(ctx context.Context) error {
	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
			s.RunCycle()
		}
	}
}

// RunCycle performs one archive cycle: drain the store (snapshot, clear and
// counter reset in one step), write the report, then stamp and append the
// snapshot to history. A failed report never blocks the history append; a
// failed history write keeps the in-memory append and is logged.
func (s *Scheduler) RunCycle() {
	now := s.clock.Now()
	snapshot := s.orders.Drain()

	if err := s.reports.Write(now, snapshot); err != nil {
		s.zaplog.Error("report generation failed",
			zap.String("action", "report_write_failed"),
			zap.Error(err),
		)
	}

	date := now.Format("2006-01-02")
	archived := make([]models.Order, len(snapshot))
	for i, order := range snapshot {
		order.ArchivedDate = date
		archived[i] = order
	}

	if err := s.history.Append(archived); err != nil {
		s.zaplog.Error("history persistence failed",
			zap.String("action", "history_write_failed"),
			zap.Error(err),
		)
	}

	s.zaplog.Info("archive cycle completed",
		zap.String("action", "archive_cycle_completed"),
		zap.String("date", date),
		zap.Int("orders", len(archived)),
	)
}
