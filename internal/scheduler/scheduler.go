// Package scheduler runs the periodic library jobs: the overdue scan
// and the due-soon reminder pass.
package scheduler

import (
	"context"
	"log/slog"
	"time"

	"github.com/apostle/librarium/internal/borrowing"
	"github.com/apostle/librarium/internal/notification"
)

// dueSoonWindow is how far ahead the reminder pass looks.
const dueSoonWindow = 48 * time.Hour

// OverdueScanner is the slice of the lifecycle engine the scheduler drives.
type OverdueScanner interface {
	UpdateOverdueStatus(ctx context.Context) error
}

// DueSoonSource lists active loans approaching their due date.
type DueSoonSource interface {
	FindByStatusAndDueBetween(ctx context.Context, status borrowing.Status, from, to time.Time) ([]*borrowing.Record, error)
}

type Scheduler struct {
	engine   OverdueScanner
	records  DueSoonSource
	notifier notification.Enqueuer
	interval time.Duration
	now      func() time.Time
}

func New(engine OverdueScanner, records DueSoonSource, notifier notification.Enqueuer, interval time.Duration) *Scheduler {
	return &Scheduler{
		engine:   engine,
		records:  records,
		notifier: notifier,
		interval: interval,
		now:      time.Now,
	}
}

// Run blocks until ctx is cancelled, firing both jobs every interval.
// Each tick is independent; a failed run is logged and the next tick
// proceeds.
func (s *Scheduler) Run(ctx context.Context) {
	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			s.RunOnce(ctx)
		}
	}
}

// RunOnce executes a single pass of both jobs.
func (s *Scheduler) RunOnce(ctx context.Context) {
	if err := s.engine.UpdateOverdueStatus(ctx); err != nil {
		slog.Error("overdue scan failed", "error", err)
	}

	s.remindDueSoon(ctx)
}

func (s *Scheduler) remindDueSoon(ctx context.Context) {
	now := s.now()

	dueSoon, err := s.records.FindByStatusAndDueBetween(ctx, borrowing.StatusBorrowed, now, now.Add(dueSoonWindow))
	if err != nil {
		slog.Error("due-soon scan failed", "error", err)
		return
	}

	for _, record := range dueSoon {
		s.notifier.Enqueue(notification.KindDueSoon, record.Borrower, map[string]string{
			"title":    record.BookISBN,
			"due_date": record.DueDate.Format(time.DateOnly),
		})
	}

	if len(dueSoon) > 0 {
		slog.Info("due-soon reminders queued", "count", len(dueSoon))
	}
}
