package scheduler

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	portssvc "github.com/automationsflow/afbooks/internal/core/ports/services"
	"github.com/robfig/cron/v3"
)

// RecurringScheduler runs the recurring-expense materializer on a cron
// schedule so due templates turn into expenses without manual triggering.
type RecurringScheduler struct {
	cron         *cron.Cron
	materializer portssvc.RecurringExpenseMaterializerSvc
	logger       *slog.Logger
}

// NewRecurringScheduler wires the materializer to the given cron spec.
func NewRecurringScheduler(spec string, materializer portssvc.RecurringExpenseMaterializerSvc, logger *slog.Logger) (*RecurringScheduler, error) {
	s := &RecurringScheduler{
		cron:         cron.New(),
		materializer: materializer,
		logger:       logger,
	}

	if _, err := s.cron.AddFunc(spec, s.run); err != nil {
		return nil, fmt.Errorf("invalid recurring cron spec %q: %w", spec, err)
	}
	return s, nil
}

// Start begins the schedule in the background. A materialization pass also
// runs immediately so a restart never leaves due months waiting for the next
// tick.
func (s *RecurringScheduler) Start() {
	go s.run()
	s.cron.Start()
}

// Stop halts the schedule and waits for a running pass to finish.
func (s *RecurringScheduler) Stop() {
	ctx := s.cron.Stop()
	<-ctx.Done()
}

func (s *RecurringScheduler) run() {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
	defer cancel()

	generated, err := s.materializer.MaterializeDue(ctx, time.Now())
	if err != nil {
		s.logger.Error("Recurring expense materialization failed", slog.String("error", err.Error()))
		return
	}
	if generated > 0 {
		s.logger.Info("Recurring expenses materialized", slog.Int("generated", generated))
	}
}
