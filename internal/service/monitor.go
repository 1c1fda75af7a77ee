package service

import (
	"context"
	"log"
	"time"
)

// GoalMonitor periodically re-scans active goals against the full
// workout set, catching goals whose condition became satisfied purely
// through elapsed time or pre-existing data. Each tick runs the same
// evaluation function as the direct triggers, so any interleaving of
// ticks and workout-driven evaluations converges to the same goal
// state.
type GoalMonitor struct {
	goalService GoalService
	interval    time.Duration
	cancel      context.CancelFunc
	done        chan struct{}
}

// NewGoalMonitor creates a monitor that evaluates every interval.
func NewGoalMonitor(goalService GoalService, interval time.Duration) *GoalMonitor {
	if interval <= 0 {
		interval = time.Minute
	}
	return &GoalMonitor{
		goalService: goalService,
		interval:    interval,
	}
}

// Start launches the background ticker. A tick in flight is fast and
// bounded; cancellation only stops future ticks.
func (m *GoalMonitor) Start(ctx context.Context) {
	ctx, m.cancel = context.WithCancel(ctx)
	m.done = make(chan struct{})

	go func() {
		defer close(m.done)
		ticker := time.NewTicker(m.interval)
		defer ticker.Stop()

		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				if err := m.goalService.EvaluateActiveGoals(ctx); err != nil {
					log.Printf("ERROR: periodic goal evaluation: %v", err)
				}
			}
		}
	}()
}

// Stop cancels future ticks and waits for the monitor goroutine to exit.
func (m *GoalMonitor) Stop() {
	if m.cancel == nil {
		return
	}
	m.cancel()
	<-m.done
}
