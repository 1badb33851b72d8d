package worker

import (
	"context"
	"time"
)

const (
	defaultDelay    = time.Second
	defaultErrDelay = 3 * time.Second
)

// Worker background job
type Worker interface {
	Run(ctx context.Context) error
}

// TickWorker runs onTick repeatedly until ctx is done,
// waiting Delay after a successful tick and ErrDelay after a failed one
type TickWorker struct {
	Delay    time.Duration
	ErrDelay time.Duration
}

func (w *TickWorker) delay(err error) time.Duration {
	if err != nil {
		if w.ErrDelay > 0 {
			return w.ErrDelay
		}

		return defaultErrDelay
	}

	if w.Delay > 0 {
		return w.Delay
	}

	return defaultDelay
}

// StartTick blocks until ctx is done
func (w *TickWorker) StartTick(ctx context.Context, onTick func(ctx context.Context) error) error {
	timer := time.NewTimer(time.Millisecond)
	defer timer.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-timer.C:
			err := onTick(ctx)
			timer.Reset(w.delay(err))
		}
	}
}
