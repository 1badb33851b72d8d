package worker

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestTickWorker(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	w := &TickWorker{Delay: time.Millisecond, ErrDelay: time.Millisecond}

	var ticks int
	err := w.StartTick(ctx, func(ctx context.Context) error {
		ticks++
		if ticks >= 3 {
			cancel()
		}

		if ticks%2 == 0 {
			return errors.New("tick failed")
		}

		return nil
	})

	assert.ErrorIs(t, err, context.Canceled)
	assert.GreaterOrEqual(t, ticks, 3)
}

func TestTickWorkerDelay(t *testing.T) {
	w := &TickWorker{}
	assert.Equal(t, defaultDelay, w.delay(nil))
	assert.Equal(t, defaultErrDelay, w.delay(errors.New("x")))

	w = &TickWorker{Delay: time.Minute, ErrDelay: time.Hour}
	assert.Equal(t, time.Minute, w.delay(nil))
	assert.Equal(t, time.Hour, w.delay(errors.New("x")))
}
