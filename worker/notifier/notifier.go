package notifier

import (
	"context"
	"redbank/core"
	"redbank/worker"
	"time"

	"github.com/fox-one/pkg/logger"
)

// Config notifier config
type Config struct {
	Batch    int
	Interval time.Duration
}

// Notifier delivers the balance changes of committed events to the incentives service
type Notifier struct {
	worker.TickWorker
	events     core.IEventStore
	incentives core.IIncentivesService
	batch      int
}

// New new notifier worker
func New(cfg Config, events core.IEventStore, incentives core.IIncentivesService) *Notifier {
	batch := cfg.Batch
	if batch <= 0 {
		batch = 100
	}

	n := &Notifier{
		events:     events,
		incentives: incentives,
		batch:      batch,
	}
	n.Delay = cfg.Interval
	return n
}

// Run run worker
func (w *Notifier) Run(ctx context.Context) error {
	ctx = logger.WithContext(ctx, logger.FromContext(ctx).WithField("worker", "notifier"))

	return w.StartTick(ctx, func(ctx context.Context) error {
		return w.onWork(ctx)
	})
}

func (w *Notifier) onWork(ctx context.Context) error {
	log := logger.FromContext(ctx)

	events, err := w.events.ListPending(ctx, w.batch)
	if err != nil {
		log.WithError(err).Errorln("events.ListPending")
		return err
	}

	if len(events) == 0 {
		return nil
	}

	var (
		changes []*core.BalanceChange
		ids     = make([]uint64, 0, len(events))
	)

	for _, e := range events {
		cs, err := e.UnmarshalChanges()
		if err != nil {
			// undecodable payloads are skipped, never retried
			log.WithError(err).WithField("trace", e.TraceID).Errorln("UnmarshalChanges")
		}

		changes = append(changes, cs...)
		ids = append(ids, e.ID)
	}

	if err := w.incentives.BalanceChanged(ctx, changes); err != nil {
		log.WithError(err).Errorln("incentives.BalanceChanged")
		return err
	}

	if err := w.events.MarkNotified(ctx, ids); err != nil {
		log.WithError(err).Errorln("events.MarkNotified")
		return err
	}

	log.Debugf("%d events notified", len(ids))
	return nil
}
