package priceoracle

import (
	"context"
	"redbank/core"
	"redbank/pkg/concurrency"
	"redbank/worker"

	"github.com/fox-one/pkg/logger"
)

// Worker copies remote price tickers of every market into the fixed price sources
type Worker struct {
	worker.TickWorker
	markets core.IMarketStore
	prices  core.IPriceStore
	tickers core.IPriceTickerService
}

// New new price oracle worker
func New(markets core.IMarketStore, prices core.IPriceStore, tickers core.IPriceTickerService) *Worker {
	return &Worker{
		markets: markets,
		prices:  prices,
		tickers: tickers,
	}
}

// Run run worker
func (w *Worker) Run(ctx context.Context) error {
	ctx = logger.WithContext(ctx, logger.FromContext(ctx).WithField("worker", "priceoracle"))

	return w.StartTick(ctx, func(ctx context.Context) error {
		return w.onWork(ctx)
	})
}

func (w *Worker) onWork(ctx context.Context) error {
	log := logger.FromContext(ctx)

	markets, err := w.markets.All(ctx)
	if err != nil {
		log.Errorln("fetch all markets error:", err)
		return err
	}

	if len(markets) == 0 {
		return nil
	}

	g := concurrency.NewGoLimit(concurrency.DefaultMax)
	for _, m := range markets {
		denom := m.Denom
		g.Go(func() {
			w.syncPrice(ctx, denom)
		})
	}

	g.Wait()
	return nil
}

func (w *Worker) syncPrice(ctx context.Context, denom string) {
	log := logger.FromContext(ctx).WithField("denom", denom)

	ticker, err := w.tickers.PullPriceTicker(ctx, denom)
	if err != nil {
		log.WithError(err).Errorln("pull price ticker error")
		return
	}

	if !ticker.Price.IsPositive() {
		log.Errorln("invalid ticker price:", ticker.Price)
		return
	}

	current, err := w.prices.Find(ctx, denom)
	if err != nil {
		log.WithError(err).Errorln("prices.Find")
		return
	}

	if current.ID > 0 && current.Price.Equal(ticker.Price) {
		return
	}

	if err := w.prices.Save(ctx, &core.Price{Denom: denom, Price: ticker.Price}); err != nil {
		log.WithError(err).Errorln("prices.Save")
		return
	}

	log.Debugln("price updated:", ticker.Price)
}
