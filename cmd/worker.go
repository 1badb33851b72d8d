package cmd

import (
	"context"
	"errors"
	"redbank/worker"
	"redbank/worker/notifier"
	"redbank/worker/priceoracle"
	"time"

	"github.com/drone/signal"
	"github.com/fox-one/pkg/logger"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"
)

var workerCmd = &cobra.Command{
	Use:   "worker",
	Short: "run the incentives notifier and the price sync workers",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := signal.WithContext(cmd.Context())
		log := logger.FromContext(ctx)
		ctx = logger.WithContext(ctx, log)

		database := provideDatabase()
		defer database.Close()

		system := provideSystem()
		registry := provideAddressRegistry(system, provideAddressStore(database))
		marketStore := provideLedgerStore(database)
		priceStore := providePriceStore(database)
		eventStore := provideEventStore(database)

		workers := []worker.Worker{
			notifier.New(notifier.Config{
				Batch:    cfg.Notifier.Batch,
				Interval: time.Duration(cfg.Notifier.Interval) * time.Second,
			}, eventStore, provideIncentivesService(registry)),
		}

		// remote prices are copied into the fixed sources
		if sync, _ := cmd.Flags().GetBool("sync-prices"); sync {
			workers = append(workers, priceoracle.New(marketStore, priceStore, provideRemoteOracle(registry)))
		}

		g, ctx := errgroup.WithContext(ctx)
		for _, w := range workers {
			w := w
			g.Go(func() error {
				return w.Run(ctx)
			})
		}

		if err := g.Wait(); err != nil && !errors.Is(err, context.Canceled) {
			return err
		}

		return nil
	},
}

func init() {
	rootCmd.AddCommand(workerCmd)
	workerCmd.Flags().Bool("sync-prices", false, "pull remote prices into the fixed price sources")
}
