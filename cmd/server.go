package cmd

import (
	"context"
	"fmt"
	"net/http"
	"redbank/handler"
	"time"

	"github.com/drone/signal"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var serverCmd = &cobra.Command{
	Use:   "server",
	Short: "run red bank api server",
	Run: func(cmd *cobra.Command, args []string) {
		ctx := cmd.Context()

		database := provideDatabase()
		defer database.Close()

		system := provideSystem()
		ledger, registry := provideLedgerService(database)
		ping := func(ctx context.Context) error {
			return database.View().DB().PingContext(ctx)
		}

		server := handler.New(system, ledger, provideEventStore(database), registry, providePriceStore(database), ping)

		port, _ := cmd.Flags().GetInt("port")
		if port <= 0 {
			port = cfg.Server.Port
		}

		addr := fmt.Sprintf(":%d", port)
		svr := &http.Server{
			Addr:    addr,
			Handler: server.Handler(),
		}

		ctx, quit := context.WithCancel(ctx)
		done := make(chan struct{}, 1)
		signal.WithContextFunc(ctx, func() {
			quit()

			ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
			defer cancel()

			if err := svr.Shutdown(ctx); err != nil {
				logrus.WithError(err).Error("graceful shutdown server failed")
			}

			close(done)
		})

		logrus.Infoln("serve at", addr)
		if err := svr.ListenAndServe(); err != http.ErrServerClosed {
			logrus.WithError(err).Fatal("server aborted")
		}

		<-done
	},
}

func init() {
	rootCmd.AddCommand(serverCmd)
	serverCmd.Flags().IntP("port", "p", 0, "server port, defaults to server.port of the config")
}
