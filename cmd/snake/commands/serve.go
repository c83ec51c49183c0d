package commands

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/battlesnakeio/snake/api"
	"github.com/battlesnakeio/snake/config"
	"github.com/battlesnakeio/snake/loop"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var (
	apiListen = ":3005"
)

var serveCmd = &cobra.Command{
	Use:    "serve",
	Short:  "serves the game to a browser over http and websocket",
	PreRun: func(c *cobra.Command, args []string) { prometheus() },
	RunE: func(c *cobra.Command, args []string) error {
		hub := api.NewHub()
		l, err := loop.New(loopOptions(hub))
		if err != nil {
			return err
		}

		srv := api.New(apiListen, l, hub, api.Options{
			InputRate:  config.InputRate,
			InputBurst: config.InputBurst,
		})

		ctx, cancel := context.WithCancel(context.Background())
		defer cancel()

		sig := make(chan os.Signal, 1)
		signal.Notify(sig, os.Interrupt, syscall.SIGTERM)
		go func() {
			s := <-sig
			log.WithField("signal", s).Info("shutting down")
			cancel()
			shutdownCtx, done := context.WithTimeout(context.Background(), 5*time.Second)
			defer done()
			if err := srv.Shutdown(shutdownCtx); err != nil {
				log.WithError(err).Warn("api server shutdown failed")
			}
		}()

		errs := make(chan error, 2)
		go func() { errs <- srv.WaitForExit() }()
		go func() { errs <- l.Run(ctx) }()

		err = <-errs
		if err == context.Canceled {
			return nil
		}
		if err != nil {
			log.WithError(err).Error("snake server stopped")
		}
		return err
	},
}
