package commands

import (
	"fmt"
	"os"

	"github.com/battlesnakeio/snake/config"
	"github.com/battlesnakeio/snake/loop"
	"github.com/battlesnakeio/snake/rules"
	"github.com/battlesnakeio/snake/version"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:     "snake",
	Short:   "snake plays a game of snake in the terminal or the browser",
	Version: version.Version,
	PersistentPreRunE: func(c *cobra.Command, args []string) error {
		lvl, err := log.ParseLevel(logLevel)
		if err != nil {
			return err
		}
		log.SetLevel(lvl)
		return nil
	},
	RunE: func(c *cobra.Command, args []string) error {
		return playCmd.RunE(c, args)
	},
}

var (
	rows         = config.Rows
	cols         = config.Cols
	tickInterval = config.TickInterval
	seed         int64
	collision    = string(rules.CollisionFull)
	logLevel     = "info"
)

func init() {
	flags := rootCmd.PersistentFlags()
	flags.IntVar(&rows, "rows", rows, "number of board rows")
	flags.IntVar(&cols, "cols", cols, "number of board columns")
	flags.DurationVarP(&tickInterval, "tick", "t", tickInterval, "time between two ticks")
	flags.Int64Var(&seed, "seed", seed, "seed for bit placement, 0 picks one from the clock")
	flags.StringVar(&collision, "collision", collision, "self collision check, as one of: [full, parity]")
	flags.StringVar(&logLevel, "log-level", logLevel, "log level")
	flags.BoolVar(&promEnable, "prometheus", promEnable, "enable prometheus metrics")
	flags.StringVar(&promListen, "prometheus-listen", promListen, "prometheus http endpoint")

	playCmd.Flags().StringVar(&logFile, "log-file", logFile, "file to write logs to while the board is up, empty discards them")
	playCmd.Flags().StringVar(&playWatch, "watch", playWatch, "also serve the game to browsers on this address")
	serveCmd.Flags().StringVar(&apiListen, "api-listen", apiListen, "address the api listens on")

	rootCmd.Flags().AddFlagSet(playCmd.Flags())
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(serveCmd)
}

func loopOptions(r loop.Renderer) loop.Options {
	return loop.Options{
		Game: rules.Config{
			Rows:      rows,
			Cols:      cols,
			Collision: rules.CollisionCheck(collision),
			Seed:      seed,
		},
		Renderer:     r,
		TickInterval: tickInterval,
	}
}

// Execute runs the root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}
