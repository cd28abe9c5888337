// Package cmd holds the tvguide command line.
package cmd

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/Taichi-iskw/tv-guide/internal/logging"
)

var (
	verbose bool
	logFile string

	logger *zap.Logger
)

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "tvguide",
	Short: "Terminal TV channel guide",
	Long: `tvguide fetches the channel directory with the current schedules, lets you
filter, sort and search the channels, and remembers your favorite channels.

Run "tvguide browse" for the interactive guide or "tvguide list" for a one-shot listing.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error
		switch {
		case logFile != "":
			logger, err = logging.NewFile(verbose, logFile)
		case cmd.Name() == "browse":
			// stderr output would tear the interactive screen
			logger = zap.NewNop()
		default:
			logger, err = logging.New(verbose)
		}
		if err != nil {
			return err
		}

		cmd.SetContext(logging.WithContext(cmd.Context(), logger))
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if logger != nil {
			_ = logger.Sync()
		}
	},
}

// Execute runs the root command, cancelling on interrupt
func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		stop()
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging")
	rootCmd.PersistentFlags().StringVar(&logFile, "log-file", "", "Write logs to this file instead of stderr")
}
