package cmd

import (
	"os"
	"time"

	"github.com/getsentry/sentry-go"
	"github.com/spf13/cobra"
)

const sentryFlushTimeout = 2 * time.Second

var rootCmd = &cobra.Command{
	Use:   "motifgen",
	Short: "Develops a short motif into a piece and writes it as MIDI",
	Long: `Develops a short motif into a multi-measure piece. Every measure runs the
motif through a chain of transforms chosen by the form, fits it to the chord
progression and optionally adds an accompaniment track.`,
	SilenceUsage: true,
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		sentry.Flush(sentryFlushTimeout)
		os.Exit(1)
	}
}
