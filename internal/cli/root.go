// Package cli wires the pngstash commands. File I/O and user-facing output
// happen here; the codec and workflow packages stay silent.
package cli

import (
	"os"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

var verbose bool

var rootCmd = &cobra.Command{
	Use:   "pngstash",
	Short: "Hide, extract, and inspect messages carried in PNG chunks",
	Long: `pngstash stores text messages inside custom PNG chunks.

A message travels in an ancillary chunk with a type of your choosing, so the
image keeps rendering everywhere while the payload rides along. The checksum
on every chunk means a tampered or corrupted message is detected on read.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		level := zerolog.WarnLevel
		if verbose {
			level = zerolog.DebugLevel
		}
		log.Logger = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).
			Level(level).
			With().Timestamp().Logger()
	},
}

// Execute runs the root command and exits non-zero on failure.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		log.Error().Err(err).Msg("command failed")
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
}
