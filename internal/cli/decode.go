package cli

import (
	"fmt"
	"os"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/pngstash/pngstash/internal/steg"
)

var decodeCmd = &cobra.Command{
	Use:   "decode <png-file> <chunk-type>",
	Short: "Extract a hidden message from a PNG file",
	Args:  cobra.ExactArgs(2),
	RunE:  runDecode,
}

func init() {
	rootCmd.AddCommand(decodeCmd)
}

func runDecode(cmd *cobra.Command, args []string) error {
	path, typ := args[0], args[1]

	img, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	message, err := steg.Extract(img, typ)
	if err != nil {
		return err
	}
	log.Debug().Str("file", path).Str("type", typ).Int("bytes", len(message)).Msg("message extracted")

	// The message itself goes to stdout, unadorned, so it can be piped.
	fmt.Fprintln(cmd.OutOrStdout(), message)
	return nil
}
