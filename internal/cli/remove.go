package cli

import (
	"os"

	"github.com/pterm/pterm"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/pngstash/pngstash/internal/steg"
)

var removeOut string

var removeCmd = &cobra.Command{
	Use:   "remove <png-file> <chunk-type>",
	Short: "Remove the first chunk of a given type from a PNG file",
	Args:  cobra.ExactArgs(2),
	RunE:  runRemove,
}

func init() {
	removeCmd.Flags().StringVarP(&removeOut, "out", "o", "", "write the result here instead of overwriting the input")
	rootCmd.AddCommand(removeCmd)
}

func runRemove(cmd *cobra.Command, args []string) error {
	path, typ := args[0], args[1]

	img, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	out, removed, err := steg.Remove(img, typ)
	if err != nil {
		return err
	}

	dst := removeOut
	if dst == "" {
		dst = path
	}
	if err := os.WriteFile(dst, out, 0o644); err != nil {
		return err
	}
	log.Debug().
		Str("file", dst).
		Str("type", typ).
		Uint32("removed_length", removed.Length()).
		Msg("chunk removed")
	pterm.Success.Printfln("removed %q chunk (%d payload bytes) from %s", typ, removed.Length(), dst)
	return nil
}
