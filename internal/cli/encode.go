package cli

import (
	"os"

	"github.com/pterm/pterm"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/pngstash/pngstash/internal/steg"
)

var (
	encodeOut      string
	encodeCompress bool
)

var encodeCmd = &cobra.Command{
	Use:   "encode <png-file> <chunk-type> <message>",
	Short: "Hide a message in a PNG file",
	Args:  cobra.ExactArgs(3),
	RunE:  runEncode,
}

func init() {
	encodeCmd.Flags().StringVarP(&encodeOut, "out", "o", "", "write the result here instead of overwriting the input")
	encodeCmd.Flags().BoolVar(&encodeCompress, "compress", false, "lz4-compress the message before embedding")
	rootCmd.AddCommand(encodeCmd)
}

func runEncode(cmd *cobra.Command, args []string) error {
	path, typ, message := args[0], args[1], args[2]

	img, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	out, err := steg.Embed(img, typ, message, encodeCompress)
	if err != nil {
		return err
	}

	dst := encodeOut
	if dst == "" {
		dst = path
	}
	if err := os.WriteFile(dst, out, 0o644); err != nil {
		return err
	}
	log.Debug().
		Str("file", dst).
		Str("type", typ).
		Bool("compressed", encodeCompress).
		Int("file_bytes", len(out)).
		Msg("message embedded")
	pterm.Success.Printfln("embedded %d-byte message as %q in %s", len(message), typ, dst)
	return nil
}
