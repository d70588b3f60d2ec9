package cli

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"github.com/pngstash/pngstash/internal/steg"
)

var printCmd = &cobra.Command{
	Use:   "print <png-file>",
	Short: "List every chunk in a PNG file",
	Args:  cobra.ExactArgs(1),
	RunE:  runPrint,
}

func init() {
	rootCmd.AddCommand(printCmd)
}

func runPrint(cmd *cobra.Command, args []string) error {
	img, err := os.ReadFile(args[0])
	if err != nil {
		return err
	}
	infos, err := steg.Scan(img)
	if err != nil {
		return err
	}

	rows := pterm.TableData{{"TYPE", "LENGTH", "CRC", "FLAGS"}}
	for _, info := range infos {
		rows = append(rows, []string{
			fmt.Sprintf("%q", info.Type),
			strconv.FormatUint(uint64(info.Length), 10),
			fmt.Sprintf("%08x", info.CRC),
			flagSummary(info),
		})
	}
	return pterm.DefaultTable.WithHasHeader().WithData(rows).Render()
}

func flagSummary(info steg.ChunkInfo) string {
	var flags []string
	if info.Critical {
		flags = append(flags, "critical")
	} else {
		flags = append(flags, "ancillary")
	}
	if info.Public {
		flags = append(flags, "public")
	} else {
		flags = append(flags, "private")
	}
	if info.SafeToCopy {
		flags = append(flags, "safe-to-copy")
	}
	if !info.Valid {
		flags = append(flags, "invalid")
	}
	return strings.Join(flags, ",")
}
