// clipsight: clipboard snapshot history with interpreters.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"go.klb.dev/clipsight/internal/logging"
)

// Version is set at build time via -ldflags "-X main.Version=x.y.z".
var Version = "dev"

func main() {
	root := &cobra.Command{
		Use:   "clipsight",
		Short: "Clipboard snapshot history with interpreters",
		Long: `clipsight captures clipboard text snapshots into a bounded history and
runs a set of interpreters over the selected snapshot: hex dump, UUID
decomposition, color-code decoding, and file-path inspection.

Run "clipsight run" for the interactive UI. Captures fire from the in-app
key, or globally by binding a desktop/compositor hotkey (e.g. Ctrl+Shift+H)
to touch the trigger file:

  bind = CTRL+SHIFT+H, exec, touch /tmp/clipsight-trigger

Config file search order (first found wins):
  $HOME/.config/clipsight/clipsight.toml
  path supplied via --config

All flags can be set via CLIPSIGHT_<FLAG> env vars or config-file keys.`,
		SilenceUsage: true,
	}

	root.AddCommand(
		newRunCmd(),
		newInterpretCmd(),
		newVersionCmd(),
	)

	if err := root.Execute(); err != nil {
		os.Exit(1)
	}
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Args:  cobra.NoArgs,
		Run: func(_ *cobra.Command, _ []string) {
			fmt.Printf("clipsight %s\n", Version)
		},
	}
}

// resolveLogging sets up the global slog logger after flags are parsed.
func resolveLogging(formatStr, levelStr string) {
	logging.Setup(logging.ParseFormat(formatStr), logging.ParseLevel(levelStr))
}
