package main

import (
	"fmt"
	"log/slog"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"go.klb.dev/clipsight/internal/capture"
	"go.klb.dev/clipsight/internal/clip"
	"go.klb.dev/clipsight/internal/history"
	"go.klb.dev/clipsight/internal/interpret"
	"go.klb.dev/clipsight/internal/logging"
	"go.klb.dev/clipsight/internal/trigger"
	"go.klb.dev/clipsight/internal/ui"
)

func newRunCmd() *cobra.Command {
	v := viper.New()

	cmd := &cobra.Command{
		Use:   "run",
		Short: "Launch the interactive clipboard inspector",
		Long: `Starts the clipsight UI. Captures fire from the in-app capture key or
whenever the trigger file is touched; bind your desktop hotkey
(default suggestion: Ctrl+Shift+H) to touch it.

Logs go to a file because the terminal is owned by the UI.`,
		Args:    cobra.NoArgs,
		PreRunE: func(cmd *cobra.Command, _ []string) error { return bindViper(cmd, v) },
		RunE:    func(_ *cobra.Command, _ []string) error { return runUI(v) },
	}

	f := cmd.Flags()
	f.Int("max-size", 50, "history capacity (entries)")
	f.String("trigger-file", defaultTriggerFile(), "file whose creation requests a capture")
	f.String("hotkey", "ctrl+h", "in-app capture key")
	f.String("log-file", defaultLogFile(), "log file path")
	f.String("log-level", "info", "log level: debug|info|warn|error")
	addConfigFlag(cmd)

	return cmd
}

func runUI(v *viper.Viper) error {
	maxSize := v.GetInt("max-size")
	if maxSize <= 0 {
		return fmt.Errorf("max-size must be positive, got %d", maxSize)
	}

	if err := logging.SetupFile(v.GetString("log-file"), logging.ParseLevel(v.GetString("log-level"))); err != nil {
		return err
	}

	slog.Info("clipsight starting",
		"version", Version,
		"max_size", maxSize,
		"trigger_file", v.GetString("trigger-file"),
	)

	backend := clip.New()
	ctrl := capture.New(history.New(maxSize), backend)
	registry := interpret.NewRegistry()

	var signals <-chan struct{}
	fw, err := trigger.WatchFile(v.GetString("trigger-file"))
	if err != nil {
		slog.Warn("trigger file unavailable, global hotkey disabled", "err", err)
	} else {
		defer fw.Close()
		signals = fw.Signals()
	}

	m := ui.New(ctrl, registry, ui.DefaultKeyMap(v.GetString("hotkey")), signals)
	p := tea.NewProgram(m, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("ui: %w", err)
	}
	return nil
}
