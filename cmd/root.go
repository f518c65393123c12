package cmd

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/charmbracelet/fang"
	"github.com/ionut-t/tourbillon/internal/config"
	"github.com/ionut-t/tourbillon/internal/logging"
	"github.com/ionut-t/tourbillon/internal/version"
	"github.com/ionut-t/tourbillon/pkg/movement"
	"github.com/ionut-t/tourbillon/pkg/viewer"
	"github.com/ionut-t/tourbillon/store/snapshots"
	"github.com/ionut-t/tourbillon/tui"
	"github.com/ionut-t/tourbillon/ui/styles"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "tourbillon",
	Short: "tourbillon is a TUI viewer for an animated mechanical watch movement.",
	RunE: func(cmd *cobra.Command, args []string) error {
		focus, _ := cmd.Flags().GetString("focus")
		return viewerUI(focus)
	},
}

func Execute() {
	rootCmd.AddCommand(
		configCmd(),
		versionCmd(),
		partsCmd(),
		snapshotCmd(),
		snapshotsCmd(),
	)

	err := fang.Execute(
		context.Background(),
		rootCmd,
		fang.WithVersion(version.Version()),
		fang.WithCommit(version.Commit()),
		fang.WithColorSchemeFunc(styles.FangColorScheme),
	)

	if err != nil {
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.Flags().StringP("focus", "f", movement.FocusOverview.String(), "Initial camera focus target")
}

func viewerUI(focus string) error {
	target, err := movement.ParseFocusTarget(focus)
	if err != nil {
		return err
	}

	cfg := config.New(nil)
	start := time.Now()

	logger, logFile, err := logging.OpenFile(cfg.Storage(), cfg.LogLevel(), start)
	if err != nil {
		return err
	}
	defer logFile.Close()

	logger.Info().Str("version", version.String()).Str("config", config.GetConfigFilePath()).Msg("starting viewer")

	opts := sessionOptions(cfg, logger)
	opts.InitialFocus = target
	session := viewer.New(opts)

	err = tui.Run(tui.Options{
		Config:    cfg,
		Session:   session,
		Snapshots: snapshots.New(cfg.Storage()),
		Logger:    logger,
	})
	if err != nil {
		logger.Error().Err(err).Msg("viewer stopped")
		return fmt.Errorf("error running UI: %w", err)
	}

	return nil
}
