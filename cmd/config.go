package cmd

import (
	"errors"
	"fmt"
	"os"
	"os/exec"
	"strconv"
	"time"

	"github.com/charmbracelet/huh"
	"github.com/ionut-t/tourbillon/internal/config"
	"github.com/ionut-t/tourbillon/ui/styles"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// configFlags maps each settable key to its shorthand and usage.
var configFlags = []struct {
	key, short, usage string
}{
	{config.EditorKey, "e", "Set the editor used by --edit"},
	{config.StorageKey, "s", "Set the directory for logs and snapshots"},
	{config.FPSKey, "r", "Set the frame rate of the viewer"},
	{config.SpeedKey, "", "Set the initial animation speed (0-2)"},
	{config.SpeedStepKey, "", "Set the speed change per key press"},
	{config.MaxFrameDeltaKey, "", "Set the longest frame the animation will simulate (e.g. 250ms)"},
	{config.ResetFocusOnDeselectKey, "", "Return the camera to the overview on deselect (true/false)"},
	{config.LogLevelKey, "l", "Set the log level (trace, debug, info, warn, error, off)"},
	{config.SnapshotWidthKey, "", "Set the snapshot width in pixels"},
	{config.SnapshotHeightKey, "", "Set the snapshot height in pixels"},
}

func configCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Manage configuration",
		Long:  "Set configuration values with flags. Without flags an interactive form is shown.",
		RunE: func(cmd *cobra.Command, args []string) error {
			if edit, _ := cmd.Flags().GetBool("edit"); edit {
				return openInEditor(config.GetConfigFilePath())
			}

			flagsSet := false

			for _, f := range configFlags {
				if !cmd.Flags().Changed(f.key) {
					continue
				}

				value, _ := cmd.Flags().GetString(f.key)
				parsed, err := parseConfigValue(f.key, value)
				if err != nil {
					return err
				}

				viper.Set(f.key, parsed)
				flagsSet = true
				fmt.Fprintf(cmd.OutOrStdout(), "%s set to: %v\n", f.key, parsed)
			}

			if !flagsSet {
				if err := configForm(viper.GetViper()); err != nil {
					return err
				}
			}

			if err := viper.WriteConfig(); err != nil {
				return fmt.Errorf("error writing config: %w", err)
			}

			return nil
		},
	}

	for _, f := range configFlags {
		cmd.Flags().StringP(f.key, f.short, "", f.usage)
	}
	cmd.Flags().Bool("edit", false, "Open the config file in the configured editor")

	return cmd
}

// parseConfigValue converts a flag string to the type stored for key.
func parseConfigValue(key, value string) (any, error) {
	switch key {
	case config.FPSKey, config.SnapshotWidthKey, config.SnapshotHeightKey:
		n, err := strconv.Atoi(value)
		if err != nil || n <= 0 {
			return nil, fmt.Errorf("%s must be a positive integer", key)
		}
		return n, nil

	case config.SpeedKey, config.SpeedStepKey:
		f, err := strconv.ParseFloat(value, 64)
		if err != nil || f < 0 || f > config.MaxSpeed {
			return nil, fmt.Errorf("%s must be a number between 0 and %.0f", key, config.MaxSpeed)
		}
		return f, nil

	case config.ResetFocusOnDeselectKey:
		b, err := strconv.ParseBool(value)
		if err != nil {
			return nil, fmt.Errorf("%s must be true or false", key)
		}
		return b, nil

	case config.MaxFrameDeltaKey:
		if d, err := time.ParseDuration(value); err != nil || d <= 0 {
			return nil, fmt.Errorf("%s must be a positive duration such as 250ms", key)
		}
		return value, nil
	}

	if value == "" {
		return nil, fmt.Errorf("%s cannot be empty", key)
	}
	return value, nil
}

func configForm(v *viper.Viper) error {
	cfg := config.New(v)

	fps := strconv.Itoa(cfg.FPS())
	speed := strconv.FormatFloat(cfg.Speed(), 'f', -1, 64)
	step := strconv.FormatFloat(cfg.SpeedStep(), 'f', -1, 64)
	level := cfg.LogLevel()
	resetFocus := cfg.ResetFocusOnDeselect()
	storage := cfg.Storage()

	validate := func(key string) func(string) error {
		return func(s string) error {
			_, err := parseConfigValue(key, s)
			return err
		}
	}

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().Title("Storage").Value(&storage).Validate(validate(config.StorageKey)),
			huh.NewInput().Title("Frames per second").Value(&fps).Validate(validate(config.FPSKey)),
			huh.NewInput().Title("Initial speed").Value(&speed).Validate(validate(config.SpeedKey)),
			huh.NewInput().Title("Speed step").Value(&step).Validate(validate(config.SpeedStepKey)),
		),
		huh.NewGroup(
			huh.NewConfirm().
				Title("Reset camera on deselect?").
				Value(&resetFocus),
			huh.NewSelect[string]().
				Title("Log level").
				Options(huh.NewOptions("trace", "debug", "info", "warn", "error", "off")...).
				Value(&level),
		),
	).WithTheme(styles.FormTheme())

	if err := form.Run(); err != nil {
		if errors.Is(err, huh.ErrUserAborted) {
			return nil
		}
		return err
	}

	for key, value := range map[string]string{
		config.StorageKey:   storage,
		config.FPSKey:       fps,
		config.SpeedKey:     speed,
		config.SpeedStepKey: step,
	} {
		parsed, err := parseConfigValue(key, value)
		if err != nil {
			return err
		}
		v.Set(key, parsed)
	}

	v.Set(config.ResetFocusOnDeselectKey, resetFocus)
	v.Set(config.LogLevelKey, level)

	return nil
}

func openInEditor(configPath string) error {
	editor := config.New(nil).Editor()

	cmd := exec.Command(editor, configPath)
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr

	if err := cmd.Run(); err != nil {
		return fmt.Errorf("error opening editor: %w", err)
	}

	return nil
}

func initConfig() {
	if _, err := config.InitialiseConfigFile(); err != nil {
		fmt.Fprintf(os.Stderr, "Error initializing config: %v\n", err)
	}
}
