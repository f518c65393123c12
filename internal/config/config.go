package config

import (
	"errors"
	"fmt"
	"math"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/viper"
)

const rootDir = ".tourbillon"
const configFileName = "config.toml"

const (
	EditorKey               = "editor"
	StorageKey              = "storage"
	FPSKey                  = "fps"
	SpeedKey                = "speed"
	SpeedStepKey            = "speed-step"
	MaxFrameDeltaKey        = "max-frame-delta"
	ResetFocusOnDeselectKey = "reset-focus-on-deselect"
	LogLevelKey             = "log-level"
	SnapshotWidthKey        = "snapshot-width"
	SnapshotHeightKey       = "snapshot-height"
)

const (
	DefaultFPS            = 30
	DefaultSpeed          = 1.0
	DefaultSpeedStep      = 0.1
	DefaultMaxFrameDelta  = 250 * time.Millisecond
	DefaultLogLevel       = "info"
	DefaultSnapshotWidth  = 1280
	DefaultSnapshotHeight = 960

	// MaxSpeed is the top of the speed slider.
	MaxSpeed = 2.0
)

// Config is the read side of the configuration used by the UI and commands.
type Config interface {
	Editor() string
	Storage() string
	FPS() int
	Speed() float64
	SpeedStep() float64
	MaxFrameDelta() time.Duration
	ResetFocusOnDeselect() bool
	LogLevel() string
	SnapshotSize() (int, int)
}

type config struct {
	v *viper.Viper
}

// New wraps v. A nil v uses the global viper instance populated by
// InitialiseConfigFile.
func New(v *viper.Viper) Config {
	if v == nil {
		v = viper.GetViper()
	}
	SetDefaults(v)
	return config{v: v}
}

// SetDefaults registers every default on v.
func SetDefaults(v *viper.Viper) {
	v.SetDefault(FPSKey, DefaultFPS)
	v.SetDefault(SpeedKey, DefaultSpeed)
	v.SetDefault(SpeedStepKey, DefaultSpeedStep)
	v.SetDefault(MaxFrameDeltaKey, DefaultMaxFrameDelta.String())
	v.SetDefault(ResetFocusOnDeselectKey, true)
	v.SetDefault(LogLevelKey, DefaultLogLevel)
	v.SetDefault(SnapshotWidthKey, DefaultSnapshotWidth)
	v.SetDefault(SnapshotHeightKey, DefaultSnapshotHeight)
}

func getDefaultEditor() string {
	if editor := os.Getenv("EDITOR"); editor != "" {
		return editor
	}

	if os.Getenv("WINDIR") != "" {
		return "notepad"
	}

	return "vim"
}

func (c config) Editor() string {
	if editor := c.v.GetString(EditorKey); editor != "" {
		return editor
	}
	return getDefaultEditor()
}

func (c config) Storage() string {
	if storage := c.v.GetString(StorageKey); storage != "" {
		return storage
	}

	storage, err := GetStorage()
	if err != nil {
		return filepath.Join(os.TempDir(), rootDir)
	}
	return storage
}

func (c config) FPS() int {
	fps := c.v.GetInt(FPSKey)
	if fps <= 0 || fps > 120 {
		return DefaultFPS
	}
	return fps
}

// Speed is the initial animation speed, kept inside the slider range.
func (c config) Speed() float64 {
	return ClampSpeed(c.v.GetFloat64(SpeedKey), DefaultSpeed)
}

func (c config) SpeedStep() float64 {
	step := c.v.GetFloat64(SpeedStepKey)
	if !(step > 0) || step > MaxSpeed {
		return DefaultSpeedStep
	}
	return step
}

func (c config) MaxFrameDelta() time.Duration {
	d := c.v.GetDuration(MaxFrameDeltaKey)
	if d <= 0 {
		return DefaultMaxFrameDelta
	}
	return d
}

func (c config) ResetFocusOnDeselect() bool {
	return c.v.GetBool(ResetFocusOnDeselectKey)
}

func (c config) LogLevel() string {
	return c.v.GetString(LogLevelKey)
}

func (c config) SnapshotSize() (int, int) {
	w, h := c.v.GetInt(SnapshotWidthKey), c.v.GetInt(SnapshotHeightKey)
	if w <= 0 {
		w = DefaultSnapshotWidth
	}
	if h <= 0 {
		h = DefaultSnapshotHeight
	}
	return w, h
}

// ClampSpeed keeps a user supplied speed inside [0, MaxSpeed]. NaN falls
// back to fallback.
func ClampSpeed(speed, fallback float64) float64 {
	if math.IsNaN(speed) {
		return fallback
	}
	return math.Max(0, math.Min(MaxSpeed, speed))
}

// InitialiseConfigFile points viper at ~/.tourbillon/config.toml, creating
// it with defaults on first run, and reads it.
func InitialiseConfigFile() (string, error) {
	configPath := viper.ConfigFileUsed()

	if configPath == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", err
		}

		dir := filepath.Join(home, rootDir)
		if err := os.MkdirAll(dir, 0755); err != nil {
			return "", err
		}

		configPath = filepath.Join(dir, configFileName)
		if err := initialiseAt(viper.GetViper(), configPath); err != nil {
			return "", err
		}
	}

	return configPath, nil
}

func initialiseAt(v *viper.Viper, configPath string) error {
	v.SetConfigFile(configPath)
	SetDefaults(v)

	if _, err := os.Stat(configPath); errors.Is(err, os.ErrNotExist) {
		v.SetDefault(EditorKey, getDefaultEditor())

		if err := v.WriteConfig(); err != nil {
			return fmt.Errorf("failed to write config: %w", err)
		}

		return nil
	}

	if err := v.ReadInConfig(); err != nil {
		return fmt.Errorf("failed to read config: %w", err)
	}

	return nil
}

func GetConfigFilePath() string {
	return viper.ConfigFileUsed()
}

// GetStorage returns the directory used for logs and snapshots.
func GetStorage() (string, error) {
	storage := viper.GetString(StorageKey)

	if storage != "" {
		return storage, nil
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}

	dir := filepath.Join(home, rootDir)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", err
	}

	return dir, nil
}
