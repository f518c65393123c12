package logging

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/rs/zerolog"
)

const logsDir = "logs"

// LogFilePath builds the log path for a session started at sessionStart.
func LogFilePath(storage string, sessionStart time.Time) string {
	return filepath.Join(
		storage,
		logsDir,
		fmt.Sprintf("tourbillon.%s.log", sessionStart.Format("20060102_150405")),
	)
}

// ParseLevel maps a config value to a zerolog level, defaulting to info.
func ParseLevel(level string) zerolog.Level {
	switch strings.ToUpper(strings.TrimSpace(level)) {
	case "TRACE":
		return zerolog.TraceLevel
	case "DEBUG":
		return zerolog.DebugLevel
	case "WARN":
		return zerolog.WarnLevel
	case "ERROR":
		return zerolog.ErrorLevel
	case "DISABLED", "OFF":
		return zerolog.Disabled
	default:
		return zerolog.InfoLevel
	}
}

// New builds a logger writing plain console lines to w.
func New(w io.Writer, level string) zerolog.Logger {
	return zerolog.New(zerolog.ConsoleWriter{
		Out:        w,
		TimeFormat: time.RFC3339,
		NoColor:    true,
	}).Level(ParseLevel(level)).With().Timestamp().Logger()
}

// OpenFile creates the session log file under storage. The terminal belongs
// to the UI, so logs never go to stdout. The caller closes the file.
func OpenFile(storage, level string, sessionStart time.Time) (zerolog.Logger, io.Closer, error) {
	path := LogFilePath(storage, sessionStart)

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return zerolog.Nop(), nil, fmt.Errorf("failed to create logs directory: %w", err)
	}

	file, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return zerolog.Nop(), nil, fmt.Errorf("failed to open log file: %w", err)
	}

	logger := New(file, level)
	logger.Info().Str("loglevel", logger.GetLevel().String()).Msg("Logging set up")

	return logger, file, nil
}
