package log

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// InitLogger configures the global logger. Console output is always on;
// if a log file path is given and writable, output is duplicated there.
func InitLogger(logFilePath string) {
	consoleWriter := zerolog.ConsoleWriter{
		Out:        os.Stdout,
		TimeFormat: time.ANSIC,
		FormatLevel: func(i any) string {
			return colorizeLevel(i.(string))
		},
		FormatMessage: func(i any) string {
			if i == nil {
				return ""
			}
			return fmt.Sprintf("> %s", i)
		},
	}

	writers := []io.Writer{consoleWriter}
	if fileWriter, err := openLogFile(logFilePath); err != nil {
		log.Warn().Msgf("File logging disabled: %v", err)
	} else if fileWriter != nil {
		writers = append(writers, fileWriter)
	}

	log.Logger = zerolog.New(zerolog.MultiLevelWriter(writers...)).With().Timestamp().Logger()
	zerolog.SetGlobalLevel(zerolog.InfoLevel)
}

// SetLogLevel sets the global logging level, defaulting to info on an
// unknown level string.
func SetLogLevel(level string) {
	logLevel, err := zerolog.ParseLevel(level)
	if err != nil {
		zerolog.SetGlobalLevel(zerolog.InfoLevel)
		log.Warn().Msgf("Invalid log level '%s'. Using 'info' level.", level)
		return
	}

	zerolog.SetGlobalLevel(logLevel)
}

func openLogFile(path string) (io.Writer, error) {
	if path == "" {
		return nil, nil
	}

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return nil, fmt.Errorf("could not create log directory for '%s': %w", path, err)
	}

	file, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0666)
	if err != nil {
		return nil, fmt.Errorf("could not open log file '%s': %w", path, err)
	}

	return file, nil
}

func colorizeLevel(level string) string {
	switch strings.ToLower(level) {
	case "debug":
		return "\033[36mDBG\033[0m" // Cyan
	case "info":
		return "\033[32mINF\033[0m" // Green
	case "warn":
		return "\033[33mWRN\033[0m" // Yellow
	case "error":
		return "\033[31mERR\033[0m" // Red
	case "fatal":
		return "\033[35mFTL\033[0m" // Magenta
	case "panic":
		return "\033[41mPNC\033[0m" // Red background
	default:
		return level
	}
}
