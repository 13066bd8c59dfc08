// Package logging builds the process-wide zerolog logger that mirrors every
// event to the console and to a log file.
package logging

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/rs/zerolog"
)

// New returns a logger writing to stdout and to the file at path, creating
// parent directories as needed. The file handle stays open for the life of
// the process; there is no teardown. Unknown level strings fall back to info.
func New(level, path string) (zerolog.Logger, error) {
	lvl, err := zerolog.ParseLevel(strings.ToLower(level))
	if err != nil {
		lvl = zerolog.InfoLevel
	}

	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return zerolog.Nop(), fmt.Errorf("create log dir: %w", err)
		}
	}
	file, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return zerolog.Nop(), fmt.Errorf("open log file: %w", err)
	}

	console := zerolog.ConsoleWriter{Out: os.Stdout, TimeFormat: time.RFC3339}
	plain := zerolog.ConsoleWriter{Out: file, NoColor: true, TimeFormat: time.RFC3339}
	sink := zerolog.MultiLevelWriter(console, plain)
	return zerolog.New(sink).With().Timestamp().Logger().Level(lvl), nil
}
