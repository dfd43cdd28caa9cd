// Package logger builds leveled, per-module loggers on top of go-logging.
package logger

import (
	"os"
	"time"

	"github.com/op/go-logging"
)

// DefaultLevel is used when a level string cannot be parsed.
const DefaultLevel = logging.INFO

const format = `%{color}%{time:15:04:05.000} %{module} ▶ %{level:.4s}%{color:reset} %{message}`

// Logger is the subset of *logging.Logger the library depends on.
type Logger interface {
	Debug(args ...interface{})
	Debugf(format string, args ...interface{})
	Info(args ...interface{})
	Infof(format string, args ...interface{})
	Notice(args ...interface{})
	Noticef(format string, args ...interface{})
	Warning(args ...interface{})
	Warningf(format string, args ...interface{})
	Error(args ...interface{})
	Errorf(format string, args ...interface{})
	IsEnabledFor(level logging.Level) bool
}

// NewLogger returns a logger for module writing to stdout at the given level
// ("DEBUG", "INFO", "NOTICE", "WARNING", "ERROR", "CRITICAL"). Unknown levels
// fall back to DefaultLevel.
func NewLogger(level string, module string) Logger {
	lvl, err := logging.LogLevel(level)
	if err != nil {
		lvl = DefaultLevel
	}

	backend := logging.NewLogBackend(os.Stdout, "", 0)
	formatted := logging.NewBackendFormatter(backend, logging.MustStringFormatter(format))
	leveled := logging.AddModuleLevel(formatted)
	leveled.SetLevel(lvl, module)

	log := logging.MustGetLogger(module)
	log.SetBackend(leveled)
	// IsEnabledFor consults the package-level backend, keep it in step.
	logging.SetLevel(lvl, module)

	return log
}

// ParseTime splits an elapsed duration into hours, minutes and seconds.
func ParseTime(elapsed time.Duration) (uint32, uint32, uint32) {
	total := uint32(elapsed.Round(time.Second).Seconds())
	hours := total / 3600
	minutes := total % 3600 / 60
	seconds := total % 60

	return hours, minutes, seconds
}
