// Package log provides the scanner's opt-in trace/debug logging, a thin
// wrapper over github.com/juju/loggo so the rest of the module never
// imports loggo directly.
package log

import "github.com/juju/loggo"

var logger = loggo.GetLogger("luna.lexer")

// SetLevel configures the module-wide logger level, e.g. "TRACE", "DEBUG",
// "WARNING". An empty or invalid level leaves the current level untouched.
func SetLevel(level string) {
	if level == "" {
		return
	}
	_ = loggo.ConfigureLoggers("luna.lexer=" + level)
}

// Tracef logs at TRACE level. Scanner hot paths call this unconditionally;
// loggo's own level check makes the call cheap when TRACE is disabled, so
// callers don't need to guard it themselves.
func Tracef(format string, args ...interface{}) {
	logger.Tracef(format, args...)
}

// Debugf logs at DEBUG level, for coarser per-token or per-file events.
func Debugf(format string, args ...interface{}) {
	logger.Debugf(format, args...)
}
