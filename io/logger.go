package lemonio

import (
	"fmt"
	"io"
	"strings"
	"time"
)

// LogLevel represents the severity level of a log message
type LogLevel int

const (
	LevelDebug LogLevel = iota
	LevelInfo
	LevelWarning
	LevelError
)

// String returns the string representation of the log level
func (l LogLevel) String() string {
	switch l {
	case LevelDebug:
		return "DEBUG"
	case LevelInfo:
		return "INFO"
	case LevelWarning:
		return "WARN"
	case LevelError:
		return "ERROR"
	default:
		return "UNKNOWN"
	}
}

// LogFormat selects the prefix style
type LogFormat int

const (
	LogFormatTagged  LogFormat = iota // [INFO] [WARN] [ERROR] [DEBUG]
	LogFormatSymbols                  // ◆ ▲ ✗ ●
	LogFormatPlain                    // no prefix
)

// Logger writes leveled, optionally colored messages through an IOManager.
type Logger struct {
	io           *IOManager
	format       LogFormat
	prefixes     map[LogLevel]string
	minLevel     LogLevel
	withTime     bool
	timeFormat   string
	errorsStderr bool
	theme        Theme
}

// NewLogger creates a tagged logger bound to the given IOManager.
func NewLogger(io *IOManager) *Logger {
	return &Logger{
		io:           io,
		format:       LogFormatTagged,
		prefixes:     taggedPrefixes(),
		minLevel:     LevelInfo,
		timeFormat:   "15:04:05",
		errorsStderr: true,
		theme:        DefaultTheme(io),
	}
}

func taggedPrefixes() map[LogLevel]string {
	return map[LogLevel]string{
		LevelDebug:   "[DEBUG]",
		LevelInfo:    "[INFO]",
		LevelWarning: "[WARN]",
		LevelError:   "[ERROR]",
	}
}

func symbolPrefixes() map[LogLevel]string {
	return map[LogLevel]string{
		LevelDebug:   "●",
		LevelInfo:    "◆",
		LevelWarning: "▲",
		LevelError:   "✗",
	}
}

// WithFormat sets the log format and returns the logger for chaining
func (l *Logger) WithFormat(format LogFormat) *Logger {
	l.format = format
	switch format {
	case LogFormatSymbols:
		l.prefixes = symbolPrefixes()
	case LogFormatPlain:
		l.prefixes = map[LogLevel]string{}
	default:
		l.prefixes = taggedPrefixes()
	}
	return l
}

// WithLevel drops messages below level. Debug is off by default.
func (l *Logger) WithLevel(level LogLevel) *Logger {
	l.minLevel = level
	return l
}

// WithTimestamp enables or disables timestamp in log output
func (l *Logger) WithTimestamp(enabled bool) *Logger {
	l.withTime = enabled
	return l
}

// ErrorsToStderr controls whether errors and warnings go to stderr
func (l *Logger) ErrorsToStderr(enabled bool) *Logger {
	l.errorsStderr = enabled
	return l
}

// WithTheme sets a custom theme for semantic colors
func (l *Logger) WithTheme(theme Theme) *Logger {
	l.theme = theme
	return l
}

// Log outputs a message at the specified level
func (l *Logger) Log(level LogLevel, format string, args ...any) {
	if level < l.minLevel {
		return
	}
	msg := fmt.Sprintf(format, args...)
	fmt.Fprintln(l.writer(level), l.formatMessage(level, msg))
}

func (l *Logger) formatMessage(level LogLevel, msg string) string {
	if strings.TrimSpace(msg) == "" {
		return msg
	}
	parts := make([]string, 0, 3)
	if p := l.prefixes[level]; p != "" {
		parts = append(parts, p)
	}
	if l.withTime {
		parts = append(parts, time.Now().Format(l.timeFormat))
	}
	parts = append(parts, msg)
	return l.colorize(level, strings.Join(parts, " "))
}

func (l *Logger) colorize(level LogLevel, text string) string {
	var c ColorSpec
	switch level {
	case LevelDebug:
		c = l.theme.Debug
	case LevelInfo:
		c = l.theme.Info
	case LevelWarning:
		c = l.theme.Warning
	case LevelError:
		c = l.theme.Error
	default:
		return text
	}
	return NewStyle().Fg(c).Sprint(l.io, text)
}

func (l *Logger) writer(level LogLevel) io.Writer {
	if l.errorsStderr && level >= LevelWarning {
		return l.io.Err()
	}
	return l.io.Out()
}

// Debug logs a debug message
func (l *Logger) Debug(format string, args ...any) { l.Log(LevelDebug, format, args...) }

// Info logs an informational message
func (l *Logger) Info(format string, args ...any) { l.Log(LevelInfo, format, args...) }

// Warning logs a warning, to stderr by default
func (l *Logger) Warning(format string, args ...any) { l.Log(LevelWarning, format, args...) }

// Error logs an error, to stderr by default
func (l *Logger) Error(format string, args ...any) { l.Log(LevelError, format, args...) }
