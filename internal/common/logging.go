package common

import (
	"os"
	"strings"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// LogLevel represents the severity of a log message
type LogLevel int

const (
	LogDebug LogLevel = iota
	LogInfo
	LogWarn
	LogError
	LogFatal
)

var logLevelNames = map[LogLevel]string{
	LogDebug: "DEBUG",
	LogInfo:  "INFO",
	LogWarn:  "WARN",
	LogError: "ERROR",
	LogFatal: "FATAL",
}

var zapLevels = map[LogLevel]zapcore.Level{
	LogDebug: zapcore.DebugLevel,
	LogInfo:  zapcore.InfoLevel,
	LogWarn:  zapcore.WarnLevel,
	LogError: zapcore.ErrorLevel,
	LogFatal: zapcore.FatalLevel,
}

// String returns the upper-case level name
func (l LogLevel) String() string {
	if name, ok := logLevelNames[l]; ok {
		return name
	}
	return "UNKNOWN"
}

// ParseLogLevel maps a config level name to a LogLevel
func ParseLogLevel(name string) (LogLevel, bool) {
	for level, levelName := range logLevelNames {
		if strings.EqualFold(levelName, name) {
			return level, true
		}
	}
	return LogInfo, false
}

// globalLevel is shared by every logger built with NewSafeLogger
var globalLevel = zap.NewAtomicLevelAt(zapcore.InfoLevel)

func init() {
	if debug := os.Getenv(ENV_DEBUG); debug == "true" || debug == "1" {
		globalLevel.SetLevel(zapcore.DebugLevel)
	}
}

// SetGlobalLevel changes the minimum level of all package loggers at once
func SetGlobalLevel(level LogLevel) {
	globalLevel.SetLevel(zapLevels[level])
}

// SafeLogger provides STDIO-safe logging that only writes to stderr.
// Stdout is reserved for command output.
type SafeLogger struct {
	prefix string
	level  zap.AtomicLevel
	sugar  *zap.SugaredLogger
}

// NewSafeLogger creates a new safe logger with the given prefix
func NewSafeLogger(prefix string) *SafeLogger {
	encoderConfig := zap.NewDevelopmentEncoderConfig()
	encoderConfig.EncodeTime = zapcore.TimeEncoderOfLayout("2006/01/02 15:04:05")
	encoderConfig.EncodeLevel = zapcore.CapitalLevelEncoder
	encoderConfig.EncodeCaller = nil
	encoderConfig.ConsoleSeparator = " "

	core := zapcore.NewCore(
		zapcore.NewConsoleEncoder(encoderConfig),
		zapcore.Lock(os.Stderr),
		globalLevel,
	)
	return NewSafeLoggerWithCore(prefix, core, globalLevel)
}

// NewSafeLoggerWithCore builds a logger on an existing zap core, mainly for tests
func NewSafeLoggerWithCore(prefix string, core zapcore.Core, level zap.AtomicLevel) *SafeLogger {
	return &SafeLogger{
		prefix: prefix,
		level:  level,
		sugar:  zap.New(core).Named(prefix).Sugar(),
	}
}

// SetLevel sets the minimum log level. Loggers created by NewSafeLogger share
// one level, so this is equivalent to SetGlobalLevel for them.
func (l *SafeLogger) SetLevel(level LogLevel) {
	l.level.SetLevel(zapLevels[level])
}

// With returns a child logger carrying the given key/value pairs
func (l *SafeLogger) With(keysAndValues ...interface{}) *SafeLogger {
	return &SafeLogger{
		prefix: l.prefix,
		level:  l.level,
		sugar:  l.sugar.With(keysAndValues...),
	}
}

// Debug logs a debug message
func (l *SafeLogger) Debug(format string, args ...interface{}) {
	l.sugar.Debugf(format, args...)
}

// Info logs an info message
func (l *SafeLogger) Info(format string, args ...interface{}) {
	l.sugar.Infof(format, args...)
}

// Warn logs a warning message
func (l *SafeLogger) Warn(format string, args ...interface{}) {
	l.sugar.Warnf(format, args...)
}

// Error logs an error message
func (l *SafeLogger) Error(format string, args ...interface{}) {
	l.sugar.Errorf(format, args...)
}

// Fatal logs a fatal message and exits
func (l *SafeLogger) Fatal(format string, args ...interface{}) {
	l.sugar.Fatalf(format, args...)
}

// Sync flushes buffered entries
func (l *SafeLogger) Sync() error {
	return l.sugar.Sync()
}

// Global logger instances for convenience
var (
	CLILogger   = NewSafeLogger("CLI")
	FetchLogger = NewSafeLogger("Fetch")
	TaskLogger  = NewSafeLogger("Tasks")
)

