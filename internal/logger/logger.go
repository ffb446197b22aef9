package logger

import (
	"io"
	"os"
	"strings"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"golang.org/x/term"
)

var (
	// global is the logger used when a context carries none.
	//nolint:gochecknoglobals // Logger is used all over the project, so it's okay.
	global *zap.SugaredLogger
	// level is shared by every logger built without an explicit level, so SetLevel reaches them all.
	//nolint:gochecknoglobals // Runtime level switch for the whole process.
	level = zap.NewAtomicLevelAt(zap.InfoLevel)
	// levelNames lists the accepted spellings of each level.
	//nolint:gochecknoglobals // Read-only lookup table.
	levelNames = map[string]zapcore.Level{
		"":        zapcore.InfoLevel,
		"debug":   zapcore.DebugLevel,
		"info":    zapcore.InfoLevel,
		"warn":    zapcore.WarnLevel,
		"warning": zapcore.WarnLevel,
		"error":   zapcore.ErrorLevel,
		"fatal":   zapcore.FatalLevel,
	}
)

func init() { //nolint:gochecknoinits // Packages log before main configures anything.
	SetLogger(New(nil))
}

// New creates a console logger on stdout.
// A nil level means the shared process level.
func New(lvl zapcore.LevelEnabler, options ...zap.Option) *zap.SugaredLogger {
	return NewWithWriter(os.Stdout, lvl, options...)
}

// NewWithWriter creates a console logger on w. Levels are colored only when w is a terminal.
func NewWithWriter(w io.Writer, lvl zapcore.LevelEnabler, options ...zap.Option) *zap.SugaredLogger {
	if lvl == nil {
		lvl = level
	}

	encoder := zapcore.NewConsoleEncoder(encoderConfig(isTerminal(w)))
	core := zapcore.NewCore(encoder, zapcore.AddSync(w), lvl)

	return zap.New(core, options...).Sugar()
}

// encoderConfig lays out one narration line: wall clock, level, logger name, message, fields.
func encoderConfig(color bool) zapcore.EncoderConfig {
	cfg := zap.NewDevelopmentEncoderConfig()
	cfg.EncodeTime = zapcore.TimeEncoderOfLayout("15:04:05.000")
	cfg.CallerKey = zapcore.OmitKey
	cfg.StacktraceKey = zapcore.OmitKey
	cfg.ConsoleSeparator = "  "

	cfg.EncodeLevel = zapcore.CapitalLevelEncoder
	if color {
		cfg.EncodeLevel = zapcore.CapitalColorLevelEncoder
	}

	return cfg
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)

	return ok && term.IsTerminal(int(f.Fd()))
}

// ParseLogLevel converts a level name, case-insensitively, to a zap level.
// An empty name means info.
func ParseLogLevel(s string) (zapcore.Level, bool) {
	lvl, ok := levelNames[strings.ToLower(strings.TrimSpace(s))]
	if !ok {
		return zapcore.InfoLevel, false
	}

	return lvl, true
}

// Level returns the shared process level.
func Level() zapcore.Level {
	return level.Level()
}

// Logger returns the global logger.
func Logger() *zap.SugaredLogger {
	return global
}

// SetLogger replaces the global logger. Not safe for concurrent use.
func SetLogger(l *zap.SugaredLogger) {
	global = l
}

// SetLevel changes the shared process level.
func SetLevel(lvl zapcore.Level) {
	level.SetLevel(lvl)
}
