package logging

import (
	"os"
	"path/filepath"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// New creates a zap logger that writes JSON to the given log file path.
// The TUI owns the terminal, so nothing goes to stderr.
func New(logPath, level string) (*zap.Logger, error) {
	return build(logPath, level, false)
}

// NewConsole is New plus a console core on stderr, for non-interactive commands.
func NewConsole(logPath, level string) (*zap.Logger, error) {
	return build(logPath, level, true)
}

func build(logPath, level string, console bool) (*zap.Logger, error) {
	lvl, err := zapcore.ParseLevel(level)
	if err != nil {
		return nil, err
	}

	if err := os.MkdirAll(filepath.Dir(logPath), 0700); err != nil {
		return nil, err
	}

	file, err := os.OpenFile(logPath, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0600)
	if err != nil {
		return nil, err
	}

	encoderCfg := zap.NewProductionEncoderConfig()
	encoderCfg.TimeKey = "ts"
	encoderCfg.EncodeTime = zapcore.ISO8601TimeEncoder

	core := zapcore.NewCore(zapcore.NewJSONEncoder(encoderCfg), zapcore.AddSync(file), lvl)
	if console {
		stderrCore := zapcore.NewCore(zapcore.NewConsoleEncoder(encoderCfg), zapcore.AddSync(os.Stderr), zapcore.WarnLevel)
		core = zapcore.NewTee(core, stderrCore)
	}

	logger := zap.New(core,
		zap.Fields(
			zap.String("app", "chatshell"),
			zap.Int("pid", os.Getpid()),
		),
	)

	return logger, nil
}
