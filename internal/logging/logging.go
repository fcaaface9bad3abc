// Package logging provides the debug log used by the gateway client and
// the TUI. A terminal UI owns stdout, so diagnostics go to a log file under
// the config directory instead.
package logging

import (
	"os"
	"path/filepath"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// New builds the process logger. When debug is false it returns a no-op
// logger; callers never need nil checks.
func New(dir string, debug bool) *zap.Logger {
	if !debug {
		return zap.NewNop()
	}

	if err := os.MkdirAll(dir, 0755); err != nil {
		return zap.NewNop()
	}

	path := filepath.Join(dir, "pulse.log")
	file, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0644)
	if err != nil {
		return zap.NewNop()
	}

	encoderCfg := zap.NewProductionEncoderConfig()
	encoderCfg.EncodeTime = zapcore.ISO8601TimeEncoder

	core := zapcore.NewCore(
		zapcore.NewJSONEncoder(encoderCfg),
		zapcore.AddSync(file),
		zapcore.DebugLevel,
	)

	return zap.New(core)
}
