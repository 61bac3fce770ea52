package logger

import (
	"fmt"
	"os"
	"path/filepath"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// LogFilePath is the viewer log file, relative to the working directory.
const LogFilePath = "logs/viewer.log"

// New returns a JSON logger at level writing to stderr and LogFilePath.
func New(level string) (*zap.Logger, error) {
	return NewWithOutputs(level, "stderr", LogFilePath)
}

// NewWithOutputs returns a JSON logger at level writing to the given zap output paths.
// Parent directories of file outputs are created.
func NewWithOutputs(level string, outputs ...string) (*zap.Logger, error) {
	lvl, err := zapcore.ParseLevel(level)
	if err != nil {
		return nil, fmt.Errorf("logger: %w", err)
	}
	for _, out := range outputs {
		if out == "stderr" || out == "stdout" {
			continue
		}
		if err := os.MkdirAll(filepath.Dir(out), 0755); err != nil {
			return nil, fmt.Errorf("logger: %w", err)
		}
	}
	enc := zap.NewProductionEncoderConfig()
	enc.EncodeTime = zapcore.TimeEncoderOfLayout("2006-01-02 15:04:05")
	cfg := zap.Config{
		Level:            zap.NewAtomicLevelAt(lvl),
		Encoding:         "json",
		EncoderConfig:    enc,
		OutputPaths:      outputs,
		ErrorOutputPaths: []string{"stderr"},
		DisableCaller:    true,
	}
	l, err := cfg.Build()
	if err != nil {
		return nil, fmt.Errorf("logger: %w", err)
	}
	return l, nil
}
