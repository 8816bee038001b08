// Package logging holds the process-wide zap logger used by the CLI and the server.
package logging

import (
	"os"
	"strings"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"expense-split/internal/errors"
)

// Logger is the global logger. It starts as a warn-level console logger on
// stderr and is replaced by Initialize once configuration is loaded.
var Logger *zap.Logger

// Config selects the level, encoding and destination of log output.
type Config struct {
	// Level is debug, info, warn or error
	Level string `json:"level" mapstructure:"level" yaml:"level"`

	// Format is console or json
	Format string `json:"format" mapstructure:"format" yaml:"format"`

	// Output is stdout, stderr or a file path
	Output string `json:"output" mapstructure:"output" yaml:"output"`

	// Development adds stack traces to error entries
	Development bool `json:"development" mapstructure:"development" yaml:"development"`
}

// DefaultConfig keeps calculator output clean: only warnings reach stderr.
func DefaultConfig() Config {
	return Config{
		Level:  "warn",
		Format: "console",
		Output: "stderr",
	}
}

// Initialize replaces the global logger. An unknown level falls back to info.
func Initialize(cfg Config) error {
	sink, err := openSink(cfg.Output)
	if err != nil {
		return err
	}

	level, err := zapcore.ParseLevel(strings.TrimSpace(cfg.Level))
	if err != nil {
		level = zapcore.InfoLevel
	}

	opts := []zap.Option{zap.AddCaller()}
	if cfg.Development {
		opts = append(opts, zap.Development(), zap.AddStacktrace(zapcore.ErrorLevel))
	}

	Logger = zap.New(zapcore.NewCore(newEncoder(cfg.Format), sink, level), opts...)
	return nil
}

func newEncoder(format string) zapcore.Encoder {
	ec := zap.NewProductionEncoderConfig()
	ec.TimeKey = "timestamp"
	ec.EncodeTime = zapcore.ISO8601TimeEncoder

	if strings.EqualFold(format, "json") {
		return zapcore.NewJSONEncoder(ec)
	}
	ec.EncodeLevel = zapcore.CapitalColorLevelEncoder
	return zapcore.NewConsoleEncoder(ec)
}

func openSink(output string) (zapcore.WriteSyncer, error) {
	switch output {
	case "stdout":
		return zapcore.Lock(os.Stdout), nil
	case "stderr", "":
		return zapcore.Lock(os.Stderr), nil
	}
	f, err := os.OpenFile(output, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return nil, errors.Config("open log file "+output, err)
	}
	return zapcore.AddSync(f), nil
}

// UseNop silences the global logger.
func UseNop() {
	Logger = zap.NewNop()
}

// Sync flushes buffered entries.
func Sync() {
	if Logger != nil {
		_ = Logger.Sync()
	}
}

// With returns a child of the global logger carrying fields.
func With(fields ...zap.Field) *zap.Logger {
	return Logger.With(fields...)
}

func Debug(msg string, fields ...zap.Field) { Logger.Debug(msg, fields...) }
func Info(msg string, fields ...zap.Field) { Logger.Info(msg, fields...) }
func Warn(msg string, fields ...zap.Field) { Logger.Warn(msg, fields...) }
func Error(msg string, fields ...zap.Field) { Logger.Error(msg, fields...) }

func init() {
	_ = Initialize(DefaultConfig())
}
