// Package logging builds the zap logger shared by the CLI and the drivers.
package logging

import (
	"fmt"
	"io"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

const (
	FormatJSON    = "json"
	FormatConsole = "console"
)

// Options configures New.
type Options struct {
	// Verbose lowers the level to debug.
	Verbose bool

	// Format is FormatJSON or FormatConsole. Empty means FormatConsole.
	Format string

	// Output replaces stderr when set.
	Output io.Writer
}

// New builds a logger. JSON output uses zap's production settings and console
// output its development settings, both at info level unless Verbose is set.
func New(opts Options) (*zap.Logger, error) {
	var config zap.Config
	switch opts.Format {
	case FormatJSON:
		config = zap.NewProductionConfig()
	case FormatConsole, "":
		config = zap.NewDevelopmentConfig()
		config.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
		config.DisableStacktrace = true
	default:
		return nil, fmt.Errorf("unknown log format %q, want %s or %s", opts.Format, FormatJSON, FormatConsole)
	}

	level := zapcore.InfoLevel
	if opts.Verbose {
		level = zapcore.DebugLevel
	}
	config.Level = zap.NewAtomicLevelAt(level)

	if opts.Output != nil {
		var encoder zapcore.Encoder
		if opts.Format == FormatJSON {
			encoder = zapcore.NewJSONEncoder(config.EncoderConfig)
		} else {
			config.EncoderConfig.EncodeLevel = zapcore.CapitalLevelEncoder
			encoder = zapcore.NewConsoleEncoder(config.EncoderConfig)
		}
		return zap.New(zapcore.NewCore(encoder, zapcore.AddSync(opts.Output), config.Level)), nil
	}

	logger, err := config.Build()
	if err != nil {
		return nil, fmt.Errorf("failed to initialize logger: %w", err)
	}
	return logger, nil
}

// Nop returns a logger that discards everything.
func Nop() *zap.Logger {
	return zap.NewNop()
}
