package logger

import (
	"fmt"
	"io"
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/natefinch/lumberjack.v2"

	"github.com/edgecomet/webkit/internal/common/configtypes"
)

// DynamicLogger wraps zap.Logger with per-output levels that can be changed
// after construction (for example by a --verbose flag)
type DynamicLogger struct {
	*zap.Logger
	consoleLevel     *zap.AtomicLevel
	fileLevel        *zap.AtomicLevel
	configuredConfig configtypes.LogConfig
}

type options struct {
	console io.Writer
}

// Option configures NewLogger.
type Option func(*options)

// WithConsoleWriter sends console output to w instead of stderr.
func WithConsoleWriter(w io.Writer) Option {
	return func(o *options) { o.console = w }
}

// SetLevel forces every enabled output to level.
func (dl *DynamicLogger) SetLevel(level string) {
	l := parseLogLevel(level)
	if dl.consoleLevel != nil {
		dl.consoleLevel.SetLevel(l)
	}
	if dl.fileLevel != nil {
		dl.fileLevel.SetLevel(l)
	}
}

// SwitchToConfiguredLevel restores the levels from the configuration
func (dl *DynamicLogger) SwitchToConfiguredLevel() {
	globalLevel := parseLogLevel(dl.configuredConfig.Level)

	if dl.consoleLevel != nil {
		dl.consoleLevel.SetLevel(resolveLogLevel(dl.configuredConfig.Console.Level, globalLevel))
	}
	if dl.fileLevel != nil {
		dl.fileLevel.SetLevel(resolveLogLevel(dl.configuredConfig.File.Level, globalLevel))
	}
}

// NewLogger creates a Zap logger for the configured console and file outputs.
// Console output goes to stderr so command results on stdout stay clean.
func NewLogger(config configtypes.LogConfig, opts ...Option) (*DynamicLogger, error) {
	o := options{console: os.Stderr}
	for _, opt := range opts {
		opt(&o)
	}

	// Global level is the fallback for outputs without an explicit level
	globalLevel := parseLogLevel(config.Level)

	var cores []zapcore.Core
	var consoleLevel *zap.AtomicLevel
	var fileLevel *zap.AtomicLevel

	if config.Console.Enabled {
		level := zap.NewAtomicLevelAt(resolveLogLevel(config.Console.Level, globalLevel))
		consoleLevel = &level
		consoleWriter := zapcore.Lock(zapcore.AddSync(o.console))
		cores = append(cores, zapcore.NewCore(createEncoder(config.Console.Format), consoleWriter, consoleLevel))
	}

	if config.File.Enabled {
		if config.File.Path == "" {
			return nil, fmt.Errorf("file.path must be specified when file logging is enabled")
		}

		level := zap.NewAtomicLevelAt(resolveLogLevel(config.File.Level, globalLevel))
		fileLevel = &level
		fileWriter := createFileWriter(config.File.Path, config.File.Rotation)
		cores = append(cores, zapcore.NewCore(createEncoder(config.File.Format), fileWriter, fileLevel))
	}

	if len(cores) == 0 {
		return nil, fmt.Errorf("at least one log output (console or file) must be enabled")
	}

	var core zapcore.Core
	if len(cores) == 1 {
		core = cores[0]
	} else {
		core = zapcore.NewTee(cores...)
	}

	return &DynamicLogger{
		Logger:           zap.New(core),
		consoleLevel:     consoleLevel,
		fileLevel:        fileLevel,
		configuredConfig: config,
	}, nil
}

// NewDefaultLogger creates the logger used before any config file is read:
// console only, warnings and above, no colors.
func NewDefaultLogger(opts ...Option) (*DynamicLogger, error) {
	config := configtypes.LogConfig{
		Level: configtypes.LogLevelWarn,
		Console: configtypes.ConsoleLogConfig{
			Enabled: true,
			Format:  configtypes.LogFormatText,
		},
	}
	return NewLogger(config, opts...)
}

// parseLogLevel converts string level to zapcore.Level
func parseLogLevel(level string) zapcore.Level {
	switch level {
	case configtypes.LogLevelDebug:
		return zap.DebugLevel
	case configtypes.LogLevelInfo:
		return zap.InfoLevel
	case configtypes.LogLevelWarn:
		return zap.WarnLevel
	case configtypes.LogLevelError:
		return zap.ErrorLevel
	default:
		return zap.InfoLevel
	}
}

// resolveLogLevel prefers the output's own level over the global one
func resolveLogLevel(outputLevel string, globalLevel zapcore.Level) zapcore.Level {
	if outputLevel != "" {
		return parseLogLevel(outputLevel)
	}
	return globalLevel
}

func createEncoder(format string) zapcore.Encoder {
	if format == configtypes.LogFormatJSON {
		return zapcore.NewJSONEncoder(zap.NewProductionEncoderConfig())
	}

	encoderConfig := zap.NewDevelopmentEncoderConfig()
	if format == configtypes.LogFormatText {
		encoderConfig.EncodeLevel = zapcore.CapitalLevelEncoder
	} else {
		encoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
	}
	return zapcore.NewConsoleEncoder(encoderConfig)
}

// createFileWriter returns a rotating file writer
func createFileWriter(path string, rotation configtypes.RotationConfig) zapcore.WriteSyncer {
	return zapcore.AddSync(&lumberjack.Logger{
		Filename:   path,
		MaxSize:    rotation.MaxSize,
		MaxAge:     rotation.MaxAge,
		MaxBackups: rotation.MaxBackups,
		Compress:   rotation.Compress,
	})
}
