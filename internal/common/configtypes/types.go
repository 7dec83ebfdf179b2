package configtypes

import (
	"fmt"

	"github.com/edgecomet/webkit/internal/common/compress"
	"github.com/edgecomet/webkit/pkg/bytesize"
	"github.com/edgecomet/webkit/pkg/seo"
)

// Log level constants
const (
	LogLevelDebug = "debug"
	LogLevelInfo  = "info"
	LogLevelWarn  = "warn"
	LogLevelError = "error"
)

// Log format constants
const (
	LogFormatJSON    = "json"
	LogFormatConsole = "console"
	LogFormatText    = "text"
)

// Defaults applied by the loader when a field is omitted
const (
	DefaultBytesBase      = int(bytesize.Binary)
	DefaultBytesPrecision = 2
	MaxBytesPrecision     = 20
)

// Config is the root configuration of the webkit CLI
type Config struct {
	Log    LogConfig    `yaml:"log"`
	Bytes  BytesConfig  `yaml:"bytes"`
	SEO    seo.Config   `yaml:"seo"`
	Output OutputConfig `yaml:"output"`
}

// BytesConfig sets the defaults of the bytes subcommands
type BytesConfig struct {
	Base      int           `yaml:"base"`                // 1000 or 1024
	Precision *int          `yaml:"precision,omitempty"` // fraction digits for format; nil = 2
	LongForm  bool          `yaml:"long_form"`           // "bytes" instead of "B" for values below 1 KB
	MaxOutput bytesize.Size `yaml:"max_output"`          // largest fragment "webkit seo" will write, 0 = unlimited
}

// OutputConfig controls how generated fragments are written to disk
type OutputConfig struct {
	Compression string `yaml:"compression,omitempty"` // none, snappy, lz4
}

type LogConfig struct {
	Level   string           `yaml:"level"`
	Console ConsoleLogConfig `yaml:"console"`
	File    FileLogConfig    `yaml:"file"`
}

type ConsoleLogConfig struct {
	Enabled bool   `yaml:"enabled"`
	Format  string `yaml:"format"`
	Level   string `yaml:"level,omitempty"`
}

type FileLogConfig struct {
	Enabled  bool           `yaml:"enabled"`
	Path     string         `yaml:"path"`
	Format   string         `yaml:"format"`
	Level    string         `yaml:"level,omitempty"`
	Rotation RotationConfig `yaml:"rotation"`
}

type RotationConfig struct {
	MaxSize    int  `yaml:"max_size"` // megabytes
	MaxAge     int  `yaml:"max_age"`  // days
	MaxBackups int  `yaml:"max_backups"`
	Compress   bool `yaml:"compress"`
}

// FormatOptions returns the bytesize format options described by c.
func (c BytesConfig) FormatOptions() bytesize.FormatOptions {
	opts := bytesize.DefaultFormatOptions()
	if c.Base != 0 {
		opts.Base = bytesize.Base(c.Base)
	}
	if c.Precision != nil {
		opts.Precision = *c.Precision
	}
	opts.LongForm = c.LongForm
	return opts
}

// Validate validates the whole configuration
func (c *Config) Validate() error {
	if c == nil {
		return nil
	}

	if err := c.Log.Validate(); err != nil {
		return fmt.Errorf("log: %w", err)
	}
	if err := c.Bytes.Validate(); err != nil {
		return fmt.Errorf("bytes: %w", err)
	}
	if err := c.Output.Validate(); err != nil {
		return fmt.Errorf("output: %w", err)
	}
	return nil
}

// Validate checks level and format names and the file path.
func (c LogConfig) Validate() error {
	if !validLogLevel(c.Level) {
		return fmt.Errorf("invalid level %q", c.Level)
	}
	if !validLogLevel(c.Console.Level) {
		return fmt.Errorf("console.level: invalid level %q", c.Console.Level)
	}
	if !validLogFormat(c.Console.Format) {
		return fmt.Errorf("console.format: invalid format %q", c.Console.Format)
	}
	if !validLogLevel(c.File.Level) {
		return fmt.Errorf("file.level: invalid level %q", c.File.Level)
	}
	if !validLogFormat(c.File.Format) {
		return fmt.Errorf("file.format: invalid format %q", c.File.Format)
	}
	if c.File.Enabled && c.File.Path == "" {
		return fmt.Errorf("file.path must be specified when file logging is enabled")
	}
	if c.File.Rotation.MaxSize < 0 || c.File.Rotation.MaxAge < 0 || c.File.Rotation.MaxBackups < 0 {
		return fmt.Errorf("file.rotation values must be >= 0")
	}
	return nil
}

// Validate checks base, precision and the output limit.
func (c BytesConfig) Validate() error {
	if c.Base != 0 && !bytesize.Base(c.Base).Valid() {
		return fmt.Errorf("base must be 1000 or 1024, got %d", c.Base)
	}
	if c.Precision != nil && (*c.Precision < 0 || *c.Precision > MaxBytesPrecision) {
		return fmt.Errorf("precision must be between 0 and %d, got %d", MaxBytesPrecision, *c.Precision)
	}
	if c.MaxOutput < 0 {
		return fmt.Errorf("max_output must be >= 0, got %d", c.MaxOutput)
	}
	return nil
}

// Validate checks the compression algorithm name.
func (c OutputConfig) Validate() error {
	_, err := compress.ParseAlgorithm(c.Compression)
	return err
}

// Algorithm returns the configured compression, None when unset or invalid.
func (c OutputConfig) Algorithm() compress.Algorithm {
	a, err := compress.ParseAlgorithm(c.Compression)
	if err != nil {
		return compress.None
	}
	return a
}

func validLogLevel(level string) bool {
	switch level {
	case "", LogLevelDebug, LogLevelInfo, LogLevelWarn, LogLevelError:
		return true
	}
	return false
}

func validLogFormat(format string) bool {
	switch format {
	case "", LogFormatJSON, LogFormatConsole, LogFormatText:
		return true
	}
	return false
}
