package config

import (
	"fmt"
	"os"

	"go.uber.org/zap"

	"github.com/edgecomet/webkit/internal/common/configtypes"
	"github.com/edgecomet/webkit/internal/common/yamlutil"
	"github.com/edgecomet/webkit/pkg/seo"
)

// Default returns the configuration used when no config file is given.
func Default() *configtypes.Config {
	config := &configtypes.Config{SEO: seo.DefaultConfig()}
	applyDefaults(config)
	return config
}

// applyDefaults fills in values omitted from the config file
func applyDefaults(config *configtypes.Config) {
	// If both outputs are disabled (zero values), enable console by default
	if !config.Log.Console.Enabled && !config.Log.File.Enabled {
		config.Log.Console.Enabled = true
	}
	if config.Log.Level == "" {
		config.Log.Level = configtypes.LogLevelWarn
	}
	if config.Log.Console.Format == "" {
		config.Log.Console.Format = configtypes.LogFormatText
	}
	if config.Log.File.Format == "" {
		config.Log.File.Format = configtypes.LogFormatJSON
	}

	if config.Bytes.Base == 0 {
		config.Bytes.Base = configtypes.DefaultBytesBase
	}
	if config.Bytes.Precision == nil {
		precision := configtypes.DefaultBytesPrecision
		config.Bytes.Precision = &precision
	}
}

// LoadConfig loads webkit configuration from a YAML file. The seo section is
// decoded over seo.DefaultConfig, so omitted SEO fields keep built-in values.
func LoadConfig(path string, logger *zap.Logger) (*configtypes.Config, error) {
	logger.Debug("Loading configuration", zap.String("path", path))

	if _, err := os.Stat(path); os.IsNotExist(err) {
		return nil, fmt.Errorf("config file does not exist: %s", path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	config := &configtypes.Config{SEO: seo.DefaultConfig()}
	if err := yamlutil.UnmarshalStrict(data, config); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}

	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	applyDefaults(config)

	logger.Debug("Configuration loaded",
		zap.String("site_name", config.SEO.SiteName),
		zap.Int("bytes_base", config.Bytes.Base),
		zap.String("compression", string(config.Output.Algorithm())))

	return config, nil
}
