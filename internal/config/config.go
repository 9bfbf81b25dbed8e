// Package config handles application configuration management using Viper
package config

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/raykavin/plotspec/pkg/logger"
	logruslog "github.com/raykavin/plotspec/pkg/logger/logrus"
	zerologlog "github.com/raykavin/plotspec/pkg/logger/zerolog"
	"github.com/spf13/viper"
	"github.com/xhit/go-str2duration/v2"
)

// Constants for configuration
const (
	EnvPrefix        = "PLOTSPEC"
	DefaultCachePath = "./plotspec.db"
	DefaultCacheTTL  = "1d"
	DefaultOutputDir = "./charts"
)

// Log backends
const (
	BackendZerolog = "zerolog"
	BackendLogrus  = "logrus"
)

// Config holds the application configuration
type Config struct {
	Log    LogConfig
	Cache  CacheConfig
	Export ExportConfig
	Output OutputConfig
}

// LogConfig selects the logging backend and its format
type LogConfig struct {
	Level   string
	Backend string
	Format  string
	Colored bool
}

// CacheConfig configures the payload cache
type CacheConfig struct {
	Enabled bool
	Path    string
	TTL     time.Duration
}

// ExportConfig configures HTML export
type ExportConfig struct {
	PlotlyURL string
	Debug     bool
}

// OutputConfig configures where generated files go
type OutputConfig struct {
	Dir string
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("log.level", "info")
	v.SetDefault("log.backend", BackendZerolog)
	v.SetDefault("log.format", "console")
	v.SetDefault("log.colored", true)
	v.SetDefault("cache.enabled", false)
	v.SetDefault("cache.path", DefaultCachePath)
	v.SetDefault("cache.ttl", DefaultCacheTTL)
	v.SetDefault("export.plotly_url", "")
	v.SetDefault("export.debug", false)
	v.SetDefault("output.dir", DefaultOutputDir)
}

// Load reads the configuration from defaults, the optional file at path and
// PLOTSPEC_* environment variables, in increasing priority
func Load(path string) (*Config, error) {
	v := viper.New()
	setDefaults(v)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config %s: %w", path, err)
		}
	}

	ttl, err := str2duration.ParseDuration(v.GetString("cache.ttl"))
	if err != nil {
		return nil, fmt.Errorf("invalid cache.ttl %q: %w", v.GetString("cache.ttl"), err)
	}

	config := &Config{
		Log: LogConfig{
			Level:   v.GetString("log.level"),
			Backend: strings.ToLower(v.GetString("log.backend")),
			Format:  strings.ToLower(v.GetString("log.format")),
			Colored: v.GetBool("log.colored"),
		},
		Cache: CacheConfig{
			Enabled: v.GetBool("cache.enabled"),
			Path:    v.GetString("cache.path"),
			TTL:     ttl,
		},
		Export: ExportConfig{
			PlotlyURL: v.GetString("export.plotly_url"),
			Debug:     v.GetBool("export.debug"),
		},
		Output: OutputConfig{
			Dir: v.GetString("output.dir"),
		},
	}

	if _, err := logger.ParseLevel(config.Log.Level); err != nil {
		return nil, err
	}

	return config, nil
}

// NewLogger builds the configured logger writing to w
func (c *Config) NewLogger(w io.Writer) (logger.Logger, error) {
	json := c.Log.Format == "json"

	switch c.Log.Backend {
	case BackendZerolog, "":
		log, err := zerologlog.New(w, zerologlog.Options{
			Level:   c.Log.Level,
			Colored: c.Log.Colored,
			JSON:    json,
		})
		if err != nil {
			return nil, err
		}
		return log, nil
	case BackendLogrus:
		log, err := logruslog.New(w, c.Log.Level, json)
		if err != nil {
			return nil, err
		}
		return log, nil
	default:
		return nil, fmt.Errorf("unknown log backend %q", c.Log.Backend)
	}
}

// SaveDefault writes the default configuration to path, creating its
// directory when needed
func SaveDefault(path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("could not create configuration directory: %w", err)
	}

	v := viper.New()
	setDefaults(v)
	v.SetConfigFile(path)

	if err := v.WriteConfig(); err != nil {
		return fmt.Errorf("could not save default configuration: %w", err)
	}
	return nil
}
