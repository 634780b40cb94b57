package config

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/knadh/koanf/parsers/json"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
	"github.com/rs/zerolog"
)

// Config is the full service configuration. Every field has a default, so
// the server runs with no config file at all; file values load first and
// DDS_-prefixed environment variables override them.
type Config struct {
	Server  ServerConfig  `json:"server"`
	Fleet   FleetConfig   `json:"fleet"`
	Feed    FeedConfig    `json:"feed"`
	Metrics MetricsConfig `json:"metrics"`
	Logging LoggingConfig `json:"logging"`
}

type ServerConfig struct {
	Port                int `json:"port"`
	ReadTimeoutSeconds  int `json:"read_timeout_seconds"`
	WriteTimeoutSeconds int `json:"write_timeout_seconds"`
	IdleTimeoutSeconds  int `json:"idle_timeout_seconds"`
}

type FleetConfig struct {
	// Path to a JSON vehicle table that overrides the built-in one.
	// Empty keeps the built-in table.
	Path string `json:"path"`
}

type FeedConfig struct {
	RefreshSeconds int `json:"refresh_seconds"`
	// Seed fixes the feed's rand source for reproducible demo runs;
	// 0 seeds from the clock.
	Seed int64 `json:"seed"`
}

type MetricsConfig struct {
	Addr string `json:"addr"`
}

type LoggingConfig struct {
	Level  string `json:"level"`
	Pretty bool   `json:"pretty"`
}

func (c *ServerConfig) SetDefaults() {
	if c.Port == 0 {
		c.Port = 8080
	}
	if c.ReadTimeoutSeconds == 0 {
		c.ReadTimeoutSeconds = 10
	}
	if c.WriteTimeoutSeconds == 0 {
		c.WriteTimeoutSeconds = 30
	}
	if c.IdleTimeoutSeconds == 0 {
		c.IdleTimeoutSeconds = 60
	}
}

func (c ServerConfig) Validate() error {
	if c.Port < 1 || c.Port > 65535 {
		return fmt.Errorf("server: port %d out of range", c.Port)
	}
	if c.ReadTimeoutSeconds < 1 || c.WriteTimeoutSeconds < 1 || c.IdleTimeoutSeconds < 1 {
		return fmt.Errorf("server: timeouts must be positive")
	}
	return nil
}

func (c *FeedConfig) SetDefaults() {
	if c.RefreshSeconds == 0 {
		c.RefreshSeconds = 5
	}
}

func (c FeedConfig) Validate() error {
	if c.RefreshSeconds < 1 {
		return fmt.Errorf("feed: refresh_seconds must be at least 1")
	}
	if c.Seed < 0 {
		return fmt.Errorf("feed: seed must not be negative")
	}
	return nil
}

func (c *MetricsConfig) SetDefaults() {
	if c.Addr == "" {
		c.Addr = ":9090"
	}
}

func (c *LoggingConfig) SetDefaults() {
	if c.Level == "" {
		c.Level = "info"
	}
}

func (c LoggingConfig) Validate() error {
	if _, err := zerolog.ParseLevel(c.Level); err != nil {
		return fmt.Errorf("logging: level %q: %w", c.Level, err)
	}
	return nil
}

// Load reads the configuration. An empty path skips the file and builds
// the config from defaults and environment variables alone. YAML or JSON
// is chosen by file extension. Environment overrides use the DDS_ prefix
// with __ as the key separator: DDS_SERVER__PORT=8081 sets server.port.
func Load(path string) (*Config, error) {
	k := koanf.New(".")

	if path != "" {
		ext := strings.ToLower(filepath.Ext(path))
		var parser koanf.Parser
		switch ext {
		case ".yaml", ".yml":
			parser = yaml.Parser()
		case ".json":
			parser = json.Parser()
		default:
			return nil, fmt.Errorf("config: unsupported format %q", ext)
		}
		if err := k.Load(file.Provider(path), parser); err != nil {
			return nil, fmt.Errorf("config: load %q: %w", path, err)
		}
	}

	if err := k.Load(env.Provider("DDS_", "__", func(s string) string {
		s = strings.TrimPrefix(strings.ToLower(s), "dds_")
		return strings.ReplaceAll(s, "__", ".")
	}), nil); err != nil {
		return nil, fmt.Errorf("config: load environment: %w", err)
	}

	var cfg Config
	if err := k.UnmarshalWithConf("", &cfg, koanf.UnmarshalConf{Tag: "json"}); err != nil {
		return nil, fmt.Errorf("config: unmarshal: %w", err)
	}

	cfg.Server.SetDefaults()
	cfg.Feed.SetDefaults()
	cfg.Metrics.SetDefaults()
	cfg.Logging.SetDefaults()

	if err := cfg.Server.Validate(); err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	if err := cfg.Feed.Validate(); err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	if err := cfg.Logging.Validate(); err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}

	return &cfg, nil
}
