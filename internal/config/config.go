// Package config exposes strongly typed application configuration loaded from
// the process environment and an optional YAML file.
package config

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// DefaultPath is where the optional YAML file is looked up relative to the
// working directory. The binary takes no flags, so the path is fixed.
const DefaultPath = "bot.yaml"

const (
	defaultAsset    = "USDT"
	defaultLogLevel = "info"
	defaultLogFile  = "bot.log"
)

// Exchange describes the futures connectivity parameters the bot expects.
// Credentials and the base URL come from the environment only and are never
// read from or written to YAML.
type Exchange struct {
	APIKey    string `yaml:"-"`
	APISecret string `yaml:"-"`
	BaseURL   string `yaml:"-"`
	Asset     string `yaml:"asset"`
}

// Log controls the dual-sink logger level and file destination.
type Log struct {
	Level string `yaml:"level"`
	File  string `yaml:"file"`
}

// Metrics configures the Prometheus endpoint. An empty Addr disables it.
type Metrics struct {
	Addr string `yaml:"addr"`
}

// Config collects every configuration leaf for easy marshaling from YAML.
type Config struct {
	Exchange Exchange `yaml:"exchange"`
	Log      Log      `yaml:"log"`
	Metrics  Metrics  `yaml:"metrics"`
}

// Load hydrates a Config from the YAML file at path, when present, plus the
// environment. A .env file in the working directory is honored best-effort.
// Missing credentials are a hard error so the bot refuses to start without
// them rather than failing on the first signed request.
func Load(path string) (*Config, error) {
	var cfg Config
	file, err := os.Open(path)
	switch {
	case err == nil:
		decodeErr := yaml.NewDecoder(file).Decode(&cfg)
		file.Close()
		if decodeErr != nil && !errors.Is(decodeErr, io.EOF) {
			return nil, fmt.Errorf("decode yaml: %w", decodeErr)
		}
	case os.IsNotExist(err):
		// Optional file; defaults plus environment cover everything.
	default:
		return nil, fmt.Errorf("open config: %w", err)
	}

	_ = godotenv.Load() // best-effort
	cfg.Exchange.APIKey = strings.TrimSpace(os.Getenv("BINANCE_API_KEY"))
	cfg.Exchange.APISecret = strings.TrimSpace(os.Getenv("BINANCE_API_SECRET"))
	cfg.Exchange.BaseURL = strings.TrimSpace(os.Getenv("BINANCE_BASE_URL"))
	if cfg.Exchange.APIKey == "" || cfg.Exchange.APISecret == "" {
		return nil, errors.New("BINANCE_API_KEY and BINANCE_API_SECRET must be set in the environment or a .env file")
	}

	if cfg.Exchange.Asset == "" {
		cfg.Exchange.Asset = defaultAsset
	}
	if cfg.Log.Level == "" {
		cfg.Log.Level = defaultLogLevel
	}
	if cfg.Log.File == "" {
		cfg.Log.File = defaultLogFile
	}
	return &cfg, nil
}
