package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"gopkg.in/yaml.v3"
)

// Config holds the settings the cmd tools pass to the client
// constructor. The client library itself never reads files or the
// environment; everything flows through here into constructor options.
type Config struct {
	BaseURL    string `yaml:"base_url"`
	APIVersion string `yaml:"api_version"`
	TimeoutSec int    `yaml:"timeout_sec"`

	// Proxy is an optional SOCKS/HTTP proxy URL, e.g.
	// socks5://127.0.0.1:9050 for a local Tor daemon.
	Proxy string `yaml:"proxy"`

	APIKey    string `yaml:"api_key"`
	APISecret string `yaml:"api_secret"`

	// At most one of the two may be set.
	OTPStatic  string `yaml:"otp_static"`
	OTPAppKey  string `yaml:"otp_app_key"`

	RateLimit struct {
		Limit       float64 `yaml:"limit"`
		DecayPerSec float64 `yaml:"decay_per_sec"`
	} `yaml:"rate_limit"`

	Log struct {
		Level      string `yaml:"level"`
		OutputFile string `yaml:"output_file"`
		MaxSizeMB  int    `yaml:"max_size_mb"`
		MaxBackups int    `yaml:"max_backups"`
	} `yaml:"log"`
}

// Load reads a yaml config file and applies environment overrides.
func Load(path string) (*Config, error) {
	cfg := &Config{}
	if path != "" {
		raw, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("read config file %s: %w", path, err)
		}
		if err := yaml.Unmarshal(raw, cfg); err != nil {
			return nil, fmt.Errorf("parse config file %s: %w", path, err)
		}
	}
	cfg.applyEnv()
	cfg.applyDefaults()
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// applyEnv lets the environment override file values. Credentials are
// usually supplied this way so the yaml file can be committed.
func (c *Config) applyEnv() {
	if v := os.Getenv("KRAKEN_API_KEY"); v != "" {
		c.APIKey = v
	}
	if v := os.Getenv("KRAKEN_API_SECRET"); v != "" {
		c.APISecret = v
	}
	if v := os.Getenv("KRAKEN_BASE_URL"); v != "" {
		c.BaseURL = v
	}
	if v := os.Getenv("KRAKEN_PROXY"); v != "" {
		c.Proxy = v
	}
	if v := os.Getenv("KRAKEN_TIMEOUT_SEC"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			c.TimeoutSec = n
		}
	}
	if v := os.Getenv("KRAKEN_OTP_STATIC"); v != "" {
		c.OTPStatic = v
	}
	if v := os.Getenv("KRAKEN_OTP_APP_KEY"); v != "" {
		c.OTPAppKey = v
	}
}

func (c *Config) applyDefaults() {
	if c.BaseURL == "" {
		c.BaseURL = "https://api.kraken.com"
	}
	if c.APIVersion == "" {
		c.APIVersion = "0"
	}
	if c.TimeoutSec <= 0 {
		c.TimeoutSec = 30
	}
	if c.Log.Level == "" {
		c.Log.Level = "info"
	}
}

func (c *Config) validate() error {
	if c.OTPStatic != "" && c.OTPAppKey != "" {
		return fmt.Errorf("config: otp_static and otp_app_key are mutually exclusive")
	}
	if (c.APIKey == "") != (c.APISecret == "") {
		return fmt.Errorf("config: api_key and api_secret must be set together")
	}
	return nil
}

// Timeout returns the request timeout as a duration.
func (c *Config) Timeout() time.Duration {
	return time.Duration(c.TimeoutSec) * time.Second
}
