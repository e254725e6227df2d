package main

import (
	"fmt"
	"os"
	"time"

	"github.com/ygolovnia/xkindle"
	"github.com/ygolovnia/xkindle/pipeline"
	"github.com/ygolovnia/xkindle/rod"
	"gopkg.in/yaml.v3"
)

// Environment variables recognized by the configuration loader.
const (
	configPathEnv = "XKINDLE_CONFIG"
	resendKeyEnv  = "RESEND_API_KEY"
	execModeEnv   = "XKINDLE_EXEC_MODE"
	chromeBinEnv  = "CHROME_BIN"
)

// Config holds the settings required across the application.
type Config struct {
	// AllowedHosts restricts source URLs; subdomains match too.
	AllowedHosts []string `yaml:"allowedHosts"`

	Sender   SenderConfig  `yaml:"sender"`
	Browser  BrowserConfig `yaml:"browser"`
	Timeouts TimeoutConfig `yaml:"timeouts"`
}

// SenderConfig wires the delivery identity. An empty API key enables
// degraded mode: documents are generated but not emailed.
type SenderConfig struct {
	From      string `yaml:"from"`
	APIKey    string `yaml:"apiKey"`
	Publisher string `yaml:"publisher"`
}

// BrowserConfig selects the browser binary strategy.
type BrowserConfig struct {
	// ExecMode is "local" or "serverless".
	ExecMode string `yaml:"execMode"`

	// Bin is an explicit chromium binary path for serverless hosts.
	Bin string `yaml:"bin"`
}

// TimeoutConfig bounds the pipeline's blocking stages.
type TimeoutConfig struct {
	NavigateSeconds int `yaml:"navigateSeconds"`
	ContentSeconds  int `yaml:"contentSeconds"`
}

// Navigate returns the navigation timeout.
func (t TimeoutConfig) Navigate() time.Duration {
	return time.Duration(t.NavigateSeconds) * time.Second
}

// Content returns the article-presence timeout.
func (t TimeoutConfig) Content() time.Duration {
	return time.Duration(t.ContentSeconds) * time.Second
}

// LoadConfig builds the configuration from defaults, an optional YAML file
// pointed to by XKINDLE_CONFIG, and environment overrides, in that order.
func LoadConfig() (Config, error) {
	cfg := defaultConfig()

	if path := os.Getenv(configPathEnv); path != "" {
		raw, err := os.ReadFile(path)
		if err != nil {
			return Config{}, fmt.Errorf("reading config %s: %w", path, err)
		}
		if err := yaml.Unmarshal(raw, &cfg); err != nil {
			return Config{}, fmt.Errorf("parsing config %s: %w", path, err)
		}
	}

	cfg.applyEnvOverrides()
	return cfg, nil
}

func (c *Config) applyEnvOverrides() {
	if v := os.Getenv(resendKeyEnv); v != "" {
		c.Sender.APIKey = v
	}
	if v := os.Getenv(execModeEnv); v != "" {
		c.Browser.ExecMode = v
	}
	if v := os.Getenv(chromeBinEnv); v != "" {
		c.Browser.Bin = v
	}
}

func defaultConfig() Config {
	return Config{
		AllowedHosts: xkindle.DefaultAllowedHosts,
		Sender: SenderConfig{
			From:      "X-to-Kindle <kindle@yegorgolovnia.com>",
			Publisher: pipeline.DefaultPublisher,
		},
		Browser: BrowserConfig{
			ExecMode: string(rod.ModeLocal),
		},
		Timeouts: TimeoutConfig{
			NavigateSeconds: int(pipeline.DefaultNavigateTimeout / time.Second),
			ContentSeconds:  int(pipeline.DefaultContentTimeout / time.Second),
		},
	}
}
