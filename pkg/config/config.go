// Package config resolves the test run configuration from the environment
// and an optional YAML file. Environment variables always win, so CI can
// override a checked-in config without editing it.
package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"gopkg.in/yaml.v3"
)

// Config describes one test run: where the application under test lives,
// which browser engine drives it, and the wait policy every session uses.
type Config struct {
	// BaseURL is the target application origin (BASE_URL)
	BaseURL string `yaml:"base_url"`

	// Browser selects the engine: "chromium" or "firefox" (BROWSER)
	Browser string `yaml:"browser"`

	// Headless forces headless mode; CI=true implies it (HEADLESS, CI)
	Headless bool `yaml:"headless"`

	// Grep filters test names with a glob pattern (GREP)
	Grep string `yaml:"grep"`

	// WaitBudget is the default timeout for element location and waits
	WaitBudget time.Duration `yaml:"wait_budget"`

	// PollInterval is the delay between condition polls
	PollInterval time.Duration `yaml:"poll_interval"`

	// ViewportWidth/ViewportHeight set the initial window dimensions
	ViewportWidth  int `yaml:"viewport_width"`
	ViewportHeight int `yaml:"viewport_height"`
}

// Default returns the configuration used when nothing is set: chromium,
// headless, a local target, and a 10s wait budget polled every 250ms.
func Default() Config {
	return Config{
		BaseURL:        "http://127.0.0.1:8080",
		Browser:        "chromium",
		Headless:       true,
		WaitBudget:     10 * time.Second,
		PollInterval:   250 * time.Millisecond,
		ViewportWidth:  1280,
		ViewportHeight: 720,
	}
}

// Load reads an optional YAML file and applies environment overrides on top.
// An empty path skips the file entirely.
func Load(path string) (Config, error) {
	cfg := Default()

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return cfg, fmt.Errorf("failed to read config file %s: %w", path, err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("failed to parse config file %s: %w", path, err)
		}
	}

	cfg.applyEnv()

	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// FromEnv returns the default configuration with environment overrides.
func FromEnv() Config {
	cfg := Default()
	cfg.applyEnv()
	return cfg
}

func (c *Config) applyEnv() {
	if v := os.Getenv("BASE_URL"); v != "" {
		c.BaseURL = v
	}
	if v := os.Getenv("BROWSER"); v != "" {
		c.Browser = v
	}
	if v := os.Getenv("HEADLESS"); v != "" {
		c.Headless = parseBool(v)
	}
	// CI always forces headless, whatever HEADLESS says.
	if parseBool(os.Getenv("CI")) {
		c.Headless = true
	}
	if v := os.Getenv("GREP"); v != "" {
		c.Grep = v
	}
}

// parseBool treats "1", "true", "yes" (any case) as true.
func parseBool(v string) bool {
	if b, err := strconv.ParseBool(v); err == nil {
		return b
	}
	return v == "yes" || v == "YES"
}

// Validate checks the configuration for values no run could work with.
func (c *Config) Validate() error {
	if c.BaseURL == "" {
		return fmt.Errorf("base_url is required")
	}
	if c.Browser != "chromium" && c.Browser != "firefox" {
		return fmt.Errorf("invalid browser: %s (must be 'chromium' or 'firefox')", c.Browser)
	}
	if c.WaitBudget <= 0 {
		return fmt.Errorf("wait_budget must be positive")
	}
	if c.PollInterval <= 0 {
		return fmt.Errorf("poll_interval must be positive")
	}
	if c.PollInterval >= c.WaitBudget {
		return fmt.Errorf("poll_interval (%s) must be shorter than wait_budget (%s)", c.PollInterval, c.WaitBudget)
	}
	if c.ViewportWidth <= 0 || c.ViewportHeight <= 0 {
		return fmt.Errorf("viewport dimensions must be positive")
	}
	return nil
}
