// Package config centralizes the framework's configuration: process
// environment for session settings, and an optional YAML file for the
// site-specific verification data (locators, expected menu, redirect
// exceptions).
package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/Shehzz/multibank-automation-framework/internal/nav"
)

// Settings is the env-driven session configuration. Load .env (godotenv)
// before calling FromEnv; every field has the framework's default.
type Settings struct {
	BaseURL             string
	Headless            bool
	SlowMo              time.Duration
	ViewportWidth       int
	ViewportHeight      int
	DefaultTimeout      time.Duration
	NavigationTimeout   time.Duration
	ScreenshotOnFailure bool
	ReportsDir          string
	ScreenshotsDir      string
	LogLevel            string
}

// FromEnv reads settings from the environment, falling back to defaults.
// Timeout values are milliseconds, matching the browser tooling convention.
func FromEnv() Settings {
	return Settings{
		BaseURL:             envStr("BASE_URL", "https://trade.multibank.io/"),
		Headless:            envBool("HEADLESS", false),
		SlowMo:              envMillis("SLOW_MO", 0),
		ViewportWidth:       envInt("VIEWPORT_WIDTH", 1920),
		ViewportHeight:      envInt("VIEWPORT_HEIGHT", 1080),
		DefaultTimeout:      envMillis("DEFAULT_TIMEOUT", 30000),
		NavigationTimeout:   envMillis("NAVIGATION_TIMEOUT", 30000),
		ScreenshotOnFailure: envBool("SCREENSHOT_ON_FAILURE", true),
		ReportsDir:          envStr("REPORTS_DIR", "reports"),
		ScreenshotsDir:      envStr("SCREENSHOTS_DIR", "screenshots"),
		LogLevel:            envStr("LOG_LEVEL", "info"),
	}
}

// VerifyConfig is the site-specific verification data, explicitly passed to
// the verifier at construction.
type VerifyConfig struct {
	Locators           nav.LocatorSet          `yaml:"locators"`
	ExpectedMenuItems  []string                `yaml:"expected_menu_items"`
	RedirectExceptions []nav.RedirectException `yaml:"redirect_exceptions"`
}

// DefaultVerifyConfig targets trade.multibank.io, including its documented
// redirect exception: the why-multibank vanity path lands on the
// default-locale page.
func DefaultVerifyConfig() VerifyConfig {
	return VerifyConfig{
		Locators: nav.DefaultLocators(),
		RedirectExceptions: []nav.RedirectException{
			{Expected: "https://multibank.io/about/why-multibank", Actual: "https://multibank.io/en-AE"},
			{Expected: "/about/why-multibank", Actual: "/en-AE"},
		},
	}
}

// LoadVerifyConfig overlays a YAML file on the defaults, so a config file
// only needs the fields it changes.
func LoadVerifyConfig(path string) (VerifyConfig, error) {
	cfg := DefaultVerifyConfig()
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("reading verify config: %w", err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parsing verify config %s: %w", path, err)
	}
	return cfg, nil
}

func envStr(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func envInt(key string, def int) int {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return def
	}
	return n
}

func envBool(key string, def bool) bool {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return def
	}
	return b
}

func envMillis(key string, def int) time.Duration {
	return time.Duration(envInt(key, def)) * time.Millisecond
}
