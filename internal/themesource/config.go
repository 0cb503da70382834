package themesource

import (
	"os"
	"strings"
	"sync"

	"github.com/muesli/termenv"

	"github.com/shadeworks/shade/internal/domain"
	"github.com/shadeworks/shade/internal/log"
	"github.com/shadeworks/shade/internal/themectx"
)

const (
	// ConfigKey is the config key holding the theme preference.
	ConfigKey = "theme"

	// EnvKey overrides the config value for one invocation.
	EnvKey = "SHADE_THEME"

	// PreferenceSystem follows the terminal background.
	PreferenceSystem = "system"
)

// ConfigStore is the part of domain.ConfigProvider the source needs.
type ConfigStore interface {
	Get(key string) (string, bool)
	Set(key, value string) error
}

// Config is a theme source persisted in the shade config file.
//
// The stored preference is "light", "dark" or "system". "system" asks the
// dark-background detector (termenv by default). Toggling always stores the
// explicit mode that resulted, so the choice survives a restart.
type Config struct {
	cfg        ConfigStore
	logger     domain.Logger
	detectDark func() bool
	getenv     func(string) string

	mu         sync.Mutex
	mode       themectx.Mode
	preference string
	listeners  listeners
}

// ConfigOption configures a Config source.
type ConfigOption func(*Config)

// WithDetector replaces the dark-background detector.
func WithDetector(fn func() bool) ConfigOption {
	return func(c *Config) {
		if fn != nil {
			c.detectDark = fn
		}
	}
}

// WithLogger sets the logger used for persistence failures.
func WithLogger(l domain.Logger) ConfigOption {
	return func(c *Config) {
		if l != nil {
			c.logger = l
		}
	}
}

// WithEnv replaces the environment lookup.
func WithEnv(fn func(string) string) ConfigOption {
	return func(c *Config) {
		if fn != nil {
			c.getenv = fn
		}
	}
}

// NewConfig reads the current preference from cfg.
func NewConfig(cfg ConfigStore, opts ...ConfigOption) *Config {
	c := &Config{
		cfg:        cfg,
		logger:     log.NopLogger{},
		detectDark: termenv.HasDarkBackground,
		getenv:     os.Getenv,
	}
	for _, opt := range opts {
		opt(c)
	}

	c.mode, c.preference = c.resolve()
	return c
}

// Theme implements themectx.Source.
func (c *Config) Theme() themectx.Mode {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.mode
}

// Preference returns the preference the current mode was resolved from.
func (c *Config) Preference() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.preference
}

// ToggleTheme implements themectx.Source. A failed write is logged and the
// in-memory mode still flips.
func (c *Config) ToggleTheme() {
	c.mu.Lock()
	next := c.mode.Toggle()
	c.mode = next
	c.preference = next.String()
	c.mu.Unlock()

	if err := c.cfg.Set(ConfigKey, next.String()); err != nil {
		c.logger.Warn("themesource: could not persist theme %s: %v", next, err)
	}

	c.listeners.notify(next)
}

// EnvOverride returns the value of EnvKey when it is set. While it is, the
// stored preference has no effect.
func (c *Config) EnvOverride() (string, bool) {
	v := strings.TrimSpace(c.getenv(EnvKey))
	return v, v != ""
}

// Reload re-reads the preference and notifies subscribers when the resulting
// mode changed.
func (c *Config) Reload() {
	mode, pref := c.resolve()

	c.mu.Lock()
	changed := mode != c.mode
	c.mode = mode
	c.preference = pref
	c.mu.Unlock()

	if changed {
		c.logger.Debug("themesource: reloaded theme %s (preference=%s)", mode, pref)
		c.listeners.notify(mode)
	}
}

// Subscribe implements themectx.Notifier.
func (c *Config) Subscribe(fn func(themectx.Mode)) func() {
	return c.listeners.add(fn)
}

// resolve applies the priority env > config file > system detection.
func (c *Config) resolve() (themectx.Mode, string) {
	pref := PreferenceSystem
	if v := strings.TrimSpace(c.getenv(EnvKey)); v != "" {
		pref = v
	} else if v, ok := c.cfg.Get(ConfigKey); ok && strings.TrimSpace(v) != "" {
		pref = v
	}
	pref = strings.ToLower(strings.TrimSpace(pref))

	if pref == PreferenceSystem {
		return c.detect(), PreferenceSystem
	}

	mode, err := themectx.ParseMode(pref)
	if err != nil {
		c.logger.Warn("themesource: %v, following the terminal background", err)
		return c.detect(), PreferenceSystem
	}
	return mode, pref
}

func (c *Config) detect() themectx.Mode {
	if c.detectDark() {
		return themectx.Dark
	}
	return themectx.Light
}

// ValidPreference reports whether s can be stored under ConfigKey.
func ValidPreference(s string) bool {
	s = strings.ToLower(strings.TrimSpace(s))
	if s == PreferenceSystem {
		return true
	}
	_, err := themectx.ParseMode(s)
	return err == nil
}

var (
	_ themectx.Source   = (*Config)(nil)
	_ themectx.Notifier = (*Config)(nil)
)
