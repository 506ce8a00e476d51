package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/viper"

	"github.com/jask/modalpick/internal/transition"
)

// ErrInvalid marks a configuration that loaded but cannot be used.
var ErrInvalid = errors.New("invalid config")

// Config holds application configuration.
type Config struct {
	Transition TransitionConfig
	UI         UIConfig
	Database   DatabaseConfig
	Log        LogConfig
	Telemetry  TelemetryConfig
}

// TransitionConfig selects how pickers are presented.
type TransitionConfig struct {
	Style    string
	Duration time.Duration
	ZoomTag  int `mapstructure:"zoom_tag"`
}

// UIConfig holds presentation settings.
type UIConfig struct {
	Locale string
	FPS    int
}

// DatabaseConfig holds sqlite settings.
type DatabaseConfig struct {
	Path string
}

// LogConfig points the file logger somewhere; the terminal belongs to the UI.
type LogConfig struct {
	Path  string
	Level string
}

// TelemetryConfig controls the OTLP exporters.
type TelemetryConfig struct {
	Enabled      bool
	OTLPEndpoint string `mapstructure:"otlp_endpoint"`
}

// Request builds the transition request this config describes.
func (c TransitionConfig) Request() (transition.Request, error) {
	style, err := transition.ParseStyle(c.Style)
	if err != nil {
		return transition.Request{}, err
	}
	return transition.NewRequest(style).WithDuration(c.Duration).WithZoomTag(c.ZoomTag), nil
}

// Validate reports the first unusable setting.
func (c Config) Validate() error {
	req, err := c.Transition.Request()
	if err != nil {
		return fmt.Errorf("%w: transition.style: %w", ErrInvalid, err)
	}
	if err := req.Validate(); err != nil {
		return fmt.Errorf("%w: transition: %w", ErrInvalid, err)
	}
	if c.UI.FPS <= 0 || c.UI.FPS > 240 {
		return fmt.Errorf("%w: ui.fps must be in 1..240, got %d", ErrInvalid, c.UI.FPS)
	}
	if c.Database.Path == "" {
		return fmt.Errorf("%w: database.path is empty", ErrInvalid)
	}
	return nil
}

func configPath() string {
	if p := os.Getenv("MODALPICK_CONFIG"); p != "" {
		return p
	}
	return filepath.Join(os.Getenv("HOME"), ".config", "modalpick", "config.toml")
}

// defaultLocale turns LANG into a locale name, falling back to en_US.
func defaultLocale() string {
	lang := os.Getenv("LANG")
	if lang == "" || lang == "C" || lang == "POSIX" {
		return "en_US"
	}
	return lang
}

// Load reads configuration from file and env. Env var overrides use prefix MODALPICK_.
func Load() (Config, error) {
	v := viper.New()

	share := filepath.Join(os.Getenv("HOME"), ".local", "share", "modalpick")
	v.SetDefault("transition.style", string(transition.FadeInWithSubviewZoom))
	v.SetDefault("transition.duration", transition.DefaultDuration)
	v.SetDefault("transition.zoom_tag", 663)
	v.SetDefault("ui.locale", defaultLocale())
	v.SetDefault("ui.fps", 60)
	v.SetDefault("database.path", filepath.Join(share, "modalpick.db"))
	v.SetDefault("log.path", filepath.Join(share, "modalpick.log"))
	v.SetDefault("log.level", "info")
	v.SetDefault("telemetry.enabled", false)
	v.SetDefault("telemetry.otlp_endpoint", "localhost:4317")

	v.SetConfigType("toml")
	v.SetConfigFile(configPath())

	v.SetEnvPrefix("MODALPICK")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	// a missing file is fine; a broken one is not
	if err := v.ReadInConfig(); err != nil && !errors.Is(err, os.ErrNotExist) {
		return Config{}, fmt.Errorf("read config: %w", err)
	}

	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return Config{}, fmt.Errorf("unmarshal config: %w", err)
	}
	return c, nil
}

// Save writes cfg to disk, creating the config directory if needed.
func Save(cfg Config) error {
	path := configPath()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("mkdir config dir: %w", err)
	}

	v := viper.New()
	v.SetConfigType("toml")
	v.Set("transition.style", cfg.Transition.Style)
	v.Set("transition.duration", cfg.Transition.Duration.String())
	v.Set("transition.zoom_tag", cfg.Transition.ZoomTag)
	v.Set("ui.locale", cfg.UI.Locale)
	v.Set("ui.fps", cfg.UI.FPS)
	v.Set("database.path", cfg.Database.Path)
	v.Set("log.path", cfg.Log.Path)
	v.Set("log.level", cfg.Log.Level)
	v.Set("telemetry.enabled", cfg.Telemetry.Enabled)
	v.Set("telemetry.otlp_endpoint", cfg.Telemetry.OTLPEndpoint)

	if err := v.WriteConfigAs(path); err != nil {
		return fmt.Errorf("write config: %w", err)
	}
	return nil
}
