package core

import (
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/hubastard/imbridge/engine/colors"
	"gopkg.in/yaml.v3"
)

// Config for the engine run.
type Config struct {
	Title      string       `yaml:"title"`
	Width      int          `yaml:"width"`
	Height     int          `yaml:"height"`
	VSync      bool         `yaml:"vsync"`
	ClearColor colors.Color `yaml:"clear_color"` // RGBA
	LogLevel   string       `yaml:"log_level"`
	GUI        GUIConfig    `yaml:"gui"`
}

// GUIConfig holds options for the immediate-mode overlay.
type GUIConfig struct {
	Enabled     bool    `yaml:"enabled"`
	IniFile     string  `yaml:"ini_file"` // empty disables layout persistence
	FontScale   float32 `yaml:"font_scale"`
	KeyboardNav bool    `yaml:"keyboard_nav"`
}

// DefaultConfig returns the settings used when no config file is given.
func DefaultConfig() Config {
	return Config{
		Title:      "imbridge",
		Width:      1280,
		Height:     720,
		VSync:      true,
		ClearColor: colors.DarkGray,
		LogLevel:   "info",
		GUI: GUIConfig{
			Enabled:     true,
			FontScale:   1,
			KeyboardNav: true,
		},
	}
}

// LoadConfig reads a YAML file on top of DefaultConfig.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()
	b, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("read config %q: %w", path, err)
	}
	if err := yaml.Unmarshal(b, &cfg); err != nil {
		return cfg, fmt.Errorf("parse config %q: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("config %q: %w", path, err)
	}
	return cfg, nil
}

// Validate checks ranges that would otherwise fail later inside GL/GLFW.
func (c Config) Validate() error {
	if c.Width <= 0 || c.Height <= 0 {
		return fmt.Errorf("invalid window size %dx%d", c.Width, c.Height)
	}
	if c.GUI.FontScale <= 0 {
		return fmt.Errorf("invalid gui font_scale %v", c.GUI.FontScale)
	}
	if _, err := ParseLogLevel(c.LogLevel); err != nil {
		return err
	}
	return nil
}

// ParseLogLevel maps debug/info/warn/error to a slog level.
func ParseLogLevel(s string) (slog.Level, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return slog.LevelDebug, nil
	case "", "info":
		return slog.LevelInfo, nil
	case "warn", "warning":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	default:
		return slog.LevelInfo, fmt.Errorf("unknown log level %q", s)
	}
}
