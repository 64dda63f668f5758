package config

import (
	"fmt"
	"log/slog"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

type Config struct {
	SheetID     string
	SheetTab    string
	Port        string
	HTTPTimeout time.Duration
	LogLevel    slog.Level
}

// fileConfig is the optional YAML overlay; blank fields keep env values.
type fileConfig struct {
	SheetID            string `yaml:"sheet_id"`
	SheetTab           string `yaml:"sheet_tab"`
	Port               string `yaml:"port"`
	HTTPTimeoutSeconds int    `yaml:"http_timeout_seconds"`
	LogLevel           string `yaml:"log_level"`
}

func FromEnv() Config {
	to := 15 * time.Second
	if v := os.Getenv("HTTP_TIMEOUT_SECONDS"); v != "" {
		if d, err := time.ParseDuration(v + "s"); err == nil {
			to = d
		}
	}
	return Config{
		SheetID:     os.Getenv("SHEET_ID"),
		SheetTab:    os.Getenv("SHEET_TAB"),
		Port:        envOr("PORT", "8080"),
		HTTPTimeout: to,
		LogLevel:    levelFor(os.Getenv("LOG_LEVEL")),
	}
}

// Load reads env config and, when path is non-empty, overlays the YAML
// file on top of it.
func Load(path string) (Config, error) {
	cfg := FromEnv()
	if path == "" {
		return cfg, nil
	}
	b, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("read config: %w", err)
	}
	var f fileConfig
	if err := yaml.Unmarshal(b, &f); err != nil {
		return cfg, fmt.Errorf("parse config: %w", err)
	}
	if f.SheetID != "" {
		cfg.SheetID = f.SheetID
	}
	if f.SheetTab != "" {
		cfg.SheetTab = f.SheetTab
	}
	if f.Port != "" {
		cfg.Port = f.Port
	}
	if f.HTTPTimeoutSeconds > 0 {
		cfg.HTTPTimeout = time.Duration(f.HTTPTimeoutSeconds) * time.Second
	}
	if f.LogLevel != "" {
		cfg.LogLevel = levelFor(f.LogLevel)
	}
	return cfg, nil
}

func levelFor(s string) slog.Level {
	if s == "debug" {
		return slog.LevelDebug
	}
	return slog.LevelInfo
}

func envOr(k, def string) string {
	v := os.Getenv(k)
	if v == "" {
		return def
	}
	return v
}
