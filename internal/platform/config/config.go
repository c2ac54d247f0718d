package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"gopkg.in/yaml.v3"
)

const (
	BackendFile   = "file"
	BackendBadger = "badger"

	defaultFocusMinutes = 25
)

type Config struct {
	DataDir      string
	RecordPath   string
	BadgerDir    string
	DBPath       string
	ActivePath   string
	SessionsDir  string
	Backend      string
	Timezone     string
	LogLevel     string
	FocusMinutes int
	SessionNotes bool
}

// fileConfig mirrors the optional <data>/config.yaml overlay.
type fileConfig struct {
	Backend      string `yaml:"backend"`
	Timezone     string `yaml:"timezone"`
	LogLevel     string `yaml:"log_level"`
	FocusMinutes int    `yaml:"focus_minutes"`
	SessionNotes *bool  `yaml:"session_notes"`
}

func New(dataDir string) (Config, error) {
	if dataDir == "" {
		return Config{}, fmt.Errorf("data dir is required")
	}
	cfg := Config{
		DataDir:      dataDir,
		RecordPath:   filepath.Join(dataDir, "record.json"),
		BadgerDir:    filepath.Join(dataDir, "badger"),
		DBPath:       filepath.Join(dataDir, "index", "eduvibe.db"),
		ActivePath:   filepath.Join(dataDir, "active-focus.json"),
		SessionsDir:  filepath.Join(dataDir, "sessions"),
		Backend:      BackendFile,
		Timezone:     "Local",
		LogLevel:     "warn",
		FocusMinutes: defaultFocusMinutes,
		SessionNotes: true,
	}
	if err := cfg.overlayFile(filepath.Join(dataDir, "config.yaml")); err != nil {
		return Config{}, err
	}
	cfg.overlayEnv()
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c *Config) overlayFile(path string) error {
	payload, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("read config: %w", err)
	}
	fc := fileConfig{}
	if err := yaml.Unmarshal(payload, &fc); err != nil {
		return fmt.Errorf("decode config %s: %w", path, err)
	}
	if fc.Backend != "" {
		c.Backend = fc.Backend
	}
	if fc.Timezone != "" {
		c.Timezone = fc.Timezone
	}
	if fc.LogLevel != "" {
		c.LogLevel = fc.LogLevel
	}
	if fc.FocusMinutes != 0 {
		c.FocusMinutes = fc.FocusMinutes
	}
	if fc.SessionNotes != nil {
		c.SessionNotes = *fc.SessionNotes
	}
	return nil
}

func (c *Config) overlayEnv() {
	if v := os.Getenv("EDUVIBE_BACKEND"); v != "" {
		c.Backend = v
	}
	if v := os.Getenv("EDUVIBE_TIMEZONE"); v != "" {
		c.Timezone = v
	}
	if v := os.Getenv("EDUVIBE_LOG_LEVEL"); v != "" {
		c.LogLevel = v
	}
	if v := os.Getenv("EDUVIBE_FOCUS_MINUTES"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			c.FocusMinutes = n
		}
	}
}

func (c Config) Validate() error {
	if c.Backend != BackendFile && c.Backend != BackendBadger {
		return fmt.Errorf("backend must be one of: %s, %s", BackendFile, BackendBadger)
	}
	if c.FocusMinutes <= 0 {
		return fmt.Errorf("focus minutes must be positive")
	}
	if _, err := c.Location(); err != nil {
		return err
	}
	return nil
}

func (c Config) Location() (*time.Location, error) {
	if c.Timezone == "" || c.Timezone == "Local" {
		return time.Local, nil
	}
	loc, err := time.LoadLocation(c.Timezone)
	if err != nil {
		return nil, fmt.Errorf("load timezone %q: %w", c.Timezone, err)
	}
	return loc, nil
}
