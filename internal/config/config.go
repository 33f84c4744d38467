package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/matheus3301/chatshell/internal/attachment"
	"github.com/matheus3301/chatshell/internal/timeline"
)

// Config represents ~/.chatshell/config.toml.
type Config struct {
	LogLevel      string `toml:"log_level"`
	ScrollDelayMS int    `toml:"scroll_delay_ms"`
	// FixturesPath points at an optional TOML file merged into the built-in catalog.
	FixturesPath string `toml:"fixtures_path"`
	// SkipBuiltinFixtures starts from an empty catalog; only FixturesPath is loaded.
	SkipBuiltinFixtures bool   `toml:"skip_builtin_fixtures"`
	Picker              Picker `toml:"picker"`
}

// Picker configures the image picker collaborator. With no command, the
// samples are handed out in turn.
type Picker struct {
	Command   []string `toml:"command"`
	MediaKind string   `toml:"media_kind"`
	Quality   float64  `toml:"quality"`
	Samples   []string `toml:"samples"`
}

// DefaultSample is handed out by the sample picker when nothing else is configured.
const DefaultSample = "https://www.aradon.ro/wp-content/uploads/2025/03/1961745cartedeidentitate.jpg"

// Default returns the configuration used when no file exists.
func Default() *Config {
	req := attachment.DefaultRequest()
	return &Config{
		LogLevel:      "info",
		ScrollDelayMS: int(timeline.DefaultScrollDelay / time.Millisecond),
		Picker: Picker{
			MediaKind: req.MediaKind,
			Quality:   req.Quality,
			Samples:   []string{DefaultSample},
		},
	}
}

// ScrollDelay returns the scroll-to-end delay.
func (c *Config) ScrollDelay() time.Duration {
	if c.ScrollDelayMS <= 0 {
		return timeline.DefaultScrollDelay
	}
	return time.Duration(c.ScrollDelayMS) * time.Millisecond
}

// Request returns the picker request described by the config.
func (c *Config) Request() attachment.Request {
	return attachment.Request{MediaKind: c.Picker.MediaKind, Quality: c.Picker.Quality}
}

// Validate checks values that would otherwise fail late.
func (c *Config) Validate() error {
	if c.ScrollDelayMS < 0 {
		return fmt.Errorf("scroll_delay_ms must not be negative, got %d", c.ScrollDelayMS)
	}
	if c.SkipBuiltinFixtures && c.FixturesPath == "" {
		return errors.New("skip_builtin_fixtures needs fixtures_path")
	}
	if err := c.Request().Validate(); err != nil {
		return fmt.Errorf("picker: %w", err)
	}
	return nil
}

// Load reads config from the given path. Keys absent from the file keep
// their defaults. Returns nil and error if the file is missing.
func Load(path string) (*Config, error) {
	cfg := Default()
	if _, err := toml.DecodeFile(path, cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

// LoadOrDefault is Load, except a missing file yields Default().
func LoadOrDefault(path string) (*Config, error) {
	cfg, err := Load(path)
	if errors.Is(err, fs.ErrNotExist) {
		return Default(), nil
	}
	if err != nil {
		return nil, fmt.Errorf("load config %s: %w", path, err)
	}
	return cfg, nil
}

// Save writes config to the given path, creating parent dirs as needed.
func Save(path string, cfg *Config) error {
	if err := os.MkdirAll(filepath.Dir(path), 0700); err != nil {
		return err
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0600)
	if err != nil {
		return err
	}
	encErr := toml.NewEncoder(f).Encode(cfg)
	if closeErr := f.Close(); closeErr != nil && encErr == nil {
		return closeErr
	}
	return encErr
}
