package config

import (
	_ "embed"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/pelletier/go-toml/v2"
)

//go:embed sample_config.toml
var sampleConfig string

const (
	StyleTable = "table"
	StylePlain = "plain"
)

var (
	logLevels     = []string{"debug", "info", "warn", "error"}
	logFormats    = []string{"text", "json"}
	displayStyles = []string{StyleTable, StylePlain}
)

type Log struct {
	Level  string `toml:"level"`
	Format string `toml:"format"`
	// File receives log output instead of stderr when set.
	File string `toml:"file"`
}

type Display struct {
	Style string `toml:"style"`
}

type Config struct {
	InventoryPath string  `toml:"inventory_path"`
	Log           Log     `toml:"log"`
	Display       Display `toml:"display"`
}

func Default() Config {
	return Config{
		InventoryPath: DefaultInventoryPath(),
		Log: Log{
			Level:  "warn",
			Format: "text",
		},
		Display: Display{Style: StyleTable},
	}
}

// Load reads the TOML file at path on top of Default. A missing file is
// not an error.
func Load(path string) (Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return cfg, nil
	}
	if err != nil {
		return Config{}, fmt.Errorf("read config %s: %w", path, err)
	}

	if err := toml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("parse config %s: %w", path, err)
	}
	if err := cfg.normalize(); err != nil {
		return Config{}, err
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

func (c *Config) normalize() error {
	c.Log.Level = strings.ToLower(strings.TrimSpace(c.Log.Level))
	c.Log.Format = strings.ToLower(strings.TrimSpace(c.Log.Format))
	c.Display.Style = strings.ToLower(strings.TrimSpace(c.Display.Style))

	if strings.TrimSpace(c.InventoryPath) == "" {
		c.InventoryPath = DefaultInventoryPath()
	}
	path, err := ExpandPath(c.InventoryPath)
	if err != nil {
		return fmt.Errorf("inventory_path: %w", err)
	}
	c.InventoryPath = path

	if c.Log.File != "" {
		file, err := ExpandPath(c.Log.File)
		if err != nil {
			return fmt.Errorf("log.file: %w", err)
		}
		c.Log.File = file
	}
	return nil
}

func (c Config) Validate() error {
	if !slices.Contains(logLevels, c.Log.Level) {
		return fmt.Errorf("log.level: unsupported value %q", c.Log.Level)
	}
	if !slices.Contains(logFormats, c.Log.Format) {
		return fmt.Errorf("log.format: unsupported value %q", c.Log.Format)
	}
	if !slices.Contains(displayStyles, c.Display.Style) {
		return fmt.Errorf("display.style: unsupported value %q", c.Display.Style)
	}
	return nil
}

// Encode renders c as TOML.
func (c Config) Encode() (string, error) {
	data, err := toml.Marshal(c)
	if err != nil {
		return "", err
	}
	return string(data), nil
}

func SampleConfig() string {
	return sampleConfig
}

// WriteSample creates a commented sample config at path. An existing file
// is left alone and reported as fs.ErrExist.
func WriteSample(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("ensure config directory: %w", err)
	}
	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o644)
	if err != nil {
		return err
	}
	if _, err := f.WriteString(sampleConfig); err != nil {
		_ = f.Close()
		return err
	}
	return f.Close()
}
