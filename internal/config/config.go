package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/san-kum/sinkhole/internal/field"
	"github.com/san-kum/sinkhole/internal/palette"
	"gopkg.in/yaml.v3"
)

const (
	DefaultPalette  = "bright"
	DefaultTick     = time.Second
	DefaultTitle    = "sinkhole"
	DefaultMouse    = MouseAll
	DefaultLogLevel = "info"
)

// Mouse reporting modes.
const (
	MouseAll  = "all"
	MouseCell = "cell"
)

var (
	ErrTick  = errors.New("config: tick must be positive")
	ErrMouse = errors.New("config: mouse must be \"all\" or \"cell\"")
)

type Config struct {
	Padding  int           `yaml:"padding"`
	Palette  string        `yaml:"palette"`
	Tick     time.Duration `yaml:"tick"`
	Title    string        `yaml:"title"`
	Mouse    string        `yaml:"mouse"`
	LogFile  string        `yaml:"log_file"`
	LogLevel string        `yaml:"log_level"`
}

func DefaultConfig() *Config {
	return &Config{
		Padding:  field.DefaultPadding,
		Palette:  DefaultPalette,
		Tick:     DefaultTick,
		Title:    DefaultTitle,
		Mouse:    DefaultMouse,
		LogLevel: DefaultLogLevel,
	}
}

func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// Validate checks every field and returns the first problem found.
func (c *Config) Validate() error {
	if err := field.ValidatePadding(c.Padding); err != nil {
		return err
	}
	if _, err := palette.Lookup(c.Palette); err != nil {
		return err
	}
	if c.Tick <= 0 {
		return ErrTick
	}
	if c.Mouse != MouseAll && c.Mouse != MouseCell {
		return fmt.Errorf("%w: got %q", ErrMouse, c.Mouse)
	}
	return nil
}

// GetPalette resolves the configured palette, falling back to bright.
func (c *Config) GetPalette() palette.Palette {
	p, err := palette.Lookup(c.Palette)
	if err != nil {
		return palette.Bright
	}
	return p
}
