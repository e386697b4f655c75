package main

import (
	"fmt"

	"github.com/san-kum/sinkhole/internal/config"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

// resolveConfig layers the preset, the config file and explicitly set flags,
// in that order, over the defaults.
func resolveConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg := config.DefaultConfig()

	if preset != "" {
		cfg = config.GetPreset(preset)
		if cfg == nil {
			return nil, fmt.Errorf("unknown preset: %s (available: %v)", preset, config.ListPresets())
		}
	}

	if configFile != "" {
		loaded, err := config.Load(configFile)
		if err != nil {
			return nil, fmt.Errorf("failed to load config: %w", err)
		}
		cfg = loaded
	}

	applyFlags(cmd.Flags(), cfg)

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}

func applyFlags(flags *pflag.FlagSet, cfg *config.Config) {
	if flags.Changed("padding") {
		cfg.Padding = padding
	}
	if flags.Changed("palette") {
		cfg.Palette = paletteName
	}
	if flags.Changed("log") {
		cfg.LogFile = logFile
	}
	if flags.Changed("log-level") {
		cfg.LogLevel = logLevel
	}
	if flags.Changed("mouse") {
		cfg.Mouse = mouse
	}
}
