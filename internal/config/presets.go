package config

import (
	"sort"
	"time"
)

var Presets = map[string]*Config{
	"classic": {
		Padding: 2, Palette: "bright", Tick: time.Second,
	},
	"rainbow": {
		Padding: 2, Palette: "extended", Tick: 500 * time.Millisecond,
	},
	"wide": {
		Padding: 3, Palette: "extended", Tick: time.Second,
	},
	"calm": {
		Padding: 4, Palette: "bright", Tick: 3 * time.Second,
	},
}

// GetPreset returns a copy of the named preset merged over the defaults, or
// nil if there is none.
func GetPreset(name string) *Config {
	p, ok := Presets[name]
	if !ok {
		return nil
	}
	cfg := DefaultConfig()
	cfg.Padding = p.Padding
	cfg.Palette = p.Palette
	cfg.Tick = p.Tick
	return cfg
}

func ListPresets() []string {
	names := make([]string, 0, len(Presets))
	for name := range Presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
