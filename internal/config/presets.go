package config

import "sort"

var Presets = map[string]*Config{
	"classic": {
		NumSequences: 20, MaxStart: 500, AngleEven: -8, AngleOdd: 16,
		BranchLength: 0.5, MaxDepth: 25, FontSize: 8,
	},
	"seaweed": {
		NumSequences: 60, MaxStart: 5000, AngleEven: -8.65, AngleOdd: 16,
		BranchLength: 0.3, MaxDepth: 80, FontSize: 6,
	},
	"coral": {
		NumSequences: 40, MaxStart: 2000, AngleEven: 12, AngleOdd: -20,
		BranchLength: 0.4, MaxDepth: 50, FontSize: 7,
	},
	"spiral": {
		NumSequences: 10, MaxStart: 200, AngleEven: -15, AngleOdd: 25,
		BranchLength: 0.8, MaxDepth: 40, FontSize: 9,
	},
	"fan": {
		NumSequences: 100, MaxStart: 1000, AngleEven: -4, AngleOdd: 9,
		BranchLength: 0.5, MaxDepth: 20, FontSize: 5,
	},
}

// GetPreset returns a copy of the named preset with default render
// settings, or nil when no such preset exists.
func GetPreset(name string) *Config {
	p, ok := Presets[name]
	if !ok {
		return nil
	}
	cfg := p.Clone()
	if cfg.Render == (Render{}) {
		cfg.Render = DefaultConfig().Render
	}
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
