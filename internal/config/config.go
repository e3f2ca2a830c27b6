package config

import (
	"os"

	"gopkg.in/yaml.v3"

	"github.com/san-kum/collatree/internal/collatz"
)

const (
	DefaultTheme  = "classic"
	DefaultWidth  = 1000
	DefaultHeight = 600
)

// Config is the on-disk parameter set. Angles are stored in degrees and
// converted to radians once, in Params.
type Config struct {
	NumSequences int     `yaml:"num_sequences"`
	MaxStart     int64   `yaml:"max_start"`
	AngleEven    float64 `yaml:"angle_even"`
	AngleOdd     float64 `yaml:"angle_odd"`
	BranchLength float64 `yaml:"branch_length"`
	MaxDepth     int     `yaml:"max_depth"`
	FontSize     int     `yaml:"font_size"`
	Seed         int64   `yaml:"seed,omitempty"`
	Render       Render  `yaml:"render"`
}

type Render struct {
	Theme  string `yaml:"theme"`
	Width  int    `yaml:"width"`
	Height int    `yaml:"height"`
}

func DefaultConfig() *Config {
	return &Config{
		NumSequences: collatz.DefaultNumSequences,
		MaxStart:     collatz.DefaultMaxStart,
		AngleEven:    collatz.DefaultAngleEven,
		AngleOdd:     collatz.DefaultAngleOdd,
		BranchLength: collatz.DefaultBranchLength,
		MaxDepth:     collatz.DefaultMaxDepth,
		FontSize:     collatz.DefaultFontSize,
		Render: Render{
			Theme:  DefaultTheme,
			Width:  DefaultWidth,
			Height: DefaultHeight,
		},
	}
}

func Load(path string) (*Config, error) {
	return LoadOver(path, DefaultConfig())
}

// LoadOver reads a config file on top of base. Keys missing from the file
// keep base's values; base itself is not modified.
func LoadOver(path string, base *Config) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg := base.Clone()
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

// Params converts the config into the immutable value a pass consumes.
func (c *Config) Params() collatz.Params {
	return collatz.Params{
		NumSequences: c.NumSequences,
		MaxStart:     c.MaxStart,
		AngleEven:    collatz.Radians(c.AngleEven),
		AngleOdd:     collatz.Radians(c.AngleOdd),
		BranchLength: c.BranchLength,
		MaxDepth:     c.MaxDepth,
		FontSize:     c.FontSize,
	}
}

func (c *Config) Validate() error {
	return c.Params().Validate()
}

// Clone returns an independent copy.
func (c *Config) Clone() *Config {
	cp := *c
	return &cp
}
