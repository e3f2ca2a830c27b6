package tui

import (
	"fmt"
	"math"
	"strconv"

	"github.com/san-kum/collatree/internal/config"
)

type field struct {
	label    string
	step     float64
	integer  bool
	decimals int
	get     func(*config.Config) float64
	set     func(*config.Config, float64)
}

var fields = []field{
	{
		label: "Number of Sequences (even)", step: 2, integer: true,
		get: func(c *config.Config) float64 { return float64(c.NumSequences) },
		set: func(c *config.Config, v float64) { c.NumSequences = int(v) },
	},
	{
		label: "Max Starting Number", step: 50, integer: true,
		get: func(c *config.Config) float64 { return float64(c.MaxStart) },
		set: func(c *config.Config, v float64) { c.MaxStart = int64(v) },
	},
	{
		label: "Even Angle", step: 0.5, decimals: 1,
		get: func(c *config.Config) float64 { return c.AngleEven },
		set: func(c *config.Config, v float64) { c.AngleEven = v },
	},
	{
		label: "Odd Angle", step: 0.5, decimals: 1,
		get: func(c *config.Config) float64 { return c.AngleOdd },
		set: func(c *config.Config, v float64) { c.AngleOdd = v },
	},
	{
		label: "Branch Length", step: 0.05, decimals: 2,
		get: func(c *config.Config) float64 { return c.BranchLength },
		set: func(c *config.Config, v float64) { c.BranchLength = v },
	},
	{
		label: "Max Depth", step: 5, integer: true,
		get: func(c *config.Config) float64 { return float64(c.MaxDepth) },
		set: func(c *config.Config, v float64) { c.MaxDepth = int(v) },
	},
	{
		label: "Label Font Size", step: 1, integer: true,
		get: func(c *config.Config) float64 { return float64(c.FontSize) },
		set: func(c *config.Config, v float64) { c.FontSize = int(v) },
	},
}

// nudge moves the field one step in dir and rounds fractional fields to
// the step's decimals so repeated steps do not accumulate float error.
func (f field) nudge(c *config.Config, dir float64) {
	v := f.get(c) + dir*f.step
	if !f.integer {
		scale := math.Pow(10, float64(f.decimals))
		v = math.Round(v*scale) / scale
	}
	f.set(c, v)
}

func (f field) format(c *config.Config) string {
	if f.integer {
		return strconv.FormatInt(int64(f.get(c)), 10)
	}
	return strconv.FormatFloat(f.get(c), 'g', -1, 64)
}

// parse reads an edit buffer. Whole-number fields reject fractions.
func (f field) parse(s string) (float64, error) {
	if f.integer {
		n, err := strconv.ParseInt(s, 10, 64)
		if err != nil {
			return 0, fmt.Errorf("%s: %q is not a whole number", f.label, s)
		}
		return float64(n), nil
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, fmt.Errorf("%s: %q is not a number", f.label, s)
	}
	return v, nil
}
