package calc

import (
	"fmt"

	"src.dx.sh/pkg/check"
	"src.dx.sh/pkg/prog"
	"src.dx.sh/pkg/rc"
)

// Options controls how expressions are processed and shown.
type Options struct {
	// Points to evaluate the derivative at.
	Points []float64
	// Order of the derivative.
	Order int
	// Whether to check the derivative numerically at Points.
	Check    bool
	Settings check.Settings
	// One of rc.Formats.
	Format string
	// Path of the history database; empty when there is none.
	DB     string
	Prompt string
}

// NewOptions builds Options from the configuration file and the command-line
// flags, with flags taking precedence.
func NewOptions(f *prog.Flags) (*Options, error) {
	c, err := loadConfig(f)
	if err != nil {
		return nil, err
	}
	opts := &Options{
		Points: c.Points, Order: c.Order, Check: c.Check,
		Settings: check.Settings{Step: c.Step, Tolerance: c.Tolerance},
		Format:   c.Format, DB: c.DB, Prompt: c.Prompt,
	}

	if f.At != "" {
		points, err := prog.ParsePoints(f.At)
		if err != nil {
			return nil, prog.BadUsage(err.Error())
		}
		opts.Points = points
	}
	if f.Order >= 0 {
		opts.Order = f.Order
	}
	if f.Check {
		if opts.Order == 0 {
			return nil, prog.BadUsage("-check requires an order of at least 1")
		}
		opts.Check = true
	}
	if f.Format != "" {
		if !rc.IsFormat(f.Format) {
			return nil, prog.BadUsage(fmt.Sprintf("invalid -format %q", f.Format))
		}
		opts.Format = f.Format
	}
	if f.JSON {
		opts.Format = "json"
	}
	if f.DB != "" {
		opts.DB = f.DB
	}
	return opts, nil
}

func loadConfig(f *prog.Flags) (*rc.Config, error) {
	switch {
	case f.NoRc:
		return rc.Default(), nil
	case f.RC != "":
		return rc.Load(f.RC)
	default:
		return rc.LoadDefault()
	}
}
