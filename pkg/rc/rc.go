// Package rc reads the configuration file of dx.
//
// The file is in TOML. All keys are optional:
//
//	points = [0, 1, 2.5]  # where to evaluate derivatives
//	format = "text"       # text, json or yaml
//	order = 1             # order of the derivative
//	check = false         # check derivatives numerically
//	step = 1e-6           # finite difference step of the check
//	tolerance = 1e-4      # tolerance of the check
//	db = "/path/to/db"    # expression history database
//	prompt = "dx> "       # prompt of the interactive mode
package rc

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"

	"src.dx.sh/pkg/errutil"
	"src.dx.sh/pkg/logutil"
)

var logger = logutil.GetLogger("[rc] ")

// Config keeps the settings read from the configuration file.
type Config struct {
	Points    []float64 `toml:"points"`
	Format    string    `toml:"format"`
	Order     int       `toml:"order"`
	Check     bool      `toml:"check"`
	Step      float64   `toml:"step"`
	Tolerance float64   `toml:"tolerance"`
	DB        string    `toml:"db"`
	Prompt    string    `toml:"prompt"`
}

// Formats supported by the format key and the -format flag.
var Formats = []string{"text", "json", "yaml"}

// Default returns the configuration used when there is no configuration file.
func Default() *Config {
	return &Config{Format: "text", Order: 1, Prompt: "dx> "}
}

// DefaultPath returns the path of the configuration file used when -rc is not
// given: $XDG_CONFIG_HOME/dx/rc.toml, or ~/.config/dx/rc.toml if
// XDG_CONFIG_HOME is not set.
func DefaultPath() (string, error) {
	if dir := os.Getenv("XDG_CONFIG_HOME"); dir != "" {
		return filepath.Join(dir, "dx", "rc.toml"), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("cannot find config directory: %w", err)
	}
	return filepath.Join(home, ".config", "dx", "rc.toml"), nil
}

// Load reads the configuration file at path, on top of the defaults.
func Load(path string) (*Config, error) {
	c := Default()
	md, err := toml.DecodeFile(path, c)
	if err != nil {
		return nil, err
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return nil, fmt.Errorf("%s: unknown keys: %s", path, strings.Join(keys, ", "))
	}
	if err := c.Validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	logger.Printf("loaded %s: %+v", path, *c)
	return c, nil
}

// LoadDefault is like Load, but reads the file at DefaultPath, and returns
// the default configuration if that file does not exist.
func LoadDefault() (*Config, error) {
	path, err := DefaultPath()
	if err != nil {
		return nil, err
	}
	c, err := Load(path)
	if errors.Is(err, fs.ErrNotExist) {
		logger.Printf("%s does not exist, using defaults", path)
		return Default(), nil
	}
	return c, err
}

// Validate checks the values of the configuration, and reports all the
// invalid ones.
func (c *Config) Validate() error {
	var errs []error
	if !IsFormat(c.Format) {
		errs = append(errs, fmt.Errorf("invalid format %q, must be one of %s",
			c.Format, strings.Join(Formats, ", ")))
	}
	if c.Order < 0 {
		errs = append(errs, fmt.Errorf("invalid order %d, must not be negative", c.Order))
	}
	if c.Step < 0 || c.Tolerance < 0 {
		errs = append(errs, errors.New("step and tolerance must not be negative"))
	}
	return errutil.Multi(errs...)
}

// IsFormat reports whether s is one of Formats.
func IsFormat(s string) bool {
	for _, f := range Formats {
		if s == f {
			return true
		}
	}
	return false
}
