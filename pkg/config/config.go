// Package config loads pixelgrid defaults from a TOML file.
//
// The file is optional. When present it supplies defaults for flags the user
// did not set on the command line:
//
//	[randomize]
//	pixel_size = 32
//	seed = 7
//
//	[interleave]
//	num_segments = 8
//	output = "strips.png"
//
// Zero values mean "use the built-in default". Unknown keys are rejected so
// typos do not silently fall back to defaults.
package config

import (
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/matzehuels/pixelgrid/pkg/errors"
)

const (
	// appName is the directory name under the user's config home.
	appName = "pixelgrid"

	// fileName is the config file looked up in the config directory.
	fileName = "config.toml"
)

// Config holds per-command defaults.
type Config struct {
	Randomize  Randomize  `toml:"randomize"`
	Interleave Interleave `toml:"interleave"`
}

// Randomize holds defaults for the randomize command.
type Randomize struct {
	PixelSize int    `toml:"pixel_size"`
	Seed      uint64 `toml:"seed"`
}

// Interleave holds defaults for the interleave command.
type Interleave struct {
	NumSegments int    `toml:"num_segments"`
	Output      string `toml:"output"`
}

// Decode parses TOML from r.
func Decode(r io.Reader) (Config, error) {
	var cfg Config
	md, err := toml.NewDecoder(r).Decode(&cfg)
	if err != nil {
		return Config{}, errors.Wrap(errors.ErrCodeInvalidConfig, err, "parsing config")
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return Config{}, errors.New(errors.ErrCodeInvalidConfig, "unknown config keys: %s", strings.Join(keys, ", "))
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Load reads the config file at path. The file must exist.
func Load(path string) (Config, error) {
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return Config{}, errors.Wrap(errors.ErrCodeFileNotFound, err, "config file %q", path)
		}
		return Config{}, errors.Wrap(errors.ErrCodeInvalidConfig, err, "config file %q", path)
	}
	defer f.Close()

	cfg, err := Decode(f)
	if err != nil {
		return Config{}, errors.Wrap(errors.ErrCodeInvalidConfig, err, "config file %q", path)
	}
	return cfg, nil
}

// LoadDefault reads the config file from [DefaultPath] if it exists.
// A missing file yields an empty Config and an empty path.
func LoadDefault() (Config, string, error) {
	path, err := DefaultPath()
	if err != nil {
		return Config{}, "", nil
	}
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return Config{}, "", nil
	}
	cfg, err := Load(path)
	return cfg, path, err
}

// DefaultPath returns the config file location using the XDG standard
// (~/.config/pixelgrid/config.toml).
func DefaultPath() (string, error) {
	if configHome := os.Getenv("XDG_CONFIG_HOME"); configHome != "" {
		return filepath.Join(configHome, appName, fileName), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", appName, fileName), nil
}

// Validate rejects values no command could use. Zero values are allowed.
func (c Config) Validate() error {
	if c.Randomize.PixelSize < 0 {
		return errors.New(errors.ErrCodeInvalidConfig, "randomize.pixel_size must be positive (got %d)", c.Randomize.PixelSize)
	}
	if c.Interleave.NumSegments < 0 {
		return errors.New(errors.ErrCodeInvalidConfig, "interleave.num_segments must be positive (got %d)", c.Interleave.NumSegments)
	}
	if c.Interleave.Output != "" {
		if err := errors.ValidateOutputPath(c.Interleave.Output); err != nil {
			return errors.Wrap(errors.ErrCodeInvalidConfig, err, "interleave.output")
		}
	}
	return nil
}
