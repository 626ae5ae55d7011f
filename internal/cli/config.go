package cli

import (
	"os"

	"github.com/BurntSushi/toml"
	"github.com/dctopo/dctopo/pkg/errors"
)

// defaultConfigFile is looked up in the working directory when --config is
// not given.
const defaultConfigFile = "dctopo.toml"

// Config holds file-based defaults for drawing commands. Flags given on the
// command line take precedence over config values.
type Config struct {
	Output   OutputConfig   `toml:"output"`
	Capacity CapacityConfig `toml:"capacity"`
}

// OutputConfig controls where and how diagrams are written.
type OutputConfig struct {
	Format string `toml:"format"` // pdf, svg, png, or dot
	Dir    string `toml:"dir"`    // output directory
}

// CapacityConfig sets default link-capacity labels. Pointer fields
// distinguish "not configured" from an explicit zero.
type CapacityConfig struct {
	Uniform *float64 `toml:"uniform"` // same label on every arc
	ToR     *float64 `toml:"tor"`     // arcs touching a top-of-rack switch
	Trunk   *float64 `toml:"trunk"`   // all remaining arcs
}

// loadConfig reads a TOML config from path. An empty path falls back to
// dctopo.toml in the working directory; a missing fallback file yields an
// empty config, while a missing explicit path is an error.
func loadConfig(path string) (Config, error) {
	var cfg Config

	explicit := path != ""
	if !explicit {
		path = defaultConfigFile
	}
	if _, err := os.Stat(path); err != nil {
		if explicit {
			return cfg, errors.Wrap(errors.ErrCodeInvalidParameter, err, "config file %s", path)
		}
		return cfg, nil
	}

	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return cfg, errors.Wrap(errors.ErrCodeInvalidParameter, err, "parse config %s", path)
	}
	return cfg, nil
}
