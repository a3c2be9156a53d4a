// Package config holds the small set of knobs this project exposes to
// its CLI collaborator, loaded from YAML the way this project's other
// structured fixtures are loaded (gopkg.in/yaml.v3).
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Options holds cmd/cocshow's two knobs. MaxTermSize is the one knob
// spec.md's resource model (§5) leaves open to implementations: a soft
// ceiling on the size of a term a collaborator will hand to the reducer
// or checker, used by cmd/cocshow to refuse pathological catalog entries
// rather than let a REPL command hang. It has no effect on the core's
// own algorithms, which are unconditionally total/partial exactly as
// spec.md §7 describes. ColorOutput turns ANSI coloring of output on or
// off.
type Options struct {
	MaxTermSize int `yaml:"max_term_size"`
	ColorOutput bool `yaml:"color_output"`
}

// Default returns the built-in defaults used when no config file is present.
func Default() Options {
	return Options{MaxTermSize: 100_000, ColorOutput: true}
}

// Load reads Options from a YAML file at path, starting from Default()
// and overlaying whatever fields the file sets. A missing file is not
// an error — it just means the defaults stand.
func Load(path string) (Options, error) {
	opts := Default()
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return opts, nil
		}
		return opts, fmt.Errorf("config: reading %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, &opts); err != nil {
		return opts, fmt.Errorf("config: parsing %s: %w", path, err)
	}
	return opts, nil
}
