// Package config loads the optional runtime overlay on top of the
// compile-time configuration record (§6): a handful of visually and
// behaviorally tunable fields read once, before the event loop starts, from
// a YAML file. Nothing here is re-read after startup — the overlay has no
// watcher and no reload action, matching §5's "configuration is immutable
// after startup".
package config

import (
	"fmt"
	"os"

	"github.com/mattn/go-shellwords"
	"gopkg.in/yaml.v3"
)

// Overlay is the subset of the configuration record that an operator may
// reasonably want to tweak without recompiling: tag labels, the default
// master fraction, snap distance, border width, bar visibility and
// position, whether tiled clients honor size hints, colors, the font, and
// named spawn command lines. Anything not
// set here falls back to the compiled-in default (see wm.DefaultConfig).
type Overlay struct {
	Tags      []string       `yaml:"tags"`
	MFact     *float64       `yaml:"mfact"`
	Snap      *int           `yaml:"snap"`
	BorderPx  *int           `yaml:"border_px"`
	ShowBar   *bool          `yaml:"show_bar"`
	TopBar    *bool          `yaml:"top_bar"`
	Resize    *bool          `yaml:"resize_hints"`
	Colors    *ColorOverlay  `yaml:"colors"`
	FontSpec  *string        `yaml:"font_spec"`
	Spawns    map[string]string `yaml:"spawns"` // binding name -> shell command line
}

// ColorOverlay mirrors the normal/selected foreground/background/border
// tuple named in §6's configuration record. Values are "#rrggbb" strings;
// the caller (wm.Config.ApplyOverlay) parses them.
type ColorOverlay struct {
	NormFG     string `yaml:"norm_fg"`
	NormBG     string `yaml:"norm_bg"`
	NormBorder string `yaml:"norm_border"`
	SelFG      string `yaml:"sel_fg"`
	SelBG      string `yaml:"sel_bg"`
	SelBorder  string `yaml:"sel_border"`
}

// Load reads and decodes an Overlay from path. A missing file is not an
// error — it is treated the same as an empty overlay, since the overlay is
// optional by design.
func Load(path string) (*Overlay, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return &Overlay{}, nil
		}
		return nil, fmt.Errorf("config: reading overlay %q: %w", path, err)
	}
	var o Overlay
	if err := yaml.Unmarshal(data, &o); err != nil {
		return nil, fmt.Errorf("config: parsing overlay %q: %w", path, err)
	}
	return &o, nil
}

// SplitArgv splits a shell-style command line into argv, the same way a
// spawn binding's argument is authored in the overlay's spawns map.
func SplitArgv(line string) ([]string, error) {
	argv, err := shellwords.Parse(line)
	if err != nil {
		return nil, fmt.Errorf("config: splitting spawn command %q: %w", line, err)
	}
	return argv, nil
}
