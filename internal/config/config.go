// Package config loads process-wide editor defaults — tolerances and
// the default scale/rotation pivot — from a TOML file, the way the
// teacher's internal/config/loader/toml.go loads Keystorm's settings
// (spec §1 AMBIENT STACK: "Configuration").
package config

import (
	"fmt"
	"os"

	"github.com/pelletier/go-toml/v2"

	"github.com/csgedit/csgedit/internal/editflag"
	"github.com/csgedit/csgedit/internal/geom/vecmat"
)

// Tolerances mirrors vecmat.Tol's fields in their TOML form (dist and
// perp are supplied independently; DistSq is derived, not stored).
type Tolerances struct {
	Dist float64 `toml:"dist"`
	Perp float64 `toml:"perp"`
}

// Defaults is the top-level shape of the editor's TOML config file.
type Defaults struct {
	Tol         Tolerances `toml:"tol"`
	RotateAbout string     `toml:"rotate_about"`
}

// Config is the parsed, validated process-wide configuration.
type Config struct {
	Tol         vecmat.Tol
	RotateAbout editflag.RotatePivot
}

// Default returns the configuration used when no file is present,
// matching session.New's own built-in tolerance (vecmat.DefaultTol)
// and a keypoint-centered rotation pivot.
func Default() Config {
	return Config{Tol: vecmat.DefaultTol, RotateAbout: editflag.PivotKeypoint}
}

// Load reads and parses a TOML config file at path. A missing file is
// not an error: it returns Default(), matching the teacher loader's
// "file doesn't exist, not an error" convention.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return Default(), nil
		}
		return Config{}, fmt.Errorf("config: reading %s: %w", path, err)
	}
	return Parse(data)
}

// Parse decodes TOML bytes into a Config, falling back to Default()
// fields left unset in the file.
func Parse(data []byte) (Config, error) {
	var d Defaults
	if err := toml.Unmarshal(data, &d); err != nil {
		return Config{}, fmt.Errorf("config: parsing: %w", err)
	}

	cfg := Default()
	if d.Tol.Dist > 0 {
		perp := d.Tol.Perp
		if perp <= 0 {
			perp = cfg.Tol.Perp
		}
		cfg.Tol = vecmat.NewTol(d.Tol.Dist, perp)
	}
	switch d.RotateAbout {
	case "", "keypoint":
		cfg.RotateAbout = editflag.PivotKeypoint
	case "view_center":
		cfg.RotateAbout = editflag.PivotViewCenter
	case "eye":
		cfg.RotateAbout = editflag.PivotEye
	case "model_origin":
		cfg.RotateAbout = editflag.PivotModelOrigin
	default:
		return Config{}, fmt.Errorf("config: unknown rotate_about %q", d.RotateAbout)
	}
	return cfg, nil
}
