package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"cogentcore.org/core/math32"
	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"

	"github.com/udisondev/splinespawn/internal/model"
)

// Spawner holds all configuration for a spline spawner and its host scene.
type Spawner struct {
	LogLevel string `yaml:"log_level" toml:"log_level"` // debug, info, warn, error
	Seed     uint64 `yaml:"seed" toml:"seed"`           // 0 = seed from clock

	// Terrain classification the projector casts against
	TerrainLayer uint32 `yaml:"terrain_layer" toml:"terrain_layer"`

	Placement Placement `yaml:"placement" toml:"placement"`
	Groups    []Group   `yaml:"groups" toml:"groups"`

	Scene Scene `yaml:"scene" toml:"scene"`
}

// Placement holds the parameters shared by every group.
type Placement struct {
	TargetDensity float32     `yaml:"target_density" toml:"target_density"` // samples per unit of curve length
	ScaleRange    model.Range `yaml:"random_scale_range" toml:"random_scale_range"`
	OffsetRange   model.Range `yaml:"random_offset_range" toml:"random_offset_range"` // lateral X/Z jitter
	FixedYOffset  float32     `yaml:"fixed_y_offset" toml:"fixed_y_offset"`
	MaxSlopeAngle float32     `yaml:"max_slope_angle" toml:"max_slope_angle"` // degrees
	MinDistance   float32     `yaml:"min_distance_between_objects" toml:"min_distance_between_objects"`

	// Euler degrees
	RotationX model.Range `yaml:"random_rotation_x" toml:"random_rotation_x"`
	RotationY model.Range `yaml:"random_rotation_y" toml:"random_rotation_y"`
	RotationZ model.Range `yaml:"random_rotation_z" toml:"random_rotation_z"`
}

// Group is one placement band.
type Group struct {
	Name    string   `yaml:"name" toml:"name"`
	Prefabs []string `yaml:"prefabs" toml:"prefabs"`
	Radius  float32  `yaml:"radius" toml:"radius"`
	Side    string   `yaml:"side" toml:"side"` // positive | negative
}

// PlacementGroup converts the config entry into the model type.
func (g Group) PlacementGroup() model.PlacementGroup {
	return model.PlacementGroup{
		Name:    g.Name,
		Prefabs: append([]string(nil), g.Prefabs...),
		Radius:  g.Radius,
		Side:    model.ParseSide(g.Side),
	}
}

// PlacementGroups converts every configured group, keeping order.
func (s Spawner) PlacementGroups() []model.PlacementGroup {
	groups := make([]model.PlacementGroup, 0, len(s.Groups))
	for _, g := range s.Groups {
		groups = append(groups, g.PlacementGroup())
	}
	return groups
}

// DefaultPlacement returns the stock placement parameters.
func DefaultPlacement() Placement {
	return Placement{
		TargetDensity: 8.0,
		ScaleRange:    model.NewRange(1.0, 2.0),
		OffsetRange:   model.NewRange(-3.0, 3.0),
		FixedYOffset:  -0.3,
		MaxSlopeAngle: 30.0,
		MinDistance:   4.0,
		RotationX:     model.NewRange(-5, 5),
		RotationY:     model.NewRange(0, 360),
		RotationZ:     model.NewRange(-5, 5),
	}
}

// DefaultGroups returns the three stock bands: outer and inner on the
// positive side, middle on the negative side.
func DefaultGroups() []Group {
	return []Group{
		{Name: "group1", Prefabs: []string{"rock_large"}, Radius: 2.0, Side: "positive"},
		{Name: "group2", Prefabs: []string{"bush"}, Radius: 1.5, Side: "negative"},
		{Name: "group3", Prefabs: []string{"rock_small", "pebble"}, Radius: 1.0, Side: "positive"},
	}
}

// DefaultSpawner returns Spawner config with sensible defaults.
func DefaultSpawner() Spawner {
	return Spawner{
		LogLevel:     "info",
		TerrainLayer: 1,
		Placement:    DefaultPlacement(),
		Groups:       DefaultGroups(),
		Scene:        DefaultScene(),
	}
}

// LoadSpawner loads spawner config from a YAML or TOML file (by extension).
// If the file doesn't exist, returns defaults. Groups and curve knots from
// the file replace the defaults as a whole.
func LoadSpawner(path string) (Spawner, error) {
	cfg := DefaultSpawner()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("reading config %s: %w", path, err)
	}

	cfg.Groups = nil
	cfg.Scene.Curve.Knots = nil

	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		err = toml.Unmarshal(data, &cfg)
	default:
		err = yaml.Unmarshal(data, &cfg)
	}
	if err != nil {
		return DefaultSpawner(), fmt.Errorf("parsing config %s: %w", path, err)
	}

	if cfg.Groups == nil {
		cfg.Groups = DefaultGroups()
	}
	if cfg.Scene.Curve.Knots == nil {
		cfg.Scene.Curve.Knots = DefaultScene().Curve.Knots
	}

	return cfg, nil
}

// Validate reports every setting the placement passes cannot work with.
func (s Spawner) Validate() error {
	var errs []error
	p := s.Placement
	if p.TargetDensity < 0 {
		errs = append(errs, fmt.Errorf("target_density must not be negative, got %v", p.TargetDensity))
	}
	if p.MinDistance < 0 {
		errs = append(errs, fmt.Errorf("min_distance_between_objects must not be negative, got %v", p.MinDistance))
	}
	if p.MaxSlopeAngle < 0 {
		errs = append(errs, fmt.Errorf("max_slope_angle must not be negative, got %v", p.MaxSlopeAngle))
	}
	for _, r := range []struct {
		key string
		rg  model.Range
	}{
		{"random_scale_range", p.ScaleRange},
		{"random_offset_range", p.OffsetRange},
		{"random_rotation_x", p.RotationX},
		{"random_rotation_y", p.RotationY},
		{"random_rotation_z", p.RotationZ},
	} {
		if r.rg.Inverted() {
			errs = append(errs, fmt.Errorf("%s min %v exceeds max %v", r.key, r.rg.Min, r.rg.Max))
		}
	}
	for i, g := range s.Groups {
		if side := strings.ToLower(g.Side); side != "" && side != "positive" && side != "negative" {
			errs = append(errs, fmt.Errorf("group %d (%s): unknown side %q", i, g.Name, g.Side))
		}
	}
	for i, v := range s.Scene.Curve.Knots {
		if len(v) != 3 {
			errs = append(errs, fmt.Errorf("knot %d: expected 3 components, got %d", i, len(v)))
		}
	}
	return errors.Join(errs...)
}

// Vec3 is a YAML/TOML friendly [x, y, z] triple.
type Vec3 []float32

// Vector3 converts to math32. Missing components are zero.
func (v Vec3) Vector3() math32.Vector3 {
	var out [3]float32
	copy(out[:], v)
	return math32.Vec3(out[0], out[1], out[2])
}
