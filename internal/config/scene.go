package config

// Scene describes the host side: the curve, its container, the terrain and
// the edits a session replays after the first spawn.
type Scene struct {
	Curve   CurveConfig    `yaml:"curve" toml:"curve"`
	Terrain TerrainConfig  `yaml:"terrain" toml:"terrain"`
	Prefabs []PrefabConfig `yaml:"prefabs" toml:"prefabs"`
	Moves   []Vec3         `yaml:"container_moves" toml:"container_moves"` // absolute container positions
	Edits   []KnotEdit     `yaml:"knot_edits" toml:"knot_edits"`
}

// CurveConfig is the spline and its container transform.
type CurveConfig struct {
	Knots     []Vec3  `yaml:"knots" toml:"knots"`
	Closed    bool    `yaml:"closed" toml:"closed"`
	Position  Vec3    `yaml:"position" toml:"position"`
	RotationY float32 `yaml:"rotation_y" toml:"rotation_y"` // degrees
	Scale     float32 `yaml:"scale" toml:"scale"`           // 0 = 1
}

// TerrainConfig is a heightmap. Without Heights it is a plane
// base + grad_x*x + grad_z*z over [min_x,max_x]x[min_z,max_z].
type TerrainConfig struct {
	MinX     float32   `yaml:"min_x" toml:"min_x"`
	MinZ     float32   `yaml:"min_z" toml:"min_z"`
	MaxX     float32   `yaml:"max_x" toml:"max_x"`
	MaxZ     float32   `yaml:"max_z" toml:"max_z"`
	Base     float32   `yaml:"base" toml:"base"`
	GradX    float32   `yaml:"grad_x" toml:"grad_x"`
	GradZ    float32   `yaml:"grad_z" toml:"grad_z"`
	CellSize float32   `yaml:"cell_size" toml:"cell_size"`
	Width    int       `yaml:"width" toml:"width"`
	Depth    int       `yaml:"depth" toml:"depth"`
	Heights  []float32 `yaml:"heights" toml:"heights"` // row-major, width*depth
	Layer    uint32    `yaml:"layer" toml:"layer"`
}

// PrefabConfig registers a template in the host scene. Spawned scale always
// comes from random_scale_range.
type PrefabConfig struct {
	Name string `yaml:"name" toml:"name"`
}

// KnotEdit moves one knot of the spline.
type KnotEdit struct {
	Index    int  `yaml:"index" toml:"index"`
	Position Vec3 `yaml:"position" toml:"position"`
}

// DefaultScene returns a gentle S-curve over a flat 200x200 ground.
func DefaultScene() Scene {
	return Scene{
		Curve: CurveConfig{
			Knots: []Vec3{
				{-40, 0, -40},
				{-10, 0, -20},
				{10, 0, 20},
				{40, 0, 40},
			},
			Scale: 1,
		},
		Terrain: TerrainConfig{
			MinX:  -100,
			MinZ:  -100,
			MaxX:  100,
			MaxZ:  100,
			Layer: 1,
		},
	}
}
