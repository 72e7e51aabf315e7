// Package terrain answers "how high and how steep is the ground here" with
// downward raycasts against layered height surfaces.
package terrain

import (
	"log/slog"

	"cogentcore.org/core/math32"
)

// LayerMask is a bit set of terrain classifications.
type LayerMask uint32

// DefaultLayer is the classification used when nothing else is configured.
const DefaultLayer LayerMask = 1

// Contains reports whether m shares any bit with layer.
func (m LayerMask) Contains(layer LayerMask) bool {
	return m&layer != 0
}

// Hit is a ray-vs-surface intersection.
type Hit struct {
	Point  math32.Vector3
	Normal math32.Vector3
}

// Raycaster casts a vertical ray straight down from origin and reports the
// first surface matching mask.
type Raycaster interface {
	RaycastDown(origin math32.Vector3, mask LayerMask) (Hit, bool)
}

// Surface is one raycastable piece of terrain.
type Surface interface {
	Raycaster
	Layer() LayerMask
}

// Engine holds every terrain surface of a scene.
// Not safe for concurrent mutation; queries after setup are read-only.
type Engine struct {
	surfaces []Surface
}

// NewEngine creates an empty engine (every ray misses).
func NewEngine() *Engine {
	return &Engine{}
}

// AddSurface registers a surface.
func (e *Engine) AddSurface(s Surface) {
	e.surfaces = append(e.surfaces, s)
	slog.Debug("terrain surface added", "layer", s.Layer(), "surfaces", len(e.surfaces))
}

// SurfaceCount returns the number of registered surfaces.
func (e *Engine) SurfaceCount() int {
	return len(e.surfaces)
}

// RaycastDown returns the highest hit below origin among surfaces in mask.
func (e *Engine) RaycastDown(origin math32.Vector3, mask LayerMask) (Hit, bool) {
	var (
		best  Hit
		found bool
	)
	for _, s := range e.surfaces {
		hit, ok := s.RaycastDown(origin, mask)
		if !ok {
			continue
		}
		if !found || hit.Point.Y > best.Point.Y {
			best = hit
			found = true
		}
	}
	return best, found
}
