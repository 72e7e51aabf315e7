package terrain

import "cogentcore.org/core/math32"

// DefaultCastHeight is how far above a candidate the downward ray starts.
const DefaultCastHeight = 1000

var up = math32.Vec3(0, 1, 0)

// Projection is the terrain under a horizontal position.
type Projection struct {
	Height float32 // surface Y
	Slope  float32 // degrees between surface normal and world up
}

// Projector snaps positions onto terrain.
type Projector struct {
	caster     Raycaster
	mask       LayerMask
	castHeight float32
}

// NewProjector creates a projector that only sees surfaces in mask.
func NewProjector(caster Raycaster, mask LayerMask) *Projector {
	return &Projector{
		caster:     caster,
		mask:       mask,
		castHeight: DefaultCastHeight,
	}
}

// Mask returns the terrain classification the projector casts against.
func (p *Projector) Mask() LayerMask {
	return p.mask
}

// Project casts one ray from castHeight above pos. ok is false when nothing
// is hit; callers keep the input height and treat the slope as 0.
func (p *Projector) Project(pos math32.Vector3) (Projection, bool) {
	if p.caster == nil {
		return Projection{}, false
	}
	hit, ok := p.caster.RaycastDown(pos.Add(up.MulScalar(p.castHeight)), p.mask)
	if !ok {
		return Projection{}, false
	}
	return Projection{Height: hit.Point.Y, Slope: SlopeDegrees(hit.Normal)}, true
}

// SlopeDegrees returns the angle between normal and world up in degrees.
func SlopeDegrees(normal math32.Vector3) float32 {
	n := normal.Normal()
	return math32.RadToDeg(math32.Acos(math32.Clamp(n.Dot(up), -1, 1)))
}
