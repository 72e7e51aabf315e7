package curve

import (
	"cogentcore.org/core/math32"

	"github.com/udisondev/splinespawn/internal/model"
)

// Container owns a curve and places it in the world.
type Container struct {
	curve     Curve
	transform model.Transform
}

// NewContainer wraps c with the given world transform.
func NewContainer(c Curve, tr model.Transform) *Container {
	return &Container{curve: c, transform: tr}
}

// Curve returns the contained curve.
func (c *Container) Curve() Curve {
	return c.curve
}

// Transform returns the container's world transform.
func (c *Container) Transform() model.Transform {
	return c.transform
}

// Position returns the container's world position.
func (c *Container) Position() math32.Vector3 {
	return c.transform.Position
}

// SetPosition moves the container.
func (c *Container) SetPosition(pos math32.Vector3) {
	c.transform.Position = pos
}

// SetRotation rotates the container.
func (c *Container) SetRotation(rot math32.Quat) {
	c.transform.Rotation = rot
}

// SetScale rescales the container.
func (c *Container) SetScale(scale math32.Vector3) {
	c.transform.Scale = scale
}

// Length returns the curve's local arc length. Container scale is ignored.
func (c *Container) Length() float32 {
	return c.curve.Length()
}

// Sample evaluates the curve at t and returns the world position together
// with the curve-local tangent.
func (c *Container) Sample(t float32) Sample {
	s := SampleAt(c.curve, t)
	s.Position = c.transform.TransformPoint(s.Position)
	return s
}
