package curve

import (
	"testing"

	"cogentcore.org/core/math32"
	"github.com/stretchr/testify/assert"

	"github.com/udisondev/splinespawn/internal/model"
)

func TestContainer_SampleIsWorldPositionLocalTangent(t *testing.T) {
	line := lineCurve{from: math32.Vec3(0, 0, 0), to: math32.Vec3(0, 0, 10)}
	rot := math32.NewQuatAxisAngle(math32.Vec3(0, 1, 0), math32.DegToRad(90))
	c := NewContainer(line, model.Identity().WithPosition(math32.Vec3(100, 5, 0)).WithRotation(rot))

	s := c.Sample(0.5)

	// (0,0,5) rotated a quarter turn around Y is (5,0,0)
	assert.InDelta(t, 105.0, s.Position.X, 1e-4)
	assert.InDelta(t, 5.0, s.Position.Y, 1e-4)
	assert.InDelta(t, 0.0, s.Position.Z, 1e-4)

	// tangent is not rotated
	assert.Equal(t, math32.Vec3(0, 0, 10), s.Tangent)
}

func TestContainer_LengthIgnoresScale(t *testing.T) {
	line := lineCurve{from: math32.Vec3(0, 0, 0), to: math32.Vec3(10, 0, 0)}
	c := NewContainer(line, model.Identity())
	c.SetScale(math32.Vec3(3, 3, 3))

	assert.InDelta(t, 10.0, c.Length(), 1e-6)
	assert.InDelta(t, 30.0, c.Sample(0.999999).Position.X, 1e-3)
}

func TestContainer_SetPosition(t *testing.T) {
	c := NewContainer(lineCurve{}, model.Identity())
	c.SetPosition(math32.Vec3(1, 2, 3))

	assert.Equal(t, math32.Vec3(1, 2, 3), c.Position())
	assert.Equal(t, math32.Vec3(1, 2, 3), c.Transform().Position)
}
