package spawn

import (
	"testing"

	"cogentcore.org/core/math32"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"github.com/udisondev/splinespawn/internal/config"
	"github.com/udisondev/splinespawn/internal/curve"
	"github.com/udisondev/splinespawn/internal/model"
	"github.com/udisondev/splinespawn/internal/scene"
	"github.com/udisondev/splinespawn/internal/terrain"
)

// lineCurve is a straight segment with uniform parametrization.
type lineCurve struct {
	from, to math32.Vector3
}

func (l lineCurve) Length() float32 { return l.to.Sub(l.from).Length() }

func (l lineCurve) Position(t float32) math32.Vector3 {
	return l.from.Add(l.to.Sub(l.from).MulScalar(t))
}

func (l lineCurve) Tangent(float32) math32.Vector3 { return l.to.Sub(l.from) }

// projectorFunc adapts a function to Projector.
type projectorFunc func(pos math32.Vector3) (terrain.Projection, bool)

func (f projectorFunc) Project(pos math32.Vector3) (terrain.Projection, bool) { return f(pos) }

func missEverywhere() Projector {
	return projectorFunc(func(math32.Vector3) (terrain.Projection, bool) {
		return terrain.Projection{}, false
	})
}

func flatAt(height float32) Projector {
	return projectorFunc(func(math32.Vector3) (terrain.Projection, bool) {
		return terrain.Projection{Height: height}, true
	})
}

// midRandom always returns the middle of the range.
type midRandom struct{}

func (midRandom) Range(min, max float32) float32 { return (min + max) / 2 }

// countingRandom records how many draws were made.
type countingRandom struct {
	inner Random
	draws int
}

func (c *countingRandom) Range(min, max float32) float32 {
	c.draws++
	return c.inner.Range(min, max)
}

// quietPlacement has no jitter and no random rotation; scale stays 1.
func quietPlacement() config.Placement {
	p := config.DefaultPlacement()
	p.OffsetRange = model.NewRange(0, 0)
	p.RotationX = model.NewRange(0, 0)
	p.RotationY = model.NewRange(0, 0)
	p.RotationZ = model.NewRange(0, 0)
	p.ScaleRange = model.NewRange(1, 1)
	p.FixedYOffset = 0
	return p
}

type fixture struct {
	graph     *scene.Graph
	owner     uuid.UUID
	container *curve.Container
	registry  *Registry
	planner   *Planner
	spawner   *Spawner
}

func newFixture(t *testing.T, c curve.Curve, groups []model.PlacementGroup, cfg config.Placement, proj Projector, rnd Random) *fixture {
	t.Helper()

	g := scene.NewGraph()
	for _, grp := range groups {
		for _, p := range grp.Prefabs {
			g.RegisterPrefab(scene.Prefab{Name: p})
		}
	}
	owner := g.NewNode("spawner", g.Root())

	var container *curve.Container
	if c != nil {
		container = curve.NewContainer(c, model.Identity())
	}
	reg := NewRegistry(g, owner)
	pl := NewPlanner(cfg, proj, rnd)
	sp := NewSpawner(container, groups, pl, reg)
	require.NotNil(t, sp)

	return &fixture{
		graph:     g,
		owner:     owner,
		container: container,
		registry:  reg,
		planner:   pl,
		spawner:   sp,
	}
}

func xLine(length float32) lineCurve {
	return lineCurve{from: math32.Vec3(0, 0, 0), to: math32.Vec3(length, 0, 0)}
}

func group(name string, radius float32, side model.Side, prefabs ...string) model.PlacementGroup {
	return model.PlacementGroup{Name: name, Prefabs: prefabs, Radius: radius, Side: side}
}
