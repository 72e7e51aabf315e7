package scene

import (
	"testing"

	"cogentcore.org/core/math32"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/udisondev/splinespawn/internal/model"
)

func newTestGraph() *Graph {
	g := NewGraph()
	g.RegisterPrefab(Prefab{Name: "rock"})
	g.RegisterPrefab(Prefab{Name: "big_rock"})
	return g
}

func TestGraph_Instantiate(t *testing.T) {
	g := newTestGraph()
	owner := g.NewNode("spawner", g.Root())

	tr := model.NewTransform(math32.Vec3(1, 2, 3), math32.NewQuat(0, 0, 0, 1), 2)
	inst, err := g.Instantiate("rock", owner, tr)
	require.NoError(t, err)

	assert.Equal(t, "rock", inst.Prefab())
	assert.Equal(t, owner, inst.Parent())
	assert.Equal(t, tr, inst.Transform())

	got, ok := g.Get(inst.ID())
	require.True(t, ok)
	assert.Same(t, inst, got)

	assert.Equal(t, []uuid.UUID{inst.ID()}, g.Children(owner))
	assert.Equal(t, 2, g.Count())
}

func TestGraph_InstantiateKeepsScale(t *testing.T) {
	g := newTestGraph()

	inst, err := g.Instantiate("big_rock", g.Root(), model.NewTransform(math32.Vector3{}, math32.NewQuat(0, 0, 0, 1), 2))
	require.NoError(t, err)
	assert.Equal(t, math32.Vec3(2, 2, 2), inst.Scale())
}

func TestGraph_UnknownPrefab(t *testing.T) {
	g := newTestGraph()

	_, err := g.Instantiate("tree", g.Root(), model.Identity())
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrUnknownPrefab)
	assert.Equal(t, 0, g.Count())
	assert.False(t, g.HasPrefab("tree"))
	assert.True(t, g.HasPrefab("rock"))
}

func TestGraph_DestroySubtree(t *testing.T) {
	g := newTestGraph()
	owner := g.NewNode("spawner", g.Root())

	a, err := g.Instantiate("rock", owner, model.Identity())
	require.NoError(t, err)
	b, err := g.Instantiate("rock", owner, model.Identity())
	require.NoError(t, err)
	nested, err := g.Instantiate("rock", a.ID(), model.Identity())
	require.NoError(t, err)

	g.Destroy(a.ID())

	_, ok := g.Get(a.ID())
	assert.False(t, ok)
	_, ok = g.Get(nested.ID())
	assert.False(t, ok, "children are destroyed with their parent")
	assert.Equal(t, []uuid.UUID{b.ID()}, g.Children(owner))
	assert.Equal(t, 2, g.Count()) // owner + b

	// destroying twice is a no-op
	g.Destroy(a.ID())
	assert.Equal(t, 2, g.Count())
}

func TestGraph_ChildrenReturnsCopy(t *testing.T) {
	g := newTestGraph()
	owner := g.NewNode("spawner", g.Root())
	_, err := g.Instantiate("rock", owner, model.Identity())
	require.NoError(t, err)

	kids := g.Children(owner)
	kids[0] = uuid.Nil
	assert.NotEqual(t, uuid.Nil, g.Children(owner)[0])
}
