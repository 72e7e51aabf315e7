// Package scene is an in-memory scene node store: prefab templates,
// instances and their parent/child links.
package scene

import (
	"errors"
	"fmt"
	"log/slog"
	"slices"

	"github.com/google/uuid"

	"github.com/udisondev/splinespawn/internal/model"
)

// ErrUnknownPrefab is returned when instantiating a template that was never registered.
var ErrUnknownPrefab = errors.New("unknown prefab")

// Prefab is a named template instances are cloned from.
type Prefab struct {
	Name string
}

// Graph owns every node of a scene.
// Not safe for concurrent use.
type Graph struct {
	root     uuid.UUID
	prefabs  map[string]Prefab
	nodes    map[uuid.UUID]*model.Instance
	children map[uuid.UUID][]uuid.UUID // parentID → ordered child IDs
}

// NewGraph creates an empty scene with a root node ID.
func NewGraph() *Graph {
	return &Graph{
		root:     uuid.New(),
		prefabs:  make(map[string]Prefab),
		nodes:    make(map[uuid.UUID]*model.Instance),
		children: make(map[uuid.UUID][]uuid.UUID),
	}
}

// Root returns the ID of the scene root.
func (g *Graph) Root() uuid.UUID {
	return g.root
}

// RegisterPrefab adds or replaces a template.
func (g *Graph) RegisterPrefab(p Prefab) {
	g.prefabs[p.Name] = p
}

// HasPrefab reports whether a template is registered.
func (g *Graph) HasPrefab(name string) bool {
	_, ok := g.prefabs[name]
	return ok
}

// NewNode creates an empty node (no prefab) under parent and returns its ID.
// Used for owner nodes such as the spawner itself.
func (g *Graph) NewNode(name string, parent uuid.UUID) uuid.UUID {
	node := model.NewInstance(uuid.New(), name, parent, model.Identity())
	g.attach(node)
	return node.ID()
}

// Instantiate clones prefab under parent. The transform is stored as given.
func (g *Graph) Instantiate(prefab string, parent uuid.UUID, tr model.Transform) (*model.Instance, error) {
	if _, ok := g.prefabs[prefab]; !ok {
		return nil, fmt.Errorf("instantiating %q: %w", prefab, ErrUnknownPrefab)
	}

	inst := model.NewInstance(uuid.New(), prefab, parent, tr)
	g.attach(inst)
	return inst, nil
}

func (g *Graph) attach(inst *model.Instance) {
	g.nodes[inst.ID()] = inst
	g.children[inst.Parent()] = append(g.children[inst.Parent()], inst.ID())
}

// Get returns a node by ID.
func (g *Graph) Get(id uuid.UUID) (*model.Instance, bool) {
	inst, ok := g.nodes[id]
	return inst, ok
}

// Destroy removes a node and its whole subtree. Unknown IDs are ignored.
func (g *Graph) Destroy(id uuid.UUID) {
	inst, ok := g.nodes[id]
	if !ok {
		return
	}
	for _, child := range slices.Clone(g.children[id]) {
		g.Destroy(child)
	}
	delete(g.children, id)
	delete(g.nodes, id)

	siblings := g.children[inst.Parent()]
	if i := slices.Index(siblings, id); i >= 0 {
		g.children[inst.Parent()] = slices.Delete(siblings, i, i+1)
	}
	slog.Debug("node destroyed", "id", id, "prefab", inst.Prefab())
}

// Children returns the IDs of parent's direct children in creation order.
func (g *Graph) Children(parent uuid.UUID) []uuid.UUID {
	return slices.Clone(g.children[parent])
}

// Count returns the number of live nodes.
func (g *Graph) Count() int {
	return len(g.nodes)
}
