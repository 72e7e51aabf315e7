package spawn

import (
	"log/slog"

	"github.com/google/uuid"

	"github.com/udisondev/splinespawn/internal/model"
)

// SceneHost создаёт и удаляет узлы сцены по запросу spawner'а.
type SceneHost interface {
	Instantiate(prefab string, parent uuid.UUID, tr model.Transform) (*model.Instance, error)
	Destroy(id uuid.UUID)
	Children(parent uuid.UUID) []uuid.UUID
}

// Registry — единственный владелец заспавненных экземпляров, по списку на группу.
// Ссылки на экземпляры недействительны после Clear.
type Registry struct {
	host   SceneHost
	owner  uuid.UUID
	groups [][]*model.Instance
}

// NewRegistry создаёт registry, экземпляры которого живут под owner.
func NewRegistry(host SceneHost, owner uuid.UUID) *Registry {
	return &Registry{
		host:  host,
		owner: owner,
	}
}

// Owner возвращает узел-родитель всех экземпляров.
func (r *Registry) Owner() uuid.UUID {
	return r.owner
}

// Host возвращает сцену, в которой создаются экземпляры.
func (r *Registry) Host() SceneHost {
	return r.host
}

// Clear удаляет все отслеживаемые экземпляры, затем всех оставшихся детей owner
// и очищает группы. Возвращает число удалённых узлов.
func (r *Registry) Clear() int {
	destroyed := 0
	for _, group := range r.groups {
		for _, inst := range group {
			if inst == nil {
				continue
			}
			r.host.Destroy(inst.ID())
			destroyed++
		}
	}

	// Неотслеживаемые дети тоже: очистка полная, не выборочная.
	for _, id := range r.host.Children(r.owner) {
		r.host.Destroy(id)
		destroyed++
	}

	r.groups = nil
	if destroyed > 0 {
		slog.Debug("registry cleared", "owner", r.owner, "destroyed", destroyed)
	}
	return destroyed
}

// RecordGroup заменяет набор экземпляров группы i.
func (r *Registry) RecordGroup(i int, instances []*model.Instance) {
	for len(r.groups) <= i {
		r.groups = append(r.groups, nil)
	}
	r.groups[i] = instances
}

// Group возвращает экземпляры группы i (nil, если нет).
func (r *Registry) Group(i int) []*model.Instance {
	if i < 0 || i >= len(r.groups) {
		return nil
	}
	return r.groups[i]
}

// Groups возвращает списки экземпляров в порядке групп.
func (r *Registry) Groups() [][]*model.Instance {
	out := make([][]*model.Instance, len(r.groups))
	copy(out, r.groups)
	return out
}

// Count возвращает общее число отслеживаемых экземпляров.
func (r *Registry) Count() int {
	n := 0
	for _, g := range r.groups {
		n += len(g)
	}
	return n
}
