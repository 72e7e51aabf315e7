package model

import (
	"cogentcore.org/core/math32"
	"github.com/google/uuid"
)

// Instance — заспавненный объект в сцене.
// ID и prefab неизменны после создания; transform меняется при reposition.
// Без блокировок: spawner однопоточный, все вызовы идут из update-цикла хоста.
type Instance struct {
	id     uuid.UUID
	prefab string
	parent uuid.UUID

	transform Transform
}

// NewInstance создаёт экземпляр prefab под узлом parent.
func NewInstance(id uuid.UUID, prefab string, parent uuid.UUID, tr Transform) *Instance {
	return &Instance{
		id:        id,
		prefab:    prefab,
		parent:    parent,
		transform: tr,
	}
}

// ID возвращает уникальный идентификатор экземпляра.
func (i *Instance) ID() uuid.UUID {
	return i.id
}

// Prefab возвращает имя шаблона, из которого создан экземпляр.
func (i *Instance) Prefab() string {
	return i.prefab
}

// Parent возвращает ID узла-владельца.
func (i *Instance) Parent() uuid.UUID {
	return i.parent
}

// Transform возвращает копию transform (value type).
func (i *Instance) Transform() Transform {
	return i.transform
}

// Position возвращает мировую позицию (hot path для проверки расстояний).
func (i *Instance) Position() math32.Vector3 {
	return i.transform.Position
}

// SetPosition устанавливает мировую позицию.
func (i *Instance) SetPosition(pos math32.Vector3) {
	i.transform.Position = pos
}

// Rotation возвращает мировой поворот.
func (i *Instance) Rotation() math32.Quat {
	return i.transform.Rotation
}

// SetRotation устанавливает мировой поворот.
func (i *Instance) SetRotation(rot math32.Quat) {
	i.transform.Rotation = rot
}

// Scale возвращает локальный масштаб.
func (i *Instance) Scale() math32.Vector3 {
	return i.transform.Scale
}

// SetScale устанавливает равномерный локальный масштаб.
func (i *Instance) SetScale(s float32) {
	i.transform.Scale = math32.Vec3(s, s, s)
}
