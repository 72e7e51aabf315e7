// Package world раскладывает размещённые экземпляры по квадратным ячейкам
// плоскости XZ, чтобы проверка дистанции смотрела только на окно 3×3.
package world

import (
	"cogentcore.org/core/math32"

	"github.com/udisondev/splinespawn/internal/model"
)

// maxCell ограничивает индекс ячейки: float→int32 вне диапазона не определён.
// Ячейки за границей сливаются в крайнюю, точная дистанция проверяется отдельно.
const maxCell = 1 << 30

// cell — индекс ячейки на плоскости XZ.
type cell struct {
	x, z int32
}

// Grid — разреженная сетка экземпляров на XZ. Не потокобезопасна.
type Grid struct {
	cellSize float32
	cells    map[cell][]*model.Instance
	count    int
}

// NewGrid создаёт сетку. Запросы точны для радиусов не больше cellSize.
// cellSize <= 0 заменяется на 1.
func NewGrid(cellSize float32) *Grid {
	if cellSize <= 0 {
		cellSize = 1
	}
	return &Grid{
		cellSize: cellSize,
		cells:    make(map[cell][]*model.Instance),
	}
}

// CellSize возвращает длину ребра ячейки.
func (g *Grid) CellSize() float32 {
	return g.cellSize
}

// CellOf переводит мировую позицию в индекс ячейки.
// Formula: clamp(floor(coord / cellSize), ±maxCell); Y игнорируется.
func (g *Grid) CellOf(pos math32.Vector3) (cx, cz int32) {
	return cellIndex(pos.X, g.cellSize), cellIndex(pos.Z, g.cellSize)
}

func cellIndex(coord, size float32) int32 {
	f := math32.Floor(coord / size)
	if math32.IsNaN(f) {
		return 0
	}
	return int32(math32.Clamp(f, -maxCell, maxCell))
}

// Add кладёт экземпляр в ячейку по его текущей позиции.
func (g *Grid) Add(inst *model.Instance) {
	cx, cz := g.CellOf(inst.Position())
	k := cell{cx, cz}
	g.cells[k] = append(g.cells[k], inst)
	g.count++
}

// ForEachNear вызывает fn для каждого экземпляра в окне 3×3 вокруг pos.
// Итерация прекращается, если fn вернул false.
func (g *Grid) ForEachNear(pos math32.Vector3, fn func(*model.Instance) bool) {
	cx, cz := g.CellOf(pos)
	for dx := int32(-1); dx <= 1; dx++ {
		for dz := int32(-1); dz <= 1; dz++ {
			for _, inst := range g.cells[cell{cx + dx, cz + dz}] {
				if !fn(inst) {
					return
				}
			}
		}
	}
}

// AnyWithin сообщает, есть ли экземпляр ближе radius к pos (3D расстояние).
// radius не должен превышать размер ячейки.
func (g *Grid) AnyWithin(pos math32.Vector3, radius float32) bool {
	found := false
	g.ForEachNear(pos, func(inst *model.Instance) bool {
		if pos.DistanceTo(inst.Position()) < radius {
			found = true
			return false
		}
		return true
	})
	return found
}

// Count возвращает число экземпляров, добавленных после последнего Reset.
func (g *Grid) Count() int {
	return g.count
}

// CellCount возвращает число занятых ячеек.
func (g *Grid) CellCount() int {
	return len(g.cells)
}

// Reset очищает сетку.
func (g *Grid) Reset() {
	clear(g.cells)
	g.count = 0
}
