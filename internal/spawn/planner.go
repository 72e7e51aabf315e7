package spawn

import (
	"log/slog"
	"slices"

	"cogentcore.org/core/math32"
	"github.com/google/uuid"

	"github.com/udisondev/splinespawn/internal/config"
	"github.com/udisondev/splinespawn/internal/curve"
	"github.com/udisondev/splinespawn/internal/model"
	"github.com/udisondev/splinespawn/internal/terrain"
	"github.com/udisondev/splinespawn/internal/world"
)

var (
	up           = math32.Vec3(0, 1, 0)
	right        = math32.Vec3(1, 0, 0)
	worldForward = math32.Vec3(0, 0, 1)
)

// Projector проецирует кандидата на рельеф. ok=false — луч ничего не задел.
type Projector interface {
	Project(pos math32.Vector3) (terrain.Projection, bool)
}

// GroupReport — счётчики по слотам одного прохода группы.
type GroupReport struct {
	Group           string
	Attempted       int
	Spawned         int
	SlopeRejected   int
	SpacingRejected int
	Failed          int
}

// Yield возвращает Spawned/Attempted (0, если попыток не было).
func (r GroupReport) Yield() float64 {
	if r.Attempted == 0 {
		return 0
	}
	return float64(r.Spawned) / float64(r.Attempted)
}

// Planner вычисляет размещения вдоль кривой.
type Planner struct {
	cfg       config.Placement
	projector Projector
	rnd       Random
}

// NewPlanner создаёт planner. nil projector ведёт себя как рельеф без попаданий.
func NewPlanner(cfg config.Placement, projector Projector, rnd Random) *Planner {
	return &Planner{
		cfg:       cfg,
		projector: projector,
		rnd:       rnd,
	}
}

// Config возвращает параметры размещения.
func (p *Planner) Config() config.Placement {
	return p.cfg
}

// candidate — слот после jitter и проекции на рельеф, до вертикального смещения.
type candidate struct {
	position math32.Vector3
	forward  math32.Vector3
	slope    float32
}

func (p *Planner) candidateAt(c *curve.Container, g model.PlacementGroup, i, n int, prevForward math32.Vector3) candidate {
	s := c.Sample(curve.Param(i, n))

	forward := flatForward(s.Tangent, prevForward)
	normal := forward.Cross(up).Normal().MulScalar(g.Side.Sign())

	pos := s.Position.Add(normal.MulScalar(g.Radius))
	pos.X += draw(p.rnd, p.cfg.OffsetRange)
	pos.Z += draw(p.rnd, p.cfg.OffsetRange)

	var slope float32
	if p.projector != nil {
		if proj, ok := p.projector.Project(pos); ok {
			pos.Y = proj.Height
			slope = proj.Slope
		}
	}
	return candidate{position: pos, forward: forward, slope: slope}
}

// SpawnGroup раскладывает одну группу вдоль кривой контейнера и создаёт
// прошедших отбор под owner. Результат не превышает ObjectCount слотов;
// отброшенные слоты не добираются.
func (p *Planner) SpawnGroup(c *curve.Container, g model.PlacementGroup, host SceneHost, owner uuid.UUID) ([]*model.Instance, GroupReport) {
	report := GroupReport{Group: g.Name}
	if c == nil || c.Curve() == nil || !g.Eligible() {
		return nil, report
	}

	n := curve.ObjectCount(c.Length(), p.cfg.TargetDensity)
	report.Attempted = n

	instances := make([]*model.Instance, 0, n)
	placed := world.NewGrid(p.cfg.MinDistance)
	forward := worldForward
	for i := range n {
		cand := p.candidateAt(c, g, i, n, forward)
		forward = cand.forward

		if cand.slope > p.cfg.MaxSlopeAngle {
			report.SlopeRejected++
			continue
		}

		pos := cand.position
		pos.Y += p.cfg.FixedYOffset

		if p.cfg.MinDistance > 0 && placed.AnyWithin(pos, p.cfg.MinDistance) {
			report.SpacingRejected++
			continue
		}

		prefab := g.PrefabAt(len(instances))
		inst, err := host.Instantiate(prefab, owner, model.NewTransform(pos, lookRotation(forward), 1))
		if err != nil {
			report.Failed++
			slog.Warn("failed to instantiate prefab",
				"group", g.Name,
				"prefab", prefab,
				"index", i,
				"error", err)
			continue
		}

		// Случайный поворот и масштаб тянем только для созданного экземпляра:
		// порядок Y, X, Z, затем scale.
		rot := lookRotation(forward)
		ry := draw(p.rnd, p.cfg.RotationY)
		rx := draw(p.rnd, p.cfg.RotationX)
		rz := draw(p.rnd, p.cfg.RotationZ)
		rot.SetMul(eulerZXY(rx, ry, rz))
		inst.SetRotation(rot)
		inst.SetScale(draw(p.rnd, p.cfg.ScaleRange))

		instances = append(instances, inst)
		placed.Add(inst)
	}

	report.Spawned = len(instances)
	return slices.Clip(instances), report
}

// RepositionGroup пересчитывает позицию и направление существующих экземпляров.
// Число слотов = len(instances), а не плотность. Уклон и дистанция не
// проверяются, случайный поворот сбрасывается, scale не трогается.
func (p *Planner) RepositionGroup(c *curve.Container, g model.PlacementGroup, instances []*model.Instance) {
	if c == nil || c.Curve() == nil {
		return
	}
	n := len(instances)
	forward := worldForward
	for i, inst := range instances {
		cand := p.candidateAt(c, g, i, n, forward)
		forward = cand.forward
		if inst == nil {
			continue
		}

		pos := cand.position
		pos.Y += p.cfg.FixedYOffset

		inst.SetPosition(pos)
		inst.SetRotation(lookRotation(forward))
	}
}

// flatForward проецирует касательную на горизонтальную плоскость.
// У вертикальной или нулевой касательной нет направления — сохраняем предыдущее.
func flatForward(tangent, prev math32.Vector3) math32.Vector3 {
	flat := math32.Vec3(tangent.X, 0, tangent.Z)
	if flat.Length() < 1e-6 {
		return prev
	}
	return flat.Normal()
}

// lookRotation поворачивает +Z к горизонтальному forward вокруг мировой оси up.
func lookRotation(forward math32.Vector3) math32.Quat {
	return math32.NewQuatAxisAngle(up, math32.Atan2(forward.X, forward.Z))
}

// eulerZXY собирает углы в градусах как yaw * pitch * roll: сначала Z, затем X, затем Y.
func eulerZXY(x, y, z float32) math32.Quat {
	q := math32.NewQuatAxisAngle(up, math32.DegToRad(y))
	q.SetMul(math32.NewQuatAxisAngle(right, math32.DegToRad(x)))
	q.SetMul(math32.NewQuatAxisAngle(worldForward, math32.DegToRad(z)))
	return q
}
