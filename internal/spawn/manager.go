package spawn

import (
	"log/slog"
	"slices"

	"cogentcore.org/core/math32"

	"github.com/udisondev/splinespawn/internal/curve"
	"github.com/udisondev/splinespawn/internal/model"
)

// Report summarizes one Spawn call.
type Report struct {
	Groups []GroupReport
}

// Spawned returns the total number of instances created.
func (r Report) Spawned() int {
	n := 0
	for _, g := range r.Groups {
		n += g.Spawned
	}
	return n
}

// Spawner keeps props laid along a curve container in sync with it.
// It is driven by the host: Spawn on demand, OnCurveChanged when the curve
// is edited and Poll once per update tick. Not safe for concurrent use.
type Spawner struct {
	container *curve.Container
	groups    []model.PlacementGroup
	planner   *Planner
	registry  *Registry

	lastPosition math32.Vector3
}

// NewSpawner creates a spawner. A nil container, or one without a curve,
// disables it: Spawn, Poll and the reposition entry points do nothing.
func NewSpawner(container *curve.Container, groups []model.PlacementGroup, planner *Planner, registry *Registry) *Spawner {
	s := &Spawner{
		container: container,
		groups:    slices.Clone(groups),
		planner:   planner,
		registry:  registry,
	}
	if container != nil {
		s.lastPosition = container.Position()
	}
	return s
}

// Enabled reports whether a container with a curve is attached.
func (s *Spawner) Enabled() bool {
	return s.container != nil && s.container.Curve() != nil
}

// Groups returns the group configurations in processing order.
func (s *Spawner) Groups() []model.PlacementGroup {
	return slices.Clone(s.groups)
}

// Instances returns the live instances of group i.
func (s *Spawner) Instances(i int) []*model.Instance {
	return slices.Clone(s.registry.Group(i))
}

// InstanceCount returns the number of live instances across groups.
func (s *Spawner) InstanceCount() int {
	return s.registry.Count()
}

// Spawn destroys every previous instance and rebuilds all eligible groups.
func (s *Spawner) Spawn() Report {
	if !s.Enabled() {
		slog.Debug("spawn skipped: no curve")
		return Report{}
	}

	s.registry.Clear()

	report := Report{Groups: make([]GroupReport, 0, len(s.groups))}
	for i, g := range s.groups {
		if !g.Eligible() {
			slog.Debug("group skipped: no prefabs", "group", g.Name)
			report.Groups = append(report.Groups, GroupReport{Group: g.Name})
			continue
		}

		instances, gr := s.planner.SpawnGroup(s.container, g, s.registry.Host(), s.registry.Owner())
		s.registry.RecordGroup(i, instances)
		report.Groups = append(report.Groups, gr)

		slog.Debug("group spawned",
			"group", g.Name,
			"attempted", gr.Attempted,
			"spawned", gr.Spawned,
			"slope_rejected", gr.SlopeRejected,
			"spacing_rejected", gr.SpacingRejected,
			"failed", gr.Failed)
	}

	s.lastPosition = s.container.Position()

	slog.Info("spawn complete", "groups", len(s.groups), "instances", report.Spawned())
	return report
}

// Clear destroys every instance.
func (s *Spawner) Clear() {
	s.registry.Clear()
}

// OnCurveChanged repositions instances after the curve shape changed.
func (s *Spawner) OnCurveChanged() {
	s.reposition("curve changed")
}

// OnContainerMoved repositions instances after the container transform changed.
func (s *Spawner) OnContainerMoved() {
	s.reposition("container moved")
}

// HandleSplineChange adapts OnCurveChanged to curve.Spline.OnChange.
func (s *Spawner) HandleSplineChange(ch curve.Change) {
	slog.Debug("spline knot edited", "knot", ch.KnotIndex, "modification", ch.Modification)
	s.OnCurveChanged()
}

// Poll compares the cached container position with the current one and
// repositions on change. Returns true when a reposition happened.
func (s *Spawner) Poll() bool {
	if !s.Enabled() {
		return false
	}
	pos := s.container.Position()
	if pos == s.lastPosition {
		return false
	}
	s.lastPosition = pos
	s.OnContainerMoved()
	return true
}

func (s *Spawner) reposition(reason string) {
	if !s.Enabled() {
		return
	}
	moved := 0
	for i, g := range s.groups {
		instances := s.registry.Group(i)
		if len(instances) == 0 {
			continue
		}
		s.planner.RepositionGroup(s.container, g, instances)
		moved += len(instances)
	}
	slog.Debug("instances repositioned", "reason", reason, "instances", moved)
}
