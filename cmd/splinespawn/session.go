package main

import (
	"context"
	"fmt"
	"log/slog"

	"cogentcore.org/core/math32"

	"github.com/udisondev/splinespawn/internal/config"
	"github.com/udisondev/splinespawn/internal/curve"
	"github.com/udisondev/splinespawn/internal/model"
	"github.com/udisondev/splinespawn/internal/scene"
	"github.com/udisondev/splinespawn/internal/spawn"
	"github.com/udisondev/splinespawn/internal/terrain"
)

// session is the host scene the spawner runs in.
type session struct {
	graph     *scene.Graph
	spline    *curve.Spline
	container *curve.Container
	terrain   *terrain.Engine
	spawner   *spawn.Spawner
}

func newSession(cfg config.Spawner) (*session, error) {
	knots := make([]math32.Vector3, 0, len(cfg.Scene.Curve.Knots))
	for _, k := range cfg.Scene.Curve.Knots {
		knots = append(knots, k.Vector3())
	}
	spline := curve.NewSpline(knots, cfg.Scene.Curve.Closed)
	container := curve.NewContainer(spline, containerTransform(cfg.Scene.Curve))

	ground, err := buildTerrain(cfg.Scene.Terrain)
	if err != nil {
		return nil, fmt.Errorf("building terrain: %w", err)
	}
	engine := terrain.NewEngine()
	engine.AddSurface(ground)

	graph := scene.NewGraph()
	for _, p := range cfg.Scene.Prefabs {
		graph.RegisterPrefab(scene.Prefab{Name: p.Name})
	}
	groups := cfg.PlacementGroups()
	for _, g := range groups {
		for _, name := range g.Prefabs {
			if !graph.HasPrefab(name) {
				graph.RegisterPrefab(scene.Prefab{Name: name})
			}
		}
	}
	owner := graph.NewNode("spline_spawner", graph.Root())

	projector := terrain.NewProjector(engine, terrain.LayerMask(cfg.TerrainLayer))
	planner := spawn.NewPlanner(cfg.Placement, projector, spawn.NewRandom(cfg.Seed))
	spawner := spawn.NewSpawner(container, groups, planner, spawn.NewRegistry(graph, owner))
	spline.OnChange(spawner.HandleSplineChange)

	slog.Info("scene built",
		"curve_length", spline.Length(),
		"closed", spline.Closed(),
		"surfaces", engine.SurfaceCount(),
		"terrain_layer", cfg.TerrainLayer)

	return &session{
		graph:     graph,
		spline:    spline,
		container: container,
		terrain:   engine,
		spawner:   spawner,
	}, nil
}

func containerTransform(c config.CurveConfig) model.Transform {
	scale := c.Scale
	if scale == 0 {
		scale = 1
	}
	rot := math32.NewQuatAxisAngle(math32.Vec3(0, 1, 0), math32.DegToRad(c.RotationY))
	return model.NewTransform(c.Position.Vector3(), rot, scale)
}

func buildTerrain(t config.TerrainConfig) (*terrain.Heightmap, error) {
	layer := terrain.LayerMask(t.Layer)
	if layer == 0 {
		layer = terrain.DefaultLayer
	}
	if len(t.Heights) > 0 {
		return terrain.NewHeightmap(t.MinX, t.MinZ, t.CellSize, t.Width, t.Depth, t.Heights, layer)
	}
	return terrain.NewPlane(t.MinX, t.MinZ, t.MaxX, t.MaxZ, t.Base, t.GradX, t.GradZ, layer)
}

// replay applies the configured container moves, polling after each one,
// then the knot edits, which reach the spawner through the spline listener.
func (s *session) replay(ctx context.Context, sc config.Scene) error {
	for i, pos := range sc.Moves {
		if err := ctx.Err(); err != nil {
			return err
		}
		s.container.SetPosition(pos.Vector3())
		moved := s.spawner.Poll()
		slog.Info("container moved", "step", i, "position", pos.Vector3(), "repositioned", moved)
	}

	for i, edit := range sc.Edits {
		if err := ctx.Err(); err != nil {
			return err
		}
		if err := s.spline.SetKnot(edit.Index, edit.Position.Vector3()); err != nil {
			return fmt.Errorf("knot edit %d: %w", i, err)
		}
		slog.Info("knot edited", "step", i, "knot", edit.Index, "curve_length", s.spline.Length())
	}
	return nil
}

func (s *session) logPlacements() {
	for gi, g := range s.spawner.Groups() {
		for i, inst := range s.spawner.Instances(gi) {
			pos := inst.Position()
			slog.Debug("placement",
				"group", g.Name,
				"index", i,
				"prefab", inst.Prefab(),
				"x", pos.X,
				"y", pos.Y,
				"z", pos.Z,
				"scale", inst.Scale().X)
		}
	}
}
