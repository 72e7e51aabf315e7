package main

import (
	"context"
	"log/slog"
	"testing"

	"cogentcore.org/core/math32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/udisondev/splinespawn/internal/config"
)

func TestParseLogLevel(t *testing.T) {
	tests := []struct {
		in   string
		want slog.Level
	}{
		{"debug", slog.LevelDebug},
		{"info", slog.LevelInfo},
		{"warn", slog.LevelWarn},
		{"error", slog.LevelError},
		{"", slog.LevelInfo},
		{"verbose", slog.LevelInfo},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, parseLogLevel(tt.in))
		})
	}
}

func TestSession_DefaultScene(t *testing.T) {
	cfg := config.DefaultSpawner()
	cfg.Seed = 5

	sess, err := newSession(cfg)
	require.NoError(t, err)
	assert.Equal(t, 1, sess.terrain.SurfaceCount())
	for _, g := range cfg.Groups {
		for _, p := range g.Prefabs {
			assert.True(t, sess.graph.HasPrefab(p), p)
		}
	}

	report := sess.spawner.Spawn()
	require.Len(t, report.Groups, len(cfg.Groups))
	assert.Positive(t, report.Spawned())
	assert.Equal(t, report.Spawned(), sess.spawner.InstanceCount())
}

func TestSession_ReplayMovesAndEdits(t *testing.T) {
	cfg := config.DefaultSpawner()
	cfg.Seed = 5
	cfg.Scene.Moves = []config.Vec3{{5, 0, 0}, {5, 0, 0}}
	cfg.Scene.Edits = []config.KnotEdit{{Index: 3, Position: config.Vec3{60, 0, 40}}}

	sess, err := newSession(cfg)
	require.NoError(t, err)
	sess.spawner.Spawn()
	count := sess.spawner.InstanceCount()
	before := sess.spline.Length()

	require.NoError(t, sess.replay(context.Background(), cfg.Scene))
	assert.Equal(t, math32.Vec3(5, 0, 0), sess.container.Position())
	assert.Equal(t, count, sess.spawner.InstanceCount(), "reposition keeps counts")
	assert.Greater(t, sess.spline.Length(), before)
}

func TestSession_ReplayErrors(t *testing.T) {
	cfg := config.DefaultSpawner()
	cfg.Scene.Edits = []config.KnotEdit{{Index: 99, Position: config.Vec3{0, 0, 0}}}

	sess, err := newSession(cfg)
	require.NoError(t, err)
	assert.Error(t, sess.replay(context.Background(), cfg.Scene))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	cfg.Scene.Moves = []config.Vec3{{1, 0, 0}}
	assert.ErrorIs(t, sess.replay(ctx, cfg.Scene), context.Canceled)
}

func TestBuildTerrain(t *testing.T) {
	t.Run("plane", func(t *testing.T) {
		hm, err := buildTerrain(config.TerrainConfig{MinX: -10, MinZ: -10, MaxX: 10, MaxZ: 10, Base: 2})
		require.NoError(t, err)
		p, _, ok := hm.Sample(0, 0)
		require.True(t, ok)
		assert.InDelta(t, 2.0, p.Y, 1e-5)
	})

	t.Run("heights", func(t *testing.T) {
		hm, err := buildTerrain(config.TerrainConfig{
			CellSize: 1,
			Width:    2,
			Depth:    2,
			Heights:  []float32{1, 1, 1, 1},
			Layer:    4,
		})
		require.NoError(t, err)
		assert.EqualValues(t, 4, hm.Layer())
	})

	t.Run("bad heights", func(t *testing.T) {
		_, err := buildTerrain(config.TerrainConfig{CellSize: 1, Width: 3, Depth: 3, Heights: []float32{1}})
		assert.Error(t, err)
	})
}

func TestContainerTransform(t *testing.T) {
	tr := containerTransform(config.CurveConfig{Position: config.Vec3{1, 2, 3}, RotationY: 90})
	assert.Equal(t, math32.Vec3(1, 2, 3), tr.Position)
	assert.Equal(t, math32.Vec3(1, 1, 1), tr.Scale)

	p := tr.TransformPoint(math32.Vec3(0, 0, 1))
	assert.InDelta(t, 2.0, p.X, 1e-5)
	assert.InDelta(t, 3.0, p.Z, 1e-5)
}
