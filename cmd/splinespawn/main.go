package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/udisondev/splinespawn/internal/config"
)

const SpawnerConfigPath = "config/spawner.yaml"

func main() {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		sig := <-sigCh
		slog.Info("shutting down", "signal", sig)
		cancel()
	}()

	if err := run(ctx); err != nil {
		slog.Error("fatal", "err", err)
		os.Exit(1)
	}
}

func run(ctx context.Context) error {
	cfgPath := SpawnerConfigPath
	if p := os.Getenv("SPLINESPAWN_CONFIG"); p != "" {
		cfgPath = p
	}
	cfg, err := config.LoadSpawner(cfgPath)
	if err != nil {
		return fmt.Errorf("loading spawner config: %w", err)
	}

	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: parseLogLevel(cfg.LogLevel),
	})))

	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid spawner config %s: %w", cfgPath, err)
	}

	slog.Info("splinespawn starting",
		"config", cfgPath,
		"log_level", cfg.LogLevel,
		"groups", len(cfg.Groups),
		"knots", len(cfg.Scene.Curve.Knots))

	sess, err := newSession(cfg)
	if err != nil {
		return fmt.Errorf("building scene: %w", err)
	}

	report := sess.spawner.Spawn()
	for _, g := range report.Groups {
		slog.Info("group placed",
			"group", g.Group,
			"attempted", g.Attempted,
			"spawned", g.Spawned,
			"slope_rejected", g.SlopeRejected,
			"spacing_rejected", g.SpacingRejected,
			"failed", g.Failed,
			"yield", fmt.Sprintf("%.2f", g.Yield()))
	}

	if err := sess.replay(ctx, cfg.Scene); err != nil {
		return fmt.Errorf("replaying scene edits: %w", err)
	}

	sess.logPlacements()
	slog.Info("splinespawn finished", "instances", sess.spawner.InstanceCount())
	return nil
}

func parseLogLevel(level string) slog.Level {
	switch level {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
