// Package main is the entry point for the Hearth geometry viewer pipeline.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"go.uber.org/zap"

	"github.com/Faultbox/hearth/internal/config"
	"github.com/Faultbox/hearth/internal/engine/texture"
	"github.com/Faultbox/hearth/internal/logger"
	"github.com/Faultbox/hearth/internal/viewer"
	"github.com/Faultbox/hearth/internal/watch"
)

func main() {
	// Parse CLI flags first
	config.ParseFlags()

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Config error: %v\n", err)
		os.Exit(1)
	}

	// Initialize logger
	if err := logger.Init(cfg.Logging.Level, cfg.Logging.LogFile); err != nil {
		fmt.Fprintf(os.Stderr, "Logger error: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	logger.Info("=== Hearth ===")
	logger.Sugar.Debugf("Config: %+v", cfg)

	if out := config.WriteConfigPath(); out != "" {
		if err := cfg.SaveTo(out); err != nil {
			logger.Error("failed to write config", zap.String("path", out), zap.Error(err))
			os.Exit(1)
		}
		logger.Info("config written", zap.String("path", out))
		return
	}

	p := viewer.New()
	if err := p.Build(cfg); err != nil {
		// a broken scene file still leaves the generated geometry usable
		logger.Error("scene load failed", zap.Error(err))
	}
	summarize(p)

	if out := config.TextureOut(); out != "" {
		img, _ := p.Bread()
		if err := texture.SavePNG(out, img); err != nil {
			logger.Error("failed to write texture", zap.String("path", out), zap.Error(err))
			os.Exit(1)
		}
		logger.Info("texture written", zap.String("path", out))
	}

	if !config.WatchEnabled() {
		return
	}

	path := config.Path()
	if path == "" {
		logger.Error("--watch needs a config file")
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Info("watching config", zap.String("path", path))
	err = watch.Watch(ctx, path, watch.DefaultDebounce, func() {
		next, err := config.LoadFrom(path)
		if err != nil {
			logger.Warn("config reload failed", zap.Error(err))
			return
		}
		ch, err := p.Apply(next)
		if err != nil {
			logger.Warn("scene reload failed", zap.Error(err))
		}
		if ch.Any() {
			summarize(p)
		}
	})
	if err != nil {
		logger.Error("watch failed", zap.Error(err))
		os.Exit(1)
	}
	logger.Info("stopped")
}

// summarize logs what one frame of the current pipeline contains.
func summarize(p *viewer.Pipeline) {
	f := p.Frame()
	baguettes, loaves := p.Instances()
	logger.Info("frame ready",
		zap.Int("shapes", len(f.Shapes)),
		zap.Int("lights", f.Lights.Count),
		zap.Bool("shadow", f.HasShadow),
		zap.Int("baguettes", len(baguettes)),
		zap.Int("loaves", len(loaves)),
		zap.Float32s("camera", []float32{f.CameraPos.X, f.CameraPos.Y, f.CameraPos.Z}))
}
