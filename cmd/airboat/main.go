// cmd/airboat/main.go
package main

import (
	"context"
	"errors"
	"flag"
	"os"
	"os/signal"
	"syscall"

	"github.com/EngoEngine/engo"

	"github.com/opd-ai/go-airboat/pkg/assets"
	"github.com/opd-ai/go-airboat/pkg/config"
	"github.com/opd-ai/go-airboat/pkg/engine"
	"github.com/opd-ai/go-airboat/pkg/event"
	"github.com/opd-ai/go-airboat/pkg/logging"
	"github.com/opd-ai/go-airboat/pkg/render"
	engorender "github.com/opd-ai/go-airboat/pkg/render/engo"
	"github.com/opd-ai/go-airboat/pkg/telemetry"
)

func main() {
	configPath := flag.String("config", "", "Path to a YAML or JSON configuration file")
	createDefault := flag.Bool("default", false, "Write the default configuration to -config and exit")
	headless := flag.Bool("headless", false, "Run without a window (overrides config)")
	ticks := flag.Uint64("ticks", 0, "Stop a headless run after this many ticks (0 runs until interrupted)")
	flag.Parse()

	ctx := context.Background()
	logger := logging.NewLogger()

	if *createDefault {
		if *configPath == "" {
			logger.Error(ctx, "No configuration path given", nil, "flag", "-config")
			os.Exit(2)
		}
		if err := config.SaveConfig(config.DefaultConfig(), *configPath); err != nil {
			logger.Error(ctx, "Failed to create default configuration", err, "config_path", *configPath)
			os.Exit(1)
		}
		logger.Info(ctx, "Created default configuration file", "config_path", *configPath)
		return
	}

	cfg, err := config.LoadConfig(*configPath)
	if err != nil {
		logger.Error(ctx, "Failed to load configuration", err, "config_path", *configPath)
		os.Exit(1)
	}
	logger = logging.NewLoggerWithLevel(cfg.LogLevel)
	defer func() { _ = logger.Sync() }()

	if *headless {
		cfg.Window.Headless = true
	}
	if err := run(ctx, cfg, logger, *ticks); err != nil {
		logger.Error(ctx, "Airboat exited with an error", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, cfg *config.Config, logger *logging.Logger, ticks uint64) error {
	loader := assets.NewLoader(os.DirFS(cfg.Assets.Dir), logger)
	bundle, err := loader.Load(ctx, assets.Manifest{MapSVG: cfg.Assets.MapSVG, HeightMap: cfg.Assets.HeightMap})
	if err != nil {
		return logging.WrapError(err, "failed to load assets from %s", cfg.Assets.Dir)
	}

	recorder, err := telemetry.NewRecorder(nil)
	if err != nil {
		return logging.WrapError(err, "failed to create metrics")
	}

	session, err := engine.NewSession(cfg, bundle, engine.Options{
		Logger:   logger,
		EventBus: event.NewEventBus(),
		Recorder: recorder,
	})
	if err != nil {
		return err
	}

	if !cfg.Window.Headless {
		engo.Run(engo.RunOptions{
			Title:  cfg.Window.Title,
			Width:  cfg.Window.Width,
			Height: cfg.Window.Height,
			VSync:  true,
		}, engorender.NewGameScene(session, logger))
		return nil
	}

	ctx, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	renderer := render.NewNullRenderer(logger)
	err = runHeadless(ctx, session, renderer, cfg.Loop.TimeStep, ticks)
	if errors.Is(err, context.Canceled) {
		logger.Info(ctx, "Shutting down", "ticks", session.Frame().Tick)
		return nil
	}
	return err
}
