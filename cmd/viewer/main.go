package main

import (
	"errors"
	"flag"
	"fmt"
	"os"

	"go.uber.org/zap"

	"solar-system/internal/config"
	"solar-system/internal/debug"
	"solar-system/internal/fonts"
	"solar-system/internal/graphics"
	"solar-system/internal/logger"
	"solar-system/internal/planets"
	"solar-system/internal/render"
	"solar-system/internal/scene"
	"solar-system/internal/textures"
)

func main() {
	if err := run(os.Args[1:]); err != nil {
		fmt.Fprintln(os.Stderr, "viewer:", err)
		os.Exit(1)
	}
}

func run(args []string) error {
	fs := flag.NewFlagSet("viewer", flag.ContinueOnError)
	cfgPath := fs.String("config", config.DefaultPath, "path to the viewer config file")
	eager := fs.Bool("eager", false, "load every catalog texture at startup (overrides config)")
	logLevel := fs.String("log-level", "", "log level (overrides config)")
	focus := fs.String("focus", "", "planet the camera follows at startup (overrides config)")
	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil
		}
		return err
	}

	cfg, err := config.Load(*cfgPath)
	if err != nil {
		return err
	}
	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "eager":
			cfg.Textures.EagerLoadCatalog = *eager
		case "log-level":
			cfg.LogLevel = *logLevel
		case "focus":
			cfg.Focus = *focus
		}
	})
	var focusName planets.Name
	if cfg.Focus != "" {
		if focusName, err = planets.Parse(cfg.Focus); err != nil {
			return err
		}
	}

	log, err := logger.New(cfg.LogLevel)
	if err != nil {
		return err
	}
	defer func() { _ = log.Sync() }()

	fontPath, _ := fonts.Find(fonts.BaseDirs()...)
	font := render.NewFont(fontPath)

	loader := render.NewTextureLoader(cfg.Textures.Dir, log.Named("loader"))
	reg := textures.Initialize(loader,
		textures.WithEagerCatalog(cfg.Textures.EagerLoadCatalog),
		textures.WithLogger(log.Named("textures")))

	scn := scene.New(reg, loader, font, log.Named("scene"))
	scn.GridVisible = cfg.GridVisible
	scn.ShowLabels = cfg.ShowLabels
	scn.TimeScale = cfg.TimeScale
	if focusName != "" {
		if err := scn.Focus(focusName); err != nil {
			return err
		}
	}

	dbg := debug.New(font)
	dbg.ShowFPS = cfg.Debug.ShowFPS
	dbg.ShowMemAlloc = cfg.Debug.ShowMemAlloc
	ctl := &controls{scn: scn, dbg: dbg}

	log.Info("starting viewer",
		zap.String("config", *cfgPath),
		zap.Bool("eager_catalog", cfg.Textures.EagerLoadCatalog),
		zap.Int("planets", len(scn.Planets)),
		zap.Int("moons", len(scn.Moons)),
		zap.String("font", fontPath))

	draw := func() {
		scn.Draw()
		dbg.Draw()
	}
	graphics.Run(graphics.Options{
		Title:      "solar system",
		Width:      cfg.Window.Width,
		Height:     cfg.Window.Height,
		Fullscreen: cfg.Window.Fullscreen,
		TargetFPS:  cfg.Window.TargetFPS,
	}, ctl.update, draw, scn.Close)

	cfg.GridVisible = scn.GridVisible
	cfg.ShowLabels = scn.ShowLabels
	if ctl.paused == 0 {
		cfg.TimeScale = scn.TimeScale
	} else {
		cfg.TimeScale = ctl.paused
	}
	cfg.Focus = string(scn.Focused())
	cfg.Debug.ShowFPS = dbg.ShowFPS
	cfg.Debug.ShowMemAlloc = dbg.ShowMemAlloc
	if err := config.Save(*cfgPath, cfg); err != nil {
		log.Warn("saving preferences failed", zap.Error(err))
	}
	return nil
}
