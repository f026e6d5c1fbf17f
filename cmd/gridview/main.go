package main

import (
	"context"
	"flag"
	"os"
	"os/signal"
	"strings"

	"gridkit/internal/scene"
	"gridkit/internal/tui"
	"gridkit/pkg/geom"

	"github.com/charmbracelet/log"
	"github.com/gdamore/tcell/v2"
)

func main() {
	tps := flag.Int("tps", 0, "cells revealed per second (overrides the scene)")
	flag.Usage = func() {
		log.Print("usage: gridview [-tps n] <scene.yaml | map.txt>")
		flag.PrintDefaults()
	}
	flag.Parse()
	if flag.NArg() != 1 {
		flag.Usage()
		os.Exit(2)
	}

	logger := log.NewWithOptions(os.Stderr, log.Options{Prefix: "gridview"})

	sc, err := loadScene(flag.Arg(0))
	if err != nil {
		logger.Fatal("loading scene", "path", flag.Arg(0), "err", err)
	}
	if *tps > 0 {
		sc.TPS = *tps
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	m, err := sc.Build(ctx)
	if err != nil {
		logger.Fatal("building map", "err", err)
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		logger.Fatal("opening terminal", "err", err)
	}
	if err := screen.Init(); err != nil {
		logger.Fatal("initializing terminal", "err", err)
	}

	v := tui.New(screen, m, sc.Search(m), func() ([]geom.Position[int], bool) { return sc.Route(m) }, sc.TPS)
	err = v.Run(ctx)
	v.Close()
	screen.Fini()
	if err != nil && ctx.Err() == nil {
		logger.Fatal("viewer", "err", err)
	}
}

// loadScene reads a YAML scene, or wraps a plain map file in a default one.
func loadScene(path string) (*scene.Scene, error) {
	if strings.HasSuffix(path, ".yaml") || strings.HasSuffix(path, ".yml") {
		return scene.Load(path)
	}
	sc := &scene.Scene{Name: path, File: path}
	if err := sc.Validate(); err != nil {
		return nil, err
	}
	return sc, nil
}
