//go:build ebiten

package main

import (
	"errors"
	"flag"
	"os"

	"gridkit/internal/app"
	"gridkit/internal/core"
	_ "gridkit/internal/sims/briansbrain"
	_ "gridkit/internal/sims/elementary"
	_ "gridkit/internal/sims/flood"
	_ "gridkit/internal/sims/life"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
)

func main() {
	logger := log.NewWithOptions(os.Stderr, log.Options{ReportTimestamp: true, Prefix: "ca"})

	cfg, err := app.LoadConfig()
	if err != nil {
		logger.Fatal("loading config", "err", err)
	}
	cfg.Bind(flag.CommandLine)
	flag.Parse()
	if err := cfg.Validate(); err != nil {
		logger.Fatal("invalid config", "err", err)
	}

	factory, ok := core.Sims()[cfg.Sim]
	if !ok {
		logger.Fatal("unknown sim", "sim", cfg.Sim, "available", core.Names())
	}

	sim := factory(cfg.SimParams())
	game := app.New(sim, cfg.Scale, cfg.Seed)
	size := sim.Size()
	logger.Info("starting", "sim", sim.Name(), "w", size.W, "h", size.H, "tps", cfg.TPS)

	ebiten.SetWindowTitle("gridkit: " + sim.Name())
	ebiten.SetTPS(cfg.TPS)
	ebiten.SetWindowSize(size.W*cfg.Scale, size.H*cfg.Scale)

	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		logger.Fatal("game exited", "err", err)
	}
}
