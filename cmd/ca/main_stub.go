//go:build !ebiten

package main

import (
	"context"
	"flag"
	"os"
	"os/signal"

	"gridkit/internal/app"
	"gridkit/internal/core"
	_ "gridkit/internal/sims/briansbrain"
	_ "gridkit/internal/sims/elementary"
	_ "gridkit/internal/sims/flood"
	_ "gridkit/internal/sims/life"

	"github.com/charmbracelet/log"
)

// Without the ebiten tag the viewer runs headless: it steps the simulation
// and writes the final frame as a PNG.
func main() {
	logger := log.NewWithOptions(os.Stderr, log.Options{ReportTimestamp: true, Prefix: "ca"})

	cfg, err := app.LoadConfig()
	if err != nil {
		logger.Fatal("loading config", "err", err)
	}
	cfg.Bind(flag.CommandLine)
	steps := flag.Int("steps", 100, "steps to run before writing the frame")
	out := flag.String("out", "frame.png", "PNG output path")
	flag.Parse()
	if err := cfg.Validate(); err != nil {
		logger.Fatal("invalid config", "err", err)
	}

	factory, ok := core.Sims()[cfg.Sim]
	if !ok {
		logger.Fatal("unknown sim", "sim", cfg.Sim, "available", core.Names())
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	run := app.NewRunner(factory(cfg.SimParams()), cfg.Seed)
	size := run.Sim().Size()
	logger.Info("running headless", "sim", run.Sim().Name(), "w", size.W, "h", size.H, "steps", *steps)
	if err := run.Run(ctx, *steps); err != nil {
		logger.Warn("interrupted", "step", run.Steps(), "err", err)
	}

	f, err := os.Create(*out)
	if err != nil {
		logger.Fatal("creating output", "err", err)
	}
	if err := run.WriteFrame(f, cfg.Scale); err != nil {
		f.Close()
		logger.Fatal("writing frame", "err", err)
	}
	if err := f.Close(); err != nil {
		logger.Fatal("closing output", "err", err)
	}
	logger.Info("wrote frame", "path", *out, "step", run.Steps())
}
