package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"runtime"
	"strconv"
	"strings"
	"time"

	"gridkit/internal/sweep"

	"github.com/charmbracelet/log"
)

func main() {
	seeds := flag.Int("seeds", 16, "mazes to generate per parameter set")
	workers := flag.Int("workers", runtime.NumCPU(), "number of worker goroutines")
	sizes := flag.String("sizes", "21,41,81", "comma separated maze sizes")
	braids := flag.String("braids", "0,0.1,0.25,0.5", "comma separated braiding chances")
	top := flag.Int("top", 5, "results to print")
	flag.Parse()

	logger := log.NewWithOptions(os.Stderr, log.Options{ReportTimestamp: true})

	sizeList, err := parseList(*sizes, strconv.Atoi)
	if err != nil {
		logger.Fatal("bad -sizes", "err", err)
	}
	braidList, err := parseList(*braids, func(s string) (float64, error) { return strconv.ParseFloat(s, 64) })
	if err != nil {
		logger.Fatal("bad -braids", "err", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	sets := sweep.Grid(sizeList, braidList)
	logger.Info("sweeping", "sets", len(sets), "workers", *workers, "seeds", *seeds)

	start := time.Now()
	results, err := sweep.Run(ctx, sets, *seeds, *workers)
	if err != nil {
		logger.Fatal("sweep failed", "err", err)
	}
	ranked := sweep.Rank(results)

	fmt.Printf("\nTop %d hardest settings (elapsed %s):\n", min(*top, len(ranked)), time.Since(start).Round(time.Millisecond))
	for i, res := range ranked[:min(*top, len(ranked))] {
		fmt.Printf("%2d) efficiency=%.3f visited=%.1f route=%.1f maxRoute=%d solved=%d/%d %s\n",
			i+1, res.Efficiency(), res.Visited, res.Route, res.MaxRoute, res.Solved, res.Mazes, res.Params)
	}
}

func parseList[T any](s string, parse func(string) (T, error)) ([]T, error) {
	var out []T
	for _, field := range strings.Split(s, ",") {
		field = strings.TrimSpace(field)
		if field == "" {
			continue
		}
		v, err := parse(field)
		if err != nil {
			return nil, fmt.Errorf("%q: %w", field, err)
		}
		out = append(out, v)
	}
	return out, nil
}
