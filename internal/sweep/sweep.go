// Package sweep generates and solves batches of mazes across a parameter
// grid, reporting how hard each setting is to search.
package sweep

import (
	"context"
	"fmt"
	"slices"

	"gridkit/internal/maze"

	"golang.org/x/sync/errgroup"
)

// ParamSet is one point of the sweep grid.
type ParamSet struct {
	Size     int
	Braiding float64
}

// String formats the set for logs and error messages.
func (p ParamSet) String() string {
	return fmt.Sprintf("size=%d braid=%.2f", p.Size, p.Braiding)
}

// Result aggregates the solves of one ParamSet over every seed.
type Result struct {
	Params   ParamSet
	Mazes    int
	Solved   int
	Visited  float64 // mean cells visited before reaching the end
	Route    float64 // mean shortest route length
	MaxRoute int
}

// Efficiency is the mean share of visited cells that lie on the route.
func (r Result) Efficiency() float64 {
	if r.Visited == 0 {
		return 0
	}
	return r.Route / r.Visited
}

// Grid returns the cross product of sizes and braiding values.
func Grid(sizes []int, braids []float64) []ParamSet {
	sets := make([]ParamSet, 0, len(sizes)*len(braids))
	for _, size := range sizes {
		for _, b := range braids {
			sets = append(sets, ParamSet{Size: size, Braiding: b})
		}
	}
	return sets
}

// Run evaluates every set with seeds 1..seeds on up to workers goroutines.
// Results come back in the order of sets.
func Run(ctx context.Context, sets []ParamSet, seeds, workers int) ([]Result, error) {
	results := make([]Result, len(sets))
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(max(workers, 1))
	for i, params := range sets {
		g.Go(func() error {
			res, err := runScenario(ctx, params, seeds)
			if err != nil {
				return fmt.Errorf("%s: %w", params, err)
			}
			results[i] = res
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}

func runScenario(ctx context.Context, params ParamSet, seeds int) (Result, error) {
	res := Result{Params: params}
	var visited, route int
	for seed := 1; seed <= seeds; seed++ {
		if err := ctx.Err(); err != nil {
			return Result{}, err
		}
		m, err := maze.Generate(maze.Config{
			Width:    params.Size,
			Height:   params.Size,
			Braiding: params.Braiding,
			Seed:     int64(seed),
		})
		if err != nil {
			return Result{}, err
		}
		res.Mazes++

		cells, ok := m.Solve()
		if !ok {
			continue
		}
		path, _ := m.Route()
		res.Solved++
		visited += len(cells)
		route += len(path)
		res.MaxRoute = max(res.MaxRoute, len(path))
	}
	if res.Solved > 0 {
		res.Visited = float64(visited) / float64(res.Solved)
		res.Route = float64(route) / float64(res.Solved)
	}
	return res, nil
}

// Rank sorts results by ascending efficiency: the mazes that make a
// breadth-first search wander the most come first.
func Rank(results []Result) []Result {
	out := slices.Clone(results)
	slices.SortStableFunc(out, func(a, b Result) int {
		switch {
		case a.Efficiency() < b.Efficiency():
			return -1
		case a.Efficiency() > b.Efficiency():
			return 1
		}
		return 0
	})
	return out
}
