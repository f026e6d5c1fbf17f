// Package input turns puzzle text into character grids.
package input

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"gridkit/pkg/grid"
)

// ErrNoLines is returned when there is nothing to build a grid from. It
// wraps grid.ErrEmptyRows.
var ErrNoLines = fmt.Errorf("input: no non-empty lines: %w", grid.ErrEmptyRows)

// ReadLines reads up to limit non-empty lines from r. A non-positive limit
// reads to the end. The context is checked between lines.
func ReadLines(ctx context.Context, r io.Reader, limit int) ([]string, error) {
	var lines []string
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), 1<<20)
	for limit <= 0 || len(lines) < limit {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		if !sc.Scan() {
			break
		}
		if line := sc.Text(); line != "" {
			lines = append(lines, line)
		}
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("input: read lines: %w", err)
	}
	return lines, nil
}

// CharacterGrid builds a grid whose width is the length of the first line
// and whose cells are the characters of all lines in order.
func CharacterGrid(lines []string) (*grid.Grid[rune], error) {
	if len(lines) == 0 {
		return nil, ErrNoLines
	}
	return grid.New([]rune(strings.Join(lines, "")), len([]rune(lines[0])))
}

// ReadCharacterGrid reads up to limit non-empty lines from r into a grid.
func ReadCharacterGrid(ctx context.Context, r io.Reader, limit int) (*grid.Grid[rune], error) {
	lines, err := ReadLines(ctx, r, limit)
	if err != nil {
		return nil, err
	}
	return CharacterGrid(lines)
}

// ReadGridFile reads a character grid from a file, skipping blank and
// whitespace-only lines.
func ReadGridFile(ctx context.Context, path string) (*grid.Grid[rune], error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("input: %w", err)
	}
	defer f.Close()

	lines, err := ReadLines(ctx, f, 0)
	if err != nil {
		return nil, err
	}
	kept := lines[:0]
	for _, l := range lines {
		if strings.TrimSpace(l) != "" {
			kept = append(kept, l)
		}
	}
	g, err := CharacterGrid(kept)
	if err != nil {
		return nil, fmt.Errorf("input: %s: %w", path, err)
	}
	return g, nil
}
