// Package tui animates a breadth-first search over a character map in a
// terminal.
package tui

import (
	"context"
	"fmt"
	"iter"
	"time"

	"gridkit/internal/core"
	"gridkit/pkg/geom"
	"gridkit/pkg/grid"
	"gridkit/pkg/maps"

	"github.com/gdamore/tcell/v2"
)

var (
	styleWall    = tcell.StyleDefault.Foreground(tcell.ColorGray)
	styleOpen    = tcell.StyleDefault.Foreground(tcell.ColorDarkGray)
	styleVisited = tcell.StyleDefault.Foreground(tcell.ColorBlue)
	styleRoute   = tcell.StyleDefault.Foreground(tcell.ColorYellow).Bold(true)
	styleStart   = tcell.StyleDefault.Foreground(tcell.ColorGreen).Reverse(true)
	styleEnd     = tcell.StyleDefault.Foreground(tcell.ColorRed).Reverse(true)
	styleStatus  = tcell.StyleDefault.Reverse(true)
)

// RouteFunc computes the shortest route shown once the search finishes.
type RouteFunc func() ([]geom.Position[int], bool)

// Viewer reveals one searched cell per tick.
type Viewer struct {
	screen tcell.Screen
	m      *maps.CharacterMap
	route  RouteFunc
	clock  *core.FixedStep

	next    func() (grid.Entry[rune], bool)
	stop    func()
	visited map[geom.Position[int]]bool
	onRoute map[geom.Position[int]]bool
	steps   int
	done    bool
	found   bool
	paused  bool
}

// New prepares a viewer for search over m on an initialized screen.
func New(screen tcell.Screen, m *maps.CharacterMap, search iter.Seq[grid.Entry[rune]], route RouteFunc, tps int) *Viewer {
	next, stop := iter.Pull(search)
	return &Viewer{
		screen:  screen,
		m:       m,
		route:   route,
		clock:   core.NewFixedStep(tps),
		next:    next,
		stop:    stop,
		visited: map[geom.Position[int]]bool{},
		onRoute: map[geom.Position[int]]bool{},
	}
}

// Close releases the search iterator.
func (v *Viewer) Close() { v.stop() }

// Done reports whether the search has finished.
func (v *Viewer) Done() bool { return v.done }

// Step reveals the next searched cell. Once the search is exhausted it
// marks the route and returns false.
func (v *Viewer) Step() bool {
	if v.done {
		return false
	}
	e, ok := v.next()
	if ok {
		v.visited[e.Position] = true
		v.steps++
		return true
	}
	v.done = true
	if path, found := v.route(); found {
		v.found = true
		for _, p := range path {
			v.onRoute[p] = true
		}
	}
	return false
}

// Draw paints the map and a status line below it.
func (v *Viewer) Draw() {
	v.screen.Clear()
	g := v.m.Grid()
	for e := range g.All() {
		v.screen.SetContent(e.Position.X, e.Position.Y, e.Value, nil, v.style(e))
	}
	v.status(g.Height() + 1)
	v.screen.Show()
}

func (v *Viewer) style(e grid.Entry[rune]) tcell.Style {
	switch {
	case e.Position == v.m.Start():
		return styleStart
	case e.Position == v.m.End():
		return styleEnd
	case v.onRoute[e.Position]:
		return styleRoute
	case v.visited[e.Position]:
		return styleVisited
	case v.m.IsWall(e.Position):
		return styleWall
	}
	return styleOpen
}

func (v *Viewer) status(y int) {
	state := "searching"
	switch {
	case v.done && v.found:
		state = "route found"
	case v.done:
		state = "no route"
	case v.paused:
		state = "paused"
	}
	line := fmt.Sprintf(" visited %d  %s  [space] pause  [n] step  [q] quit ", v.steps, state)
	for x, r := range []rune(line) {
		v.screen.SetContent(x, y, r, nil, styleStatus)
	}
}

// HandleEvent applies a key or resize event. It returns false to quit.
func (v *Viewer) HandleEvent(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		switch {
		case ev.Key() == tcell.KeyEscape || ev.Key() == tcell.KeyCtrlC:
			return false
		case ev.Key() == tcell.KeyRune && ev.Rune() == 'q':
			return false
		case ev.Key() == tcell.KeyRune && ev.Rune() == ' ':
			v.paused = !v.paused
		case ev.Key() == tcell.KeyRune && ev.Rune() == 'n':
			v.Step()
		}
	case *tcell.EventResize:
		v.screen.Sync()
	}
	v.Draw()
	return true
}

// Run drives the viewer until the user quits or ctx is cancelled.
func (v *Viewer) Run(ctx context.Context) error {
	events := make(chan tcell.Event, 16)
	quit := make(chan struct{})
	defer close(quit)
	go func() {
		defer close(events)
		for {
			// PollEvent returns nil once the screen is finalized.
			ev := v.screen.PollEvent()
			if ev == nil {
				return
			}
			select {
			case events <- ev:
			case <-quit:
				return
			}
		}
	}()

	// Poll at twice the tick rate and let FixedStep decide.
	ticker := time.NewTicker(max(v.clock.Step()/2, time.Millisecond))
	defer ticker.Stop()

	v.Draw()
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case ev, ok := <-events:
			if !ok || !v.HandleEvent(ev) {
				return nil
			}
		case <-ticker.C:
			if v.paused || v.done || !v.clock.ShouldStep() {
				continue
			}
			v.Step()
			v.Draw()
		}
	}
}
