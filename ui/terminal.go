package ui

import (
	"fmt"
	"yeast-sim/game"
	"yeast-sim/game/entity"
	"yeast-sim/game/types"

	"github.com/gdamore/tcell/v2"
)

// Terminal draws a game as text cells. Input is read by a pump goroutine
// and drained by Quit on the loop goroutine.
type Terminal struct {
	screen tcell.Screen
	events chan tcell.Event
	done   chan struct{}
	clock  *FrameClock
	width  int
	height int
	quit   bool
}

func NewTerminal() (*Terminal, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, fmt.Errorf("open terminal: %w", err)
	}
	if err := screen.Init(); err != nil {
		return nil, fmt.Errorf("init terminal: %w", err)
	}
	screen.HideCursor()

	t := &Terminal{
		screen: screen,
		events: make(chan tcell.Event, 100),
		done:   make(chan struct{}),
		clock:  NewFrameClock(types.TargetFPS),
	}
	t.width, t.height = screen.Size()

	go pumpEvents(screen.PollEvent, t.events, t.done)
	return t, nil
}

// pumpEvents forwards polled events until poll returns nil or done is
// closed. A full events channel never blocks it past done.
func pumpEvents(poll func() tcell.Event, events chan<- tcell.Event, done <-chan struct{}) {
	for {
		ev := poll()
		if ev == nil {
			return
		}
		select {
		case events <- ev:
		case <-done:
			return
		}
	}
}

// Quit drains pending input without blocking. q, Esc and Ctrl-C quit.
func (t *Terminal) Quit() bool {
	for {
		select {
		case ev := <-t.events:
			t.handle(ev)
		default:
			return t.quit
		}
	}
}

func (t *Terminal) handle(ev tcell.Event) {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		if ev.Key() == tcell.KeyEscape || ev.Key() == tcell.KeyCtrlC ||
			(ev.Key() == tcell.KeyRune && ev.Rune() == 'q') {
			t.quit = true
		}
	case *tcell.EventResize:
		t.screen.Sync()
		t.width, t.height = t.screen.Size()
	}
}

func (t *Terminal) BeginFrame(g *game.Game) {
	t.screen.Clear()

	wallStyle := tcell.StyleDefault.Foreground(toTcell(types.Black)).Background(tcell.ColorWhite)
	for _, w := range g.Walls() {
		x0, y0 := t.cell(w.A.X, w.A.Y)
		x1, y1 := t.cell(w.B.X, w.B.Y)
		for x := min(x0, x1); x <= max(x0, x1); x++ {
			for y := min(y0, y1); y <= max(y0, y1); y++ {
				t.screen.SetContent(x, y, ' ', nil, wallStyle)
			}
		}
	}

	for _, p := range g.Particles() {
		pos := p.Position()
		x, y := t.cell(pos.X, pos.Y)
		t.screen.SetContent(x, y, glyph(p), nil, tcell.StyleDefault.Foreground(toTcell(p.Color)))
	}
}

func (t *Terminal) EndFrame(g *game.Game) {
	label := fmt.Sprintf("Glucose count: %d", g.Census().Glucose)
	for i, r := range label {
		t.screen.SetContent(2+i, 1, r, nil, tcell.StyleDefault)
	}
	t.screen.Show()
	t.clock.Wait()
}

func (t *Terminal) Close() error {
	close(t.done)
	t.clock.Stop()
	t.screen.Fini()
	return nil
}

// cell maps world coordinates onto the terminal grid.
func (t *Terminal) cell(x, y float64) (int, int) {
	cx := int(x / types.WorldSize * float64(t.width))
	cy := int(y / types.WorldSize * float64(t.height))
	return min(max(cx, 0), t.width-1), min(max(cy, 0), t.height-1)
}

func glyph(p *entity.Particle) rune {
	switch p.Species {
	case types.Yeast:
		return '@'
	case types.Glucose:
		return 'o'
	default:
		return '.'
	}
}

func toTcell(c types.Color) tcell.Color {
	return tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B))
}
