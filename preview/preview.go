// Package preview shows frames in a terminal, two pixel rows per cell.
package preview

import (
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/lucasb-eyer/go-colorful"
	"github.com/matt-g-everett/ledclock/stream"
)

const upperHalf = '▀'

// Preview renders Frames onto a tcell screen.
type Preview struct {
	screen tcell.Screen
}

// New opens the terminal.
func New() (*Preview, error) {
	s, err := tcell.NewScreen()
	if err != nil {
		return nil, err
	}
	if err := s.Init(); err != nil {
		return nil, err
	}
	return NewWithScreen(s), nil
}

// NewWithScreen wraps an initialised screen.
func NewWithScreen(s tcell.Screen) *Preview {
	p := new(Preview)
	p.screen = s
	s.HideCursor()
	s.Clear()
	return p
}

// Close restores the terminal.
func (p *Preview) Close() {
	p.screen.Fini()
}

func toTcell(c colorful.Color) tcell.Color {
	r, g, b := c.Clamped().RGB255()
	return tcell.NewRGBColor(int32(r), int32(g), int32(b))
}

func cellStyle(top, bottom colorful.Color) tcell.Style {
	return tcell.StyleDefault.Foreground(toTcell(top)).Background(toTcell(bottom))
}

// Draw paints f in the top-left corner of the screen and shows it.
func (p *Preview) Draw(f *stream.Frame) {
	cols, rows := p.screen.Size()
	for y := 0; y < rows && 2*y < f.Height(); y++ {
		for x := 0; x < cols && x < f.Width(); x++ {
			style := cellStyle(f.At(x, 2*y), f.At(x, 2*y+1))
			p.screen.SetContent(x, y, upperHalf, nil, style)
		}
	}
	p.screen.Show()
}

// Run draws frames from anim at frameRate until stop is closed or the user
// presses Escape, Ctrl-C or q.
func (p *Preview) Run(anim stream.Animation, frameRate float64, stop <-chan struct{}) {
	quit := make(chan struct{})
	go func() {
		defer close(quit)
		for {
			switch ev := p.screen.PollEvent().(type) {
			case nil:
				return
			case *tcell.EventResize:
				p.screen.Sync()
			case *tcell.EventKey:
				if ev.Key() == tcell.KeyEscape || ev.Key() == tcell.KeyCtrlC || ev.Rune() == 'q' {
					return
				}
			}
		}
	}()

	ticker := time.NewTicker(time.Duration(float64(time.Second) / frameRate))
	defer ticker.Stop()

	start := time.Now()
	for {
		select {
		case <-stop:
			return
		case <-quit:
			return
		case <-ticker.C:
			p.Draw(anim.CalculateFrame(time.Since(start).Milliseconds()))
		}
	}
}
