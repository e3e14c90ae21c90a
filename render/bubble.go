// Package render draws the bubble scene onto a tcell screen.
package render

import (
	"fmt"
	"math"

	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"

	"github.com/lixenwraith/float-bubble/parameter"
	"github.com/lixenwraith/float-bubble/physics"
	"github.com/lixenwraith/float-bubble/session"
	"github.com/lixenwraith/float-bubble/vmath"
)

const titleText = " float-bubble  drag the bubble · h/j/k/l fling · r relayout · q quit "

// Frame is a snapshot of everything drawn in one pass
type Frame struct {
	Bubble     vmath.Rect // element frame, points
	Bounds     vmath.Rect // padded travel bounds, points
	Phase      session.Phase
	Label      string
	Release    physics.Projection
	HasRelease bool
	Sound      bool
}

// CellRect is a rectangle in whole cells, X1/Y1 exclusive
type CellRect struct {
	X0, Y0, X1, Y1 int
}

func (c CellRect) Width() int  { return c.X1 - c.X0 }
func (c CellRect) Height() int { return c.Y1 - c.Y0 }

// Renderer maps point geometry onto terminal cells
type Renderer struct {
	cell  vmath.Size
	theme Theme
}

func NewRenderer(cell vmath.Size, theme Theme) *Renderer {
	return &Renderer{cell: cell, theme: theme}
}

// ToCells rounds a point rect to the nearest cell grid, never narrower than one cell
func (r *Renderer) ToCells(rect vmath.Rect) CellRect {
	x0 := int(math.Round(rect.X / r.cell.W))
	y0 := int(math.Round(rect.Y / r.cell.H))
	w := max(1, int(math.Round(rect.W/r.cell.W)))
	h := max(1, int(math.Round(rect.H/r.cell.H)))
	return CellRect{X0: x0, Y0: y0, X1: x0 + w, Y1: y0 + h}
}

// Draw renders f and shows the screen
func (r *Renderer) Draw(s tcell.Screen, f Frame) {
	w, h := s.Size()
	s.Fill(' ', r.theme.Background)

	r.drawBounds(s, r.ToCells(f.Bounds.Canon()))
	r.drawBubble(s, r.ToCells(f.Bubble), f)
	r.drawTitle(s, w)
	r.drawStatus(s, w, h, f)

	s.Show()
}

func (r *Renderer) drawTitle(s tcell.Screen, w int) {
	for x := 0; x < w; x++ {
		s.SetContent(x, 0, ' ', nil, r.theme.Title)
	}
	start := max(0, (w-runewidth.StringWidth(titleText))/2)
	drawText(s, start, 0, w, titleText, r.theme.Title)
}

func (r *Renderer) drawStatus(s tcell.Screen, w, h int, f Frame) {
	if h < 2 {
		return
	}
	pos := f.Bubble.Origin()
	line := fmt.Sprintf(" %-8s pos (%6.1f, %6.1f)", f.Phase, pos.X, pos.Y)
	if f.HasRelease {
		rel := f.Release
		line += fmt.Sprintf("  v (%4.0f, %4.0f)  target (%6.1f, %6.1f) %s",
			rel.Velocity.X, rel.Velocity.Y, rel.Target.X, rel.Target.Y, rel.Side)
	}
	if f.Sound {
		line += "  ♪"
	}
	drawText(s, 0, h-1, w, line, r.theme.Status)
}

func (r *Renderer) drawBounds(s tcell.Screen, c CellRect) {
	if c.Width() < 2 || c.Height() < 2 {
		return
	}
	st := r.theme.Bounds
	for x := c.X0 + 1; x < c.X1-1; x++ {
		s.SetContent(x, c.Y0, '┄', nil, st)
		s.SetContent(x, c.Y1-1, '┄', nil, st)
	}
	for y := c.Y0 + 1; y < c.Y1-1; y++ {
		s.SetContent(c.X0, y, '┆', nil, st)
		s.SetContent(c.X1-1, y, '┆', nil, st)
	}
	s.SetContent(c.X0, c.Y0, '┌', nil, st)
	s.SetContent(c.X1-1, c.Y0, '┐', nil, st)
	s.SetContent(c.X0, c.Y1-1, '└', nil, st)
	s.SetContent(c.X1-1, c.Y1-1, '┘', nil, st)
}

func (r *Renderer) bubbleStyle(p session.Phase) tcell.Style {
	switch p {
	case session.PhaseDragging:
		return r.theme.BubbleDragging
	case session.PhaseSettling:
		return r.theme.BubbleSettling
	default:
		return r.theme.BubbleIdle
	}
}

func (r *Renderer) drawBubble(s tcell.Screen, c CellRect, f Frame) {
	// Shadow first, the bubble overdraws all but the offset strip
	for y := c.Y0 + parameter.ShadowOffsetY; y < c.Y1+parameter.ShadowOffsetY; y++ {
		for x := c.X0 + parameter.ShadowOffsetX; x < c.X1+parameter.ShadowOffsetX; x++ {
			s.SetContent(x, y, '░', nil, r.theme.Shadow)
		}
	}

	st := r.bubbleStyle(f.Phase)
	for y := c.Y0; y < c.Y1; y++ {
		for x := c.X0; x < c.X1; x++ {
			s.SetContent(x, y, ' ', nil, st)
		}
	}

	if c.Width() >= 2 && c.Height() >= 2 {
		for x := c.X0 + 1; x < c.X1-1; x++ {
			s.SetContent(x, c.Y0, '─', nil, st)
			s.SetContent(x, c.Y1-1, '─', nil, st)
		}
		for y := c.Y0 + 1; y < c.Y1-1; y++ {
			s.SetContent(c.X0, y, '│', nil, st)
			s.SetContent(c.X1-1, y, '│', nil, st)
		}
		s.SetContent(c.X0, c.Y0, '╭', nil, st)
		s.SetContent(c.X1-1, c.Y0, '╮', nil, st)
		s.SetContent(c.X0, c.Y1-1, '╰', nil, st)
		s.SetContent(c.X1-1, c.Y1-1, '╯', nil, st)
	}

	if f.Label == "" {
		return
	}
	lw := runewidth.StringWidth(f.Label)
	x := c.X0 + (c.Width()-lw)/2
	y := c.Y0 + (c.Height()-1)/2
	drawText(s, x, y, c.X1, f.Label, st)
}

// drawText writes str from x until limit, wide runes take two cells
func drawText(s tcell.Screen, x, y, limit int, str string, st tcell.Style) {
	for _, ch := range str {
		rw := runewidth.RuneWidth(ch)
		if rw == 0 {
			continue
		}
		if x+rw > limit {
			return
		}
		s.SetContent(x, y, ch, nil, st)
		x += rw
	}
}
