package app

import (
	"github.com/lixenwraith/float-bubble/input"
	"github.com/lixenwraith/float-bubble/session"
	"github.com/lixenwraith/float-bubble/vmath"
)

// Bubble is the floating element model, all geometry in points
// It is the controller's geometry provider and render sink, and the recognizer's hit target
type Bubble struct {
	frame  vmath.Rect
	safe   vmath.Rect
	insets vmath.Insets
	cell   vmath.Size
	dirty  bool
}

var (
	_ session.Geometry   = (*Bubble)(nil)
	_ session.RenderSink = (*Bubble)(nil)
	_ input.HitTester    = (*Bubble)(nil)
)

// NewBubble creates an element of size at the origin, insets shrink the screen to its safe area
func NewBubble(size vmath.Size, insets vmath.Insets, cell vmath.Size) *Bubble {
	return &Bubble{
		frame:  vmath.Rect{W: size.W, H: size.H},
		insets: insets,
		cell:   cell,
		dirty:  true,
	}
}

// Resize recomputes the safe area for a screen of cols x rows cells
func (b *Bubble) Resize(cols, rows int) {
	screen := vmath.Rect{W: float64(cols) * b.cell.W, H: float64(rows) * b.cell.H}
	b.safe = screen.Inset(b.insets)
	b.dirty = true
}

func (b *Bubble) ElementFrame() vmath.Rect { return b.frame }

func (b *Bubble) SafeArea() vmath.Rect { return b.safe }

func (b *Bubble) SetPosition(p vmath.Vec2) {
	if b.frame.Origin() == p {
		return
	}
	b.frame = b.frame.WithOrigin(p)
	b.dirty = true
}

func (b *Bubble) HitTest(p vmath.Vec2) bool {
	return b.frame.Contains(p)
}
