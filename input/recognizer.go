// Package input turns terminal events into drag gestures and key actions.
package input

import (
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/float-bubble/drag"
	"github.com/lixenwraith/float-bubble/session"
	"github.com/lixenwraith/float-bubble/vmath"
)

const wheelMask = tcell.WheelUp | tcell.WheelDown | tcell.WheelLeft | tcell.WheelRight

// HitTester reports whether a point in container coordinates grabs the element
type HitTester interface {
	HitTest(p vmath.Vec2) bool
}

// Recognizer is a single-pointer pan recognizer over tcell mouse events
// Only the primary button drags, a press must land on the element to begin
type Recognizer struct {
	handler  session.InputHandler
	hit      HitTester
	cell     vmath.Size
	velocity *drag.VelocityTracker

	pressed bool // primary is down, whether or not it grabbed the element
	active  bool // primary grabbed the element
	start   vmath.Vec2
	last    vmath.Vec2
}

// NewRecognizer creates a recognizer, cell is the size of one terminal cell in points
func NewRecognizer(handler session.InputHandler, hit HitTester, cell vmath.Size) *Recognizer {
	return &Recognizer{
		handler:  handler,
		hit:      hit,
		cell:     cell,
		velocity: drag.NewVelocityTracker(),
	}
}

// Active reports whether a drag is in progress
func (r *Recognizer) Active() bool {
	return r.active
}

// CellToPoint maps a cell to the point at its centre
func (r *Recognizer) CellToPoint(x, y int) vmath.Vec2 {
	return vmath.Vec2{
		X: (float64(x) + 0.5) * r.cell.W,
		Y: (float64(y) + 0.5) * r.cell.H,
	}
}

// HandleMouse feeds one mouse event, returns true if it belonged to a drag
func (r *Recognizer) HandleMouse(ev *tcell.EventMouse) bool {
	x, y := ev.Position()
	return r.handle(x, y, ev.Buttons(), ev.When())
}

func (r *Recognizer) handle(x, y int, buttons tcell.ButtonMask, when time.Time) bool {
	if buttons&wheelMask != 0 && buttons&^wheelMask == 0 {
		return false
	}
	primary := buttons&tcell.Button1 != 0
	p := r.CellToPoint(x, y)

	switch {
	case primary && !r.pressed:
		r.pressed = true
		if !r.hit.HitTest(p) {
			return false
		}
		r.active = true
		r.start = p
		r.last = p
		r.velocity.Reset()
		r.velocity.Add(when, p)
		r.handler.DragStart()
		return true

	case primary && r.pressed:
		if !r.active {
			return false
		}
		r.velocity.Add(when, p)
		if p != r.last {
			r.last = p
			r.handler.DragMove(vmath.V2Sub(p, r.start))
		}
		return true

	case !primary && r.pressed:
		r.pressed = false
		if !r.active {
			return false
		}
		r.active = false
		if p != r.last {
			r.velocity.Add(when, p)
			r.handler.DragMove(vmath.V2Sub(p, r.start))
		}
		r.handler.DragEnd(r.velocity.Velocity(when))
		return true
	}

	return false
}
