// Package drag converts pointer gestures into element positions and release velocities.
package drag

import (
	"github.com/lixenwraith/float-bubble/vmath"
)

// Tracker maps cumulative pointer translation onto the element origin recorded at drag start
// No clamping is applied, the element may leave its bounds while held
type Tracker struct {
	origin   vmath.Vec2
	position vmath.Vec2
	active   bool
}

// Start records the element origin at the beginning of a drag
// A Start during an active drag re-anchors to the new origin
func (t *Tracker) Start(current vmath.Vec2) {
	t.origin = current
	t.position = current
	t.active = true
}

// Move applies translation, which is the total pointer displacement since Start
func (t *Tracker) Move(translation vmath.Vec2) (vmath.Vec2, bool) {
	if !t.active {
		return vmath.Vec2{}, false
	}
	t.position = vmath.V2Add(t.origin, translation)
	return t.position, true
}

// End returns the final position and clears the origin
func (t *Tracker) End() (vmath.Vec2, bool) {
	if !t.active {
		return vmath.Vec2{}, false
	}
	pos := t.position
	t.origin = vmath.Vec2{}
	t.active = false
	return pos, true
}

func (t *Tracker) Active() bool {
	return t.active
}

// Origin returns the drag start origin, ok is false outside a drag
func (t *Tracker) Origin() (vmath.Vec2, bool) {
	return t.origin, t.active
}

// Position returns the last tracked position
func (t *Tracker) Position() vmath.Vec2 {
	return t.position
}
