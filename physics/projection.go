package physics

import (
	"github.com/lixenwraith/float-bubble/parameter"
	"github.com/lixenwraith/float-bubble/vmath"
)

// Side identifies the horizontal edge a projection snapped to
type Side uint8

const (
	SideLeft Side = iota
	SideRight
	// SideCenter is used when bounds are narrower than the element
	SideCenter
)

func (s Side) String() string {
	switch s {
	case SideLeft:
		return "left"
	case SideRight:
		return "right"
	default:
		return "center"
	}
}

// Degenerate flags axes whose bounds could not contain the element
type Degenerate struct {
	Horizontal bool
	Vertical   bool
}

// Any reports whether either axis was degenerate
func (d Degenerate) Any() bool {
	return d.Horizontal || d.Vertical
}

// Projection is the full result of a release, kept for logging and display
type Projection struct {
	Velocity   vmath.Vec2 // clamped release velocity
	Projected  vmath.Vec2 // decay rest position before snap/clamp
	Target     vmath.Vec2 // final rest origin handed to the animator
	Side       Side
	Degenerate Degenerate
}

// Projector computes rest positions for released elements
type Projector struct {
	VelocityLimit    float64
	DecelerationRate float64
}

// NewProjector returns a projector with the standard scroll deceleration
func NewProjector() Projector {
	return Projector{
		VelocityLimit:    parameter.VelocityLimit,
		DecelerationRate: parameter.DecelerationRateNormal,
	}
}

// Project computes the rest origin for an element at current released with velocity
// Horizontal axis snaps to an edge, vertical axis is clamped inside bounds
func (p Projector) Project(current, velocity vmath.Vec2, bounds vmath.Rect, size vmath.Size) Projection {
	bounds = bounds.Canon()

	v := ClampVelocity(vmath.V2DropNaN(velocity), p.VelocityLimit)
	projected := DecayProjection(current, v, p.DecelerationRate)

	var res Projection
	res.Velocity = v
	res.Projected = projected

	if bounds.W < size.W {
		res.Target.X = bounds.MidX() - size.W/2
		res.Side = SideCenter
		res.Degenerate.Horizontal = true
	} else {
		res.Target.X, res.Side = SnapX(projected.X, bounds, size.W)
	}

	if bounds.H < size.H {
		res.Target.Y = bounds.MidY() - size.H/2
		res.Degenerate.Vertical = true
	} else {
		res.Target.Y = ClampY(projected.Y, bounds, size.H)
	}

	return res
}

// ClampVelocity limits each component to [-limit, limit]
func ClampVelocity(v vmath.Vec2, limit float64) vmath.Vec2 {
	return vmath.V2ClampComponents(v, limit)
}

// DecayProjection returns the rest position of exponential deceleration at rate per millisecond
// Total travel is v * r / (1 - r) with v in points/millisecond
func DecayProjection(current, velocity vmath.Vec2, rate float64) vmath.Vec2 {
	factor := rate / (1 - rate)
	return vmath.Vec2{
		X: current.X + (velocity.X/parameter.VelocityNormalization)*factor,
		Y: current.Y + (velocity.Y/parameter.VelocityNormalization)*factor,
	}
}

// SnapX picks the left or right edge, never a position in between
// Ties at the midpoint go left
func SnapX(projectedX float64, bounds vmath.Rect, width float64) (float64, Side) {
	if projectedX <= bounds.MidX() {
		return bounds.MinX(), SideLeft
	}
	return bounds.MaxX() - width, SideRight
}

// ClampY saturates projectedY so the element's far edge stays inside bounds
func ClampY(projectedY float64, bounds vmath.Rect, height float64) float64 {
	if projectedY < bounds.MinY() {
		return bounds.MinY()
	}
	if projectedY > bounds.MaxY()-height {
		return bounds.MaxY() - height
	}
	return projectedY
}
