package vmath

import (
	"math"
)

// Vec2 is a float64 2D vector in container-local points
// Used for positions, translations and velocities alike
type Vec2 struct {
	X, Y float64
}

func V2Add(a, b Vec2) Vec2 {
	return Vec2{a.X + b.X, a.Y + b.Y}
}

func V2Sub(a, b Vec2) Vec2 {
	return Vec2{a.X - b.X, a.Y - b.Y}
}

func V2Scale(v Vec2, s float64) Vec2 {
	return Vec2{v.X * s, v.Y * s}
}

func V2MagSq(v Vec2) float64 {
	return v.X*v.X + v.Y*v.Y
}

func V2Mag(v Vec2) float64 {
	return math.Sqrt(V2MagSq(v))
}

// V2Lerp interpolates from a to b, t is not clamped so spring overshoot past 1 is preserved
func V2Lerp(a, b Vec2, t float64) Vec2 {
	return Vec2{a.X + (b.X-a.X)*t, a.Y + (b.Y-a.Y)*t}
}

// V2ClampComponents clamps each component independently to [-limit, limit]
// Direction is not preserved, matching per-axis velocity limiting
func V2ClampComponents(v Vec2, limit float64) Vec2 {
	return Vec2{Clamp(v.X, -limit, limit), Clamp(v.Y, -limit, limit)}
}

// V2DropNaN replaces NaN components with zero, infinities are left for Clamp to saturate
func V2DropNaN(v Vec2) Vec2 {
	if math.IsNaN(v.X) {
		v.X = 0
	}
	if math.IsNaN(v.Y) {
		v.Y = 0
	}
	return v
}

// Clamp restricts val to [lo, hi], lo wins if the range is inverted
func Clamp(val, lo, hi float64) float64 {
	if val > hi {
		val = hi
	}
	if val < lo {
		val = lo
	}
	return val
}
