package drag

import (
	"time"

	"github.com/lixenwraith/float-bubble/parameter"
	"github.com/lixenwraith/float-bubble/vmath"
)

type sample struct {
	at  time.Time
	pos vmath.Vec2
}

// VelocityTracker estimates pointer velocity from timestamped positions
// Fixed ring buffer, no allocation after construction
type VelocityTracker struct {
	samples [parameter.VelocitySampleCap]sample
	head    int // next write slot
	count   int

	Window     time.Duration
	StaleAfter time.Duration
}

// NewVelocityTracker returns a tracker with default window and staleness
func NewVelocityTracker() *VelocityTracker {
	return &VelocityTracker{
		Window:     parameter.VelocityWindow,
		StaleAfter: parameter.VelocityStaleAfter,
	}
}

// Reset drops all samples
func (v *VelocityTracker) Reset() {
	v.head = 0
	v.count = 0
}

// Add records the pointer at pos at time at
// Samples must arrive in non-decreasing time order, older ones are ignored
func (v *VelocityTracker) Add(at time.Time, pos vmath.Vec2) {
	if v.count > 0 && at.Before(v.newest().at) {
		return
	}
	v.samples[v.head] = sample{at: at, pos: pos}
	v.head = (v.head + 1) % len(v.samples)
	if v.count < len(v.samples) {
		v.count++
	}
}

// Len returns the number of buffered samples
func (v *VelocityTracker) Len() int {
	return v.count
}

func (v *VelocityTracker) newest() sample {
	return v.samples[(v.head-1+len(v.samples))%len(v.samples)]
}

// at returns the i-th sample counting back from newest (0 = newest)
func (v *VelocityTracker) at(i int) sample {
	return v.samples[(v.head-1-i+2*len(v.samples))%len(v.samples)]
}

// Velocity returns the least-squares slope of position over time in points/second
// Zero when fewer than two samples fall in the window or the pointer went stale before now
func (v *VelocityTracker) Velocity(now time.Time) vmath.Vec2 {
	if v.count < 2 {
		return vmath.Vec2{}
	}
	newest := v.newest()
	if v.StaleAfter > 0 && now.Sub(newest.at) > v.StaleAfter {
		return vmath.Vec2{}
	}

	// Times relative to newest keep magnitudes small
	var n, sumT, sumX, sumY float64
	used := 0
	for i := 0; i < v.count; i++ {
		s := v.at(i)
		age := newest.at.Sub(s.at)
		if age > v.Window {
			break
		}
		t := -age.Seconds()
		n++
		sumT += t
		sumX += s.pos.X
		sumY += s.pos.Y
		used++
	}
	if used < 2 {
		return vmath.Vec2{}
	}

	meanT := sumT / n
	meanX := sumX / n
	meanY := sumY / n

	var stt, stx, sty float64
	for i := 0; i < used; i++ {
		s := v.at(i)
		dt := -newest.at.Sub(s.at).Seconds() - meanT
		stt += dt * dt
		stx += dt * (s.pos.X - meanX)
		sty += dt * (s.pos.Y - meanY)
	}
	if stt == 0 {
		return vmath.Vec2{}
	}

	return vmath.Vec2{X: stx / stt, Y: sty / stt}
}
