package animation

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lixenwraith/float-bubble/vmath"
)

const frame = time.Second / 60

type recorder struct {
	positions []vmath.Vec2
}

func (r *recorder) sink(p vmath.Vec2) {
	r.positions = append(r.positions, p)
}

func (r *recorder) last() vmath.Vec2 {
	return r.positions[len(r.positions)-1]
}

// runFrames steps d n times and returns how many steps reported completion
func runFrames(d *Driver, n int) int {
	done := 0
	for i := 0; i < n; i++ {
		if d.Step(frame) {
			done++
		}
	}
	return done
}

func TestAngularFrequency(t *testing.T) {
	w := AngularFrequency(time.Second, 0.98)
	assert.InDelta(t, 7.0488, w, 1e-3)

	assert.Equal(t, 0.0, AngularFrequency(0, 0.98))
	assert.Equal(t, 0.0, AngularFrequency(time.Second, 0))
}

func TestDriverCompletesAtTargetAfterDuration(t *testing.T) {
	rec := &recorder{}
	d := NewDriver(DefaultConfig(), rec.sink)

	from := vmath.Vec2{X: 150, Y: 400}
	target := vmath.Vec2{X: 42, Y: 424.95}
	d.Start(from, target)
	require.Equal(t, StateRunning, d.State())

	steps := 0
	for !d.Step(frame) {
		steps++
		require.Less(t, steps, 1000, "driver never completed")
	}
	steps++

	// 60 frames of time.Second/60 fall a few ns short of one second
	assert.Equal(t, 61, steps)
	assert.Equal(t, StateCompleted, d.State())
	assert.Equal(t, target, d.Position())
	assert.Equal(t, target, rec.last())
	assert.Len(t, rec.positions, 61)

	// Completion is terminal
	assert.False(t, d.Step(frame))
	assert.Len(t, rec.positions, 61)
}

func TestDriverSpringApproachesTarget(t *testing.T) {
	d := NewDriver(DefaultConfig(), nil)
	d.Start(vmath.Vec2{}, vmath.Vec2{X: 100})

	runFrames(d, 30)
	assert.Greater(t, d.Progress(), 0.8, "half way through the settle should be mostly done")

	maxProgress := d.Progress()
	for i := 0; i < 29; i++ {
		d.Step(frame)
		if d.Progress() > maxProgress {
			maxProgress = d.Progress()
		}
	}
	assert.InDelta(t, 1.0, d.Progress(), 0.02)
	assert.Less(t, maxProgress, 1.01, "overshoot should be subtle")
	assert.True(t, d.Running())
}

func TestDriverMovesAlongStraightPath(t *testing.T) {
	rec := &recorder{}
	d := NewDriver(DefaultConfig(), rec.sink)
	d.Start(vmath.Vec2{X: 0, Y: 0}, vmath.Vec2{X: 200, Y: 100})

	runFrames(d, 20)
	for _, p := range rec.positions {
		assert.InDelta(t, p.X/2, p.Y, 1e-9)
	}
}

func TestDriverCancelFreezesPosition(t *testing.T) {
	rec := &recorder{}
	d := NewDriver(DefaultConfig(), rec.sink)
	target := vmath.Vec2{X: 282, Y: 300}
	d.Start(vmath.Vec2{X: 42, Y: 300}, target)

	runFrames(d, 10)
	mid := d.Position()
	require.NotEqual(t, target, mid)

	pos, ok := d.Cancel()
	assert.True(t, ok)
	assert.Equal(t, mid, pos)
	assert.Equal(t, StateCancelled, d.State())

	emitted := len(rec.positions)
	assert.Equal(t, 0, runFrames(d, 100))
	assert.Equal(t, mid, d.Position(), "cancel must not jump to target")
	assert.Len(t, rec.positions, emitted, "cancelled run must not write")
}

func TestDriverCancelIsIdempotent(t *testing.T) {
	d := NewDriver(DefaultConfig(), nil)

	pos, ok := d.Cancel()
	assert.False(t, ok)
	assert.Equal(t, vmath.Vec2{}, pos)
	assert.Equal(t, StateIdle, d.State())

	target := vmath.Vec2{X: 10, Y: 10}
	d.Start(vmath.Vec2{}, target)
	runFrames(d, 61)
	require.Equal(t, StateCompleted, d.State())

	pos, ok = d.Cancel()
	assert.False(t, ok)
	assert.Equal(t, target, pos)
	assert.Equal(t, StateCompleted, d.State())

	d.Start(vmath.Vec2{}, vmath.Vec2{X: 50})
	runFrames(d, 5)
	first, ok := d.Cancel()
	require.True(t, ok)
	second, ok := d.Cancel()
	assert.False(t, ok)
	assert.Equal(t, first, second)
}

func TestDriverStartSameTargetIsNoop(t *testing.T) {
	d := NewDriver(DefaultConfig(), nil)
	target := vmath.Vec2{X: 100}
	d.Start(vmath.Vec2{}, target)
	runFrames(d, 10)

	elapsed := d.Elapsed()
	pos := d.Position()
	d.Start(vmath.Vec2{X: -999}, target)

	assert.Equal(t, elapsed, d.Elapsed())
	assert.Equal(t, pos, d.Position())
}

func TestDriverRetargetContinuesFromCurrent(t *testing.T) {
	d := NewDriver(DefaultConfig(), nil)
	d.Start(vmath.Vec2{}, vmath.Vec2{X: 100})
	runFrames(d, 10)
	mid := d.Position()

	d.Start(vmath.Vec2{X: -999}, vmath.Vec2{X: 0, Y: 50})
	assert.Equal(t, mid, d.Position())
	assert.Equal(t, time.Duration(0), d.Elapsed())

	runFrames(d, 61)
	assert.Equal(t, vmath.Vec2{X: 0, Y: 50}, d.Position())
}

func TestDriverRestartAfterCompletion(t *testing.T) {
	d := NewDriver(DefaultConfig(), nil)
	d.Start(vmath.Vec2{}, vmath.Vec2{X: 10})
	assert.Equal(t, 1, runFrames(d, 61))

	d.Start(d.Position(), vmath.Vec2{X: 20})
	assert.True(t, d.Running())
	assert.Equal(t, 1, runFrames(d, 61))
	assert.Equal(t, vmath.Vec2{X: 20}, d.Position())
}

func TestDriverIgnoresNonPositiveStep(t *testing.T) {
	d := NewDriver(DefaultConfig(), nil)
	d.Start(vmath.Vec2{}, vmath.Vec2{X: 10})

	assert.False(t, d.Step(0))
	assert.False(t, d.Step(-frame))
	assert.Equal(t, time.Duration(0), d.Elapsed())
}

func TestDriverZeroDurationCompletesOnFirstStep(t *testing.T) {
	d := NewDriver(Config{Duration: 0, DampingRatio: 0.98, FrameRate: 60}, nil)
	d.Start(vmath.Vec2{}, vmath.Vec2{X: 10})

	assert.True(t, d.Step(frame))
	assert.Equal(t, vmath.Vec2{X: 10}, d.Position())
}

func TestDriverLargeStepSubdivides(t *testing.T) {
	a := NewDriver(DefaultConfig(), nil)
	b := NewDriver(DefaultConfig(), nil)
	a.Start(vmath.Vec2{}, vmath.Vec2{X: 100})
	b.Start(vmath.Vec2{}, vmath.Vec2{X: 100})

	a.Step(4 * frame)
	runFrames(b, 4)

	assert.InDelta(t, b.Progress(), a.Progress(), 1e-9)
}

func TestDriverPartialStepStillMoves(t *testing.T) {
	whole := NewDriver(DefaultConfig(), nil)
	halves := NewDriver(DefaultConfig(), nil)
	whole.Start(vmath.Vec2{}, vmath.Vec2{X: 100})
	halves.Start(vmath.Vec2{}, vmath.Vec2{X: 100})

	whole.Step(frame)
	halves.Step(frame / 2)

	mid := halves.Position().X
	assert.Greater(t, mid, 0.0, "a tick shorter than one sub-step must not stall")
	assert.Less(t, mid, whole.Position().X)

	halves.Step(frame / 2)
	assert.InDelta(t, whole.Position().X, halves.Position().X, 1e-9)
	assert.InDelta(t, whole.Progress(), halves.Progress(), 1e-12)
}

func TestStateString(t *testing.T) {
	assert.Equal(t, "idle", StateIdle.String())
	assert.Equal(t, "running", StateRunning.String())
	assert.Equal(t, "completed", StateCompleted.String())
	assert.Equal(t, "cancelled", StateCancelled.String())
}
