// Package animation drives time-bounded spring interpolation of an element position.
//
// The driver is stepped by the caller's frame loop, it owns no goroutines or timers.
// Interpolation runs on a normalized progress value so overshoot follows the
// straight path between start and target.
package animation

import (
	"math"
	"time"

	"github.com/charmbracelet/harmonica"

	"github.com/lixenwraith/float-bubble/parameter"
	"github.com/lixenwraith/float-bubble/vmath"
)

// State of a driver run
type State uint8

const (
	StateIdle State = iota
	StateRunning
	StateCompleted
	StateCancelled
)

func (s State) String() string {
	switch s {
	case StateRunning:
		return "running"
	case StateCompleted:
		return "completed"
	case StateCancelled:
		return "cancelled"
	default:
		return "idle"
	}
}

// Sink receives every interpolated position
type Sink func(vmath.Vec2)

// Config controls the settle curve
type Config struct {
	Duration     time.Duration
	DampingRatio float64
	FrameRate    int
}

// DefaultConfig returns the one second, 0.98 damping settle
func DefaultConfig() Config {
	return Config{
		Duration:     parameter.SettleDuration,
		DampingRatio: parameter.SpringDampingRatio,
		FrameRate:    parameter.FrameRate,
	}
}

// AngularFrequency returns the spring frequency whose envelope decays to
// parameter.SpringSettleEpsilon after duration
func AngularFrequency(duration time.Duration, dampingRatio float64) float64 {
	secs := duration.Seconds()
	if secs <= 0 || dampingRatio <= 0 {
		return 0
	}
	return math.Log(1/parameter.SpringSettleEpsilon) / (dampingRatio * secs)
}

// Driver interpolates from a start position to a target over a fixed duration
type Driver struct {
	cfg    Config
	spring harmonica.Spring
	step   time.Duration
	sink   Sink

	from    vmath.Vec2
	target  vmath.Vec2
	current vmath.Vec2

	// Spring state on normalized progress, 0 at from and 1 at target
	progress float64
	velocity float64

	elapsed time.Duration
	pending time.Duration

	state State
	// generation invalidates a run on Cancel or restart
	generation uint64
}

// NewDriver creates an idle driver, sink may be nil
func NewDriver(cfg Config, sink Sink) *Driver {
	if cfg.FrameRate <= 0 {
		cfg.FrameRate = parameter.FrameRate
	}
	return &Driver{
		cfg:    cfg,
		spring: harmonica.NewSpring(harmonica.FPS(cfg.FrameRate), AngularFrequency(cfg.Duration, cfg.DampingRatio), cfg.DampingRatio),
		step:   time.Second / time.Duration(cfg.FrameRate),
		sink:   sink,
	}
}

// Start begins interpolation from from to target
// Repeating the running target is a no-op, a new target while running
// continues from the current interpolated position
func (d *Driver) Start(from, target vmath.Vec2) {
	if d.state == StateRunning {
		if target == d.target {
			return
		}
		from = d.current
	}

	d.from = from
	d.target = target
	d.current = from
	d.progress = 0
	d.velocity = 0
	d.elapsed = 0
	d.pending = 0
	d.state = StateRunning
	d.generation++
}

// Step advances the run by dt and pushes the new position to the sink
// Returns true exactly once, on the step that reaches the target
func (d *Driver) Step(dt time.Duration) bool {
	if d.state != StateRunning || dt <= 0 {
		return false
	}
	token := d.generation

	d.elapsed += dt
	if d.elapsed >= d.cfg.Duration {
		d.progress = 1
		d.velocity = 0
		d.current = d.target
		d.state = StateCompleted
		d.emit(token)
		return true
	}

	d.pending += dt
	for d.pending >= d.step {
		d.progress, d.velocity = d.spring.Update(d.progress, d.velocity, 1)
		d.pending -= d.step
	}

	// A partial sub-step blends toward the next spring state so uneven frame gaps still move
	shown := d.progress
	if d.pending > 0 {
		next, _ := d.spring.Update(d.progress, d.velocity, 1)
		shown += (next - d.progress) * float64(d.pending) / float64(d.step)
	}

	d.current = vmath.V2Lerp(d.from, d.target, shown)
	d.emit(token)
	return false
}

func (d *Driver) emit(token uint64) {
	if d.sink == nil || token != d.generation {
		return
	}
	d.sink(d.current)
}

// Cancel freezes the run at its current interpolated position
// ok is false when nothing was running, position is unchanged in that case
func (d *Driver) Cancel() (vmath.Vec2, bool) {
	if d.state != StateRunning {
		return d.current, false
	}
	d.state = StateCancelled
	d.generation++
	return d.current, true
}

func (d *Driver) Position() vmath.Vec2 { return d.current }
func (d *Driver) Target() vmath.Vec2   { return d.target }
func (d *Driver) State() State         { return d.state }
func (d *Driver) Running() bool        { return d.state == StateRunning }

// Progress returns the normalized spring value, may exceed 1 during overshoot
func (d *Driver) Progress() float64 { return d.progress }

// Elapsed returns time spent in the current or last run
func (d *Driver) Elapsed() time.Duration { return d.elapsed }
