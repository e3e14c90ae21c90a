// Package session owns the drag/settle lifecycle of a floating element.
//
// A Controller is driven from a single event loop: input callbacks and Tick
// must not be called concurrently. Phase is the only mutual exclusion between
// the drag tracker and the animator, a drag start always cancels a settle
// before the tracker takes over the position.
package session

import (
	"time"

	"go.uber.org/zap"

	"github.com/lixenwraith/float-bubble/animation"
	"github.com/lixenwraith/float-bubble/drag"
	"github.com/lixenwraith/float-bubble/parameter"
	"github.com/lixenwraith/float-bubble/physics"
	"github.com/lixenwraith/float-bubble/vmath"
)

// Phase is the session state
type Phase uint8

const (
	PhaseIdle Phase = iota
	PhaseDragging
	PhaseSettling
)

func (p Phase) String() string {
	switch p {
	case PhaseDragging:
		return "dragging"
	case PhaseSettling:
		return "settling"
	default:
		return "idle"
	}
}

// Geometry is queried on demand for the element frame and the container safe area
type Geometry interface {
	ElementFrame() vmath.Rect
	SafeArea() vmath.Rect
}

// RenderSink applies a new element origin
type RenderSink interface {
	SetPosition(vmath.Vec2)
}

// Animator interpolates the element toward a target, stepped by the caller
type Animator interface {
	Start(from, target vmath.Vec2)
	Cancel() (vmath.Vec2, bool)
	Step(dt time.Duration) bool
	Position() vmath.Vec2
}

// InputHandler receives recognized drag gestures
type InputHandler interface {
	DragStart()
	DragMove(translation vmath.Vec2)
	DragEnd(velocity vmath.Vec2)
}

// Hooks are optional observers, called synchronously from the event loop
type Hooks struct {
	OnRelease     func(physics.Projection)
	OnSettled     func(rest vmath.Vec2, side physics.Side)
	OnInterrupted func(frozen vmath.Vec2)
}

// Controller implements InputHandler over a drag tracker, a projector and an animator
type Controller struct {
	geo       Geometry
	sink      RenderSink
	animator  Animator
	projector physics.Projector
	padding   vmath.Insets
	hooks     Hooks
	logger    *zap.Logger

	tracker drag.Tracker
	phase   Phase

	last    physics.Projection
	hasLast bool
}

var _ InputHandler = (*Controller)(nil)

// Option configures a Controller
type Option func(*Controller)

func WithAnimator(a Animator) Option {
	return func(c *Controller) { c.animator = a }
}

func WithProjector(p physics.Projector) Option {
	return func(c *Controller) { c.projector = p }
}

func WithPadding(in vmath.Insets) Option {
	return func(c *Controller) { c.padding = in }
}

func WithHooks(h Hooks) Option {
	return func(c *Controller) { c.hooks = h }
}

func WithLogger(l *zap.Logger) Option {
	return func(c *Controller) {
		if l != nil {
			c.logger = l
		}
	}
}

// New creates an idle controller
// Without WithAnimator the default settle driver writes straight to sink
func New(geo Geometry, sink RenderSink, opts ...Option) *Controller {
	c := &Controller{
		geo:       geo,
		sink:      sink,
		projector: physics.NewProjector(),
		padding: vmath.Insets{
			Top:    parameter.VerticalPadding,
			Left:   parameter.HorizontalPadding,
			Bottom: parameter.VerticalPadding,
			Right:  parameter.HorizontalPadding,
		},
		logger: zap.NewNop(),
	}
	for _, opt := range opts {
		opt(c)
	}
	if c.animator == nil {
		c.animator = animation.NewDriver(animation.DefaultConfig(), sink.SetPosition)
	}
	return c
}

func (c *Controller) Phase() Phase { return c.phase }

// Bounds returns the padded travel area for the current container geometry
func (c *Controller) Bounds() vmath.Rect {
	return c.geo.SafeArea().Inset(c.padding)
}

// LastProjection returns the most recent release result
func (c *Controller) LastProjection() (physics.Projection, bool) {
	return c.last, c.hasLast
}

// DragStart cancels any settle in flight, freezing the element where it is,
// then anchors the tracker at the element's current origin
func (c *Controller) DragStart() {
	if c.phase == PhaseSettling {
		if frozen, ok := c.animator.Cancel(); ok {
			c.logger.Debug("settle interrupted", zap.Float64("x", frozen.X), zap.Float64("y", frozen.Y))
			if c.hooks.OnInterrupted != nil {
				c.hooks.OnInterrupted(frozen)
			}
		}
	}

	origin := c.geo.ElementFrame().Origin()
	c.tracker.Start(origin)
	c.phase = PhaseDragging
	c.logger.Debug("drag start", zap.Float64("x", origin.X), zap.Float64("y", origin.Y))
}

// DragMove places the element at the drag origin plus cumulative translation
func (c *Controller) DragMove(translation vmath.Vec2) {
	if c.phase != PhaseDragging {
		return
	}
	if pos, ok := c.tracker.Move(translation); ok {
		c.sink.SetPosition(pos)
	}
}

// DragEnd projects the release and starts the settle animation
func (c *Controller) DragEnd(velocity vmath.Vec2) {
	if c.phase != PhaseDragging {
		return
	}
	pos, _ := c.tracker.End()
	size := c.geo.ElementFrame().Size()

	proj := c.projector.Project(pos, velocity, c.Bounds(), size)
	c.last = proj
	c.hasLast = true

	c.logger.Debug("release",
		zap.Float64("vx", proj.Velocity.X),
		zap.Float64("vy", proj.Velocity.Y),
		zap.Float64("projected_x", proj.Projected.X),
		zap.Float64("projected_y", proj.Projected.Y),
		zap.Float64("target_x", proj.Target.X),
		zap.Float64("target_y", proj.Target.Y),
		zap.Stringer("side", proj.Side),
	)
	if proj.Degenerate.Any() {
		c.logger.Warn("bounds smaller than element, centring",
			zap.Bool("horizontal", proj.Degenerate.Horizontal),
			zap.Bool("vertical", proj.Degenerate.Vertical),
		)
	}

	c.animator.Start(pos, proj.Target)
	c.phase = PhaseSettling

	if c.hooks.OnRelease != nil {
		c.hooks.OnRelease(proj)
	}
}

// Fling releases the element with velocity without pointer movement
func (c *Controller) Fling(velocity vmath.Vec2) {
	c.DragStart()
	c.DragEnd(velocity)
}

// Tick advances the settle animation by dt
func (c *Controller) Tick(dt time.Duration) {
	if c.phase != PhaseSettling {
		return
	}
	if !c.animator.Step(dt) {
		return
	}

	c.phase = PhaseIdle
	rest := c.animator.Position()
	c.logger.Debug("settled", zap.Float64("x", rest.X), zap.Float64("y", rest.Y))
	if c.hooks.OnSettled != nil {
		c.hooks.OnSettled(rest, c.last.Side)
	}
}

// Relayout re-evaluates placement after the container geometry changed
// Idle elements jump to their new rest position, a settle in flight is retargeted,
// a drag in progress is left alone since bounds are read at release
func (c *Controller) Relayout() {
	bounds := c.Bounds()
	frame := c.geo.ElementFrame()

	switch c.phase {
	case PhaseIdle:
		proj := c.projector.Project(frame.Origin(), vmath.Vec2{}, bounds, frame.Size())
		if proj.Target != frame.Origin() {
			c.sink.SetPosition(proj.Target)
		}
		c.last.Side = proj.Side
	case PhaseSettling:
		proj := c.projector.Project(c.last.Projected, vmath.Vec2{}, bounds, frame.Size())
		c.last.Target = proj.Target
		c.last.Side = proj.Side
		c.last.Degenerate = proj.Degenerate
		c.animator.Start(c.animator.Position(), proj.Target)
	}
}
