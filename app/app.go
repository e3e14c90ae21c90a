// Package app runs the floating bubble on a terminal screen.
package app

import (
	"context"
	"time"

	"github.com/gdamore/tcell/v2"
	"go.uber.org/zap"

	"github.com/lixenwraith/float-bubble/animation"
	"github.com/lixenwraith/float-bubble/config"
	"github.com/lixenwraith/float-bubble/input"
	"github.com/lixenwraith/float-bubble/physics"
	"github.com/lixenwraith/float-bubble/render"
	"github.com/lixenwraith/float-bubble/session"
	"github.com/lixenwraith/float-bubble/vmath"
)

// SnapPlayer plays the settle cue
type SnapPlayer interface {
	PlaySnap(side physics.Side)
	Enabled() bool
}

// App owns every component and the single goroutine that mutates them
type App struct {
	cfg    *config.Config
	screen tcell.Screen
	logger *zap.Logger
	player SnapPlayer

	bubble     *Bubble
	ctrl       *session.Controller
	recognizer *input.Recognizer
	renderer   *render.Renderer
	clock      *animation.FrameClock
}

// Option configures an App
type Option func(*App)

func WithLogger(l *zap.Logger) Option {
	return func(a *App) {
		if l != nil {
			a.logger = l
		}
	}
}

// WithPlayer enables the settle cue
func WithPlayer(p SnapPlayer) Option {
	return func(a *App) { a.player = p }
}

// New wires the components for an initialized screen
func New(cfg *config.Config, screen tcell.Screen, opts ...Option) *App {
	a := &App{
		cfg:    cfg,
		screen: screen,
		logger: zap.NewNop(),
	}
	for _, opt := range opts {
		opt(a)
	}

	cell := cfg.CellSize()
	a.bubble = NewBubble(cfg.BubbleSize(), cfg.SafeAreaInsets(), cell)
	a.ctrl = session.New(a.bubble, a.bubble,
		session.WithAnimator(animation.NewDriver(cfg.AnimationConfig(), a.bubble.SetPosition)),
		session.WithProjector(cfg.Projector()),
		session.WithPadding(cfg.Padding()),
		session.WithLogger(a.logger.Named("session")),
		session.WithHooks(session.Hooks{
			OnSettled: a.onSettled,
		}),
	)
	a.recognizer = input.NewRecognizer(a.ctrl, a.bubble, cell)
	a.renderer = render.NewRenderer(cell, render.DefaultTheme())
	a.clock = animation.NewFrameClock(time.Now())

	w, h := screen.Size()
	a.bubble.Resize(w, h)
	a.ctrl.Relayout()
	return a
}

// Controller exposes the session for inspection
func (a *App) Controller() *session.Controller { return a.ctrl }

// Bubble exposes the element model for inspection
func (a *App) Bubble() *Bubble { return a.bubble }

func (a *App) onSettled(rest vmath.Vec2, side physics.Side) {
	a.logger.Info("bubble at rest",
		zap.Float64("x", rest.X),
		zap.Float64("y", rest.Y),
		zap.Stringer("side", side),
	)
	if a.player != nil {
		a.player.PlaySnap(side)
	}
}

// Run processes events and frames until quit or ctx is done
func (a *App) Run(ctx context.Context) error {
	events := make(chan tcell.Event, 64)
	done := make(chan struct{})
	defer close(done)

	// PollEvent blocks, so it gets its own goroutine feeding the loop
	go func() {
		for {
			ev := a.screen.PollEvent()
			if ev == nil {
				return
			}
			select {
			case events <- ev:
			case <-done:
				return
			}
		}
	}()

	ticker := time.NewTicker(a.cfg.FrameInterval())
	defer ticker.Stop()

	a.clock.Reset(time.Now())
	a.Draw()

	for {
		select {
		case <-ctx.Done():
			return nil
		case ev := <-events:
			if a.HandleEvent(ev) {
				a.logger.Info("quit requested")
				return nil
			}
		case now := <-ticker.C:
			a.Tick(now)
		}
	}
}

// HandleEvent applies one terminal event, returns true when the app should quit
func (a *App) HandleEvent(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventResize:
		w, h := ev.Size()
		a.screen.Sync()
		a.bubble.Resize(w, h)
		a.ctrl.Relayout()
		a.logger.Debug("resize", zap.Int("cols", w), zap.Int("rows", h))
		a.Draw()

	case *tcell.EventMouse:
		if a.recognizer.HandleMouse(ev) {
			a.Draw()
		}

	case *tcell.EventKey:
		action := input.ActionForKey(ev)
		switch action {
		case input.ActionQuit:
			return true
		case input.ActionRelayout:
			a.ctrl.Relayout()
		case input.ActionNone:
			return false
		default:
			if a.recognizer.Active() {
				return false
			}
			if v, ok := input.FlingVelocity(action, a.cfg.Physics.VelocityLimit); ok {
				a.logger.Debug("fling", zap.Stringer("action", action))
				a.ctrl.Fling(v)
			}
		}
		a.Draw()
	}
	return false
}

// Tick advances the settle animation to now and redraws when something moved
func (a *App) Tick(now time.Time) {
	dt := a.clock.Tick(now)
	phase := a.ctrl.Phase()
	a.ctrl.Tick(dt)

	if a.bubble.dirty || phase != a.ctrl.Phase() {
		a.Draw()
	}
}

// Draw renders the current state
func (a *App) Draw() {
	a.bubble.dirty = false

	f := render.Frame{
		Bubble: a.bubble.ElementFrame(),
		Bounds: a.ctrl.Bounds(),
		Phase:  a.ctrl.Phase(),
		Label:  a.cfg.Bubble.Label,
		Sound:  a.player != nil && a.player.Enabled(),
	}
	f.Release, f.HasRelease = a.ctrl.LastProjection()
	a.renderer.Draw(a.screen, f)
}
