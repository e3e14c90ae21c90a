package render

import (
	"strings"
	"testing"

	"github.com/gdamore/tcell/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lixenwraith/float-bubble/physics"
	"github.com/lixenwraith/float-bubble/session"
	"github.com/lixenwraith/float-bubble/vmath"
)

func newTestScreen(t *testing.T, w, h int) tcell.SimulationScreen {
	t.Helper()
	s := tcell.NewSimulationScreen("UTF-8")
	require.NoError(t, s.Init())
	s.SetSize(w, h)
	t.Cleanup(s.Fini)
	return s
}

func rowText(s tcell.SimulationScreen, y int) string {
	w, _ := s.Size()
	var b strings.Builder
	for x := 0; x < w; x++ {
		r, _, _, _ := s.GetContent(x, y)
		b.WriteRune(r)
	}
	return b.String()
}

func testFrame() Frame {
	return Frame{
		Bubble: vmath.Rect{X: 80, Y: 160, W: 64, H: 64},
		Bounds: vmath.Rect{X: 40, Y: 40, W: 400, H: 400},
		Phase:  session.PhaseIdle,
		Label:  "◎",
	}
}

func TestToCells(t *testing.T) {
	r := NewRenderer(vmath.Size{W: 8, H: 16}, DefaultTheme())

	c := r.ToCells(vmath.Rect{X: 80, Y: 160, W: 64, H: 64})
	assert.Equal(t, CellRect{X0: 10, Y0: 10, X1: 18, Y1: 14}, c)
	assert.Equal(t, 8, c.Width())
	assert.Equal(t, 4, c.Height())

	// Sub-cell sizes still occupy one cell
	tiny := r.ToCells(vmath.Rect{X: 0, Y: 0, W: 1, H: 1})
	assert.Equal(t, 1, tiny.Width())
	assert.Equal(t, 1, tiny.Height())
}

func TestDrawBubbleBox(t *testing.T) {
	s := newTestScreen(t, 60, 40)
	r := NewRenderer(vmath.Size{W: 8, H: 16}, DefaultTheme())

	r.Draw(s, testFrame())

	corners := map[[2]int]rune{
		{10, 10}: '╭',
		{17, 10}: '╮',
		{10, 13}: '╰',
		{17, 13}: '╯',
	}
	for pos, want := range corners {
		got, _, _, _ := s.GetContent(pos[0], pos[1])
		assert.Equal(t, string(want), string(got), "corner at %v", pos)
	}

	label, _, _, _ := s.GetContent(13, 11)
	assert.Equal(t, '◎', label)

	shadow, _, _, _ := s.GetContent(18, 14)
	assert.Equal(t, '░', shadow)

	corner, _, _, _ := s.GetContent(5, 3)
	assert.Equal(t, '┌', corner, "bounds outline")
}

func TestDrawPhaseStyles(t *testing.T) {
	theme := DefaultTheme()
	s := newTestScreen(t, 60, 40)
	r := NewRenderer(vmath.Size{W: 8, H: 16}, theme)

	f := testFrame()
	for _, tc := range []struct {
		phase session.Phase
		style tcell.Style
	}{
		{session.PhaseIdle, theme.BubbleIdle},
		{session.PhaseDragging, theme.BubbleDragging},
		{session.PhaseSettling, theme.BubbleSettling},
	} {
		f.Phase = tc.phase
		r.Draw(s, f)
		_, _, st, _ := s.GetContent(12, 12)
		assert.Equal(t, tc.style, st, "phase %s", tc.phase)
	}
}

func TestDrawStatusLine(t *testing.T) {
	s := newTestScreen(t, 120, 40)
	r := NewRenderer(vmath.Size{W: 8, H: 16}, DefaultTheme())

	f := testFrame()
	f.Phase = session.PhaseSettling
	f.HasRelease = true
	f.Release = physics.Projection{
		Velocity: vmath.Vec2{X: 800},
		Target:   vmath.Vec2{X: 376, Y: 160},
		Side:     physics.SideRight,
	}
	f.Sound = true
	r.Draw(s, f)

	status := rowText(s, 39)
	assert.Contains(t, status, "settling")
	assert.Contains(t, status, "pos (  80.0,  160.0)")
	assert.Contains(t, status, "target ( 376.0,  160.0) right")
	assert.Contains(t, status, "♪")

	assert.Contains(t, rowText(s, 0), "float-bubble")
}

func TestDrawClipsOffscreen(t *testing.T) {
	s := newTestScreen(t, 20, 10)
	r := NewRenderer(vmath.Size{W: 8, H: 16}, DefaultTheme())

	f := testFrame()
	f.Bubble = vmath.Rect{X: 140, Y: 140, W: 64, H: 64}
	assert.NotPanics(t, func() { r.Draw(s, f) })
}
