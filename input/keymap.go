package input

import (
	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/float-bubble/vmath"
)

// Action is a keyboard command
type Action uint8

const (
	ActionNone Action = iota
	ActionQuit
	ActionFlingLeft
	ActionFlingRight
	ActionFlingUp
	ActionFlingDown
	ActionRelayout
)

func (a Action) String() string {
	switch a {
	case ActionQuit:
		return "Quit"
	case ActionFlingLeft:
		return "FlingLeft"
	case ActionFlingRight:
		return "FlingRight"
	case ActionFlingUp:
		return "FlingUp"
	case ActionFlingDown:
		return "FlingDown"
	case ActionRelayout:
		return "Relayout"
	default:
		return "None"
	}
}

var runeActions = map[rune]Action{
	'q': ActionQuit,
	'h': ActionFlingLeft,
	'l': ActionFlingRight,
	'k': ActionFlingUp,
	'j': ActionFlingDown,
	'r': ActionRelayout,
}

var keyActions = map[tcell.Key]Action{
	tcell.KeyEscape: ActionQuit,
	tcell.KeyCtrlC:  ActionQuit,
	tcell.KeyLeft:   ActionFlingLeft,
	tcell.KeyRight:  ActionFlingRight,
	tcell.KeyUp:     ActionFlingUp,
	tcell.KeyDown:   ActionFlingDown,
}

// ActionForKey maps a key event, vi motions and arrows fling
func ActionForKey(ev *tcell.EventKey) Action {
	return actionFor(ev.Key(), ev.Rune())
}

func actionFor(key tcell.Key, r rune) Action {
	if key == tcell.KeyRune {
		return runeActions[r]
	}
	return keyActions[key]
}

// FlingVelocity returns the release velocity for a fling action at speed points/second
func FlingVelocity(a Action, speed float64) (vmath.Vec2, bool) {
	switch a {
	case ActionFlingLeft:
		return vmath.Vec2{X: -speed}, true
	case ActionFlingRight:
		return vmath.Vec2{X: speed}, true
	case ActionFlingUp:
		return vmath.Vec2{Y: -speed}, true
	case ActionFlingDown:
		return vmath.Vec2{Y: speed}, true
	default:
		return vmath.Vec2{}, false
	}
}
