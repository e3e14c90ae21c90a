package render

import (
	"github.com/gdamore/tcell/v2"
)

// RGB color definitions
var (
	RgbBackground = tcell.NewRGBColor(26, 27, 38)    // Tokyo Night background
	RgbBounds     = tcell.NewRGBColor(60, 62, 84)    // Dim outline
	RgbTitle      = tcell.NewRGBColor(200, 200, 200) // Light gray
	RgbTitleBg    = tcell.NewRGBColor(40, 40, 60)    // Slate
	RgbStatusText = tcell.NewRGBColor(140, 140, 160) // Muted gray

	RgbBubbleIdle     = tcell.NewRGBColor(100, 150, 255) // Normal blue
	RgbBubbleDragging = tcell.NewRGBColor(255, 255, 100) // Yellow while held
	RgbBubbleSettling = tcell.NewRGBColor(140, 190, 255) // Bright blue in flight
	RgbBubbleFill     = tcell.NewRGBColor(36, 40, 59)    // Interior
	RgbShadow         = tcell.NewRGBColor(16, 16, 22)    // Near black
)

// Theme groups the styles used by the Renderer
type Theme struct {
	Background     tcell.Style
	Bounds         tcell.Style
	Title          tcell.Style
	Status         tcell.Style
	BubbleIdle     tcell.Style
	BubbleDragging tcell.Style
	BubbleSettling tcell.Style
	Shadow         tcell.Style
}

// DefaultTheme returns the dark theme
func DefaultTheme() Theme {
	bg := tcell.StyleDefault.Background(RgbBackground)
	fill := tcell.StyleDefault.Background(RgbBubbleFill)
	return Theme{
		Background:     bg,
		Bounds:         bg.Foreground(RgbBounds),
		Title:          tcell.StyleDefault.Foreground(RgbTitle).Background(RgbTitleBg).Bold(true),
		Status:         bg.Foreground(RgbStatusText),
		BubbleIdle:     fill.Foreground(RgbBubbleIdle),
		BubbleDragging: fill.Foreground(RgbBubbleDragging).Bold(true),
		BubbleSettling: fill.Foreground(RgbBubbleSettling),
		Shadow:         bg.Foreground(RgbShadow),
	}
}
