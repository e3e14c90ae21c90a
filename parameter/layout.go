package parameter

// Padding between the container safe area and the bubble travel bounds, points
const (
	HorizontalPadding = 42.0
	VerticalPadding   = 120.0
)

// Terminal cell geometry in points
// A cell is roughly twice as tall as wide on common fonts
const (
	CellWidth  = 8.0
	CellHeight = 16.0
)

// Default bubble geometry
const (
	BubbleWidth  = 64.0
	BubbleHeight = 64.0
	BubbleLabel  = "◎"
)

// Safe area insets reserve the title row and the status rows
const (
	SafeAreaTop    = 16.0
	SafeAreaLeft   = 0.0
	SafeAreaBottom = 32.0
	SafeAreaRight  = 0.0
)

// ShadowOffset is the bubble shadow displacement in cells
const (
	ShadowOffsetX = 1
	ShadowOffsetY = 1
)
