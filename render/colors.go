package render

import "github.com/gdamore/tcell/v2"

// RGB color definitions for the arena and its inhabitants
var (
	RgbBackground = tcell.NewRGBColor(26, 27, 38)    // Tokyo Night background
	RgbBorder     = tcell.NewRGBColor(100, 100, 120) // Muted gray-blue frame
	RgbScoreText  = tcell.NewRGBColor(255, 255, 255) // White

	RgbBerry    = tcell.NewRGBColor(220, 50, 80)   // Ripe red
	RgbMouse    = tcell.NewRGBColor(180, 180, 180) // Field gray
	RgbSnake    = tcell.NewRGBColor(0, 200, 0)     // Normal Green
	RgbCobra    = tcell.NewRGBColor(255, 165, 0)   // Hooded orange
	RgbMongoose = tcell.NewRGBColor(140, 190, 255) // Bright Blue
)
