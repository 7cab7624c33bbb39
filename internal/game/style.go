package game

import (
	gui "github.com/gen2brain/raylib-go/raygui"
	rl "github.com/gen2brain/raylib-go/raylib"
)

// Theme colors - dark slate with a teal accent
var (
	colorBgDark    = rl.NewColor(12, 14, 16, 255)  // Darkest - toolbar bg
	colorBgPanel   = rl.NewColor(20, 23, 26, 245)  // Panel backgrounds
	colorBgElement = rl.NewColor(30, 34, 38, 255)  // Input fields, buttons
	colorBgHover   = rl.NewColor(42, 48, 54, 255)  // Hover state

	colorAccent      = rl.NewColor(38, 166, 154, 255)  // Primary teal
	colorAccentLight = rl.NewColor(128, 203, 196, 255) // Light teal

	colorTextPrimary   = rl.NewColor(255, 255, 255, 255)
	colorTextSecondary = rl.NewColor(198, 204, 208, 255)
	colorTextMuted     = rl.NewColor(120, 128, 134, 255)

	colorBorder    = rl.NewColor(255, 255, 255, 13)
	colorSelection = rl.NewColor(38, 166, 154, 60)

	colorWarn = rl.NewColor(255, 183, 77, 255) // Unmapped rows
)

// initRayguiStyle sets up the dark teal theme
func initRayguiStyle() {
	gui.SetStyle(gui.DEFAULT, gui.BACKGROUND_COLOR, gui.NewColorPropertyValue(colorBgDark))
	gui.SetStyle(gui.DEFAULT, gui.BASE_COLOR_NORMAL, gui.NewColorPropertyValue(colorBgElement))
	gui.SetStyle(gui.DEFAULT, gui.BASE_COLOR_FOCUSED, gui.NewColorPropertyValue(colorBgHover))
	gui.SetStyle(gui.DEFAULT, gui.BASE_COLOR_PRESSED, gui.NewColorPropertyValue(colorAccent))

	gui.SetStyle(gui.DEFAULT, gui.TEXT_COLOR_NORMAL, gui.NewColorPropertyValue(colorTextSecondary))
	gui.SetStyle(gui.DEFAULT, gui.TEXT_COLOR_FOCUSED, gui.NewColorPropertyValue(colorTextPrimary))
	gui.SetStyle(gui.DEFAULT, gui.TEXT_COLOR_PRESSED, gui.NewColorPropertyValue(colorTextPrimary))

	gui.SetStyle(gui.DEFAULT, gui.BORDER_COLOR_NORMAL, gui.NewColorPropertyValue(rl.NewColor(52, 58, 64, 255)))
	gui.SetStyle(gui.DEFAULT, gui.BORDER_COLOR_FOCUSED, gui.NewColorPropertyValue(colorAccent))

	gui.SetStyle(gui.DEFAULT, gui.LINE_COLOR, gui.NewColorPropertyValue(rl.NewColor(42, 46, 52, 255)))

	gui.SetStyle(gui.DEFAULT, gui.TEXT_SIZE, 15)
}

// button draws a rounded pill button and reports a click this frame.
func button(x, y, w, h int32, label string) bool {
	mousePos := rl.GetMousePosition()
	hovered := mousePos.X >= float32(x) && mousePos.X <= float32(x+w) &&
		mousePos.Y >= float32(y) && mousePos.Y <= float32(y+h)

	btnColor := colorBgElement
	textColor := colorTextSecondary
	if hovered {
		btnColor = colorAccent
		textColor = colorTextPrimary
	}
	rl.DrawRectangleRounded(rl.Rectangle{X: float32(x), Y: float32(y), Width: float32(w), Height: float32(h)}, 0.5, 6, btnColor)
	rl.DrawText(label, x+8, y+(h-16)/2, 16, textColor)

	return hovered && rl.IsMouseButtonPressed(rl.MouseLeftButton)
}
