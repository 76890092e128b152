package ui

import (
	"image"
	"image/color"
)

// Text sizes in pixels.
const (
	FontSize    = 30
	BigFontSize = 44
)

var (
	White       = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	Black       = color.RGBA{A: 255}
	ButtonColor = color.RGBA{R: 200, G: 200, B: 200, A: 255}
)

// Surface is what screens draw onto. The window backend implements it with raylib;
// tests implement it with a recorder. A frame is everything between BeginFrame and EndFrame;
// EndFrame presents it.
type Surface interface {
	Size() (width, height int)
	BeginFrame()
	EndFrame()
	Clear(c color.RGBA)
	FillRect(r image.Rectangle, c color.RGBA)
	// StrokeRect draws an outline of the given thickness inside r.
	StrokeRect(r image.Rectangle, thickness int, c color.RGBA)
	MeasureText(text string, size int) int
	// DrawText draws text with its top-left corner at (x, y).
	DrawText(text string, x, y, size int, c color.RGBA)
}

// DrawTextCentered draws text centered on the point (cx, cy).
func DrawTextCentered(s Surface, text string, cx, cy, size int, c color.RGBA) {
	w := s.MeasureText(text, size)
	s.DrawText(text, cx-w/2, cy-size/2, size, c)
}
