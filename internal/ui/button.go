package ui

import "image"

const borderWidth = 2

// Button is a labeled rectangular hit region.
type Button struct {
	Bounds image.Rectangle
	Label  string
}

// NewButton creates a button with its top-left corner at (x, y).
func NewButton(x, y, w, h int, label string) *Button {
	return &Button{
		Bounds: image.Rect(x, y, x+w, y+h),
		Label:  label,
	}
}

// Contains reports whether pt is inside the button. Max edges are exclusive.
func (b *Button) Contains(pt image.Point) bool {
	return pt.In(b.Bounds)
}

// Center returns the middle of the button.
func (b *Button) Center() image.Point {
	return image.Pt(b.Bounds.Min.X+b.Bounds.Dx()/2, b.Bounds.Min.Y+b.Bounds.Dy()/2)
}

// Draw renders the filled body, a border and the centered label.
func (b *Button) Draw(s Surface) {
	s.FillRect(b.Bounds, ButtonColor)
	s.StrokeRect(b.Bounds, borderWidth, Black)
	c := b.Center()
	DrawTextCentered(s, b.Label, c.X, c.Y, FontSize, Black)
}

// HitTest returns the first button containing pt, or nil.
func HitTest(buttons []*Button, pt image.Point) *Button {
	for _, b := range buttons {
		if b.Contains(pt) {
			return b
		}
	}
	return nil
}
