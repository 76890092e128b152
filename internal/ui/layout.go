package ui

import "image"

const (
	SwatchSize   = 300
	SwatchTop    = 100
	ButtonWidth  = 300
	ButtonHeight = 50
	ButtonsTop   = 450
	ButtonPitch  = 60
	StatusX      = 20
	StatusY      = 20
)

// SwatchRect returns the swatch square, centered horizontally in a window of the given width.
func SwatchRect(width int) image.Rectangle {
	x := width/2 - SwatchSize/2
	return image.Rect(x, SwatchTop, x+SwatchSize, SwatchTop+SwatchSize)
}

// LayoutButtons stacks one button per label in a centered column below the swatch.
func LayoutButtons(width int, labels []string) []*Button {
	x := width/2 - ButtonWidth/2
	buttons := make([]*Button, len(labels))
	for i, label := range labels {
		buttons[i] = NewButton(x, ButtonsTop+i*ButtonPitch, ButtonWidth, ButtonHeight, label)
	}
	return buttons
}
