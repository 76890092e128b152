package palette

import (
	"errors"
	"fmt"
	"image/color"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
)

// MinSize is the smallest palette a round can be drawn from: one correct color plus three distractors.
const MinSize = 4

var (
	ErrTooSmall      = errors.New("palette: fewer than 4 colors")
	ErrDuplicateName = errors.New("palette: duplicate color name")
	ErrEmptyName     = errors.New("palette: empty color name")
)

// ColorOption is one named color the player can guess.
type ColorOption struct {
	Name string
	RGB  color.RGBA
}

// Palette is an ordered list of named colors. Order is stable so seeded rounds are reproducible.
type Palette []ColorOption

// Default returns the built-in 8-color palette.
func Default() Palette {
	return Palette{
		{Name: "Red", RGB: rgb(255, 0, 0)},
		{Name: "Green", RGB: rgb(0, 255, 0)},
		{Name: "Blue", RGB: rgb(0, 0, 255)},
		{Name: "Yellow", RGB: rgb(255, 255, 0)},
		{Name: "Purple", RGB: rgb(128, 0, 128)},
		{Name: "Cyan", RGB: rgb(0, 255, 255)},
		{Name: "Orange", RGB: rgb(255, 165, 0)},
		{Name: "Pink", RGB: rgb(255, 192, 203)},
	}
}

func rgb(r, g, b uint8) color.RGBA {
	return color.RGBA{R: r, G: g, B: b, A: 255}
}

// Names returns the color names in palette order.
func (p Palette) Names() []string {
	out := make([]string, len(p))
	for i, c := range p {
		out[i] = c.Name
	}
	return out
}

// Lookup returns the color with the given name.
func (p Palette) Lookup(name string) (ColorOption, bool) {
	for _, c := range p {
		if c.Name == name {
			return c, true
		}
	}
	return ColorOption{}, false
}

// Validate checks that the palette is large enough and that names are unique and non-empty.
func (p Palette) Validate() error {
	if len(p) < MinSize {
		return fmt.Errorf("%w: got %d", ErrTooSmall, len(p))
	}
	seen := make(map[string]bool, len(p))
	for i, c := range p {
		if strings.TrimSpace(c.Name) == "" {
			return fmt.Errorf("%w: entry %d", ErrEmptyName, i)
		}
		if seen[c.Name] {
			return fmt.Errorf("%w: %q", ErrDuplicateName, c.Name)
		}
		seen[c.Name] = true
	}
	return nil
}

// ParseHex parses "#RGB" or "#RRGGBB" into an opaque color.
func ParseHex(s string) (color.RGBA, error) {
	s = strings.TrimSpace(s)
	c, err := colorful.Hex(s)
	if err != nil {
		return color.RGBA{}, fmt.Errorf("palette: parse %q: %w", s, err)
	}
	r, g, b := c.RGB255()
	return rgb(r, g, b), nil
}
