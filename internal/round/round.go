package round

import (
	"fmt"
	"image/color"
	"math/rand"
	"time"

	"color-game/internal/palette"
)

// OptionCount is the number of labeled buttons shown per round.
const OptionCount = 4

// Round is one guess cycle: the swatch color and the shuffled names offered for it.
// Options contains CorrectName exactly once.
type Round struct {
	CorrectName string
	CorrectRGB  color.RGBA
	Options     []string
}

// Generator draws rounds from a palette using its own RNG so a seed reproduces a whole game.
type Generator struct {
	palette palette.Palette
	rng     *rand.Rand
}

// NewGenerator returns a generator over p. Seed 0 uses the current time.
// The palette must hold at least OptionCount colors.
func NewGenerator(p palette.Palette, seed int64) (*Generator, error) {
	if err := p.Validate(); err != nil {
		return nil, fmt.Errorf("round generator: %w", err)
	}
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	own := make(palette.Palette, len(p))
	copy(own, p)
	return &Generator{palette: own, rng: rand.New(rand.NewSource(seed))}, nil
}

// Palette returns the colors rounds are drawn from.
func (g *Generator) Palette() palette.Palette {
	return g.palette
}

// Next picks a correct color uniformly, samples OptionCount-1 distinct distractors from the
// rest without replacement, and returns all names in uniformly shuffled order.
func (g *Generator) Next() Round {
	correct := g.palette[g.rng.Intn(len(g.palette))]

	rest := make([]string, 0, len(g.palette)-1)
	for _, c := range g.palette {
		if c.Name != correct.Name {
			rest = append(rest, c.Name)
		}
	}
	// Partial Fisher-Yates: the first OptionCount-1 slots become a uniform sample.
	for i := 0; i < OptionCount-1; i++ {
		j := i + g.rng.Intn(len(rest)-i)
		rest[i], rest[j] = rest[j], rest[i]
	}

	options := make([]string, 0, OptionCount)
	options = append(options, rest[:OptionCount-1]...)
	options = append(options, correct.Name)
	g.rng.Shuffle(len(options), func(i, j int) {
		options[i], options[j] = options[j], options[i]
	})

	return Round{
		CorrectName: correct.Name,
		CorrectRGB:  correct.RGB,
		Options:     options,
	}
}
