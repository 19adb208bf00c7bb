package render

import "math/rand"

// Default glyphs and separators.
const (
	DefaultFilled       = '■'
	DefaultOpen         = '□'
	DefaultGroupSpacing = "   "
	cellSpacing         = " "
	frame               = "+---------------------------------------------+"
)

// Option customizes a Renderer.
type Option func(*Renderer)

// WithGlyphs sets the runes drawn for filled and open contacts.
func WithGlyphs(filled, open rune) Option {
	return func(r *Renderer) {
		r.filled = filled
		r.open = open
	}
}

// WithGroupSpacing sets the separator between tiles of one group row.
func WithGroupSpacing(s string) Option {
	return func(r *Renderer) {
		r.groupSpacing = s
	}
}

// WithRand provides the RNG used to sample preview neighbours.
// Panics on nil; prefer WithSeed for reproducible runs.
func WithRand(rng *rand.Rand) Option {
	if rng == nil {
		panic("render: WithRand(nil)")
	}
	return func(r *Renderer) {
		r.rng = rng
	}
}

// WithSeed seeds a fresh RNG; seed 0 selects the fixed default seed.
func WithSeed(seed int64) Option {
	return func(r *Renderer) {
		r.rng = rngFromSeed(seed)
	}
}
