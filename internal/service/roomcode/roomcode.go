package roomcode

import (
	"math/rand"
	"strings"
)

// Alphabet deliberately drops 0/O and 1/I so codes survive being read
// aloud or typed from a projector.
const (
	Alphabet = "ABCDEFGHJKLMNPQRSTUVWXYZ23456789"
	Length   = 6
)

// rawLimit caps incoming codes before any normalization. Anything longer
// is client garbage and will simply miss on lookup.
const rawLimit = 32

type Generator struct {
	rnd *rand.Rand
}

type GeneratorOption func(*Generator)

// WithRand replaces the randomness source, used by tests for
// deterministic draws.
func WithRand(rnd *rand.Rand) GeneratorOption {
	return func(g *Generator) {
		g.rnd = rnd
	}
}

func New(opts ...GeneratorOption) *Generator {
	g := &Generator{}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// Generate draws one memoryless candidate code. Collision with a live
// room is the caller's problem; generation keeps no state.
func (g *Generator) Generate() string {
	var builder strings.Builder
	builder.Grow(Length)

	for range Length {
		builder.WriteByte(Alphabet[g.intn(len(Alphabet))])
	}

	return builder.String()
}

func (g *Generator) intn(n int) int {
	if g.rnd != nil {
		return g.rnd.Intn(n)
	}
	return rand.Intn(n)
}

// Normalize folds a client-supplied code to canonical form: uppercase,
// capped, alphabet-only, first Length characters. A malformed code comes
// out shorter than Length and will never match a live room.
func Normalize(raw string) string {
	if len(raw) > rawLimit {
		raw = raw[:rawLimit]
	}
	raw = strings.ToUpper(strings.TrimSpace(raw))

	var builder strings.Builder
	builder.Grow(Length)
	for i := 0; i < len(raw) && builder.Len() < Length; i++ {
		if strings.IndexByte(Alphabet, raw[i]) >= 0 {
			builder.WriteByte(raw[i])
		}
	}
	return builder.String()
}
