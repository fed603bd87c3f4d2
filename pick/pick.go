// Package pick chooses the engine's move at computer-turn nodes.
package pick

import (
	"math/rand"

	"golang.org/x/net/context"

	"github.com/opendrill/bookdrill/book"
)

// Source is the randomness a selector draws from. *rand.Rand satisfies
// it; tests supply fixed sequences.
type Source interface {
	Float64() float64
}

// Selector picks one of a node's options.
type Selector interface {
	Select(ctx context.Context, opts []book.MoveOption) book.MoveOption
}

type Weighted struct {
	src Source
}

// NewWeighted returns a weighted selector drawing from a generator
// seeded with seed.
func NewWeighted(seed int64) *Weighted {
	return &Weighted{src: rand.New(rand.NewSource(seed))}
}

// NewWeightedSource returns a weighted selector drawing from src.
func NewWeightedSource(src Source) *Weighted {
	return &Weighted{src: src}
}

// Select draws an option with probability proportional to its weight.
// When the weights sum to zero or less the choice is uniform instead,
// so a malformed-but-loadable repertoire still produces a move. opts
// must be non-empty.
func (w *Weighted) Select(ctx context.Context, opts []book.MoveOption) book.MoveOption {
	var total float64
	for _, o := range opts {
		total += o.Weight
	}
	if total <= 0 {
		i := int(w.src.Float64() * float64(len(opts)))
		if i >= len(opts) {
			i = len(opts) - 1
		}
		return opts[i]
	}
	r := w.src.Float64() * total
	var cum float64
	for _, o := range opts {
		cum += o.Weight
		if cum > r {
			return o
		}
	}
	// Floating-point accumulation undershot the total.
	return opts[len(opts)-1]
}
