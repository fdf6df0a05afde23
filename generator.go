package bingo

import (
	"fmt"
	"maps"
	"math/rand/v2"
	"slices"
	"time"
)

// DefaultFreeLabel is the text placed on free-space cells.
const DefaultFreeLabel = "FREE"

// Generator fills a template with shuffled category words.
// A Generator is not safe for concurrent use (it owns a random source).
type Generator struct {
	rng       *rand.Rand
	freeLabel string
}

// GeneratorOption configures a Generator.
type GeneratorOption func(*Generator)

// WithRand sets the random source. Panics if r is nil (programmer error).
func WithRand(r *rand.Rand) GeneratorOption {
	if r == nil {
		panic("bingo: WithRand source must not be nil")
	}
	return func(g *Generator) {
		g.rng = r
	}
}

// WithSeed makes generation reproducible for a given seed.
func WithSeed(seed uint64) GeneratorOption {
	return func(g *Generator) {
		g.rng = rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
	}
}

// WithFreeLabel sets the text printed on free-space cells.
func WithFreeLabel(label string) GeneratorOption {
	return func(g *Generator) {
		g.freeLabel = label
	}
}

// NewGenerator creates a Generator seeded from the clock unless overridden.
func NewGenerator(opts ...GeneratorOption) *Generator {
	now := uint64(time.Now().UnixNano())
	g := &Generator{
		rng:       rand.New(rand.NewPCG(now, now>>1)),
		freeLabel: DefaultFreeLabel,
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// Generate produces exactly count independent boards shaped like t.
// Every board draws from a freshly shuffled copy of each pool; a category that
// runs out of words yields empty cells rather than an error.
func (g *Generator) Generate(t *Template, pools Pools, count int) ([]Board, error) {
	if t == nil || t.Rows() == 0 {
		return nil, ErrEmptyTemplate
	}
	if count < 0 {
		return nil, fmt.Errorf("%w: %d (must not be negative)", ErrInvalidCount, count)
	}

	boards := make([]Board, 0, count)
	for i := 0; i < count; i++ {
		boards = append(boards, g.generateOne(t, pools, i+1))
	}
	return boards, nil
}

// generateOne builds a single board from per-board working copies of the pools.
func (g *Generator) generateOne(t *Template, pools Pools, index int) Board {
	// Sorted order keeps seeded runs reproducible.
	piles := make(map[string]*pile, len(pools))
	for _, marker := range slices.Sorted(maps.Keys(pools)) {
		piles[marker] = &pile{words: g.shuffled(pools[marker].Words)}
	}

	cells := make([][]string, t.Rows())
	for i := range cells {
		row := make([]string, t.Cols())
		for j := range row {
			c := t.Cell(i, j)
			switch c.Kind {
			case CellCategory:
				row[j] = piles[c.Value].next()
			case CellFree:
				row[j] = g.freeLabel
			default:
				row[j] = c.Value
			}
		}
		cells[i] = row
	}
	return Board{Index: index, Cells: cells}
}

// shuffled returns a uniformly permuted copy of words.
func (g *Generator) shuffled(words []string) []string {
	cp := make([]string, len(words))
	copy(cp, words)
	g.rng.Shuffle(len(cp), func(i, j int) {
		cp[i], cp[j] = cp[j], cp[i]
	})
	return cp
}

// pile hands out words without replacement. A nil pile is an empty pool.
type pile struct {
	words []string
	pos   int
}

func (p *pile) next() string {
	if p == nil || p.pos >= len(p.words) {
		return ""
	}
	w := p.words[p.pos]
	p.pos++
	return w
}
