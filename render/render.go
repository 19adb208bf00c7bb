package render

import (
	"math/rand"
	"strings"

	"github.com/katalvlaran/edgetile/adjacency"
	"github.com/katalvlaran/edgetile/classify"
	"github.com/katalvlaran/edgetile/tile"
)

// blockRows lists, per output row, the ring positions drawn left to right;
// -1 marks the tile centre.
var blockRows = [3][3]int{
	{0, 1, 2},
	{7, -1, 3},
	{6, 5, 4},
}

// Renderer draws tiles and sheets. It is not safe for concurrent use
// because sampling advances its RNG.
type Renderer struct {
	filled, open rune
	groupSpacing string
	rng          *rand.Rand
}

// New returns a Renderer with default glyphs, spacing and seed, then applies opts.
func New(opts ...Option) *Renderer {
	r := &Renderer{
		filled:       DefaultFilled,
		open:         DefaultOpen,
		groupSpacing: DefaultGroupSpacing,
	}
	for _, opt := range opts {
		opt(r)
	}
	if r.rng == nil {
		r.rng = rngFromSeed(0)
	}
	return r
}

// Tile draws t as three lines of three glyphs separated by single spaces.
func (r *Renderer) Tile(t tile.Tile) string {
	var b strings.Builder
	for y, row := range blockRows {
		if y > 0 {
			b.WriteByte('\n')
		}
		for x, pos := range row {
			if x > 0 {
				b.WriteString(cellSpacing)
			}
			if pos >= 0 && t.Bit(pos) {
				b.WriteRune(r.filled)
			} else {
				b.WriteRune(r.open)
			}
		}
	}
	return b.String()
}

// blank is an empty cell the size of one tile block.
func (r *Renderer) blank() string {
	line := strings.Repeat(" ", 2*len(blockRows[0])-1)
	return line + "\n" + line + "\n" + line
}

// Join places two multi-line blocks side by side, line by line, with
// spacing in between. Extra lines of the taller block are dropped.
func Join(a, b, spacing string) string {
	la, lb := strings.Split(a, "\n"), strings.Split(b, "\n")
	n := len(la)
	if len(lb) < n {
		n = len(lb)
	}
	out := make([]string, n)
	for i := 0; i < n; i++ {
		out[i] = la[i] + spacing + lb[i]
	}
	return strings.Join(out, "\n")
}

// Groups draws one row of tile blocks per group, separated by blank lines.
// Empty groups are skipped.
func (r *Renderer) Groups(groups []classify.Group) string {
	blocks := make([]string, 0, len(groups))
	for _, g := range groups {
		if len(g.Members) == 0 {
			continue
		}
		row := r.Tile(g.Members[0])
		for _, t := range g.Members[1:] {
			row = Join(row, r.Tile(t), r.groupSpacing)
		}
		blocks = append(blocks, row)
	}
	return strings.Join(blocks, "\n\n")
}

// preview draws a sampled neighbour in direction d, or a blank cell when
// no tile fits.
func (r *Renderer) preview(n adjacency.Neighborhood, d adjacency.Direction) string {
	t, ok := Sample(n.Get(d), r.rng)
	if !ok {
		return r.blank()
	}
	return r.Tile(t)
}

// Neighborhood draws the framed 3×3 preview of t: t in the centre and one
// sampled candidate above, right, below and left of it.
func (r *Renderer) Neighborhood(t tile.Tile, n adjacency.Neighborhood) string {
	north := r.preview(n, adjacency.North)
	east := r.preview(n, adjacency.East)
	south := r.preview(n, adjacency.South)
	west := r.preview(n, adjacency.West)

	row := func(left, mid, right string) string {
		return Join(Join(left, mid, cellSpacing), right, cellSpacing)
	}
	return strings.Join([]string{
		frame,
		row(r.blank(), north, r.blank()),
		row(west, r.Tile(t), east),
		row(r.blank(), south, r.blank()),
		frame,
	}, "\n")
}

// Adjacency draws the preview of every tile of tb in ascending order,
// separated by blank lines.
func (r *Renderer) Adjacency(tb *adjacency.Table) string {
	tiles := tb.Tiles().Tiles()
	blocks := make([]string, 0, len(tiles))
	for _, t := range tiles {
		n, _ := tb.Neighbors(t)
		blocks = append(blocks, r.Neighborhood(t, n))
	}
	return strings.Join(blocks, "\n\n")
}
