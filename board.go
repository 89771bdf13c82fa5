package slider

import (
	"strconv"
	"strings"
)

// Board is an immutable n×n sliding-tile configuration. Cells are stored
// row-major, one byte per tile, with 0 marking the blank. Boards compare by
// content and can be used directly as map keys.
type Board struct {
	size  int
	cells string
}

// NewBoard builds a Board from a flat row-major tile listing. It panics if
// tiles is not a permutation of 0..size*size-1: well-formedness is the
// caller's contract, and a malformed board is a programmer error rather
// than a runtime condition.
func NewBoard(size int, tiles []int) Board {
	area := size * size
	if size < 1 || size > 16 {
		panic("slider: size must be between 1 and 16")
	}
	if len(tiles) != area {
		panic("slider: board must hold exactly size*size tiles")
	}
	seen := make([]bool, area)
	cells := make([]byte, area)
	for i, tile := range tiles {
		if tile < 0 || tile >= area || seen[tile] {
			panic("slider: tiles must be a permutation of 0..size*size-1")
		}
		seen[tile] = true
		cells[i] = byte(tile)
	}
	return Board{size: size, cells: string(cells)}
}

// Goal returns the solved configuration for the given size: ascending tiles
// with the blank in the top-left cell.
func Goal(size int) Board {
	if size < 1 || size > 16 {
		panic("slider: size must be between 1 and 16")
	}
	cells := make([]byte, size*size)
	for i := range cells {
		cells[i] = byte(i)
	}
	return Board{size: size, cells: string(cells)}
}

// Size returns the board's side length.
func (b Board) Size() int { return b.size }

// Tile returns the value at flat row-major index i.
func (b Board) Tile(i int) int { return int(b.cells[i]) }

// Tiles returns a fresh copy of the flat tile listing.
func (b Board) Tiles() []int {
	tiles := make([]int, len(b.cells))
	for i := range tiles {
		tiles[i] = int(b.cells[i])
	}
	return tiles
}

// Solved reports whether the board is the goal configuration.
func (b Board) Solved() bool {
	for i := 0; i < len(b.cells); i++ {
		if b.cells[i] != byte(i) {
			return false
		}
	}
	return true
}

// Slide is one legal move: the board it produces and the value of the tile
// that slid into the blank.
type Slide struct {
	To   Board
	Tile int
}

// Neighbors returns every board reachable by exactly one slide, in the fixed
// scan order up, down, left, right. A corner blank yields 2 slides, an edge
// blank 3, an interior blank 4. The receiver is never mutated.
func (b Board) Neighbors() []Slide {
	blank := strings.IndexByte(b.cells, 0)
	row, col := blank/b.size, blank%b.size
	slides := make([]Slide, 0, 4)
	if row > 0 {
		slides = append(slides, b.slide(blank, blank-b.size))
	}
	if row < b.size-1 {
		slides = append(slides, b.slide(blank, blank+b.size))
	}
	if col > 0 {
		slides = append(slides, b.slide(blank, blank-1))
	}
	if col < b.size-1 {
		slides = append(slides, b.slide(blank, blank+1))
	}
	return slides
}

func (b Board) slide(blank, from int) Slide {
	cells := []byte(b.cells)
	cells[blank], cells[from] = cells[from], cells[blank]
	return Slide{To: Board{size: b.size, cells: string(cells)}, Tile: int(b.cells[from])}
}

// Apply slides the named tile into the blank and returns the resulting
// board. It reports false, returning the board unchanged, when the tile is
// not adjacent to the blank.
func (b Board) Apply(tile int) (Board, bool) {
	for _, s := range b.Neighbors() {
		if s.Tile == tile {
			return s.To, true
		}
	}
	return b, false
}

// Manhattan returns the summed L1 distance of every non-blank tile from its
// goal cell. Tile v belongs at flat index v, so the bound is admissible, and
// a single slide changes exactly one tile's distance by one, so it is also
// consistent.
func (b Board) Manhattan() int {
	total := 0
	for i := 0; i < len(b.cells); i++ {
		tile := int(b.cells[i])
		if tile == 0 {
			continue
		}
		total += abs(i/b.size-tile/b.size) + abs(i%b.size-tile%b.size)
	}
	return total
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

// String renders the board one row per line with the blank shown as "_".
func (b Board) String() string {
	var sb strings.Builder
	for i := 0; i < len(b.cells); i++ {
		if i > 0 {
			if i%b.size == 0 {
				sb.WriteByte('\n')
			} else {
				sb.WriteByte(' ')
			}
		}
		if b.cells[i] == 0 {
			sb.WriteByte('_')
		} else {
			sb.WriteString(strconv.Itoa(int(b.cells[i])))
		}
	}
	return sb.String()
}
