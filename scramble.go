package slider

import "lukechampine.com/frand"

// Scramble walks the given number of random legal slides backwards from the
// goal and returns the resulting board. The walk never undoes the slide it
// just made, and every board it produces is solvable in at most steps moves.
func Scramble(size, steps int) Board {
	board := Goal(size)
	lastTile := -1
	for i := 0; i < steps; i++ {
		slides := board.Neighbors()
		if lastTile >= 0 {
			kept := slides[:0]
			for _, s := range slides {
				if s.Tile != lastTile {
					kept = append(kept, s)
				}
			}
			slides = kept
		}
		if len(slides) == 0 {
			// a 1×1 board has no legal slides
			break
		}
		chosen := slides[frand.Intn(len(slides))]
		board = chosen.To
		lastTile = chosen.Tile
	}
	return board
}
