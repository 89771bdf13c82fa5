package slider

import (
	"context"
	"os"
	"testing"

	"github.com/matryer/is"
	"github.com/rs/zerolog"
)

func TestMain(m *testing.M) {
	zerolog.SetGlobalLevel(zerolog.WarnLevel)
	os.Exit(m.Run())
}

// bfsDistance is the optimality oracle: plain breadth-first distance from
// board to the goal, with no heuristic involved.
func bfsDistance(board Board) (int, bool) {
	if board.Solved() {
		return 0, true
	}
	dist := map[Board]int{board: 0}
	queue := []Board{board}
	for len(queue) > 0 {
		current := queue[0]
		queue = queue[1:]
		for _, slide := range current.Neighbors() {
			if _, seen := dist[slide.To]; seen {
				continue
			}
			dist[slide.To] = dist[current] + 1
			if slide.To.Solved() {
				return dist[slide.To], true
			}
			queue = append(queue, slide.To)
		}
	}
	return 0, false
}

// replay applies moves in order and reports whether they reach the goal.
func replay(board Board, moves []int) bool {
	for _, tile := range moves {
		next, ok := board.Apply(tile)
		if !ok {
			return false
		}
		board = next
	}
	return board.Solved()
}

func TestSolveAlreadySolved(t *testing.T) {
	is := is.New(t)
	for size := 1; size <= 4; size++ {
		is.Equal(Solve(size, Goal(size).Tiles()), []int{})
	}
}

func TestSolveSingleSlide(t *testing.T) {
	is := is.New(t)
	is.Equal(Solve(2, []int{1, 0, 2, 3}), []int{1})
	is.Equal(Solve(2, []int{2, 1, 0, 3}), []int{2})
}

func TestSolveEightPuzzleFixture(t *testing.T) {
	is := is.New(t)
	tiles := []int{1, 2, 3, 4, 0, 5, 6, 7, 8}
	board := NewBoard(3, tiles)

	want, solvable := bfsDistance(board)
	is.True(solvable)

	moves := Solve(3, tiles)
	is.Equal(len(moves), want)
	is.True(replay(board, moves))
}

func TestSolveEveryTwoByTwo(t *testing.T) {
	is := is.New(t)
	for _, tiles := range permutations(4) {
		board := NewBoard(2, tiles)
		want, solvable := bfsDistance(board)
		moves := Solve(2, tiles)
		if !solvable {
			is.Equal(moves, []int{}) // wrong parity exhausts to an empty path
			continue
		}
		is.Equal(len(moves), want)
		is.True(replay(board, moves))
	}
}

func TestSolveUnsolvableParity(t *testing.T) {
	is := is.New(t)
	is.Equal(Solve(2, []int{0, 2, 1, 3}), []int{})

	if testing.Short() {
		t.Skip("3×3 unsolvable board exhausts 181440 states")
	}
	// goal with tiles 7 and 8 swapped: an odd permutation
	is.Equal(Solve(3, []int{0, 1, 2, 3, 4, 5, 6, 8, 7}), []int{})
}

func TestSolveDeterminism(t *testing.T) {
	is := is.New(t)
	tiles := []int{1, 0, 4, 6, 3, 2, 7, 8, 5}

	first := Solve(3, tiles)
	is.True(replay(NewBoard(3, tiles), first))
	for i := 0; i < 5; i++ {
		is.Equal(Solve(3, tiles), first)
	}
}

func TestSolveOptimalOnScrambles(t *testing.T) {
	is := is.New(t)
	for i := 0; i < 20; i++ {
		board := Scramble(3, 14)
		want, solvable := bfsDistance(board)
		is.True(solvable)
		is.True(want <= 14)

		moves := Solve(3, board.Tiles())
		is.Equal(len(moves), want)
		is.True(replay(board, moves))
	}
}

func TestSearchReportsResult(t *testing.T) {
	is := is.New(t)
	board := NewBoard(3, []int{1, 0, 4, 6, 3, 2, 7, 8, 5})

	result, err := Search(context.Background(), board)
	is.NoErr(err)
	is.True(result.Found)
	is.True(result.Expanded > 0)
	is.True(replay(board, result.Moves))
}

func TestSearchNoSolution(t *testing.T) {
	is := is.New(t)
	result, err := Search(context.Background(), NewBoard(2, []int{0, 2, 1, 3}))
	is.Equal(err, ErrNoSolution)
	is.True(!result.Found)
	is.True(result.Expanded > 0)
}

func TestSearchCancelled(t *testing.T) {
	is := is.New(t)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := Search(ctx, NewBoard(2, []int{1, 0, 2, 3}), WithCheckInterval(1))
	is.Equal(err, context.Canceled)
}

func permutations(n int) [][]int {
	tiles := make([]int, n)
	for i := range tiles {
		tiles[i] = i
	}
	var out [][]int
	var recurse func(k int)
	recurse = func(k int) {
		if k == n {
			out = append(out, append([]int(nil), tiles...))
			return
		}
		for i := k; i < n; i++ {
			tiles[k], tiles[i] = tiles[i], tiles[k]
			recurse(k + 1)
			tiles[k], tiles[i] = tiles[i], tiles[k]
		}
	}
	recurse(0)
	return out
}

func BenchmarkSolveEightPuzzle(b *testing.B) {
	tiles := []int{1, 0, 4, 6, 3, 2, 7, 8, 5}
	for i := 0; i < b.N; i++ {
		Solve(3, tiles)
	}
}
