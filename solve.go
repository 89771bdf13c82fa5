package slider

import (
	"container/heap"
	"context"
	"errors"
	"time"

	"github.com/rs/zerolog/log"
)

// ErrNoSolution is returned by Search when the frontier empties before the
// goal is reached, i.e. the board's parity puts the goal in the other half
// of the permutation space.
var ErrNoSolution = errors.New("no solution found")

// Result contains the outcome of a search.
type Result struct {
	Moves    []int // tile values, in the order they slide into the blank
	Expanded int   // entries popped from the frontier
	Found    bool
}

// Options defines parameters for the search.
type Options struct {
	CheckInterval int
}

// Option is a function that modifies Options.
type Option func(*Options)

// WithCheckInterval sets how many expansions pass between context polls.
func WithCheckInterval(n int) Option {
	return func(options *Options) { options.CheckInterval = n }
}

const defaultCheckInterval = 1 << 12

// Solve finds a minimal sequence of slides taking the given board to the
// goal [0, 1, ..., size*size-1]. The grid is the board's tiles in row-major
// order with 0 for the blank; each returned move is the value of the tile
// that slides into the blank. It returns an empty slice when the board is
// already solved, or when the reachable space is exhausted without finding
// the goal. Pure function of its inputs; panics on a malformed grid, see
// NewBoard.
func Solve(size int, grid []int) []int {
	result, err := Search(context.Background(), NewBoard(size, grid))
	if err != nil {
		return []int{}
	}
	return result.Moves
}

// Search runs A* from start to the goal board, polling ctx between batches
// of expansions. The first time the goal leaves the frontier its path is
// optimal: the Manhattan bound is admissible and consistent, and priority
// ties always resolve to the earlier-discovered entry, so repeated searches
// of the same board return identical move sequences.
func Search(ctx context.Context, start Board, options ...Option) (Result, error) {
	searchOptions := Options{CheckInterval: defaultCheckInterval}
	for _, option := range options {
		option(&searchOptions)
	}
	if searchOptions.CheckInterval < 1 {
		searchOptions.CheckInterval = defaultCheckInterval
	}

	began := time.Now()
	s := newSearcher(start)
	for !s.done {
		if s.expanded%searchOptions.CheckInterval == 0 {
			select {
			case <-ctx.Done():
				return Result{Expanded: s.expanded}, ctx.Err()
			default:
			}
		}
		s.step()
	}

	log.Debug().
		Int("expanded", s.expanded).
		Int("frontier", s.open.Len()).
		Bool("found", s.found).
		Dur("elapsed", time.Since(began)).
		Msg("search finished")

	if !s.found {
		return Result{Expanded: s.expanded}, ErrNoSolution
	}
	return Result{Moves: s.moves, Expanded: s.expanded, Found: true}, nil
}

// searcher owns the frontier and best-cost table for a single search. Stale
// frontier entries are never removed: the g-cost of a popped board is read
// from bestCost, so an entry whose cost was improved after insertion
// re-expands with the improved cost and can only rediscover same-or-worse
// paths.
type searcher struct {
	goal     Board
	open     frontier
	bestCost map[Board]int
	seq      uint64
	expanded int
	done     bool
	found    bool
	moves    []int
}

func newSearcher(start Board) *searcher {
	s := &searcher{
		goal:     Goal(start.Size()),
		open:     make(frontier, 0),
		bestCost: map[Board]int{start: 0},
	}
	heap.Init(&s.open)
	if start == s.goal {
		s.done = true
		s.found = true
		s.moves = []int{}
		return s
	}
	heap.Push(&s.open, &frontierEntry{priority: start.Manhattan(), board: start})
	return s
}

// step pops and expands a single frontier entry. It returns the board that
// was expanded, or false when the frontier was already empty.
func (s *searcher) step() (Board, bool) {
	if s.done {
		return Board{}, false
	}
	if s.open.Len() == 0 {
		s.done = true
		return Board{}, false
	}

	current := heap.Pop(&s.open).(*frontierEntry)
	s.expanded++

	if current.board == s.goal {
		s.done = true
		s.found = true
		s.moves = current.moves
		return current.board, true
	}

	currentCost := s.bestCost[current.board]
	for _, slide := range current.board.Neighbors() {
		newCost := currentCost + 1
		if previous, known := s.bestCost[slide.To]; known && newCost >= previous {
			continue
		}
		s.bestCost[slide.To] = newCost
		moves := make([]int, len(current.moves)+1)
		copy(moves, current.moves)
		moves[len(current.moves)] = slide.Tile
		s.seq++
		heap.Push(&s.open, &frontierEntry{
			priority: newCost + slide.To.Manhattan(),
			seq:      s.seq,
			board:    slide.To,
			moves:    moves,
		})
	}
	return current.board, true
}
