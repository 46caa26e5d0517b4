package bingo

import (
	"fmt"

	aoc "github.com/maisem/aoc2021"
	"tailscale.com/util/set"
)

// Result is a board's win.
type Result struct {
	Board       int // index of the board in input order
	Draw        int // the number whose marking produced the win
	UnmarkedSum int
}

// Answer returns the puzzle score of the win.
func (r Result) Answer() int {
	return r.Draw * r.UnmarkedSum
}

func (r Result) String() string {
	return fmt.Sprintf("board %d on %d: %d*%d=%d", r.Board, r.Draw, r.Draw, r.UnmarkedSum, r.Answer())
}

// Game is a set of boards and the draws to play on them. A Game can be
// played once, by either FirstWinner or LastWinner.
type Game struct {
	Boards []*Board
	draws  *Draws
	played bool
}

// NewGame returns a game playing draws on boards.
func NewGame(draws *Draws, boards []*Board) *Game {
	return &Game{Boards: boards, draws: draws}
}

// ParseGame parses a draw line followed by blank-line separated boards.
func ParseGame(input string) (*Game, error) {
	blocks := aoc.Blocks(input)
	if len(blocks) == 0 {
		return nil, &ParseError{Kind: EmptyInput}
	}
	draws, err := ParseDraws(blocks[0])
	if err != nil {
		return nil, err
	}
	boards := make([]*Board, 0, len(blocks)-1)
	for i, blk := range blocks[1:] {
		b, err := ParseBoard(blk)
		if err != nil {
			return nil, fmt.Errorf("board %d: %w", i, err)
		}
		boards = append(boards, b)
	}
	return NewGame(draws, boards), nil
}

// play calls onDraw with each drawn number after it has been marked on
// every board, until onDraw reports done.
func (g *Game) play(onDraw func(n int) (r Result, done bool)) (Result, error) {
	if g.played {
		return Result{}, ErrDrawsConsumed
	}
	g.played = true
	if len(g.Boards) == 0 {
		return Result{}, ErrNoBoards
	}
	for {
		n, ok := g.draws.Next()
		if !ok {
			return Result{}, ErrNoWinner
		}
		if r, done := onDraw(n); done {
			return r, nil
		}
	}
}

func (g *Game) result(i, n int) Result {
	return Result{Board: i, Draw: n, UnmarkedSum: g.Boards[i].UnmarkedSum()}
}

// FirstWinner plays until a board completes and returns its win. Boards
// are marked in input order before any is checked, so on a tie the
// earliest board wins.
func (g *Game) FirstWinner() (Result, error) {
	return g.play(func(n int) (Result, bool) {
		for _, b := range g.Boards {
			b.Mark(n)
		}
		for i, b := range g.Boards {
			if b.IsCompleted() {
				return g.result(i, n), true
			}
		}
		return Result{}, false
	})
}

// LastWinner plays until every board has completed and returns the win
// of the board being examined when the last one completes.
func (g *Game) LastWinner() (Result, error) {
	won := set.Set[int]{}
	return g.play(func(n int) (Result, bool) {
		for i, b := range g.Boards {
			b.Mark(n)
			if !won.Contains(i) && b.IsCompleted() {
				won.Add(i)
			}
			if len(won) == len(g.Boards) {
				return g.result(i, n), true
			}
		}
		return Result{}, false
	})
}
