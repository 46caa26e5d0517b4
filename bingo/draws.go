package bingo

import (
	"strconv"
	"strings"

	aoc "github.com/maisem/aoc2021"
)

// Draws is the sequence of numbers called out during a game. It is
// consumed once, in order, by Next.
type Draws struct {
	q aoc.Queue[int]
}

// ParseDraws parses a comma-separated list of non-negative integers.
func ParseDraws(s string) (*Draws, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, &ParseError{Kind: EmptyInput}
	}
	var nums []int
	for _, tok := range strings.Split(s, ",") {
		n, err := parseNum(strings.TrimSpace(tok))
		if err != nil {
			return nil, err
		}
		nums = append(nums, n)
	}
	return &Draws{q: aoc.NewQueue(nums...)}, nil
}

// Next returns the next drawn number. It reports false once every number
// has been returned.
func (d *Draws) Next() (int, bool) {
	return d.q.Pop()
}

// Len returns the number of draws left.
func (d *Draws) Len() int {
	return d.q.Len()
}

func parseNum(tok string) (int, error) {
	n, err := strconv.Atoi(tok)
	if err != nil {
		return 0, &ParseError{Kind: BadNumber, Token: tok, Err: err}
	}
	if n < 0 {
		return 0, &ParseError{Kind: BadNumber, Token: tok}
	}
	return n, nil
}
