// Package bingo plays giant squid bingo: numbers are drawn one at a time
// and marked on every 5x5 board until a row or column is complete.
package bingo

import (
	"fmt"
	"slices"
	"strings"

	"tailscale.com/util/deephash"
)

const (
	Size  = 5
	Cells = Size * Size
)

// Cell is one square of a board.
type Cell struct {
	Pos    int // 0..24, row-major
	Value  int
	Marked bool
}

func (c Cell) String() string {
	if c.Marked {
		return fmt.Sprintf("*%d*", c.Value)
	}
	return fmt.Sprint(c.Value)
}

// Board is a 5x5 grid stored row-major. Row r holds cells [5r, 5r+5) and
// column c holds cells c, c+5, ..., c+20.
type Board struct {
	cells [Cells]Cell
}

// ParseBoard parses a block of whitespace-separated numbers into a board.
// Runs of spaces and line breaks are all treated as separators.
func ParseBoard(s string) (*Board, error) {
	fields := strings.Fields(s)
	if len(fields) != Cells {
		return nil, &ParseError{Kind: BadCount, Count: len(fields)}
	}
	b := new(Board)
	for i, f := range fields {
		n, err := parseNum(f)
		if err != nil {
			return nil, err
		}
		b.cells[i] = Cell{Pos: i, Value: n}
	}
	return b, nil
}

// Mark marks the first cell holding v. It does nothing if no cell holds v.
func (b *Board) Mark(v int) {
	for i := range b.cells {
		if b.cells[i].Value == v {
			b.cells[i].Marked = true
			return
		}
	}
}

// Row returns a copy of the cells of row r.
func (b *Board) Row(r int) []Cell {
	return slices.Clone(b.row(r))
}

func (b *Board) row(r int) []Cell {
	return b.cells[r*Size : r*Size+Size]
}

// Col returns the cells of column c.
func (b *Board) Col(c int) []Cell {
	out := make([]Cell, 0, Size)
	for i := c; i < Cells; i += Size {
		out = append(out, b.cells[i])
	}
	return out
}

// Cell returns the cell at position i.
func (b *Board) Cell(i int) Cell {
	return b.cells[i]
}

func allMarked(cells []Cell) bool {
	for _, c := range cells {
		if !c.Marked {
			return false
		}
	}
	return true
}

// IsCompleted reports whether any row or column is fully marked.
func (b *Board) IsCompleted() bool {
	for i := 0; i < Size; i++ {
		if allMarked(b.row(i)) || allMarked(b.Col(i)) {
			return true
		}
	}
	return false
}

// UnmarkedSum returns the sum of the values of all unmarked cells.
func (b *Board) UnmarkedSum() int {
	sum := 0
	for _, c := range b.cells {
		if !c.Marked {
			sum += c.Value
		}
	}
	return sum
}

// Hash returns a hash of the board's values and marks.
func (b *Board) Hash() deephash.Sum {
	return deephash.Hash(&b.cells)
}

func (b *Board) String() string {
	var sb strings.Builder
	for r := 0; r < Size; r++ {
		for i, c := range b.row(r) {
			if i > 0 {
				sb.WriteByte(' ')
			}
			fmt.Fprintf(&sb, "%4s", c)
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}
