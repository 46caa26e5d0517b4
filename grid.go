package aoc

import (
	"log"
	"strings"

	"golang.org/x/exp/constraints"
)

// Grid is a rectangular grid indexed as g[y][x].
type Grid[T any] [][]T

func (g Grid[T]) At(p Pt) T {
	return g[p.Y][p.X]
}

func (g Grid[T]) Set(p Pt, v T) {
	g[p.Y][p.X] = v
}

func MakeGrid[T any](x, y int) Grid[T] {
	out := make(Grid[T], y)
	for i := range out {
		out[i] = make([]T, x)
	}
	return out
}

func (g Grid[T]) TransposeInto(out Grid[T]) {
	size := g.Size()
	for x := 0; x < size.X; x++ {
		for y := 0; y < size.Y; y++ {
			out[x][y] = g[y][x]
		}
	}
}

// Transpose returns a new grid whose rows are the columns of g.
func (g Grid[T]) Transpose() Grid[T] {
	size := g.Size()
	out := MakeGrid[T](size.Y, size.X)
	g.TransposeInto(out)
	return out
}

func (g Grid[T]) Size() Pt {
	if len(g) == 0 {
		return Pt{}
	}
	return Pt{len(g[0]), len(g)}
}

// CountIf returns the number of cells for which f returns true.
func (g Grid[T]) CountIf(f func(T) bool) int {
	n := 0
	for _, row := range g {
		n += CountIf(row, f)
	}
	return n
}

// Segment is a line segment between two points.
type Segment struct {
	A, B Pt
}

// ParseSegment parses a segment of the form "x1,y1 -> x2,y2".
func ParseSegment(s string) Segment {
	a, b, ok := strings.Cut(s, "->")
	if !ok {
		log.Fatalf("bad segment: %q", s)
	}
	return Segment{A: ParsePt(a), B: ParsePt(b)}
}

// IsStraight reports whether the segment is horizontal or vertical.
func (s Segment) IsStraight() bool {
	return s.A.X == s.B.X || s.A.Y == s.B.Y
}

// IsDiagonal reports whether the segment is at exactly 45 degrees.
func (s Segment) IsDiagonal() bool {
	return s.A != s.B && AbsDiff(s.A.X, s.B.X) == AbsDiff(s.A.Y, s.B.Y)
}

// Points calls f for every point on the segment, both ends included.
// Only straight and 45 degree segments are walked exactly.
func (s Segment) Points(f func(Pt) (keepGoing bool)) {
	p := s.A
	for {
		if !f(p) || p == s.B {
			return
		}
		p = p.Toward(s.B)
	}
}

// Max returns the component-wise maximum of the segment's ends.
func (s Segment) Max() Pt {
	return Pt{max(s.A.X, s.B.X), max(s.A.Y, s.B.Y)}
}

type Pt = Pt2[int]

type Pt2[T constraints.Signed] struct {
	X, Y T
}

// ParsePt parses a point of the form "x,y".
func ParsePt(s string) Pt {
	x, y, ok := strings.Cut(s, ",")
	if !ok {
		log.Fatalf("bad point: %q", s)
	}
	return Pt{Int(x), Int(y)}
}

// Toward returns a point moving from p to b in max 1 step in the X
// and/or Y direction.
func (p Pt2[T]) Toward(b Pt2[T]) Pt2[T] {
	p1 := p
	if b.X < p.X {
		p1.X--
	} else if b.X > p.X {
		p1.X++
	}
	if b.Y < p.Y {
		p1.Y--
	} else if b.Y > p.Y {
		p1.Y++
	}
	return p1
}
