package main

import (
	_ "embed"
	"fmt"
	"log"
	"strconv"
	"strings"

	aoc "github.com/maisem/aoc2021"
	"github.com/maisem/aoc2021/bingo"
)

func main() {
	aoc.Run(2021, source, &solver{})
}

//go:embed main.go
var source []byte

type solver struct {
	*aoc.Puzzle
}

func increases(nums []int) int {
	n := 0
	for i := 1; i < len(nums); i++ {
		if nums[i] > nums[i-1] {
			n++
		}
	}
	return n
}

/*
want=7

199
200
208
210
200
207
240
269
260
263
*/
func (s solver) D1p1() any {
	return increases(aoc.Ints(s.Lines()...))
}

// want=5
func (s solver) D1p2() any {
	return increases(aoc.Windows(aoc.Ints(s.Lines()...), 3))
}

type command struct {
	verb string
	n    int
}

func parseCommand(line string) (command, error) {
	f := strings.Fields(line)
	if len(f) != 2 {
		return command{}, fmt.Errorf("bad command: %q", line)
	}
	switch f[0] {
	case "forward", "down", "up":
	default:
		return command{}, fmt.Errorf("unknown command %q", f[0])
	}
	n, err := strconv.Atoi(f[1])
	if err != nil {
		return command{}, fmt.Errorf("bad command %q: %w", line, err)
	}
	return command{verb: f[0], n: n}, nil
}

/*
want=150

forward 5
down 5
forward 8
up 3
down 8
forward 2
*/
func (s solver) D2p1() any {
	var x, depth int
	s.ForLines(func(line string) {
		c := aoc.MustGet(parseCommand(line))
		switch c.verb {
		case "forward":
			x += c.n
		case "down":
			depth += c.n
		case "up":
			depth -= c.n
		}
	})
	return x * depth
}

// want=900
func (s solver) D2p2() any {
	var x, depth, aim int
	s.ForLines(func(line string) {
		c := aoc.MustGet(parseCommand(line))
		switch c.verb {
		case "forward":
			x += c.n
			depth += aim * c.n
		case "down":
			aim += c.n
		case "up":
			aim -= c.n
		}
	})
	return x * depth
}

func (s solver) bits() aoc.Grid[int] {
	var g aoc.Grid[int]
	for _, line := range s.Lines() {
		row, err := aoc.Bits(strings.TrimSpace(line))
		if err != nil {
			log.Fatal(err)
		}
		if len(g) > 0 && len(row) != len(g[0]) {
			log.Fatalf("line %q has %d bits, want %d", line, len(row), len(g[0]))
		}
		g = append(g, row)
	}
	return g
}

// mostCommon returns 1 if at least half of bits are 1.
func mostCommon(bits []int) int {
	if 2*aoc.Sum(bits...) >= len(bits) {
		return 1
	}
	return 0
}

/*
want=198

00100
11110
10110
10111
10101
01111
00111
11100
10000
11001
00010
01010
*/
func (s solver) D3p1() any {
	var gamma, epsilon []int
	for _, col := range s.bits().Transpose() {
		b := mostCommon(col)
		gamma = append(gamma, b)
		epsilon = append(epsilon, 1-b)
	}
	return aoc.FromBits(gamma) * aoc.FromBits(epsilon)
}

// rating repeatedly drops the numbers whose bit at the current position
// is not the most (or least) common one, until one number is left. A
// position where every number has the same bit drops nothing.
func rating(nums aoc.Grid[int], most bool) int {
	for pos := 0; len(nums) > 1 && pos < len(nums[0]); pos++ {
		col := make([]int, len(nums))
		for i, n := range nums {
			col[i] = n[pos]
		}
		if ones := aoc.Sum(col...); ones == 0 || ones == len(col) {
			continue
		}
		keep := mostCommon(col)
		if !most {
			keep = 1 - keep
		}
		var next aoc.Grid[int]
		for _, n := range nums {
			if n[pos] == keep {
				next = append(next, n)
			}
		}
		nums = next
	}
	if len(nums) != 1 {
		log.Fatalf("rating left %d numbers, want 1", len(nums))
	}
	return aoc.FromBits(nums[0])
}

// want=230
func (s solver) D3p2() any {
	g := s.bits()
	oxygen, co2 := rating(g, true), rating(g, false)
	s.Debugf("oxygen=%d co2=%d", oxygen, co2)
	return oxygen * co2
}

func (s solver) game() *bingo.Game {
	return aoc.MustGet(bingo.ParseGame(string(s.Input())))
}

/*
want=4512

7,4,9,5,11,17,23,2,0,14,21,24,10,16,13,6,15,25,12,22,18,20,8,19,3,26,1

22 13 17 11  0
 8  2 23  4 24
21  9 14 16  7
 6 10  3 18  5
 1 12 20 15 19

 3 15  0  2 22
 9 18 13 17  5
19  8  7 25 23
20 11 10 24  4
14 21 16 12  6

14 21 17 24  4
10 16 15  9 19
18  8 23 26 20
22 11 13  6  5
 2  0 12  3  7
*/
func (s solver) D4p1() any {
	g := s.game()
	r := aoc.MustGet(g.FirstWinner())
	s.Debugf("%v\n%v", r, g.Boards[r.Board])
	return r.Answer()
}

// want=1924
func (s solver) D4p2() any {
	g := s.game()
	r := aoc.MustGet(g.LastWinner())
	s.Debugf("%v\n%v", r, g.Boards[r.Board])
	return r.Answer()
}

// parseVent parses a vent line. Only horizontal, vertical and 45 degree
// lines are valid.
func parseVent(line string) (aoc.Segment, error) {
	seg := aoc.ParseSegment(line)
	if !seg.IsStraight() && !seg.IsDiagonal() {
		return aoc.Segment{}, fmt.Errorf("segment %q is neither straight nor diagonal", line)
	}
	return seg, nil
}

// overlaps draws the segments accepted by keep on a grid and returns how
// many points are covered at least twice.
func (s solver) overlaps(keep func(aoc.Segment) bool) int {
	var segs []aoc.Segment
	var size aoc.Pt
	for _, line := range s.Lines() {
		seg := aoc.MustGet(parseVent(line))
		if !keep(seg) {
			continue
		}
		segs = append(segs, seg)
		m := seg.Max()
		size = aoc.Pt{X: max(size.X, m.X+1), Y: max(size.Y, m.Y+1)}
	}
	s.Debug(len(segs), "segments on a", size.X, "x", size.Y, "grid")
	g := aoc.MakeGrid[int](size.X, size.Y)
	for _, seg := range segs {
		seg.Points(func(p aoc.Pt) bool {
			g.Set(p, g.At(p)+1)
			return true
		})
	}
	return g.CountIf(func(n int) bool { return n >= 2 })
}

/*
want=5

0,9 -> 5,9
8,0 -> 0,8
9,4 -> 3,4
2,2 -> 2,1
7,0 -> 7,4
6,4 -> 2,0
0,9 -> 2,9
3,4 -> 1,4
0,0 -> 8,8
5,5 -> 8,2
*/
func (s solver) D5p1() any {
	return s.overlaps(aoc.Segment.IsStraight)
}

// want=12
func (s solver) D5p2() any {
	return s.overlaps(func(aoc.Segment) bool { return true })
}
