package main

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	aoc "github.com/maisem/aoc2021"
	"github.com/maisem/aoc2021/aoctest"
)

func TestSamples(t *testing.T) {
	aoctest.Samples(t, 2021, source, &solver{})
}

func TestIncreases(t *testing.T) {
	tests := []struct {
		in   []int
		want int
	}{
		{nil, 0},
		{[]int{1}, 0},
		{[]int{1, 2, 2, 3}, 2},
		{[]int{3, 2, 1}, 0},
	}
	for _, tt := range tests {
		if got := increases(tt.in); got != tt.want {
			t.Errorf("increases(%v) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestRating(t *testing.T) {
	nums := aoc.Grid[int]{
		{0, 0, 1, 0, 0},
		{1, 1, 1, 1, 0},
		{1, 0, 1, 1, 0},
		{1, 0, 1, 1, 1},
		{1, 0, 1, 0, 1},
		{0, 1, 1, 1, 1},
		{0, 0, 1, 1, 1},
		{1, 1, 1, 0, 0},
		{1, 0, 0, 0, 0},
		{1, 1, 0, 0, 1},
		{0, 0, 0, 1, 0},
		{0, 1, 0, 1, 0},
	}
	if got, want := rating(nums, true), 23; got != want {
		t.Errorf("oxygen rating = %v, want %v", got, want)
	}
	if got, want := rating(nums, false), 10; got != want {
		t.Errorf("co2 rating = %v, want %v", got, want)
	}
}

func TestRatingSharedBits(t *testing.T) {
	// Every number starts with 01, so the first two positions must not
	// drop anything for either rating.
	nums := aoc.Grid[int]{
		{0, 1, 0, 0},
		{0, 1, 0, 1},
	}
	if got, want := rating(nums, true), 5; got != want {
		t.Errorf("oxygen rating = %v, want %v", got, want)
	}
	if got, want := rating(nums, false), 4; got != want {
		t.Errorf("co2 rating = %v, want %v", got, want)
	}
}

func TestParseCommand(t *testing.T) {
	tests := []struct {
		line    string
		want    command
		wantErr bool
	}{
		{"forward 5", command{verb: "forward", n: 5}, false},
		{"up 3", command{verb: "up", n: 3}, false},
		{"down  8", command{verb: "down", n: 8}, false},
		{"backward 2", command{}, true},
		{"forward", command{}, true},
		{"forward 1 2", command{}, true},
		{"down x", command{}, true},
	}
	for _, tt := range tests {
		got, err := parseCommand(tt.line)
		if (err != nil) != tt.wantErr {
			t.Errorf("parseCommand(%q) error = %v, wantErr %v", tt.line, err, tt.wantErr)
			continue
		}
		if got != tt.want {
			t.Errorf("parseCommand(%q) = %+v, want %+v", tt.line, got, tt.want)
		}
	}
}

func TestParseVent(t *testing.T) {
	tests := []struct {
		line    string
		want    aoc.Segment
		wantErr bool
	}{
		{"0,9 -> 5,9", aoc.Segment{A: aoc.Pt{X: 0, Y: 9}, B: aoc.Pt{X: 5, Y: 9}}, false},
		{"8,0 -> 0,8", aoc.Segment{A: aoc.Pt{X: 8, Y: 0}, B: aoc.Pt{X: 0, Y: 8}}, false},
		{"3,3 -> 3,3", aoc.Segment{A: aoc.Pt{X: 3, Y: 3}, B: aoc.Pt{X: 3, Y: 3}}, false},
		{"0,0 -> 2,1", aoc.Segment{}, true},
		{"1,5 -> 7,0", aoc.Segment{}, true},
	}
	for _, tt := range tests {
		got, err := parseVent(tt.line)
		if (err != nil) != tt.wantErr {
			t.Errorf("parseVent(%q) error = %v, wantErr %v", tt.line, err, tt.wantErr)
			continue
		}
		if diff := cmp.Diff(tt.want, got); diff != "" {
			t.Errorf("parseVent(%q) mismatch (-want +got):\n%s", tt.line, diff)
		}
	}
}

func TestMostCommon(t *testing.T) {
	tests := []struct {
		bits []int
		want int
	}{
		{[]int{1, 0}, 1},
		{[]int{0, 0, 1}, 0},
		{[]int{1, 1, 0}, 1},
	}
	for _, tt := range tests {
		if got := mostCommon(tt.bits); got != tt.want {
			t.Errorf("mostCommon(%v) = %v, want %v", tt.bits, got, tt.want)
		}
	}
}
