// Package aoctest checks aoc solvers against the samples in their doc
// comments.
package aoctest

import (
	"fmt"
	"testing"

	aoc "github.com/maisem/aoc2021"
)

// Samples runs every D{day}p{part} method of slvr in sample mode and
// reports a test failure for each answer that differs from the want= line
// of its doc comment. Methods without a sample are skipped. src is the
// source of the file declaring the methods.
func Samples(t *testing.T, year int, src []byte, slvr any) {
	t.Helper()
	for _, r := range aoc.SampleRuns(year, src, slvr) {
		t.Run(r.Name, func(t *testing.T) {
			if r.Want == "" {
				t.Skipf("no sample for %s", r.Name)
			}
			if got := fmt.Sprint(r.Solve()); got != r.Want {
				t.Errorf("%s(sample) = %v, want %v", r.Name, got, r.Want)
			}
		})
	}
}
