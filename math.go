package aoc

import (
	"fmt"
	"strconv"
	"strings"

	"golang.org/x/exp/constraints"
)

// Bits returns the binary digits of line, most significant first.
func Bits(line string) ([]int, error) {
	if line == "" {
		return nil, fmt.Errorf("no bits")
	}
	out := make([]int, 0, len(line))
	for _, c := range line {
		switch c {
		case '0', '1':
			out = append(out, int(c-'0'))
		default:
			return nil, fmt.Errorf("bad bit %q in %q", c, line)
		}
	}
	return out, nil
}

// Number is a type that can be used in math functions.
type Number interface {
	constraints.Float | constraints.Integer
}

// Sum returns the sum of the numbers.
func Sum[T Number](nums ...T) T {
	var sum T
	for _, v := range nums {
		sum += v
	}
	return sum
}

// CountIf returns how many of vs satisfy f.
func CountIf[T any](vs []T, f func(T) bool) int {
	n := 0
	for _, v := range vs {
		if f(v) {
			n++
		}
	}
	return n
}

// Windows returns the sums of every size-wide window of nums.
func Windows[T Number](nums []T, size int) []T {
	if size <= 0 || len(nums) < size {
		return nil
	}
	out := make([]T, 0, len(nums)-size+1)
	for i := 0; i+size <= len(nums); i++ {
		out = append(out, Sum(nums[i:i+size]...))
	}
	return out
}

// FromBits returns the number whose big-endian binary digits are bits.
func FromBits(bits []int) int {
	n := 0
	for _, b := range bits {
		n = n<<1 | b&1
	}
	return n
}

// AbsDiff returns the absolute difference between x and y.
func AbsDiff[T Number](x, y T) T {
	v := x - y
	if v < 0 {
		v = -v
	}
	return v
}

// Int returns the int value of the string.
func Int(s string) int {
	return MustGet(strconv.Atoi(strings.TrimSpace(s)))
}

// Ints returns the int values of the strings.
func Ints(s ...string) []int {
	var out []int
	for _, v := range s {
		out = append(out, Int(v))
	}
	return out
}
