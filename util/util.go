package util

import (
	"strings"

	"golang.org/x/exp/constraints"
)

// Mod is the euclidean remainder: the result always has the sign of m.
func Mod[A constraints.Signed](a A, m A) A {
	r := a % m
	if r != 0 && (r < 0) != (m < 0) {
		r += m
	}
	return r
}

// FloorDiv rounds towards negative infinity, unlike the / operator.
func FloorDiv[A constraints.Signed](a A, b A) A {
	q := a / b
	if (a%b != 0) && ((a < 0) != (b < 0)) {
		q--
	}
	return q
}

func Abs[A constraints.Signed](a A) A {
	if a < 0 {
		return -a
	}
	return a
}

// RepeatSigned renders a signed count as repetitions of up (positive) or
// down (negative). Used for accidentals ("##", "bb") and qualities ("AA", "dd").
func RepeatSigned[A constraints.Signed](n A, up string, down string) string {
	if n > 0 {
		return strings.Repeat(up, int(n))
	}
	return strings.Repeat(down, int(-n))
}
