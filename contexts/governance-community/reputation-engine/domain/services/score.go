package services

import (
	"quorum/contexts/governance-community/reputation-engine/domain/entities"
	domainerrors "quorum/contexts/governance-community/reputation-engine/domain/errors"
)

// Isqrt returns the floor integer square root of n. Newton iteration keeps
// every intermediate within uint64 for all inputs, unlike a naive binary
// search whose mid*mid overflows past 2^32.
func Isqrt(n uint64) uint64 {
	if n < 2 {
		return n
	}
	x := n
	y := (x + 1) / 2
	for y < x {
		x = y
		y = (x + n/x) / 2
	}
	return x
}

// QuadraticScale dampens a raw point total: isqrt(points) * 100. Doubling
// points less than doubles the scaled value, which is the anti-plutocracy
// mechanism behind the whole scoreboard.
func QuadraticScale(points uint64) uint64 {
	if points == 0 {
		return 0
	}
	return Isqrt(points) * 100
}

// ComputeScore maps per-category point totals and a basis-point weight vector
// to the single total score: sum(quadraticScale(points[i]) * weights[i]) / 10000.
// Pure and total for all inputs; the scaled value of a full uint64 category
// (~4.3e11) times the maximum weight stays well inside uint64.
func ComputeScore(points [entities.CategoryCount]uint64, weights [entities.CategoryCount]uint16) uint64 {
	var total uint64
	for i := 0; i < entities.CategoryCount; i++ {
		total += QuadraticScale(points[i]) * uint64(weights[i])
	}
	return total / entities.WeightDenominator
}

// SafeAddPoints adds with overflow detection.
func SafeAddPoints(current uint64, addition uint64) (uint64, error) {
	sum := current + addition
	if sum < current {
		return 0, domainerrors.ErrNumericalOverflow
	}
	return sum, nil
}

// SafeSubtractPoints subtracts, rejecting results below zero.
func SafeSubtractPoints(current uint64, subtraction uint64) (uint64, error) {
	if subtraction > current {
		return 0, domainerrors.ErrNegativeReputation
	}
	return current - subtraction, nil
}
