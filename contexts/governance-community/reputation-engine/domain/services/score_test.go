package services

import (
	"errors"
	"math"
	"testing"

	"quorum/contexts/governance-community/reputation-engine/domain/entities"
	domainerrors "quorum/contexts/governance-community/reputation-engine/domain/errors"
)

func TestIsqrtFloorValues(t *testing.T) {
	cases := []struct {
		input uint64
		want  uint64
	}{
		{0, 0},
		{1, 1},
		{2, 1},
		{3, 1},
		{4, 2},
		{8, 2},
		{9, 3},
		{49, 7},
		{50, 7},
		{63, 7},
		{64, 8},
		{10000, 100},
		{1 << 32, 1 << 16},
		{(1 << 32) + 1, 1 << 16},
		{math.MaxUint64, 4294967295},
	}
	for _, tc := range cases {
		if got := Isqrt(tc.input); got != tc.want {
			t.Fatalf("Isqrt(%d) = %d, want %d", tc.input, got, tc.want)
		}
	}
}

func TestIsqrtNeverExceedsExactRoot(t *testing.T) {
	for n := uint64(0); n < 5000; n++ {
		root := Isqrt(n)
		if root*root > n {
			t.Fatalf("Isqrt(%d) = %d overshoots", n, root)
		}
		if (root+1)*(root+1) <= n {
			t.Fatalf("Isqrt(%d) = %d undershoots", n, root)
		}
	}
}

func TestQuadraticScale(t *testing.T) {
	if got := QuadraticScale(0); got != 0 {
		t.Fatalf("scale of zero: got %d", got)
	}
	if got := QuadraticScale(50); got != 700 {
		t.Fatalf("scale of 50: got %d, want 700", got)
	}
	// Doubling points must less than double the scaled value.
	if QuadraticScale(200) >= 2*QuadraticScale(100) {
		t.Fatalf("quadratic dampening lost: scale(200)=%d scale(100)=%d",
			QuadraticScale(200), QuadraticScale(100))
	}
}

func TestComputeScoreSingleCategoryVote(t *testing.T) {
	weights := [entities.CategoryCount]uint16{3000, 3000, 2000, 2000}
	var points [entities.CategoryCount]uint64
	points[entities.CategoryGovernance.Index()] = 50

	// isqrt(50)=7, scaled 700, weighted 700*3000, summed then /10000.
	if got := ComputeScore(points, weights); got != 210 {
		t.Fatalf("score = %d, want 210", got)
	}
}

func TestComputeScoreSumsAllCategories(t *testing.T) {
	weights := [entities.CategoryCount]uint16{2500, 2500, 2500, 2500}
	points := [entities.CategoryCount]uint64{100, 100, 100, 100}

	// Each category scales to 1000; 4*1000*2500/10000 = 1000.
	if got := ComputeScore(points, weights); got != 1000 {
		t.Fatalf("score = %d, want 1000", got)
	}
}

func TestComputeScoreZeroPoints(t *testing.T) {
	weights := [entities.CategoryCount]uint16{3000, 3000, 2000, 2000}
	var points [entities.CategoryCount]uint64
	if got := ComputeScore(points, weights); got != 0 {
		t.Fatalf("score = %d, want 0", got)
	}
}

func TestSafeAddPointsOverflow(t *testing.T) {
	if _, err := SafeAddPoints(math.MaxUint64, 1); !errors.Is(err, domainerrors.ErrNumericalOverflow) {
		t.Fatalf("expected overflow error, got %v", err)
	}
	sum, err := SafeAddPoints(math.MaxUint64-5, 5)
	if err != nil || sum != math.MaxUint64 {
		t.Fatalf("expected exact max, got %d err=%v", sum, err)
	}
}

func TestSafeSubtractPointsFloor(t *testing.T) {
	if _, err := SafeSubtractPoints(3, 4); !errors.Is(err, domainerrors.ErrNegativeReputation) {
		t.Fatalf("expected negative reputation error, got %v", err)
	}
	rest, err := SafeSubtractPoints(4, 4)
	if err != nil || rest != 0 {
		t.Fatalf("expected zero, got %d err=%v", rest, err)
	}
}
