package services

import (
	"errors"
	"testing"

	"quorum/contexts/governance-community/reputation-engine/domain/entities"
	domainerrors "quorum/contexts/governance-community/reputation-engine/domain/errors"
)

var testThresholds = []uint64{1000, 5000, 10000, 25000, 50000}

func TestResolveRoleLevel(t *testing.T) {
	cases := []struct {
		score uint64
		want  uint8
	}{
		{0, 0},
		{999, 0},
		{1000, 1},
		{4999, 1},
		{5000, 2},
		{10000, 3},
		{25000, 4},
		{50000, 5},
		{1 << 40, 5},
	}
	for _, tc := range cases {
		if got := ResolveRoleLevel(tc.score, testThresholds); got != tc.want {
			t.Fatalf("ResolveRoleLevel(%d) = %d, want %d", tc.score, got, tc.want)
		}
	}
}

func TestResolveRoleLevelEmptyThresholds(t *testing.T) {
	if got := ResolveRoleLevel(1<<40, nil); got != 0 {
		t.Fatalf("got %d, want 0 with no thresholds", got)
	}
}

func TestCheckRoleClaimValidation(t *testing.T) {
	record := entities.UserReputationRecord{TotalScore: 10000, RoleLevel: 2}

	if err := CheckRoleClaim(record, 0, testThresholds); !errors.Is(err, domainerrors.ErrInvalidRoleLevel) {
		t.Fatalf("level 0: got %v", err)
	}
	if err := CheckRoleClaim(record, 6, testThresholds); !errors.Is(err, domainerrors.ErrInvalidRoleLevel) {
		t.Fatalf("level out of range: got %v", err)
	}
}

func TestCheckRoleClaimRatchet(t *testing.T) {
	record := entities.UserReputationRecord{TotalScore: 10000, RoleLevel: 2}

	if err := CheckRoleClaim(record, 3, testThresholds); err != nil {
		t.Fatalf("eligible claim rejected: %v", err)
	}

	// Stored level already at or above the requested one.
	record.RoleLevel = 3
	if err := CheckRoleClaim(record, 3, testThresholds); !errors.Is(err, domainerrors.ErrRoleRequirementsNotMet) {
		t.Fatalf("repeat claim: got %v", err)
	}
	if err := CheckRoleClaim(record, 2, testThresholds); !errors.Is(err, domainerrors.ErrRoleRequirementsNotMet) {
		t.Fatalf("downgrade claim: got %v", err)
	}
}

func TestCheckRoleClaimScoreTooLow(t *testing.T) {
	record := entities.UserReputationRecord{TotalScore: 9999, RoleLevel: 2}
	if err := CheckRoleClaim(record, 3, testThresholds); !errors.Is(err, domainerrors.ErrRoleRequirementsNotMet) {
		t.Fatalf("got %v", err)
	}
}
