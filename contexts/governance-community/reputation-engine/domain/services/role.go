package services

import (
	"quorum/contexts/governance-community/reputation-engine/domain/entities"
	domainerrors "quorum/contexts/governance-community/reputation-engine/domain/errors"
)

// ResolveRoleLevel returns the highest level whose threshold the score meets,
// scanning from the top. Zero means no level unlocked.
func ResolveRoleLevel(totalScore uint64, thresholds []uint64) uint8 {
	for i := len(thresholds) - 1; i >= 0; i-- {
		if totalScore >= thresholds[i] {
			return uint8(i + 1)
		}
	}
	return 0
}

// CheckRoleClaim validates a user-initiated role claim: the requested level
// must be inside [1, len(thresholds)], the score must meet its threshold, and
// the stored level must still be below it. Claims are a one-way ratchet.
func CheckRoleClaim(record entities.UserReputationRecord, level uint8, thresholds []uint64) error {
	if level == 0 || int(level) > len(thresholds) {
		return domainerrors.ErrInvalidRoleLevel
	}
	if record.TotalScore < thresholds[level-1] {
		return domainerrors.ErrRoleRequirementsNotMet
	}
	if record.RoleLevel >= level {
		return domainerrors.ErrRoleRequirementsNotMet
	}
	return nil
}
