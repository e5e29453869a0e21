package entities

import (
	domainerrors "quorum/contexts/governance-community/reputation-engine/domain/errors"
)

// UserReputationRecord is the per-participant reputation ledger entry.
// Timestamps are Unix seconds; day-bucket arithmetic on them is load-bearing
// for streaks, decay, and rate limiting.
type UserReputationRecord struct {
	UserID         string
	CategoryPoints [CategoryCount]uint64
	RawVotes       [CategoryCount]uint64
	SeasonalPoints [CategoryCount]uint64
	TotalScore     uint64
	RoleLevel      uint8
	Achievements   uint64
	CurrentStreak  uint32
	LongestStreak  uint32
	VotesCast      uint64
	LastActivity   int64
	CreatedAt      int64
	LastUpdated    int64
}

// NewUserReputationRecord creates a zeroed record for a new participant.
func NewUserReputationRecord(userID string, now int64) UserReputationRecord {
	return UserReputationRecord{
		UserID:       userID,
		LastActivity: now,
		CreatedAt:    now,
		LastUpdated:  now,
	}
}

func (r UserReputationRecord) HasAchievement(kind AchievementType) bool {
	return r.Achievements&(1<<uint64(kind)) != 0
}

// AwardAchievement sets the badge bit. Setting an already-set bit is a no-op.
func (r *UserReputationRecord) AwardAchievement(kind AchievementType) {
	r.Achievements |= 1 << uint64(kind)
}

// RevokeAchievement clears the badge bit.
func (r *UserReputationRecord) RevokeAchievement(kind AchievementType) error {
	if !r.HasAchievement(kind) {
		return domainerrors.ErrAchievementNotHeld
	}
	r.Achievements &^= 1 << uint64(kind)
	return nil
}

// AchievementsHeld lists held badges in bit-position order.
func (r UserReputationRecord) AchievementsHeld() []AchievementType {
	var held []AchievementType
	for _, kind := range AllAchievementTypes() {
		if r.HasAchievement(kind) {
			held = append(held, kind)
		}
	}
	return held
}
