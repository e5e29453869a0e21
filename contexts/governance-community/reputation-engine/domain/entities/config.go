package entities

import (
	domainerrors "quorum/contexts/governance-community/reputation-engine/domain/errors"
)

// WeightDenominator is the basis-point scale shared by weights and decay.
const WeightDenominator = 10000

// ConfigSnapshot is the immutable system configuration resolved once per
// operation. The core never mutates it.
type ConfigSnapshot struct {
	VotingCooldown      int64 // seconds between votes on the same target
	MinAccountAge       int64 // seconds before an account may vote
	DailyVoteLimit      uint8
	MinReputationToVote uint64
	CategoryWeights     [CategoryCount]uint16 // basis points, must sum to 10000
	RoleThresholds      []uint64              // strictly ascending
	DecayRateBps        uint16                // basis points per day of inactivity
	DecayEnabled        bool
}

// Validate enforces the configuration bounds.
func (c ConfigSnapshot) Validate() error {
	var sum uint32
	for _, w := range c.CategoryWeights {
		sum += uint32(w)
	}
	if sum != WeightDenominator {
		return domainerrors.ErrInvalidCategoryWeights
	}
	if len(c.RoleThresholds) == 0 {
		return domainerrors.ErrInvalidRoleThresholds
	}
	for i := 1; i < len(c.RoleThresholds); i++ {
		if c.RoleThresholds[i] <= c.RoleThresholds[i-1] {
			return domainerrors.ErrInvalidRoleThresholds
		}
	}
	if c.VotingCooldown < 300 || c.VotingCooldown > 86400 {
		return domainerrors.ErrInvalidConfiguration
	}
	if c.MinAccountAge < 86400 || c.MinAccountAge > 2592000 {
		return domainerrors.ErrInvalidConfiguration
	}
	if c.DailyVoteLimit == 0 || c.DailyVoteLimit > 100 {
		return domainerrors.ErrInvalidConfiguration
	}
	if c.MinReputationToVote > 10000 {
		return domainerrors.ErrInvalidConfiguration
	}
	if c.DecayRateBps > 1000 {
		return domainerrors.ErrInvalidConfiguration
	}
	return nil
}
