package services

import (
	"quorum/contexts/governance-community/reputation-engine/domain/entities"
)

const secondsPerDay = 86400

// DaysInactive returns whole days elapsed between last activity and now,
// floored at zero. Partial days never count.
func DaysInactive(lastActivity int64, now int64) int64 {
	days := (now - lastActivity) / secondsPerDay
	if days < 0 {
		return 0
	}
	return days
}

// DecayFactor computes the multiplicative decay factor in basis points for
// the given inactivity window. The per-day loop truncates each iteration;
// that truncation accumulates differently than a closed-form power and is
// deliberate, so it must not be replaced with one.
func DecayFactor(lastActivity int64, now int64, decayRateBps uint16) uint64 {
	days := DaysInactive(lastActivity, now)
	if days == 0 {
		return entities.WeightDenominator
	}
	perDay := entities.WeightDenominator - uint64(decayRateBps)
	factor := uint64(entities.WeightDenominator)
	for i := int64(0); i < days; i++ {
		factor = factor * perDay / entities.WeightDenominator
		if factor == 0 {
			break
		}
	}
	return factor
}

// ApplyDecayFactor scales a point total by a basis-point factor.
func ApplyDecayFactor(points uint64, factor uint64) uint64 {
	return points * factor / entities.WeightDenominator
}
