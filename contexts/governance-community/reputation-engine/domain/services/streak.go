package services

import (
	"quorum/contexts/governance-community/reputation-engine/domain/entities"
)

// StreakBonus returns the participation bonus for a streak length, in raw
// points. Fixed step table; values are persisted side effects, do not tune.
func StreakBonus(streak uint32) uint64 {
	switch {
	case streak < 7:
		return 0
	case streak < 14:
		return 100
	case streak < 30:
		return 300
	case streak < 90:
		return 500
	case streak < 180:
		return 800
	default:
		return 1000
	}
}

// StreakOutcome reports what a streak transition did to the record.
type StreakOutcome struct {
	Updated   bool
	Extended  bool
	Reset     bool
	Bonus     uint64
	NewBadges []entities.AchievementType
}

// AdvanceStreak applies the daily streak transition to the record, keyed on
// the day bucket of LastActivity versus now:
//   - same day: no-op, idempotent within a day
//   - exactly one day later: streak extends, bonus applies to the Governance
//     accumulators, badges trigger at exactly 7 and exactly 30
//   - larger gap: streak resets to 1, no bonus
//
// The exact-equality badge triggers mean a streak that jumps past 7 or 30
// without landing on them never earns the badge from this transition; a
// reconciliation pass owns back-filling.
func AdvanceStreak(record *entities.UserReputationRecord, now int64) StreakOutcome {
	currentDay := now / secondsPerDay
	lastDay := record.LastActivity / secondsPerDay

	if lastDay == currentDay {
		return StreakOutcome{}
	}

	outcome := StreakOutcome{Updated: true}
	switch {
	case lastDay == currentDay-1:
		record.CurrentStreak++
		if record.CurrentStreak > record.LongestStreak {
			record.LongestStreak = record.CurrentStreak
		}
		outcome.Extended = true
		outcome.Bonus = StreakBonus(record.CurrentStreak)

		if record.CurrentStreak == 7 && !record.HasAchievement(entities.AchievementWeeklyStreak) {
			record.AwardAchievement(entities.AchievementWeeklyStreak)
			outcome.NewBadges = append(outcome.NewBadges, entities.AchievementWeeklyStreak)
		}
		if record.CurrentStreak == 30 && !record.HasAchievement(entities.AchievementMonthlyStreak) {
			record.AwardAchievement(entities.AchievementMonthlyStreak)
			outcome.NewBadges = append(outcome.NewBadges, entities.AchievementMonthlyStreak)
		}
	default:
		record.CurrentStreak = 1
		outcome.Reset = true
	}

	if outcome.Bonus > 0 {
		record.CategoryPoints[entities.CategoryGovernance.Index()] += outcome.Bonus
		record.RawVotes[entities.CategoryGovernance.Index()] += outcome.Bonus
	}

	record.LastActivity = now
	record.LastUpdated = now
	return outcome
}
