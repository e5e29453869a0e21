package services

import (
	"quorum/contexts/governance-community/reputation-engine/domain/entities"
)

const (
	consistentVoterThreshold  = 100
	categoryExpertThreshold   = 5000
	communityBuilderThreshold = 3000
)

// EligibleForAchievement evaluates the pure stat predicate for the four
// stat-gated badge kinds. Streak badges trigger inside the streak transition
// and the remaining kinds are awarded explicitly, so they always report false
// here.
func EligibleForAchievement(record entities.UserReputationRecord, kind entities.AchievementType) bool {
	switch kind {
	case entities.AchievementFirstVote:
		return record.VotesCast == 1
	case entities.AchievementConsistentVoter:
		return record.VotesCast >= consistentVoterThreshold
	case entities.AchievementCategoryExpert:
		for _, points := range record.CategoryPoints {
			if points >= categoryExpertThreshold {
				return true
			}
		}
		return false
	case entities.AchievementCommunityBuilder:
		return record.CategoryPoints[entities.CategoryCommunity.Index()] >= communityBuilderThreshold
	default:
		return false
	}
}

// StatGatedAchievements lists the badge kinds EligibleForAchievement covers,
// in bit-position order.
func StatGatedAchievements() []entities.AchievementType {
	return []entities.AchievementType{
		entities.AchievementFirstVote,
		entities.AchievementConsistentVoter,
		entities.AchievementCategoryExpert,
		entities.AchievementCommunityBuilder,
	}
}

// AchievementBonusPoints is the Governance-category bonus granted on an
// explicit admin award. Values are part of persisted history, do not tune.
func AchievementBonusPoints(kind entities.AchievementType) uint64 {
	switch kind {
	case entities.AchievementFirstVote:
		return 50
	case entities.AchievementWeeklyStreak:
		return 100
	case entities.AchievementMonthlyStreak:
		return 500
	case entities.AchievementTopContributor:
		return 1000
	case entities.AchievementConsistentVoter:
		return 200
	case entities.AchievementCategoryExpert:
		return 300
	case entities.AchievementSeasonWinner:
		return 2000
	case entities.AchievementCommunityBuilder:
		return 750
	default:
		return 0
	}
}
