package entities

import "strings"

// AchievementType identifies a badge kind. The integer value is the bit
// position inside UserReputationRecord.Achievements and is persisted, so the
// mapping is versioned: never reorder or reuse positions.
type AchievementType uint8

const (
	AchievementFirstVote AchievementType = iota
	AchievementWeeklyStreak
	AchievementMonthlyStreak
	AchievementTopContributor
	AchievementConsistentVoter
	AchievementCategoryExpert
	AchievementSeasonWinner
	AchievementCommunityBuilder

	achievementTypeCount
)

func (a AchievementType) Valid() bool {
	return a < achievementTypeCount
}

func (a AchievementType) String() string {
	switch a {
	case AchievementFirstVote:
		return "first_vote"
	case AchievementWeeklyStreak:
		return "weekly_streak"
	case AchievementMonthlyStreak:
		return "monthly_streak"
	case AchievementTopContributor:
		return "top_contributor"
	case AchievementConsistentVoter:
		return "consistent_voter"
	case AchievementCategoryExpert:
		return "category_expert"
	case AchievementSeasonWinner:
		return "season_winner"
	case AchievementCommunityBuilder:
		return "community_builder"
	default:
		return "unknown"
	}
}

func ParseAchievementType(raw string) (AchievementType, bool) {
	for kind := AchievementType(0); kind < achievementTypeCount; kind++ {
		if strings.EqualFold(strings.TrimSpace(raw), kind.String()) {
			return kind, true
		}
	}
	return 0, false
}

// AllAchievementTypes returns every badge kind in bit-position order.
func AllAchievementTypes() []AchievementType {
	kinds := make([]AchievementType, 0, achievementTypeCount)
	for kind := AchievementType(0); kind < achievementTypeCount; kind++ {
		kinds = append(kinds, kind)
	}
	return kinds
}
