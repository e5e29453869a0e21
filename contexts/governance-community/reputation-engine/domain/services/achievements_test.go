package services

import (
	"testing"

	"quorum/contexts/governance-community/reputation-engine/domain/entities"
)

func TestEligibleForAchievementFirstVote(t *testing.T) {
	record := entities.UserReputationRecord{VotesCast: 1}
	if !EligibleForAchievement(record, entities.AchievementFirstVote) {
		t.Fatalf("first vote should qualify")
	}
	record.VotesCast = 2
	if EligibleForAchievement(record, entities.AchievementFirstVote) {
		t.Fatalf("only the first vote qualifies")
	}
}

func TestEligibleForAchievementConsistentVoter(t *testing.T) {
	record := entities.UserReputationRecord{VotesCast: 99}
	if EligibleForAchievement(record, entities.AchievementConsistentVoter) {
		t.Fatalf("99 votes must not qualify")
	}
	record.VotesCast = 100
	if !EligibleForAchievement(record, entities.AchievementConsistentVoter) {
		t.Fatalf("100 votes should qualify")
	}
}

func TestEligibleForAchievementCategoryExpert(t *testing.T) {
	var record entities.UserReputationRecord
	record.CategoryPoints[entities.CategoryTreasury.Index()] = 4999
	if EligibleForAchievement(record, entities.AchievementCategoryExpert) {
		t.Fatalf("4999 points must not qualify")
	}
	record.CategoryPoints[entities.CategoryTreasury.Index()] = 5000
	if !EligibleForAchievement(record, entities.AchievementCategoryExpert) {
		t.Fatalf("any category at 5000 should qualify")
	}
}

func TestEligibleForAchievementCommunityBuilder(t *testing.T) {
	var record entities.UserReputationRecord
	record.CategoryPoints[entities.CategoryGovernance.Index()] = 10000
	if EligibleForAchievement(record, entities.AchievementCommunityBuilder) {
		t.Fatalf("only the community category counts")
	}
	record.CategoryPoints[entities.CategoryCommunity.Index()] = 3000
	if !EligibleForAchievement(record, entities.AchievementCommunityBuilder) {
		t.Fatalf("3000 community points should qualify")
	}
}

func TestStreakAndManualBadgesNeverAutoEligible(t *testing.T) {
	record := entities.UserReputationRecord{
		VotesCast:     1000,
		CurrentStreak: 365,
		TotalScore:    1 << 40,
	}
	for _, kind := range []entities.AchievementType{
		entities.AchievementWeeklyStreak,
		entities.AchievementMonthlyStreak,
		entities.AchievementTopContributor,
		entities.AchievementSeasonWinner,
	} {
		if EligibleForAchievement(record, kind) {
			t.Fatalf("%s must not be stat-gated", kind)
		}
	}
}

func TestAchievementBonusPointsTable(t *testing.T) {
	cases := map[entities.AchievementType]uint64{
		entities.AchievementFirstVote:        50,
		entities.AchievementWeeklyStreak:     100,
		entities.AchievementMonthlyStreak:    500,
		entities.AchievementTopContributor:   1000,
		entities.AchievementConsistentVoter:  200,
		entities.AchievementCategoryExpert:   300,
		entities.AchievementSeasonWinner:     2000,
		entities.AchievementCommunityBuilder: 750,
	}
	for kind, want := range cases {
		if got := AchievementBonusPoints(kind); got != want {
			t.Fatalf("bonus for %s = %d, want %d", kind, got, want)
		}
	}
}
