package entities

import (
	"errors"
	"reflect"
	"testing"

	domainerrors "quorum/contexts/governance-community/reputation-engine/domain/errors"
)

func TestNewUserReputationRecordStartsZeroed(t *testing.T) {
	record := NewUserReputationRecord("user-1", 1_700_000_000)

	if record.UserID != "user-1" {
		t.Fatalf("UserID = %q, want %q", record.UserID, "user-1")
	}
	if record.LastActivity != 1_700_000_000 || record.CreatedAt != 1_700_000_000 || record.LastUpdated != 1_700_000_000 {
		t.Fatalf("timestamps not initialized: %+v", record)
	}
	if record.TotalScore != 0 || record.Achievements != 0 || record.CurrentStreak != 0 || record.VotesCast != 0 {
		t.Fatalf("counters not zeroed: %+v", record)
	}
	for i := 0; i < CategoryCount; i++ {
		if record.CategoryPoints[i] != 0 || record.RawVotes[i] != 0 || record.SeasonalPoints[i] != 0 {
			t.Fatalf("category arrays not zeroed: %+v", record)
		}
	}
}

func TestAwardAchievementIsIdempotent(t *testing.T) {
	record := NewUserReputationRecord("user-1", 0)

	record.AwardAchievement(AchievementFirstVote)
	if !record.HasAchievement(AchievementFirstVote) {
		t.Fatal("badge not set after award")
	}
	before := record.Achievements

	record.AwardAchievement(AchievementFirstVote)
	if record.Achievements != before {
		t.Fatalf("repeated award changed bitset: %b != %b", record.Achievements, before)
	}
}

func TestAwardAchievementUsesDistinctBits(t *testing.T) {
	record := NewUserReputationRecord("user-1", 0)

	record.AwardAchievement(AchievementWeeklyStreak)
	record.AwardAchievement(AchievementSeasonWinner)

	if record.HasAchievement(AchievementFirstVote) {
		t.Fatal("unawarded badge reported as held")
	}
	if !record.HasAchievement(AchievementWeeklyStreak) || !record.HasAchievement(AchievementSeasonWinner) {
		t.Fatalf("awarded badges not held: %b", record.Achievements)
	}
}

func TestRevokeAchievement(t *testing.T) {
	record := NewUserReputationRecord("user-1", 0)
	record.AwardAchievement(AchievementConsistentVoter)
	record.AwardAchievement(AchievementCategoryExpert)

	if err := record.RevokeAchievement(AchievementConsistentVoter); err != nil {
		t.Fatalf("revoke held badge: %v", err)
	}
	if record.HasAchievement(AchievementConsistentVoter) {
		t.Fatal("badge still held after revoke")
	}
	if !record.HasAchievement(AchievementCategoryExpert) {
		t.Fatal("revoke cleared an unrelated badge")
	}

	err := record.RevokeAchievement(AchievementConsistentVoter)
	if !errors.Is(err, domainerrors.ErrAchievementNotHeld) {
		t.Fatalf("revoke missing badge: err = %v, want ErrAchievementNotHeld", err)
	}
}

func TestAchievementsHeldOrder(t *testing.T) {
	record := NewUserReputationRecord("user-1", 0)
	record.AwardAchievement(AchievementCommunityBuilder)
	record.AwardAchievement(AchievementFirstVote)
	record.AwardAchievement(AchievementMonthlyStreak)

	got := record.AchievementsHeld()
	want := []AchievementType{AchievementFirstVote, AchievementMonthlyStreak, AchievementCommunityBuilder}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("AchievementsHeld() = %v, want %v", got, want)
	}
}

func TestParseAchievementType(t *testing.T) {
	for _, kind := range AllAchievementTypes() {
		parsed, ok := ParseAchievementType(kind.String())
		if !ok || parsed != kind {
			t.Fatalf("ParseAchievementType(%q) = %v, %v", kind.String(), parsed, ok)
		}
	}
	if parsed, ok := ParseAchievementType("  Season_Winner "); !ok || parsed != AchievementSeasonWinner {
		t.Fatalf("ParseAchievementType with padding/case = %v, %v", parsed, ok)
	}
	if _, ok := ParseAchievementType("participation_trophy"); ok {
		t.Fatal("unknown badge name parsed")
	}
}

func TestParseCategory(t *testing.T) {
	cases := map[string]Category{
		"governance":  CategoryGovernance,
		"Development": CategoryDevelopment,
		" community ": CategoryCommunity,
		"TREASURY":    CategoryTreasury,
	}
	for raw, want := range cases {
		got, ok := ParseCategory(raw)
		if !ok || got != want {
			t.Fatalf("ParseCategory(%q) = %v, %v, want %v", raw, got, ok, want)
		}
	}
	if _, ok := ParseCategory("marketing"); ok {
		t.Fatal("unknown category parsed")
	}
}
