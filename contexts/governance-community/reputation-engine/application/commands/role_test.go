package commands

import (
	"context"
	"errors"
	"testing"

	"quorum/contexts/governance-community/reputation-engine/domain/entities"
	domainerrors "quorum/contexts/governance-community/reputation-engine/domain/errors"
)

func TestClaimRoleUnlock(t *testing.T) {
	repo := newTestRepo()
	record := seedUser(repo, "alice")
	record.TotalScore = 12000
	repo.users["alice"] = record
	uc := newTestUseCase(repo)

	result, err := uc.ClaimRoleUnlock(context.Background(), "alice", 3)
	if err != nil {
		t.Fatalf("ClaimRoleUnlock() error = %v", err)
	}
	if result.Record.RoleLevel != 3 {
		t.Fatalf("RoleLevel = %d, want 3", result.Record.RoleLevel)
	}
	if len(result.NewBadges) != 1 || result.NewBadges[0] != entities.AchievementTopContributor {
		t.Fatalf("NewBadges = %v, want top contributor", result.NewBadges)
	}
	if !result.Record.HasAchievement(entities.AchievementTopContributor) {
		t.Fatal("milestone badge not on record")
	}
	if lastEventType(repo) != "reputation.role.claimed" {
		t.Fatalf("event type = %q", lastEventType(repo))
	}
}

func TestClaimRoleUnlockTopLevelBadge(t *testing.T) {
	repo := newTestRepo()
	record := seedUser(repo, "alice")
	record.TotalScore = 60000
	repo.users["alice"] = record
	uc := newTestUseCase(repo)

	result, err := uc.ClaimRoleUnlock(context.Background(), "alice", 5)
	if err != nil {
		t.Fatalf("ClaimRoleUnlock() error = %v", err)
	}
	if len(result.NewBadges) != 1 || result.NewBadges[0] != entities.AchievementCommunityBuilder {
		t.Fatalf("NewBadges = %v, want community builder", result.NewBadges)
	}
}

func TestClaimRoleUnlockIsOneWay(t *testing.T) {
	repo := newTestRepo()
	record := seedUser(repo, "alice")
	record.TotalScore = 12000
	record.RoleLevel = 3
	repo.users["alice"] = record
	uc := newTestUseCase(repo)

	for _, level := range []uint8{3, 2} {
		if _, err := uc.ClaimRoleUnlock(context.Background(), "alice", level); !errors.Is(err, domainerrors.ErrRoleRequirementsNotMet) {
			t.Fatalf("claim level %d: err = %v, want ErrRoleRequirementsNotMet", level, err)
		}
	}
	if repo.saveCalls != 0 {
		t.Fatal("rejected claim persisted")
	}
}

func TestClaimRoleUnlockScoreBelowThreshold(t *testing.T) {
	repo := newTestRepo()
	record := seedUser(repo, "alice")
	record.TotalScore = 9999
	repo.users["alice"] = record
	uc := newTestUseCase(repo)

	if _, err := uc.ClaimRoleUnlock(context.Background(), "alice", 3); !errors.Is(err, domainerrors.ErrRoleRequirementsNotMet) {
		t.Fatalf("err = %v, want ErrRoleRequirementsNotMet", err)
	}
}

func TestClaimRoleUnlockInvalidLevel(t *testing.T) {
	repo := newTestRepo()
	record := seedUser(repo, "alice")
	record.TotalScore = 100000
	repo.users["alice"] = record
	uc := newTestUseCase(repo)

	for _, level := range []uint8{0, 6} {
		if _, err := uc.ClaimRoleUnlock(context.Background(), "alice", level); !errors.Is(err, domainerrors.ErrInvalidRoleLevel) {
			t.Fatalf("claim level %d: err = %v, want ErrInvalidRoleLevel", level, err)
		}
	}
}
