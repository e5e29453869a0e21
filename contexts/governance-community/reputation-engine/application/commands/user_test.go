package commands

import (
	"context"
	"errors"
	"strings"
	"testing"

	"quorum/contexts/governance-community/reputation-engine/domain/entities"
	domainerrors "quorum/contexts/governance-community/reputation-engine/domain/errors"
)

func TestInitializeUser(t *testing.T) {
	repo := newTestRepo()
	uc := newTestUseCase(repo)

	record, err := uc.InitializeUser(context.Background(), "  alice  ")
	if err != nil {
		t.Fatalf("InitializeUser() error = %v", err)
	}
	if record.UserID != "alice" {
		t.Fatalf("UserID = %q, want trimmed alice", record.UserID)
	}
	if record.CreatedAt != testNow.Unix() || record.LastActivity != testNow.Unix() {
		t.Fatalf("timestamps = %d/%d, want %d", record.CreatedAt, record.LastActivity, testNow.Unix())
	}
	if lastEventType(repo) != "reputation.user.initialized" {
		t.Fatalf("event type = %q", lastEventType(repo))
	}

	if _, err := uc.InitializeUser(context.Background(), "alice"); !errors.Is(err, domainerrors.ErrUserExists) {
		t.Fatalf("duplicate init: err = %v, want ErrUserExists", err)
	}
}

func TestInitializeUserBlankID(t *testing.T) {
	uc := newTestUseCase(newTestRepo())
	if _, err := uc.InitializeUser(context.Background(), "   "); !errors.Is(err, domainerrors.ErrInvalidRequest) {
		t.Fatalf("err = %v, want ErrInvalidRequest", err)
	}
}

func TestAdjustReputationPositive(t *testing.T) {
	repo := newTestRepo()
	seedUser(repo, "alice")
	uc := newTestUseCase(repo)

	record, err := uc.AdjustReputation(context.Background(), AdjustReputationCommand{
		UserID:   "alice",
		Category: entities.CategoryDevelopment,
		Delta:    400,
		Reason:   "bounty payout correction",
	})
	if err != nil {
		t.Fatalf("AdjustReputation() error = %v", err)
	}

	idx := entities.CategoryDevelopment.Index()
	if record.CategoryPoints[idx] != 400 || record.RawVotes[idx] != 400 {
		t.Fatalf("accumulators = %d/%d, want 400/400", record.CategoryPoints[idx], record.RawVotes[idx])
	}
	// isqrt(400)=20, scaled by 100, weighted 30%.
	if record.TotalScore != 600 {
		t.Fatalf("TotalScore = %d, want 600", record.TotalScore)
	}
	if lastEventType(repo) != "reputation.adjusted" {
		t.Fatalf("event type = %q", lastEventType(repo))
	}
}

func TestAdjustReputationNegativeIsCategoryOnly(t *testing.T) {
	repo := newTestRepo()
	record := seedUser(repo, "alice")
	idx := entities.CategoryTreasury.Index()
	record.CategoryPoints[idx] = 500
	record.RawVotes[idx] = 500
	repo.users["alice"] = record
	uc := newTestUseCase(repo)

	adjusted, err := uc.AdjustReputation(context.Background(), AdjustReputationCommand{
		UserID:   "alice",
		Category: entities.CategoryTreasury,
		Delta:    -200,
		Reason:   "chargeback",
	})
	if err != nil {
		t.Fatalf("AdjustReputation() error = %v", err)
	}
	if adjusted.CategoryPoints[idx] != 300 {
		t.Fatalf("category points = %d, want 300", adjusted.CategoryPoints[idx])
	}
	if adjusted.RawVotes[idx] != 500 {
		t.Fatalf("negative delta touched raw votes: %d", adjusted.RawVotes[idx])
	}
}

func TestAdjustReputationBelowZero(t *testing.T) {
	repo := newTestRepo()
	seedUser(repo, "alice")
	uc := newTestUseCase(repo)

	_, err := uc.AdjustReputation(context.Background(), AdjustReputationCommand{
		UserID:   "alice",
		Category: entities.CategoryGovernance,
		Delta:    -1,
	})
	if !errors.Is(err, domainerrors.ErrNegativeReputation) {
		t.Fatalf("err = %v, want ErrNegativeReputation", err)
	}
	if repo.saveCalls != 0 {
		t.Fatal("failed adjustment persisted")
	}
}

func TestAdjustReputationReasonTooLong(t *testing.T) {
	repo := newTestRepo()
	seedUser(repo, "alice")
	uc := newTestUseCase(repo)

	_, err := uc.AdjustReputation(context.Background(), AdjustReputationCommand{
		UserID:   "alice",
		Category: entities.CategoryGovernance,
		Delta:    10,
		Reason:   strings.Repeat("x", 201),
	})
	if !errors.Is(err, domainerrors.ErrInvalidRequest) {
		t.Fatalf("err = %v, want ErrInvalidRequest", err)
	}
}
