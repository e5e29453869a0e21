package services

import (
	"errors"
	"testing"

	"quorum/contexts/governance-community/reputation-engine/domain/entities"
	domainerrors "quorum/contexts/governance-community/reputation-engine/domain/errors"
)

func testEntry(now int64) entities.VoteHistoryEntry {
	return entities.VoteHistoryEntry{
		Category:  entities.CategoryGovernance,
		Direction: entities.VoteDirectionUp,
		Timestamp: now,
	}
}

func TestCheckAndRecordVoteHappyPath(t *testing.T) {
	now := int64(500 * secondsPerDay)
	record := entities.NewVotingRecord("voter-1", "target-1", now)

	if err := CheckAndRecordVote(&record, now, 3600, 10, testEntry(now)); err != nil {
		t.Fatalf("first vote failed: %v", err)
	}
	if record.DailyVotes != 1 || record.TotalVotesOnTarget != 1 || record.LastVote != now {
		t.Fatalf("counters wrong: %+v", record)
	}
}

func TestCheckAndRecordVoteCooldown(t *testing.T) {
	now := int64(500 * secondsPerDay)
	record := entities.NewVotingRecord("voter-1", "target-1", now)
	if err := CheckAndRecordVote(&record, now, 3600, 10, testEntry(now)); err != nil {
		t.Fatalf("first vote failed: %v", err)
	}

	err := CheckAndRecordVote(&record, now+3599, 3600, 10, testEntry(now+3599))
	if !errors.Is(err, domainerrors.ErrCooldownActive) {
		t.Fatalf("expected cooldown error, got %v", err)
	}
	if record.DailyVotes != 1 || record.TotalVotesOnTarget != 1 {
		t.Fatalf("rejected vote mutated counters: %+v", record)
	}

	if err := CheckAndRecordVote(&record, now+3600, 3600, 10, testEntry(now+3600)); err != nil {
		t.Fatalf("vote at exact cooldown boundary failed: %v", err)
	}
}

func TestCheckAndRecordVoteDailyCap(t *testing.T) {
	now := int64(500 * secondsPerDay)
	record := entities.NewVotingRecord("voter-1", "target-1", now)
	record.DailyVotes = 3

	err := CheckAndRecordVote(&record, now, 0, 3, testEntry(now))
	if !errors.Is(err, domainerrors.ErrDailyLimitExceeded) {
		t.Fatalf("expected daily limit error, got %v", err)
	}
}

func TestCheckAndRecordVoteDayBoundaryResetsCap(t *testing.T) {
	day := int64(500)
	now := day * secondsPerDay
	record := entities.NewVotingRecord("voter-1", "target-1", now)
	record.DailyVotes = 3
	record.LastDailyReset = now

	// Same day, cap hit.
	if err := CheckAndRecordVote(&record, now+100, 0, 3, testEntry(now+100)); !errors.Is(err, domainerrors.ErrDailyLimitExceeded) {
		t.Fatalf("expected daily limit error, got %v", err)
	}

	// First vote of the next UTC day passes: reset runs before the cap check.
	nextDay := (day + 1) * secondsPerDay
	if err := CheckAndRecordVote(&record, nextDay, 0, 3, testEntry(nextDay)); err != nil {
		t.Fatalf("vote after day boundary failed: %v", err)
	}
	if record.DailyVotes != 1 {
		t.Fatalf("daily counter = %d, want 1 after reset", record.DailyVotes)
	}
	if record.LastDailyReset != nextDay {
		t.Fatalf("reset marker not advanced: %d", record.LastDailyReset)
	}
}

func TestVoteHistoryRingOverwritesOldest(t *testing.T) {
	now := int64(500 * secondsPerDay)
	record := entities.NewVotingRecord("voter-1", "target-1", now)

	for i := 0; i < entities.VoteHistoryCapacity+3; i++ {
		ts := now + int64(i)
		record.PushHistory(entities.VoteHistoryEntry{
			Category:  entities.CategoryCommunity,
			Direction: entities.VoteDirectionUp,
			Timestamp: ts,
		})
	}

	if record.HistoryCursor != 3 {
		t.Fatalf("cursor = %d, want 3 after wrap", record.HistoryCursor)
	}
	// Slots 0..2 hold the newest entries, the rest the previous lap.
	if record.History[0].Timestamp != now+int64(entities.VoteHistoryCapacity) {
		t.Fatalf("slot 0 not overwritten: %+v", record.History[0])
	}
	if record.History[3].Timestamp != now+3 {
		t.Fatalf("slot 3 overwritten early: %+v", record.History[3])
	}
}
