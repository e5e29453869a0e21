package services

import (
	"quorum/contexts/governance-community/reputation-engine/domain/entities"
	domainerrors "quorum/contexts/governance-community/reputation-engine/domain/errors"
)

// CheckAndRecordVote enforces cooldown and the daily cap against a pair
// record, then records the vote on success. The daily counter resets at the
// first vote observed in a new UTC day bucket, before the cap is evaluated,
// so the first vote of a new day always passes even if yesterday hit the cap.
//
// Callers pass a working copy: on error the copy is discarded, on success it
// is committed together with the rest of the vote mutation.
func CheckAndRecordVote(
	record *entities.VotingRecord,
	now int64,
	cooldown int64,
	dailyLimit uint8,
	entry entities.VoteHistoryEntry,
) error {
	if now/secondsPerDay > record.LastDailyReset/secondsPerDay {
		record.DailyVotes = 0
		record.LastDailyReset = now
	}

	if now-record.LastVote < cooldown {
		return domainerrors.ErrCooldownActive
	}
	if record.DailyVotes >= dailyLimit {
		return domainerrors.ErrDailyLimitExceeded
	}

	record.DailyVotes++
	record.TotalVotesOnTarget++
	record.LastVote = now
	record.PushHistory(entry)
	return nil
}
