package entities

type VoteDirection string

const (
	VoteDirectionUp   VoteDirection = "upvote"
	VoteDirectionDown VoteDirection = "downvote"
)

func (d VoteDirection) Valid() bool {
	return d == VoteDirectionUp || d == VoteDirectionDown
}

func ParseVoteDirection(raw string) (VoteDirection, bool) {
	switch raw {
	case string(VoteDirectionUp):
		return VoteDirectionUp, true
	case string(VoteDirectionDown):
		return VoteDirectionDown, true
	default:
		return "", false
	}
}

// VoteHistoryCapacity bounds the per-pair vote history ring.
const VoteHistoryCapacity = 10

type VoteHistoryEntry struct {
	Category  Category
	Direction VoteDirection
	Timestamp int64
}

// VotingRecord is the rate-limiting state for one ordered (voter, target)
// pair, created lazily on the first vote between that pair.
type VotingRecord struct {
	VoterID            string
	TargetID           string
	LastVote           int64
	DailyVotes         uint8
	LastDailyReset     int64
	TotalVotesOnTarget uint64
	History            [VoteHistoryCapacity]VoteHistoryEntry
	HistoryCursor      uint8
}

// NewVotingRecord returns a fresh pair record. LastVote stays zero so the
// first cooldown check trivially passes.
func NewVotingRecord(voterID string, targetID string, now int64) VotingRecord {
	return VotingRecord{
		VoterID:        voterID,
		TargetID:       targetID,
		LastDailyReset: now,
	}
}

// PushHistory writes the entry at the cursor, overwriting the oldest slot,
// and advances the cursor modulo capacity.
func (r *VotingRecord) PushHistory(entry VoteHistoryEntry) {
	r.History[r.HistoryCursor] = entry
	r.HistoryCursor = (r.HistoryCursor + 1) % VoteHistoryCapacity
}

// RecentHistory returns recorded entries oldest first.
func (r VotingRecord) RecentHistory() []VoteHistoryEntry {
	entries := make([]VoteHistoryEntry, 0, VoteHistoryCapacity)
	for i := 0; i < VoteHistoryCapacity; i++ {
		slot := (int(r.HistoryCursor) + i) % VoteHistoryCapacity
		if r.History[slot].Timestamp == 0 {
			continue
		}
		entries = append(entries, r.History[slot])
	}
	return entries
}
