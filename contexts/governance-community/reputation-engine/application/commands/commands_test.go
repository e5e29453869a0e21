package commands

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"time"

	"quorum/contexts/governance-community/reputation-engine/domain/entities"
	domainerrors "quorum/contexts/governance-community/reputation-engine/domain/errors"
	"quorum/contexts/governance-community/reputation-engine/ports"
)

// testNow lands mid-day UTC so subtracting a cooldown stays inside the same
// day bucket while subtracting 86400 crosses into the previous one.
var testNow = time.Unix(1_750_000_000, 0).UTC()

func testConfig() entities.ConfigSnapshot {
	return entities.ConfigSnapshot{
		VotingCooldown:      3600,
		MinAccountAge:       86400,
		DailyVoteLimit:      10,
		MinReputationToVote: 0,
		CategoryWeights:     [entities.CategoryCount]uint16{3000, 3000, 2000, 2000},
		RoleThresholds:      []uint64{1000, 5000, 10000, 25000, 50000},
		DecayRateBps:        100,
		DecayEnabled:        true,
	}
}

type fixedClock struct{ t time.Time }

func (c fixedClock) Now() time.Time { return c.t }

type seqIDGen struct{ n int }

func (g *seqIDGen) NewID(ctx context.Context) (string, error) {
	g.n++
	return fmt.Sprintf("event-%04d", g.n), nil
}

// testRepo is an in-memory double for every port the use case consumes. Call
// counters let tests assert that failed operations persisted nothing.
type testRepo struct {
	users  map[string]entities.UserReputationRecord
	pairs  map[string]entities.VotingRecord
	config entities.ConfigSnapshot
	events []ports.EventEnvelope

	saveCalls   int
	commitCalls int
}

func newTestRepo() *testRepo {
	return &testRepo{
		users:  make(map[string]entities.UserReputationRecord),
		pairs:  make(map[string]entities.VotingRecord),
		config: testConfig(),
	}
}

func pairKey(voterID, targetID string) string {
	return voterID + "\x00" + targetID
}

func (r *testRepo) GetUserRecord(ctx context.Context, userID string) (entities.UserReputationRecord, error) {
	record, ok := r.users[userID]
	if !ok {
		return entities.UserReputationRecord{}, domainerrors.ErrUserNotFound
	}
	return record, nil
}

func (r *testRepo) CreateUserRecord(ctx context.Context, record entities.UserReputationRecord) error {
	if _, ok := r.users[record.UserID]; ok {
		return domainerrors.ErrUserExists
	}
	r.users[record.UserID] = record
	return nil
}

func (r *testRepo) SaveUserRecord(ctx context.Context, record entities.UserReputationRecord) error {
	r.saveCalls++
	r.users[record.UserID] = record
	return nil
}

func (r *testRepo) GetVotingRecord(ctx context.Context, voterID string, targetID string) (entities.VotingRecord, bool, error) {
	pair, ok := r.pairs[pairKey(voterID, targetID)]
	return pair, ok, nil
}

func (r *testRepo) CommitVote(ctx context.Context, mutation ports.VoteMutation) error {
	r.commitCalls++
	r.users[mutation.Voter.UserID] = mutation.Voter
	r.users[mutation.Target.UserID] = mutation.Target
	r.pairs[pairKey(mutation.Pair.VoterID, mutation.Pair.TargetID)] = mutation.Pair
	return nil
}

func (r *testRepo) Snapshot(ctx context.Context) (entities.ConfigSnapshot, error) {
	return r.config, nil
}

func (r *testRepo) Append(ctx context.Context, envelope ports.EventEnvelope) error {
	r.events = append(r.events, envelope)
	return nil
}

func newTestUseCase(repo *testRepo) UseCase {
	return UseCase{
		Repo:   repo,
		Config: repo,
		Outbox: repo,
		Clock:  fixedClock{testNow},
		IDGen:  &seqIDGen{},
		Logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
}

// seedUser stores a record old enough to pass the account-age gate, with its
// last activity in yesterday's bucket.
func seedUser(repo *testRepo, userID string) entities.UserReputationRecord {
	record := entities.NewUserReputationRecord(userID, testNow.Unix()-30*86400)
	record.LastActivity = testNow.Unix() - 86400
	repo.users[userID] = record
	return record
}

func lastEventType(repo *testRepo) string {
	if len(repo.events) == 0 {
		return ""
	}
	return repo.events[len(repo.events)-1].EventType
}
