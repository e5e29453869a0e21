package memory

import (
	"context"
	"strings"
	"sync"
	"time"

	"quorum/contexts/governance-community/reputation-engine/domain/entities"
	domainerrors "quorum/contexts/governance-community/reputation-engine/domain/errors"
	"quorum/contexts/governance-community/reputation-engine/ports"

	"github.com/google/uuid"
)

type Store struct {
	mu sync.RWMutex

	users  map[string]entities.UserReputationRecord
	pairs  map[string]entities.VotingRecord
	outbox []ports.EventEnvelope

	config entities.ConfigSnapshot
}

func NewStore(config entities.ConfigSnapshot) *Store {
	return &Store{
		users:  make(map[string]entities.UserReputationRecord),
		pairs:  make(map[string]entities.VotingRecord),
		outbox: make([]ports.EventEnvelope, 0),
		config: config,
	}
}

func pairKey(voterID, targetID string) string {
	return voterID + "\x00" + targetID
}

func (s *Store) GetUserRecord(_ context.Context, userID string) (entities.UserReputationRecord, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	record, exists := s.users[strings.TrimSpace(userID)]
	if !exists {
		return entities.UserReputationRecord{}, domainerrors.ErrUserNotFound
	}
	return record, nil
}

func (s *Store) CreateUserRecord(_ context.Context, record entities.UserReputationRecord) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.users[record.UserID]; exists {
		return domainerrors.ErrUserExists
	}
	s.users[record.UserID] = record
	return nil
}

func (s *Store) SaveUserRecord(_ context.Context, record entities.UserReputationRecord) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.users[record.UserID] = record
	return nil
}

func (s *Store) GetVotingRecord(_ context.Context, voterID, targetID string) (entities.VotingRecord, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	record, exists := s.pairs[pairKey(voterID, targetID)]
	if !exists {
		return entities.VotingRecord{}, false, nil
	}
	return record, true, nil
}

func (s *Store) CommitVote(_ context.Context, mutation ports.VoteMutation) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.users[mutation.Voter.UserID] = mutation.Voter
	s.users[mutation.Target.UserID] = mutation.Target
	s.pairs[pairKey(mutation.Pair.VoterID, mutation.Pair.TargetID)] = mutation.Pair
	return nil
}

func (s *Store) Snapshot(_ context.Context) (entities.ConfigSnapshot, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	snapshot := s.config
	snapshot.RoleThresholds = append([]uint64(nil), s.config.RoleThresholds...)
	return snapshot, nil
}

// SetConfig swaps the snapshot future operations resolve.
func (s *Store) SetConfig(config entities.ConfigSnapshot) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.config = config
}

func (s *Store) Append(_ context.Context, envelope ports.EventEnvelope) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.outbox = append(s.outbox, envelope)
	return nil
}

// Events returns a copy of everything appended so far.
func (s *Store) Events() []ports.EventEnvelope {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return append([]ports.EventEnvelope(nil), s.outbox...)
}

func (s *Store) Now() time.Time {
	return time.Now().UTC()
}

func (s *Store) NewID(_ context.Context) (string, error) {
	return uuid.NewString(), nil
}
