package ports

import (
	"context"
	"time"

	"quorum/contexts/governance-community/reputation-engine/domain/entities"
)

// VoteMutation carries the three records a successful vote touches. Adapters
// must persist all of them atomically or none.
type VoteMutation struct {
	Voter  entities.UserReputationRecord
	Target entities.UserReputationRecord
	Pair   entities.VotingRecord
}

type Repository interface {
	GetUserRecord(ctx context.Context, userID string) (entities.UserReputationRecord, error)
	CreateUserRecord(ctx context.Context, record entities.UserReputationRecord) error
	SaveUserRecord(ctx context.Context, record entities.UserReputationRecord) error
	GetVotingRecord(ctx context.Context, voterID string, targetID string) (entities.VotingRecord, bool, error)
	CommitVote(ctx context.Context, mutation VoteMutation) error
}

// ConfigProvider resolves the configuration snapshot an operation runs
// against. It is read once at the start of each operation, never mid-flight.
type ConfigProvider interface {
	Snapshot(ctx context.Context) (entities.ConfigSnapshot, error)
}

type EventEnvelope struct {
	EventID       string
	EventType     string
	OccurredAt    time.Time
	SourceService string
	EntityType    string
	EntityID      string
	SchemaVersion int
	Data          []byte
}

type OutboxWriter interface {
	Append(ctx context.Context, envelope EventEnvelope) error
}

// OutboxMessage is a stored outbox row awaiting relay.
type OutboxMessage struct {
	OutboxID   string
	EventType  string
	Payload    []byte
	Status     string
	RetryCount int
}

type OutboxRepository interface {
	ListPendingOutbox(ctx context.Context, limit int) ([]OutboxMessage, error)
	MarkOutboxSent(ctx context.Context, outboxID string, sentAt time.Time) error
}

type EventPublisher interface {
	Publish(ctx context.Context, topic string, event EventEnvelope) error
}

type Clock interface {
	Now() time.Time
}

type IDGenerator interface {
	NewID(ctx context.Context) (string, error)
}
