package commands

import (
	"context"
	"log/slog"
	"time"

	"quorum/contexts/governance-community/reputation-engine/domain/entities"
	"quorum/contexts/governance-community/reputation-engine/ports"
)

// UseCase orchestrates every state-mutating reputation operation. All
// authorization is the caller's responsibility: admin-gated operations assume
// an already-authorized request.
type UseCase struct {
	Repo   ports.Repository
	Config ports.ConfigProvider
	Outbox ports.OutboxWriter
	Clock  ports.Clock
	IDGen  ports.IDGenerator
	Logger *slog.Logger
}

func (uc UseCase) now() time.Time {
	if uc.Clock == nil {
		return time.Now().UTC()
	}
	return uc.Clock.Now().UTC()
}

// resolveConfig loads and validates the snapshot an operation will run
// against. Done once up front so the rest of the operation is deterministic.
func (uc UseCase) resolveConfig(ctx context.Context) (entities.ConfigSnapshot, error) {
	snapshot, err := uc.Config.Snapshot(ctx)
	if err != nil {
		return entities.ConfigSnapshot{}, err
	}
	if err := snapshot.Validate(); err != nil {
		return entities.ConfigSnapshot{}, err
	}
	return snapshot, nil
}
