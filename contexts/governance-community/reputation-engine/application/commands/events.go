package commands

import (
	"context"
	"encoding/json"
	"time"

	"quorum/contexts/governance-community/reputation-engine/ports"
)

func newReputationEnvelope(
	eventID string,
	eventType string,
	userID string,
	occurredAt time.Time,
	data map[string]any,
) (ports.EventEnvelope, error) {
	payload, err := json.Marshal(data)
	if err != nil {
		return ports.EventEnvelope{}, err
	}
	return ports.EventEnvelope{
		EventID:       eventID,
		EventType:     eventType,
		OccurredAt:    occurredAt.UTC(),
		SourceService: "reputation-engine",
		EntityType:    "user_reputation",
		EntityID:      userID,
		SchemaVersion: 1,
		Data:          payload,
	}, nil
}

// appendEvent records a domain event on the outbox. Event emission is
// best-effort observability, not part of the operation's atomic commit.
func (uc UseCase) appendEvent(
	ctx context.Context,
	eventType string,
	userID string,
	occurredAt time.Time,
	data map[string]any,
) error {
	if uc.Outbox == nil {
		return nil
	}
	eventID, err := uc.IDGen.NewID(ctx)
	if err != nil {
		return err
	}
	envelope, err := newReputationEnvelope(eventID, eventType, userID, occurredAt, data)
	if err != nil {
		return err
	}
	return uc.Outbox.Append(ctx, envelope)
}
