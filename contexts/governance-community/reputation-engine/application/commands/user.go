package commands

import (
	"context"
	"strings"

	"quorum/contexts/governance-community/reputation-engine/application"
	"quorum/contexts/governance-community/reputation-engine/domain/entities"
	domainerrors "quorum/contexts/governance-community/reputation-engine/domain/errors"
	"quorum/contexts/governance-community/reputation-engine/domain/services"
)

const maxAdjustmentReasonLength = 200

// InitializeUser creates a zeroed reputation record for a new participant.
func (uc UseCase) InitializeUser(ctx context.Context, userID string) (entities.UserReputationRecord, error) {
	userID = strings.TrimSpace(userID)
	if userID == "" {
		return entities.UserReputationRecord{}, domainerrors.ErrInvalidRequest
	}

	record := entities.NewUserReputationRecord(userID, uc.now().Unix())
	if err := uc.Repo.CreateUserRecord(ctx, record); err != nil {
		return entities.UserReputationRecord{}, err
	}
	if err := uc.appendEvent(ctx, "reputation.user.initialized", userID, uc.now(), nil); err != nil {
		return entities.UserReputationRecord{}, err
	}

	application.ResolveLogger(uc.Logger).Info("user reputation initialized",
		"event", "reputation_user_initialized",
		"module", "governance-community/reputation-engine",
		"layer", "application",
		"user_id", userID,
	)
	return record, nil
}

// AdjustReputationCommand is the admin correction input. The gate is
// enforced by the caller; this core takes only already-authorized requests.
type AdjustReputationCommand struct {
	UserID   string
	Category entities.Category
	Delta    int64
	Reason   string
}

// AdjustReputation applies a signed admin correction to one category.
// Positive deltas raise both the category points and the raw-vote
// accumulator; negative deltas lower category points only, mirroring the
// downvote asymmetry.
func (uc UseCase) AdjustReputation(ctx context.Context, cmd AdjustReputationCommand) (entities.UserReputationRecord, error) {
	userID := strings.TrimSpace(cmd.UserID)
	if userID == "" || len(cmd.Reason) > maxAdjustmentReasonLength {
		return entities.UserReputationRecord{}, domainerrors.ErrInvalidRequest
	}
	if !cmd.Category.Valid() {
		return entities.UserReputationRecord{}, domainerrors.ErrInvalidCategory
	}

	config, err := uc.resolveConfig(ctx)
	if err != nil {
		return entities.UserReputationRecord{}, err
	}
	record, err := uc.Repo.GetUserRecord(ctx, userID)
	if err != nil {
		return entities.UserReputationRecord{}, err
	}

	idx := cmd.Category.Index()
	if cmd.Delta >= 0 {
		delta := uint64(cmd.Delta)
		if record.CategoryPoints[idx], err = services.SafeAddPoints(record.CategoryPoints[idx], delta); err != nil {
			return entities.UserReputationRecord{}, err
		}
		if record.RawVotes[idx], err = services.SafeAddPoints(record.RawVotes[idx], delta); err != nil {
			return entities.UserReputationRecord{}, err
		}
	} else {
		delta := uint64(-cmd.Delta)
		if record.CategoryPoints[idx], err = services.SafeSubtractPoints(record.CategoryPoints[idx], delta); err != nil {
			return entities.UserReputationRecord{}, err
		}
	}

	now := uc.now().Unix()
	record.TotalScore = services.ComputeScore(record.CategoryPoints, config.CategoryWeights)
	record.RoleLevel = services.ResolveRoleLevel(record.TotalScore, config.RoleThresholds)
	record.LastActivity = now
	record.LastUpdated = now

	if err := uc.Repo.SaveUserRecord(ctx, record); err != nil {
		return entities.UserReputationRecord{}, err
	}
	if err := uc.appendEvent(ctx, "reputation.adjusted", userID, uc.now(), map[string]any{
		"category": cmd.Category.String(),
		"delta":    cmd.Delta,
		"reason":   cmd.Reason,
	}); err != nil {
		return entities.UserReputationRecord{}, err
	}

	application.ResolveLogger(uc.Logger).Info("reputation adjusted",
		"event", "reputation_adjusted",
		"module", "governance-community/reputation-engine",
		"layer", "application",
		"user_id", userID,
		"category", cmd.Category.String(),
		"delta", cmd.Delta,
	)
	return record, nil
}
