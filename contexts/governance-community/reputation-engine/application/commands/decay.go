package commands

import (
	"context"
	"strings"

	"quorum/contexts/governance-community/reputation-engine/application"
	"quorum/contexts/governance-community/reputation-engine/domain/entities"
	domainerrors "quorum/contexts/governance-community/reputation-engine/domain/errors"
	"quorum/contexts/governance-community/reputation-engine/domain/services"
)

// ApplyDecayResult reports the record after decay and how much eroded.
type ApplyDecayResult struct {
	Record       entities.UserReputationRecord
	DaysInactive int64
	FactorBps    uint64
	TotalDecayed uint64
}

// ApplyDecay erodes an inactive user's points by the compound daily factor.
// Fails when decay is disabled, the user has no recorded activity, or less
// than one full day has elapsed; the current day's partial time never decays.
func (uc UseCase) ApplyDecay(ctx context.Context, userID string) (ApplyDecayResult, error) {
	userID = strings.TrimSpace(userID)
	if userID == "" {
		return ApplyDecayResult{}, domainerrors.ErrInvalidRequest
	}

	config, err := uc.resolveConfig(ctx)
	if err != nil {
		return ApplyDecayResult{}, err
	}
	if !config.DecayEnabled {
		return ApplyDecayResult{}, domainerrors.ErrDecayDisabled
	}

	record, err := uc.Repo.GetUserRecord(ctx, userID)
	if err != nil {
		return ApplyDecayResult{}, err
	}
	if record.LastActivity == 0 {
		return ApplyDecayResult{}, domainerrors.ErrNoActivityToDecay
	}

	now := uc.now().Unix()
	days := services.DaysInactive(record.LastActivity, now)
	if days == 0 {
		return ApplyDecayResult{}, domainerrors.ErrNoActivityToDecay
	}

	factor := services.DecayFactor(record.LastActivity, now, config.DecayRateBps)

	var totalDecayed uint64
	for i := 0; i < entities.CategoryCount; i++ {
		before := record.CategoryPoints[i]
		record.CategoryPoints[i] = services.ApplyDecayFactor(before, factor)
		totalDecayed += before - record.CategoryPoints[i]
		record.RawVotes[i] = services.ApplyDecayFactor(record.RawVotes[i], factor)
	}

	record.TotalScore = services.ComputeScore(record.CategoryPoints, config.CategoryWeights)
	record.RoleLevel = services.ResolveRoleLevel(record.TotalScore, config.RoleThresholds)
	record.LastUpdated = now

	if err := uc.Repo.SaveUserRecord(ctx, record); err != nil {
		return ApplyDecayResult{}, err
	}
	if err := uc.appendEvent(ctx, "reputation.decay.applied", userID, uc.now(), map[string]any{
		"days_inactive": days,
		"factor_bps":    factor,
		"total_decayed": totalDecayed,
	}); err != nil {
		return ApplyDecayResult{}, err
	}

	application.ResolveLogger(uc.Logger).Info("reputation decay applied",
		"event", "reputation_decay_applied",
		"module", "governance-community/reputation-engine",
		"layer", "application",
		"user_id", userID,
		"days_inactive", days,
		"factor_bps", factor,
		"total_decayed", totalDecayed,
	)

	return ApplyDecayResult{
		Record:       record,
		DaysInactive: days,
		FactorBps:    factor,
		TotalDecayed: totalDecayed,
	}, nil
}
