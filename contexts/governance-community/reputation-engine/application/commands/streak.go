package commands

import (
	"context"
	"strings"

	"quorum/contexts/governance-community/reputation-engine/application"
	"quorum/contexts/governance-community/reputation-engine/domain/entities"
	domainerrors "quorum/contexts/governance-community/reputation-engine/domain/errors"
	"quorum/contexts/governance-community/reputation-engine/domain/services"
)

// UpdateStreakResult reports the streak transition outcome.
type UpdateStreakResult struct {
	Record    entities.UserReputationRecord
	Updated   bool
	Extended  bool
	Reset     bool
	Bonus     uint64
	NewBadges []entities.AchievementType
}

// UpdateStreak applies the daily participation transition to a user's own
// record. Idempotent within a day bucket: a second call on the same day is a
// no-op and persists nothing.
func (uc UseCase) UpdateStreak(ctx context.Context, userID string) (UpdateStreakResult, error) {
	userID = strings.TrimSpace(userID)
	if userID == "" {
		return UpdateStreakResult{}, domainerrors.ErrInvalidRequest
	}

	config, err := uc.resolveConfig(ctx)
	if err != nil {
		return UpdateStreakResult{}, err
	}
	record, err := uc.Repo.GetUserRecord(ctx, userID)
	if err != nil {
		return UpdateStreakResult{}, err
	}

	now := uc.now().Unix()
	outcome := services.AdvanceStreak(&record, now)
	if !outcome.Updated {
		return UpdateStreakResult{Record: record}, nil
	}
	if outcome.Bonus > 0 {
		record.TotalScore = services.ComputeScore(record.CategoryPoints, config.CategoryWeights)
		record.RoleLevel = services.ResolveRoleLevel(record.TotalScore, config.RoleThresholds)
	}

	if err := uc.Repo.SaveUserRecord(ctx, record); err != nil {
		return UpdateStreakResult{}, err
	}
	if err := uc.appendEvent(ctx, "reputation.streak.updated", userID, uc.now(), map[string]any{
		"current_streak": record.CurrentStreak,
		"longest_streak": record.LongestStreak,
		"bonus":          outcome.Bonus,
		"reset":          outcome.Reset,
	}); err != nil {
		return UpdateStreakResult{}, err
	}

	application.ResolveLogger(uc.Logger).Info("streak updated",
		"event", "reputation_streak_updated",
		"module", "governance-community/reputation-engine",
		"layer", "application",
		"user_id", userID,
		"current_streak", record.CurrentStreak,
		"bonus", outcome.Bonus,
		"reset", outcome.Reset,
	)

	return UpdateStreakResult{
		Record:    record,
		Updated:   true,
		Extended:  outcome.Extended,
		Reset:     outcome.Reset,
		Bonus:     outcome.Bonus,
		NewBadges: outcome.NewBadges,
	}, nil
}
