package commands

import (
	"context"
	"strings"

	"quorum/contexts/governance-community/reputation-engine/application"
	"quorum/contexts/governance-community/reputation-engine/domain/entities"
	domainerrors "quorum/contexts/governance-community/reputation-engine/domain/errors"
	"quorum/contexts/governance-community/reputation-engine/domain/services"
)

// AwardAchievement explicitly grants a badge plus its Governance bonus
// points. Admin authority is enforced by the caller, not here. An already
// held badge is rejected rather than silently replayed so the bonus is never
// granted twice.
func (uc UseCase) AwardAchievement(ctx context.Context, userID string, kind entities.AchievementType) (entities.UserReputationRecord, error) {
	userID = strings.TrimSpace(userID)
	if userID == "" || !kind.Valid() {
		return entities.UserReputationRecord{}, domainerrors.ErrInvalidRequest
	}

	config, err := uc.resolveConfig(ctx)
	if err != nil {
		return entities.UserReputationRecord{}, err
	}
	record, err := uc.Repo.GetUserRecord(ctx, userID)
	if err != nil {
		return entities.UserReputationRecord{}, err
	}
	if record.HasAchievement(kind) {
		return entities.UserReputationRecord{}, domainerrors.ErrAchievementAlreadyAwarded
	}

	record.AwardAchievement(kind)

	bonus := services.AchievementBonusPoints(kind)
	idx := entities.CategoryGovernance.Index()
	if record.CategoryPoints[idx], err = services.SafeAddPoints(record.CategoryPoints[idx], bonus); err != nil {
		return entities.UserReputationRecord{}, err
	}
	record.TotalScore = services.ComputeScore(record.CategoryPoints, config.CategoryWeights)
	record.RoleLevel = services.ResolveRoleLevel(record.TotalScore, config.RoleThresholds)
	record.LastUpdated = uc.now().Unix()

	if err := uc.Repo.SaveUserRecord(ctx, record); err != nil {
		return entities.UserReputationRecord{}, err
	}
	if err := uc.appendEvent(ctx, "reputation.achievement.awarded", userID, uc.now(), map[string]any{
		"achievement": kind.String(),
		"bonus":       bonus,
	}); err != nil {
		return entities.UserReputationRecord{}, err
	}

	application.ResolveLogger(uc.Logger).Info("achievement awarded",
		"event", "reputation_achievement_awarded",
		"module", "governance-community/reputation-engine",
		"layer", "application",
		"user_id", userID,
		"achievement", kind.String(),
		"bonus", bonus,
	)
	return record, nil
}

// RevokeAchievement clears a badge bit. Bonus points already granted stay;
// revocation is a badge correction, not a points rollback.
func (uc UseCase) RevokeAchievement(ctx context.Context, userID string, kind entities.AchievementType) (entities.UserReputationRecord, error) {
	userID = strings.TrimSpace(userID)
	if userID == "" || !kind.Valid() {
		return entities.UserReputationRecord{}, domainerrors.ErrInvalidRequest
	}

	record, err := uc.Repo.GetUserRecord(ctx, userID)
	if err != nil {
		return entities.UserReputationRecord{}, err
	}
	if err := record.RevokeAchievement(kind); err != nil {
		return entities.UserReputationRecord{}, err
	}
	record.LastUpdated = uc.now().Unix()

	if err := uc.Repo.SaveUserRecord(ctx, record); err != nil {
		return entities.UserReputationRecord{}, err
	}
	if err := uc.appendEvent(ctx, "reputation.achievement.revoked", userID, uc.now(), map[string]any{
		"achievement": kind.String(),
	}); err != nil {
		return entities.UserReputationRecord{}, err
	}

	application.ResolveLogger(uc.Logger).Info("achievement revoked",
		"event", "reputation_achievement_revoked",
		"module", "governance-community/reputation-engine",
		"layer", "application",
		"user_id", userID,
		"achievement", kind.String(),
	)
	return record, nil
}

// AutoAwardResult lists badges granted by the reconciliation pass.
type AutoAwardResult struct {
	Record    entities.UserReputationRecord
	NewBadges []entities.AchievementType
}

// AutoAwardAchievements evaluates the stat-gated predicates and grants any
// badge the record newly satisfies. No bonus points: those belong to the
// explicit award path. Persists only when something changed.
func (uc UseCase) AutoAwardAchievements(ctx context.Context, userID string) (AutoAwardResult, error) {
	userID = strings.TrimSpace(userID)
	if userID == "" {
		return AutoAwardResult{}, domainerrors.ErrInvalidRequest
	}

	record, err := uc.Repo.GetUserRecord(ctx, userID)
	if err != nil {
		return AutoAwardResult{}, err
	}

	var newBadges []entities.AchievementType
	for _, kind := range services.StatGatedAchievements() {
		if !record.HasAchievement(kind) && services.EligibleForAchievement(record, kind) {
			record.AwardAchievement(kind)
			newBadges = append(newBadges, kind)
		}
	}
	if len(newBadges) == 0 {
		return AutoAwardResult{Record: record}, nil
	}

	record.LastUpdated = uc.now().Unix()
	if err := uc.Repo.SaveUserRecord(ctx, record); err != nil {
		return AutoAwardResult{}, err
	}

	names := make([]string, 0, len(newBadges))
	for _, kind := range newBadges {
		names = append(names, kind.String())
	}
	if err := uc.appendEvent(ctx, "reputation.achievement.auto_awarded", userID, uc.now(), map[string]any{
		"achievements": names,
	}); err != nil {
		return AutoAwardResult{}, err
	}

	application.ResolveLogger(uc.Logger).Info("achievements auto-awarded",
		"event", "reputation_achievement_auto_awarded",
		"module", "governance-community/reputation-engine",
		"layer", "application",
		"user_id", userID,
		"count", len(newBadges),
	)
	return AutoAwardResult{Record: record, NewBadges: newBadges}, nil
}
