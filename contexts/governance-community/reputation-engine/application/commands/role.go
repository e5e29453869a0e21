package commands

import (
	"context"
	"strings"

	"quorum/contexts/governance-community/reputation-engine/application"
	"quorum/contexts/governance-community/reputation-engine/domain/entities"
	domainerrors "quorum/contexts/governance-community/reputation-engine/domain/errors"
	"quorum/contexts/governance-community/reputation-engine/domain/services"
)

// ClaimRoleUnlockResult reports the record after a successful claim.
type ClaimRoleUnlockResult struct {
	Record    entities.UserReputationRecord
	NewBadges []entities.AchievementType
}

// ClaimRoleUnlock advances the stored role level to a level the user's score
// already meets. Unlike the passive resolution done on score changes, claims
// are user-invoked and one-way; milestone claims also award badges.
func (uc UseCase) ClaimRoleUnlock(ctx context.Context, userID string, level uint8) (ClaimRoleUnlockResult, error) {
	userID = strings.TrimSpace(userID)
	if userID == "" {
		return ClaimRoleUnlockResult{}, domainerrors.ErrInvalidRequest
	}

	config, err := uc.resolveConfig(ctx)
	if err != nil {
		return ClaimRoleUnlockResult{}, err
	}
	record, err := uc.Repo.GetUserRecord(ctx, userID)
	if err != nil {
		return ClaimRoleUnlockResult{}, err
	}
	if err := services.CheckRoleClaim(record, level, config.RoleThresholds); err != nil {
		return ClaimRoleUnlockResult{}, err
	}

	now := uc.now().Unix()
	record.RoleLevel = level
	record.LastUpdated = now

	var newBadges []entities.AchievementType
	for _, milestone := range []struct {
		level uint8
		badge entities.AchievementType
	}{
		{3, entities.AchievementTopContributor},
		{5, entities.AchievementCommunityBuilder},
	} {
		if level == milestone.level && !record.HasAchievement(milestone.badge) {
			record.AwardAchievement(milestone.badge)
			newBadges = append(newBadges, milestone.badge)
		}
	}

	if err := uc.Repo.SaveUserRecord(ctx, record); err != nil {
		return ClaimRoleUnlockResult{}, err
	}
	if err := uc.appendEvent(ctx, "reputation.role.claimed", userID, uc.now(), map[string]any{
		"role_level": level,
		"score":      record.TotalScore,
	}); err != nil {
		return ClaimRoleUnlockResult{}, err
	}

	application.ResolveLogger(uc.Logger).Info("role unlock claimed",
		"event", "reputation_role_claimed",
		"module", "governance-community/reputation-engine",
		"layer", "application",
		"user_id", userID,
		"role_level", level,
		"score", record.TotalScore,
	)

	return ClaimRoleUnlockResult{Record: record, NewBadges: newBadges}, nil
}
