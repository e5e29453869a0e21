package httpadapter

import (
	"context"
	"log/slog"
	"strings"

	"quorum/contexts/governance-community/reputation-engine/application/commands"
	"quorum/contexts/governance-community/reputation-engine/application/queries"
	"quorum/contexts/governance-community/reputation-engine/domain/entities"
	domainerrors "quorum/contexts/governance-community/reputation-engine/domain/errors"
	httptransport "quorum/contexts/governance-community/reputation-engine/transport/http"
)

type Handler struct {
	Engine  commands.UseCase
	Queries queries.ReputationQueries
	Logger  *slog.Logger
}

func (h Handler) InitializeUserHandler(ctx context.Context, req httptransport.InitializeUserRequest) (httptransport.InitializeUserResponse, error) {
	record, err := h.Engine.InitializeUser(ctx, req.UserID)
	if err != nil {
		return httptransport.InitializeUserResponse{}, err
	}
	return httptransport.InitializeUserResponse{User: mapUser(record)}, nil
}

func (h Handler) GetUserReputationHandler(ctx context.Context, userID string) (httptransport.GetUserReputationResponse, error) {
	record, err := h.Queries.GetUserReputation(ctx, userID)
	if err != nil {
		return httptransport.GetUserReputationResponse{}, err
	}
	return httptransport.GetUserReputationResponse{User: mapUser(record)}, nil
}

func (h Handler) CastVoteHandler(ctx context.Context, voterID string, req httptransport.CastVoteRequest) (httptransport.CastVoteResponse, error) {
	category, ok := entities.ParseCategory(req.Category)
	if !ok {
		return httptransport.CastVoteResponse{}, domainerrors.ErrInvalidCategory
	}
	direction := entities.VoteDirection(strings.TrimSpace(req.Direction))
	result, err := h.Engine.CastVote(ctx, commands.CastVoteCommand{
		VoterID:   voterID,
		TargetID:  req.TargetID,
		Direction: direction,
		Category:  category,
		Weight:    req.Weight,
	})
	if err != nil {
		return httptransport.CastVoteResponse{}, err
	}
	return httptransport.CastVoteResponse{
		Voter:         mapUser(result.Voter),
		Target:        mapUser(result.Target),
		PointsApplied: result.PointsApplied,
		NewBadges:     mapBadges(result.NewBadges),
	}, nil
}

func (h Handler) ApplyDecayHandler(ctx context.Context, userID string) (httptransport.ApplyDecayResponse, error) {
	result, err := h.Engine.ApplyDecay(ctx, userID)
	if err != nil {
		return httptransport.ApplyDecayResponse{}, err
	}
	return httptransport.ApplyDecayResponse{
		User:         mapUser(result.Record),
		DaysInactive: result.DaysInactive,
		FactorBps:    result.FactorBps,
		TotalDecayed: result.TotalDecayed,
	}, nil
}

func (h Handler) ClaimRoleUnlockHandler(ctx context.Context, userID string, req httptransport.ClaimRoleUnlockRequest) (httptransport.ClaimRoleUnlockResponse, error) {
	result, err := h.Engine.ClaimRoleUnlock(ctx, userID, req.Level)
	if err != nil {
		return httptransport.ClaimRoleUnlockResponse{}, err
	}
	return httptransport.ClaimRoleUnlockResponse{
		User:      mapUser(result.Record),
		NewBadges: mapBadges(result.NewBadges),
	}, nil
}

func (h Handler) UpdateStreakHandler(ctx context.Context, userID string) (httptransport.UpdateStreakResponse, error) {
	result, err := h.Engine.UpdateStreak(ctx, userID)
	if err != nil {
		return httptransport.UpdateStreakResponse{}, err
	}
	return httptransport.UpdateStreakResponse{
		User:      mapUser(result.Record),
		Updated:   result.Updated,
		Extended:  result.Extended,
		Reset:     result.Reset,
		Bonus:     result.Bonus,
		NewBadges: mapBadges(result.NewBadges),
	}, nil
}

func (h Handler) AwardAchievementHandler(ctx context.Context, userID string, req httptransport.AwardAchievementRequest) (httptransport.AwardAchievementResponse, error) {
	kind, ok := entities.ParseAchievementType(req.Achievement)
	if !ok {
		return httptransport.AwardAchievementResponse{}, domainerrors.ErrInvalidRequest
	}
	record, err := h.Engine.AwardAchievement(ctx, userID, kind)
	if err != nil {
		return httptransport.AwardAchievementResponse{}, err
	}
	return httptransport.AwardAchievementResponse{User: mapUser(record)}, nil
}

func (h Handler) RevokeAchievementHandler(ctx context.Context, userID string, req httptransport.RevokeAchievementRequest) (httptransport.RevokeAchievementResponse, error) {
	kind, ok := entities.ParseAchievementType(req.Achievement)
	if !ok {
		return httptransport.RevokeAchievementResponse{}, domainerrors.ErrInvalidRequest
	}
	record, err := h.Engine.RevokeAchievement(ctx, userID, kind)
	if err != nil {
		return httptransport.RevokeAchievementResponse{}, err
	}
	return httptransport.RevokeAchievementResponse{User: mapUser(record)}, nil
}

func (h Handler) AutoAwardAchievementsHandler(ctx context.Context, userID string) (httptransport.AutoAwardAchievementsResponse, error) {
	result, err := h.Engine.AutoAwardAchievements(ctx, userID)
	if err != nil {
		return httptransport.AutoAwardAchievementsResponse{}, err
	}
	return httptransport.AutoAwardAchievementsResponse{
		User:    mapUser(result.Record),
		Awarded: mapBadges(result.NewBadges),
	}, nil
}

func (h Handler) AdjustReputationHandler(ctx context.Context, userID string, req httptransport.AdjustReputationRequest) (httptransport.AdjustReputationResponse, error) {
	category, ok := entities.ParseCategory(req.Category)
	if !ok {
		return httptransport.AdjustReputationResponse{}, domainerrors.ErrInvalidCategory
	}
	record, err := h.Engine.AdjustReputation(ctx, commands.AdjustReputationCommand{
		UserID:   userID,
		Category: category,
		Delta:    req.Delta,
		Reason:   req.Reason,
	})
	if err != nil {
		return httptransport.AdjustReputationResponse{}, err
	}
	return httptransport.AdjustReputationResponse{User: mapUser(record)}, nil
}

func (h Handler) GetStreakInfoHandler(ctx context.Context, userID string) (httptransport.StreakInfoResponse, error) {
	info, err := h.Queries.GetStreakInfo(ctx, userID)
	if err != nil {
		return httptransport.StreakInfoResponse{}, err
	}
	return httptransport.StreakInfoResponse{
		UserID:            info.UserID,
		CurrentStreak:     info.CurrentStreak,
		LongestStreak:     info.LongestStreak,
		DaysSinceActivity: info.DaysSinceActivity,
		AtRisk:            info.AtRisk,
		Broken:            info.Broken,
		CurrentBonus:      info.CurrentBonus,
		NextDayBonus:      info.NextDayBonus,
		LastActivity:      info.LastActivity,
	}, nil
}

func (h Handler) GetAchievementProgressHandler(ctx context.Context, userID string) (httptransport.AchievementProgressResponse, error) {
	items, err := h.Queries.GetAchievementProgress(ctx, userID)
	if err != nil {
		return httptransport.AchievementProgressResponse{}, err
	}
	result := make([]httptransport.AchievementProgressDTO, 0, len(items))
	for _, item := range items {
		result = append(result, httptransport.AchievementProgressDTO{
			Achievement: item.Kind.String(),
			Earned:      item.Earned,
			Progress:    item.Progress,
			Required:    item.Required,
			Percentage:  item.Percentage,
		})
	}
	return httptransport.AchievementProgressResponse{Items: result}, nil
}

func (h Handler) GetAvailableRoleUnlocksHandler(ctx context.Context, userID string) (httptransport.AvailableRoleUnlocksResponse, error) {
	available, err := h.Queries.GetAvailableRoleUnlocks(ctx, userID)
	if err != nil {
		return httptransport.AvailableRoleUnlocksResponse{}, err
	}
	if available == nil {
		available = []uint8{}
	}
	return httptransport.AvailableRoleUnlocksResponse{Available: available}, nil
}

func (h Handler) CheckRoleRequirementsHandler(ctx context.Context, userID string, level uint8) (httptransport.CheckRoleRequirementsResponse, error) {
	if level == 0 {
		return httptransport.CheckRoleRequirementsResponse{}, domainerrors.ErrInvalidRoleLevel
	}
	eligible, err := h.Queries.CheckRoleRequirements(ctx, userID, level)
	if err != nil {
		return httptransport.CheckRoleRequirementsResponse{}, err
	}
	return httptransport.CheckRoleRequirementsResponse{Level: level, Eligible: eligible}, nil
}

func (h Handler) PreviewDecayHandler(ctx context.Context, userID string) (httptransport.DecayPreviewResponse, error) {
	preview, err := h.Queries.PreviewDecay(ctx, userID)
	if err != nil {
		return httptransport.DecayPreviewResponse{}, err
	}
	return httptransport.DecayPreviewResponse{
		CurrentPoints:   mapCategoryValues(preview.CurrentPoints),
		ProjectedPoints: mapCategoryValues(preview.ProjectedPoints),
		DecayAmounts:    mapCategoryValues(preview.DecayAmounts),
		ProjectedScore:  preview.ProjectedScore,
		ProjectedLevel:  preview.ProjectedLevel,
		DaysInactive:    preview.DaysInactive,
		FactorBps:       preview.FactorBps,
		WillDecay:       preview.WillDecay,
	}, nil
}

func mapUser(record entities.UserReputationRecord) httptransport.UserReputationDTO {
	return httptransport.UserReputationDTO{
		UserID:         record.UserID,
		CategoryPoints: mapCategoryValues(record.CategoryPoints),
		RawVotes:       mapCategoryValues(record.RawVotes),
		SeasonalPoints: mapCategoryValues(record.SeasonalPoints),
		TotalScore:     record.TotalScore,
		RoleLevel:      record.RoleLevel,
		Achievements:   mapBadges(record.AchievementsHeld()),
		CurrentStreak:  record.CurrentStreak,
		LongestStreak:  record.LongestStreak,
		VotesCast:      record.VotesCast,
		LastActivity:   record.LastActivity,
		CreatedAt:      record.CreatedAt,
		LastUpdated:    record.LastUpdated,
	}
}

func mapCategoryValues(values [entities.CategoryCount]uint64) map[string]uint64 {
	result := make(map[string]uint64, entities.CategoryCount)
	for i := 0; i < entities.CategoryCount; i++ {
		result[entities.Category(i).String()] = values[i]
	}
	return result
}

func mapBadges(badges []entities.AchievementType) []string {
	result := make([]string, 0, len(badges))
	for _, badge := range badges {
		result = append(result, badge.String())
	}
	return result
}
