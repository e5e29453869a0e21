package queries

import (
	"context"
	"strings"

	"quorum/contexts/governance-community/reputation-engine/domain/entities"
	domainerrors "quorum/contexts/governance-community/reputation-engine/domain/errors"
	"quorum/contexts/governance-community/reputation-engine/domain/services"
	"quorum/contexts/governance-community/reputation-engine/ports"
)

// ReputationQueries serves read-only views over reputation records.
type ReputationQueries struct {
	Repo   ports.Repository
	Config ports.ConfigProvider
	Clock  ports.Clock
}

func (q ReputationQueries) now() int64 {
	return q.Clock.Now().UTC().Unix()
}

// GetUserReputation returns the raw record.
func (q ReputationQueries) GetUserReputation(ctx context.Context, userID string) (entities.UserReputationRecord, error) {
	userID = strings.TrimSpace(userID)
	if userID == "" {
		return entities.UserReputationRecord{}, domainerrors.ErrInvalidRequest
	}
	return q.Repo.GetUserRecord(ctx, userID)
}

// StreakInfo is the derived streak view.
type StreakInfo struct {
	UserID            string
	CurrentStreak     uint32
	LongestStreak     uint32
	DaysSinceActivity int64
	AtRisk            bool
	Broken            bool
	CurrentBonus      uint64
	NextDayBonus      uint64
	LastActivity      int64
}

// GetStreakInfo reports streak health: at risk after one missed day bucket,
// broken after more than one, and the bonus the next consecutive day would
// earn.
func (q ReputationQueries) GetStreakInfo(ctx context.Context, userID string) (StreakInfo, error) {
	record, err := q.GetUserReputation(ctx, userID)
	if err != nil {
		return StreakInfo{}, err
	}

	now := q.now()
	daysSince := now/86400 - record.LastActivity/86400
	broken := daysSince > 1

	nextDayBonus := services.StreakBonus(record.CurrentStreak + 1)
	if broken {
		nextDayBonus = services.StreakBonus(1)
	}

	return StreakInfo{
		UserID:            record.UserID,
		CurrentStreak:     record.CurrentStreak,
		LongestStreak:     record.LongestStreak,
		DaysSinceActivity: daysSince,
		AtRisk:            daysSince >= 1,
		Broken:            broken,
		CurrentBonus:      services.StreakBonus(record.CurrentStreak),
		NextDayBonus:      nextDayBonus,
		LastActivity:      record.LastActivity,
	}, nil
}

// AchievementProgress describes one badge's earn state and progress toward
// its stat threshold.
type AchievementProgress struct {
	Kind       entities.AchievementType
	Earned     bool
	Progress   uint64
	Required   uint64
	Percentage uint8
}

// GetAchievementProgress reports progress for every badge kind that has a
// measurable threshold. SeasonWinner is excluded: it is awarded by the
// seasonal surface outside this core.
func (q ReputationQueries) GetAchievementProgress(ctx context.Context, userID string) ([]AchievementProgress, error) {
	record, err := q.GetUserReputation(ctx, userID)
	if err != nil {
		return nil, err
	}

	maxCategory := uint64(0)
	for _, points := range record.CategoryPoints {
		if points > maxCategory {
			maxCategory = points
		}
	}

	entries := []AchievementProgress{
		progressEntry(record, entities.AchievementFirstVote, record.VotesCast, 1),
		progressEntry(record, entities.AchievementWeeklyStreak, uint64(record.CurrentStreak), 7),
		progressEntry(record, entities.AchievementMonthlyStreak, uint64(record.CurrentStreak), 30),
		progressEntry(record, entities.AchievementTopContributor, record.TotalScore, 10000),
		progressEntry(record, entities.AchievementConsistentVoter, record.VotesCast, 100),
		progressEntry(record, entities.AchievementCategoryExpert, maxCategory, 5000),
		progressEntry(record, entities.AchievementCommunityBuilder,
			record.CategoryPoints[entities.CategoryCommunity.Index()], 3000),
	}
	return entries, nil
}

func progressEntry(
	record entities.UserReputationRecord,
	kind entities.AchievementType,
	value uint64,
	required uint64,
) AchievementProgress {
	progress := value
	if progress > required {
		progress = required
	}
	return AchievementProgress{
		Kind:       kind,
		Earned:     record.HasAchievement(kind),
		Progress:   progress,
		Required:   required,
		Percentage: uint8(progress * 100 / required),
	}
}

// GetAvailableRoleUnlocks lists every level the user could claim right now.
func (q ReputationQueries) GetAvailableRoleUnlocks(ctx context.Context, userID string) ([]uint8, error) {
	config, err := q.Config.Snapshot(ctx)
	if err != nil {
		return nil, err
	}
	record, err := q.GetUserReputation(ctx, userID)
	if err != nil {
		return nil, err
	}

	var available []uint8
	for i, threshold := range config.RoleThresholds {
		level := uint8(i + 1)
		if record.TotalScore >= threshold && record.RoleLevel < level {
			available = append(available, level)
		}
	}
	return available, nil
}

// CheckRoleRequirements reports whether a claim for the level would succeed.
func (q ReputationQueries) CheckRoleRequirements(ctx context.Context, userID string, level uint8) (bool, error) {
	config, err := q.Config.Snapshot(ctx)
	if err != nil {
		return false, err
	}
	record, err := q.GetUserReputation(ctx, userID)
	if err != nil {
		return false, err
	}
	err = services.CheckRoleClaim(record, level, config.RoleThresholds)
	switch err {
	case nil:
		return true, nil
	case domainerrors.ErrRoleRequirementsNotMet:
		return false, nil
	default:
		return false, err
	}
}

// DecayPreview projects what ApplyDecay would do without mutating anything,
// using the same factor the real decay applies.
type DecayPreview struct {
	CurrentPoints   [entities.CategoryCount]uint64
	ProjectedPoints [entities.CategoryCount]uint64
	DecayAmounts    [entities.CategoryCount]uint64
	ProjectedScore  uint64
	ProjectedLevel  uint8
	DaysInactive    int64
	FactorBps       uint64
	WillDecay       bool
}

func (q ReputationQueries) PreviewDecay(ctx context.Context, userID string) (DecayPreview, error) {
	config, err := q.Config.Snapshot(ctx)
	if err != nil {
		return DecayPreview{}, err
	}
	record, err := q.GetUserReputation(ctx, userID)
	if err != nil {
		return DecayPreview{}, err
	}

	now := q.now()
	days := int64(0)
	if record.LastActivity > 0 {
		days = services.DaysInactive(record.LastActivity, now)
	}

	preview := DecayPreview{
		CurrentPoints: record.CategoryPoints,
		DaysInactive:  days,
		FactorBps:     entities.WeightDenominator,
		WillDecay:     config.DecayEnabled && days > 0,
	}
	if preview.WillDecay {
		preview.FactorBps = services.DecayFactor(record.LastActivity, now, config.DecayRateBps)
	}
	for i := 0; i < entities.CategoryCount; i++ {
		preview.ProjectedPoints[i] = services.ApplyDecayFactor(record.CategoryPoints[i], preview.FactorBps)
		preview.DecayAmounts[i] = record.CategoryPoints[i] - preview.ProjectedPoints[i]
	}
	preview.ProjectedScore = services.ComputeScore(preview.ProjectedPoints, config.CategoryWeights)
	preview.ProjectedLevel = services.ResolveRoleLevel(preview.ProjectedScore, config.RoleThresholds)
	return preview, nil
}
