package commands

import (
	"context"
	"strings"

	"quorum/contexts/governance-community/reputation-engine/application"
	"quorum/contexts/governance-community/reputation-engine/domain/entities"
	domainerrors "quorum/contexts/governance-community/reputation-engine/domain/errors"
	"quorum/contexts/governance-community/reputation-engine/domain/services"
	"quorum/contexts/governance-community/reputation-engine/ports"
)

// CastVoteCommand is the write-model input for the vote-casting operation.
type CastVoteCommand struct {
	VoterID   string
	TargetID  string
	Direction entities.VoteDirection
	Category  entities.Category
	Weight    uint8
}

// CastVoteResult returns the committed state of all three records plus the
// point magnitude that was applied to the target.
type CastVoteResult struct {
	Voter         entities.UserReputationRecord
	Target        entities.UserReputationRecord
	Pair          entities.VotingRecord
	PointsApplied uint64
	NewBadges     []entities.AchievementType
}

const baseVotePoints = 10

// CastVote runs the central state transition: ordered eligibility checks,
// point mutation on the target, streak bookkeeping on the voter, and the
// rate-limit record update, committed all-or-nothing. Every mutation happens
// on working copies; nothing is persisted until CommitVote.
func (uc UseCase) CastVote(ctx context.Context, cmd CastVoteCommand) (CastVoteResult, error) {
	logger := application.ResolveLogger(uc.Logger)

	voterID := strings.TrimSpace(cmd.VoterID)
	targetID := strings.TrimSpace(cmd.TargetID)
	if voterID == "" || targetID == "" || !cmd.Direction.Valid() {
		return CastVoteResult{}, domainerrors.ErrInvalidRequest
	}
	if !cmd.Category.Valid() {
		return CastVoteResult{}, domainerrors.ErrInvalidCategory
	}

	config, err := uc.resolveConfig(ctx)
	if err != nil {
		return CastVoteResult{}, err
	}
	now := uc.now().Unix()

	// Precondition order is part of the contract: first failure wins.
	if voterID == targetID {
		return CastVoteResult{}, domainerrors.ErrCannotVoteOnSelf
	}
	if cmd.Weight == 0 || cmd.Weight > 10 {
		return CastVoteResult{}, domainerrors.ErrInvalidVoteWeight
	}

	voter, err := uc.Repo.GetUserRecord(ctx, voterID)
	if err != nil {
		return CastVoteResult{}, err
	}
	target, err := uc.Repo.GetUserRecord(ctx, targetID)
	if err != nil {
		return CastVoteResult{}, err
	}

	if now-voter.CreatedAt < config.MinAccountAge {
		return CastVoteResult{}, domainerrors.ErrAccountTooNew
	}

	pair, found, err := uc.Repo.GetVotingRecord(ctx, voterID, targetID)
	if err != nil {
		return CastVoteResult{}, err
	}
	if !found {
		pair = entities.NewVotingRecord(voterID, targetID, now)
	}
	if err := services.CheckAndRecordVote(&pair, now, config.VotingCooldown, config.DailyVoteLimit, entities.VoteHistoryEntry{
		Category:  cmd.Category,
		Direction: cmd.Direction,
		Timestamp: now,
	}); err != nil {
		logger.Warn("vote rejected by rate limiter",
			"event", "reputation_vote_rate_limited",
			"module", "governance-community/reputation-engine",
			"layer", "application",
			"voter_id", voterID,
			"target_id", targetID,
			"error", err.Error(),
		)
		return CastVoteResult{}, err
	}

	if voter.TotalScore < config.MinReputationToVote {
		return CastVoteResult{}, domainerrors.ErrInsufficientReputation
	}

	// Effect magnitude: the voter's own streak bonus feeds back in damped,
	// so established voters' opinions carry slightly more.
	base := uint64(cmd.Weight) * baseVotePoints
	totalPoints := base + services.StreakBonus(voter.CurrentStreak)/10
	appliedPoints := totalPoints

	idx := cmd.Category.Index()
	if cmd.Direction == entities.VoteDirectionUp {
		if target.RawVotes[idx], err = services.SafeAddPoints(target.RawVotes[idx], totalPoints); err != nil {
			return CastVoteResult{}, err
		}
		if target.CategoryPoints[idx], err = services.SafeAddPoints(target.CategoryPoints[idx], totalPoints); err != nil {
			return CastVoteResult{}, err
		}
		if target.SeasonalPoints[idx], err = services.SafeAddPoints(target.SeasonalPoints[idx], totalPoints); err != nil {
			return CastVoteResult{}, err
		}
	} else {
		// Downvotes land at half magnitude and never touch raw votes,
		// asymmetric on purpose to blunt brigading.
		appliedPoints = totalPoints / 2
		if target.CategoryPoints[idx], err = services.SafeSubtractPoints(target.CategoryPoints[idx], appliedPoints); err != nil {
			return CastVoteResult{}, err
		}
	}

	target.TotalScore = services.ComputeScore(target.CategoryPoints, config.CategoryWeights)
	target.RoleLevel = services.ResolveRoleLevel(target.TotalScore, config.RoleThresholds)
	target.LastActivity = now
	target.LastUpdated = now

	// Voter bookkeeping: the vote counts as the voter's daily participation.
	streakOutcome := services.AdvanceStreak(&voter, now)
	if streakOutcome.Bonus > 0 {
		voter.TotalScore = services.ComputeScore(voter.CategoryPoints, config.CategoryWeights)
		voter.RoleLevel = services.ResolveRoleLevel(voter.TotalScore, config.RoleThresholds)
	}
	voter.VotesCast++
	voter.LastActivity = now
	voter.LastUpdated = now

	newBadges := streakOutcome.NewBadges
	for _, kind := range []entities.AchievementType{entities.AchievementFirstVote, entities.AchievementConsistentVoter} {
		if !voter.HasAchievement(kind) && services.EligibleForAchievement(voter, kind) {
			voter.AwardAchievement(kind)
			newBadges = append(newBadges, kind)
		}
	}

	if err := uc.Repo.CommitVote(ctx, ports.VoteMutation{Voter: voter, Target: target, Pair: pair}); err != nil {
		return CastVoteResult{}, err
	}

	if err := uc.appendEvent(ctx, "reputation.vote.cast", targetID, uc.now(), map[string]any{
		"voter_id":  voterID,
		"target_id": targetID,
		"direction": string(cmd.Direction),
		"category":  cmd.Category.String(),
		"weight":    cmd.Weight,
		"points":    appliedPoints,
	}); err != nil {
		return CastVoteResult{}, err
	}

	logger.Info("vote cast",
		"event", "reputation_vote_cast",
		"module", "governance-community/reputation-engine",
		"layer", "application",
		"voter_id", voterID,
		"target_id", targetID,
		"direction", string(cmd.Direction),
		"category", cmd.Category.String(),
		"weight", cmd.Weight,
		"points", appliedPoints,
		"target_score", target.TotalScore,
	)

	return CastVoteResult{
		Voter:         voter,
		Target:        target,
		Pair:          pair,
		PointsApplied: appliedPoints,
		NewBadges:     newBadges,
	}, nil
}
