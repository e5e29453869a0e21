package http

type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

type UserReputationDTO struct {
	UserID         string            `json:"user_id"`
	CategoryPoints map[string]uint64 `json:"category_points"`
	RawVotes       map[string]uint64 `json:"raw_votes"`
	SeasonalPoints map[string]uint64 `json:"seasonal_points"`
	TotalScore     uint64            `json:"total_score"`
	RoleLevel      uint8             `json:"role_level"`
	Achievements   []string          `json:"achievements"`
	CurrentStreak  uint32            `json:"current_streak"`
	LongestStreak  uint32            `json:"longest_streak"`
	VotesCast      uint64            `json:"votes_cast"`
	LastActivity   int64             `json:"last_activity"`
	CreatedAt      int64             `json:"created_at"`
	LastUpdated    int64             `json:"last_updated"`
}

type InitializeUserRequest struct {
	UserID string `json:"user_id"`
}

type InitializeUserResponse struct {
	User UserReputationDTO `json:"user"`
}

type GetUserReputationResponse struct {
	User UserReputationDTO `json:"user"`
}

type CastVoteRequest struct {
	TargetID  string `json:"target_id"`
	Direction string `json:"direction"`
	Category  string `json:"category"`
	Weight    uint8  `json:"weight"`
}

type CastVoteResponse struct {
	Voter         UserReputationDTO `json:"voter"`
	Target        UserReputationDTO `json:"target"`
	PointsApplied uint64            `json:"points_applied"`
	NewBadges     []string          `json:"new_badges"`
}

type ApplyDecayResponse struct {
	User         UserReputationDTO `json:"user"`
	DaysInactive int64             `json:"days_inactive"`
	FactorBps    uint64            `json:"factor_bps"`
	TotalDecayed uint64            `json:"total_decayed"`
}

type ClaimRoleUnlockRequest struct {
	Level uint8 `json:"level"`
}

type ClaimRoleUnlockResponse struct {
	User      UserReputationDTO `json:"user"`
	NewBadges []string          `json:"new_badges"`
}

type UpdateStreakResponse struct {
	User      UserReputationDTO `json:"user"`
	Updated   bool              `json:"updated"`
	Extended  bool              `json:"extended"`
	Reset     bool              `json:"reset"`
	Bonus     uint64            `json:"bonus"`
	NewBadges []string          `json:"new_badges"`
}

type AwardAchievementRequest struct {
	Achievement string `json:"achievement"`
}

type AwardAchievementResponse struct {
	User UserReputationDTO `json:"user"`
}

type RevokeAchievementRequest struct {
	Achievement string `json:"achievement"`
}

type RevokeAchievementResponse struct {
	User UserReputationDTO `json:"user"`
}

type AutoAwardAchievementsResponse struct {
	User    UserReputationDTO `json:"user"`
	Awarded []string          `json:"awarded"`
}

type AdjustReputationRequest struct {
	Category string `json:"category"`
	Delta    int64  `json:"delta"`
	Reason   string `json:"reason"`
}

type AdjustReputationResponse struct {
	User UserReputationDTO `json:"user"`
}

type StreakInfoResponse struct {
	UserID            string `json:"user_id"`
	CurrentStreak     uint32 `json:"current_streak"`
	LongestStreak     uint32 `json:"longest_streak"`
	DaysSinceActivity int64  `json:"days_since_activity"`
	AtRisk            bool   `json:"at_risk"`
	Broken            bool   `json:"broken"`
	CurrentBonus      uint64 `json:"current_bonus"`
	NextDayBonus      uint64 `json:"next_day_bonus"`
	LastActivity      int64  `json:"last_activity"`
}

type AchievementProgressDTO struct {
	Achievement string `json:"achievement"`
	Earned      bool   `json:"earned"`
	Progress    uint64 `json:"progress"`
	Required    uint64 `json:"required"`
	Percentage  uint8  `json:"percentage"`
}

type AchievementProgressResponse struct {
	Items []AchievementProgressDTO `json:"items"`
}

type AvailableRoleUnlocksResponse struct {
	Available []uint8 `json:"available"`
}

type CheckRoleRequirementsResponse struct {
	Level    uint8 `json:"level"`
	Eligible bool  `json:"eligible"`
}

type DecayPreviewResponse struct {
	CurrentPoints   map[string]uint64 `json:"current_points"`
	ProjectedPoints map[string]uint64 `json:"projected_points"`
	DecayAmounts    map[string]uint64 `json:"decay_amounts"`
	ProjectedScore  uint64            `json:"projected_score"`
	ProjectedLevel  uint8             `json:"projected_level"`
	DaysInactive    int64             `json:"days_inactive"`
	FactorBps       uint64            `json:"factor_bps"`
	WillDecay       bool              `json:"will_decay"`
}
