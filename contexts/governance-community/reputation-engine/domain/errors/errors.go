package errors

import "errors"

var (
	ErrInvalidRequest = errors.New("invalid request")
	ErrUserNotFound   = errors.New("user reputation record not found")
	ErrUserExists     = errors.New("user reputation record already exists")

	// Vote eligibility.
	ErrCannotVoteOnSelf       = errors.New("cannot vote on yourself")
	ErrInvalidVoteWeight      = errors.New("vote weight must be between 1 and 10")
	ErrInvalidCategory        = errors.New("invalid reputation category")
	ErrAccountTooNew          = errors.New("account is too new to vote")
	ErrCooldownActive         = errors.New("voting cooldown has not expired")
	ErrDailyLimitExceeded     = errors.New("daily vote limit exceeded")
	ErrInsufficientReputation = errors.New("insufficient reputation to vote")

	// Arithmetic safety.
	ErrNumericalOverflow  = errors.New("numerical overflow in points calculation")
	ErrNegativeReputation = errors.New("points change would result in negative reputation")

	// Decay preconditions.
	ErrDecayDisabled     = errors.New("reputation decay is disabled")
	ErrNoActivityToDecay = errors.New("no activity to decay")

	// Roles and achievements.
	ErrInvalidRoleLevel          = errors.New("invalid role level")
	ErrRoleRequirementsNotMet    = errors.New("role unlock requirements not met")
	ErrAchievementAlreadyAwarded = errors.New("achievement already awarded")
	ErrAchievementNotHeld        = errors.New("achievement not held")

	// Configuration.
	ErrInvalidConfiguration   = errors.New("configuration values out of valid range")
	ErrInvalidCategoryWeights = errors.New("category weights do not sum to 10000")
	ErrInvalidRoleThresholds  = errors.New("role thresholds are not strictly ascending")
)
