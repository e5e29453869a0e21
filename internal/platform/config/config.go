package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"quorum/contexts/governance-community/reputation-engine/domain/entities"
)

// Config is centralized process configuration.
// Keep infra values here and pass typed config into builders.
type Config struct {
	ServiceName  string
	HTTPPort     string
	PostgresDSN  string
	KafkaBrokers []string
	AdminToken   string

	VotingCooldownSeconds int64
	MinAccountAgeSeconds  int64
	DailyVoteLimit        uint8
	MinReputationToVote   uint64
	CategoryWeights       [entities.CategoryCount]uint16
	RoleThresholds        []uint64
	DecayRateBps          uint16
	DecayEnabled          bool
}

func Load() (Config, error) {
	service := os.Getenv("SERVICE_NAME")
	if service == "" {
		service = "quorum"
	}

	port := os.Getenv("HTTP_PORT")
	if port == "" {
		port = "8080"
	}

	var brokers []string
	for _, value := range strings.Split(os.Getenv("KAFKA_BROKERS"), ",") {
		value = strings.TrimSpace(value)
		if value != "" {
			brokers = append(brokers, value)
		}
	}
	if len(brokers) == 0 {
		brokers = []string{"localhost:9092"}
	}

	cfg := Config{
		ServiceName:  service,
		HTTPPort:     port,
		PostgresDSN:  os.Getenv("POSTGRES_DSN"),
		KafkaBrokers: brokers,
		AdminToken:   os.Getenv("ADMIN_TOKEN"),

		VotingCooldownSeconds: envInt64("REPUTATION_VOTING_COOLDOWN_SECONDS", 3600),
		MinAccountAgeSeconds:  envInt64("REPUTATION_MIN_ACCOUNT_AGE_SECONDS", 86400),
		DailyVoteLimit:        uint8(envInt64("REPUTATION_DAILY_VOTE_LIMIT", 10)),
		MinReputationToVote:   uint64(envInt64("REPUTATION_MIN_REPUTATION_TO_VOTE", 0)),
		DecayRateBps:          uint16(envInt64("REPUTATION_DECAY_RATE_BPS", 10)),
		DecayEnabled:          envBool("REPUTATION_DECAY_ENABLED", true),
	}

	weights, err := envWeights("REPUTATION_CATEGORY_WEIGHTS", [entities.CategoryCount]uint16{3000, 3000, 2000, 2000})
	if err != nil {
		return Config{}, err
	}
	cfg.CategoryWeights = weights

	thresholds, err := envThresholds("REPUTATION_ROLE_THRESHOLDS", []uint64{1000, 5000, 10000, 25000, 50000})
	if err != nil {
		return Config{}, err
	}
	cfg.RoleThresholds = thresholds

	snapshot := cfg.EngineSnapshot()
	if err := snapshot.Validate(); err != nil {
		return Config{}, fmt.Errorf("reputation config invalid: %w", err)
	}
	return cfg, nil
}

// EngineSnapshot converts process config into the immutable snapshot the
// reputation engine reads per operation.
func (c Config) EngineSnapshot() entities.ConfigSnapshot {
	return entities.ConfigSnapshot{
		VotingCooldown:      c.VotingCooldownSeconds,
		MinAccountAge:       c.MinAccountAgeSeconds,
		DailyVoteLimit:      c.DailyVoteLimit,
		MinReputationToVote: c.MinReputationToVote,
		CategoryWeights:     c.CategoryWeights,
		RoleThresholds:      append([]uint64(nil), c.RoleThresholds...),
		DecayRateBps:        c.DecayRateBps,
		DecayEnabled:        c.DecayEnabled,
	}
}

func envInt64(name string, fallback int64) int64 {
	raw := strings.TrimSpace(os.Getenv(name))
	if raw == "" {
		return fallback
	}
	value, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return fallback
	}
	return value
}

func envBool(name string, fallback bool) bool {
	raw := strings.TrimSpace(strings.ToLower(os.Getenv(name)))
	if raw == "" {
		return fallback
	}
	switch raw {
	case "1", "true", "t", "yes", "y", "on":
		return true
	case "0", "false", "f", "no", "n", "off":
		return false
	default:
		return fallback
	}
}

func envWeights(name string, fallback [entities.CategoryCount]uint16) ([entities.CategoryCount]uint16, error) {
	raw := strings.TrimSpace(os.Getenv(name))
	if raw == "" {
		return fallback, nil
	}
	parts := strings.Split(raw, ",")
	if len(parts) != entities.CategoryCount {
		return fallback, fmt.Errorf("%s must list %d weights", name, entities.CategoryCount)
	}
	var weights [entities.CategoryCount]uint16
	for i, part := range parts {
		value, err := strconv.ParseUint(strings.TrimSpace(part), 10, 16)
		if err != nil {
			return fallback, fmt.Errorf("%s entry %d: %w", name, i, err)
		}
		weights[i] = uint16(value)
	}
	return weights, nil
}

func envThresholds(name string, fallback []uint64) ([]uint64, error) {
	raw := strings.TrimSpace(os.Getenv(name))
	if raw == "" {
		return fallback, nil
	}
	parts := strings.Split(raw, ",")
	thresholds := make([]uint64, 0, len(parts))
	for i, part := range parts {
		value, err := strconv.ParseUint(strings.TrimSpace(part), 10, 64)
		if err != nil {
			return nil, fmt.Errorf("%s entry %d: %w", name, i, err)
		}
		thresholds = append(thresholds, value)
	}
	return thresholds, nil
}
