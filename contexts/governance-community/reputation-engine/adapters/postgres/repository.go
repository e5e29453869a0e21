package postgresadapter

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"strings"
	"time"

	"quorum/contexts/governance-community/reputation-engine/domain/entities"
	domainerrors "quorum/contexts/governance-community/reputation-engine/domain/errors"
	"quorum/contexts/governance-community/reputation-engine/ports"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

const (
	outboxStatusPending   = "pending"
	outboxStatusPublished = "published"
)

type Repository struct {
	db     *gorm.DB
	logger *slog.Logger
}

func NewRepository(db *gorm.DB, logger *slog.Logger) *Repository {
	if logger == nil {
		logger = slog.Default()
	}
	return &Repository{
		db:     db,
		logger: logger,
	}
}

// Migrate creates the reputation tables when they do not exist yet.
func (r *Repository) Migrate() error {
	return r.db.AutoMigrate(
		&userReputationModel{},
		&votingRecordModel{},
		&outboxModel{},
	)
}

func (r *Repository) GetUserRecord(ctx context.Context, userID string) (entities.UserReputationRecord, error) {
	var row userReputationModel
	err := r.db.WithContext(ctx).
		Where("user_id = ?", strings.TrimSpace(userID)).
		First(&row).
		Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return entities.UserReputationRecord{}, domainerrors.ErrUserNotFound
		}
		return entities.UserReputationRecord{}, err
	}
	return row.toEntity(), nil
}

func (r *Repository) CreateUserRecord(ctx context.Context, record entities.UserReputationRecord) error {
	row := userReputationModelFromEntity(record)
	if err := r.db.WithContext(ctx).Create(&row).Error; err != nil {
		if isUniqueViolation(err) {
			return domainerrors.ErrUserExists
		}
		return err
	}
	return nil
}

func (r *Repository) SaveUserRecord(ctx context.Context, record entities.UserReputationRecord) error {
	row := userReputationModelFromEntity(record)
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "user_id"}},
			UpdateAll: true,
		}).
		Create(&row).
		Error
}

func (r *Repository) GetVotingRecord(ctx context.Context, voterID, targetID string) (entities.VotingRecord, bool, error) {
	var row votingRecordModel
	err := r.db.WithContext(ctx).
		Where("voter_id = ? AND target_id = ?", strings.TrimSpace(voterID), strings.TrimSpace(targetID)).
		First(&row).
		Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return entities.VotingRecord{}, false, nil
		}
		return entities.VotingRecord{}, false, err
	}
	record, err := row.toEntity()
	if err != nil {
		return entities.VotingRecord{}, false, err
	}
	return record, true, nil
}

// CommitVote persists the voter, the target, and the pair record in one
// transaction. A failure anywhere rolls the whole vote back.
func (r *Repository) CommitVote(ctx context.Context, mutation ports.VoteMutation) error {
	voterRow := userReputationModelFromEntity(mutation.Voter)
	targetRow := userReputationModelFromEntity(mutation.Target)
	pairRow, err := votingRecordModelFromEntity(mutation.Pair)
	if err != nil {
		return err
	}

	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		upsertUser := clause.OnConflict{
			Columns:   []clause.Column{{Name: "user_id"}},
			UpdateAll: true,
		}
		if err := tx.Clauses(upsertUser).Create(&voterRow).Error; err != nil {
			return err
		}
		if err := tx.Clauses(upsertUser).Create(&targetRow).Error; err != nil {
			return err
		}
		return tx.Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "voter_id"}, {Name: "target_id"}},
			UpdateAll: true,
		}).Create(&pairRow).Error
	})
}

func (r *Repository) Append(ctx context.Context, envelope ports.EventEnvelope) error {
	payload, err := json.Marshal(envelope)
	if err != nil {
		return err
	}
	row := outboxModel{
		OutboxID:  strings.TrimSpace(envelope.EventID),
		EventType: strings.TrimSpace(envelope.EventType),
		EntityID:  strings.TrimSpace(envelope.EntityID),
		Payload:   payload,
		Status:    outboxStatusPending,
		CreatedAt: envelope.OccurredAt.UTC(),
	}
	if row.OutboxID == "" {
		row.OutboxID = uuid.NewString()
	}
	if row.CreatedAt.IsZero() {
		row.CreatedAt = time.Now().UTC()
	}
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "outbox_id"}},
			DoNothing: true,
		}).
		Create(&row).
		Error
}

func (r *Repository) ListPendingOutbox(ctx context.Context, limit int) ([]ports.OutboxMessage, error) {
	var rows []outboxModel
	err := r.db.WithContext(ctx).
		Where("status = ?", outboxStatusPending).
		Order("created_at ASC").
		Limit(limit).
		Find(&rows).
		Error
	if err != nil {
		return nil, err
	}
	messages := make([]ports.OutboxMessage, 0, len(rows))
	for _, row := range rows {
		messages = append(messages, ports.OutboxMessage{
			OutboxID:   row.OutboxID,
			EventType:  row.EventType,
			Payload:    row.Payload,
			Status:     row.Status,
			RetryCount: row.RetryCount,
		})
	}
	return messages, nil
}

func (r *Repository) MarkOutboxSent(ctx context.Context, outboxID string, sentAt time.Time) error {
	sentAt = sentAt.UTC()
	return r.db.WithContext(ctx).
		Model(&outboxModel{}).
		Where("outbox_id = ?", strings.TrimSpace(outboxID)).
		Updates(map[string]any{
			"status":       outboxStatusPublished,
			"published_at": &sentAt,
		}).
		Error
}

type userReputationModel struct {
	UserID              string `gorm:"column:user_id;primaryKey"`
	GovernancePoints    uint64 `gorm:"column:governance_points"`
	DevelopmentPoints   uint64 `gorm:"column:development_points"`
	CommunityPoints     uint64 `gorm:"column:community_points"`
	TreasuryPoints      uint64 `gorm:"column:treasury_points"`
	GovernanceRaw       uint64 `gorm:"column:governance_raw"`
	DevelopmentRaw      uint64 `gorm:"column:development_raw"`
	CommunityRaw        uint64 `gorm:"column:community_raw"`
	TreasuryRaw         uint64 `gorm:"column:treasury_raw"`
	GovernanceSeasonal  uint64 `gorm:"column:governance_seasonal"`
	DevelopmentSeasonal uint64 `gorm:"column:development_seasonal"`
	CommunitySeasonal   uint64 `gorm:"column:community_seasonal"`
	TreasurySeasonal    uint64 `gorm:"column:treasury_seasonal"`
	TotalScore          uint64 `gorm:"column:total_score"`
	RoleLevel           uint8  `gorm:"column:role_level"`
	Achievements        uint64 `gorm:"column:achievements"`
	CurrentStreak       uint32 `gorm:"column:current_streak"`
	LongestStreak       uint32 `gorm:"column:longest_streak"`
	VotesCast           uint64 `gorm:"column:votes_cast"`
	LastActivity        int64  `gorm:"column:last_activity"`
	CreatedAt           int64  `gorm:"column:created_at"`
	LastUpdated         int64  `gorm:"column:last_updated"`
}

func (userReputationModel) TableName() string {
	return "reputation_users"
}

func userReputationModelFromEntity(item entities.UserReputationRecord) userReputationModel {
	return userReputationModel{
		UserID:              strings.TrimSpace(item.UserID),
		GovernancePoints:    item.CategoryPoints[entities.CategoryGovernance.Index()],
		DevelopmentPoints:   item.CategoryPoints[entities.CategoryDevelopment.Index()],
		CommunityPoints:     item.CategoryPoints[entities.CategoryCommunity.Index()],
		TreasuryPoints:      item.CategoryPoints[entities.CategoryTreasury.Index()],
		GovernanceRaw:       item.RawVotes[entities.CategoryGovernance.Index()],
		DevelopmentRaw:      item.RawVotes[entities.CategoryDevelopment.Index()],
		CommunityRaw:        item.RawVotes[entities.CategoryCommunity.Index()],
		TreasuryRaw:         item.RawVotes[entities.CategoryTreasury.Index()],
		GovernanceSeasonal:  item.SeasonalPoints[entities.CategoryGovernance.Index()],
		DevelopmentSeasonal: item.SeasonalPoints[entities.CategoryDevelopment.Index()],
		CommunitySeasonal:   item.SeasonalPoints[entities.CategoryCommunity.Index()],
		TreasurySeasonal:    item.SeasonalPoints[entities.CategoryTreasury.Index()],
		TotalScore:          item.TotalScore,
		RoleLevel:           item.RoleLevel,
		Achievements:        item.Achievements,
		CurrentStreak:       item.CurrentStreak,
		LongestStreak:       item.LongestStreak,
		VotesCast:           item.VotesCast,
		LastActivity:        item.LastActivity,
		CreatedAt:           item.CreatedAt,
		LastUpdated:         item.LastUpdated,
	}
}

func (m userReputationModel) toEntity() entities.UserReputationRecord {
	record := entities.UserReputationRecord{
		UserID:        m.UserID,
		TotalScore:    m.TotalScore,
		RoleLevel:     m.RoleLevel,
		Achievements:  m.Achievements,
		CurrentStreak: m.CurrentStreak,
		LongestStreak: m.LongestStreak,
		VotesCast:     m.VotesCast,
		LastActivity:  m.LastActivity,
		CreatedAt:     m.CreatedAt,
		LastUpdated:   m.LastUpdated,
	}
	record.CategoryPoints[entities.CategoryGovernance.Index()] = m.GovernancePoints
	record.CategoryPoints[entities.CategoryDevelopment.Index()] = m.DevelopmentPoints
	record.CategoryPoints[entities.CategoryCommunity.Index()] = m.CommunityPoints
	record.CategoryPoints[entities.CategoryTreasury.Index()] = m.TreasuryPoints
	record.RawVotes[entities.CategoryGovernance.Index()] = m.GovernanceRaw
	record.RawVotes[entities.CategoryDevelopment.Index()] = m.DevelopmentRaw
	record.RawVotes[entities.CategoryCommunity.Index()] = m.CommunityRaw
	record.RawVotes[entities.CategoryTreasury.Index()] = m.TreasuryRaw
	record.SeasonalPoints[entities.CategoryGovernance.Index()] = m.GovernanceSeasonal
	record.SeasonalPoints[entities.CategoryDevelopment.Index()] = m.DevelopmentSeasonal
	record.SeasonalPoints[entities.CategoryCommunity.Index()] = m.CommunitySeasonal
	record.SeasonalPoints[entities.CategoryTreasury.Index()] = m.TreasurySeasonal
	return record
}

type votingRecordModel struct {
	VoterID            string `gorm:"column:voter_id;primaryKey"`
	TargetID           string `gorm:"column:target_id;primaryKey"`
	LastVote           int64  `gorm:"column:last_vote"`
	DailyVotes         uint8  `gorm:"column:daily_votes"`
	LastDailyReset     int64  `gorm:"column:last_daily_reset"`
	TotalVotesOnTarget uint64 `gorm:"column:total_votes_on_target"`
	History            []byte `gorm:"column:history;type:jsonb"`
	HistoryCursor      uint8  `gorm:"column:history_cursor"`
}

func (votingRecordModel) TableName() string {
	return "reputation_voting_records"
}

type historyEntryRow struct {
	Category  uint8  `json:"category"`
	Direction string `json:"direction"`
	Timestamp int64  `json:"timestamp"`
}

func votingRecordModelFromEntity(item entities.VotingRecord) (votingRecordModel, error) {
	rows := make([]historyEntryRow, 0, entities.VoteHistoryCapacity)
	for _, entry := range item.History {
		rows = append(rows, historyEntryRow{
			Category:  uint8(entry.Category),
			Direction: string(entry.Direction),
			Timestamp: entry.Timestamp,
		})
	}
	history, err := json.Marshal(rows)
	if err != nil {
		return votingRecordModel{}, err
	}
	return votingRecordModel{
		VoterID:            strings.TrimSpace(item.VoterID),
		TargetID:           strings.TrimSpace(item.TargetID),
		LastVote:           item.LastVote,
		DailyVotes:         item.DailyVotes,
		LastDailyReset:     item.LastDailyReset,
		TotalVotesOnTarget: item.TotalVotesOnTarget,
		History:            history,
		HistoryCursor:      item.HistoryCursor,
	}, nil
}

func (m votingRecordModel) toEntity() (entities.VotingRecord, error) {
	record := entities.VotingRecord{
		VoterID:            m.VoterID,
		TargetID:           m.TargetID,
		LastVote:           m.LastVote,
		DailyVotes:         m.DailyVotes,
		LastDailyReset:     m.LastDailyReset,
		TotalVotesOnTarget: m.TotalVotesOnTarget,
		HistoryCursor:      m.HistoryCursor,
	}
	if len(m.History) == 0 {
		return record, nil
	}
	var rows []historyEntryRow
	if err := json.Unmarshal(m.History, &rows); err != nil {
		return entities.VotingRecord{}, err
	}
	for i, row := range rows {
		if i >= entities.VoteHistoryCapacity {
			break
		}
		record.History[i] = entities.VoteHistoryEntry{
			Category:  entities.Category(row.Category),
			Direction: entities.VoteDirection(row.Direction),
			Timestamp: row.Timestamp,
		}
	}
	return record, nil
}

type outboxModel struct {
	OutboxID    string     `gorm:"column:outbox_id;primaryKey"`
	EventType   string     `gorm:"column:event_type"`
	EntityID    string     `gorm:"column:entity_id"`
	Payload     []byte     `gorm:"column:payload;type:jsonb"`
	Status      string     `gorm:"column:status"`
	CreatedAt   time.Time  `gorm:"column:created_at"`
	PublishedAt *time.Time `gorm:"column:published_at"`
	RetryCount  int        `gorm:"column:retry_count"`
}

func (outboxModel) TableName() string {
	return "reputation_outbox"
}

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23505"
}
