package repository

import (
	"context"

	"github.com/lshigami/ShambaQuest/internal/model"
	"gorm.io/gorm"
)

// AttemptStats summarises a user's attempts.
type AttemptStats struct {
	Total   int64
	Correct int64
}

// AttemptRepository is append-only: attempts are never updated or deleted.
type AttemptRepository interface {
	Create(ctx context.Context, attempt *model.Attempt) error
	FindByID(ctx context.Context, id string) (*model.Attempt, error)
	FindRecentByUser(ctx context.Context, userID string, limit int) ([]model.Attempt, error)
	StatsByUser(ctx context.Context, userID string) (AttemptStats, error)
}

type attemptRepository struct {
	db *gorm.DB
}

func NewAttemptRepository(db *gorm.DB) AttemptRepository {
	return &attemptRepository{db: db}
}

func (r *attemptRepository) Create(ctx context.Context, attempt *model.Attempt) error {
	return r.db.WithContext(ctx).Omit("Question").Create(attempt).Error
}

func (r *attemptRepository) FindByID(ctx context.Context, id string) (*model.Attempt, error) {
	var attempt model.Attempt
	if err := r.db.WithContext(ctx).Preload("Question").First(&attempt, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &attempt, nil
}

func (r *attemptRepository) FindRecentByUser(ctx context.Context, userID string, limit int) ([]model.Attempt, error) {
	var attempts []model.Attempt
	err := r.db.WithContext(ctx).
		Preload("Question").
		Where("user_id = ?", userID).
		Order("attempted_at DESC").
		Limit(limit).
		Find(&attempts).Error
	return attempts, err
}

func (r *attemptRepository) StatsByUser(ctx context.Context, userID string) (AttemptStats, error) {
	var stats AttemptStats
	err := r.db.WithContext(ctx).Model(&model.Attempt{}).
		Select("COUNT(*) AS total, COALESCE(SUM(CASE WHEN is_correct THEN 1 ELSE 0 END), 0) AS correct").
		Where("user_id = ?", userID).
		Scan(&stats).Error
	return stats, err
}
