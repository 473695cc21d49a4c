package repository

import (
	"context"

	"github.com/lshigami/ShambaQuest/internal/model"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type BadgeRepository interface {
	ListAll(ctx context.Context) ([]model.Badge, error)
	// HeldBadgeNames returns the names of badges the user already holds.
	HeldBadgeNames(ctx context.Context, userID string) ([]string, error)
	// Grant inserts a user badge. It returns false without error when the
	// user already holds the badge.
	Grant(ctx context.Context, userID, badgeID string) (bool, error)
	ListForUser(ctx context.Context, userID string) ([]model.UserBadge, error)
	CountForUser(ctx context.Context, userID string) (int64, error)
	// UpsertCatalog inserts missing badges and refreshes requirement and
	// description of existing ones, matched by name.
	UpsertCatalog(ctx context.Context, badges []model.Badge) error
}

type badgeRepository struct {
	db *gorm.DB
}

func NewBadgeRepository(db *gorm.DB) BadgeRepository {
	return &badgeRepository{db: db}
}

func (r *badgeRepository) ListAll(ctx context.Context) ([]model.Badge, error) {
	var badges []model.Badge
	err := r.db.WithContext(ctx).Order("xp_requirement ASC").Find(&badges).Error
	return badges, err
}

func (r *badgeRepository) HeldBadgeNames(ctx context.Context, userID string) ([]string, error) {
	var names []string
	err := r.db.WithContext(ctx).Model(&model.UserBadge{}).
		Joins("JOIN badges ON badges.id = user_badges.badge_id").
		Where("user_badges.user_id = ?", userID).
		Pluck("badges.name", &names).Error
	return names, err
}

func (r *badgeRepository) Grant(ctx context.Context, userID, badgeID string) (bool, error) {
	res := r.db.WithContext(ctx).
		Omit("Badge").
		Clauses(clause.OnConflict{DoNothing: true}).
		Create(&model.UserBadge{UserID: userID, BadgeID: badgeID})
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}

func (r *badgeRepository) ListForUser(ctx context.Context, userID string) ([]model.UserBadge, error) {
	var userBadges []model.UserBadge
	err := r.db.WithContext(ctx).
		Preload("Badge").
		Where("user_id = ?", userID).
		Order("earned_at DESC").
		Find(&userBadges).Error
	return userBadges, err
}

func (r *badgeRepository) CountForUser(ctx context.Context, userID string) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&model.UserBadge{}).Where("user_id = ?", userID).Count(&count).Error
	return count, err
}

func (r *badgeRepository) UpsertCatalog(ctx context.Context, badges []model.Badge) error {
	if len(badges) == 0 {
		return nil
	}
	return r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "name"}},
		DoUpdates: clause.AssignmentColumns([]string{"description", "xp_requirement"}),
	}).Create(&badges).Error
}
