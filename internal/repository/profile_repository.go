package repository

import (
	"context"
	"fmt"

	"github.com/lshigami/ShambaQuest/internal/model"
	"gorm.io/datatypes"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type ProfileRepository interface {
	FindByID(ctx context.Context, userID string) (*model.Profile, error)
	FindByIDs(ctx context.Context, userIDs []string) ([]model.Profile, error)
	// AddXP atomically adds delta to the user's total XP, creating the
	// profile if needed, and stores levelFor(newTotal) as the current level.
	// The returned profile is the committed post-increment row.
	AddXP(ctx context.Context, userID string, delta int, levelFor func(totalXP int) int) (*model.Profile, error)
	UpdateOnboarding(ctx context.Context, userID, experienceLevel string, interests []string) (*model.Profile, error)
	TopByXP(ctx context.Context, limit int) ([]model.Profile, error)
}

type profileRepository struct {
	db *gorm.DB
}

func NewProfileRepository(db *gorm.DB) ProfileRepository {
	return &profileRepository{db: db}
}

func (r *profileRepository) FindByID(ctx context.Context, userID string) (*model.Profile, error) {
	var profile model.Profile
	if err := r.db.WithContext(ctx).First(&profile, "id = ?", userID).Error; err != nil {
		return nil, err
	}
	return &profile, nil
}

func (r *profileRepository) FindByIDs(ctx context.Context, userIDs []string) ([]model.Profile, error) {
	var profiles []model.Profile
	if len(userIDs) == 0 {
		return profiles, nil
	}
	err := r.db.WithContext(ctx).Where("id IN ?", userIDs).Find(&profiles).Error
	return profiles, err
}

func (r *profileRepository) AddXP(ctx context.Context, userID string, delta int, levelFor func(totalXP int) int) (*model.Profile, error) {
	if delta < 0 {
		return nil, fmt.Errorf("xp delta must not be negative, got %d", delta)
	}

	var profile model.Profile
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := r.ensureProfile(tx, userID); err != nil {
			return err
		}

		// Single-statement increment: the row lock it takes serialises
		// concurrent submissions for the same user until commit.
		res := tx.Model(&model.Profile{}).
			Where("id = ?", userID).
			Update("total_xp", gorm.Expr("total_xp + ?", delta))
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return fmt.Errorf("profile %s vanished during xp update", userID)
		}

		if err := tx.First(&profile, "id = ?", userID).Error; err != nil {
			return err
		}
		level := levelFor(profile.TotalXP)
		if level != profile.CurrentLevel {
			if err := tx.Model(&model.Profile{}).Where("id = ?", userID).Update("current_level", level).Error; err != nil {
				return err
			}
			profile.CurrentLevel = level
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &profile, nil
}

func (r *profileRepository) UpdateOnboarding(ctx context.Context, userID, experienceLevel string, interests []string) (*model.Profile, error) {
	var profile model.Profile
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := r.ensureProfile(tx, userID); err != nil {
			return err
		}
		updates := map[string]interface{}{
			"experience_level": experienceLevel,
			"interests":        datatypes.JSONSlice[string](interests),
		}
		if err := tx.Model(&model.Profile{}).Where("id = ?", userID).Updates(updates).Error; err != nil {
			return err
		}
		return tx.First(&profile, "id = ?", userID).Error
	})
	if err != nil {
		return nil, err
	}
	return &profile, nil
}

func (r *profileRepository) TopByXP(ctx context.Context, limit int) ([]model.Profile, error) {
	var profiles []model.Profile
	err := r.db.WithContext(ctx).
		Order("total_xp DESC").
		Order("created_at ASC").
		Limit(limit).
		Find(&profiles).Error
	return profiles, err
}

func (r *profileRepository) ensureProfile(tx *gorm.DB, userID string) error {
	return tx.Clauses(clause.OnConflict{DoNothing: true}).
		Create(&model.Profile{ID: userID, TotalXP: 0, CurrentLevel: 1}).Error
}
