package model

import (
	"time"

	"gorm.io/gorm"
)

type Badge struct {
	ID            string    `gorm:"primaryKey;type:varchar(36)" json:"id"`
	Name          string    `json:"name" gorm:"not null;uniqueIndex"`
	Description   string    `json:"description"`
	XPRequirement int       `json:"xp_requirement" gorm:"not null"`
	CreatedAt     time.Time `json:"created_at"`
}

func (b *Badge) BeforeCreate(tx *gorm.DB) error {
	b.ID = newID(b.ID)
	return nil
}

// UserBadge records one award; (UserID, BadgeID) is unique.
type UserBadge struct {
	ID       string    `gorm:"primaryKey;type:varchar(36)" json:"id"`
	UserID   string    `json:"user_id" gorm:"type:varchar(64);not null;uniqueIndex:idx_user_badges_user_badge"`
	BadgeID  string    `json:"badge_id" gorm:"type:varchar(36);not null;uniqueIndex:idx_user_badges_user_badge"`
	Badge    Badge     `json:"badge" gorm:"foreignKey:BadgeID"`
	EarnedAt time.Time `json:"earned_at" gorm:"autoCreateTime"`
}

func (u *UserBadge) BeforeCreate(tx *gorm.DB) error {
	u.ID = newID(u.ID)
	return nil
}
