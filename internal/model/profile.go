package model

import (
	"time"

	"gorm.io/datatypes"
)

// Profile is keyed by the user id issued by the auth provider.
type Profile struct {
	ID              string                      `gorm:"primaryKey;type:varchar(64)" json:"id"`
	DisplayName     string                      `json:"display_name"`
	TotalXP         int                         `json:"total_xp" gorm:"not null;default:0;index"`
	CurrentLevel    int                         `json:"current_level" gorm:"not null;default:1"`
	ExperienceLevel string                      `json:"experience_level"`
	Interests       datatypes.JSONSlice[string] `json:"interests"`
	CreatedAt       time.Time                   `json:"created_at"`
	UpdatedAt       time.Time                   `json:"updated_at"`
}
