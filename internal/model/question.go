package model

import (
	"time"

	"gorm.io/gorm"
)

const (
	DifficultyBeginner     = "beginner"
	DifficultyIntermediate = "intermediate"
	DifficultyAdvanced     = "advanced"
)

type Question struct {
	ID            string    `gorm:"primaryKey;type:varchar(36)" json:"id"`
	Question      string    `json:"question" gorm:"type:text;not null"`
	CorrectAnswer string    `json:"correct_answer" gorm:"type:text;not null"`
	Difficulty    string    `json:"difficulty" gorm:"not null;index;default:'beginner'"` // "beginner", "intermediate", "advanced"
	Category      string    `json:"category" gorm:"index"`
	XPReward      int       `json:"xp_reward" gorm:"not null"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

func (Question) TableName() string { return "quiz_questions" }

func (q *Question) BeforeCreate(tx *gorm.DB) error {
	q.ID = newID(q.ID)
	return nil
}
