package model

import (
	"time"

	"gorm.io/gorm"
)

type Attempt struct {
	ID          string    `gorm:"primaryKey;type:varchar(36)" json:"id"`
	UserID      string    `json:"user_id" gorm:"type:varchar(64);not null;index"`
	QuestionID  string    `json:"question_id" gorm:"type:varchar(36);not null;index"`
	Question    Question  `json:"question" gorm:"foreignKey:QuestionID"`
	UserAnswer  string    `json:"user_answer" gorm:"type:text;not null"`
	IsCorrect   bool      `json:"is_correct" gorm:"not null"`
	XPEarned    int       `json:"xp_earned" gorm:"not null"`
	AIFeedback  string    `json:"ai_feedback" gorm:"type:text"`
	AttemptedAt time.Time `json:"attempted_at" gorm:"autoCreateTime;index"`
}

func (Attempt) TableName() string { return "quiz_attempts" }

func (a *Attempt) BeforeCreate(tx *gorm.DB) error {
	a.ID = newID(a.ID)
	return nil
}
