package dto

import "time"

type ErrorResponse struct {
	Error   string   `json:"error"`
	Details []string `json:"details,omitempty"`
}

// SubmissionResponse is returned for every accepted answer. Feedback is the
// canonical name of what earlier clients received as ai_feedback.
type SubmissionResponse struct {
	AttemptID     string   `json:"attemptId"`
	IsCorrect     bool     `json:"isCorrect"`
	XPEarned      int      `json:"xpEarned"`
	Feedback      string   `json:"feedback"`
	CorrectAnswer string   `json:"correctAnswer"`
	NewBadges     []string `json:"newBadges"`
	LeveledUp     bool     `json:"leveledUp"`
	NewLevel      int      `json:"newLevel"`
	TotalXP       int      `json:"totalXp"`
	Warnings      []string `json:"warnings,omitempty"`
}

// QuestionResponseDTO never carries the reference answer.
type QuestionResponseDTO struct {
	ID         string    `json:"id"`
	Question   string    `json:"question"`
	Difficulty string    `json:"difficulty"`
	Category   string    `json:"category"`
	XPReward   int       `json:"xpReward"`
	CreatedAt  time.Time `json:"createdAt"`
}

// AttemptResponseDTO backs the feedback page, so it includes the reference
// answer of the attempted question.
type AttemptResponseDTO struct {
	ID            string              `json:"id"`
	UserID        string              `json:"userId"`
	QuestionID    string              `json:"questionId"`
	Question      QuestionResponseDTO `json:"question"`
	CorrectAnswer string              `json:"correctAnswer"`
	UserAnswer    string              `json:"userAnswer"`
	IsCorrect     bool                `json:"isCorrect"`
	XPEarned      int                 `json:"xpEarned"`
	Feedback      string              `json:"feedback"`
	AttemptedAt   time.Time           `json:"attemptedAt"`
}

type ProfileResponseDTO struct {
	ID                   string   `json:"id"`
	DisplayName          string   `json:"displayName"`
	TotalXP              int      `json:"totalXp"`
	CurrentLevel         int      `json:"currentLevel"`
	XPForNextLevel       int      `json:"xpForNextLevel"`
	LevelProgressPercent float64  `json:"levelProgressPercent"`
	ExperienceLevel      string   `json:"experienceLevel"`
	Interests            []string `json:"interests"`
}

type BadgeResponseDTO struct {
	Name          string    `json:"name"`
	Description   string    `json:"description"`
	XPRequirement int       `json:"xpRequirement"`
	EarnedAt      time.Time `json:"earnedAt"`
}

type RecentAttemptDTO struct {
	ID          string    `json:"id"`
	QuestionID  string    `json:"questionId"`
	Category    string    `json:"category"`
	IsCorrect   bool      `json:"isCorrect"`
	XPEarned    int       `json:"xpEarned"`
	AttemptedAt time.Time `json:"attemptedAt"`
}

type DashboardResponseDTO struct {
	Profile         ProfileResponseDTO `json:"profile"`
	BadgeCount      int64              `json:"badgeCount"`
	TotalAttempts   int64              `json:"totalAttempts"`
	CorrectAttempts int64              `json:"correctAttempts"`
	AccuracyRate    int                `json:"accuracyRate"`
	RecentAttempts  []RecentAttemptDTO `json:"recentAttempts"`
}

type LeaderboardEntryDTO struct {
	Rank         int    `json:"rank"`
	UserID       string `json:"userId"`
	DisplayName  string `json:"displayName"`
	TotalXP      int    `json:"totalXp"`
	CurrentLevel int    `json:"currentLevel"`
}

// ImportResultDTO reports a bulk question import.
type ImportResultDTO struct {
	TotalProcessed int      `json:"totalProcessed"`
	Created        int      `json:"created"`
	Skipped        int      `json:"skipped"`
	Errors         []string `json:"errors,omitempty"`
}
