package dto

// SubmitQuizRequest is one answer to one question. CorrectAnswer and
// XPReward are honoured only when the server allows client-supplied answers.
type SubmitQuizRequest struct {
	QuestionID    string  `json:"questionId" binding:"required"`
	UserID        string  `json:"userId"`
	UserAnswer    string  `json:"userAnswer" binding:"required"`
	CorrectAnswer *string `json:"correctAnswer,omitempty"`
	XPReward      *int    `json:"xpReward,omitempty"`
}

// OnboardingRequest sets the profile fields collected on first login.
type OnboardingRequest struct {
	ExperienceLevel string   `json:"experienceLevel" binding:"required,oneof=beginner intermediate advanced"`
	Interests       []string `json:"interests" binding:"omitempty,max=10,dive,required,max=64"`
}

// QuestionCreateDTO is used by admins to author a question.
type QuestionCreateDTO struct {
	Question      string `json:"question" binding:"required"`
	CorrectAnswer string `json:"correctAnswer" binding:"required"`
	Difficulty    string `json:"difficulty" binding:"required,oneof=beginner intermediate advanced"`
	Category      string `json:"category" binding:"required"`
	XPReward      int    `json:"xpReward" binding:"required,gt=0"`
}
