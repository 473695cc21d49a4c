package service

import (
	"context"
	"fmt"
	"strings"
	"unicode/utf8"
)

// PassPercentage is the keyword match rate at which an answer counts as correct.
const PassPercentage = 50.0

// Evaluation is the verdict for one answer.
type Evaluation struct {
	IsCorrect       bool
	Feedback        string
	MatchedKeywords []string
	MatchPercentage float64
}

// AnswerEvaluator scores a free-text answer against the reference answer.
type AnswerEvaluator interface {
	Evaluate(ctx context.Context, userAnswer, correctAnswer string) (Evaluation, error)
}

type keywordEvaluator struct{}

// NewKeywordEvaluator returns the deterministic keyword-overlap evaluator.
func NewKeywordEvaluator() AnswerEvaluator {
	return keywordEvaluator{}
}

func (keywordEvaluator) Evaluate(_ context.Context, userAnswer, correctAnswer string) (Evaluation, error) {
	return EvaluateKeywords(userAnswer, correctAnswer)
}

// EvaluateKeywords marks an answer correct when it contains at least half of
// the reference answer's keywords (words longer than three characters).
// Matching is case-insensitive substring containment. A reference with no
// keywords can never be matched.
func EvaluateKeywords(userAnswer, correctAnswer string) (Evaluation, error) {
	if strings.TrimSpace(correctAnswer) == "" {
		return Evaluation{}, fmt.Errorf("%w: reference answer is empty", ErrInvalidInput)
	}

	normalizedUser := strings.ToLower(strings.TrimSpace(userAnswer))
	keywords := Keywords(correctAnswer)

	matched := make([]string, 0, len(keywords))
	for _, keyword := range keywords {
		if strings.Contains(normalizedUser, keyword) {
			matched = append(matched, keyword)
		}
	}

	var percentage float64
	if len(keywords) > 0 {
		percentage = float64(len(matched)) / float64(len(keywords)) * 100
	}
	isCorrect := len(keywords) > 0 && percentage >= PassPercentage

	return Evaluation{
		IsCorrect:       isCorrect,
		Feedback:        keywordFeedback(isCorrect, matched, correctAnswer),
		MatchedKeywords: matched,
		MatchPercentage: percentage,
	}, nil
}

// Keywords returns the lowercased whitespace-separated words of text that
// are longer than three characters, duplicates included.
func Keywords(text string) []string {
	fields := strings.Fields(strings.ToLower(strings.TrimSpace(text)))
	keywords := make([]string, 0, len(fields))
	for _, word := range fields {
		if utf8.RuneCountInString(word) > 3 {
			keywords = append(keywords, word)
		}
	}
	return keywords
}

func keywordFeedback(isCorrect bool, matched []string, correctAnswer string) string {
	if isCorrect {
		highlights := matched
		if len(highlights) > 2 {
			highlights = highlights[:2]
		}
		return fmt.Sprintf(
			"Great job! Your answer demonstrates a good understanding of the concept. You correctly identified key points about %s. Keep up the excellent work!",
			strings.Join(highlights, " and "),
		)
	}
	return fmt.Sprintf(
		"Good effort! However, your answer could be improved. The correct answer focuses on: %s. Try to include more specific details about the topic in your response. Don't give up - learning is a journey!",
		correctAnswer,
	)
}
