package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/generative-ai-go/genai"
	"github.com/lshigami/ShambaQuest/config"
	"github.com/rs/zerolog/log"
	"google.golang.org/api/option"
)

// NewAnswerEvaluator picks the evaluator named by EVALUATOR. The Gemini
// evaluator always wraps the keyword evaluator as its fallback.
func NewAnswerEvaluator(cfg *config.Config) (AnswerEvaluator, error) {
	keyword := NewKeywordEvaluator()
	switch cfg.Evaluator.Kind {
	case "", "keyword":
		return keyword, nil
	case "gemini":
		return NewGeminiEvaluator(cfg, keyword)
	default:
		return nil, fmt.Errorf("unsupported EVALUATOR %q", cfg.Evaluator.Kind)
	}
}

// contentGenerator is the slice of *genai.GenerativeModel the evaluator uses.
type contentGenerator interface {
	GenerateContent(ctx context.Context, parts ...genai.Part) (*genai.GenerateContentResponse, error)
}

type geminiEvaluator struct {
	model    contentGenerator
	fallback AnswerEvaluator
}

func NewGeminiEvaluator(cfg *config.Config, fallback AnswerEvaluator) (AnswerEvaluator, error) {
	if cfg.Evaluator.GeminiAPIKey == "" {
		log.Warn().Msg("GEMINI_API_KEY is not set. Answers will be scored by keyword overlap only.")
		return &geminiEvaluator{fallback: fallback}, nil
	}
	client, err := genai.NewClient(context.Background(), option.WithAPIKey(cfg.Evaluator.GeminiAPIKey))
	if err != nil {
		return nil, fmt.Errorf("failed to initialize Gemini client: %w", err)
	}
	model := client.GenerativeModel(cfg.Evaluator.GeminiModel)
	model.SetTemperature(0)
	return &geminiEvaluator{model: model, fallback: fallback}, nil
}

func (e *geminiEvaluator) Evaluate(ctx context.Context, userAnswer, correctAnswer string) (Evaluation, error) {
	if strings.TrimSpace(correctAnswer) == "" {
		return Evaluation{}, fmt.Errorf("%w: reference answer is empty", ErrInvalidInput)
	}
	if e.model == nil {
		return e.fallback.Evaluate(ctx, userAnswer, correctAnswer)
	}

	resp, err := e.model.GenerateContent(ctx, genai.Text(buildEvaluationPrompt(userAnswer, correctAnswer)))
	if err != nil {
		log.Warn().Err(err).Msg("GeminiEvaluator: API error, falling back to keyword scoring")
		return e.fallback.Evaluate(ctx, userAnswer, correctAnswer)
	}

	text := responseText(resp)
	isCorrect, feedback, err := parseVerdictAndFeedback(text)
	if err != nil {
		log.Warn().Err(err).Str("rawResponse", text).Msg("GeminiEvaluator: unparseable response, falling back to keyword scoring")
		return e.fallback.Evaluate(ctx, userAnswer, correctAnswer)
	}

	percentage := 0.0
	if isCorrect {
		percentage = 100
	}
	return Evaluation{IsCorrect: isCorrect, Feedback: feedback, MatchPercentage: percentage}, nil
}

func buildEvaluationPrompt(userAnswer, correctAnswer string) string {
	var b strings.Builder
	b.WriteString("You are a friendly agricultural extension officer teaching climate-smart farming.\n")
	b.WriteString("Decide whether the learner's answer captures the key ideas of the reference answer.\n\n")
	b.WriteString("Reference answer:\n---\n")
	b.WriteString(correctAnswer)
	b.WriteString("\n---\n\nLearner's answer:\n---\n")
	b.WriteString(userAnswer)
	b.WriteString("\n---\n\n")
	b.WriteString("Format your response strictly as:\n")
	b.WriteString("Correct: yes or no\n")
	b.WriteString("Feedback: two or three encouraging sentences. If the answer is wrong, include the reference answer.\n")
	return b.String()
}

func responseText(resp *genai.GenerateContentResponse) string {
	if resp == nil || len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil {
		return ""
	}
	var b strings.Builder
	for _, part := range resp.Candidates[0].Content.Parts {
		if txt, ok := part.(genai.Text); ok {
			b.WriteString(string(txt))
		}
	}
	return b.String()
}

// parseVerdictAndFeedback reads the "Correct:" and "Feedback:" lines of a
// model response.
func parseVerdictAndFeedback(raw string) (bool, string, error) {
	const verdictPrefix = "correct:"
	const feedbackPrefix = "feedback:"

	lower := strings.ToLower(raw)
	verdictIndex := strings.Index(lower, verdictPrefix)
	if verdictIndex == -1 {
		return false, "", fmt.Errorf("response does not contain 'Correct:' prefix")
	}

	rest := strings.TrimSpace(lower[verdictIndex+len(verdictPrefix):])
	var isCorrect bool
	switch {
	case strings.HasPrefix(rest, "yes"):
		isCorrect = true
	case strings.HasPrefix(rest, "no"):
		isCorrect = false
	default:
		return false, "", fmt.Errorf("unrecognised verdict %q", firstLine(rest))
	}

	feedbackIndex := strings.Index(lower, feedbackPrefix)
	if feedbackIndex == -1 {
		return false, "", fmt.Errorf("response does not contain 'Feedback:' prefix")
	}
	feedback := strings.TrimSpace(raw[feedbackIndex+len(feedbackPrefix):])
	if feedback == "" {
		return false, "", fmt.Errorf("feedback is empty")
	}
	return isCorrect, feedback, nil
}

func firstLine(s string) string {
	if i := strings.IndexByte(s, '\n'); i >= 0 {
		return s[:i]
	}
	return s
}
