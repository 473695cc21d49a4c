package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jinzhu/copier"
	"github.com/lshigami/ShambaQuest/config"
	"github.com/lshigami/ShambaQuest/internal/dto"
	"github.com/lshigami/ShambaQuest/internal/model"
	"github.com/lshigami/ShambaQuest/internal/repository"
	"github.com/rs/zerolog/log"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"gorm.io/gorm"
)

var tracer trace.Tracer = otel.Tracer("github.com/lshigami/ShambaQuest/internal/service")

// Warning codes attached to an otherwise successful submission.
const (
	WarningProfileReadFailed   = "profile_read_failed"
	WarningProfileUpdateFailed = "profile_update_failed"
)

// QuizSubmissionService scores one answer and applies its XP, level and
// badge consequences.
type QuizSubmissionService interface {
	Submit(ctx context.Context, req dto.SubmitQuizRequest) (*dto.SubmissionResponse, error)
	GetAttempt(ctx context.Context, attemptID string) (*dto.AttemptResponseDTO, error)
}

type quizSubmissionService struct {
	questionRepo      repository.QuestionRepository
	attemptRepo       repository.AttemptRepository
	profileRepo       repository.ProfileRepository
	evaluator         AnswerEvaluator
	badgeAwarder      BadgeAwarder
	leaderboard       LeaderboardCache
	allowClientAnswer bool
}

func NewQuizSubmissionService(
	questionRepo repository.QuestionRepository,
	attemptRepo repository.AttemptRepository,
	profileRepo repository.ProfileRepository,
	evaluator AnswerEvaluator,
	badgeAwarder BadgeAwarder,
	leaderboard LeaderboardCache,
	cfg *config.Config,
) QuizSubmissionService {
	return &quizSubmissionService{
		questionRepo:      questionRepo,
		attemptRepo:       attemptRepo,
		profileRepo:       profileRepo,
		evaluator:         evaluator,
		badgeAwarder:      badgeAwarder,
		leaderboard:       leaderboard,
		allowClientAnswer: cfg.Submission.AllowClientAnswer,
	}
}

// reference is what an answer is scored against.
type reference struct {
	correctAnswer string
	xpReward      int
}

func (s *quizSubmissionService) Submit(ctx context.Context, req dto.SubmitQuizRequest) (resp *dto.SubmissionResponse, err error) {
	ctx, span := tracer.Start(ctx, "QuizSubmission.Submit", trace.WithAttributes(
		attribute.String("quiz.question_id", req.QuestionID),
		attribute.String("quiz.user_id", req.UserID),
	))
	defer func() {
		if err != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, "submission failed")
		} else if resp != nil {
			span.SetAttributes(attribute.Bool("quiz.correct", resp.IsCorrect), attribute.Int("quiz.xp_earned", resp.XPEarned))
		}
		span.End()
	}()

	if strings.TrimSpace(req.QuestionID) == "" || strings.TrimSpace(req.UserID) == "" {
		return nil, fmt.Errorf("%w: questionId and userId are required", ErrInvalidInput)
	}

	// 1. Reference answer and reward
	ref, err := s.resolveReference(ctx, req)
	if err != nil {
		return nil, err
	}

	// 2. Evaluate
	evaluation, err := s.evaluator.Evaluate(ctx, req.UserAnswer, ref.correctAnswer)
	if err != nil {
		log.Error().Err(err).Str("questionID", req.QuestionID).Msg("Submit: evaluation failed")
		return nil, fmt.Errorf("evaluate answer for question %s: %w", req.QuestionID, err)
	}

	// 3. XP for this attempt
	xpEarned := XPEarned(evaluation.IsCorrect, ref.xpReward)

	// 4. Record the attempt; nothing below runs if this fails
	attempt := model.Attempt{
		UserID:     req.UserID,
		QuestionID: req.QuestionID,
		UserAnswer: req.UserAnswer,
		IsCorrect:  evaluation.IsCorrect,
		XPEarned:   xpEarned,
		AIFeedback: evaluation.Feedback,
	}
	if err := s.attemptRepo.Create(ctx, &attempt); err != nil {
		log.Error().Err(err).Str("userID", req.UserID).Str("questionID", req.QuestionID).Msg("Submit: failed to create attempt")
		return nil, fmt.Errorf("%w: %w", ErrAttemptPersist, err)
	}

	var warnings []string

	// 5. Current profile; a missing profile starts at 0 XP, level 1
	oldTotalXP, oldLevel := 0, 1
	profile, err := s.profileRepo.FindByID(ctx, req.UserID)
	switch {
	case err == nil:
		oldTotalXP, oldLevel = profile.TotalXP, profile.CurrentLevel
	case errors.Is(err, gorm.ErrRecordNotFound):
	default:
		log.Warn().Err(err).Str("userID", req.UserID).Msg("Submit: failed to read profile, assuming a new one")
		warnings = append(warnings, WarningProfileReadFailed)
	}

	// 6. New totals
	newTotalXP := oldTotalXP + xpEarned
	newLevel, err := LevelFor(newTotalXP)
	if err != nil {
		return nil, err
	}
	leveledUp := newLevel > oldLevel

	// 7. Persist XP and level atomically
	updated, err := s.profileRepo.AddXP(ctx, req.UserID, xpEarned, storedLevel)
	if err != nil {
		log.Error().Err(fmt.Errorf("%w: %w", ErrProfileUpdate, err)).Str("userID", req.UserID).Int("xpEarned", xpEarned).Msg("Submit: XP was not persisted")
		warnings = append(warnings, WarningProfileUpdateFailed)
	} else {
		// The committed row wins over the step 6 estimate: another submission
		// for the same user may have landed in between.
		newTotalXP = updated.TotalXP
		newLevel = updated.CurrentLevel
		leveledUp = newLevel > storedLevel(newTotalXP-xpEarned)
		if err := s.leaderboard.Record(ctx, req.UserID, newTotalXP); err != nil {
			log.Warn().Err(err).Str("userID", req.UserID).Msg("Submit: leaderboard cache update failed")
		}
	}

	// 8. Badges
	newBadges := s.badgeAwarder.AwardEligible(ctx, req.UserID, newTotalXP)

	// 9. Response
	log.Info().
		Str("attemptID", attempt.ID).
		Str("userID", req.UserID).
		Bool("isCorrect", evaluation.IsCorrect).
		Int("xpEarned", xpEarned).
		Int("newLevel", newLevel).
		Msg("Submit: answer recorded")

	return &dto.SubmissionResponse{
		AttemptID:     attempt.ID,
		IsCorrect:     evaluation.IsCorrect,
		XPEarned:      xpEarned,
		Feedback:      evaluation.Feedback,
		CorrectAnswer: ref.correctAnswer,
		NewBadges:     newBadges,
		LeveledUp:     leveledUp,
		NewLevel:      newLevel,
		TotalXP:       newTotalXP,
		Warnings:      warnings,
	}, nil
}

// resolveReference uses the client's answer and reward only when that is
// enabled and both are present; otherwise the stored question decides.
func (s *quizSubmissionService) resolveReference(ctx context.Context, req dto.SubmitQuizRequest) (reference, error) {
	clientSupplied := req.CorrectAnswer != nil && req.XPReward != nil
	if clientSupplied && s.allowClientAnswer {
		if *req.XPReward <= 0 {
			return reference{}, fmt.Errorf("%w: xpReward must be positive, got %d", ErrInvalidInput, *req.XPReward)
		}
		return reference{correctAnswer: *req.CorrectAnswer, xpReward: *req.XPReward}, nil
	}
	if clientSupplied {
		log.Warn().Str("questionID", req.QuestionID).Str("userID", req.UserID).Msg("Submit: ignoring client-supplied correctAnswer/xpReward")
	}

	question, err := s.questionRepo.FindByID(ctx, req.QuestionID)
	if err != nil {
		log.Warn().Err(err).Str("questionID", req.QuestionID).Msg("Submit: question lookup failed")
		return reference{}, fmt.Errorf("%w: %s: %w", ErrQuestionNotFound, req.QuestionID, err)
	}
	return reference{correctAnswer: question.CorrectAnswer, xpReward: question.XPReward}, nil
}

func (s *quizSubmissionService) GetAttempt(ctx context.Context, attemptID string) (*dto.AttemptResponseDTO, error) {
	attempt, err := s.attemptRepo.FindByID(ctx, attemptID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: attempt %s", ErrNotFound, attemptID)
		}
		log.Error().Err(err).Str("attemptID", attemptID).Msg("GetAttempt: Failed to find attempt by ID.")
		return nil, fmt.Errorf("error fetching attempt %s: %w", attemptID, err)
	}

	var resp dto.AttemptResponseDTO
	if err := copier.Copy(&resp, attempt); err != nil {
		log.Error().Err(err).Msg("GetAttempt: Failed to copy attempt model to DTO.")
		return nil, fmt.Errorf("error preparing response data: %w", err)
	}
	if err := copier.Copy(&resp.Question, &attempt.Question); err != nil {
		log.Error().Err(err).Msg("GetAttempt: Failed to copy question model to DTO.")
		return nil, fmt.Errorf("error preparing response data: %w", err)
	}
	resp.Feedback = attempt.AIFeedback
	resp.CorrectAnswer = attempt.Question.CorrectAnswer
	return &resp, nil
}
