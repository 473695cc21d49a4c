package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/jinzhu/copier"
	"github.com/lshigami/ShambaQuest/internal/dto"
	"github.com/lshigami/ShambaQuest/internal/model"
	"github.com/lshigami/ShambaQuest/internal/repository"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
)

const (
	DefaultQuestionLimit = 10
	MaxQuestionLimit     = 50
)

type QuestionService interface {
	ListQuestions(ctx context.Context, userID, difficulty, category string, limit int) ([]dto.QuestionResponseDTO, error)
	GetQuestion(ctx context.Context, id string) (*dto.QuestionResponseDTO, error)
	CreateQuestion(ctx context.Context, req dto.QuestionCreateDTO) (*dto.QuestionResponseDTO, error)
}

type questionService struct {
	repo        repository.QuestionRepository
	profileRepo repository.ProfileRepository
}

func NewQuestionService(repo repository.QuestionRepository, profileRepo repository.ProfileRepository) QuestionService {
	return &questionService{repo: repo, profileRepo: profileRepo}
}

// ListQuestions defaults the difficulty to the user's onboarding experience
// level, then to beginner.
func (s *questionService) ListQuestions(ctx context.Context, userID, difficulty, category string, limit int) ([]dto.QuestionResponseDTO, error) {
	if difficulty == "" {
		difficulty = s.preferredDifficulty(ctx, userID)
	}
	if !validDifficulty(difficulty) {
		return nil, fmt.Errorf("%w: unknown difficulty %q", ErrInvalidInput, difficulty)
	}
	if limit <= 0 {
		limit = DefaultQuestionLimit
	}
	if limit > MaxQuestionLimit {
		limit = MaxQuestionLimit
	}

	questions, err := s.repo.List(ctx, repository.QuestionFilter{Difficulty: difficulty, Category: category, Limit: limit})
	if err != nil {
		log.Error().Err(err).Str("difficulty", difficulty).Msg("ListQuestions: repository error")
		return nil, fmt.Errorf("error fetching questions: %w", err)
	}

	resp := make([]dto.QuestionResponseDTO, 0, len(questions))
	if err := copier.Copy(&resp, &questions); err != nil {
		return nil, fmt.Errorf("error preparing questions response: %w", err)
	}
	return resp, nil
}

func (s *questionService) preferredDifficulty(ctx context.Context, userID string) string {
	if userID == "" {
		return model.DifficultyBeginner
	}
	profile, err := s.profileRepo.FindByID(ctx, userID)
	if err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			log.Warn().Err(err).Str("userID", userID).Msg("ListQuestions: could not read profile, using beginner")
		}
		return model.DifficultyBeginner
	}
	if validDifficulty(profile.ExperienceLevel) {
		return profile.ExperienceLevel
	}
	return model.DifficultyBeginner
}

func (s *questionService) GetQuestion(ctx context.Context, id string) (*dto.QuestionResponseDTO, error) {
	question, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: %s", ErrQuestionNotFound, id)
		}
		return nil, fmt.Errorf("error fetching question %s: %w", id, err)
	}
	var resp dto.QuestionResponseDTO
	copier.Copy(&resp, question)
	return &resp, nil
}

func (s *questionService) CreateQuestion(ctx context.Context, req dto.QuestionCreateDTO) (*dto.QuestionResponseDTO, error) {
	question, err := questionFromDTO(req)
	if err != nil {
		return nil, err
	}
	if err := s.repo.Create(ctx, &question); err != nil {
		log.Error().Err(err).Msg("CreateQuestion: Failed to create question")
		return nil, err
	}
	var resp dto.QuestionResponseDTO
	copier.Copy(&resp, &question)
	return &resp, nil
}

func questionFromDTO(req dto.QuestionCreateDTO) (model.Question, error) {
	if !validDifficulty(req.Difficulty) {
		return model.Question{}, fmt.Errorf("%w: unknown difficulty %q", ErrInvalidInput, req.Difficulty)
	}
	if req.XPReward <= 0 {
		return model.Question{}, fmt.Errorf("%w: xpReward must be positive, got %d", ErrInvalidInput, req.XPReward)
	}
	if len(Keywords(req.CorrectAnswer)) == 0 {
		// Such a question could never be answered correctly.
		return model.Question{}, fmt.Errorf("%w: correct answer has no word longer than three characters", ErrInvalidInput)
	}
	var question model.Question
	copier.Copy(&question, &req)
	return question, nil
}

func validDifficulty(d string) bool {
	switch d {
	case model.DifficultyBeginner, model.DifficultyIntermediate, model.DifficultyAdvanced:
		return true
	}
	return false
}
