package service

import (
	"context"
	"errors"
	"fmt"
	"math"

	"github.com/lshigami/ShambaQuest/internal/dto"
	"github.com/lshigami/ShambaQuest/internal/model"
	"github.com/lshigami/ShambaQuest/internal/repository"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
)

const recentAttemptsOnDashboard = 5

type ProfileService interface {
	GetProfile(ctx context.Context, userID string) (*dto.ProfileResponseDTO, error)
	CompleteOnboarding(ctx context.Context, userID string, req dto.OnboardingRequest) (*dto.ProfileResponseDTO, error)
	GetDashboard(ctx context.Context, userID string) (*dto.DashboardResponseDTO, error)
	GetBadges(ctx context.Context, userID string) ([]dto.BadgeResponseDTO, error)
}

type profileService struct {
	profileRepo repository.ProfileRepository
	attemptRepo repository.AttemptRepository
	badgeRepo   repository.BadgeRepository
}

func NewProfileService(
	profileRepo repository.ProfileRepository,
	attemptRepo repository.AttemptRepository,
	badgeRepo repository.BadgeRepository,
) ProfileService {
	return &profileService{profileRepo: profileRepo, attemptRepo: attemptRepo, badgeRepo: badgeRepo}
}

func (s *profileService) GetProfile(ctx context.Context, userID string) (*dto.ProfileResponseDTO, error) {
	profile, err := s.loadProfile(ctx, userID)
	if err != nil {
		return nil, err
	}
	resp, err := toProfileResponse(*profile)
	if err != nil {
		return nil, err
	}
	return &resp, nil
}

func (s *profileService) CompleteOnboarding(ctx context.Context, userID string, req dto.OnboardingRequest) (*dto.ProfileResponseDTO, error) {
	if !validDifficulty(req.ExperienceLevel) {
		return nil, fmt.Errorf("%w: unknown experience level %q", ErrInvalidInput, req.ExperienceLevel)
	}
	profile, err := s.profileRepo.UpdateOnboarding(ctx, userID, req.ExperienceLevel, req.Interests)
	if err != nil {
		log.Error().Err(err).Str("userID", userID).Msg("CompleteOnboarding: failed to update profile")
		return nil, fmt.Errorf("error saving onboarding for user %s: %w", userID, err)
	}
	resp, err := toProfileResponse(*profile)
	if err != nil {
		return nil, err
	}
	return &resp, nil
}

func (s *profileService) GetDashboard(ctx context.Context, userID string) (*dto.DashboardResponseDTO, error) {
	profile, err := s.loadProfile(ctx, userID)
	if err != nil {
		return nil, err
	}
	profileResp, err := toProfileResponse(*profile)
	if err != nil {
		return nil, err
	}

	badgeCount, err := s.badgeRepo.CountForUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("error counting badges for user %s: %w", userID, err)
	}
	stats, err := s.attemptRepo.StatsByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("error reading attempt stats for user %s: %w", userID, err)
	}
	recent, err := s.attemptRepo.FindRecentByUser(ctx, userID, recentAttemptsOnDashboard)
	if err != nil {
		return nil, fmt.Errorf("error reading recent attempts for user %s: %w", userID, err)
	}

	recentDTOs := make([]dto.RecentAttemptDTO, 0, len(recent))
	for _, a := range recent {
		recentDTOs = append(recentDTOs, dto.RecentAttemptDTO{
			ID:          a.ID,
			QuestionID:  a.QuestionID,
			Category:    a.Question.Category,
			IsCorrect:   a.IsCorrect,
			XPEarned:    a.XPEarned,
			AttemptedAt: a.AttemptedAt,
		})
	}

	return &dto.DashboardResponseDTO{
		Profile:         profileResp,
		BadgeCount:      badgeCount,
		TotalAttempts:   stats.Total,
		CorrectAttempts: stats.Correct,
		AccuracyRate:    AccuracyRate(stats.Correct, stats.Total),
		RecentAttempts:  recentDTOs,
	}, nil
}

func (s *profileService) GetBadges(ctx context.Context, userID string) ([]dto.BadgeResponseDTO, error) {
	userBadges, err := s.badgeRepo.ListForUser(ctx, userID)
	if err != nil {
		log.Error().Err(err).Str("userID", userID).Msg("GetBadges: repository error")
		return nil, fmt.Errorf("error fetching badges for user %s: %w", userID, err)
	}
	resp := make([]dto.BadgeResponseDTO, 0, len(userBadges))
	for _, ub := range userBadges {
		resp = append(resp, dto.BadgeResponseDTO{
			Name:          ub.Badge.Name,
			Description:   ub.Badge.Description,
			XPRequirement: ub.Badge.XPRequirement,
			EarnedAt:      ub.EarnedAt,
		})
	}
	return resp, nil
}

// loadProfile treats a user without a profile row as a fresh level-1 player.
func (s *profileService) loadProfile(ctx context.Context, userID string) (*model.Profile, error) {
	profile, err := s.profileRepo.FindByID(ctx, userID)
	if err == nil {
		return profile, nil
	}
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return &model.Profile{ID: userID, TotalXP: 0, CurrentLevel: 1}, nil
	}
	log.Error().Err(err).Str("userID", userID).Msg("loadProfile: repository error")
	return nil, fmt.Errorf("error fetching profile for user %s: %w", userID, err)
}

func toProfileResponse(p model.Profile) (dto.ProfileResponseDTO, error) {
	level, err := LevelFor(p.TotalXP)
	if err != nil {
		return dto.ProfileResponseDTO{}, err
	}
	progress, err := LevelProgressPercent(p.TotalXP)
	if err != nil {
		return dto.ProfileResponseDTO{}, err
	}
	interests := []string(p.Interests)
	if interests == nil {
		interests = []string{}
	}
	return dto.ProfileResponseDTO{
		ID:                   p.ID,
		DisplayName:          p.DisplayName,
		TotalXP:              p.TotalXP,
		CurrentLevel:         level,
		XPForNextLevel:       XPForNextLevel(level),
		LevelProgressPercent: progress,
		ExperienceLevel:      p.ExperienceLevel,
		Interests:            interests,
	}, nil
}

// AccuracyRate is the rounded percentage of correct attempts, 0 when there
// are none.
func AccuracyRate(correct, total int64) int {
	if total == 0 {
		return 0
	}
	return int(math.Round(float64(correct) / float64(total) * 100))
}
