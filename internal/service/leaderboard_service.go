package service

import (
	"context"
	"fmt"

	"github.com/lshigami/ShambaQuest/internal/dto"
	"github.com/lshigami/ShambaQuest/internal/model"
	"github.com/lshigami/ShambaQuest/internal/repository"
	"github.com/rs/zerolog/log"
)

const (
	DefaultLeaderboardSize = 50
	MaxLeaderboardSize     = 100
	// resyncLimit bounds how many profiles a cache rebuild loads.
	resyncLimit = 10000
)

type LeaderboardService interface {
	Top(ctx context.Context, limit int) ([]dto.LeaderboardEntryDTO, error)
	// Resync rebuilds the cache from the profiles table.
	Resync(ctx context.Context) error
}

type leaderboardService struct {
	profileRepo repository.ProfileRepository
	cache       LeaderboardCache
}

func NewLeaderboardService(profileRepo repository.ProfileRepository, cache LeaderboardCache) LeaderboardService {
	return &leaderboardService{profileRepo: profileRepo, cache: cache}
}

func (s *leaderboardService) Top(ctx context.Context, limit int) ([]dto.LeaderboardEntryDTO, error) {
	if limit <= 0 {
		limit = DefaultLeaderboardSize
	}
	if limit > MaxLeaderboardSize {
		limit = MaxLeaderboardSize
	}

	if s.cache.Enabled() {
		entries, err := s.topFromCache(ctx, limit)
		if err == nil {
			return entries, nil
		}
		log.Warn().Err(err).Msg("Leaderboard: cache read failed, falling back to database")
	}

	profiles, err := s.profileRepo.TopByXP(ctx, limit)
	if err != nil {
		log.Error().Err(err).Msg("Leaderboard: failed to read top profiles")
		return nil, fmt.Errorf("error fetching leaderboard: %w", err)
	}
	entries := make([]dto.LeaderboardEntryDTO, 0, len(profiles))
	for i, p := range profiles {
		entries = append(entries, toLeaderboardEntry(i+1, p))
	}
	return entries, nil
}

func (s *leaderboardService) topFromCache(ctx context.Context, limit int) ([]dto.LeaderboardEntryDTO, error) {
	cached, err := s.cache.Top(ctx, limit)
	if err != nil {
		return nil, err
	}
	ids := make([]string, 0, len(cached))
	for _, c := range cached {
		ids = append(ids, c.UserID)
	}
	profiles, err := s.profileRepo.FindByIDs(ctx, ids)
	if err != nil {
		return nil, err
	}
	byID := make(map[string]model.Profile, len(profiles))
	for _, p := range profiles {
		byID[p.ID] = p
	}

	entries := make([]dto.LeaderboardEntryDTO, 0, len(cached))
	for _, c := range cached {
		p, ok := byID[c.UserID]
		if !ok {
			// Cached member with no profile row; the next resync drops it.
			continue
		}
		entries = append(entries, toLeaderboardEntry(len(entries)+1, p))
	}
	return entries, nil
}

func (s *leaderboardService) Resync(ctx context.Context) error {
	if !s.cache.Enabled() {
		return nil
	}
	profiles, err := s.profileRepo.TopByXP(ctx, resyncLimit)
	if err != nil {
		return fmt.Errorf("load profiles for leaderboard resync: %w", err)
	}
	if err := s.cache.Replace(ctx, profiles); err != nil {
		return fmt.Errorf("replace leaderboard cache: %w", err)
	}
	log.Info().Int("profiles", len(profiles)).Msg("Leaderboard cache resynced")
	return nil
}

func toLeaderboardEntry(rank int, p model.Profile) dto.LeaderboardEntryDTO {
	return dto.LeaderboardEntryDTO{
		Rank:         rank,
		UserID:       p.ID,
		DisplayName:  p.DisplayName,
		TotalXP:      p.TotalXP,
		CurrentLevel: p.CurrentLevel,
	}
}
