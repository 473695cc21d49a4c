package scheduler

import (
	"context"
	"time"

	"github.com/go-co-op/gocron"
	"github.com/lshigami/ShambaQuest/config"
	"github.com/lshigami/ShambaQuest/internal/service"
	"github.com/rs/zerolog/log"
)

const resyncTimeout = time.Minute

// Scheduler runs the periodic leaderboard cache rebuild.
type Scheduler struct {
	scheduler   *gocron.Scheduler
	leaderboard service.LeaderboardService
	cache       service.LeaderboardCache
	interval    int
}

func New(leaderboard service.LeaderboardService, cache service.LeaderboardCache, cfg *config.Config) *Scheduler {
	return &Scheduler{
		scheduler:   gocron.NewScheduler(time.UTC),
		leaderboard: leaderboard,
		cache:       cache,
		interval:    cfg.Leaderboard.ResyncMinutes,
	}
}

// Start schedules the resync job. It does nothing when there is no cache to
// rebuild or the interval is not positive.
func (s *Scheduler) Start() error {
	if !s.cache.Enabled() || s.interval <= 0 {
		log.Info().Msg("Scheduler: leaderboard resync disabled")
		return nil
	}
	if _, err := s.scheduler.Every(s.interval).Minutes().SingletonMode().Do(s.resyncLeaderboard); err != nil {
		return err
	}
	s.scheduler.StartAsync()
	log.Info().Int("intervalMinutes", s.interval).Msg("Scheduler: leaderboard resync scheduled")
	return nil
}

func (s *Scheduler) Stop() {
	if s.scheduler.IsRunning() {
		s.scheduler.Stop()
	}
}

func (s *Scheduler) resyncLeaderboard() {
	ctx, cancel := context.WithTimeout(context.Background(), resyncTimeout)
	defer cancel()
	if err := s.leaderboard.Resync(ctx); err != nil {
		log.Error().Err(err).Msg("Scheduler: leaderboard resync failed")
	}
}
