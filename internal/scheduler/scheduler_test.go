package scheduler

import (
	"context"
	"sync/atomic"
	"testing"

	"github.com/lshigami/ShambaQuest/config"
	"github.com/lshigami/ShambaQuest/internal/dto"
	"github.com/lshigami/ShambaQuest/internal/model"
	"github.com/lshigami/ShambaQuest/internal/service"
)

type countingLeaderboard struct{ resyncs atomic.Int32 }

func (c *countingLeaderboard) Top(context.Context, int) ([]dto.LeaderboardEntryDTO, error) {
	return nil, nil
}

func (c *countingLeaderboard) Resync(context.Context) error {
	c.resyncs.Add(1)
	return nil
}

type staticCache struct{ enabled bool }

func (s staticCache) Enabled() bool { return s.enabled }
func (staticCache) Record(context.Context, string, int) error { return nil }
func (staticCache) Top(context.Context, int) ([]service.LeaderboardEntry, error) { return nil, nil }
func (staticCache) Replace(context.Context, []model.Profile) error { return nil }

func TestStart_DisabledWithoutCache(t *testing.T) {
	cfg := &config.Config{Leaderboard: config.Leaderboard{ResyncMinutes: 5}}
	s := New(&countingLeaderboard{}, staticCache{enabled: false}, cfg)
	if err := s.Start(); err != nil {
		t.Fatalf("Start: %v", err)
	}
	if s.scheduler.IsRunning() {
		t.Fatal("scheduler should not run without a cache")
	}
	s.Stop()
}

func TestStart_SchedulesResync(t *testing.T) {
	cfg := &config.Config{Leaderboard: config.Leaderboard{ResyncMinutes: 5}}
	lb := &countingLeaderboard{}
	s := New(lb, staticCache{enabled: true}, cfg)
	if err := s.Start(); err != nil {
		t.Fatalf("Start: %v", err)
	}
	defer s.Stop()

	if !s.scheduler.IsRunning() || len(s.scheduler.Jobs()) != 1 {
		t.Fatalf("running=%v jobs=%d", s.scheduler.IsRunning(), len(s.scheduler.Jobs()))
	}

	s.resyncLeaderboard()
	if lb.resyncs.Load() == 0 {
		t.Fatal("resync job did not call the leaderboard")
	}
}
