package service

import (
	"context"
	"errors"
	"sort"
	"sync"
	"testing"

	"github.com/lshigami/ShambaQuest/internal/model"
	"github.com/lshigami/ShambaQuest/internal/repository"
	"github.com/lshigami/ShambaQuest/internal/testutil"
)

// memoryLeaderboard mimics the sorted-set cache in process.
type memoryLeaderboard struct {
	mu      sync.Mutex
	scores  map[string]int
	readErr error
}

func newMemoryLeaderboard() *memoryLeaderboard {
	return &memoryLeaderboard{scores: map[string]int{}}
}

func (m *memoryLeaderboard) Enabled() bool { return true }

func (m *memoryLeaderboard) Record(_ context.Context, userID string, totalXP int) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if totalXP > m.scores[userID] {
		m.scores[userID] = totalXP
	}
	return nil
}

func (m *memoryLeaderboard) Top(_ context.Context, limit int) ([]LeaderboardEntry, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.readErr != nil {
		return nil, m.readErr
	}
	entries := make([]LeaderboardEntry, 0, len(m.scores))
	for id, xp := range m.scores {
		entries = append(entries, LeaderboardEntry{UserID: id, TotalXP: xp})
	}
	sort.Slice(entries, func(i, j int) bool {
		if entries[i].TotalXP != entries[j].TotalXP {
			return entries[i].TotalXP > entries[j].TotalXP
		}
		return entries[i].UserID > entries[j].UserID
	})
	if len(entries) > limit {
		entries = entries[:limit]
	}
	return entries, nil
}

func (m *memoryLeaderboard) Replace(_ context.Context, profiles []model.Profile) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.scores = make(map[string]int, len(profiles))
	for _, p := range profiles {
		m.scores[p.ID] = p.TotalXP
	}
	return nil
}

func seedProfiles(t *testing.T, repo repository.ProfileRepository, xp map[string]int) {
	t.Helper()
	for id, total := range xp {
		if _, err := repo.AddXP(context.Background(), id, total, storedLevel); err != nil {
			t.Fatalf("AddXP(%s): %v", id, err)
		}
	}
}

func TestLeaderboard_FromDatabase(t *testing.T) {
	repo := repository.NewProfileRepository(testutil.NewTestDB(t))
	seedProfiles(t, repo, map[string]int{"ana": 250, "ben": 40, "chi": 120})

	entries, err := NewLeaderboardService(repo, noopLeaderboardCache{}).Top(context.Background(), 2)
	if err != nil {
		t.Fatalf("Top: %v", err)
	}
	if len(entries) != 2 || entries[0].UserID != "ana" || entries[1].UserID != "chi" {
		t.Fatalf("entries = %+v", entries)
	}
	if entries[0].Rank != 1 || entries[0].CurrentLevel != 3 {
		t.Fatalf("first entry = %+v", entries[0])
	}
}

func TestLeaderboard_FromCacheAfterResync(t *testing.T) {
	repo := repository.NewProfileRepository(testutil.NewTestDB(t))
	seedProfiles(t, repo, map[string]int{"ana": 250, "ben": 40, "chi": 120})
	cache := newMemoryLeaderboard()
	svc := NewLeaderboardService(repo, cache)
	ctx := context.Background()

	if err := svc.Resync(ctx); err != nil {
		t.Fatalf("Resync: %v", err)
	}
	// A cached member without a profile row is skipped.
	_ = cache.Record(ctx, "ghost", 999)
	_ = cache.Record(ctx, "ben", 300)

	entries, err := svc.Top(ctx, 0)
	if err != nil {
		t.Fatalf("Top: %v", err)
	}
	if len(entries) != 3 || entries[0].UserID != "ben" || entries[0].Rank != 1 || entries[2].UserID != "chi" {
		t.Fatalf("entries = %+v", entries)
	}
}

func TestLeaderboard_CacheFailureFallsBack(t *testing.T) {
	repo := repository.NewProfileRepository(testutil.NewTestDB(t))
	seedProfiles(t, repo, map[string]int{"ana": 10})
	cache := newMemoryLeaderboard()
	cache.readErr = errors.New("redis down")

	entries, err := NewLeaderboardService(repo, cache).Top(context.Background(), 10)
	if err != nil || len(entries) != 1 || entries[0].UserID != "ana" {
		t.Fatalf("entries = %+v, %v", entries, err)
	}
}
