package service

import (
	"context"
	"fmt"
	"time"

	"github.com/lshigami/ShambaQuest/config"
	"github.com/lshigami/ShambaQuest/internal/model"
	goredis "github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"
)

const leaderboardKey = "shambaquest:leaderboard"

// LeaderboardEntry is a user id and score as held by the cache.
type LeaderboardEntry struct {
	UserID  string
	TotalXP int
}

// LeaderboardCache mirrors profile XP totals for fast top-N reads.
type LeaderboardCache interface {
	Enabled() bool
	Record(ctx context.Context, userID string, totalXP int) error
	Top(ctx context.Context, limit int) ([]LeaderboardEntry, error)
	Replace(ctx context.Context, profiles []model.Profile) error
}

// NewLeaderboardCache connects to Redis when REDIS_ADDR is set. Without it,
// or when Redis is unreachable at startup, a no-op cache is returned and
// reads go to the database.
func NewLeaderboardCache(cfg *config.Config) LeaderboardCache {
	if cfg.Redis.Addr == "" {
		return noopLeaderboardCache{}
	}

	rdb := goredis.NewClient(&goredis.Options{
		Addr:        cfg.Redis.Addr,
		Password:    cfg.Redis.Password,
		DialTimeout: 5 * time.Second,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := rdb.Ping(ctx).Err(); err != nil {
		log.Warn().Err(err).Str("addr", cfg.Redis.Addr).Msg("Redis unreachable, leaderboard served from database")
		_ = rdb.Close()
		return noopLeaderboardCache{}
	}
	log.Info().Str("addr", cfg.Redis.Addr).Msg("Leaderboard cache connected")
	return NewRedisLeaderboardCache(rdb)
}

type redisLeaderboardCache struct {
	rdb goredis.UniversalClient
	key string
}

func NewRedisLeaderboardCache(rdb goredis.UniversalClient) LeaderboardCache {
	return &redisLeaderboardCache{rdb: rdb, key: leaderboardKey}
}

func (c *redisLeaderboardCache) Enabled() bool { return true }

func (c *redisLeaderboardCache) Record(ctx context.Context, userID string, totalXP int) error {
	// GT keeps the higher score if a stale write lands after a newer one.
	return c.rdb.ZAddArgs(ctx, c.key, goredis.ZAddArgs{
		GT:      true,
		Members: []goredis.Z{{Score: float64(totalXP), Member: userID}},
	}).Err()
}

func (c *redisLeaderboardCache) Top(ctx context.Context, limit int) ([]LeaderboardEntry, error) {
	members, err := c.rdb.ZRevRangeWithScores(ctx, c.key, 0, int64(limit-1)).Result()
	if err != nil {
		return nil, err
	}
	entries := make([]LeaderboardEntry, 0, len(members))
	for _, m := range members {
		id, ok := m.Member.(string)
		if !ok {
			return nil, fmt.Errorf("unexpected leaderboard member type %T", m.Member)
		}
		entries = append(entries, LeaderboardEntry{UserID: id, TotalXP: int(m.Score)})
	}
	return entries, nil
}

func (c *redisLeaderboardCache) Replace(ctx context.Context, profiles []model.Profile) error {
	tmpKey := c.key + ":rebuild"
	_, err := c.rdb.TxPipelined(ctx, func(pipe goredis.Pipeliner) error {
		pipe.Del(ctx, tmpKey)
		if len(profiles) > 0 {
			members := make([]goredis.Z, 0, len(profiles))
			for _, p := range profiles {
				members = append(members, goredis.Z{Score: float64(p.TotalXP), Member: p.ID})
			}
			pipe.ZAdd(ctx, tmpKey, members...)
			pipe.Rename(ctx, tmpKey, c.key)
		} else {
			pipe.Del(ctx, c.key)
		}
		return nil
	})
	return err
}

type noopLeaderboardCache struct{}

func (noopLeaderboardCache) Enabled() bool { return false }
func (noopLeaderboardCache) Record(context.Context, string, int) error { return nil }
func (noopLeaderboardCache) Top(context.Context, int) ([]LeaderboardEntry, error) { return nil, nil }
func (noopLeaderboardCache) Replace(context.Context, []model.Profile) error { return nil }
