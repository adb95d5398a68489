package service

import (
	"context"
	"sync"

	"go.uber.org/zap"

	"matchstats/internal/models"
	"matchstats/internal/repository"
)

const defaultCacheSize = 100

// LeagueCache keeps an in-memory copy of the top-leagues rollup so the most
// common league lookup skips the store entirely. It is warmed at startup and
// refreshed on a cron schedule; between refreshes it serves a slightly stale
// but internally consistent snapshot.
type LeagueCache struct {
	Repo   repository.RollupReader
	Logger *zap.Logger
	Size   int

	mu  sync.RWMutex
	top []models.LeagueRollup
}

// Refresh reloads the snapshot from the rollup reader. On failure the
// previous snapshot stays in place.
func (c *LeagueCache) Refresh(ctx context.Context) error {
	size := c.Size
	if size <= 0 {
		size = defaultCacheSize
	}
	items, err := c.Repo.TopLeagues(ctx, size)
	if err != nil {
		if c.Logger != nil {
			c.Logger.Warn("league cache refresh failed", zap.Error(err))
		}
		return err
	}
	c.mu.Lock()
	c.top = items
	c.mu.Unlock()
	if c.Logger != nil {
		c.Logger.Debug("league cache refreshed", zap.Int("leagues", len(items)))
	}
	return nil
}

// Top returns up to limit cached leagues. ok is false when the cache has
// never been warmed, in which case the caller should fall back to the store.
func (c *LeagueCache) Top(limit int) ([]models.LeagueRollup, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	if c.top == nil {
		return nil, false
	}
	if limit <= 0 || limit > len(c.top) {
		limit = len(c.top)
	}
	out := make([]models.LeagueRollup, limit)
	copy(out, c.top[:limit])
	return out, true
}
