package catalogcache

import (
	"slices"
	"sync"
	"time"

	"github.com/GooferByte/rewardcatalog/internal/models"
)

// Cache holds the normalized reward list for a fixed time-to-live.
//
// Every Invalidate bumps the generation. A list loaded before an Invalidate
// carries the older generation and is refused by Set.
type Cache struct {
	mu         sync.Mutex
	rewards    []models.Reward
	storedAt   time.Time
	loaded     bool
	generation uint64
	ttl        time.Duration
	nowFunc    func() time.Time
}

func New(ttl time.Duration) *Cache {
	return &Cache{
		ttl:     ttl,
		nowFunc: time.Now,
	}
}

// Get returns a copy of the cached list while it is fresh.
func (c *Cache) Get() ([]models.Reward, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if !c.loaded || c.nowFunc().Sub(c.storedAt) >= c.ttl {
		return nil, false
	}
	return slices.Clone(c.rewards), true
}

// Generation returns the current invalidation count. Read it before loading
// the list that will be passed to Set.
func (c *Cache) Generation() uint64 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.generation
}

// Set stores rewards if no Invalidate happened since generation was read.
// It reports whether the list was stored.
func (c *Cache) Set(generation uint64, rewards []models.Reward) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	if generation != c.generation {
		return false
	}
	c.rewards = slices.Clone(rewards)
	c.storedAt = c.nowFunc()
	c.loaded = true
	return true
}

func (c *Cache) Invalidate() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.rewards = nil
	c.loaded = false
	c.generation++
}
