// Package cache provides a thread-safe, in-memory byte store with TTL
// expiration and size-bounded eviction.
package cache

import (
	"sort"
	"sync"
	"time"

	"lightlock/pkg/logger"
	"lightlock/pkg/utils"
)

const (
	DefaultMaxSize = 16 << 20
	DefaultTTL     = 30 * time.Minute

	// MaxItemSize keeps a single entry from crowding out the rest.
	MaxItemSize = 512 << 10

	GCInterval      = 5 * time.Minute
	MonitorInterval = 30 * time.Minute
)

// Options configures a MemoryCache. Zero values fall back to the defaults.
type Options struct {
	Enabled     bool
	MaxCapacity string // e.g. "16MB"
	TTL         time.Duration
}

type Item struct {
	Data      []byte
	ExpiresAt time.Time
	Size      int64
}

// Stats is a point-in-time view of the cache.
type Stats struct {
	Enabled bool   `json:"enabled"`
	Items   int    `json:"items"`
	Used    int64  `json:"used_bytes"`
	Max     int64  `json:"max_bytes"`
	Hits    uint64 `json:"hits"`
	Misses  uint64 `json:"misses"`
}

type MemoryCache struct {
	sync.RWMutex
	items     map[string]Item
	totalSize int64
	maxSize   int64
	ttl       time.Duration
	enabled   bool

	hits, misses uint64

	stop     chan struct{}
	stopOnce sync.Once
}

// New builds the cache and starts its GC and monitor workers. A disabled
// cache runs in pass-through mode and starts nothing.
func New(opts Options) *MemoryCache {
	maxSize := utils.SizeToBytes(opts.MaxCapacity, DefaultMaxSize)

	ttl := opts.TTL
	if ttl <= 0 {
		ttl = DefaultTTL
	}

	c := &MemoryCache{
		maxSize: maxSize,
		ttl:     ttl,
		enabled: opts.Enabled,
		stop:    make(chan struct{}),
	}

	if c.enabled {
		c.items = make(map[string]Item)

		go c.startGC()
		go c.startMonitor()

		logger.LogInfo("Memory Cache Initialized: %s Limit, TTL: %s", utils.FormatBytes(maxSize), ttl)
	} else {
		logger.LogWarn("Memory Cache is DISABLED via config (Running in pass-through mode).")
	}
	return c
}

// Set stores data under key. Items over MaxItemSize or half the capacity
// are silently skipped.
func (c *MemoryCache) Set(key string, data []byte) {
	if !c.enabled {
		return
	}

	c.Lock()
	defer c.Unlock()

	size := int64(len(data))
	if size > c.maxSize/2 || size > MaxItemSize {
		return
	}

	if old, exists := c.items[key]; exists {
		c.totalSize -= old.Size
		delete(c.items, key)
	}

	if c.totalSize+size > c.maxSize {
		c.prune()
	}

	c.items[key] = Item{
		Data:      data,
		ExpiresAt: time.Now().Add(c.ttl),
		Size:      size,
	}
	c.totalSize += size
}

// Get returns a live item.
func (c *MemoryCache) Get(key string) ([]byte, bool) {
	if !c.enabled {
		return nil, false
	}

	c.Lock()
	defer c.Unlock()

	item, found := c.items[key]
	if !found || time.Now().After(item.ExpiresAt) {
		c.misses++
		return nil, false
	}
	c.hits++
	return item.Data, true
}

func (c *MemoryCache) Delete(key string) {
	if !c.enabled {
		return
	}

	c.Lock()
	defer c.Unlock()

	if item, found := c.items[key]; found {
		delete(c.items, key)
		c.totalSize -= item.Size
	}
}

func (c *MemoryCache) Stats() Stats {
	c.RLock()
	defer c.RUnlock()
	return Stats{
		Enabled: c.enabled,
		Items:   len(c.items),
		Used:    c.totalSize,
		Max:     c.maxSize,
		Hits:    c.hits,
		Misses:  c.misses,
	}
}

// Close stops the background workers.
func (c *MemoryCache) Close() {
	c.stopOnce.Do(func() { close(c.stop) })
}

// prune evicts the soonest-expiring items until usage is below 80%.
// Caller holds the write lock.
func (c *MemoryCache) prune() {
	if len(c.items) == 0 {
		return
	}

	targetSize := int64(float64(c.maxSize) * 0.80)

	type candidate struct {
		Key       string
		ExpiresAt time.Time
		Size      int64
	}

	candidates := make([]candidate, 0, len(c.items))
	for k, v := range c.items {
		candidates = append(candidates, candidate{k, v.ExpiresAt, v.Size})
	}
	sort.Slice(candidates, func(i, j int) bool {
		return candidates[i].ExpiresAt.Before(candidates[j].ExpiresAt)
	})

	for _, cand := range candidates {
		if c.totalSize <= targetSize {
			break
		}
		delete(c.items, cand.Key)
		c.totalSize -= cand.Size
	}
}

func (c *MemoryCache) removeExpired(now time.Time) (int, int64) {
	c.Lock()
	defer c.Unlock()

	count, freed := 0, int64(0)
	for k, v := range c.items {
		if now.After(v.ExpiresAt) {
			delete(c.items, k)
			c.totalSize -= v.Size
			freed += v.Size
			count++
		}
	}
	return count, freed
}

func (c *MemoryCache) startGC() {
	ticker := time.NewTicker(GCInterval)
	defer ticker.Stop()

	for {
		select {
		case <-c.stop:
			return
		case now := <-ticker.C:
			if n, freed := c.removeExpired(now); n > 0 {
				logger.LogInfo("[CACHE] GC: Cleaned %d items (%s freed)", n, utils.FormatBytes(freed))
			}
		}
	}
}

func (c *MemoryCache) startMonitor() {
	ticker := time.NewTicker(MonitorInterval)
	defer ticker.Stop()

	for {
		select {
		case <-c.stop:
			return
		case <-ticker.C:
			s := c.Stats()
			if s.Items == 0 {
				continue
			}
			percent := 0.0
			if s.Max > 0 {
				percent = float64(s.Used) / float64(s.Max) * 100
			}
			logger.LogInfo("[CACHE] %d items | Usage: %s / %s (%.2f%%) | hits %d, misses %d",
				s.Items, utils.FormatBytes(s.Used), utils.FormatBytes(s.Max), percent, s.Hits, s.Misses)
		}
	}
}
