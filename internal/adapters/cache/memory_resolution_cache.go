package cache

import (
	"context"
	"sync"

	"shipping-tools/internal/domain"
)

// In-process resolution cache, used when no database is configured.
type MemoryResolutionCache struct {
	mu sync.RWMutex
	m  map[string]domain.BranchMatch
}

func NewMemoryResolutionCache() *MemoryResolutionCache {
	return &MemoryResolutionCache{m: make(map[string]domain.BranchMatch)}
}

func (c *MemoryResolutionCache) GetMany(_ context.Context, keys []string) (map[string]domain.BranchMatch, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	out := make(map[string]domain.BranchMatch, len(keys))
	for _, k := range keys {
		if m, ok := c.m[k]; ok {
			out[k] = m
		}
	}
	return out, nil
}

func (c *MemoryResolutionCache) PutMany(_ context.Context, results map[string]domain.BranchMatch) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	for k, m := range results {
		c.m[k] = m
	}
	return nil
}

func (c *MemoryResolutionCache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.m)
}
