package services

import (
	"sync"
	"time"

	"finsight/internal/models"
)

type cachedPlan struct {
	plan     *models.FinancialPlan
	cachedAt time.Time
}

// planCache keeps the last generated financial plan per session so the
// dashboard can redisplay a summary without regenerating. Entries expire
// after the configured TTL; the cache is never authoritative.
type planCache struct {
	mu      sync.RWMutex
	ttl     time.Duration
	entries map[string]cachedPlan
	now     func() time.Time
}

func NewPlanCache(ttl time.Duration) PlanCacheInterface {
	return &planCache{
		ttl:     ttl,
		entries: make(map[string]cachedPlan),
		now:     time.Now,
	}
}

func (c *planCache) Put(sessionID string, plan *models.FinancialPlan) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries[sessionID] = cachedPlan{plan: plan, cachedAt: c.now()}
}

func (c *planCache) Get(sessionID string) (*models.FinancialPlan, bool) {
	c.mu.RLock()
	entry, ok := c.entries[sessionID]
	c.mu.RUnlock()
	if !ok {
		return nil, false
	}
	if c.now().Sub(entry.cachedAt) > c.ttl {
		c.mu.Lock()
		delete(c.entries, sessionID)
		c.mu.Unlock()
		return nil, false
	}
	return entry.plan, true
}
