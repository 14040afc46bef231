package reporting

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"
)

// Cache stores derived dashboard snapshots in Redis so repeated reads with
// the same criteria skip re-aggregation. A nil Cache is a no-op.
type Cache struct {
	redis *redis.Client
	ttl   time.Duration
}

// NewCache creates a dashboard snapshot cache with the given TTL.
func NewCache(redisClient *redis.Client, ttl time.Duration) *Cache {
	return &Cache{redis: redisClient, ttl: ttl}
}

func (c *Cache) key(crit Criteria, year int) string {
	search := strings.ToLower(strings.TrimSpace(crit.PatientSearch))
	return fmt.Sprintf("dashboard:%s:%s:%s:%s:%s:%d",
		crit.StartDate, crit.EndDate, crit.Doctor, crit.Status, search, year)
}

// Get retrieves a cached dashboard view for the criteria, if present.
func (c *Cache) Get(ctx context.Context, crit Criteria, year int) (*DashboardView, bool) {
	if c == nil || c.redis == nil {
		return nil, false
	}

	data, err := c.redis.Get(ctx, c.key(crit, year)).Bytes()
	if err != nil {
		return nil, false
	}

	var view DashboardView
	if err := json.Unmarshal(data, &view); err != nil {
		return nil, false
	}

	return &view, true
}

// Set stores a dashboard view under the criteria key.
func (c *Cache) Set(ctx context.Context, crit Criteria, year int, view *DashboardView) error {
	if c == nil || c.redis == nil || view == nil {
		return nil
	}

	data, err := json.Marshal(view)
	if err != nil {
		return fmt.Errorf("reporting: marshal dashboard view: %w", err)
	}

	if err := c.redis.Set(ctx, c.key(crit, year), data, c.ttl).Err(); err != nil {
		return fmt.Errorf("reporting: cache dashboard view: %w", err)
	}

	return nil
}
