package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"alumnet/internal/application/ticket/dto"
	"alumnet/internal/application/ticket/usecases"
	"alumnet/internal/shared/config"
	"alumnet/internal/shared/logger"
)

const (
	ticketDetailKeyPrefix = "ticket:detail:"
	ticketListKeyPrefix   = "ticket:list:"
	ticketStatsKeyPrefix  = "ticket:stats:"
	categoriesKey         = "ticket:categories"
	availableAdminsKey    = "ticket:admins:available"

	invalidateScanCount = 100
)

// RedisTicketCache implements the read-through caches for ticket detail,
// list pages, dashboard stats and reference data. Values are stored as
// JSON blobs with per-view TTLs from CacheConfig.
type RedisTicketCache struct {
	client *redis.Client
	cfg    config.CacheConfig
	logger logger.Interface
}

func NewRedisTicketCache(client *redis.Client, cfg config.CacheConfig, logger logger.Interface) *RedisTicketCache {
	return &RedisTicketCache{
		client: client,
		cfg:    cfg,
		logger: logger,
	}
}

func (c *RedisTicketCache) detailKey(ticketID uint, adminView bool) string {
	view := "user"
	if adminView {
		view = "admin"
	}
	return fmt.Sprintf("%s%d:%s", ticketDetailKeyPrefix, ticketID, view)
}

func (c *RedisTicketCache) listKey(scopeKey, filterHash string) string {
	return fmt.Sprintf("%s%s:%s", ticketListKeyPrefix, scopeKey, filterHash)
}

func (c *RedisTicketCache) statsKey(scopeKey string) string {
	return ticketStatsKeyPrefix + scopeKey
}

func (c *RedisTicketCache) GetDetail(ctx context.Context, ticketID uint, adminView bool) (*dto.TicketDetailDTO, error) {
	var detail dto.TicketDetailDTO
	found, err := c.getJSON(ctx, c.detailKey(ticketID, adminView), &detail)
	if err != nil || !found {
		return nil, err
	}
	return &detail, nil
}

func (c *RedisTicketCache) SetDetail(ctx context.Context, ticketID uint, adminView bool, detail *dto.TicketDetailDTO) error {
	return c.setJSON(ctx, c.detailKey(ticketID, adminView), detail, c.cfg.TicketDetailTTL())
}

func (c *RedisTicketCache) GetList(ctx context.Context, scopeKey, filterHash string) (*usecases.CachedTicketList, error) {
	var list usecases.CachedTicketList
	found, err := c.getJSON(ctx, c.listKey(scopeKey, filterHash), &list)
	if err != nil || !found {
		return nil, err
	}
	return &list, nil
}

func (c *RedisTicketCache) SetList(ctx context.Context, scopeKey, filterHash string, list *usecases.CachedTicketList, adminScope bool) error {
	ttl := c.cfg.UserListTTL()
	if adminScope {
		ttl = c.cfg.AdminListTTL()
	}
	return c.setJSON(ctx, c.listKey(scopeKey, filterHash), list, ttl)
}

func (c *RedisTicketCache) GetStats(ctx context.Context, scopeKey string) (*dto.TicketStatsDTO, error) {
	var stats dto.TicketStatsDTO
	found, err := c.getJSON(ctx, c.statsKey(scopeKey), &stats)
	if err != nil || !found {
		return nil, err
	}
	return &stats, nil
}

func (c *RedisTicketCache) SetStats(ctx context.Context, scopeKey string, stats *dto.TicketStatsDTO) error {
	return c.setJSON(ctx, c.statsKey(scopeKey), stats, c.cfg.DashboardTTL())
}

func (c *RedisTicketCache) GetCategories(ctx context.Context) ([]dto.CategoryDTO, error) {
	var categories []dto.CategoryDTO
	found, err := c.getJSON(ctx, categoriesKey, &categories)
	if err != nil || !found {
		return nil, err
	}
	return categories, nil
}

func (c *RedisTicketCache) SetCategories(ctx context.Context, categories []dto.CategoryDTO) error {
	return c.setJSON(ctx, categoriesKey, categories, c.cfg.CategoriesTTL())
}

func (c *RedisTicketCache) GetAvailableAdmins(ctx context.Context) ([]dto.AdminDTO, error) {
	var admins []dto.AdminDTO
	found, err := c.getJSON(ctx, availableAdminsKey, &admins)
	if err != nil || !found {
		return nil, err
	}
	return admins, nil
}

func (c *RedisTicketCache) SetAvailableAdmins(ctx context.Context, admins []dto.AdminDTO) error {
	return c.setJSON(ctx, availableAdminsKey, admins, c.cfg.AvailableAdminsTTL())
}

// InvalidateDetail drops both the user and admin views of a ticket detail.
func (c *RedisTicketCache) InvalidateDetail(ctx context.Context, ticketID uint) error {
	keys := []string{
		c.detailKey(ticketID, false),
		c.detailKey(ticketID, true),
	}
	if err := c.client.Del(ctx, keys...).Err(); err != nil {
		return fmt.Errorf("failed to invalidate ticket detail cache: %w", err)
	}
	return nil
}

// InvalidateLists drops every cached list page. List keys embed filter
// hashes, so a targeted delete is not possible after a write.
func (c *RedisTicketCache) InvalidateLists(ctx context.Context) error {
	return c.deleteByPattern(ctx, ticketListKeyPrefix+"*")
}

// InvalidateStats drops every cached dashboard stats scope.
func (c *RedisTicketCache) InvalidateStats(ctx context.Context) error {
	return c.deleteByPattern(ctx, ticketStatsKeyPrefix+"*")
}

// InvalidateAvailableAdmins drops the cached assignable admin roster.
func (c *RedisTicketCache) InvalidateAvailableAdmins(ctx context.Context) error {
	if err := c.client.Del(ctx, availableAdminsKey).Err(); err != nil {
		return fmt.Errorf("failed to invalidate available admins cache: %w", err)
	}
	return nil
}

func (c *RedisTicketCache) getJSON(ctx context.Context, key string, dest interface{}) (bool, error) {
	data, err := c.client.Get(ctx, key).Bytes()
	if err == redis.Nil {
		return false, nil // Cache miss
	}
	if err != nil {
		return false, fmt.Errorf("failed to get %s from cache: %w", key, err)
	}

	if err := json.Unmarshal(data, dest); err != nil {
		// A corrupt entry behaves like a miss so callers fall back to DB.
		c.logger.Warnw("dropping unreadable cache entry", "key", key, "error", err)
		_ = c.client.Del(ctx, key).Err()
		return false, nil
	}

	return true, nil
}

func (c *RedisTicketCache) setJSON(ctx context.Context, key string, value interface{}, ttl time.Duration) error {
	data, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("failed to marshal cache value for %s: %w", key, err)
	}

	if err := c.client.Set(ctx, key, data, ttl).Err(); err != nil {
		return fmt.Errorf("failed to set %s in cache: %w", key, err)
	}

	return nil
}

func (c *RedisTicketCache) deleteByPattern(ctx context.Context, pattern string) error {
	iter := c.client.Scan(ctx, 0, pattern, invalidateScanCount).Iterator()

	var keys []string
	for iter.Next(ctx) {
		keys = append(keys, iter.Val())
	}
	if err := iter.Err(); err != nil {
		return fmt.Errorf("failed to scan cache keys for %s: %w", pattern, err)
	}

	if len(keys) == 0 {
		return nil
	}

	if err := c.client.Del(ctx, keys...).Err(); err != nil {
		return fmt.Errorf("failed to delete cache keys for %s: %w", pattern, err)
	}

	return nil
}
