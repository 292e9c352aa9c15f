package redis

import (
	"context"
	"encoding/json"
	"errors"

	r "github.com/redis/go-redis/v9"

	"github.com/jimlawless/whereami"
	"github.com/storekit/admin-backend/internal/cfg"
	"github.com/storekit/admin-backend/internal/repository/redis/converter"
	"github.com/storekit/admin-backend/internal/usecase"
	"github.com/storekit/admin-backend/pkg/clients"
	"github.com/storekit/admin-backend/pkg/e"
	"github.com/storekit/admin-backend/pkg/logger"
)

const dashboardKey = "admin:dashboard"

// CacheRepo caches the dashboard summary in Redis. The admin landing view is
// the hottest page and its figures tolerate a short TTL of staleness.
type CacheRepo struct {
	client *clients.RedisClient
	conv   converter.DashboardConverter
	cfg    *cfg.RedisCfg
	logger logger.Logger
}

func NewCacheRepo(client *clients.RedisClient, conv converter.DashboardConverter,
	cfg *cfg.RedisCfg, logger logger.Logger) *CacheRepo {
	return &CacheRepo{
		client: client,
		conv:   conv,
		cfg:    cfg,
		logger: logger,
	}
}

// GetDashboard returns the cached summary, or nil on a miss.
func (c *CacheRepo) GetDashboard(ctx context.Context) (*usecase.DashboardSummary, error) {
	data, err := c.client.Client.Get(ctx, dashboardKey).Bytes()
	if err != nil {
		if errors.Is(err, r.Nil) {
			return nil, nil // cache miss
		}
		c.logger.Warnf("redis GET failed: %v", e.Wrap(whereami.WhereAmI(), err))
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	var model converter.DashboardRedisModel
	if err := json.Unmarshal(data, &model); err != nil {
		c.logger.Warnf("redis unmarshal failed: %v", e.Wrap(whereami.WhereAmI(), err))
		if err := c.client.Client.Del(context.Background(), dashboardKey).Err(); err != nil {
			c.logger.Warnf("redis DEL failed: %v", e.Wrap(whereami.WhereAmI(), err))
		}
		return nil, nil // treat a corrupt entry as a miss
	}

	return c.conv.ToUseCase(&model), nil
}

// SetDashboard caches the summary with the configured TTL.
func (c *CacheRepo) SetDashboard(ctx context.Context, summary *usecase.DashboardSummary) error {
	data, err := json.Marshal(c.conv.ToRedisModel(summary))
	if err != nil {
		return e.Wrap(whereami.WhereAmI(), err)
	}

	if err := c.client.Client.Set(ctx, dashboardKey, data, c.cfg.DashboardTTL).Err(); err != nil {
		return e.Wrap(whereami.WhereAmI(), err)
	}

	return nil
}

// DeleteDashboard drops the cached summary, logging failures instead of
// propagating them.
func (c *CacheRepo) DeleteDashboard(ctx context.Context) error {
	if err := c.client.Client.Del(ctx, dashboardKey).Err(); err != nil {
		c.logger.Warnf("redis DEL failed: %v", e.Wrap(whereami.WhereAmI(), err))
	}

	return nil
}
