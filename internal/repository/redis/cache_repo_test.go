package redis

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/storekit/admin-backend/internal/cfg"
	"github.com/storekit/admin-backend/internal/repository/redis/converter"
	"github.com/storekit/admin-backend/internal/usecase"
	"github.com/storekit/admin-backend/pkg/clients"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type nopLogger struct{}

func (nopLogger) Debugf(format string, args ...any)            {}
func (nopLogger) Infof(format string, args ...any)             {}
func (nopLogger) Warnf(format string, args ...any)             {}
func (nopLogger) Errorf(err error, format string, args ...any) {}

func newTestRepo(t *testing.T) (*CacheRepo, *miniredis.Miniredis) {
	t.Helper()

	mr := miniredis.RunT(t)
	conf := &cfg.RedisCfg{
		Addr:         mr.Addr(),
		DashboardTTL: 30 * time.Second,
	}
	repo := NewCacheRepo(clients.NewRedisClient(conf), converter.NewDashboardConverterImpl(), conf, nopLogger{})
	return repo, mr
}

func TestDashboardRoundTrip(t *testing.T) {
	repo, _ := newTestRepo(t)
	ctx := context.Background()

	summary := &usecase.DashboardSummary{
		ProductCount: 12,
		OrderCount:   7,
		UserCount:    3,
		DailyRevenue: 4550,
		RecentOrders: []usecase.RecentOrder{
			{ID: 7, UserName: "Ann", TotalAmount: 1999, CreatedAt: time.Now().UTC().Truncate(time.Second)},
		},
	}

	require.NoError(t, repo.SetDashboard(ctx, summary))

	got, err := repo.GetDashboard(ctx)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, summary.ProductCount, got.ProductCount)
	assert.Equal(t, summary.DailyRevenue, got.DailyRevenue)
	require.Len(t, got.RecentOrders, 1)
	assert.Equal(t, "Ann", got.RecentOrders[0].UserName)
}

func TestGetDashboardMissReturnsNil(t *testing.T) {
	repo, _ := newTestRepo(t)

	got, err := repo.GetDashboard(context.Background())
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestGetDashboardCorruptEntryIsAMiss(t *testing.T) {
	repo, mr := newTestRepo(t)
	require.NoError(t, mr.Set("admin:dashboard", "{not json"))

	got, err := repo.GetDashboard(context.Background())
	require.NoError(t, err)
	assert.Nil(t, got)

	// The corrupt entry is dropped so the next write starts clean.
	assert.False(t, mr.Exists("admin:dashboard"))
}

func TestSetDashboardAppliesTTL(t *testing.T) {
	repo, mr := newTestRepo(t)
	ctx := context.Background()

	require.NoError(t, repo.SetDashboard(ctx, &usecase.DashboardSummary{ProductCount: 1}))
	assert.Equal(t, 30*time.Second, mr.TTL("admin:dashboard"))

	mr.FastForward(time.Minute)

	got, err := repo.GetDashboard(ctx)
	require.NoError(t, err)
	assert.Nil(t, got, "the entry expires with the TTL")
}

func TestDeleteDashboard(t *testing.T) {
	repo, mr := newTestRepo(t)
	ctx := context.Background()

	require.NoError(t, repo.SetDashboard(ctx, &usecase.DashboardSummary{ProductCount: 1}))
	require.NoError(t, repo.DeleteDashboard(ctx))
	assert.False(t, mr.Exists("admin:dashboard"))

	// Deleting an absent key is fine.
	require.NoError(t, repo.DeleteDashboard(ctx))
}
