package converter

import "time"

// DashboardRedisModel is the cached JSON form of the dashboard summary.
type DashboardRedisModel struct {
	ProductCount int64                   `json:"product_count"`
	OrderCount   int64                   `json:"order_count"`
	UserCount    int64                   `json:"user_count"`
	DailyRevenue int64                   `json:"daily_revenue"`
	RecentOrders []RecentOrderRedisModel `json:"recent_orders"`
}

type RecentOrderRedisModel struct {
	ID          int64     `json:"id"`
	UserName    string    `json:"user_name"`
	TotalAmount int64     `json:"total_amount"`
	CreatedAt   time.Time `json:"created_at"`
}
