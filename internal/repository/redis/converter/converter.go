package converter

import "github.com/storekit/admin-backend/internal/usecase"

// DashboardConverter maps the dashboard summary between usecase and the
// cached JSON model.
type DashboardConverter interface {
	ToRedisModel(entity *usecase.DashboardSummary) *DashboardRedisModel
	ToUseCase(model *DashboardRedisModel) *usecase.DashboardSummary
}

type DashboardConverterImpl struct{}

func NewDashboardConverterImpl() *DashboardConverterImpl {
	return &DashboardConverterImpl{}
}

func (c *DashboardConverterImpl) ToRedisModel(entity *usecase.DashboardSummary) *DashboardRedisModel {
	if entity == nil {
		return nil
	}

	orders := make([]RecentOrderRedisModel, 0, len(entity.RecentOrders))
	for _, order := range entity.RecentOrders {
		orders = append(orders, RecentOrderRedisModel{
			ID:          order.ID,
			UserName:    order.UserName,
			TotalAmount: order.TotalAmount,
			CreatedAt:   order.CreatedAt,
		})
	}

	return &DashboardRedisModel{
		ProductCount: entity.ProductCount,
		OrderCount:   entity.OrderCount,
		UserCount:    entity.UserCount,
		DailyRevenue: entity.DailyRevenue,
		RecentOrders: orders,
	}
}

func (c *DashboardConverterImpl) ToUseCase(model *DashboardRedisModel) *usecase.DashboardSummary {
	if model == nil {
		return nil
	}

	orders := make([]usecase.RecentOrder, 0, len(model.RecentOrders))
	for _, order := range model.RecentOrders {
		orders = append(orders, usecase.RecentOrder{
			ID:          order.ID,
			UserName:    order.UserName,
			TotalAmount: order.TotalAmount,
			CreatedAt:   order.CreatedAt,
		})
	}

	return &usecase.DashboardSummary{
		ProductCount: model.ProductCount,
		OrderCount:   model.OrderCount,
		UserCount:    model.UserCount,
		DailyRevenue: model.DailyRevenue,
		RecentOrders: orders,
	}
}
