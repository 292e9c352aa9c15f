package http

import (
	"net/http"
	"time"

	"github.com/storekit/admin-backend/internal/domain"
	"github.com/storekit/admin-backend/internal/usecase"
)

// ViewContext is the request-scoped context every view receives. It is
// built per request and passed explicitly, never held as ambient state.
type ViewContext struct {
	Title string
	Admin string
}

// adminHeader is set by the fronting auth proxy; session handling itself
// lives outside this service.
const adminHeader = "X-Admin-User"

func newViewContext(r *http.Request, title string) ViewContext {
	return ViewContext{
		Title: title,
		Admin: r.Header.Get(adminHeader),
	}
}

// DashboardView backs the admin/dashboard template.
type DashboardView struct {
	Ctx          ViewContext
	Stats        *DashboardStats
	RecentOrders []RecentOrderView
	Error        string
}

type DashboardStats struct {
	ProductCount int64
	OrderCount   int64
	UserCount    int64
	DailyRevenue int64 // cents, formatted by the money template func
}

type RecentOrderView struct {
	ID          int64
	UserName    string
	TotalAmount int64 // cents
	CreatedAt   time.Time
}

// ProductsView backs the admin/products template.
type ProductsView struct {
	Ctx      ViewContext
	Products []usecase.ProductListItem
}

// ProductFormView backs the admin/product_form template. Product is nil on
// the creation form.
type ProductFormView struct {
	Ctx        ViewContext
	Categories []domain.Category
	Product    *usecase.ProductDetails
}

func newDashboardView(ctx ViewContext, summary *usecase.DashboardSummary) *DashboardView {
	view := &DashboardView{Ctx: ctx}
	if summary == nil {
		return view
	}

	view.Stats = &DashboardStats{
		ProductCount: summary.ProductCount,
		OrderCount:   summary.OrderCount,
		UserCount:    summary.UserCount,
		DailyRevenue: summary.DailyRevenue,
	}

	view.RecentOrders = make([]RecentOrderView, 0, len(summary.RecentOrders))
	for _, order := range summary.RecentOrders {
		view.RecentOrders = append(view.RecentOrders, RecentOrderView{
			ID:          order.ID,
			UserName:    order.UserName,
			TotalAmount: order.TotalAmount,
			CreatedAt:   order.CreatedAt,
		})
	}

	return view
}
