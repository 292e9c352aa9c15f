package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/storekit/admin-backend/internal/usecase"
	"github.com/storekit/admin-backend/pkg/logger"
)

type AdminHandler struct {
	adminUsecase usecase.AdminUC
	renderer     Renderer
	logger       logger.Logger
}

func NewAdminHandler(adminUsecase usecase.AdminUC, renderer Renderer, logger logger.Logger) *AdminHandler {
	return &AdminHandler{adminUsecase: adminUsecase, renderer: renderer, logger: logger}
}

// getDashboard renders the admin landing view. When the aggregation fails
// the whole summary is discarded and a generic error state is rendered;
// there is no partial view.
func (a *AdminHandler) getDashboard(w http.ResponseWriter, r *http.Request) {
	viewCtx := newViewContext(r, "Admin Dashboard")

	summary, err := a.adminUsecase.GetDashboardSummary(r.Context())
	if err != nil {
		a.logger.Errorf(err, "dashboard aggregation failed")
		view := newDashboardView(viewCtx, nil)
		view.Error = "Error loading dashboard"
		a.render(w, "dashboard", view)
		return
	}

	a.render(w, "dashboard", newDashboardView(viewCtx, summary))
}

// getProducts renders the product management view. A query failure is
// logged and presented as an empty list; the admin never sees error detail.
func (a *AdminHandler) getProducts(w http.ResponseWriter, r *http.Request) {
	viewCtx := newViewContext(r, "Manage Products")

	products, err := a.adminUsecase.ListProducts(r.Context())
	if err != nil {
		a.logger.Errorf(err, "product listing failed")
		products = nil
	}

	a.render(w, "products", &ProductsView{Ctx: viewCtx, Products: products})
}

// getAddProduct renders an empty product form with the category selection.
func (a *AdminHandler) getAddProduct(w http.ResponseWriter, r *http.Request) {
	viewCtx := newViewContext(r, "Add Product")

	formCtx, err := a.adminUsecase.GetProductFormContext(r.Context(), nil)
	if err != nil {
		a.logger.Errorf(err, "product form context failed")
		formCtx = usecase.NewProductFormContext(nil, nil)
	}

	a.render(w, "product_form", &ProductFormView{
		Ctx:        viewCtx,
		Categories: formCtx.Categories,
		Product:    formCtx.Product,
	})
}

// postAddProduct creates a product from the submitted form. Success
// redirects to the product list; any failure redirects back to the form
// with the detail going to the log only.
func (a *AdminHandler) postAddProduct(w http.ResponseWriter, r *http.Request) {
	const (
		maxTotalRequestSize = 20 << 20
		maxMemory           = 8 << 20
	)

	r.Body = http.MaxBytesReader(w, r.Body, maxTotalRequestSize)

	if err := ensureForm(r, maxMemory); err != nil {
		a.logger.Warnf("add product form parse failed: %s", err.Error())
		http.Redirect(w, r, "/admin/products/add", http.StatusSeeOther)
		return
	}

	form, err := parseProductForm(r)
	if err != nil {
		a.logger.Warnf("add product form invalid: %s", err.Error())
		http.Redirect(w, r, "/admin/products/add", http.StatusSeeOther)
		return
	}

	image, err := parseImageUpload(r)
	if err != nil {
		a.logger.Warnf("add product image invalid: %s", err.Error())
		http.Redirect(w, r, "/admin/products/add", http.StatusSeeOther)
		return
	}

	req := usecase.NewCreateProductReq(
		form.Name, form.Price, form.Description,
		form.CategoryID, form.Stock, form.ImageURL, image,
	)

	if err := a.adminUsecase.CreateProduct(r.Context(), req); err != nil {
		a.logger.Errorf(err, "product creation failed")
		http.Redirect(w, r, "/admin/products/add", http.StatusSeeOther)
		return
	}

	http.Redirect(w, r, "/admin/products", http.StatusSeeOther)
}

// getEditProduct renders the product form pre-filled for an existing
// product. An unknown id renders the form without a product.
func (a *AdminHandler) getEditProduct(w http.ResponseWriter, r *http.Request) {
	viewCtx := newViewContext(r, "Edit Product")

	id, err := parseProductID(chi.URLParam(r, "id"))
	if err != nil {
		a.logger.Warnf("edit product id invalid: %s", err.Error())
		http.Redirect(w, r, "/admin/products", http.StatusSeeOther)
		return
	}

	formCtx, err := a.adminUsecase.GetProductFormContext(r.Context(), &id)
	if err != nil {
		a.logger.Errorf(err, "product form context failed")
		formCtx = usecase.NewProductFormContext(nil, nil)
	}

	a.render(w, "product_form", &ProductFormView{
		Ctx:        viewCtx,
		Categories: formCtx.Categories,
		Product:    formCtx.Product,
	})
}

func (a *AdminHandler) render(w http.ResponseWriter, view string, data any) {
	if err := a.renderer.Render(w, view, data); err != nil {
		a.logger.Errorf(err, "render %s failed", view)
		http.Error(w, "internal server error", http.StatusInternalServerError)
	}
}
