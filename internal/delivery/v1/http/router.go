package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/storekit/admin-backend/internal/usecase"
	"github.com/storekit/admin-backend/pkg/logger"
)

type Router struct {
	router *chi.Mux
	logger logger.Logger
}

func NewRouter(router *chi.Mux, logger logger.Logger) *Router {
	return &Router{router: router, logger: logger}
}

func (r *Router) Init(adminUC usecase.AdminUC, renderer Renderer) {
	r.router.Get("/", func(w http.ResponseWriter, req *http.Request) {
		http.Redirect(w, req, "/admin/dashboard", http.StatusSeeOther)
	})

	r.router.Route("/admin", func(admin chi.Router) {
		handler := NewAdminHandler(adminUC, renderer, r.logger)
		registerAdminRoutes(admin, handler)
	})
}

func registerAdminRoutes(router chi.Router, handler *AdminHandler) {
	router.Get("/dashboard", handler.getDashboard)

	router.Route("/products", func(pr chi.Router) {
		pr.Get("/", handler.getProducts)
		pr.Get("/add", handler.getAddProduct)
		pr.Post("/add", handler.postAddProduct)
		pr.Get("/edit/{id}", handler.getEditProduct)
	})
}
