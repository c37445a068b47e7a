package router

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"pavexpert/app/controller"
)

type Controllers struct {
	Product      *controller.ProductController
	Gallery      *controller.GalleryController
	Image        *controller.ImageController
	Estimate     *controller.EstimateController
	Supplier     *controller.SupplierController
	ProductImage *controller.ProductImageController
}

// NewRouter builds the HTTP handler of the site
func NewRouter(controllers *Controllers) http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)

	// Ping endpoint
	r.Get("/ping", controller.Ping)

	// Static assets (css, gallery script)
	r.Handle("/assets/*", http.StripPrefix("/assets", http.FileServer(http.Dir("public/assets"))))

	// Images, optionally resized: /images/...?size=thumb|medium
	r.Get("/images/*", controllers.Image.Serve)

	// Product pages
	r.Route("/products/{id}", func(r chi.Router) {
		r.Get("/", controllers.Product.Page)
		r.Get("/print", controllers.Product.Print)
		r.With(middleware.Timeout(60*time.Second)).Get("/spec-sheet", controllers.Product.SpecSheet)
	})

	// Gallery fragment
	r.Get("/gallery/{session}", controllers.Gallery.Fragment)

	r.Route("/api", func(r chi.Router) {
		r.Use(middleware.Timeout(30 * time.Second))

		// Products
		r.Get("/products", controllers.Product.List)
		r.Get("/products/filters", controllers.Product.Filters)
		r.Get("/products/{id}", controllers.Product.Get)
		r.Post("/products/{id}/gallery", controllers.Gallery.Create)

		// Gallery sessions
		r.Route("/gallery/{session}", func(r chi.Router) {
			r.Get("/", controllers.Gallery.Get)
			r.Delete("/", controllers.Gallery.Delete)
			r.Post("/select", controllers.Gallery.Select)
			r.Post("/navigate", controllers.Gallery.Navigate)
			r.Post("/keys", controllers.Gallery.Key)
			r.Post("/lightbox/open", controllers.Gallery.OpenLightbox)
			r.Post("/lightbox/close", controllers.Gallery.CloseLightbox)
			r.Post("/lightbox/navigate", controllers.Gallery.NavigateLightbox)
			r.Post("/lightbox/jump", controllers.Gallery.JumpLightbox)
		})

		// Estimates
		r.Post("/estimate", controllers.Estimate.Submit)
		r.Post("/estimate/images", controllers.Estimate.UploadImages)

		// Suppliers
		r.Get("/suppliers", controllers.Supplier.List)
	})

	// Admin
	r.Post("/admin/product-images/sync", controllers.ProductImage.Sync)

	return r
}
