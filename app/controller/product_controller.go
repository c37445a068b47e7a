package controller

import (
	"bytes"
	"fmt"
	"log"
	"net/http"
	"strings"

	"pavexpert/repository"
	"pavexpert/service"
)

// ProductController handles HTTP requests for products
type ProductController struct {
	products   service.ProductServiceInterface
	galleries  service.GalleryServiceInterface
	specSheets service.SpecSheetServiceInterface
	pages      *Pages
}

// NewProductController creates a new ProductController
func NewProductController(
	products service.ProductServiceInterface,
	galleries service.GalleryServiceInterface,
	specSheets service.SpecSheetServiceInterface,
	pages *Pages,
) *ProductController {
	return &ProductController{
		products:   products,
		galleries:  galleries,
		specSheets: specSheets,
		pages:      pages,
	}
}

func optionalParam(r *http.Request, name string) *string {
	v := strings.TrimSpace(r.URL.Query().Get(name))
	if v == "" {
		return nil
	}
	return &v
}

// List handles GET /api/products
// Query params: search, type, brand, color, thickness
func (c *ProductController) List(w http.ResponseWriter, r *http.Request) {
	params := repository.ProductFilterParams{
		Search:      optionalParam(r, "search"),
		ProductType: optionalParam(r, "type"),
		Brand:       optionalParam(r, "brand"),
		Color:       optionalParam(r, "color"),
		Thickness:   optionalParam(r, "thickness"),
	}

	products, err := c.products.List(r.Context(), params)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, products)
}

// Filters handles GET /api/products/filters
func (c *ProductController) Filters(w http.ResponseWriter, r *http.Request) {
	options, err := c.products.FilterOptions(r.Context())
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, options)
}

// Get handles GET /api/products/{id}
func (c *ProductController) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := productIDParam(r)
	if !ok {
		writeError(w, http.StatusBadRequest, "invalid product id", nil)
		return
	}

	product, err := c.products.Get(r.Context(), id)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, product)
}

// Page handles GET /products/{id}
// Opens a gallery session for the visitor and renders the product page around it
func (c *ProductController) Page(w http.ResponseWriter, r *http.Request) {
	id, ok := productIDParam(r)
	if !ok {
		http.NotFound(w, r)
		return
	}

	product, err := c.products.Get(r.Context(), id)
	if err != nil {
		c.pageError(w, r, err)
		return
	}
	view, err := c.galleries.Open(product)
	if err != nil {
		c.pageError(w, r, err)
		return
	}

	var buf bytes.Buffer
	if err := c.pages.RenderProduct(&buf, ProductPage{Product: product, Gallery: view}); err != nil {
		log.Printf("❌ Failed to render product page %d: %v", id, err)
		http.Error(w, "Failed to render page", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	_, _ = buf.WriteTo(w)
}

// Print handles GET /products/{id}/print, the page the spec sheet PDF is printed from
func (c *ProductController) Print(w http.ResponseWriter, r *http.Request) {
	id, ok := productIDParam(r)
	if !ok {
		http.NotFound(w, r)
		return
	}

	product, err := c.products.Get(r.Context(), id)
	if err != nil {
		c.pageError(w, r, err)
		return
	}

	var buf bytes.Buffer
	if err := c.pages.RenderPrint(&buf, product); err != nil {
		log.Printf("❌ Failed to render print page %d: %v", id, err)
		http.Error(w, "Failed to render page", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	_, _ = buf.WriteTo(w)
}

// SpecSheet handles GET /products/{id}/spec-sheet
func (c *ProductController) SpecSheet(w http.ResponseWriter, r *http.Request) {
	id, ok := productIDParam(r)
	if !ok {
		http.NotFound(w, r)
		return
	}

	// fail fast on unknown products before starting Chrome
	product, err := c.products.Get(r.Context(), id)
	if err != nil {
		c.pageError(w, r, err)
		return
	}

	pdf, err := c.specSheets.GeneratePDF(r.Context(), id)
	if err != nil {
		log.Printf("❌ Failed to generate spec sheet for product %d: %v", id, err)
		http.Error(w, "Failed to generate spec sheet", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", fmt.Sprintf(`inline; filename="%s.pdf"`, slugify(product.Name)))
	_, _ = w.Write(pdf)
}

func (c *ProductController) pageError(w http.ResponseWriter, r *http.Request, err error) {
	if isNotFound(err) {
		http.NotFound(w, r)
		return
	}
	log.Printf("❌ Failed to load product page: %v", err)
	http.Error(w, "Internal server error", http.StatusInternalServerError)
}

// slugify turns a product name into a download file name
func slugify(name string) string {
	var b strings.Builder
	dash := false
	for _, r := range strings.ToLower(name) {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			b.WriteRune(r)
			dash = false
		case !dash && b.Len() > 0:
			b.WriteByte('-')
			dash = true
		}
	}
	slug := strings.TrimSuffix(b.String(), "-")
	if slug == "" {
		return "spec-sheet"
	}
	return slug + "-spec-sheet"
}
