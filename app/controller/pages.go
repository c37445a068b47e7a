package controller

import (
	"embed"
	"fmt"
	"html/template"
	"io"

	"pavexpert/gallery"
	"pavexpert/models"
)

//go:embed templates/*.tmpl
var pageFS embed.FS

// ProductPage feeds the product page template
type ProductPage struct {
	Product *models.ProductDetail
	Gallery gallery.View
}

// printPage feeds the print template
type printPage struct {
	Product *models.ProductDetail
	Colors  []gallery.Tile
}

// Pages renders the server-side HTML pages. The gallery blocks come from the gallery renderer.
type Pages struct {
	tmpl *template.Template
}

// NewPages parses the page templates on top of the gallery templates
func NewPages(renderer *gallery.Renderer) (*Pages, error) {
	base, err := renderer.Templates().Clone()
	if err != nil {
		return nil, fmt.Errorf("failed to clone gallery templates: %w", err)
	}
	tmpl, err := base.Funcs(template.FuncMap{
		"noteHTML": func(s string) template.HTML {
			// already sanitized by the product service
			return template.HTML(s)
		},
	}).ParseFS(pageFS, "templates/*.tmpl")
	if err != nil {
		return nil, fmt.Errorf("failed to parse page templates: %w", err)
	}
	return &Pages{tmpl: tmpl}, nil
}

// RenderProduct writes the product page
func (p *Pages) RenderProduct(w io.Writer, page ProductPage) error {
	return p.tmpl.ExecuteTemplate(w, "product-page", page)
}

// RenderPrint writes the printable spec sheet page of a product
func (p *Pages) RenderPrint(w io.Writer, product *models.ProductDetail) error {
	seq := gallery.NewSequence(product.ColorImages, product.ProjectImages)
	view := gallery.BuildView(gallery.New(seq, product.MainImage), nil)
	return p.tmpl.ExecuteTemplate(w, "print-page", printPage{Product: product, Colors: view.Colors})
}
