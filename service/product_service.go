package service

import (
	"bytes"
	"context"
	"fmt"
	"log"
	"strings"

	"github.com/microcosm-cc/bluemonday"
	"github.com/yuin/goldmark"

	"pavexpert/gallery"
	"pavexpert/models"
	"pavexpert/repository"
	"pavexpert/utils"
)

// ProductServiceInterface defines the contract for the product catalog
type ProductServiceInterface interface {
	List(ctx context.Context, params repository.ProductFilterParams) ([]models.ProductSummary, error)
	FilterOptions(ctx context.Context) (*models.ProductFilterOptions, error)
	Get(ctx context.Context, id int) (*models.ProductDetail, error)
}

// ProductService prepares products for the API and the product pages
type ProductService struct {
	repository repository.ProductRepositoryInterface
	site       *utils.SiteConfig
	markdown   goldmark.Markdown
	policy     *bluemonday.Policy
}

// NewProductService creates a new ProductService
func NewProductService(repo repository.ProductRepositoryInterface, site *utils.SiteConfig) *ProductService {
	return &ProductService{
		repository: repo,
		site:       site,
		markdown:   goldmark.New(),
		policy:     bluemonday.UGCPolicy(),
	}
}

// Ensure ProductService implements ProductServiceInterface
var _ ProductServiceInterface = (*ProductService)(nil)

// List returns the filtered products with their brand colors
func (s *ProductService) List(ctx context.Context, params repository.ProductFilterParams) ([]models.ProductSummary, error) {
	products, err := s.repository.List(ctx, params)
	if err != nil {
		return nil, err
	}
	for i := range products {
		products[i].BrandColor = s.site.GetBrandColor(products[i].Brand)
		products[i].MainImage = normalizeStoredPath(products[i].MainImage)
		products[i].Thumbnail = normalizeStoredPath(products[i].Thumbnail)
	}
	return products, nil
}

// FilterOptions returns the values offered by the product filters
func (s *ProductService) FilterOptions(ctx context.Context) (*models.ProductFilterOptions, error) {
	return s.repository.GetFilterOptions(ctx)
}

// Get returns a product with its padded gallery rows and rendered notes
func (s *ProductService) Get(ctx context.Context, id int) (*models.ProductDetail, error) {
	product, err := s.repository.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	product.BrandColor = s.site.GetBrandColor(product.Brand)
	product.MainImage = normalizeStoredPath(product.MainImage)

	noteHTML, err := s.RenderNote(product.Note)
	if err != nil {
		log.Printf("⚠️  Failed to render note of product %d: %v", id, err)
	}
	product.NoteHTML = noteHTML

	detail := &models.ProductDetail{
		Product:      *product,
		ColorSlots:   gallery.PadToTen(product.ColorImages, gallery.KindColor),
		ProjectSlots: gallery.PadToTen(product.ProjectImages, gallery.KindProject),
	}
	return detail, nil
}

// RenderNote converts a markdown note to sanitized HTML
func (s *ProductService) RenderNote(note string) (string, error) {
	if strings.TrimSpace(note) == "" {
		return "", nil
	}
	var buf bytes.Buffer
	if err := s.markdown.Convert([]byte(note), &buf); err != nil {
		return "", fmt.Errorf("failed to render markdown: %w", err)
	}
	return string(s.policy.SanitizeBytes(buf.Bytes())), nil
}

// normalizeStoredPath gives stored image paths a leading slash, leaving empty values alone
func normalizeStoredPath(path string) string {
	if path == "" || strings.HasPrefix(path, "http://") || strings.HasPrefix(path, "https://") {
		return path
	}
	return gallery.NormalizePath(path)
}
