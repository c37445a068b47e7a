package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/jackc/pgx/v5/pgtype"

	"pavexpert/models"
)

// ProductFilterParams represents optional filter parameters for the product list
type ProductFilterParams struct {
	Search      *string
	ProductType *string
	Brand       *string
	Color       *string
	Thickness   *string
}

// ProductRepository handles database operations for products
type ProductRepository struct {
	db     *sql.DB
	images ProductImageRepositoryInterface
	types  *pgtype.Map
}

// NewProductRepository creates a new ProductRepository
func NewProductRepository(db *sql.DB, images ProductImageRepositoryInterface) *ProductRepository {
	return &ProductRepository{
		db:     db,
		images: images,
		types:  pgtype.NewMap(),
	}
}

// Ensure ProductRepository implements ProductRepositoryInterface
var _ ProductRepositoryInterface = (*ProductRepository)(nil)

const productListSelect = `
		SELECT
			p.id,
			p.name,
			COALESCE(b.brand_name, '') AS brand,
			COALESCE(p.product_type, '') AS product_type,
			COALESCE(p.color, '') AS color,
			COALESCE(p.thickness_mm, '') AS thickness,
			COALESCE(p.main_image, '') AS main_image,
			COALESCE((
				SELECT pi.image_path FROM product_images pi
				WHERE pi.product_id = p.id AND pi.kind = 'color'
				ORDER BY pi.position ASC
				LIMIT 1
			), '') AS thumbnail
		FROM products p
		LEFT JOIN brands b ON b.brand_id = p.brand_id
		WHERE p.is_active = true`

// buildProductListQuery appends one condition per set filter, all case-insensitive
func buildProductListQuery(params ProductFilterParams) (string, []interface{}) {
	var b strings.Builder
	b.WriteString(productListSelect)

	var args []interface{}
	add := func(cond string, value string) {
		args = append(args, value)
		b.WriteString("\n\t\t  AND ")
		b.WriteString(strings.ReplaceAll(cond, "?", fmt.Sprintf("$%d", len(args))))
	}

	if params.Search != nil && strings.TrimSpace(*params.Search) != "" {
		add("(p.name ILIKE ? OR b.brand_name ILIKE ? OR p.product_type ILIKE ?)",
			"%"+strings.TrimSpace(*params.Search)+"%")
	}
	if params.ProductType != nil && strings.TrimSpace(*params.ProductType) != "" {
		add("LOWER(p.product_type) = LOWER(?)", strings.TrimSpace(*params.ProductType))
	}
	if params.Brand != nil && strings.TrimSpace(*params.Brand) != "" {
		add("LOWER(b.brand_name) = LOWER(?)", strings.TrimSpace(*params.Brand))
	}
	if params.Color != nil && strings.TrimSpace(*params.Color) != "" {
		add("(LOWER(p.color) = LOWER(?) OR EXISTS (SELECT 1 FROM unnest(p.colors_available) c WHERE LOWER(c) = LOWER(?)))",
			strings.TrimSpace(*params.Color))
	}
	if params.Thickness != nil && strings.TrimSpace(*params.Thickness) != "" {
		add("(p.thickness_mm = ? OR ? = ANY(p.thicknesses_available))", strings.TrimSpace(*params.Thickness))
	}

	b.WriteString("\n\t\tORDER BY p.name ASC")
	return b.String(), args
}

// List retrieves active products matching the filters, ordered by name
func (r *ProductRepository) List(ctx context.Context, params ProductFilterParams) ([]models.ProductSummary, error) {
	query, args := buildProductListQuery(params)
	log.Printf("🔍 ProductRepository.List: %d filter(s)", len(args))

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Printf("❌ Error querying products: %v", err)
		return nil, fmt.Errorf("failed to query products: %w", err)
	}
	defer rows.Close()

	products := []models.ProductSummary{}
	for rows.Next() {
		var p models.ProductSummary
		if err := rows.Scan(&p.ID, &p.Name, &p.Brand, &p.ProductType, &p.Color, &p.Thickness, &p.MainImage, &p.Thumbnail); err != nil {
			log.Printf("❌ Error scanning product: %v", err)
			continue
		}
		if p.Thumbnail == "" {
			p.Thumbnail = p.MainImage
		}
		products = append(products, p)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate products: %w", err)
	}

	log.Printf("✓ Successfully fetched %d products", len(products))
	return products, nil
}

// GetByID retrieves a product with its color and project images
func (r *ProductRepository) GetByID(ctx context.Context, id int) (*models.Product, error) {
	log.Printf("🔍 Fetching product by id: %d", id)

	query := `
		SELECT
			p.id,
			p.name,
			COALESCE(b.brand_name, '') AS brand,
			COALESCE(p.product_type, ''),
			COALESCE(p.color, ''),
			COALESCE(p.size, ''),
			COALESCE(p.thickness_mm, ''),
			COALESCE(p.thickness_in, 0),
			COALESCE(p.sqft_pallet, 0),
			COALESCE(p.sqft_layer, 0),
			COALESCE(p.lnft_pallet, 0),
			COALESCE(p.layer_pallet, 0),
			COALESCE(p.pcs_pallet, 0),
			COALESCE(p.note, ''),
			COALESCE(p.main_image, ''),
			p.colors_available,
			p.thicknesses_available,
			p.created_at,
			p.updated_at
		FROM products p
		LEFT JOIN brands b ON b.brand_id = p.brand_id
		WHERE p.id = $1 AND p.is_active = true
	`

	var p models.Product
	var createdAt, updatedAt time.Time
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&p.ID,
		&p.Name,
		&p.Brand,
		&p.ProductType,
		&p.Color,
		&p.Size,
		&p.Thickness,
		&p.ThicknessIn,
		&p.SqftPallet,
		&p.SqftLayer,
		&p.LnftPallet,
		&p.LayerPallet,
		&p.PcsPallet,
		&p.Note,
		&p.MainImage,
		r.types.SQLScanner(&p.ColorsAvailable),
		r.types.SQLScanner(&p.ThicknessesAvailable),
		&createdAt,
		&updatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			log.Printf("⚠️  Product %d does not exist", id)
			return nil, fmt.Errorf("product %d: %w", id, ErrNotFound)
		}
		log.Printf("❌ Error fetching product %d: %v", id, err)
		return nil, fmt.Errorf("failed to get product: %w", err)
	}
	p.CreatedAt = createdAt.Format(time.RFC3339)
	p.UpdatedAt = updatedAt.Format(time.RFC3339)

	images, err := r.images.ListByProduct(ctx, id)
	if err != nil {
		return nil, err
	}
	p.ColorImages, p.ProjectImages = splitImagesByKind(images)

	log.Printf("✓ Product %d loaded (%d color images, %d project images)", id, len(p.ColorImages), len(p.ProjectImages))
	return &p, nil
}

// splitImagesByKind keeps the repository order (position ascending) within each kind
func splitImagesByKind(images []models.ProductImage) (colors, projects []string) {
	colors = []string{}
	projects = []string{}
	for _, img := range images {
		switch img.Kind {
		case "color":
			colors = append(colors, img.ImagePath)
		case "project":
			projects = append(projects, img.ImagePath)
		default:
			log.Printf("⚠️  Ignoring image %d with unknown kind %q", img.ID, img.Kind)
		}
	}
	return colors, projects
}

// GetFilterOptions retrieves the distinct values offered by the product filters
func (r *ProductRepository) GetFilterOptions(ctx context.Context) (*models.ProductFilterOptions, error) {
	opts := &models.ProductFilterOptions{
		ProductTypes: []string{},
		Brands:       []models.Brand{},
		Colors:       []string{},
		Thicknesses:  []models.Thickness{},
	}

	types, err := r.queryStrings(ctx, `
		SELECT DISTINCT product_type FROM products
		WHERE product_type IS NOT NULL AND product_type <> '' AND is_active = true
		ORDER BY product_type`)
	if err != nil {
		return nil, fmt.Errorf("failed to get product types: %w", err)
	}
	opts.ProductTypes = types

	colors, err := r.queryStrings(ctx, `SELECT color_name FROM colors ORDER BY color_name`)
	if err != nil {
		return nil, fmt.Errorf("failed to get colors: %w", err)
	}
	opts.Colors = colors

	brandRows, err := r.db.QueryContext(ctx, `SELECT brand_id, brand_name FROM brands ORDER BY brand_name`)
	if err != nil {
		return nil, fmt.Errorf("failed to get brands: %w", err)
	}
	defer brandRows.Close()
	for brandRows.Next() {
		var b models.Brand
		if err := brandRows.Scan(&b.ID, &b.Name); err != nil {
			return nil, fmt.Errorf("failed to scan brand: %w", err)
		}
		opts.Brands = append(opts.Brands, b)
	}
	if err := brandRows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate brands: %w", err)
	}

	thicknessRows, err := r.db.QueryContext(ctx, `SELECT thickness_mm, thickness_in FROM thicknesses ORDER BY thickness_mm`)
	if err != nil {
		return nil, fmt.Errorf("failed to get thicknesses: %w", err)
	}
	defer thicknessRows.Close()
	for thicknessRows.Next() {
		var th models.Thickness
		if err := thicknessRows.Scan(&th.MM, &th.Inches); err != nil {
			return nil, fmt.Errorf("failed to scan thickness: %w", err)
		}
		opts.Thicknesses = append(opts.Thicknesses, th)
	}
	if err := thicknessRows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate thicknesses: %w", err)
	}

	return opts, nil
}

func (r *ProductRepository) queryStrings(ctx context.Context, query string) ([]string, error) {
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	values := []string{}
	for rows.Next() {
		var v string
		if err := rows.Scan(&v); err != nil {
			return nil, err
		}
		values = append(values, v)
	}
	return values, rows.Err()
}
