package repository

import (
	"context"
	"database/sql"
	"fmt"
	"log"

	"pavexpert/models"
)

// ProductImageRepository handles database operations for product images
// Implements ProductImageRepositoryInterface
type ProductImageRepository struct {
	db *sql.DB
}

// NewProductImageRepository creates a new ProductImageRepository
func NewProductImageRepository(db *sql.DB) *ProductImageRepository {
	return &ProductImageRepository{db: db}
}

// Ensure ProductImageRepository implements ProductImageRepositoryInterface
var _ ProductImageRepositoryInterface = (*ProductImageRepository)(nil)

// ListByProduct returns the images of a product ordered by kind then position
func (r *ProductImageRepository) ListByProduct(ctx context.Context, productID int) ([]models.ProductImage, error) {
	query := `
		SELECT id, product_id, kind, position, image_path, COALESCE(drive_file_id, '')
		FROM product_images
		WHERE product_id = $1
		ORDER BY kind ASC, position ASC, id ASC
	`

	rows, err := r.db.QueryContext(ctx, query, productID)
	if err != nil {
		log.Printf("❌ Error querying images for product %d: %v", productID, err)
		return nil, fmt.Errorf("failed to query product images: %w", err)
	}
	defer rows.Close()

	var images []models.ProductImage
	for rows.Next() {
		var img models.ProductImage
		if err := rows.Scan(&img.ID, &img.ProductID, &img.Kind, &img.Position, &img.ImagePath, &img.DriveFileID); err != nil {
			log.Printf("❌ Error scanning product image: %v", err)
			continue
		}
		images = append(images, img)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate product images: %w", err)
	}
	return images, nil
}

// ExistsByDriveFileID checks if an image imported from Drive is already stored
func (r *ProductImageRepository) ExistsByDriveFileID(ctx context.Context, driveFileID string) (bool, error) {
	var exists bool
	query := `SELECT EXISTS(SELECT 1 FROM product_images WHERE drive_file_id = $1)`
	if err := r.db.QueryRowContext(ctx, query, driveFileID).Scan(&exists); err != nil {
		log.Printf("❌ Error checking existence for drive_file_id %s: %v", driveFileID, err)
		return false, fmt.Errorf("failed to check existence: %w", err)
	}
	return exists, nil
}

// Insert stores a product image. Rows already imported (same drive_file_id) are left untouched.
func (r *ProductImageRepository) Insert(ctx context.Context, image *models.ProductImage) error {
	query := `
		INSERT INTO product_images (product_id, kind, position, image_path, drive_file_id)
		VALUES ($1, $2, $3, $4, NULLIF($5, ''))
		ON CONFLICT (drive_file_id) DO NOTHING
		RETURNING id
	`

	err := r.db.QueryRowContext(ctx, query,
		image.ProductID,
		image.Kind,
		image.Position,
		image.ImagePath,
		image.DriveFileID,
	).Scan(&image.ID)
	if err == sql.ErrNoRows {
		log.Printf("⚠️  Database: No rows inserted (likely due to ON CONFLICT) for drive_file_id: %s", image.DriveFileID)
		return nil
	}
	if err != nil {
		log.Printf("❌ Database INSERT error for product %d image %s: %v", image.ProductID, image.ImagePath, err)
		return fmt.Errorf("failed to insert product image: %w", err)
	}

	log.Printf("💾 Database: Inserted product image id=%d (product=%d kind=%s position=%d)", image.ID, image.ProductID, image.Kind, image.Position)
	return nil
}
