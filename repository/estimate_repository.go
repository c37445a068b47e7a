package repository

import (
	"context"
	"database/sql"
	"fmt"
	"log"
	"time"

	"pavexpert/models"
)

// EstimateRepository handles database operations for estimate requests
type EstimateRepository struct {
	db *sql.DB
}

// NewEstimateRepository creates a new EstimateRepository
func NewEstimateRepository(db *sql.DB) *EstimateRepository {
	return &EstimateRepository{db: db}
}

// Ensure EstimateRepository implements EstimateRepositoryInterface
var _ EstimateRepositoryInterface = (*EstimateRepository)(nil)

// Insert stores an estimate request and fills in its ID and creation time
func (r *EstimateRepository) Insert(ctx context.Context, estimate *models.Estimate) error {
	query := `
		INSERT INTO estimates (
			referral, other_referral, first_name, last_name, email, phone,
			address, city, zip, project_description, images, created_at
		) VALUES ($1, NULLIF($2, ''), $3, $4, $5, $6, $7, $8, $9, NULLIF($10, ''), $11, $12)
		RETURNING id
	`

	images := estimate.Images
	if images == nil {
		images = []string{}
	}
	createdAt := time.Now().UTC()

	err := r.db.QueryRowContext(ctx, query,
		estimate.Referral,
		estimate.OtherReferral,
		estimate.FirstName,
		estimate.LastName,
		estimate.Email,
		estimate.Phone,
		estimate.Address,
		estimate.City,
		estimate.Zip,
		estimate.ProjectDescription,
		images,
		createdAt,
	).Scan(&estimate.ID)
	if err != nil {
		log.Printf("❌ Database INSERT error for estimate (%s): %v", estimate.Email, err)
		return fmt.Errorf("failed to insert estimate: %w", err)
	}

	estimate.Images = images
	estimate.CreatedAt = createdAt.Format(time.RFC3339)
	log.Printf("💾 Database: Successfully inserted estimate id=%d", estimate.ID)
	return nil
}
