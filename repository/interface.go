package repository

import (
	"context"
	"errors"

	"pavexpert/models"
)

// ErrNotFound is returned when a requested row does not exist
var ErrNotFound = errors.New("not found")

// ProductRepositoryInterface defines the contract for product read operations
type ProductRepositoryInterface interface {
	List(ctx context.Context, params ProductFilterParams) ([]models.ProductSummary, error)
	GetByID(ctx context.Context, id int) (*models.Product, error)
	GetFilterOptions(ctx context.Context) (*models.ProductFilterOptions, error)
}

// ProductImageRepositoryInterface defines the contract for product image operations
type ProductImageRepositoryInterface interface {
	ListByProduct(ctx context.Context, productID int) ([]models.ProductImage, error)
	ExistsByDriveFileID(ctx context.Context, driveFileID string) (bool, error)
	Insert(ctx context.Context, image *models.ProductImage) error
}

// EstimateRepositoryInterface defines the contract for estimate operations
type EstimateRepositoryInterface interface {
	Insert(ctx context.Context, estimate *models.Estimate) error
}

// SupplierRepositoryInterface defines the contract for supplier operations
type SupplierRepositoryInterface interface {
	ListBranches(ctx context.Context, material string) ([]models.SupplierBranch, error)
}
