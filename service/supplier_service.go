package service

import (
	"context"
	"log"

	"pavexpert/models"
	"pavexpert/repository"
)

// SupplierServiceInterface defines the contract for the supplier map
type SupplierServiceInterface interface {
	ListBranches(ctx context.Context, material string) ([]models.SupplierBranch, error)
}

// SupplierService lists supplier branches for the map page
type SupplierService struct {
	repository repository.SupplierRepositoryInterface
}

// NewSupplierService creates a new SupplierService
func NewSupplierService(repo repository.SupplierRepositoryInterface) *SupplierService {
	return &SupplierService{repository: repo}
}

// Ensure SupplierService implements SupplierServiceInterface
var _ SupplierServiceInterface = (*SupplierService)(nil)

// ListBranches returns every branch. Branches that cannot be placed on the map are still returned.
func (s *SupplierService) ListBranches(ctx context.Context, material string) ([]models.SupplierBranch, error) {
	branches, err := s.repository.ListBranches(ctx, material)
	if err != nil {
		return nil, err
	}

	missing := 0
	for _, b := range branches {
		if !b.HasCoordinates() {
			log.Printf("⚠️  Branch %d (%s, %s) has no coordinates", b.ID, b.Supplier.SupplierName, b.BranchName)
			missing++
		}
	}
	log.Printf("✓ Fetched %d supplier branches (%d without coordinates)", len(branches), missing)
	return branches, nil
}
