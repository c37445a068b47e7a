package service

import (
	"bytes"
	"context"
	"fmt"
	"image/color"
	"image/png"
	"sync"
	"testing"

	"github.com/disintegration/imaging"
	"github.com/stretchr/testify/require"

	"pavexpert/models"
	"pavexpert/repository"
)

type fakeProductRepository struct {
	products map[int]*models.Product
	list     []models.ProductSummary
	options  *models.ProductFilterOptions
}

func (f *fakeProductRepository) List(ctx context.Context, params repository.ProductFilterParams) ([]models.ProductSummary, error) {
	return append([]models.ProductSummary(nil), f.list...), nil
}

func (f *fakeProductRepository) GetByID(ctx context.Context, id int) (*models.Product, error) {
	p, ok := f.products[id]
	if !ok {
		return nil, fmt.Errorf("product %d: %w", id, repository.ErrNotFound)
	}
	cp := *p
	return &cp, nil
}

func (f *fakeProductRepository) GetFilterOptions(ctx context.Context) (*models.ProductFilterOptions, error) {
	return f.options, nil
}

type fakeProductImageRepository struct {
	mu       sync.Mutex
	existing map[string]bool
	inserted []models.ProductImage
	failOn   string
}

func (f *fakeProductImageRepository) ListByProduct(ctx context.Context, productID int) ([]models.ProductImage, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []models.ProductImage
	for _, img := range f.inserted {
		if img.ProductID == productID {
			out = append(out, img)
		}
	}
	return out, nil
}

func (f *fakeProductImageRepository) ExistsByDriveFileID(ctx context.Context, driveFileID string) (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.existing[driveFileID], nil
}

func (f *fakeProductImageRepository) Insert(ctx context.Context, image *models.ProductImage) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if image.DriveFileID == f.failOn {
		return fmt.Errorf("insert failed")
	}
	image.ID = len(f.inserted) + 1
	f.inserted = append(f.inserted, *image)
	return nil
}

type fakeEstimateRepository struct {
	stored []models.Estimate
}

func (f *fakeEstimateRepository) Insert(ctx context.Context, estimate *models.Estimate) error {
	estimate.ID = len(f.stored) + 1
	estimate.CreatedAt = "2026-01-02T03:04:05Z"
	f.stored = append(f.stored, *estimate)
	return nil
}

type fakeDrive struct {
	images []models.DriveImage
	files  map[string][]byte
}

func (f *fakeDrive) ListProductImages(ctx context.Context, folderID string) ([]models.DriveImage, error) {
	return f.images, nil
}

func (f *fakeDrive) DownloadImage(ctx context.Context, fileID string) ([]byte, error) {
	data, ok := f.files[fileID]
	if !ok {
		return nil, fmt.Errorf("file %s not found", fileID)
	}
	return data, nil
}

// testPNG returns a solid PNG of the given size
func testPNG(t *testing.T, width, height int) []byte {
	t.Helper()

	img := imaging.New(width, height, color.NRGBA{R: 132, G: 43, B: 56, A: 255})
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, img))
	return buf.Bytes()
}
