package service

import (
	"context"
	"fmt"
	"log"

	"pavexpert/models"
	"pavexpert/repository"
	"pavexpert/utils"
)

// SyncService imports product images from Google Drive into local storage and PostgreSQL
// Implements SyncServiceInterface
type SyncService struct {
	driveService DriveServiceInterface
	repository   repository.ProductImageRepositoryInterface
	optimizer    *ImageOptimizer
}

// NewSyncService creates a new SyncService
func NewSyncService(driveService DriveServiceInterface, repo repository.ProductImageRepositoryInterface, optimizer *ImageOptimizer) *SyncService {
	return &SyncService{
		driveService: driveService,
		repository:   repo,
		optimizer:    optimizer,
	}
}

// Ensure SyncService implements SyncServiceInterface
var _ SyncServiceInterface = (*SyncService)(nil)

// SyncProductImages downloads every new image of the folder, stores it as JPEG and records it.
// A failing file is reported in Errors and does not stop the run.
func (s *SyncService) SyncProductImages(ctx context.Context, folderID string) (*models.SyncResult, error) {
	log.Printf("🔄 Starting product image import for folder: %s", folderID)

	driveImages, err := s.driveService.ListProductImages(ctx, folderID)
	if err != nil {
		return nil, fmt.Errorf("failed to list product images from Drive: %w", err)
	}

	result := &models.SyncResult{Total: len(driveImages), Errors: []string{}}
	log.Printf("📦 Processing %d product images from Google Drive", result.Total)

	for _, img := range driveImages {
		if err := ctx.Err(); err != nil {
			return result, err
		}

		exists, err := s.repository.ExistsByDriveFileID(ctx, img.DriveFileID)
		if err != nil {
			result.Errors = append(result.Errors, fmt.Sprintf("%s: %v", img.FileName, err))
			continue
		}
		if exists {
			log.Printf("⏭️  Skipping %s (already imported)", img.FileName)
			result.Skipped++
			continue
		}

		data, err := s.driveService.DownloadImage(ctx, img.DriveFileID)
		if err != nil {
			msg := fmt.Sprintf("Failed to download %s (%s): %v", img.FileName, img.DriveFileID, err)
			log.Printf("❌ %s", msg)
			result.Errors = append(result.Errors, msg)
			continue
		}

		path := utils.ProductImagePath(img.ProductID, img.Kind, img.Position)
		if err := s.optimizer.Store(path, data); err != nil {
			msg := fmt.Sprintf("Failed to store %s: %v", img.FileName, err)
			log.Printf("❌ %s", msg)
			result.Errors = append(result.Errors, msg)
			continue
		}

		record := &models.ProductImage{
			ProductID:   img.ProductID,
			Kind:        img.Kind,
			Position:    img.Position,
			ImagePath:   path,
			DriveFileID: img.DriveFileID,
		}
		if err := s.repository.Insert(ctx, record); err != nil {
			msg := fmt.Sprintf("Failed to record %s: %v", img.FileName, err)
			log.Printf("❌ %s", msg)
			result.Errors = append(result.Errors, msg)
			continue
		}

		log.Printf("✅ Imported %s as %s", img.FileName, path)
		result.Inserted++
	}

	log.Printf("🎉 Import completed: %d inserted, %d skipped, %d failed, %d total", result.Inserted, result.Skipped, len(result.Errors), result.Total)
	return result, nil
}
