package service

import (
	"context"

	"pavexpert/models"
)

// SyncServiceInterface defines the contract for product image imports
type SyncServiceInterface interface {
	// SyncProductImages imports new images of a Drive folder:
	// inserted = new rows created, skipped = already imported (by drive_file_id), total = images seen in Drive.
	SyncProductImages(ctx context.Context, folderID string) (*models.SyncResult, error)
}
