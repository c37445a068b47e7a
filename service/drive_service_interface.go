package service

import (
	"context"

	"pavexpert/models"
)

// DriveServiceInterface defines the contract for Google Drive operations
type DriveServiceInterface interface {
	ListProductImages(ctx context.Context, folderID string) ([]models.DriveImage, error)
	DownloadImage(ctx context.Context, fileID string) ([]byte, error)
}
