package service

import (
	"context"
	"fmt"
	"io"
	"log"
	"strings"

	"pavexpert/models"
	"pavexpert/utils"

	"google.golang.org/api/drive/v3"
	"google.golang.org/api/option"
)

// maxDriveDownloadBytes caps a single downloaded image
const maxDriveDownloadBytes = 25 << 20

// DriveService handles Google Drive API operations
type DriveService struct {
	client *drive.Service
}

// NewDriveService creates a new DriveService instance
// credentialsPath should be the path to the Service Account JSON file
func NewDriveService(ctx context.Context, credentialsPath string) (*DriveService, error) {
	driveService, err := drive.NewService(ctx,
		option.WithCredentialsFile(credentialsPath),
		option.WithScopes(drive.DriveReadonlyScope),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create drive service: %w", err)
	}

	return &DriveService{
		client: driveService,
	}, nil
}

// Ensure DriveService implements DriveServiceInterface
var _ DriveServiceInterface = (*DriveService)(nil)

var imageMimeTypes = map[string]bool{
	"image/png":  true,
	"image/jpeg": true,
	"image/jpg":  true,
}

// ListProductImages lists all image files in a Google Drive folder and parses their names.
// Files that do not follow the PRODUCTID_KIND_NN naming are skipped with a warning.
func (ds *DriveService) ListProductImages(ctx context.Context, folderID string) ([]models.DriveImage, error) {
	query := fmt.Sprintf("'%s' in parents and trashed=false", strings.ReplaceAll(folderID, "'", `\'`))

	var allFiles []*drive.File
	pageToken := ""
	for {
		call := ds.client.Files.List().
			Context(ctx).
			Q(query).
			Fields("nextPageToken, files(id, name, mimeType)")

		if pageToken != "" {
			call = call.PageToken(pageToken)
		}

		r, err := call.Do()
		if err != nil {
			return nil, fmt.Errorf("failed to list files: %w", err)
		}

		allFiles = append(allFiles, r.Files...)
		pageToken = r.NextPageToken

		if pageToken == "" {
			break
		}
	}

	var images []models.DriveImage
	for _, file := range allFiles {
		if !imageMimeTypes[strings.ToLower(file.MimeType)] {
			continue
		}

		parsed, err := utils.ParseProductImageFileName(file.Name)
		if err != nil {
			log.Printf("⚠️  Skipping %s: %v", file.Name, err)
			continue
		}

		parsed.DriveFileID = file.Id
		parsed.MimeType = file.MimeType
		images = append(images, *parsed)
	}

	log.Printf("🔍 Drive folder %s: %d files, %d product images", folderID, len(allFiles), len(images))
	return images, nil
}

// DownloadImage downloads the raw bytes of a Drive file
func (ds *DriveService) DownloadImage(ctx context.Context, fileID string) ([]byte, error) {
	resp, err := ds.client.Files.Get(fileID).Context(ctx).Download()
	if err != nil {
		return nil, fmt.Errorf("failed to download file %s: %w", fileID, err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(io.LimitReader(resp.Body, maxDriveDownloadBytes+1))
	if err != nil {
		return nil, fmt.Errorf("failed to read file %s: %w", fileID, err)
	}
	if len(data) > maxDriveDownloadBytes {
		return nil, fmt.Errorf("file %s exceeds %d bytes", fileID, maxDriveDownloadBytes)
	}
	return data, nil
}
