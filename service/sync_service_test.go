package service

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"pavexpert/models"
)

func TestSyncProductImages(t *testing.T) {
	t.Parallel()

	root := t.TempDir()
	drive := &fakeDrive{
		images: []models.DriveImage{
			{DriveFileID: "a", FileName: "5_color_01.png", ProductID: 5, Kind: "color", Position: 1},
			{DriveFileID: "b", FileName: "5_color_02.png", ProductID: 5, Kind: "color", Position: 2},
			{DriveFileID: "c", FileName: "5_project_01.png", ProductID: 5, Kind: "project", Position: 1},
			{DriveFileID: "d", FileName: "5_project_02.png", ProductID: 5, Kind: "project", Position: 2},
		},
		files: map[string][]byte{
			"a": testPNG(t, 40, 40),
			"b": testPNG(t, 40, 40),
			"d": testPNG(t, 40, 40),
		},
	}
	repo := &fakeProductImageRepository{existing: map[string]bool{"b": true}}
	svc := NewSyncService(drive, repo, NewImageOptimizer(root, t.TempDir()))

	result, err := svc.SyncProductImages(context.Background(), "folder")
	require.NoError(t, err)
	require.Equal(t, 4, result.Total)
	require.Equal(t, 2, result.Inserted)
	require.Equal(t, 1, result.Skipped)
	require.Len(t, result.Errors, 1)
	require.Contains(t, result.Errors[0], "5_project_01.png")

	require.Len(t, repo.inserted, 2)
	require.Equal(t, "/images/products/5/color/01.jpg", repo.inserted[0].ImagePath)
	require.Equal(t, "a", repo.inserted[0].DriveFileID)
	require.Equal(t, "/images/products/5/project/02.jpg", repo.inserted[1].ImagePath)

	_, err = os.Stat(filepath.Join(root, "products", "5", "color", "01.jpg"))
	require.NoError(t, err)
}
