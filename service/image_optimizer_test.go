package service

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/disintegration/imaging"
	"github.com/stretchr/testify/require"
)

func decodedSize(t *testing.T, data []byte) (int, int) {
	t.Helper()

	img, err := imaging.Decode(bytes.NewReader(data))
	require.NoError(t, err)
	return img.Bounds().Dx(), img.Bounds().Dy()
}

func TestOptimizeImageSizes(t *testing.T) {
	t.Parallel()

	original := testPNG(t, 1200, 600)

	thumb, err := OptimizeImage(original, SizeThumb)
	require.NoError(t, err)
	w, h := decodedSize(t, thumb)
	require.Equal(t, 300, w)
	require.Equal(t, 300, h)

	medium, err := OptimizeImage(original, SizeMedium)
	require.NoError(t, err)
	w, h = decodedSize(t, medium)
	require.Equal(t, 800, w)
	require.Equal(t, 400, h)

	// small images are not upscaled
	small, err := OptimizeImage(testPNG(t, 200, 100), SizeMedium)
	require.NoError(t, err)
	w, h = decodedSize(t, small)
	require.Equal(t, 200, w)
	require.Equal(t, 100, h)

	_, err = OptimizeImage([]byte("not an image"), SizeThumb)
	require.Error(t, err)
}

func TestResolvePathRejectsTraversal(t *testing.T) {
	t.Parallel()

	o := NewImageOptimizer("/srv/images", "/srv/cache")

	path, err := o.ResolvePath("/images/products/1/color/01.jpg")
	require.NoError(t, err)
	require.Equal(t, filepath.Join("/srv/images", "products", "1", "color", "01.jpg"), path)

	for _, bad := range []string{
		"/images/../secrets.jpg",
		"/images/products/../../etc/passwd.png",
		"/images/",
		"/images/products/readme.txt",
		`/images/products\..\x.jpg`,
	} {
		_, err := o.ResolvePath(bad)
		require.ErrorIs(t, err, ErrInvalidImagePath, bad)
	}
}

func TestStoreAndVariantUseCache(t *testing.T) {
	t.Parallel()

	root := t.TempDir()
	cache := t.TempDir()
	o := NewImageOptimizer(root, cache)

	const path = "/images/products/4/project/02.jpg"
	require.NoError(t, o.Store(path, testPNG(t, 2000, 1000)))

	stored, err := os.ReadFile(filepath.Join(root, "products", "4", "project", "02.jpg"))
	require.NoError(t, err)
	w, _ := decodedSize(t, stored)
	require.Equal(t, 1600, w)

	thumb, err := o.Variant(path, SizeThumb)
	require.NoError(t, err)
	cachePath, err := o.GetCachePath(path, SizeThumb)
	require.NoError(t, err)
	require.True(t, CacheExists(cachePath))

	cached, err := o.Variant(path, SizeThumb)
	require.NoError(t, err)
	require.Equal(t, thumb, cached)

	// replacing the image drops its cached variants
	require.NoError(t, o.Store(path, testPNG(t, 500, 500)))
	require.False(t, CacheExists(cachePath))

	_, err = o.Variant(path, "huge")
	require.Error(t, err)
	_, err = o.Variant("/images/products/4/project/missing.jpg", SizeMedium)
	require.Error(t, err)
}

func TestVariantCacheKeepsSourceExtension(t *testing.T) {
	t.Parallel()

	root := t.TempDir()
	o := NewImageOptimizer(root, t.TempDir())

	dir := filepath.Join(root, "products", "7", "color")
	require.NoError(t, os.MkdirAll(dir, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "01.png"), testPNG(t, 1200, 600), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "01.jpg"), testPNG(t, 400, 1600), 0o644))

	pngPath, err := o.GetCachePath("/images/products/7/color/01.png", SizeMedium)
	require.NoError(t, err)
	jpgPath, err := o.GetCachePath("/images/products/7/color/01.jpg", SizeMedium)
	require.NoError(t, err)
	require.NotEqual(t, pngPath, jpgPath)

	wide, err := o.Variant("/images/products/7/color/01.png", SizeMedium)
	require.NoError(t, err)
	w, h := decodedSize(t, wide)
	require.Equal(t, 800, w)
	require.Equal(t, 400, h)

	tall, err := o.Variant("/images/products/7/color/01.jpg", SizeMedium)
	require.NoError(t, err)
	w, h = decodedSize(t, tall)
	require.Equal(t, 200, w)
	require.Equal(t, 800, h)
}

func TestRemoveDropsImageAndVariants(t *testing.T) {
	t.Parallel()

	root := t.TempDir()
	o := NewImageOptimizer(root, t.TempDir())

	const path = "/images/estimates/abc.jpg"
	require.NoError(t, o.Store(path, testPNG(t, 100, 100)))
	_, err := o.Variant(path, SizeThumb)
	require.NoError(t, err)
	cachePath, err := o.GetCachePath(path, SizeThumb)
	require.NoError(t, err)

	require.NoError(t, o.Remove(path))
	_, err = os.Stat(filepath.Join(root, "estimates", "abc.jpg"))
	require.True(t, os.IsNotExist(err))
	require.False(t, CacheExists(cachePath))

	require.NoError(t, o.Remove(path), "already gone")
}
