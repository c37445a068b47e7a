package service

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	"image/jpeg"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/disintegration/imaging"
)

const (
	// Quality settings
	qualityThumb  = 60
	qualityMedium = 75
	qualityFull   = 85
	// Size settings (max dimension)
	maxSizeThumb  = 300
	maxSizeMedium = 800
	maxSizeFull   = 1600
)

// Image sizes served and stored by the optimizer
const (
	SizeThumb  = "thumb"  // square cover crop for gallery slots
	SizeMedium = "medium" // contained, for the main image and lightbox
	SizeFull   = "full"   // stored originals (imports and uploads)
)

// ErrInvalidImagePath is returned for paths escaping the images root or with an unsupported extension
var ErrInvalidImagePath = errors.New("invalid image path")

// IsVariantSize reports whether size can be requested as a cached variant
func IsVariantSize(size string) bool {
	return size == SizeThumb || size == SizeMedium
}

// ImageOptimizer resizes stored images and keeps the variants in a disk cache
type ImageOptimizer struct {
	root     string
	cacheDir string
}

// NewImageOptimizer creates an optimizer serving images under root and caching variants in cacheDir
func NewImageOptimizer(root, cacheDir string) *ImageOptimizer {
	return &ImageOptimizer{root: root, cacheDir: cacheDir}
}

// Root returns the directory images are served from
func (o *ImageOptimizer) Root() string {
	return o.root
}

// EnsureCacheDir ensures the cache directory exists, creates it if it doesn't
func (o *ImageOptimizer) EnsureCacheDir() error {
	if err := os.MkdirAll(o.cacheDir, 0755); err != nil {
		return fmt.Errorf("failed to create cache directory: %w", err)
	}
	return nil
}

// cleanRelative validates a path relative to the images root
func cleanRelative(rel string) (string, error) {
	rel = strings.TrimPrefix(strings.TrimPrefix(rel, "/"), "images/")
	if rel == "" || strings.Contains(rel, "\\") {
		return "", ErrInvalidImagePath
	}
	for _, part := range strings.Split(rel, "/") {
		if part == ".." {
			return "", ErrInvalidImagePath
		}
	}
	cleaned := filepath.Clean(filepath.FromSlash(rel))
	if cleaned == "." || filepath.IsAbs(cleaned) || strings.HasPrefix(cleaned, "..") {
		return "", ErrInvalidImagePath
	}
	switch strings.ToLower(filepath.Ext(cleaned)) {
	case ".jpg", ".jpeg", ".png":
	default:
		return "", ErrInvalidImagePath
	}
	return cleaned, nil
}

// ResolvePath maps a public image path (with or without the /images/ prefix) to a file under root
func (o *ImageOptimizer) ResolvePath(publicPath string) (string, error) {
	rel, err := cleanRelative(publicPath)
	if err != nil {
		return "", err
	}
	return filepath.Join(o.root, rel), nil
}

// GetCachePath returns the cache file path for a given image and size.
// The source extension stays in the name so a.png and a.jpg never share a variant.
func (o *ImageOptimizer) GetCachePath(publicPath, size string) (string, error) {
	rel, err := cleanRelative(publicPath)
	if err != nil {
		return "", err
	}
	return filepath.Join(o.cacheDir, size, rel+".jpg"), nil
}

// CacheExists checks if a cached image exists
func CacheExists(cachePath string) bool {
	_, err := os.Stat(cachePath)
	return err == nil
}

// SaveToCache saves an image to the cache
func SaveToCache(cachePath string, imageData []byte) error {
	if err := os.MkdirAll(filepath.Dir(cachePath), 0755); err != nil {
		return fmt.Errorf("failed to create cache directory: %w", err)
	}

	if err := os.WriteFile(cachePath, imageData, 0644); err != nil {
		return fmt.Errorf("failed to write to cache: %w", err)
	}

	log.Printf("✓ Image cached: %s", cachePath)
	return nil
}

// Variant returns the JPEG variant of a stored image, building and caching it on first use
func (o *ImageOptimizer) Variant(publicPath, size string) ([]byte, error) {
	if !IsVariantSize(size) {
		return nil, fmt.Errorf("unsupported size %q", size)
	}
	cachePath, err := o.GetCachePath(publicPath, size)
	if err != nil {
		return nil, err
	}

	if CacheExists(cachePath) {
		data, err := os.ReadFile(cachePath)
		if err == nil {
			return data, nil
		}
		log.Printf("⚠️  Failed to read cached image %s, rebuilding: %v", cachePath, err)
	}

	sourcePath, err := o.ResolvePath(publicPath)
	if err != nil {
		return nil, err
	}
	original, err := os.ReadFile(sourcePath)
	if err != nil {
		return nil, fmt.Errorf("failed to read image %s: %w", publicPath, err)
	}

	optimized, err := OptimizeImage(original, size)
	if err != nil {
		return nil, err
	}
	if err := SaveToCache(cachePath, optimized); err != nil {
		// the variant is still usable without the cache
		log.Printf("⚠️  %v", err)
	}
	return optimized, nil
}

// Store optimizes raw image bytes to a full-size JPEG and writes them under root.
// publicPath is the /images/... path the file will be served from.
func (o *ImageOptimizer) Store(publicPath string, imageData []byte) error {
	if _, err := o.ResolvePath(publicPath); err != nil {
		return err
	}
	optimized, err := OptimizeImage(imageData, SizeFull)
	if err != nil {
		return err
	}
	return o.WriteOptimized(publicPath, optimized)
}

// WriteOptimized writes an already optimized JPEG under root and drops its cached variants
func (o *ImageOptimizer) WriteOptimized(publicPath string, optimized []byte) error {
	target, err := o.ResolvePath(publicPath)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(target), 0755); err != nil {
		return fmt.Errorf("failed to create image directory: %w", err)
	}
	if err := os.WriteFile(target, optimized, 0644); err != nil {
		return fmt.Errorf("failed to write image %s: %w", publicPath, err)
	}

	// stale variants of a replaced image
	for _, size := range []string{SizeThumb, SizeMedium} {
		if cachePath, err := o.GetCachePath(publicPath, size); err == nil {
			_ = os.Remove(cachePath)
		}
	}

	log.Printf("✓ Image stored: %s (%d bytes)", target, len(optimized))
	return nil
}

// Remove deletes a stored image and its cached variants. A missing file is not an error.
func (o *ImageOptimizer) Remove(publicPath string) error {
	target, err := o.ResolvePath(publicPath)
	if err != nil {
		return err
	}
	if err := os.Remove(target); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("failed to remove image %s: %w", publicPath, err)
	}
	for _, size := range []string{SizeThumb, SizeMedium} {
		if cachePath, err := o.GetCachePath(publicPath, size); err == nil {
			_ = os.Remove(cachePath)
		}
	}
	return nil
}

// OptimizeImage converts an image to JPEG and resizes it
// imageData: raw image bytes (PNG, JPEG)
// size: "thumb" (square cover crop), "medium" or "full" (contained within the max dimension)
func OptimizeImage(imageData []byte, size string) ([]byte, error) {
	img, err := imaging.Decode(bytes.NewReader(imageData), imaging.AutoOrientation(true))
	if err != nil {
		return nil, fmt.Errorf("failed to decode image: %w", err)
	}

	log.Printf("📸 Image decoded: bounds=%v", img.Bounds())

	var maxDim, quality int
	switch size {
	case SizeThumb:
		maxDim, quality = maxSizeThumb, qualityThumb
	case SizeMedium:
		maxDim, quality = maxSizeMedium, qualityMedium
	case SizeFull:
		maxDim, quality = maxSizeFull, qualityFull
	default:
		maxDim, quality = maxSizeMedium, qualityMedium
		log.Printf("⚠️  Unknown size '%s', defaulting to medium", size)
	}

	var resized image.Image = img
	bounds := img.Bounds()
	if size == SizeThumb {
		// thumbnails fill their slot
		resized = imaging.Fill(img, maxDim, maxDim, imaging.Center, imaging.Lanczos)
	} else if bounds.Dx() > maxDim || bounds.Dy() > maxDim {
		log.Printf("🔄 Resizing image: %dx%d to fit %dpx", bounds.Dx(), bounds.Dy(), maxDim)
		resized = imaging.Fit(img, maxDim, maxDim, imaging.Lanczos)
	}

	var buf bytes.Buffer
	if err := jpeg.Encode(&buf, resized, &jpeg.Options{Quality: quality}); err != nil {
		return nil, fmt.Errorf("failed to encode to JPEG: %w", err)
	}

	log.Printf("✓ Image optimized: size=%s, quality=%d, output_size=%d bytes", size, quality, buf.Len())
	return buf.Bytes(), nil
}
