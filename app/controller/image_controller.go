package controller

import (
	"errors"
	"log"
	"net/http"
	"os"
	"strings"

	"github.com/go-chi/chi/v5"

	"pavexpert/service"
)

// ImageController serves stored images and their cached variants
type ImageController struct {
	optimizer *service.ImageOptimizer
}

// NewImageController creates a new ImageController
func NewImageController(optimizer *service.ImageOptimizer) *ImageController {
	return &ImageController{optimizer: optimizer}
}

// Serve handles GET /images/*
// Query params: size (thumb or medium, optional)
func (c *ImageController) Serve(w http.ResponseWriter, r *http.Request) {
	publicPath := "/images/" + chi.URLParam(r, "*")
	size := strings.TrimSpace(r.URL.Query().Get("size"))

	if size == "" {
		path, err := c.optimizer.ResolvePath(publicPath)
		if err != nil {
			http.Error(w, "Invalid image path", http.StatusBadRequest)
			return
		}
		if _, err := os.Stat(path); err != nil {
			http.NotFound(w, r)
			return
		}
		w.Header().Set("Cache-Control", "public, max-age=86400")
		http.ServeFile(w, r, path)
		return
	}

	if !service.IsVariantSize(size) {
		http.Error(w, "size must be thumb or medium", http.StatusBadRequest)
		return
	}

	data, err := c.optimizer.Variant(publicPath, size)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidImagePath):
			http.Error(w, "Invalid image path", http.StatusBadRequest)
		case errors.Is(err, os.ErrNotExist):
			http.NotFound(w, r)
		default:
			log.Printf("❌ Failed to build %s variant of %s: %v", size, publicPath, err)
			http.Error(w, "Failed to process image", http.StatusInternalServerError)
		}
		return
	}

	w.Header().Set("Content-Type", "image/jpeg")
	w.Header().Set("Cache-Control", "public, max-age=86400")
	_, _ = w.Write(data)
}
