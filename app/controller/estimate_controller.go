package controller

import (
	"fmt"
	"io"
	"log"
	"net/http"

	"pavexpert/models"
	"pavexpert/service"
)

// EstimateController handles the free estimate form
type EstimateController struct {
	estimates service.EstimateServiceInterface
}

// NewEstimateController creates a new EstimateController
func NewEstimateController(estimates service.EstimateServiceInterface) *EstimateController {
	return &EstimateController{estimates: estimates}
}

// Submit handles POST /api/estimate
func (c *EstimateController) Submit(w http.ResponseWriter, r *http.Request) {
	var req models.EstimateRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeError(w, http.StatusBadRequest, fmt.Sprintf("Invalid request body: %v", err), nil)
		return
	}

	estimate, err := c.estimates.Submit(r.Context(), req)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, estimate)
}

// UploadImages handles POST /api/estimate/images
// Multipart form with up to 10 files in the "images" field
func (c *EstimateController) UploadImages(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, service.MaxEstimateImages*service.MaxEstimateImageBytes+(1<<20))
	if err := r.ParseMultipartForm(32 << 20); err != nil {
		writeError(w, http.StatusBadRequest, fmt.Sprintf("Invalid upload: %v", err), nil)
		return
	}
	defer r.MultipartForm.RemoveAll()

	files := r.MultipartForm.File["images"]
	if len(files) > service.MaxEstimateImages {
		writeError(w, http.StatusBadRequest, "Invalid request", map[string]string{
			"images": fmt.Sprintf("At most %d images can be uploaded", service.MaxEstimateImages),
		})
		return
	}

	uploads := make([]service.UploadedImage, 0, len(files))
	for _, fh := range files {
		if fh.Size > service.MaxEstimateImageBytes {
			writeError(w, http.StatusBadRequest, "Invalid request", map[string]string{
				"images": fmt.Sprintf("%s is larger than 10MB", fh.Filename),
			})
			return
		}
		f, err := fh.Open()
		if err != nil {
			writeError(w, http.StatusBadRequest, fmt.Sprintf("Failed to read %s", fh.Filename), nil)
			return
		}
		data, err := io.ReadAll(f)
		f.Close()
		if err != nil {
			log.Printf("❌ Failed to read upload %s: %v", fh.Filename, err)
			writeError(w, http.StatusBadRequest, fmt.Sprintf("Failed to read %s", fh.Filename), nil)
			return
		}
		uploads = append(uploads, service.UploadedImage{FileName: fh.Filename, Data: data})
	}

	paths, err := c.estimates.UploadImages(r.Context(), uploads)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, models.EstimateImagesResponse{Images: paths})
}
