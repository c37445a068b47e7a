package controller

import (
	"log"
	"net/http"
	"strings"

	"pavexpert/service"
)

// ProductImageController handles the product image import from Google Drive
type ProductImageController struct {
	syncService     service.SyncServiceInterface
	defaultFolderID string
}

// NewProductImageController creates a new ProductImageController.
// syncService is nil when Drive credentials are not configured.
func NewProductImageController(syncService service.SyncServiceInterface, defaultFolderID string) *ProductImageController {
	return &ProductImageController{
		syncService:     syncService,
		defaultFolderID: defaultFolderID,
	}
}

// Sync handles POST /admin/product-images/sync
// Query params: folderId (optional, defaults to PRODUCT_IMAGES_FOLDER_ID)
func (c *ProductImageController) Sync(w http.ResponseWriter, r *http.Request) {
	if c.syncService == nil {
		writeError(w, http.StatusServiceUnavailable, "Google Drive import is not configured", nil)
		return
	}

	folderID := strings.TrimSpace(r.URL.Query().Get("folderId"))
	if folderID == "" {
		folderID = c.defaultFolderID
	}
	if folderID == "" {
		writeError(w, http.StatusBadRequest, "folderId is required", nil)
		return
	}

	result, err := c.syncService.SyncProductImages(r.Context(), folderID)
	if err != nil {
		log.Printf("❌ Product image import failed: %v", err)
		writeError(w, http.StatusInternalServerError, "Failed to import product images", nil)
		return
	}
	writeJSON(w, http.StatusOK, result)
}

// Ping handles GET /ping
func Ping(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}
