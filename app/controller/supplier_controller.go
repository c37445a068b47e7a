package controller

import (
	"net/http"

	"pavexpert/service"
)

// SupplierController handles the supplier map data
type SupplierController struct {
	suppliers service.SupplierServiceInterface
}

// NewSupplierController creates a new SupplierController
func NewSupplierController(suppliers service.SupplierServiceInterface) *SupplierController {
	return &SupplierController{suppliers: suppliers}
}

// List handles GET /api/suppliers
// Query params: material (optional)
func (c *SupplierController) List(w http.ResponseWriter, r *http.Request) {
	branches, err := c.suppliers.ListBranches(r.Context(), r.URL.Query().Get("material"))
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, branches)
}
