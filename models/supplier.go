package models

// SupplierBranch represents one branch of a supplier, with the data needed to place it on the map
type SupplierBranch struct {
	ID           int            `json:"id"`
	CrossStreet  string         `json:"cross_street"`
	BranchName   string         `json:"branch_name"`
	Phone        string         `json:"phone"`
	Address      string         `json:"address"`
	Latitude     *float64       `json:"latitude"`
	Longitude    *float64       `json:"longitude"`
	IsMainBranch bool           `json:"is_main_branch"`
	Supplier     BranchSupplier `json:"supplier"`
}

// BranchSupplier is the supplier a branch belongs to
type BranchSupplier struct {
	ID           int        `json:"id"`
	SupplierName string     `json:"supplier_name"`
	WebsiteURL   string     `json:"website_url,omitempty"`
	BrandLogos   []string   `json:"brand_logos"`
	Materials    []Material `json:"materials"`
}

// Material is a hardscape material carried by a supplier
type Material struct {
	ID   int    `json:"id"`
	Name string `json:"material_name"`
}

// HasCoordinates reports whether the branch can be placed on the map
func (b SupplierBranch) HasCoordinates() bool {
	return b.Latitude != nil && b.Longitude != nil && (*b.Latitude != 0 || *b.Longitude != 0)
}
