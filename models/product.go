package models

// Product represents a paver / hardscape product as shown on the product pages
type Product struct {
	ID                   int      `json:"id"`
	Name                 string   `json:"name"`
	Brand                string   `json:"brand"`
	BrandColor           string   `json:"brandColor"` // Hex color used for the brand label
	ProductType          string   `json:"productType"`
	Color                string   `json:"color"`
	Size                 string   `json:"size"`
	Thickness            string   `json:"thickness"`   // e.g. "60mm"
	ThicknessIn          float64  `json:"thicknessIn"` // inches
	SqftPallet           float64  `json:"sqftPallet"`
	SqftLayer            float64  `json:"sqftLayer"`
	LnftPallet           float64  `json:"lnftPallet"`
	LayerPallet          int      `json:"layerPallet"`
	PcsPallet            int      `json:"pcsPallet"`
	Note                 string   `json:"note"`
	NoteHTML             string   `json:"noteHtml,omitempty"` // Sanitized HTML rendered from Note (markdown)
	ColorsAvailable      []string `json:"colorsAvailable"`
	ThicknessesAvailable []string `json:"thicknessesAvailable"`
	MainImage            string   `json:"mainImage"`
	ColorImages          []string `json:"colorImages"`   // Real stored paths, in display order
	ProjectImages        []string `json:"projectImages"` // Real stored paths, in display order
	CreatedAt            string   `json:"createdAt"`
	UpdatedAt            string   `json:"updatedAt"`
}

// ProductSummary is a product as listed on the products grid
type ProductSummary struct {
	ID          int    `json:"id"`
	Name        string `json:"name"`
	Brand       string `json:"brand"`
	BrandColor  string `json:"brandColor"`
	ProductType string `json:"productType"`
	Color       string `json:"color"`
	Thickness   string `json:"thickness"`
	MainImage   string `json:"mainImage"`
	Thumbnail   string `json:"thumbnail"` // First color image, falls back to MainImage
}

// ProductDetail is the API response for a single product with its padded gallery rows
type ProductDetail struct {
	Product
	ColorSlots   []string `json:"colorSlots"`   // Exactly 10 entries, placeholders appended
	ProjectSlots []string `json:"projectSlots"` // Exactly 10 entries, placeholders appended
}

// ProductImage is one stored image attached to a product
type ProductImage struct {
	ID          int    `json:"id"`
	ProductID   int    `json:"productId"`
	Kind        string `json:"kind"` // "color" or "project"
	Position    int    `json:"position"`
	ImagePath   string `json:"imagePath"`
	DriveFileID string `json:"driveFileId,omitempty"`
}

// Brand represents a product brand
type Brand struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

// Thickness represents a thickness option in both units
type Thickness struct {
	MM     string `json:"mm"`
	Inches string `json:"inches"`
}

// ProductFilterOptions lists the values offered by the product filter dropdowns
type ProductFilterOptions struct {
	ProductTypes []string    `json:"productTypes"`
	Brands       []Brand     `json:"brands"`
	Colors       []string    `json:"colors"`
	Thicknesses  []Thickness `json:"thicknesses"`
}
