package models

// DriveImage represents an image file found in the product images Drive folder
type DriveImage struct {
	DriveFileID string `json:"driveFileId"`
	FileName    string `json:"fileName"`
	MimeType    string `json:"mimeType"`
	ProductID   int    `json:"productId"`
	Kind        string `json:"kind"`     // "color" or "project"
	Position    int    `json:"position"` // 1-based slot in its row
}

// SyncResult summarizes a product image import run
type SyncResult struct {
	Inserted int      `json:"inserted"`
	Skipped  int      `json:"skipped"`
	Total    int      `json:"total"`
	Errors   []string `json:"errors"`
}
