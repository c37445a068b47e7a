package utils

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"pavexpert/models"
)

var (
	imageExtRegex      = regexp.MustCompile(`\.(png|jpg|jpeg)$`)
	productImageRegex  = regexp.MustCompile(`^(\d+)_(color|project)_(\d{1,2})$`)
	maxProductImageRow = 10
)

// ParseProductImageFileName parses a filename following the pattern:
// PRODUCTID_KIND_NN.EXT where KIND is color or project and NN is the 1-based slot
// Example: 42_color_03.jpg
func ParseProductImageFileName(filename string) (*models.DriveImage, error) {
	lower := strings.ToLower(strings.TrimSpace(filename))
	if !imageExtRegex.MatchString(lower) {
		return nil, fmt.Errorf("invalid extension: expected .jpg, .jpeg or .png, got %s", filename)
	}
	nameWithoutExt := imageExtRegex.ReplaceAllString(lower, "")

	matches := productImageRegex.FindStringSubmatch(nameWithoutExt)
	if len(matches) != 4 {
		return nil, fmt.Errorf("invalid filename format: expected PRODUCTID_color|project_NN, got %s", filename)
	}

	productID, err := strconv.Atoi(matches[1])
	if err != nil || productID <= 0 {
		return nil, fmt.Errorf("invalid product id in %s", filename)
	}

	position, _ := strconv.Atoi(matches[3])
	if position < 1 || position > maxProductImageRow {
		return nil, fmt.Errorf("invalid position %d in %s: expected 1-%d", position, filename, maxProductImageRow)
	}

	return &models.DriveImage{
		FileName:  filename,
		ProductID: productID,
		Kind:      matches[2],
		Position:  position,
	}, nil
}

// ProductImagePath returns the public path of an imported product image
func ProductImagePath(productID int, kind string, position int) string {
	return fmt.Sprintf("/images/products/%d/%s/%02d.jpg", productID, kind, position)
}
