package gallery

import "strings"

// Kind identifies which thumbnail row an image slot belongs to
type Kind int

const (
	KindColor Kind = iota + 1
	KindProject
)

const (
	colorCode   = "PC"
	projectCode = "PI"

	// imagesDirMarker marks a path inside the stored-images directory
	imagesDirMarker = "/images/"
)

// realImageExtensions are the raster extensions recognised as stored images (case-sensitive)
var realImageExtensions = []string{".jpg", ".jpeg", ".png"}

// Code returns the two-letter code used in placeholder tags ("PC" or "PI")
func (k Kind) Code() string {
	switch k {
	case KindColor:
		return colorCode
	case KindProject:
		return projectCode
	}
	return ""
}

func (k Kind) String() string {
	switch k {
	case KindColor:
		return "color"
	case KindProject:
		return "project"
	}
	return "unknown"
}

// MarshalText encodes the kind as "color" / "project"
func (k Kind) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

// ClassifyPlaceholder reports whether ref is a placeholder tag and of which kind.
// Matching is a plain substring test on the "PI-" / "PC-" markers, project first.
func ClassifyPlaceholder(ref string) (Kind, bool) {
	if strings.Contains(ref, projectCode+"-") {
		return KindProject, true
	}
	if strings.Contains(ref, colorCode+"-") {
		return KindColor, true
	}
	return 0, false
}

// IsRealImagePath reports whether ref points at a stored image: either it lives under
// the images directory or it ends with a known raster extension.
// A remote URL without extension or marker is not considered real.
func IsRealImagePath(ref string) bool {
	if strings.Contains(ref, imagesDirMarker) {
		return true
	}
	for _, ext := range realImageExtensions {
		if strings.HasSuffix(ref, ext) {
			return true
		}
	}
	return false
}

// NormalizePath makes sure a stored path starts with a single leading slash
func NormalizePath(ref string) string {
	if strings.HasPrefix(ref, "/") {
		return ref
	}
	return "/" + ref
}
