package gallery

import (
	"strconv"
	"strings"
)

// Source tells how an image slot has to be rendered
type Source int

const (
	// SourceUnknown is neither a stored image nor a placeholder tag (empty or malformed input)
	SourceUnknown Source = iota
	// SourceReal is a stored image path
	SourceReal
	// SourcePlaceholder is a generated "coming soon" slot
	SourcePlaceholder
)

func (s Source) String() string {
	switch s {
	case SourceReal:
		return "real"
	case SourcePlaceholder:
		return "placeholder"
	}
	return "unknown"
}

// Image is a classified image slot. It is built once from a raw ref so renderers
// and handlers do not need to sniff the string again.
type Image struct {
	Ref     string // raw ref as stored on the product
	Source  Source
	Path    string // normalized path, set for SourceReal
	Kind    Kind   // set for SourcePlaceholder
	Ordinal int    // 1-based placeholder ordinal, 0 when the tag carries no number
}

// ParseImage classifies ref. A stored path wins over a placeholder marker, the same
// precedence the renderer applies.
func ParseImage(ref string) Image {
	if IsRealImagePath(ref) {
		return Image{Ref: ref, Source: SourceReal, Path: NormalizePath(ref)}
	}
	if kind, ok := ClassifyPlaceholder(ref); ok {
		return Image{Ref: ref, Source: SourcePlaceholder, Kind: kind, Ordinal: placeholderOrdinal(ref, kind)}
	}
	return Image{Ref: ref}
}

// ParseImages classifies a list of refs, preserving order
func ParseImages(refs []string) []Image {
	images := make([]Image, len(refs))
	for i, ref := range refs {
		images[i] = ParseImage(ref)
	}
	return images
}

// IsReal reports whether the slot holds a stored image
func (img Image) IsReal() bool {
	return img.Source == SourceReal
}

// IsPlaceholder reports whether the slot is a generated placeholder
func (img Image) IsPlaceholder() bool {
	return img.Source == SourcePlaceholder
}

func placeholderOrdinal(ref string, kind Kind) int {
	marker := kind.Code() + "-"
	idx := strings.Index(ref, marker)
	if idx < 0 {
		return 0
	}
	digits := ref[idx+len(marker):]
	end := 0
	for end < len(digits) && digits[end] >= '0' && digits[end] <= '9' {
		end++
	}
	n, err := strconv.Atoi(digits[:end])
	if err != nil {
		return 0
	}
	return n
}
