package gallery

import "fmt"

// SlotCount is the fixed number of slots in each thumbnail row
const SlotCount = 10

// PlaceholderTag builds the tag for the n-th (1-based) placeholder of a kind, e.g. "PC-3"
func PlaceholderTag(kind Kind, n int) string {
	return fmt.Sprintf("%s-%d", kind.Code(), n)
}

// Placeholders generates count placeholder tags numbered from 1
func Placeholders(count int, kind Kind) []string {
	if count <= 0 {
		return nil
	}
	tags := make([]string, count)
	for i := range tags {
		tags[i] = PlaceholderTag(kind, i+1)
	}
	return tags
}

// PadToTen returns exactly SlotCount refs: the first ten real images in their original
// order, followed by placeholders numbered from 1 when fewer than ten were supplied.
// The input slice is never modified or aliased.
func PadToTen(images []string, kind Kind) []string {
	padded := make([]string, 0, SlotCount)
	if len(images) >= SlotCount {
		return append(padded, images[:SlotCount]...)
	}
	padded = append(padded, images...)
	return append(padded, Placeholders(SlotCount-len(images), kind)...)
}
