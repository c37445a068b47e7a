package gallery

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
)

func realImages(n int) []string {
	images := make([]string, n)
	for i := range images {
		images[i] = fmt.Sprintf("/images/products/1/color/%02d.jpg", i+1)
	}
	return images
}

func TestPadToTenLength(t *testing.T) {
	t.Parallel()

	for _, kind := range []Kind{KindColor, KindProject} {
		for n := 0; n <= 15; n++ {
			require.Len(t, PadToTen(realImages(n), kind), SlotCount, "kind=%s n=%d", kind, n)
		}
	}
}

func TestPadToTenKeepsRealImagesFirst(t *testing.T) {
	t.Parallel()

	for n := 0; n <= SlotCount; n++ {
		images := realImages(n)
		padded := PadToTen(images, KindColor)
		require.Equal(t, images, padded[:n])
		for i := n; i < SlotCount; i++ {
			require.Equal(t, fmt.Sprintf("PC-%d", i-n+1), padded[i])
		}
	}
}

func TestPadToTenTruncates(t *testing.T) {
	t.Parallel()

	images := realImages(13)
	padded := PadToTen(images, KindProject)
	require.Equal(t, images[:SlotCount], padded)
	for _, ref := range padded {
		_, tagged := ClassifyPlaceholder(ref)
		require.False(t, tagged)
	}
}

func TestPadToTenDoesNotAliasInput(t *testing.T) {
	t.Parallel()

	images := make([]string, 2, 20)
	copy(images, realImages(2))
	padded := PadToTen(images, KindColor)
	padded[0] = "changed"
	require.Equal(t, "/images/products/1/color/01.jpg", images[0])
	require.Len(t, images, 2)
}

func TestPadToTenIsDeterministic(t *testing.T) {
	t.Parallel()

	images := realImages(3)
	require.Equal(t, PadToTen(images, KindProject), PadToTen(images, KindProject))
	require.Equal(t, Placeholders(10, KindProject), PadToTen(nil, KindProject))
}

func TestPlaceholders(t *testing.T) {
	t.Parallel()

	require.Nil(t, Placeholders(0, KindColor))
	require.Nil(t, Placeholders(-2, KindColor))
	require.Equal(t, []string{"PI-1", "PI-2", "PI-3"}, Placeholders(3, KindProject))
	require.Equal(t, "PC-8", PlaceholderTag(KindColor, 8))
}
