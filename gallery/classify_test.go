package gallery

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestClassifyPlaceholder(t *testing.T) {
	t.Parallel()

	tests := []struct {
		ref    string
		kind   Kind
		tagged bool
	}{
		{ref: "PC-3", kind: KindColor, tagged: true},
		{ref: "PI-7", kind: KindProject, tagged: true},
		{ref: "/images/x.png", tagged: false},
		{ref: "", tagged: false},
		{ref: "pc-3", tagged: false},
		// substring match: a real file name carrying the marker is classified as a tag
		{ref: "/images/products/PI-patio.jpg", kind: KindProject, tagged: true},
		{ref: "PC-PI-1", kind: KindProject, tagged: true},
	}

	for _, tt := range tests {
		t.Run(fmt.Sprintf("%q", tt.ref), func(t *testing.T) {
			kind, ok := ClassifyPlaceholder(tt.ref)
			require.Equal(t, tt.tagged, ok)
			require.Equal(t, tt.kind, kind)
		})
	}
}

func TestIsRealImagePath(t *testing.T) {
	t.Parallel()

	require.True(t, IsRealImagePath("/images/foo.png"))
	require.True(t, IsRealImagePath("/images/products/12/color/01"))
	require.True(t, IsRealImagePath("uploads/paver.jpeg"))
	require.True(t, IsRealImagePath("paver.jpg"))
	require.False(t, IsRealImagePath("PC-1"))
	require.False(t, IsRealImagePath("https://cdn.example.com/asset"))
	require.False(t, IsRealImagePath(""))
	require.False(t, IsRealImagePath("paver.JPG"))
}

func TestNormalizePath(t *testing.T) {
	t.Parallel()

	require.Equal(t, "/foo.png", NormalizePath("foo.png"))
	require.Equal(t, "/foo.png", NormalizePath("/foo.png"))
	require.Equal(t, "/", NormalizePath(""))

	for _, ref := range []string{"foo.png", "/foo.png", "images/a/b.jpg", ""} {
		once := NormalizePath(ref)
		require.Equal(t, once, NormalizePath(once))
	}
}

func TestParseImage(t *testing.T) {
	t.Parallel()

	stored := ParseImage("images/products/4/color/01.jpg")
	require.True(t, stored.IsReal())
	require.Equal(t, "/images/products/4/color/01.jpg", stored.Path)

	tag := ParseImage("PI-7")
	require.True(t, tag.IsPlaceholder())
	require.Equal(t, KindProject, tag.Kind)
	require.Equal(t, 7, tag.Ordinal)

	noOrdinal := ParseImage("PC-x")
	require.True(t, noOrdinal.IsPlaceholder())
	require.Zero(t, noOrdinal.Ordinal)

	unknown := ParseImage("https://cdn.example.com/asset")
	require.Equal(t, SourceUnknown, unknown.Source)

	// a stored path wins over the placeholder marker
	both := ParseImage("/images/PC-1.png")
	require.Equal(t, SourceReal, both.Source)

	images := ParseImages([]string{"a.png", "PC-2", ""})
	require.Len(t, images, 3)
	require.Equal(t, []Source{SourceReal, SourcePlaceholder, SourceUnknown},
		[]Source{images[0].Source, images[1].Source, images[2].Source})
}
