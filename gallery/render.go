package gallery

import (
	"embed"
	"fmt"
	"html/template"
	"io"
	"strings"
)

// Variant is where a tile is drawn; it decides how real images are fitted
type Variant int

const (
	VariantThumbnail Variant = iota
	VariantMain
	VariantLightbox
	VariantLightboxThumb
)

// Content is what a tile shows
type Content int

const (
	ContentImage Content = iota
	ContentComingSoon
	ContentGeneric
)

func (c Content) String() string {
	switch c {
	case ContentImage:
		return "image"
	case ContentComingSoon:
		return "coming-soon"
	}
	return "generic"
}

// MarshalText encodes the content as its String form
func (c Content) MarshalText() ([]byte, error) {
	return []byte(c.String()), nil
}

// comingSoonLines is the label drawn on placeholder slots
var comingSoonLines = []string{"Coming", "Soooon..."}

// Tile is the render model of one image slot
type Tile struct {
	Ref     string   `json:"ref"`
	Index   int      `json:"index"`
	Src     string   `json:"src,omitempty"`
	Alt     string   `json:"alt"`
	Content Content  `json:"content"`
	Kind    Kind     `json:"kind,omitempty"`
	Fit     string   `json:"fit,omitempty"`
	Lines   []string `json:"lines,omitempty"`
	Active  bool     `json:"active"`
}

// BuildTile decides how ref is drawn. active only adds the highlight.
func BuildTile(ref, alt string, active bool, variant Variant) Tile {
	img := ParseImage(ref)
	tile := Tile{Ref: ref, Index: -1, Alt: alt, Active: active}

	switch img.Source {
	case SourceReal:
		tile.Content = ContentImage
		tile.Src = img.Path
		tile.Fit = "contain"
		if variant == VariantThumbnail || variant == VariantLightboxThumb {
			tile.Fit = "cover"
		}
	case SourcePlaceholder:
		tile.Content = ContentComingSoon
		tile.Kind = img.Kind
		tile.Lines = append([]string(nil), comingSoonLines...)
	default:
		tile.Content = ContentGeneric
		tile.Lines = []string{genericLabel(ref, alt, variant)}
	}
	return tile
}

// genericLabel picks the text of the fallback box: the file name on the main slot,
// the ref in the lightbox, the alt text elsewhere.
func genericLabel(ref, alt string, variant Variant) string {
	switch variant {
	case VariantMain:
		name := ref
		if i := strings.LastIndex(name, "/"); i >= 0 {
			name = name[i+1:]
		}
		if i := strings.Index(name, "?"); i >= 0 {
			name = name[:i]
		}
		if name == "" {
			return "Product Image"
		}
		return name
	case VariantLightbox, VariantLightboxThumb:
		if ref != "" {
			return ref
		}
	}
	if alt == "" {
		return "Image Coming Soon..."
	}
	return alt
}

// rowData feeds the "row" template
type rowData struct {
	Name  string
	Label string
	Tiles []Tile
}

//go:embed templates/*.tmpl
var templateFS embed.FS

// Renderer draws gallery views to HTML
type Renderer struct {
	tmpl *template.Template
}

// NewRenderer parses the embedded gallery templates
func NewRenderer() (*Renderer, error) {
	funcs := template.FuncMap{
		"contentName": func(c Content) string { return c.String() },
		"inc":         func(i int) int { return i + 1 },
		"row": func(name, label string, tiles []Tile) rowData {
			return rowData{Name: name, Label: label, Tiles: tiles}
		},
	}
	tmpl, err := template.New("gallery-root").Funcs(funcs).ParseFS(templateFS, "templates/*.tmpl")
	if err != nil {
		return nil, fmt.Errorf("failed to parse gallery templates: %w", err)
	}
	return &Renderer{tmpl: tmpl}, nil
}

// Templates exposes the parsed set so page templates can embed the gallery blocks
func (r *Renderer) Templates() *template.Template {
	return r.tmpl
}

// RenderView writes the inline gallery and, when open, the lightbox overlay
func (r *Renderer) RenderView(w io.Writer, view View) error {
	return r.execute(w, "gallery", view)
}

func (r *Renderer) execute(w io.Writer, name string, data any) error {
	if err := r.tmpl.ExecuteTemplate(w, name, data); err != nil {
		return fmt.Errorf("failed to execute template %s: %w", name, err)
	}
	return nil
}
