package gallery

import "fmt"

// View is everything the page needs to draw one product gallery
type View struct {
	SessionID string        `json:"sessionId,omitempty"`
	Displayed Tile          `json:"displayed"`
	Index     int           `json:"index"`
	Colors    []Tile        `json:"colors"`
	Projects  []Tile        `json:"projects"`
	Lightbox  *LightboxView `json:"lightbox,omitempty"`
}

// LightboxView is the overlay part of a View, only present while it is open
type LightboxView struct {
	Index   int    `json:"index"`
	Total   int    `json:"total"`
	Current Tile   `json:"current"`
	Thumbs  []Tile `json:"thumbs"`
}

// BuildView snapshots the gallery and lightbox into render models.
// lb may be nil.
func BuildView(g *Gallery, lb *Lightbox) View {
	seq := g.Sequence()
	displayed := g.Displayed()

	view := View{
		Displayed: BuildTile(displayed, "Product Image", false, VariantMain),
		Index:     g.Index(),
		Colors:    rowTiles(seq.colors, 0, "Color", displayed),
		Projects:  rowTiles(seq.projects, len(seq.colors), "Project", displayed),
	}
	view.Displayed.Index = view.Index

	if lb != nil && lb.IsOpen() {
		all := seq.all
		thumbs := make([]Tile, len(all))
		for i, ref := range all {
			thumbs[i] = BuildTile(ref, fmt.Sprintf("Thumb %d", i+1), i == lb.Index(), VariantLightboxThumb)
			thumbs[i].Index = i
		}
		current := BuildTile(lb.Current(), "Full Image", true, VariantLightbox)
		current.Index = lb.Index()
		view.Lightbox = &LightboxView{
			Index:   lb.Index(),
			Total:   len(all),
			Current: current,
			Thumbs:  thumbs,
		}
	}
	return view
}

func rowTiles(refs []string, offset int, label, displayed string) []Tile {
	tiles := make([]Tile, len(refs))
	for i, ref := range refs {
		tiles[i] = BuildTile(ref, fmt.Sprintf("%s %d", label, i+1), ref == displayed, VariantThumbnail)
		tiles[i].Index = offset + i
	}
	return tiles
}
