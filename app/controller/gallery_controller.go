package controller

import (
	"bytes"
	"log"
	"net/http"

	"github.com/go-chi/chi/v5"

	"pavexpert/gallery"
	"pavexpert/service"
)

// GalleryController handles the server-held product gallery sessions
type GalleryController struct {
	galleries service.GalleryServiceInterface
	renderer  *gallery.Renderer
}

// NewGalleryController creates a new GalleryController
func NewGalleryController(galleries service.GalleryServiceInterface, renderer *gallery.Renderer) *GalleryController {
	return &GalleryController{galleries: galleries, renderer: renderer}
}

type selectRequest struct {
	Ref   *string `json:"ref"`
	Index *int    `json:"index"`
}

type directionRequest struct {
	Direction string `json:"direction"`
}

type indexRequest struct {
	Index *int `json:"index"`
}

type keyRequest struct {
	Key string `json:"key"`
}

type keyResponse struct {
	Handled bool         `json:"handled"`
	View    gallery.View `json:"view"`
}

// respond writes the view as JSON, or as the HTML fragment when ?format=html is set
func (c *GalleryController) respond(w http.ResponseWriter, r *http.Request, view gallery.View, err error) {
	if err != nil {
		writeServiceError(w, err)
		return
	}
	if r.URL.Query().Get("format") == "html" {
		c.writeFragment(w, view)
		return
	}
	writeJSON(w, http.StatusOK, view)
}

func (c *GalleryController) writeFragment(w http.ResponseWriter, view gallery.View) {
	var buf bytes.Buffer
	if err := c.renderer.RenderView(&buf, view); err != nil {
		log.Printf("❌ Failed to render gallery %s: %v", view.SessionID, err)
		http.Error(w, "Failed to render gallery", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	_, _ = buf.WriteTo(w)
}

func (c *GalleryController) direction(w http.ResponseWriter, r *http.Request) (gallery.Direction, bool) {
	var req directionRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body", nil)
		return 0, false
	}
	dir, err := gallery.ParseDirection(req.Direction)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error(), nil)
		return 0, false
	}
	return dir, true
}

// Create handles POST /api/products/{id}/gallery
func (c *GalleryController) Create(w http.ResponseWriter, r *http.Request) {
	id, ok := productIDParam(r)
	if !ok {
		writeError(w, http.StatusBadRequest, "invalid product id", nil)
		return
	}
	view, err := c.galleries.Create(r.Context(), id)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, view)
}

// Get handles GET /api/gallery/{session}
func (c *GalleryController) Get(w http.ResponseWriter, r *http.Request) {
	view, err := c.galleries.View(chi.URLParam(r, "session"))
	c.respond(w, r, view, err)
}

// Fragment handles GET /gallery/{session}
func (c *GalleryController) Fragment(w http.ResponseWriter, r *http.Request) {
	view, err := c.galleries.View(chi.URLParam(r, "session"))
	if err != nil {
		if isNotFound(err) {
			http.NotFound(w, r)
			return
		}
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}
	c.writeFragment(w, view)
}

// Select handles POST /api/gallery/{session}/select
// Body: {"ref": "..."} or {"index": n}
func (c *GalleryController) Select(w http.ResponseWriter, r *http.Request) {
	var req selectRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	session := chi.URLParam(r, "session")
	switch {
	case req.Index != nil:
		view, err := c.galleries.SelectIndex(session, *req.Index)
		c.respond(w, r, view, err)
	case req.Ref != nil:
		view, err := c.galleries.Select(session, *req.Ref)
		c.respond(w, r, view, err)
	default:
		writeError(w, http.StatusBadRequest, "ref or index is required", nil)
	}
}

// Navigate handles POST /api/gallery/{session}/navigate
func (c *GalleryController) Navigate(w http.ResponseWriter, r *http.Request) {
	dir, ok := c.direction(w, r)
	if !ok {
		return
	}
	view, err := c.galleries.Navigate(chi.URLParam(r, "session"), dir)
	c.respond(w, r, view, err)
}

// OpenLightbox handles POST /api/gallery/{session}/lightbox/open
// Without an index the overlay opens on the image shown in the main slot
func (c *GalleryController) OpenLightbox(w http.ResponseWriter, r *http.Request) {
	var req indexRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}
	view, err := c.galleries.OpenLightbox(chi.URLParam(r, "session"), req.Index)
	c.respond(w, r, view, err)
}

// CloseLightbox handles POST /api/gallery/{session}/lightbox/close
func (c *GalleryController) CloseLightbox(w http.ResponseWriter, r *http.Request) {
	view, err := c.galleries.CloseLightbox(chi.URLParam(r, "session"))
	c.respond(w, r, view, err)
}

// NavigateLightbox handles POST /api/gallery/{session}/lightbox/navigate
func (c *GalleryController) NavigateLightbox(w http.ResponseWriter, r *http.Request) {
	dir, ok := c.direction(w, r)
	if !ok {
		return
	}
	view, err := c.galleries.NavigateLightbox(chi.URLParam(r, "session"), dir)
	c.respond(w, r, view, err)
}

// JumpLightbox handles POST /api/gallery/{session}/lightbox/jump
func (c *GalleryController) JumpLightbox(w http.ResponseWriter, r *http.Request) {
	var req indexRequest
	if err := decodeJSON(w, r, &req); err != nil || req.Index == nil {
		writeError(w, http.StatusBadRequest, "index is required", nil)
		return
	}
	view, err := c.galleries.JumpLightbox(chi.URLParam(r, "session"), *req.Index)
	c.respond(w, r, view, err)
}

// Key handles POST /api/gallery/{session}/keys
func (c *GalleryController) Key(w http.ResponseWriter, r *http.Request) {
	var req keyRequest
	if err := decodeJSON(w, r, &req); err != nil || req.Key == "" {
		writeError(w, http.StatusBadRequest, "key is required", nil)
		return
	}
	view, handled, err := c.galleries.PressKey(chi.URLParam(r, "session"), gallery.Key(req.Key))
	if err != nil {
		writeServiceError(w, err)
		return
	}
	if r.URL.Query().Get("format") == "html" {
		c.writeFragment(w, view)
		return
	}
	writeJSON(w, http.StatusOK, keyResponse{Handled: handled, View: view})
}

// Delete handles DELETE /api/gallery/{session}
func (c *GalleryController) Delete(w http.ResponseWriter, r *http.Request) {
	if err := c.galleries.Close(chi.URLParam(r, "session")); err != nil {
		writeServiceError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
