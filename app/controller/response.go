package controller

import (
	"encoding/json"
	"errors"
	"io"
	"log"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"pavexpert/gallery"
	"pavexpert/repository"
	"pavexpert/service"
)

// errorResponse is the JSON body of failed API calls
type errorResponse struct {
	Error   string            `json:"error"`
	Details map[string]string `json:"details,omitempty"`
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Printf("❌ Failed to encode response: %v", err)
	}
}

func writeError(w http.ResponseWriter, status int, message string, details map[string]string) {
	writeJSON(w, status, errorResponse{Error: message, Details: details})
}

// writeServiceError maps service and repository errors to HTTP statuses
func writeServiceError(w http.ResponseWriter, err error) {
	var verr *service.ValidationError
	switch {
	case errors.As(err, &verr):
		writeError(w, http.StatusBadRequest, "Invalid request", verr.Fields)
	case errors.Is(err, repository.ErrNotFound):
		writeError(w, http.StatusNotFound, "Not found", nil)
	case errors.Is(err, service.ErrSessionNotFound):
		writeError(w, http.StatusNotFound, "Gallery session not found", nil)
	case errors.Is(err, gallery.ErrIndexOutOfRange):
		writeError(w, http.StatusBadRequest, err.Error(), nil)
	default:
		log.Printf("❌ Internal error: %v", err)
		writeError(w, http.StatusInternalServerError, "Internal server error", nil)
	}
}

// decodeJSON decodes an optional request body. An empty body leaves v untouched.
func decodeJSON(w http.ResponseWriter, r *http.Request, v interface{}) error {
	if r.Body == nil || r.ContentLength == 0 {
		return nil
	}
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, 1<<20))
	if err := dec.Decode(v); err != nil && !errors.Is(err, io.EOF) {
		return err
	}
	return nil
}

func isNotFound(err error) bool {
	return errors.Is(err, repository.ErrNotFound) || errors.Is(err, service.ErrSessionNotFound)
}

// productIDParam parses the {id} route parameter
func productIDParam(r *http.Request) (int, bool) {
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil || id <= 0 {
		return 0, false
	}
	return id, true
}
