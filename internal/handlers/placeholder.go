package handlers

import (
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"lightlock/internal/catalog"
	"lightlock/pkg/utils"
)

const (
	minPlaceholderSide = 16
	maxPlaceholderSide = 1024
)

// Placeholder: GET /placeholder/{id}?s=
// Renders the loading skeleton for one catalog image.
func (h *Handler) Placeholder(w http.ResponseWriter, r *http.Request) {
	id, err := utils.ConvertToInt(r.PathValue("id"), "image id")
	if err != nil {
		utils.WriteError(w, http.StatusBadRequest, utils.ErrRequestInvalid, err.Error())
		return
	}
	side := utils.ParseInt(r.URL.Query().Get("s"), utils.DefaultPlaceholderSide, minPlaceholderSide, maxPlaceholderSide)

	img, err := h.catalog.Get(r.Context(), id)
	if errors.Is(err, catalog.ErrImageNotFound) {
		utils.WriteError(w, http.StatusNotFound, utils.ErrResourceNotFound, "Image not found.")
		return
	}
	if err != nil {
		utils.WriteError(w, http.StatusInternalServerError, utils.ErrServerInternal, "Failed to load image.")
		return
	}

	key := fmt.Sprintf("placeholder:%d:%d", id, side)

	data, err, _ := h.requestGroup.Do(key, func() (interface{}, error) {
		if h.cache != nil {
			if cached, ok := h.cache.Get(key); ok {
				return cached, nil
			}
		}

		rendered, err := utils.RenderPlaceholder(utils.PlaceholderOptions{
			Seed:    img.AltText,
			Label:   fmt.Sprintf("#%d", img.ID),
			Width:   img.Width,
			Height:  img.Height,
			MaxSide: side,
		})
		if err != nil {
			return nil, err
		}

		if h.cache != nil {
			h.cache.Set(key, rendered)
		}
		return rendered, nil
	})
	if err != nil {
		utils.WriteError(w, http.StatusInternalServerError, utils.ErrImageGenerationFailed, "Failed to render placeholder.")
		return
	}

	serveWithETag(w, r, data.([]byte), "image/jpeg")
}

// serveWithETag handles HTTP caching headers (ETag, Cache-Control).
// Returns 304 Not Modified if client's cache is valid.
func serveWithETag(w http.ResponseWriter, r *http.Request, data []byte, mimeType string) {
	hash := sha256.Sum256(data)
	etag := `"` + hex.EncodeToString(hash[:16]) + `"`

	w.Header().Set("Content-Type", mimeType)
	w.Header().Set("Cache-Control", "public, max-age=86400")
	w.Header().Set("ETag", etag)

	if match := r.Header.Get("If-None-Match"); match != "" && strings.Contains(match, etag) {
		w.WriteHeader(http.StatusNotModified)
		return
	}

	_, _ = w.Write(data)
}
