package handlers

import (
	"net/http"

	"lightlock/internal/appinfo"
	"lightlock/internal/gallery"
	"lightlock/internal/session"
	"lightlock/pkg/cache"
	"lightlock/pkg/utils"
)

type imagesResponse struct {
	Category string                `json:"category"`
	Query    string                `json:"query"`
	Columns  int                   `json:"columns"`
	Total    int                   `json:"total"`
	Images   []gallery.ImageRecord `json:"images"`
}

type controlsState struct {
	Visible bool `json:"visible"`
	Loading bool `json:"loading"`
}

type viewerResponse struct {
	gallery.Snapshot
	Changed  bool          `json:"changed"`
	Controls controlsState `json:"controls"`
}

type carouselResponse struct {
	gallery.Snapshot
	Changed bool `json:"changed"`
}

type statsResponse struct {
	appinfo.Snapshot
	ActiveSessions int              `json:"active_sessions"`
	Catalog        map[string]int64 `json:"catalog"`
	Cache          *cache.Stats     `json:"cache,omitempty"`
}

func viewerState(sess *session.Session, changed bool) viewerResponse {
	return viewerResponse{
		Snapshot: sess.Viewer.Snapshot(),
		Changed:  changed,
		Controls: controlsState{
			Visible: sess.Controls.Visible(),
			Loading: sess.Controls.Loading(),
		},
	}
}

// APICategories: GET /api/categories
func (h *Handler) APICategories(w http.ResponseWriter, r *http.Request) {
	utils.WriteJSON(w, http.StatusOK, gallery.Categories())
}

// APIImages: GET /api/images?category=&q=&w=
// Listing is read-only; the viewer list only changes on open.
func (h *Handler) APIImages(w http.ResponseWriter, r *http.Request, sess *session.Session) {
	f := filterFrom(r)
	images := gallery.Filter(sess.Grid(), f.Category, f.Query)
	width := utils.ParseInt(r.URL.Query().Get("w"), 0, 0, maxViewportWidth)

	utils.WriteJSON(w, http.StatusOK, imagesResponse{
		Category: f.Category,
		Query:    f.Query,
		Columns:  gallery.ColumnCount(width, h.opts.Columns),
		Total:    len(images),
		Images:   images,
	})
}

// APIViewer: GET /api/viewer
func (h *Handler) APIViewer(w http.ResponseWriter, r *http.Request, sess *session.Session) {
	utils.WriteJSON(w, http.StatusOK, viewerState(sess, false))
}

// APIViewerOpen: POST /api/viewer/open/{id}?category=&q=
func (h *Handler) APIViewerOpen(w http.ResponseWriter, r *http.Request, sess *session.Session) {
	id, err := utils.ConvertToInt(r.PathValue("id"), "image id")
	if err != nil {
		utils.WriteError(w, http.StatusBadRequest, utils.ErrRequestInvalid, err.Error())
		return
	}

	applyFilter(sess, filterFrom(r))
	changed := sess.Viewer.Open(id)
	if changed {
		appinfo.RecordViewerMove()
	}
	utils.WriteJSON(w, http.StatusOK, viewerState(sess, changed))
}

// APIViewerMove: POST /api/viewer/{next,prev,close}
func (h *Handler) APIViewerMove(w http.ResponseWriter, r *http.Request, sess *session.Session) {
	before := sess.Viewer.Snapshot()
	if !moveViewer(sess, r.PathValue("action")) {
		utils.WriteError(w, http.StatusNotFound, utils.ErrRequestNotFound, "Unknown viewer action.")
		return
	}
	after := viewerState(sess, false)
	after.Changed = before.State != after.State || before.Index != after.Index
	utils.WriteJSON(w, http.StatusOK, after)
}

// APIViewerActivity: POST /api/viewer/activity
func (h *Handler) APIViewerActivity(w http.ResponseWriter, r *http.Request, sess *session.Session) {
	sess.Controls.Touch()
	utils.WriteJSON(w, http.StatusOK, viewerState(sess, false).Controls)
}

// APIViewerLoaded: POST /api/viewer/loaded
func (h *Handler) APIViewerLoaded(w http.ResponseWriter, r *http.Request, sess *session.Session) {
	sess.Controls.SetLoading(false)
	utils.WriteJSON(w, http.StatusOK, viewerState(sess, false).Controls)
}

// APICarousel: GET /api/carousel
func (h *Handler) APICarousel(w http.ResponseWriter, r *http.Request, sess *session.Session) {
	utils.WriteJSON(w, http.StatusOK, carouselResponse{Snapshot: sess.Carousel.Snapshot()})
}

// APICarouselMove: POST /api/carousel/{next,prev}
func (h *Handler) APICarouselMove(w http.ResponseWriter, r *http.Request, sess *session.Session) {
	before := sess.Carousel.Snapshot()
	if !moveCarousel(sess, r.PathValue("action")) {
		utils.WriteError(w, http.StatusNotFound, utils.ErrRequestNotFound, "Unknown carousel action.")
		return
	}
	after := sess.Carousel.Snapshot()
	utils.WriteJSON(w, http.StatusOK, carouselResponse{Snapshot: after, Changed: before.Index != after.Index})
}

// APIStats: GET /api/stats
func (h *Handler) APIStats(w http.ResponseWriter, r *http.Request, sess *session.Session) {
	counts, err := h.catalog.Count(r.Context())
	if err != nil {
		utils.WriteError(w, http.StatusInternalServerError, utils.ErrServerInternal, "Failed to read catalog stats.")
		return
	}

	resp := statsResponse{
		Snapshot:       appinfo.Current(),
		ActiveSessions: h.sessions.Count(),
		Catalog:        counts,
	}
	if h.cache != nil {
		s := h.cache.Stats()
		resp.Cache = &s
	}
	utils.WriteJSON(w, http.StatusOK, resp)
}
