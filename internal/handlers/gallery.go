package handlers

import (
	"html/template"
	"net/http"
	"net/url"
	"strings"

	"lightlock/internal/appinfo"
	"lightlock/internal/auth"
	"lightlock/internal/gallery"
	"lightlock/internal/session"
	"lightlock/pkg/utils"
)

// maxViewportWidth bounds the ?w= hint.
const maxViewportWidth = 10000

type categoryLink struct {
	gallery.Category
	Active bool
}

type galleryPage struct {
	Title   string
	AppName string
	User    auth.UserProfile

	Category    string
	Query       string
	FilterQuery template.URL
	Categories  []categoryLink

	Total   int
	Columns [][]gallery.ImageRecord

	Carousel           gallery.Snapshot
	Viewer             gallery.Snapshot
	ControlsVisible    bool
	ControlsIdleMillis int64
}

// filterFrom reads ?category= and ?q=. Unknown categories become "all".
func filterFrom(r *http.Request) session.Filter {
	q := r.URL.Query()
	category := q.Get("category")
	if !gallery.IsCategory(category) {
		category = gallery.CategoryAll
	}
	return session.Filter{Category: category, Query: strings.TrimSpace(q.Get("q"))}
}

func encodeFilter(f session.Filter) string {
	v := url.Values{}
	v.Set("category", f.Category)
	if f.Query != "" {
		v.Set("q", f.Query)
	}
	return v.Encode()
}

// applyFilter makes the filtered list the one the viewer navigates.
func applyFilter(sess *session.Session, f session.Filter) []gallery.ImageRecord {
	images := gallery.Filter(sess.Grid(), f.Category, f.Query)
	sess.UseList(f, images)
	return images
}

// GalleryPage: GET /gallery?category=&q=&w=
func (h *Handler) GalleryPage(w http.ResponseWriter, r *http.Request, sess *session.Session) {
	f := filterFrom(r)
	images := applyFilter(sess, f)

	width := utils.ParseInt(r.URL.Query().Get("w"), 0, 0, maxViewportWidth)
	columns := gallery.ColumnCount(width, h.opts.Columns)

	links := make([]categoryLink, 0, 5)
	for _, c := range gallery.Categories() {
		links = append(links, categoryLink{Category: c, Active: c.ID == f.Category})
	}

	page := galleryPage{
		Title:              "Gallery",
		AppName:            h.opts.AppName,
		User:               sess.Profile,
		Category:           f.Category,
		Query:              f.Query,
		FilterQuery:        template.URL(encodeFilter(f)),
		Categories:         links,
		Total:              len(images),
		Columns:            gallery.Distribute(images, columns),
		Carousel:           sess.Carousel.Snapshot(),
		Viewer:             sess.Viewer.Snapshot(),
		ControlsVisible:    sess.Controls.Visible(),
		ControlsIdleMillis: h.opts.ControlsIdle.Milliseconds(),
	}
	h.render(w, http.StatusOK, "gallery", page)
}

// OpenImagePage: GET /gallery/images/{id}?category=&q=
// Unknown ids leave the viewer as it was.
func (h *Handler) OpenImagePage(w http.ResponseWriter, r *http.Request, sess *session.Session) {
	f := filterFrom(r)
	applyFilter(sess, f)

	if id, err := utils.ConvertToInt(r.PathValue("id"), "image id"); err == nil {
		if sess.Viewer.Open(id) {
			appinfo.RecordViewerMove()
		}
	}
	http.Redirect(w, r, "/gallery?"+encodeFilter(f), http.StatusSeeOther)
}

// ViewerForm: POST /gallery/viewer/{next,prev,close}
func (h *Handler) ViewerForm(w http.ResponseWriter, r *http.Request, sess *session.Session) {
	if !moveViewer(sess, r.PathValue("action")) {
		http.NotFound(w, r)
		return
	}
	http.Redirect(w, r, "/gallery?"+encodeFilter(sess.Filter()), http.StatusSeeOther)
}

// CarouselForm: POST /gallery/carousel/{next,prev}
func (h *Handler) CarouselForm(w http.ResponseWriter, r *http.Request, sess *session.Session) {
	if !moveCarousel(sess, r.PathValue("action")) {
		http.NotFound(w, r)
		return
	}
	http.Redirect(w, r, "/gallery?"+encodeFilter(sess.Filter()), http.StatusSeeOther)
}

// moveViewer applies a named transition. It reports false for unknown
// actions; a transition that is a no-op still counts as known.
func moveViewer(sess *session.Session, action string) bool {
	moved := false
	switch action {
	case "next":
		moved = sess.Viewer.Next()
	case "prev":
		moved = sess.Viewer.Previous()
	case "close":
		moved = sess.Viewer.Close()
	default:
		return false
	}
	if moved {
		appinfo.RecordViewerMove()
	}
	return true
}

func moveCarousel(sess *session.Session, action string) bool {
	moved := false
	switch action {
	case "next":
		moved = sess.Carousel.Next()
	case "prev":
		moved = sess.Carousel.Previous()
	default:
		return false
	}
	if moved {
		appinfo.RecordViewerMove()
	}
	return true
}
