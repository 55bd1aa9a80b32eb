// Package handlers serves the gallery's HTML pages and its JSON API.
package handlers

import (
	"context"
	"fmt"
	"html/template"
	"net/http"
	"strings"
	"time"

	"golang.org/x/sync/singleflight"

	"lightlock"
	"lightlock/internal/auth"
	"lightlock/internal/gallery"
	"lightlock/internal/middleware"
	"lightlock/internal/session"
	"lightlock/pkg/cache"
	"lightlock/pkg/logger"
	"lightlock/pkg/utils"
)

// Catalog is the read side of the image catalog.
type Catalog interface {
	Grid(ctx context.Context) ([]gallery.ImageRecord, error)
	Featured(ctx context.Context) ([]gallery.ImageRecord, error)
	Get(ctx context.Context, id int) (gallery.ImageRecord, error)
	Count(ctx context.Context) (map[string]int64, error)
}

// Options are the presentation and cookie settings.
type Options struct {
	AppName      string
	CookieName   string
	SecureCookie bool
	Columns      int
	ControlsIdle time.Duration
	ShowDemo     bool
}

type Handler struct {
	verifier     *auth.Verifier
	sessions     *session.Store
	catalog      Catalog
	cache        *cache.MemoryCache
	loginLimiter *middleware.RateLimiter
	pages        *template.Template
	opts         Options

	// requestGroup collapses concurrent renders of the same placeholder.
	requestGroup singleflight.Group
}

func New(verifier *auth.Verifier, sessions *session.Store, catalog Catalog, c *cache.MemoryCache, loginLimiter *middleware.RateLimiter, opts Options) (*Handler, error) {
	pages, err := parsePages()
	if err != nil {
		return nil, err
	}

	if opts.CookieName == "" {
		opts.CookieName = "lightlock_session"
	}
	if opts.Columns < 1 {
		opts.Columns = 4
	}
	if opts.ControlsIdle <= 0 {
		opts.ControlsIdle = gallery.DefaultControlsIdle
	}

	return &Handler{
		verifier:     verifier,
		sessions:     sessions,
		catalog:      catalog,
		cache:        c,
		loginLimiter: loginLimiter,
		pages:        pages,
		opts:         opts,
	}, nil
}

func parsePages() (*template.Template, error) {
	funcs := template.FuncMap{
		"inc": func(i int) int { return i + 1 },
	}
	pages, err := template.New("pages").Funcs(funcs).ParseFS(lightlock.WebAssets, "web/*.html")
	if err != nil {
		return nil, fmt.Errorf("failed to parse templates: %w", err)
	}
	return pages, nil
}

// Routes registers every endpoint on a fresh mux.
func (h *Handler) Routes() *http.ServeMux {
	mux := http.NewServeMux()

	// Public
	mux.HandleFunc("GET /{$}", h.LoginPage)
	mux.HandleFunc("POST /login", h.limitLogin(h.LoginForm))
	mux.HandleFunc("POST /logout", h.LogoutForm)
	mux.HandleFunc("GET /placeholder/{id}", h.Placeholder)
	mux.HandleFunc("GET /healthz", h.Health)

	// Gallery pages
	mux.HandleFunc("GET /gallery", h.withSession(h.GalleryPage))
	mux.HandleFunc("GET /gallery/images/{id}", h.withSession(h.OpenImagePage))
	mux.HandleFunc("POST /gallery/viewer/{action}", h.withSession(h.ViewerForm))
	mux.HandleFunc("POST /gallery/carousel/{action}", h.withSession(h.CarouselForm))

	// JSON API
	mux.HandleFunc("POST /api/login", h.limitLogin(h.APILogin))
	mux.HandleFunc("POST /api/logout", h.APILogout)
	mux.HandleFunc("GET /api/me", h.withSession(h.APIMe))
	mux.HandleFunc("GET /api/categories", h.APICategories)
	mux.HandleFunc("GET /api/images", h.withSession(h.APIImages))
	mux.HandleFunc("GET /api/viewer", h.withSession(h.APIViewer))
	mux.HandleFunc("POST /api/viewer/open/{id}", h.withSession(h.APIViewerOpen))
	mux.HandleFunc("POST /api/viewer/activity", h.withSession(h.APIViewerActivity))
	mux.HandleFunc("POST /api/viewer/loaded", h.withSession(h.APIViewerLoaded))
	mux.HandleFunc("POST /api/viewer/{action}", h.withSession(h.APIViewerMove))
	mux.HandleFunc("GET /api/carousel", h.withSession(h.APICarousel))
	mux.HandleFunc("POST /api/carousel/{action}", h.withSession(h.APICarouselMove))
	mux.HandleFunc("GET /api/stats", h.withSession(h.APIStats))

	return mux
}

// sessionHandler is an endpoint that needs a signed-in user.
type sessionHandler func(w http.ResponseWriter, r *http.Request, sess *session.Session)

// currentSession is the one place a request is checked for a live session.
func (h *Handler) currentSession(r *http.Request) (*session.Session, bool) {
	c, err := r.Cookie(h.opts.CookieName)
	if err != nil {
		return nil, false
	}
	return h.sessions.Get(c.Value)
}

// withSession protects routes. API clients get a 401 JSON body, browsers
// are sent back to the login page.
func (h *Handler) withSession(next sessionHandler) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		sess, ok := h.currentSession(r)
		if !ok {
			h.clearCookie(w, r)
			if isAPI(r) {
				utils.WriteError(w, http.StatusUnauthorized, utils.ErrAuthRequired, "Session expired or invalid.")
				return
			}
			http.Redirect(w, r, "/", http.StatusSeeOther)
			return
		}
		next(w, r, sess)
	}
}

func (h *Handler) limitLogin(next http.HandlerFunc) http.HandlerFunc {
	if h.loginLimiter == nil {
		return next
	}
	return func(w http.ResponseWriter, r *http.Request) {
		if !h.loginLimiter.Allow(r) {
			if isAPI(r) {
				utils.WriteError(w, http.StatusTooManyRequests, h.loginLimiter.Code, h.loginLimiter.Message)
				return
			}
			h.renderLogin(w, http.StatusTooManyRequests, r.PostFormValue("email"), h.loginLimiter.Message)
			return
		}
		next(w, r)
	}
}

func isAPI(r *http.Request) bool {
	return strings.HasPrefix(r.URL.Path, "/api/")
}

func (h *Handler) setSessionCookie(w http.ResponseWriter, r *http.Request, sess *session.Session) {
	http.SetCookie(w, &http.Cookie{
		Name:     h.opts.CookieName,
		Value:    sess.Token,
		Path:     "/",
		HttpOnly: true,
		Secure:   h.opts.SecureCookie || r.TLS != nil,
		SameSite: http.SameSiteLaxMode,
		Expires:  sess.ExpiresAt(),
	})
}

func (h *Handler) clearCookie(w http.ResponseWriter, r *http.Request) {
	if _, err := r.Cookie(h.opts.CookieName); err != nil {
		return
	}
	http.SetCookie(w, &http.Cookie{
		Name:     h.opts.CookieName,
		Value:    "",
		Path:     "/",
		HttpOnly: true,
		Expires:  time.Unix(0, 0),
		MaxAge:   -1,
	})
}

func (h *Handler) render(w http.ResponseWriter, status int, name string, data any) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Header().Set("Cache-Control", "no-store")
	w.WriteHeader(status)
	if err := h.pages.ExecuteTemplate(w, name, data); err != nil {
		logger.LogError("Template Error (%s): %v", name, err)
	}
}

// Health: GET /healthz
func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	utils.WriteJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}
