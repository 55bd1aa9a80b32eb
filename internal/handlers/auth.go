package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"lightlock/internal/appinfo"
	"lightlock/internal/auth"
	"lightlock/internal/session"
	"lightlock/pkg/logger"
	"lightlock/pkg/utils"
)

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type sessionResponse struct {
	User      auth.UserProfile `json:"user"`
	ExpiresAt time.Time        `json:"expires_at"`
}

type demoUser struct {
	Email    string
	Password string
}

type loginPage struct {
	Title     string
	AppName   string
	Email     string
	Alert     string
	DemoUsers []demoUser
}

// signIn runs the credential check and opens a session over a fresh
// snapshot of the catalog.
func (h *Handler) signIn(ctx context.Context, email, password string) (*session.Session, error) {
	profile, err := h.verifier.Verify(ctx, email, password)

	var vErr *auth.ValidationError
	if !errors.As(err, &vErr) {
		appinfo.RecordLogin(err == nil)
	}
	if err != nil {
		return nil, err
	}

	grid, err := h.catalog.Grid(ctx)
	if err != nil {
		return nil, &auth.UnexpectedError{Err: fmt.Errorf("load gallery: %w", err)}
	}
	featured, err := h.catalog.Featured(ctx)
	if err != nil {
		return nil, &auth.UnexpectedError{Err: fmt.Errorf("load featured: %w", err)}
	}

	sess := h.sessions.Create(*profile, grid, featured)
	logger.LogInfo("Signed in %s", profile.Email)
	return sess, nil
}

// loginStatus maps Verify errors onto the HTTP taxonomy.
func loginStatus(err error) (int, string) {
	var vErr *auth.ValidationError
	switch {
	case errors.As(err, &vErr):
		return http.StatusBadRequest, utils.ErrAuthValidationFailed
	case errors.Is(err, auth.ErrAuthenticationFailure):
		return http.StatusUnauthorized, utils.ErrAuthInvalid
	default:
		return http.StatusInternalServerError, utils.ErrServerInternal
	}
}

// LoginPage: GET /
func (h *Handler) LoginPage(w http.ResponseWriter, r *http.Request) {
	if _, ok := h.currentSession(r); ok {
		http.Redirect(w, r, "/gallery", http.StatusSeeOther)
		return
	}
	h.renderLogin(w, http.StatusOK, "", "")
}

func (h *Handler) renderLogin(w http.ResponseWriter, status int, email, alert string) {
	page := loginPage{
		Title:   "Sign in",
		AppName: h.opts.AppName,
		Email:   email,
		Alert:   alert,
	}
	if h.opts.ShowDemo {
		for _, u := range h.verifier.Users() {
			if pw, ok := h.verifier.DemoPassword(u.Email); ok {
				page.DemoUsers = append(page.DemoUsers, demoUser{Email: u.Email, Password: pw})
			}
		}
	}
	h.render(w, status, "login", page)
}

// LoginForm: POST /login
func (h *Handler) LoginForm(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, 4096)
	if err := r.ParseForm(); err != nil {
		h.renderLogin(w, http.StatusBadRequest, "", "Invalid request.")
		return
	}

	email := r.PostForm.Get("email")
	sess, err := h.signIn(r.Context(), email, r.PostForm.Get("password"))
	if err != nil {
		status, _ := loginStatus(err)
		if status == http.StatusInternalServerError {
			logger.LogError("Login failed: %v", err)
		}
		h.renderLogin(w, status, email, auth.UserMessage(err))
		return
	}

	h.setSessionCookie(w, r, sess)
	http.Redirect(w, r, "/gallery", http.StatusSeeOther)
}

// LogoutForm: POST /logout
func (h *Handler) LogoutForm(w http.ResponseWriter, r *http.Request) {
	h.signOut(w, r)
	http.Redirect(w, r, "/", http.StatusSeeOther)
}

func (h *Handler) signOut(w http.ResponseWriter, r *http.Request) {
	if c, err := r.Cookie(h.opts.CookieName); err == nil {
		h.sessions.Destroy(c.Value)
	}
	h.clearCookie(w, r)
}

// APILogin: POST /api/login
func (h *Handler) APILogin(w http.ResponseWriter, r *http.Request) {
	var creds LoginRequest
	r.Body = http.MaxBytesReader(w, r.Body, 1024)
	if err := json.NewDecoder(r.Body).Decode(&creds); err != nil {
		utils.WriteError(w, http.StatusBadRequest, utils.ErrRequestInvalid, "Invalid request body.")
		return
	}

	sess, err := h.signIn(r.Context(), creds.Email, creds.Password)
	if err != nil {
		status, code := loginStatus(err)
		if status == http.StatusInternalServerError {
			logger.LogError("Login failed: %v", err)
		}
		utils.WriteError(w, status, code, auth.UserMessage(err))
		return
	}

	h.setSessionCookie(w, r, sess)
	utils.WriteJSON(w, http.StatusOK, sessionResponse{User: sess.Profile, ExpiresAt: sess.ExpiresAt()})
}

// APILogout: POST /api/logout
func (h *Handler) APILogout(w http.ResponseWriter, r *http.Request) {
	h.signOut(w, r)
	utils.WriteJSON(w, http.StatusOK, map[string]string{
		"status":  "success",
		"action":  "logged_out",
		"message": "Logged out successfully.",
	})
}

// APIMe: GET /api/me
func (h *Handler) APIMe(w http.ResponseWriter, r *http.Request, sess *session.Session) {
	utils.WriteJSON(w, http.StatusOK, sessionResponse{User: sess.Profile, ExpiresAt: sess.ExpiresAt()})
}
