package handler

import (
	"errors"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/mcoot/scoreboard/internal/backend"
	"github.com/mcoot/scoreboard/internal/model"
	"github.com/mcoot/scoreboard/internal/services/auth"
	"github.com/mcoot/scoreboard/internal/services/identity"
	"github.com/mcoot/scoreboard/internal/web/middleware"
	"github.com/mcoot/scoreboard/internal/web/templates/layout"
	"github.com/mcoot/scoreboard/internal/web/templates/pages"
)

// AuthHandler handles sign-in and sign-out
type AuthHandler struct {
	resolver *identity.Resolver
	backend  backend.Source
	logger   *slog.Logger
	maxAge   time.Duration
}

// NewAuthHandler creates a new AuthHandler
func NewAuthHandler(resolver *identity.Resolver, src backend.Source, sessionDuration time.Duration, logger *slog.Logger) *AuthHandler {
	return &AuthHandler{
		resolver: resolver,
		backend:  src,
		logger:   logger,
		maxAge:   sessionDuration,
	}
}

// LoginPage renders the login page
func (h *AuthHandler) LoginPage(w http.ResponseWriter, r *http.Request) {
	if middleware.GetUser(r.Context()) != nil {
		// Already signed in
		http.Redirect(w, r, "/", http.StatusSeeOther)
		return
	}

	data := pages.LoginData{
		PageData: layout.PageData{
			Title: "Sign in",
			Flash: middleware.GetFlash(r.Context()),
		},
		Next: r.URL.Query().Get("next"),
	}
	h.renderLogin(w, r, data, http.StatusOK)
}

// Login handles login form submission. The identifier may be a username or an email.
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		h.renderLoginError(w, r, "Invalid form data", "", "")
		return
	}

	identifier := r.FormValue("identifier")
	password := r.FormValue("password")
	next := r.FormValue("next")

	if strings.TrimSpace(identifier) == "" || password == "" {
		h.renderLoginError(w, r, "Username or email and password are required", identifier, next)
		return
	}

	session, err := h.resolver.SignIn(r.Context(), identifier, password)
	if err != nil {
		h.renderLoginError(w, r, h.loginErrorMessage(err), identifier, next)
		return
	}

	h.setSessionCookie(w, session.Token)
	middleware.SetFlash(w, "success", "Signed in as "+session.User.Email)

	// Redirect to original destination or home
	if isLocalPath(next) {
		http.Redirect(w, r, next, http.StatusSeeOther)
	} else {
		http.Redirect(w, r, "/", http.StatusSeeOther)
	}
}

// isLocalPath reports whether next is a path on this site. Browsers read a
// leading "/\" like "//", so backslashes are refused along with
// anything carrying a scheme or host.
func isLocalPath(next string) bool {
	if !strings.HasPrefix(next, "/") || strings.HasPrefix(next, "//") || strings.ContainsRune(next, '\\') {
		return false
	}
	u, err := url.Parse(next)
	return err == nil && u.Scheme == "" && u.Host == "" && u.User == nil
}

// Logout ends the session and clears the cookie
func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	if cookie, err := r.Cookie(middleware.SessionCookieName); err == nil {
		if hs, err := h.backend.Wait(r.Context()); err == nil {
			if client, err := hs.AuthClient(); err == nil {
				client.SignOut(cookie.Value)
			}
		}
	}

	http.SetCookie(w, &http.Cookie{
		Name:     middleware.SessionCookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		Expires:  time.Unix(0, 0),
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})

	middleware.SetFlash(w, "info", "You have been signed out")
	http.Redirect(w, r, "/", http.StatusSeeOther)
}

func (h *AuthHandler) loginErrorMessage(err error) string {
	var ce *model.ConfigError
	switch {
	case errors.Is(err, model.ErrUsernameNotFound), errors.Is(err, auth.ErrInvalidCredentials):
		return "Invalid username, email or password"
	case errors.Is(err, model.ErrNoAssociatedEmail):
		return "That username has no email address on file"
	case errors.As(err, &ce):
		h.logger.Error("backend not configured", slog.String("error", err.Error()))
		return "Sign-in is unavailable right now"
	default:
		h.logger.Error("sign-in failed", slog.String("error", err.Error()))
		return "Sign-in failed, please try again"
	}
}

func (h *AuthHandler) setSessionCookie(w http.ResponseWriter, token string) {
	http.SetCookie(w, &http.Cookie{
		Name:     middleware.SessionCookieName,
		Value:    token,
		Path:     "/",
		MaxAge:   int(h.maxAge.Seconds()),
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
}

func (h *AuthHandler) renderLoginError(w http.ResponseWriter, r *http.Request, errorMsg, identifier, next string) {
	data := pages.LoginData{
		PageData: layout.PageData{
			Title: "Sign in",
		},
		Identifier: identifier,
		Error:      errorMsg,
		Next:       next,
	}
	h.renderLogin(w, r, data, http.StatusUnprocessableEntity)
}

func (h *AuthHandler) renderLogin(w http.ResponseWriter, r *http.Request, data pages.LoginData, status int) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	if err := pages.Login(data).Render(r.Context(), w); err != nil {
		h.logger.Error("failed to render login page", slog.String("error", err.Error()))
	}
}
