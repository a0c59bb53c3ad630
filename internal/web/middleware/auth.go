package middleware

import (
	"context"
	"net/http"

	"github.com/mcoot/scoreboard/internal/backend"
	"github.com/mcoot/scoreboard/internal/model"
)

type contextKey string

const (
	userContextKey contextKey = "user"

	// SessionCookieName holds the sign-in session token
	SessionCookieName = "session"
)

// GetUser retrieves the signed-in user from the request context
// Returns nil if nobody is signed in
func GetUser(ctx context.Context) *model.AuthUser {
	user, _ := ctx.Value(userContextKey).(*model.AuthUser)
	return user
}

// OptionalAuth returns middleware that looks up the session but doesn't require it
// Sets the user in context if signed in, nil otherwise
func OptionalAuth(src backend.Source) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			user := getUserFromSession(r, src)
			ctx := context.WithValue(r.Context(), userContextKey, user)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func getUserFromSession(r *http.Request, src backend.Source) *model.AuthUser {
	cookie, err := r.Cookie(SessionCookieName)
	if err != nil || cookie.Value == "" {
		return nil
	}

	h, err := src.Wait(r.Context())
	if err != nil {
		return nil
	}
	client, err := h.AuthClient()
	if err != nil {
		return nil
	}

	return client.CurrentUser(cookie.Value)
}
