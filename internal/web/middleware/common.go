package middleware

import (
	"log/slog"
	"net/http"

	"github.com/mcoot/scoreboard/internal/middleware"
)

// Logging creates logging middleware for the web interface
func Logging(logger *slog.Logger) func(http.Handler) http.Handler {
	return middleware.Logging(logger)
}

// RequestID tags page and fragment requests with X-Request-ID
func RequestID() func(http.Handler) http.Handler {
	return middleware.RequestID()
}

// Recovery creates panic recovery middleware for the web interface.
// htmx fragment requests get a placeholder fragment, page loads an error page.
func Recovery(logger *slog.Logger) func(http.Handler) http.Handler {
	return middleware.Recovery(logger, webPanicHandler)
}

func webPanicHandler(w http.ResponseWriter, r *http.Request, _ any) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusInternalServerError)
	if r.Header.Get("HX-Request") == "true" {
		_, _ = w.Write([]byte(`<p class="placeholder error">Something went wrong.</p>`))
		return
	}
	_, _ = w.Write([]byte(`<!DOCTYPE html>
<html>
<head><title>Error - Scoreboard</title></head>
<body>
<h1>Internal Server Error</h1>
<p>Something went wrong loading the scoreboard. Please try again later.</p>
<p><a href="/">Back to the leaderboard</a></p>
</body>
</html>`))
}
