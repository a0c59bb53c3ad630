// Package layout holds the document shell shared by every page.
package layout

import (
	"context"
	"io"

	"github.com/a-h/templ"

	"github.com/mcoot/scoreboard/internal/model"
)

// FlashMessage is a one-shot notice carried across a redirect
type FlashMessage struct {
	Type    string
	Message string
}

// PageData is common to all full pages
type PageData struct {
	Title string
	User  *model.AuthUser
	Flash *FlashMessage
}

// Base wraps body in the HTML document, navigation and flash banner
func Base(data PageData, body templ.Component) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		head := `<!DOCTYPE html><html lang="en"><head><meta charset="utf-8">` +
			`<meta name="viewport" content="width=device-width, initial-scale=1">` +
			`<title>` + templ.EscapeString(data.Title) + ` - Scoreboard</title>` +
			`<link rel="stylesheet" href="/static/style.css">` +
			`<script src="https://unpkg.com/htmx.org@2.0.4"></script>` +
			`</head><body>`
		if _, err := io.WriteString(w, head); err != nil {
			return err
		}
		if err := nav(data.User).Render(ctx, w); err != nil {
			return err
		}
		if data.Flash != nil {
			banner := `<div class="flash flash-` + templ.EscapeString(data.Flash.Type) + `">` +
				templ.EscapeString(data.Flash.Message) + `</div>`
			if _, err := io.WriteString(w, banner); err != nil {
				return err
			}
		}
		if _, err := io.WriteString(w, `<main>`); err != nil {
			return err
		}
		if err := body.Render(ctx, w); err != nil {
			return err
		}
		_, err := io.WriteString(w, `</main></body></html>`)
		return err
	})
}

func nav(user *model.AuthUser) templ.Component {
	return templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		html := `<nav><a href="/">Leaderboard</a> <a href="/stats">My Stats</a> `
		if user != nil {
			html += `<span class="user">` + templ.EscapeString(user.Email) + `</span> ` +
				`<form method="post" action="/logout" class="inline"><button type="submit">Sign out</button></form>`
		} else {
			html += `<a href="/login">Sign in</a>`
		}
		html += `</nav>`
		_, err := io.WriteString(w, html)
		return err
	})
}
