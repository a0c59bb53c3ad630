package pages

import (
	"context"
	"io"

	"github.com/a-h/templ"

	"github.com/mcoot/scoreboard/internal/web/templates/layout"
)

// LoginData is the sign-in form
type LoginData struct {
	layout.PageData
	Identifier string
	Error      string
	Next       string
}

// Login renders the sign-in form. The identifier may be a username or an email.
func Login(data LoginData) templ.Component {
	return layout.Base(data.PageData, templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		html := `<section class="login"><h1>Sign in</h1>`
		if data.Error != "" {
			html += `<p class="error">` + templ.EscapeString(data.Error) + `</p>`
		}
		html += `<form method="post" action="/login">` +
			`<label for="identifier">Username or email</label>` +
			`<input type="text" id="identifier" name="identifier" value="` + templ.EscapeString(data.Identifier) + `" required>` +
			`<label for="password">Password</label>` +
			`<input type="password" id="password" name="password" required>`
		if data.Next != "" {
			html += `<input type="hidden" name="next" value="` + templ.EscapeString(data.Next) + `">`
		}
		html += `<button type="submit">Sign in</button></form></section>`
		_, err := io.WriteString(w, html)
		return err
	}))
}
