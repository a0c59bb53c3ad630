// Package components holds the small fragments swapped into page regions.
package components

import (
	"context"
	"io"

	"github.com/a-h/templ"
)

// Text renders s escaped
func Text(s string) templ.Component {
	return templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		_, err := io.WriteString(w, templ.EscapeString(s))
		return err
	})
}

// writer accumulates the first write error so fragments read top to bottom
type writer struct {
	w   io.Writer
	err error
}

func (w *writer) raw(s string) {
	if w.err == nil {
		_, w.err = io.WriteString(w.w, s)
	}
}

func (w *writer) text(s string) {
	w.raw(templ.EscapeString(s))
}
