package html

import (
	"context"
	"io"

	"github.com/a-h/templ"
)

// Component adapts r to templ.Component so elements can be rendered from
// templ views or written straight to an http.ResponseWriter.
func Component(r Renderer) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		if err := ctx.Err(); err != nil {
			return err
		}
		out, err := r.Render()
		if err != nil {
			return err
		}
		_, err = io.WriteString(w, out)
		return err
	})
}
