package render

import (
	"bytes"
	"embed"
	"html/template"
	"io"

	"github.com/cockroachdb/errors"
)

//go:embed templates/*.html
var templateFS embed.FS

// Renderer turns views into HTML.
type Renderer struct {
	tmpl *template.Template
}

func New() (*Renderer, error) {
	t, err := template.ParseFS(templateFS, "templates/*.html")
	if err != nil {
		return nil, errors.Wrap(err, "parse templates")
	}
	return &Renderer{tmpl: t}, nil
}

// Render writes the full board page. Output is buffered so a template
// error never leaves a half-written page.
func (r *Renderer) Render(w io.Writer, v View) error {
	return r.execute(w, "board", v)
}

// NoticePage is shown when an apply control has nowhere to go.
type NoticePage struct {
	Title  string
	Notice string
}

func (r *Renderer) RenderNotice(w io.Writer, p NoticePage) error {
	return r.execute(w, "notice", p)
}

func (r *Renderer) execute(w io.Writer, name string, data any) error {
	var buf bytes.Buffer
	if err := r.tmpl.ExecuteTemplate(&buf, name, data); err != nil {
		return errors.Wrapf(err, "render %s", name)
	}
	_, err := buf.WriteTo(w)
	return err
}
