// Package view renders the site's HTML pages from embedded templates.
package view

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"io"
	"sync"
)

//go:embed templates/*.html
var templateFS embed.FS

// Page template names.
const (
	PageLyah      = "lyah"
	PageBlogList  = "blog_list"
	PageBlogPost  = "blog_post"
	PagePortfolio = "portfolio"
	PageNotFound  = "not_found"
	PageError     = "error"
)

var pages = []string{PageLyah, PageBlogList, PageBlogPost, PagePortfolio, PageNotFound, PageError}

// Renderer executes page templates. Each page is parsed together with the shared layout.
// Safe for concurrent use.
type Renderer struct {
	templates map[string]*template.Template
	bufPool   sync.Pool
}

// New parses every page template.
func New() (*Renderer, error) {
	funcs := template.FuncMap{
		// trusted marks author-controlled content as safe HTML.
		"trusted": func(s string) template.HTML { return template.HTML(s) }, //nolint:gosec // author content
	}

	r := &Renderer{
		templates: make(map[string]*template.Template, len(pages)),
		bufPool:   sync.Pool{New: func() any { return new(bytes.Buffer) }},
	}
	for _, name := range pages {
		t, err := template.New("layout.html").Funcs(funcs).
			ParseFS(templateFS, "templates/layout.html", "templates/"+name+".html")
		if err != nil {
			return nil, fmt.Errorf("parse template %s: %w", name, err)
		}
		r.templates[name] = t
	}
	return r, nil
}

// Render executes the named page into w. Nothing is written when execution fails.
func (r *Renderer) Render(w io.Writer, name string, data any) error {
	t, ok := r.templates[name]
	if !ok {
		return fmt.Errorf("unknown page %q", name)
	}

	buf, _ := r.bufPool.Get().(*bytes.Buffer)
	buf.Reset()
	defer r.bufPool.Put(buf)

	if err := t.ExecuteTemplate(buf, "layout.html", data); err != nil {
		return fmt.Errorf("execute template %s: %w", name, err)
	}
	if _, err := buf.WriteTo(w); err != nil {
		return fmt.Errorf("write page %s: %w", name, err)
	}
	return nil
}
