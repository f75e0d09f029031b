// Package markdown turns blog post sources into HTML fragments.
package markdown

import (
	"bytes"
	"fmt"
	"regexp"
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/renderer/html"
)

var anchorRe = regexp.MustCompile(`<a href="([^"]*)"([^>]*)>`)

// Renderer converts Markdown to HTML and applies the site's post-processing:
// four-space indents become tabs and every link opens in a new tab.
type Renderer struct {
	md goldmark.Markdown
}

// New creates a renderer. Raw HTML in sources is passed through.
func New() *Renderer {
	return &Renderer{
		md: goldmark.New(
			goldmark.WithExtensions(extension.GFM),
			goldmark.WithRendererOptions(html.WithUnsafe()),
		),
	}
}

// Render converts src to an HTML fragment.
func (r *Renderer) Render(src []byte) (string, error) {
	var buf bytes.Buffer
	if err := r.md.Convert(src, &buf); err != nil {
		return "", fmt.Errorf("convert markdown: %w", err)
	}
	return postProcess(buf.String()), nil
}

func postProcess(out string) string {
	out = strings.ReplaceAll(out, "    ", "\t")
	return anchorRe.ReplaceAllString(out, `<a href="$1"$2 target="_blank" class="external">`)
}
