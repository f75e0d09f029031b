package chi

import (
	"bytes"
	"html/template"
	"net/http"

	"go.uber.org/zap"

	"github.com/kailas-cloud/pagedex/internal/domain/method"
	"github.com/kailas-cloud/pagedex/internal/view"
)

// LyahPage handles GET /lyah.
func (s *Server) LyahPage(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	search := query.Get("search")

	std, err := method.ParseStandard(query.Get("cpp-version"), s.reference.DefaultStandard())
	if err != nil {
		s.handlePageError(w, r, err)
		return
	}

	res, err := s.reference.Search(r.Context(), search, std)
	if err != nil {
		s.handlePageError(w, r, err)
		return
	}

	items := make([]view.MethodItem, len(res.Hits))
	for i := range res.Hits {
		h := &res.Hits[i]
		items[i] = view.MethodItem{
			// Both fragments are escaped before formatting.
			Signature:      template.HTML(h.SignatureHTML),   //nolint:gosec // escaped by method.HighlightSignature
			Description:    template.HTML(h.DescriptionHTML), //nolint:gosec // escaped by method.FormatDescription
			SourceURL:      h.Method.SourceURL,
			InstructionSet: h.Method.InstructionSet,
			Since:          h.Method.Since,
		}
	}

	s.renderPage(w, r, http.StatusOK, view.PageLyah, view.LyahPage{
		Layout:   view.Layout{Title: "lyah"},
		Search:   res.Query.Raw(),
		Versions: versionOptions(std),
		Methods:  items,
		Total:    res.Total,
	})
}

// BlogPage handles GET /blog: the post list without parameters, a post with ?post=<slug>.
func (s *Server) BlogPage(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	switch {
	case len(query) == 0:
		s.blogList(w, r)
	case query.Get("post") != "":
		s.blogPost(w, r, query.Get("post"))
	default:
		s.NotFoundPage(w, r)
	}
}

func (s *Server) blogList(w http.ResponseWriter, r *http.Request) {
	idx, err := s.blog.List(r.Context())
	if err != nil {
		s.handlePageError(w, r, err)
		return
	}

	items := make([]view.PostItem, len(idx))
	for i, e := range idx {
		items[i] = view.PostItem{
			Slug:        e.Slug,
			Title:       e.Title,
			Description: e.Description,
			DateLine:    e.DateLine(),
		}
	}

	s.renderPage(w, r, http.StatusOK, view.PageBlogList, view.BlogListPage{
		Layout: view.Layout{Title: "Blog"},
		Posts:  items,
	})
}

func (s *Server) blogPost(w http.ResponseWriter, r *http.Request, slug string) {
	article, err := s.blog.Get(r.Context(), slug)
	if err != nil {
		s.handlePageError(w, r, err)
		return
	}

	s.renderPage(w, r, http.StatusOK, view.PageBlogPost, view.BlogPostPage{
		Layout:   view.Layout{Title: article.Title},
		DateLine: article.DateLine(),
		Body:     template.HTML(article.HTML), //nolint:gosec // author-controlled post
	})
}

// PortfolioPage handles GET /portfolio.
func (s *Server) PortfolioPage(w http.ResponseWriter, r *http.Request) {
	page, err := s.portfolio.Page(r.Context())
	if err != nil {
		s.handlePageError(w, r, err)
		return
	}

	s.renderPage(w, r, http.StatusOK, view.PagePortfolio, view.PortfolioPage{
		Layout: view.Layout{Title: "Portfolio"},
		Page:   page,
	})
}

// NotFoundPage renders the 404 page.
func (s *Server) NotFoundPage(w http.ResponseWriter, r *http.Request) {
	s.renderPage(w, r, http.StatusNotFound, view.PageNotFound, view.NotFoundPage{
		Layout: view.Layout{Title: "Not found"},
		Path:   r.URL.RequestURI(),
	})
}

func (s *Server) handlePageError(w http.ResponseWriter, r *http.Request, err error) {
	ae := s.classify(err)
	s.logDomainError(r, err, ae)

	if ae.status == http.StatusNotFound {
		s.NotFoundPage(w, r)
		return
	}
	s.renderPage(w, r, ae.status, view.PageError, view.ErrorPage{
		Layout:  view.Layout{Title: http.StatusText(ae.status)},
		Status:  ae.status,
		Message: ae.message,
	})
}

func (s *Server) renderPage(w http.ResponseWriter, r *http.Request, status int, name string, data any) {
	var buf bytes.Buffer
	if err := s.pages.Render(&buf, name, data); err != nil {
		s.requestLogger(r).Error("render page", zap.String("page", name), zap.Error(err))
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Header().Set("Cache-Control", "no-store")
	w.WriteHeader(status)
	_, _ = buf.WriteTo(w)
}

func versionOptions(selected method.Standard) []view.VersionOption {
	stds := method.Standards()
	out := make([]view.VersionOption, len(stds))
	for i, std := range stds {
		out[i] = view.VersionOption{
			Value:    int(std),
			Label:    std.String(),
			Selected: std == selected,
		}
	}
	return out
}
