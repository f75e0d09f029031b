package chi

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/oapi-codegen/runtime"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/kailas-cloud/pagedex/internal/domain/method"
	"github.com/kailas-cloud/pagedex/internal/domain/post"
	healthuc "github.com/kailas-cloud/pagedex/internal/usecase/health"
	referenceuc "github.com/kailas-cloud/pagedex/internal/usecase/reference"
)

// MethodResponse is one ranked reference entry.
type MethodResponse struct {
	Signature          string `json:"signature"`
	FormattedSignature string `json:"formattedSignature"`
	SignatureHTML      string `json:"signatureHtml"`
	Description        string `json:"description"`
	DescriptionHTML    string `json:"descriptionHtml"`
	SourceURL          string `json:"sourceUrl"`
	InstructionSet     string `json:"instructionSet,omitempty"`
	Since              string `json:"since"`
	Score              int    `json:"score"`
}

// MethodListResponse is the outcome of a reference search.
type MethodListResponse struct {
	Query    string           `json:"query"`
	RawQuery string           `json:"rawQuery"`
	Standard int              `json:"standard"`
	Total    int              `json:"total"`
	Count    int              `json:"count"`
	Items    []MethodResponse `json:"items"`
}

// PostListResponse lists the blog posts, newest first.
type PostListResponse struct {
	Items []post.Entry `json:"items"`
}

// HealthResponse reports component health.
type HealthResponse struct {
	Status string            `json:"status"`
	Checks map[string]string `json:"checks"`
}

// PurgeResponse reports how many cached documents were dropped.
type PurgeResponse struct {
	Purged int64 `json:"purged"`
}

// HealthCheck handles GET /health.
func (s *Server) HealthCheck(w http.ResponseWriter, r *http.Request) {
	report := s.health.Check(r.Context())

	checks := make(map[string]string, len(report.Checks))
	for k, v := range report.Checks {
		checks[k] = string(v)
	}

	httpStatus := http.StatusOK
	if report.Status == healthuc.Unhealthy {
		httpStatus = http.StatusServiceUnavailable
	}

	writeJSON(w, httpStatus, HealthResponse{
		Status: string(report.Status),
		Checks: checks,
	})
}

// Metrics handles GET /metrics.
func (s *Server) Metrics(w http.ResponseWriter, r *http.Request) {
	promhttp.Handler().ServeHTTP(w, r)
}

// SearchMethods handles GET /api/methods.
func (s *Server) SearchMethods(w http.ResponseWriter, r *http.Request) {
	var q, rawStd *string
	if err := runtime.BindQueryParameter("form", true, false, "q", r.URL.Query(), &q); err != nil {
		writeError(w, http.StatusBadRequest, codeBadRequest, "invalid query parameter q")
		return
	}
	if err := runtime.BindQueryParameter("form", true, false, "standard", r.URL.Query(), &rawStd); err != nil {
		writeError(w, http.StatusBadRequest, codeBadRequest, "invalid query parameter standard")
		return
	}

	std, err := method.ParseStandard(deref(rawStd), s.reference.DefaultStandard())
	if err != nil {
		s.handleDomainError(w, r, err)
		return
	}

	res, err := s.reference.Search(r.Context(), deref(q), std)
	if err != nil {
		s.handleDomainError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, methodListToResponse(&res))
}

// ListPosts handles GET /api/posts.
func (s *Server) ListPosts(w http.ResponseWriter, r *http.Request) {
	idx, err := s.blog.List(r.Context())
	if err != nil {
		s.handleDomainError(w, r, err)
		return
	}

	items := []post.Entry(idx)
	if items == nil {
		items = []post.Entry{}
	}
	writeJSON(w, http.StatusOK, PostListResponse{Items: items})
}

// GetPost handles GET /api/posts/{slug}.
func (s *Server) GetPost(w http.ResponseWriter, r *http.Request) {
	article, err := s.blog.Get(r.Context(), chi.URLParam(r, "slug"))
	if err != nil {
		s.handleDomainError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, article)
}

// GetPortfolio handles GET /api/portfolio.
func (s *Server) GetPortfolio(w http.ResponseWriter, r *http.Request) {
	page, err := s.portfolio.Page(r.Context())
	if err != nil {
		s.handleDomainError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, page)
}

// PurgeCache handles POST /admin/cache/purge.
func (s *Server) PurgeCache(w http.ResponseWriter, r *http.Request) {
	if s.cache == nil {
		writeError(w, http.StatusConflict, codeCacheDisabled, "document cache is disabled")
		return
	}

	n, err := s.cache.Purge(r.Context())
	if err != nil {
		s.handleDomainError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, PurgeResponse{Purged: n})
}

func methodListToResponse(res *referenceuc.Result) MethodListResponse {
	items := make([]MethodResponse, len(res.Hits))
	for i := range res.Hits {
		h := &res.Hits[i]
		items[i] = MethodResponse{
			Signature:          h.Method.Signature,
			FormattedSignature: h.Signature,
			SignatureHTML:      h.SignatureHTML,
			Description:        h.Method.Description,
			DescriptionHTML:    h.DescriptionHTML,
			SourceURL:          h.Method.SourceURL,
			InstructionSet:     h.Method.InstructionSet,
			Since:              h.Method.Since,
			Score:              h.Score,
		}
	}
	return MethodListResponse{
		Query:    res.Query.Text(),
		RawQuery: res.Query.Raw(),
		Standard: int(res.Standard),
		Total:    res.Total,
		Count:    len(items),
		Items:    items,
	}
}

func deref(p *string) string {
	if p == nil {
		return ""
	}
	return *p
}
