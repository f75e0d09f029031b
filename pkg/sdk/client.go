package pagedex

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"
)

const (
	defaultTimeout   = 10 * time.Second
	defaultUserAgent = "pagedex-go-sdk"
	maxErrorBody     = 64 << 10
)

// Client is the pagedex SDK entry point. Safe for concurrent use.
type Client struct {
	base      *url.URL
	http      *http.Client
	apiKey    string
	userAgent string
	obs       *observer
}

// New creates a client for the server at baseURL.
func New(baseURL string, opts ...Option) (*Client, error) {
	cfg := &clientConfig{
		timeout:   defaultTimeout,
		userAgent: defaultUserAgent,
	}
	for _, o := range opts {
		o.apply(cfg)
	}

	base, err := url.Parse(baseURL)
	if err != nil {
		return nil, fmt.Errorf("pagedex: parse base url: %w", err)
	}
	if base.Scheme != "http" && base.Scheme != "https" {
		return nil, fmt.Errorf("pagedex: base url must be http or https, got %q", baseURL)
	}
	base.Path = strings.TrimSuffix(base.Path, "/")

	hc := cfg.httpClient
	if hc == nil {
		hc = &http.Client{Timeout: cfg.timeout}
	}

	obs, err := newObserver(cfg.logger, cfg.metricsReg)
	if err != nil {
		return nil, err
	}

	return &Client{
		base:      base,
		http:      hc,
		apiKey:    cfg.apiKey,
		userAgent: cfg.userAgent,
		obs:       obs,
	}, nil
}

// Health reports server health. A 503 answer still yields a status.
func (c *Client) Health(ctx context.Context) (hs HealthStatus, err error) {
	start := time.Now()
	defer func() { c.obs.observe("health", start, err) }()

	err = c.do(ctx, http.MethodGet, "/health", nil, &hs, http.StatusOK, http.StatusServiceUnavailable)
	return hs, err
}

// SearchMethods ranks the method reference against query. An empty query lists every method.
func (c *Client) SearchMethods(ctx context.Context, query string, opts ...SearchOption) (ml MethodList, err error) {
	start := time.Now()
	defer func() { c.obs.observe("search_methods", start, err) }()

	var p searchParams
	for _, o := range opts {
		o(&p)
	}

	q := url.Values{}
	if query != "" {
		q.Set("q", query)
	}
	if p.standard != 0 {
		q.Set("standard", strconv.Itoa(p.standard))
	}

	err = c.do(ctx, http.MethodGet, "/api/methods", q, &ml, http.StatusOK)
	return ml, err
}

// Posts lists the blog posts, newest first.
func (c *Client) Posts(ctx context.Context) (_ []Post, err error) {
	start := time.Now()
	defer func() { c.obs.observe("list_posts", start, err) }()

	var resp struct {
		Items []Post `json:"items"`
	}
	if err = c.do(ctx, http.MethodGet, "/api/posts", nil, &resp, http.StatusOK); err != nil {
		return nil, err
	}
	return resp.Items, nil
}

// Post returns one post with its rendered body. Unknown slugs yield ErrPostNotFound.
func (c *Client) Post(ctx context.Context, slug string) (a Article, err error) {
	start := time.Now()
	defer func() { c.obs.observe("get_post", start, err) }()

	err = c.do(ctx, http.MethodGet, "/api/posts/"+slug, nil, &a, http.StatusOK)
	return a, err
}

// Portfolio returns the projected portfolio.
func (c *Client) Portfolio(ctx context.Context) (p Portfolio, err error) {
	start := time.Now()
	defer func() { c.obs.observe("get_portfolio", start, err) }()

	err = c.do(ctx, http.MethodGet, "/api/portfolio", nil, &p, http.StatusOK)
	return p, err
}

// PurgeCache drops every cached document and returns how many were removed.
// Requires WithAPIKey.
func (c *Client) PurgeCache(ctx context.Context) (_ int64, err error) {
	start := time.Now()
	defer func() { c.obs.observe("purge_cache", start, err) }()

	var resp struct {
		Purged int64 `json:"purged"`
	}
	if err = c.do(ctx, http.MethodPost, "/admin/cache/purge", nil, &resp, http.StatusOK); err != nil {
		return 0, err
	}
	return resp.Purged, nil
}

func (c *Client) do(ctx context.Context, method, path string, query url.Values, out any, okStatus ...int) error {
	u := *c.base
	u.Path += path
	if len(query) > 0 {
		u.RawQuery = query.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, method, u.String(), http.NoBody)
	if err != nil {
		return fmt.Errorf("pagedex: build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", c.userAgent)
	if c.apiKey != "" {
		req.Header.Set("Authorization", "Bearer "+c.apiKey)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("pagedex: %s %s: %w", method, path, err)
	}
	defer func() { _ = resp.Body.Close() }()

	for _, s := range okStatus {
		if resp.StatusCode == s {
			if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
				return fmt.Errorf("pagedex: decode %s response: %w", path, err)
			}
			return nil
		}
	}
	return decodeAPIError(resp)
}

func decodeAPIError(resp *http.Response) error {
	apiErr := &APIError{StatusCode: resp.StatusCode}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
	if err == nil {
		var payload struct {
			Code    string `json:"code"`
			Message string `json:"message"`
		}
		if jsonErr := json.Unmarshal(body, &payload); jsonErr == nil {
			apiErr.Code, apiErr.Message = payload.Code, payload.Message
		}
	}
	if apiErr.Code == "" {
		apiErr.Code = strings.ToLower(strings.ReplaceAll(http.StatusText(resp.StatusCode), " ", "_"))
	}
	if apiErr.Message == "" {
		apiErr.Message = http.StatusText(resp.StatusCode)
	}
	return apiErr
}

// IsAPIError reports whether err is an APIError and returns it.
func IsAPIError(err error) (*APIError, bool) {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr, true
	}
	return nil, false
}
