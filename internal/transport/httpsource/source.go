package httpsource

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/kailas-cloud/pagedex/internal/domain"
	"github.com/kailas-cloud/pagedex/internal/metrics"
)

// DefaultMaxDocumentBytes bounds the size of a fetched document.
const DefaultMaxDocumentBytes = 8 << 20

const sourceLabel = "http"

// Config holds the HTTP content source settings.
type Config struct {
	BaseURL          string
	Timeout          time.Duration
	MaxDocumentBytes int64
	Logger           *zap.Logger
}

// Source fetches content documents from a static site over HTTP.
type Source struct {
	base     *url.URL
	client   *http.Client
	maxBytes int64
	logger   *zap.Logger
}

// New creates an HTTP content source rooted at cfg.BaseURL.
func New(cfg *Config) (*Source, error) {
	base, err := url.Parse(cfg.BaseURL)
	if err != nil {
		return nil, fmt.Errorf("parse base url: %w", err)
	}
	if base.Scheme != "http" && base.Scheme != "https" {
		return nil, fmt.Errorf("base url must be http or https, got %q", cfg.BaseURL)
	}
	if !strings.HasSuffix(base.Path, "/") {
		base.Path += "/"
	}

	maxBytes := cfg.MaxDocumentBytes
	if maxBytes <= 0 {
		maxBytes = DefaultMaxDocumentBytes
	}
	logger := cfg.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	return &Source{
		base:     base,
		client:   &http.Client{Timeout: cfg.Timeout},
		maxBytes: maxBytes,
		logger:   logger,
	}, nil
}

// Fetch implements domain.Source.
func (s *Source) Fetch(ctx context.Context, path string) ([]byte, error) {
	ref, err := url.Parse(strings.TrimLeft(path, "/"))
	if err != nil || ref.IsAbs() || ref.Host != "" || strings.Contains(path, "..") {
		return nil, fmt.Errorf("%w: invalid path %q", domain.ErrNotFound, path)
	}
	target := s.base.ResolveReference(ref)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, target.String(), http.NoBody)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}
	// Documents are edited in place; intermediaries must not serve stale copies.
	req.Header.Set("Cache-Control", "no-store")

	start := time.Now()
	data, err := s.do(req)
	metrics.SourceFetchDuration.WithLabelValues(sourceLabel).Observe(time.Since(start).Seconds())

	switch {
	case err == nil:
		metrics.SourceFetchTotal.WithLabelValues(sourceLabel, "ok").Inc()
	case errors.Is(err, domain.ErrNotFound):
		metrics.SourceFetchTotal.WithLabelValues(sourceLabel, "not_found").Inc()
	default:
		metrics.SourceFetchTotal.WithLabelValues(sourceLabel, "error").Inc()
		s.logger.Warn("Content fetch failed", zap.String("url", target.String()), zap.Error(err))
	}
	return data, err
}

func (s *Source) do(req *http.Request) ([]byte, error) {
	resp, err := s.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", domain.ErrSourceUnavailable, err)
	}
	defer func() { _ = resp.Body.Close() }()

	switch {
	case resp.StatusCode == http.StatusNotFound:
		return nil, fmt.Errorf("%w: %s", domain.ErrNotFound, req.URL.Path)
	case resp.StatusCode < 200 || resp.StatusCode > 299:
		return nil, fmt.Errorf("%w: %s returned %d", domain.ErrSourceUnavailable, req.URL.Path, resp.StatusCode)
	}

	data, err := io.ReadAll(io.LimitReader(resp.Body, s.maxBytes+1))
	if err != nil {
		return nil, fmt.Errorf("%w: read body: %w", domain.ErrSourceUnavailable, err)
	}
	if int64(len(data)) > s.maxBytes {
		return nil, fmt.Errorf("%w: %s exceeds %d bytes", domain.ErrMalformedDocument, req.URL.Path, s.maxBytes)
	}
	return data, nil
}

// HealthCheck reports whether the site root answers without a server error.
func (s *Source) HealthCheck(ctx context.Context) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodHead, s.base.String(), http.NoBody)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	resp, err := s.client.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %w", domain.ErrSourceUnavailable, err)
	}
	_ = resp.Body.Close()
	if resp.StatusCode >= 500 {
		return fmt.Errorf("%w: status %d", domain.ErrSourceUnavailable, resp.StatusCode)
	}
	return nil
}
