package catalog

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"prodsearch/internal/domain"
	"prodsearch/internal/logger"
)

const maxBodyBytes = 8 << 20

// HTTPClient is a Client backed by the catalog's HTTP API
type HTTPClient struct {
	endpoint   *url.URL
	httpClient *http.Client
	timeout    time.Duration
}

// Option configures an HTTPClient
type Option func(*HTTPClient)

// WithHTTPClient replaces the underlying http.Client
func WithHTTPClient(hc *http.Client) Option {
	return func(c *HTTPClient) {
		c.httpClient = hc
	}
}

// WithTimeout bounds each request. Zero means no timeout.
func WithTimeout(d time.Duration) Option {
	return func(c *HTTPClient) {
		c.timeout = d
	}
}

// NewHTTPClient creates a client for the API rooted at baseURL
func NewHTTPClient(baseURL string, opts ...Option) (*HTTPClient, error) {
	base, err := url.Parse(baseURL)
	if err != nil {
		return nil, fmt.Errorf("invalid catalog base URL %q: %w", baseURL, err)
	}
	if base.Scheme == "" || base.Host == "" {
		return nil, fmt.Errorf("invalid catalog base URL %q: missing scheme or host", baseURL)
	}

	c := &HTTPClient{
		endpoint:   base.JoinPath("api", "products"),
		httpClient: http.DefaultClient,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c, nil
}

// URL builds the request URL for req. Query and region are percent-encoded.
func (c *HTTPClient) URL(req domain.PageRequest) string {
	u := *c.endpoint
	q := url.Values{}
	q.Set("geo", req.RegionID)
	q.Set("title", req.Query)
	q.Set("offset", strconv.Itoa(req.Offset))
	q.Set("limit", strconv.Itoa(req.Limit))
	u.RawQuery = q.Encode()
	return u.String()
}

// Fetch implements Client
func (c *HTTPClient) Fetch(ctx context.Context, req domain.PageRequest) (*domain.ResultPage, error) {
	if c.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.timeout)
		defer cancel()
	}

	requestID := uuid.NewString()
	target := c.URL(req)
	log := logger.Get().With(zap.String("request_id", requestID))
	start := time.Now()

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodGet, target, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrFetchFailed, err)
	}
	httpReq.Header.Set("Accept", "application/json")
	httpReq.Header.Set("X-Request-ID", requestID)

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		log.Warn("catalog request failed", zap.String("url", target), zap.Error(err))
		return nil, fmt.Errorf("%w: %w", ErrFetchFailed, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes))
	if err != nil {
		return nil, fmt.Errorf("%w: reading body: %w", ErrFetchFailed, err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		log.Warn("catalog returned error status",
			zap.String("url", target),
			zap.Int("status", resp.StatusCode))
		return nil, fmt.Errorf("%w: status %d", ErrFetchFailed, resp.StatusCode)
	}

	page, err := decodeResponse(body)
	if err != nil {
		log.Warn("catalog response rejected", zap.String("url", target), zap.Error(err))
		return nil, fmt.Errorf("%w: %w", ErrFetchFailed, err)
	}

	log.Debug("catalog request completed",
		zap.String("url", target),
		zap.Int("total_count", page.TotalCount),
		zap.Int("items", len(page.Items)),
		zap.Duration("took", time.Since(start)))

	return page, nil
}
