//go:build e2e && unix

package main

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strconv"
	"sync"
	"time"
)

// CatalogOption configures the fake catalog
type CatalogOption func(*catalogOptions)

type catalogOptions struct {
	total  int
	status int
	delay  time.Duration
}

// WithTotal sets how many products match any query
func WithTotal(n int) CatalogOption {
	return func(opts *catalogOptions) {
		opts.total = n
	}
}

// WithStatus makes every request fail with the given HTTP status
func WithStatus(code int) CatalogOption {
	return func(opts *catalogOptions) {
		opts.status = code
	}
}

// WithDelay holds every response for d
func WithDelay(d time.Duration) CatalogOption {
	return func(opts *catalogOptions) {
		opts.delay = d
	}
}

// FakeCatalog serves /api/products from generated data and records queries
type FakeCatalog struct {
	*httptest.Server

	mu      sync.Mutex
	queries []string
}

// Queries returns the raw query strings received so far
func (c *FakeCatalog) Queries() []string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return append([]string(nil), c.queries...)
}

// StartCatalog starts a fake catalog that lives as long as the test
func (tf *TUITestFramework) StartCatalog(options ...CatalogOption) *FakeCatalog {
	opts := &catalogOptions{total: 30}
	for _, opt := range options {
		opt(opts)
	}

	c := &FakeCatalog{}
	mux := http.NewServeMux()
	mux.HandleFunc("/api/products", func(w http.ResponseWriter, r *http.Request) {
		c.mu.Lock()
		c.queries = append(c.queries, r.URL.RawQuery)
		c.mu.Unlock()

		if opts.delay > 0 {
			time.Sleep(opts.delay)
		}
		if opts.status != 0 {
			w.WriteHeader(opts.status)
			return
		}

		q := r.URL.Query()
		offset, _ := strconv.Atoi(q.Get("offset"))
		limit, _ := strconv.Atoi(q.Get("limit"))
		title := q.Get("title")

		data := []map[string]any{}
		for i := offset; i < offset+limit && i < opts.total; i++ {
			data = append(data, map[string]any{
				"id":               i + 1,
				"title":            fmt.Sprintf("%s tour %d", title, i+1),
				"dest":             "Paris",
				"img_sml":          "",
				"price_from_adult": "35.50",
				"price_from_child": "20.00",
			})
		}

		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(map[string]any{
			"meta": map[string]any{"total_count": opts.total},
			"data": data,
		})
	})

	c.Server = httptest.NewServer(mux)
	tf.t.Cleanup(c.Close)
	return c
}
