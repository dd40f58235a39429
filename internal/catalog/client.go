// Package catalog talks to the remote product catalog API.
package catalog

import (
	"bytes"
	"context"
	_ "embed"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/santhosh-tekuri/jsonschema/v5"

	"prodsearch/internal/domain"
)

// ErrFetchFailed is the single failure kind surfaced to callers. Status codes,
// transport errors and malformed bodies all wrap it.
var ErrFetchFailed = errors.New("catalog fetch failed")

// Client fetches one page of catalog results
type Client interface {
	Fetch(ctx context.Context, req domain.PageRequest) (*domain.ResultPage, error)
}

//go:embed schema/products.json
var productsSchemaJSON string

var productsSchema = jsonschema.MustCompileString("products.json", productsSchemaJSON)

// productsResponse is the wire shape of GET /api/products
type productsResponse struct {
	Meta struct {
		TotalCount int `json:"total_count"`
	} `json:"meta"`
	Data []productDTO `json:"data"`
}

type productDTO struct {
	ID flexString `json:"id"`
	domain.Product
}

// flexString accepts either a JSON string or a bare number
type flexString string

func (f *flexString) UnmarshalJSON(b []byte) error {
	if len(b) > 0 && b[0] == '"' {
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
		*f = flexString(s)
		return nil
	}
	if string(b) == "null" {
		return nil
	}
	*f = flexString(b)
	return nil
}

// decodeResponse validates body against the response schema and converts it
func decodeResponse(body []byte) (*domain.ResultPage, error) {
	var raw interface{}
	dec := json.NewDecoder(bytes.NewReader(body))
	dec.UseNumber()
	if err := dec.Decode(&raw); err != nil {
		return nil, fmt.Errorf("invalid JSON: %w", err)
	}
	if err := productsSchema.Validate(raw); err != nil {
		return nil, fmt.Errorf("unexpected response shape: %w", err)
	}

	var resp productsResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return nil, fmt.Errorf("failed to decode response: %w", err)
	}

	page := &domain.ResultPage{
		TotalCount: resp.Meta.TotalCount,
		Items:      make([]domain.Product, 0, len(resp.Data)),
	}
	for _, d := range resp.Data {
		p := d.Product
		p.ID = string(d.ID)
		page.Items = append(page.Items, p)
	}
	return page, nil
}
