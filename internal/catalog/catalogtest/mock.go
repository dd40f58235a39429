// Package catalogtest provides test doubles for catalog.Client.
package catalogtest

import (
	"context"
	"strconv"

	"github.com/stretchr/testify/mock"

	"prodsearch/internal/domain"
)

// Client is a testify mock of catalog.Client
type Client struct{ mock.Mock }

// Fetch implements catalog.Client
func (m *Client) Fetch(ctx context.Context, req domain.PageRequest) (*domain.ResultPage, error) {
	args := m.Called(ctx, req)
	page, _ := args.Get(0).(*domain.ResultPage)
	return page, args.Error(1)
}

// Products returns n distinct products whose ids start at first
func Products(first, n int) []domain.Product {
	items := make([]domain.Product, 0, n)
	for i := first; i < first+n; i++ {
		items = append(items, domain.Product{
			ID:    strconv.Itoa(i),
			Title: "Experience " + strconv.Itoa(i),
			Dest:  "Paris",
		})
	}
	return items
}
