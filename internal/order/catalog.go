package order

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"
)

// ProductInfo is the catalog's view of a product, attached to create
// responses when the catalog answers in time.
type ProductInfo struct {
	ID          int64   `json:"id"`
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Price       float64 `json:"price"`
}

// CatalogClient fetches product data from the catalog service. Calls are
// best-effort: the order flow must tolerate any error.
type CatalogClient interface {
	GetProduct(ctx context.Context, id int64) (*ProductInfo, error)
}

type httpCatalogClient struct {
	baseURL string
	client  *http.Client
}

// NewCatalogClient builds a client for the catalog HTTP API with an explicit
// request timeout.
func NewCatalogClient(baseURL string, timeout time.Duration) CatalogClient {
	return &httpCatalogClient{
		baseURL: strings.TrimRight(baseURL, "/"),
		client:  &http.Client{Timeout: timeout},
	}
}

func (c *httpCatalogClient) GetProduct(ctx context.Context, id int64) (*ProductInfo, error) {
	url := fmt.Sprintf("%s/products/%d", c.baseURL, id)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("catalog: failed to build request: %w", err)
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("catalog: request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("catalog: unexpected status %d for product %d", resp.StatusCode, id)
	}

	var info ProductInfo
	if err := json.NewDecoder(resp.Body).Decode(&info); err != nil {
		return nil, fmt.Errorf("catalog: failed to decode product %d: %w", id, err)
	}
	return &info, nil
}
