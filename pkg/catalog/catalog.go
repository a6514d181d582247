// Package catalog talks to the remote product catalog. Its failures are
// non-fatal by contract: the pipeline enriches with zero matches instead of
// aborting.
package catalog

import (
	"context"
	"io"
	"net/http"
	"time"

	"github.com/charmbracelet/log"
	jsoniter "github.com/json-iterator/go"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// Product is a single catalog entry as returned by the products endpoint.
type Product struct {
	ID       int     `json:"id"`
	Title    string  `json:"title"`
	Category string  `json:"category"`
	Brand    string  `json:"brand"`
	Rating   float64 `json:"rating"`
}

// Info is the subset of product data used for enrichment.
type Info struct {
	Title    string
	Category string
	Brand    string
	Rating   float64
}

type Client struct {
	url    string
	client *http.Client
	logger *log.Logger
}

func NewClient(url string, timeout time.Duration, logger *log.Logger) *Client {
	return &Client{
		url:    url,
		client: &http.Client{Timeout: timeout},
		logger: logger,
	}
}

// FetchProducts issues one GET to the products endpoint. Connection errors,
// timeouts, non-200 responses and malformed bodies all yield an empty list.
func (c *Client) FetchProducts(ctx context.Context) []Product {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.url, nil)
	if err != nil {
		c.logger.Warn("invalid catalog request", "url", c.url, "error", err)
		return nil
	}

	resp, err := c.client.Do(req)
	if err != nil {
		c.logger.Warn("catalog request failed", "url", c.url, "error", err)
		return nil
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		c.logger.Warn("catalog returned non-OK status", "url", c.url, "status", resp.Status)
		return nil
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		c.logger.Warn("failed to read catalog response", "error", err)
		return nil
	}

	var payload struct {
		Products []Product `json:"products"`
	}
	if err := json.Unmarshal(body, &payload); err != nil {
		c.logger.Warn("failed to decode catalog response", "error", err)
		return nil
	}

	return payload.Products
}

// Mapping keys product info by numeric id. Entries without an id are skipped.
func Mapping(products []Product) map[int]Info {
	mapping := make(map[int]Info, len(products))
	for _, p := range products {
		if p.ID == 0 {
			continue
		}
		mapping[p.ID] = Info{
			Title:    p.Title,
			Category: p.Category,
			Brand:    p.Brand,
			Rating:   p.Rating,
		}
	}
	return mapping
}
