// Package openfoodfacts is the adapter for the Open Food Facts product
// database. Upstream failures never reach callers: a failed search is an
// empty page and a failed lookup is "not found".
package openfoodfacts

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"caltrack/internal/domain"
)

// DefaultBaseURL is the public Open Food Facts v2 API.
const DefaultBaseURL = "https://world.openfoodfacts.org/api/v2"

// Config configures a Client.
type Config struct {
	BaseURL   string
	Timeout   time.Duration
	PageSize  int
	UserAgent string
}

// Client queries Open Food Facts. It is safe for concurrent use; every call
// issues its own request.
type Client struct {
	baseURL   string
	pageSize  int
	userAgent string
	http      *http.Client
	log       *slog.Logger
}

var _ domain.FoodFactSource = (*Client)(nil)

// New creates a Client. Zero config values fall back to the public API, a
// 10s timeout and 20 results per page.
func New(cfg Config, log *slog.Logger) *Client {
	if cfg.BaseURL == "" {
		cfg.BaseURL = DefaultBaseURL
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = 10 * time.Second
	}
	if cfg.PageSize <= 0 {
		cfg.PageSize = 20
	}
	if log == nil {
		log = slog.Default()
	}
	return &Client{
		baseURL:   strings.TrimRight(cfg.BaseURL, "/"),
		pageSize:  cfg.PageSize,
		userAgent: cfg.UserAgent,
		http:      &http.Client{Timeout: cfg.Timeout},
		log:       log,
	}
}

type searchResponse struct {
	Products []RawProduct `json:"products"`
	Count    int          `json:"count"`
}

type productResponse struct {
	Status  int        `json:"status"`
	Product RawProduct `json:"product"`
}

// Search returns one page of normalised products matching query. Pages
// start at 1.
func (c *Client) Search(ctx context.Context, query string, page int) domain.SearchResult {
	if page < 1 {
		page = 1
	}
	result := domain.SearchResult{Products: []domain.FoodFact{}, Page: page, PageSize: c.pageSize}

	params := url.Values{}
	params.Set("search_terms", query)
	params.Set("page", strconv.Itoa(page))
	params.Set("page_size", strconv.Itoa(c.pageSize))
	params.Set("fields", fields)
	params.Set("json", "1")

	var resp searchResponse
	if err := c.get(ctx, "/search?"+params.Encode(), &resp); err != nil {
		c.log.WarnContext(ctx, "food search failed", "query", query, "page", page, "error", err)
		return result
	}

	for _, p := range resp.Products {
		result.Products = append(result.Products, Normalize(p))
	}
	result.Count = resp.Count
	return result
}

// Lookup returns the normalised product with the given barcode.
func (c *Client) Lookup(ctx context.Context, barcode string) (domain.FoodFact, bool) {
	params := url.Values{}
	params.Set("fields", fields)

	var resp productResponse
	if err := c.get(ctx, "/product/"+url.PathEscape(barcode)+"?"+params.Encode(), &resp); err != nil {
		c.log.WarnContext(ctx, "barcode lookup failed", "barcode", barcode, "error", err)
		return domain.FoodFact{}, false
	}
	if resp.Status != 1 {
		return domain.FoodFact{}, false
	}
	return Normalize(resp.Product), true
}

func (c *Client) get(ctx context.Context, path string, dst any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return err
	}
	req.Header.Set("Accept", "application/json")
	if c.userAgent != "" {
		req.Header.Set("User-Agent", c.userAgent)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close() //nolint:errcheck

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("unexpected status %d", resp.StatusCode)
	}
	if err := json.NewDecoder(resp.Body).Decode(dst); err != nil {
		return fmt.Errorf("decode: %w", err)
	}
	return nil
}
