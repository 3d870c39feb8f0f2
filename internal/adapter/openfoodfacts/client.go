// Package openfoodfacts implements the food composition collaborator against
// the Open Food Facts search API.
package openfoodfacts

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"kcalbot/internal/domain"
)

// DefaultBaseURL is the production API endpoint.
const DefaultBaseURL = "https://world.openfoodfacts.org"

// Client implements domain.FoodLookup. Requests are bounded by the client
// timeout; a timeout is surfaced to the caller as a lookup failure.
type Client struct {
	baseURL string
	http    *http.Client
}

// New creates a food lookup client. An empty baseURL selects DefaultBaseURL.
func New(baseURL string, timeout time.Duration) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	return &Client{baseURL: baseURL, http: &http.Client{Timeout: timeout}}
}

var _ domain.FoodLookup = (*Client)(nil)

type searchResponse struct {
	Products []struct {
		ProductName string `json:"product_name"`
		Nutriments  struct {
			Proteins100g  float64 `json:"proteins_100g"`
			Fat100g       float64 `json:"fat_100g"`
			Carbs100g     float64 `json:"carbohydrates_100g"`
			EnergyKcal100 float64 `json:"energy-kcal_100g"`
		} `json:"nutriments"`
	} `json:"products"`
}

// Find returns the first product matching query, or domain.ErrFoodNotFound
// when the search yields no products.
func (c *Client) Find(ctx context.Context, query string) (*domain.FoodInfo, error) {
	q := url.Values{}
	q.Set("action", "process")
	q.Set("search_terms", query)
	q.Set("json", "true")
	reqURL := fmt.Sprintf("%s/cgi/search.pl?%s", c.baseURL, q.Encode())

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, fmt.Errorf("build food request: %w", err)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("food lookup: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("food lookup: unexpected status %s", resp.Status)
	}

	var body searchResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return nil, fmt.Errorf("decode food response: %w", err)
	}
	if len(body.Products) == 0 {
		return nil, domain.ErrFoodNotFound
	}

	first := body.Products[0]
	name := first.ProductName
	if name == "" {
		name = query
	}
	return &domain.FoodInfo{
		Name:             name,
		Protein100g:      first.Nutriments.Proteins100g,
		Fat100g:          first.Nutriments.Fat100g,
		Carb100g:         first.Nutriments.Carbs100g,
		OfficialKcal100g: first.Nutriments.EnergyKcal100,
	}, nil
}
