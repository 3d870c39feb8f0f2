// Package openweather implements the weather lookup collaborator against the
// OpenWeatherMap current-weather API.
package openweather

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"go.uber.org/zap"

	"kcalbot/internal/domain"
)

// DefaultBaseURL is the production API endpoint.
const DefaultBaseURL = "https://api.openweathermap.org"

// defaultTempC is reported whenever the lookup fails for any reason; weather
// degradation is never surfaced to the dialog.
const defaultTempC = 20.0

// Client implements domain.WeatherLookup.
type Client struct {
	baseURL string
	apiKey  string
	http    *http.Client
	log     *zap.Logger
}

// New creates a weather client. An empty baseURL selects DefaultBaseURL.
func New(baseURL, apiKey string, timeout time.Duration, log *zap.Logger) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	return &Client{
		baseURL: baseURL,
		apiKey:  apiKey,
		http:    &http.Client{Timeout: timeout},
		log:     log,
	}
}

var _ domain.WeatherLookup = (*Client)(nil)

type weatherResponse struct {
	Main struct {
		Temp *float64 `json:"temp"`
	} `json:"main"`
}

// CurrentTempC returns the current temperature for the city in Celsius. Any
// transport or parse failure, and a response without a temperature field,
// yield the fixed default.
func (c *Client) CurrentTempC(ctx context.Context, city string) float64 {
	q := url.Values{}
	q.Set("q", city)
	q.Set("appid", c.apiKey)
	q.Set("units", "metric")
	reqURL := fmt.Sprintf("%s/data/2.5/weather?%s", c.baseURL, q.Encode())

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return defaultTempC
	}

	resp, err := c.http.Do(req)
	if err != nil {
		c.log.Warn("weather lookup failed, using default temperature",
			zap.String("city", city), zap.Error(err))
		return defaultTempC
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		c.log.Warn("weather lookup returned non-OK status, using default temperature",
			zap.String("city", city), zap.Int("status", resp.StatusCode))
		return defaultTempC
	}

	var body weatherResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil || body.Main.Temp == nil {
		c.log.Warn("weather response unusable, using default temperature",
			zap.String("city", city), zap.Error(err))
		return defaultTempC
	}
	return *body.Main.Temp
}
