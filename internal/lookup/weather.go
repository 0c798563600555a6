package lookup

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"
)

// WeatherClient fetches the current temperature for a city from the
// weatherapi.com current-conditions endpoint. Concurrent lookups for the
// same city are collapsed into one request.
type WeatherClient struct {
	baseURL string
	apiKey  string
	http    *http.Client
	logger  *zap.Logger
	group   singleflight.Group
}

// NewWeatherClient creates a weather client
func NewWeatherClient(baseURL, apiKey string, timeout time.Duration, logger *zap.Logger) *WeatherClient {
	return &WeatherClient{
		baseURL: strings.TrimRight(baseURL, "/"),
		apiKey:  apiKey,
		http:    &http.Client{Timeout: timeout},
		logger:  logger,
	}
}

// Temperature returns the current temperature in °C for the city.
func (c *WeatherClient) Temperature(ctx context.Context, city string) (float64, error) {
	key := strings.ToLower(strings.TrimSpace(city))

	v, err, _ := c.group.Do(key, func() (interface{}, error) {
		return c.fetch(ctx, city)
	})
	if err != nil {
		return 0, err
	}
	return v.(float64), nil
}

func (c *WeatherClient) fetch(ctx context.Context, city string) (float64, error) {
	q := url.Values{}
	q.Set("q", city)
	q.Set("key", c.apiKey)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/current.json?"+q.Encode(), nil)
	if err != nil {
		return 0, fmt.Errorf("build weather request: %w", err)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return 0, fmt.Errorf("weather request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return 0, fmt.Errorf("weather request: unexpected status %d", resp.StatusCode)
	}

	var body struct {
		Current struct {
			TempC float64 `json:"temp_c"`
		} `json:"current"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return 0, fmt.Errorf("decode weather response: %w", err)
	}

	c.logger.Debug("Weather lookup succeeded",
		zap.String("city", city),
		zap.Float64("temp_c", body.Current.TempC),
	)

	return body.Current.TempC, nil
}
