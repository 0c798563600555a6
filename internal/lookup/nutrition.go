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
)

// NutritionClient resolves calories per 100 g of a food via the
// CalorieNinjas nutrition endpoint.
type NutritionClient struct {
	baseURL string
	apiKey  string
	http    *http.Client
	logger  *zap.Logger
}

// NewNutritionClient creates a nutrition client
func NewNutritionClient(baseURL, apiKey string, timeout time.Duration, logger *zap.Logger) *NutritionClient {
	return &NutritionClient{
		baseURL: strings.TrimRight(baseURL, "/"),
		apiKey:  apiKey,
		http:    &http.Client{Timeout: timeout},
		logger:  logger,
	}
}

// CaloriesPer100g returns the calories per 100 g for the named food.
func (c *NutritionClient) CaloriesPer100g(ctx context.Context, foodName string) (float64, error) {
	q := url.Values{}
	q.Set("query", strings.ToLower(foodName))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/v1/nutrition?"+q.Encode(), nil)
	if err != nil {
		return 0, fmt.Errorf("build nutrition request: %w", err)
	}
	req.Header.Set("X-Api-Key", c.apiKey)

	resp, err := c.http.Do(req)
	if err != nil {
		return 0, fmt.Errorf("nutrition request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return 0, fmt.Errorf("nutrition request: unexpected status %d", resp.StatusCode)
	}

	var body struct {
		Items []struct {
			Calories float64 `json:"calories"`
		} `json:"items"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return 0, fmt.Errorf("decode nutrition response: %w", err)
	}

	if len(body.Items) == 0 {
		return 0, fmt.Errorf("nutrition request: no results for %q", foodName)
	}

	c.logger.Debug("Nutrition lookup succeeded",
		zap.String("food", foodName),
		zap.Float64("calories_per_100g", body.Items[0].Calories),
	)

	return body.Items[0].Calories, nil
}
