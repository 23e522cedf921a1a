package service

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"
)

var ErrNutritionNotConfigured = errors.New("nutrition lookup not configured (missing USDA_API_KEY)")

// FoodEstimate is a per-100g nutrient estimate from the composition
// lookup API.
type FoodEstimate struct {
	Name     string  `json:"name"`
	Calories float64 `json:"calories"`
	Protein  float64 `json:"protein"`
	Carbs    float64 `json:"carbs"`
	Fats     float64 `json:"fats"`
}

// NutritionService proxies the USDA FoodData Central search API. The API
// key stays in server configuration and is never shipped to clients.
type NutritionService struct {
	apiKey  string
	baseURL string
	client  *http.Client
}

func NewNutritionService(apiKey string) *NutritionService {
	return &NutritionService{
		apiKey:  apiKey,
		baseURL: "https://api.nal.usda.gov/fdc/v1/foods/search",
		client: &http.Client{
			Timeout: 15 * time.Second,
		},
	}
}

// WithBaseURL overrides the upstream endpoint, for tests.
func (s *NutritionService) WithBaseURL(baseURL string) *NutritionService {
	s.baseURL = baseURL
	return s
}

// Search looks up foods by free-text query and maps the upstream nutrient
// list to per-100g calorie/protein/carb/fat estimates.
func (s *NutritionService) Search(query string) ([]FoodEstimate, error) {
	if s.apiKey == "" {
		return nil, ErrNutritionNotConfigured
	}

	reqURL, err := url.Parse(s.baseURL)
	if err != nil {
		return nil, fmt.Errorf("failed to parse base URL: %w", err)
	}

	params := reqURL.Query()
	params.Add("query", query)
	params.Add("api_key", s.apiKey)
	reqURL.RawQuery = params.Encode()

	resp, err := s.client.Get(reqURL.String())
	if err != nil {
		return nil, fmt.Errorf("failed to make request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("food search failed with status %d: %s", resp.StatusCode, string(body))
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response body: %w", err)
	}

	var apiResponse struct {
		Foods []struct {
			Description   string `json:"description"`
			FoodNutrients []struct {
				NutrientName string  `json:"nutrientName"`
				Value        float64 `json:"value"`
			} `json:"foodNutrients"`
		} `json:"foods"`
	}

	err = json.Unmarshal(body, &apiResponse)
	if err != nil {
		return nil, fmt.Errorf("failed to unmarshal response: %w", err)
	}

	estimates := make([]FoodEstimate, 0, len(apiResponse.Foods))
	for _, item := range apiResponse.Foods {
		nutrients := map[string]float64{}
		for _, n := range item.FoodNutrients {
			nutrients[n.NutrientName] = n.Value
		}

		estimates = append(estimates, FoodEstimate{
			Name:     item.Description,
			Calories: nutrients["Energy"],
			Protein:  nutrients["Protein"],
			Carbs:    nutrients["Carbohydrate, by difference"],
			Fats:     nutrients["Total lipid (fat)"],
		})
	}

	return estimates, nil
}
