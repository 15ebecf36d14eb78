package datasource

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/Jammy851226/CwaWeather-backend/metrics"
	"github.com/Jammy851226/CwaWeather-backend/models"
)

// forecastDataset is the CWA datastore ID for the per-county weekly
// forecast in 12-hour steps.
const forecastDataset = "F-D0047-091"

// CWAProvider fetches forecast records from the CWA open-data platform
type CWAProvider struct {
	apiKey     string
	baseURL    string
	httpClient *http.Client
}

// Ensure CWAProvider implements ForecastSource
var _ ForecastSource = (*CWAProvider)(nil)

// NewCWAProvider creates a new CWA open-data provider
func NewCWAProvider(apiKey string) *CWAProvider {
	return &CWAProvider{
		apiKey:  apiKey,
		baseURL: "https://opendata.cwa.gov.tw/api/v1/rest/datastore",
		httpClient: &http.Client{
			Timeout: 10 * time.Second,
		},
	}
}

// Name returns the provider name
func (p *CWAProvider) Name() string {
	return "CWA"
}

// FetchForecast fetches the weekly forecast for a canonical location name and
// returns its record from the response
func (p *CWAProvider) FetchForecast(ctx context.Context, locationName string) (models.Location, error) {
	endpoint := fmt.Sprintf("%s/%s", p.baseURL, forecastDataset)
	params := url.Values{}
	params.Add("Authorization", p.apiKey)
	params.Add("locationName", locationName)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint+"?"+params.Encode(), nil)
	if err != nil {
		return models.Location{}, fmt.Errorf("failed to create request: %w", err)
	}

	start := time.Now()
	resp, err := p.httpClient.Do(req)
	metrics.UpstreamLatency.WithLabelValues(forecastDataset).Observe(time.Since(start).Seconds())
	if err != nil {
		metrics.UpstreamCallsTotal.WithLabelValues(forecastDataset, "error").Inc()
		return models.Location{}, fmt.Errorf("failed to execute request: %w", err)
	}
	defer resp.Body.Close()
	metrics.UpstreamCallsTotal.WithLabelValues(forecastDataset, strconv.Itoa(resp.StatusCode)).Inc()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return models.Location{}, fmt.Errorf("failed to read response body: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return models.Location{}, &UpstreamError{StatusCode: resp.StatusCode, Body: string(body)}
	}

	var response models.CWAResponse
	if err := json.Unmarshal(body, &response); err != nil {
		return models.Location{}, fmt.Errorf("failed to parse response: %w", err)
	}

	for _, group := range response.Records.Locations {
		for _, loc := range group.Location {
			if loc.LocationName == locationName {
				return loc, nil
			}
		}
	}

	return models.Location{}, ErrLocationNotFound
}
