package main

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"

	"github.com/Jammy851226/CwaWeather-backend/models"
)

func main() {
	fmt.Println("CwaWeather API Client Example")
	fmt.Println("=============================")

	// Base URL for the API
	baseURL := "http://localhost:8080"

	city := "taipei"
	if len(os.Args) > 1 {
		city = os.Args[1]
	}

	// Check the service is up
	healthResp, err := http.Get(fmt.Sprintf("%s/api/health", baseURL))
	if err != nil {
		fmt.Printf("Error reaching service: %v\n", err)
		os.Exit(1)
	}
	healthResp.Body.Close()
	fmt.Printf("Service healthy (status %d)\n\n", healthResp.StatusCode)

	// Fetch the forecast for the requested city
	fmt.Printf("Fetching forecast for %s...\n", city)
	resp, err := http.Get(fmt.Sprintf("%s/api/weather/%s", baseURL, city))
	if err != nil {
		fmt.Printf("Error fetching forecast: %v\n", err)
		os.Exit(1)
	}
	defer resp.Body.Close()

	body, _ := io.ReadAll(resp.Body)
	if resp.StatusCode != http.StatusOK {
		fmt.Printf("Request failed (status %d): %s\n", resp.StatusCode, string(body))
		os.Exit(1)
	}

	var result struct {
		Success bool               `json:"success"`
		Data    models.WeatherData `json:"data"`
	}
	if err := json.Unmarshal(body, &result); err != nil {
		fmt.Printf("Error parsing response: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Forecast for %s (%d slots):\n", result.Data.City, len(result.Data.Forecasts))
	for _, entry := range result.Data.Forecasts {
		fmt.Printf("  %s ~ %s\n", entry.StartTime, entry.EndTime)
		fmt.Printf("    %s, rain %s, temp %s-%s, humidity %s\n",
			entry.Wx, entry.PoP, entry.MinT, entry.MaxT, entry.RH)
		if entry.CI != "" {
			fmt.Printf("    comfort: %s, wind: %s, UV: %s\n", entry.CI, entry.WS, entry.UVI)
		}
	}
}
