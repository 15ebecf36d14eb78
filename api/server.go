package api

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/Jammy851226/CwaWeather-backend/cities"
	"github.com/Jammy851226/CwaWeather-backend/datasource"
	"github.com/Jammy851226/CwaWeather-backend/forecast"
	"github.com/Jammy851226/CwaWeather-backend/models"
)

// Server represents the API server
type Server struct {
	source datasource.ForecastSource
	apiKey string
	server *http.Server
}

// NewServer creates a new API server
func NewServer(source datasource.ForecastSource, apiKey string, port int) *Server {
	s := &Server{
		source: source,
		apiKey: apiKey,
	}
	s.server = &http.Server{
		Addr:         fmt.Sprintf(":%d", port),
		Handler:      s.Handler(),
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	}
	return s
}

// Handler builds the router with all routes and middleware registered.
func (s *Server) Handler() http.Handler {
	r := mux.NewRouter()
	r.Use(instrument)

	r.HandleFunc("/", s.handleIndex).Methods(http.MethodGet)
	r.HandleFunc("/api/health", s.handleHealthCheck).Methods(http.MethodGet)
	r.HandleFunc("/api/weather/{city}", s.handleGetWeather).Methods(http.MethodGet)
	r.Handle("/metrics", promhttp.Handler()).Methods(http.MethodGet)

	r.NotFoundHandler = http.HandlerFunc(s.handleNotFound)

	return enableCORS(requestID(r))
}

// Start begins the API server
func (s *Server) Start() error {
	log.Printf("Starting API server on %s", s.server.Addr)
	return s.server.ListenAndServe()
}

// Shutdown gracefully stops the API server
func (s *Server) Shutdown(ctx context.Context) error {
	return s.server.Shutdown(ctx)
}

// handleIndex describes the service and its endpoints
func (s *Server) handleIndex(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"name":        "CwaWeather Backend",
		"description": "Simplified 7-slot weather forecasts for Taiwan cities, sourced from the CWA open-data platform",
		"endpoints": []string{
			"GET /api/health",
			"GET /api/weather/{city}",
		},
		"cities": cities.Supported(),
	})
}

// handleHealthCheck provides a simple health check endpoint
func (s *Server) handleHealthCheck(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{
		"status":    "OK",
		"timestamp": time.Now().Format(time.RFC3339),
	})
}

// handleGetWeather resolves the city, queries the CWA API and returns the
// transformed forecast
func (s *Server) handleGetWeather(w http.ResponseWriter, r *http.Request) {
	city := strings.ToLower(mux.Vars(r)["city"])

	locationName, ok := cities.Resolve(city)
	if !ok {
		writeError(w, http.StatusBadRequest, "unsupported city",
			fmt.Sprintf("city %q is not supported", city))
		return
	}

	if s.apiKey == "" {
		writeError(w, http.StatusInternalServerError, "server misconfigured",
			"CWA_API_KEY is not set")
		return
	}

	loc, err := s.source.FetchForecast(r.Context(), locationName)
	if err != nil {
		var upstreamErr *datasource.UpstreamError
		switch {
		case errors.Is(err, datasource.ErrLocationNotFound):
			writeError(w, http.StatusNotFound, "not found",
				fmt.Sprintf("no forecast data found for location: %s", locationName))
		case errors.As(err, &upstreamErr):
			writeError(w, upstreamErr.StatusCode, "upstream error", upstreamErr.Body)
		default:
			log.Printf("fetch forecast for %s: %v", locationName, err)
			writeError(w, http.StatusInternalServerError, "internal error",
				"failed to fetch forecast data")
		}
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"success": true,
		"data": models.WeatherData{
			City:      city,
			Forecasts: forecast.Transform(loc),
		},
	})
}

// handleNotFound returns a JSON error body for unmatched routes
func (s *Server) handleNotFound(w http.ResponseWriter, r *http.Request) {
	writeError(w, http.StatusNotFound, "not found",
		fmt.Sprintf("no route for %s %s", r.Method, r.URL.Path))
}

func writeJSON(w http.ResponseWriter, status int, body interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		log.Printf("write response: %v", err)
	}
}

func writeError(w http.ResponseWriter, status int, errMsg, message string) {
	writeJSON(w, status, map[string]string{
		"error":   errMsg,
		"message": message,
	})
}
