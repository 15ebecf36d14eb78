package main

import (
	"context"
	"flag"
	"log"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/Jammy851226/CwaWeather-backend/api"
	"github.com/Jammy851226/CwaWeather-backend/datasource"
)

func main() {
	// Load environment variables from .env file
	if err := godotenv.Load(); err != nil {
		log.Printf("Warning: Error loading .env file: %v", err)
	}

	// Parse command line arguments
	port := flag.Int("port", 8080, "Port to run the server on")
	enableRateLimiting := flag.Bool("rate-limit", true, "Limit outbound calls to the CWA open-data API")
	flag.Parse()

	// PORT env var takes precedence over the flag
	if p := os.Getenv("PORT"); p != "" {
		if v, err := strconv.Atoi(p); err == nil && v > 0 {
			*port = v
		} else {
			log.Printf("Warning: invalid PORT value %q, using %d", p, *port)
		}
	}

	// The credential is checked per request, not at startup: requests fail
	// with 500 until it is configured
	apiKey := os.Getenv("CWA_API_KEY")
	if apiKey == "" {
		log.Println("Warning: CWA_API_KEY is not set, weather requests will fail")
	}

	var source datasource.ForecastSource = datasource.NewCWAProvider(apiKey)

	if *enableRateLimiting {
		// The CWA open-data platform tolerates modest request rates;
		// allow bursts of up to 5 requests
		source = datasource.NewRateLimitedForecastSource(source, 2.0, 5)
		log.Println("Applied rate limiting to CWA provider")
	}

	server := api.NewServer(source, apiKey, *port)

	// Set up channel for graceful shutdown
	shutdownChan := make(chan os.Signal, 1)
	signal.Notify(shutdownChan, syscall.SIGINT, syscall.SIGTERM)

	// Start the API server in a goroutine
	go func() {
		if err := server.Start(); err != nil {
			log.Printf("Server stopped: %v", err)
		}
	}()

	// Wait for shutdown signal
	sig := <-shutdownChan
	log.Printf("Shutting down due to %s signal", sig)

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(ctx); err != nil {
		log.Printf("Server forced to shutdown: %v", err)
	}

	log.Println("Shutdown complete")
}
