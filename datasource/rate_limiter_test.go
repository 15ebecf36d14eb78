package datasource

import (
	"context"
	"testing"

	"github.com/Jammy851226/CwaWeather-backend/models"
)

type stubSource struct {
	calls int
	loc   models.Location
	err   error
}

func (s *stubSource) FetchForecast(ctx context.Context, locationName string) (models.Location, error) {
	s.calls++
	return s.loc, s.err
}

func (s *stubSource) Name() string { return "Stub" }

func TestRateLimitedForecastSourceForwards(t *testing.T) {
	stub := &stubSource{loc: models.Location{LocationName: "臺北市"}}
	limited := NewRateLimitedForecastSource(stub, 100, 1)

	loc, err := limited.FetchForecast(context.Background(), "臺北市")
	if err != nil {
		t.Fatalf("FetchForecast failed: %v", err)
	}
	if loc.LocationName != "臺北市" {
		t.Errorf("location = %q, want %q", loc.LocationName, "臺北市")
	}
	if stub.calls != 1 {
		t.Errorf("underlying source called %d times, want 1", stub.calls)
	}
}

func TestRateLimitedForecastSourceName(t *testing.T) {
	limited := NewRateLimitedForecastSource(&stubSource{}, 1, 1)
	if got := limited.Name(); got != "Stub [Rate Limited]" {
		t.Errorf("Name() = %q", got)
	}
}

func TestRateLimitedForecastSourceCanceledContext(t *testing.T) {
	stub := &stubSource{}
	// burst of 1 already consumed, so the second call must wait and should
	// fail fast once the context is canceled
	limited := NewRateLimitedForecastSource(stub, 0.001, 1)

	if _, err := limited.FetchForecast(context.Background(), "臺北市"); err != nil {
		t.Fatalf("first call should pass the limiter: %v", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, err := limited.FetchForecast(ctx, "臺北市"); err == nil {
		t.Fatal("expected error when context is canceled while waiting")
	}
	if stub.calls != 1 {
		t.Errorf("underlying source called %d times, want 1", stub.calls)
	}
}
