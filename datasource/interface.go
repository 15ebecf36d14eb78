package datasource

import (
	"context"
	"errors"
	"fmt"

	"github.com/Jammy851226/CwaWeather-backend/models"
)

// ForecastSource is an interface for services that can fetch the forecast
// record of a single location
type ForecastSource interface {
	// FetchForecast fetches the forecast record for a canonical location
	// name, e.g. 臺北市
	FetchForecast(ctx context.Context, locationName string) (models.Location, error)

	// Name returns the source's name
	Name() string
}

// ErrLocationNotFound is returned when the upstream payload contains no
// record for the requested location name.
var ErrLocationNotFound = errors.New("location not found in upstream response")

// UpstreamError carries the status code and body of a failed upstream call
// so handlers can propagate them to the caller.
type UpstreamError struct {
	StatusCode int
	Body       string
}

func (e *UpstreamError) Error() string {
	return fmt.Sprintf("CWA API error (status %d): %s", e.StatusCode, e.Body)
}
