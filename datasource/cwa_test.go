package datasource

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

const sampleResponse = `{
  "success": "true",
  "records": {
    "locations": [
      {
        "datasetDescription": "臺灣各縣市鄉鎮未來1週逐12小時天氣預報",
        "locationsName": "臺灣",
        "location": [
          {
            "locationName": "臺北市",
            "geocode": "63",
            "weatherElement": [
              {
                "elementName": "Wx",
                "time": [
                  {
                    "startTime": "2026-08-29 06:00:00",
                    "endTime": "2026-08-29 18:00:00",
                    "elementValue": [{"value": "多雲時晴", "measures": "自定義 Wx 單位"}]
                  }
                ]
              },
              {
                "elementName": "MaxT",
                "time": [
                  {
                    "startTime": "2026-08-29 06:00:00",
                    "endTime": "2026-08-29 18:00:00",
                    "elementValue": [{"value": "33", "measures": "攝氏度"}]
                  }
                ]
              }
            ]
          }
        ]
      }
    ]
  }
}`

func newTestProvider(ts *httptest.Server) *CWAProvider {
	return &CWAProvider{
		apiKey:     "test-key",
		baseURL:    ts.URL,
		httpClient: &http.Client{Timeout: 5 * time.Second},
	}
}

func TestFetchForecast(t *testing.T) {
	var gotQuery map[string]string
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotQuery = map[string]string{
			"Authorization": r.URL.Query().Get("Authorization"),
			"locationName":  r.URL.Query().Get("locationName"),
		}
		fmt.Fprint(w, sampleResponse)
	}))
	defer ts.Close()

	p := newTestProvider(ts)
	loc, err := p.FetchForecast(context.Background(), "臺北市")
	if err != nil {
		t.Fatalf("FetchForecast failed: %v", err)
	}

	if gotQuery["Authorization"] != "test-key" {
		t.Errorf("Authorization param = %q, want %q", gotQuery["Authorization"], "test-key")
	}
	if gotQuery["locationName"] != "臺北市" {
		t.Errorf("locationName param = %q, want %q", gotQuery["locationName"], "臺北市")
	}

	if loc.LocationName != "臺北市" {
		t.Errorf("location name = %q, want %q", loc.LocationName, "臺北市")
	}
	if len(loc.WeatherElement) != 2 {
		t.Fatalf("expected 2 weather elements, got %d", len(loc.WeatherElement))
	}
	if got := loc.WeatherElement[0].Time[0].ElementValue[0].Value; got != "多雲時晴" {
		t.Errorf("first element value = %q, want %q", got, "多雲時晴")
	}
}

func TestFetchForecastLocationMissing(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, sampleResponse)
	}))
	defer ts.Close()

	p := newTestProvider(ts)
	_, err := p.FetchForecast(context.Background(), "高雄市")
	if !errors.Is(err, ErrLocationNotFound) {
		t.Fatalf("expected ErrLocationNotFound, got %v", err)
	}
}

func TestFetchForecastUpstreamError(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
		fmt.Fprint(w, `{"message": "service temporarily unavailable"}`)
	}))
	defer ts.Close()

	p := newTestProvider(ts)
	_, err := p.FetchForecast(context.Background(), "臺北市")

	var upstreamErr *UpstreamError
	if !errors.As(err, &upstreamErr) {
		t.Fatalf("expected UpstreamError, got %v", err)
	}
	if upstreamErr.StatusCode != http.StatusServiceUnavailable {
		t.Errorf("status = %d, want %d", upstreamErr.StatusCode, http.StatusServiceUnavailable)
	}
	if upstreamErr.Body != `{"message": "service temporarily unavailable"}` {
		t.Errorf("body = %q, upstream payload should be carried verbatim", upstreamErr.Body)
	}
}

func TestFetchForecastMalformedBody(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, "not json")
	}))
	defer ts.Close()

	p := newTestProvider(ts)
	_, err := p.FetchForecast(context.Background(), "臺北市")
	if err == nil {
		t.Fatal("expected parse error for malformed body")
	}
	var upstreamErr *UpstreamError
	if errors.As(err, &upstreamErr) {
		t.Fatalf("malformed 200 body should not be an UpstreamError: %v", err)
	}
}

func TestFetchForecastContextCanceled(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		<-r.Context().Done()
	}))
	defer ts.Close()

	p := newTestProvider(ts)
	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	_, err := p.FetchForecast(ctx, "臺北市")
	if err == nil {
		t.Fatal("expected error when context deadline is exceeded")
	}
}
