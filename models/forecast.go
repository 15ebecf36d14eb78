package models

// ForecastEntry represents one simplified forecast time slot. Fields with no
// upstream value stay empty strings so the JSON shape is stable for clients.
type ForecastEntry struct {
	StartTime string `json:"startTime"` // slot start, from the first weather element
	EndTime   string `json:"endTime"`   // slot end
	Wx        string `json:"wx"`        // weather description
	PoP       string `json:"pop"`       // 12-hour precipitation probability, with "%"
	MinT      string `json:"minT"`      // minimum temperature, with "°C"
	MaxT      string `json:"maxT"`      // maximum temperature, with "°C"
	CI        string `json:"ci"`        // comfort index description
	WS        string `json:"ws"`        // wind speed
	RH        string `json:"rh"`        // relative humidity, with "%"
	UVI       string `json:"uvi"`       // UV exposure level
}

// WeatherData is the payload returned for a city forecast request
type WeatherData struct {
	City      string          `json:"city"`
	Forecasts []ForecastEntry `json:"forecasts"`
}
