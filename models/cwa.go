package models

// CWAResponse mirrors the nested JSON returned by the CWA open-data
// datastore endpoints (locations -> location -> weatherElement -> time).
type CWAResponse struct {
	Success string `json:"success"`
	Records struct {
		Locations []LocationGroup `json:"locations"`
	} `json:"records"`
}

// LocationGroup is one dataset grouping of county/city records
type LocationGroup struct {
	DatasetDescription string     `json:"datasetDescription"`
	LocationsName      string     `json:"locationsName"`
	Location           []Location `json:"location"`
}

// Location is the forecast record for a single county or city
type Location struct {
	LocationName   string           `json:"locationName"`
	Geocode        string           `json:"geocode"`
	WeatherElement []WeatherElement `json:"weatherElement"`
}

// WeatherElement is one measured quantity (temperature, humidity, ...)
// observed across a sequence of time windows
type WeatherElement struct {
	ElementName string     `json:"elementName"`
	Description string     `json:"description"`
	Time        []TimeSlot `json:"time"`
}

// TimeSlot is a single forecast window for one element
type TimeSlot struct {
	StartTime    string         `json:"startTime"`
	EndTime      string         `json:"endTime"`
	ElementValue []ElementValue `json:"elementValue"`
}

// ElementValue is a single measurement entry within a time slot
type ElementValue struct {
	Value    string `json:"value"`
	Measures string `json:"measures"`
}
