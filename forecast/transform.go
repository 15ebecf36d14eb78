package forecast

import (
	"github.com/Jammy851226/CwaWeather-backend/models"
)

// maxSlots caps the number of forecast entries returned per city.
const maxSlots = 7

// Transform flattens a CWA location record into at most maxSlots simplified
// forecast entries. The first weather element's time axis is authoritative:
// it determines the slot count and the start/end times of every entry. Other
// elements are read at the same slot index; an element with no value for a
// slot leaves its output field empty rather than failing the request.
func Transform(loc models.Location) []models.ForecastEntry {
	entries := []models.ForecastEntry{}
	if len(loc.WeatherElement) == 0 {
		return entries
	}

	axis := loc.WeatherElement[0].Time
	slots := len(axis)
	if slots > maxSlots {
		slots = maxSlots
	}

	for i := 0; i < slots; i++ {
		entry := models.ForecastEntry{
			StartTime: axis[i].StartTime,
			EndTime:   axis[i].EndTime,
		}

		for _, el := range loc.WeatherElement {
			if i >= len(el.Time) {
				continue
			}
			values := el.Time[i].ElementValue
			if len(values) == 0 {
				continue
			}
			value := values[0].Value

			switch el.ElementName {
			case "UVI":
				entry.UVI = value
			case "MaxT":
				entry.MaxT = value + "°C"
			case "MinT":
				entry.MinT = value + "°C"
			case "RH":
				entry.RH = value + "%"
			case "PoP12h":
				entry.PoP = value + "%"
			case "WS":
				entry.WS = value
			case "Wx":
				entry.Wx = value
			case "MaxCI":
				entry.CI = value
			}
			// unrecognized element names are ignored so new upstream
			// elements don't break the response shape
		}

		entries = append(entries, entry)
	}

	return entries
}
