package domain

import (
	"fmt"
	"math"
)

// Kind is the measured parameter of a feed.
type Kind string

const (
	KindPM25 Kind = "pm25"
	KindO3   Kind = "o3"
)

// Kinds lists every supported parameter in output order.
var Kinds = []Kind{KindPM25, KindO3}

// Unit returns the unit a post reports the parameter in.
func (k Kind) Unit() string {
	switch k {
	case KindPM25:
		return "µg/m³"
	case KindO3:
		return "ppb"
	default:
		return ""
	}
}

const (
	// LocationPrefix marks every location name as coming from a diplomatic post.
	LocationPrefix = "US Diplomatic Post: "

	attributionName = "EPA AirNow DOS"
	attributionURL  = "http://airnow.gov/index.cfm?action=airnow.global_summary"
)

// Coordinates is a WGS-84 latitude/longitude pair.
type Coordinates struct {
	Latitude  float64 `json:"latitude" yaml:"latitude"`
	Longitude float64 `json:"longitude" yaml:"longitude"`
}

// AveragingPeriod is the window a reported value represents.
type AveragingPeriod struct {
	Value float64 `json:"value"`
	Unit  string  `json:"unit"`
}

// Attribution credits a data provider.
type Attribution struct {
	Name string `json:"name"`
	URL  string `json:"url"`
}

// Date carries the same instant rendered in UTC and in the post's local zone.
type Date struct {
	UTC   string `json:"utc"`
	Local string `json:"local"`

	// TimezoneUnknown is set when the post is missing from the directory and
	// the reading was interpreted as UTC.
	TimezoneUnknown bool `json:"timezoneUnknown,omitempty"`
}

// Measurement is the canonical record handed to the aggregation pipeline.
type Measurement struct {
	Location        string          `json:"location"`
	Parameter       Kind            `json:"parameter"`
	Unit            string          `json:"unit"`
	Value           float64         `json:"value"`
	AveragingPeriod AveragingPeriod `json:"averagingPeriod"`
	Attribution     []Attribution   `json:"attribution"`
	Coordinates     *Coordinates    `json:"coordinates,omitempty"`
	Date            Date            `json:"date"`
}

// Result is the adapter's output for one source.
type Result struct {
	Name         string        `json:"name"`
	Measurements []Measurement `json:"measurements"`
}

// BuildMeasurements converts a parsed feed into measurement records, resolving
// timestamps and coordinates through dir. Malformed items are skipped and
// reported through the dropped count. A timestamp that cannot be parsed fails
// the whole feed.
func BuildMeasurements(feed Feed, kind Kind, dir *Directory) (measurements []Measurement, dropped int, err error) {
	coords, hasCoords := dir.Coordinates(feed.Station)
	base := Measurement{
		Location:        LocationPrefix + feed.Station,
		Parameter:       kind,
		Unit:            kind.Unit(),
		AveragingPeriod: AveragingPeriod{Value: 1, Unit: "hours"},
	}

	measurements = make([]Measurement, 0, len(feed.Items))
	for i, item := range feed.Items {
		if item.Malformed || math.IsNaN(item.Value) {
			dropped++
			continue
		}

		date, err := ResolveTimestamp(item.RawTimestamp, feed.Station, dir)
		if err != nil {
			return nil, dropped, fmt.Errorf("%s item %d: %w", kind, i, err)
		}

		m := base
		m.Value = item.Value
		m.Date = date
		m.Attribution = []Attribution{{Name: attributionName, URL: attributionURL}}
		if hasCoords {
			c := coords
			m.Coordinates = &c
		}
		measurements = append(measurements, m)
	}
	return measurements, dropped, nil
}

// Batch is one source's measurements on their way to the sink.
type Batch struct {
	RunID        string
	Source       string
	Measurements []Measurement
}
