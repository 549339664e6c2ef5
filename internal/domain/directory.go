package domain

import (
	"fmt"
	"maps"
	"time"
	_ "time/tzdata" // embedded zoneinfo for minimal images
)

// Directory maps post display names to a timezone and to coordinates. The two
// tables are independent: a name may appear in one and not the other.
// A Directory is never mutated after construction and is safe for concurrent use.
type Directory struct {
	timezones   map[string]string
	coordinates map[string]Coordinates
}

// NewDirectory builds a Directory from a zone → display names table and a
// display name → coordinates table. The inputs are copied.
func NewDirectory(zones map[string][]string, coordinates map[string]Coordinates) *Directory {
	d := &Directory{
		timezones:   make(map[string]string),
		coordinates: make(map[string]Coordinates, len(coordinates)),
	}
	for zone, names := range zones {
		for _, name := range names {
			d.timezones[name] = zone
		}
	}
	maps.Copy(d.coordinates, coordinates)
	return d
}

// DefaultDirectory returns the directory of known diplomatic posts.
func DefaultDirectory() *Directory {
	return NewDirectory(stationZones, stationCoordinates)
}

// With returns a new Directory with the given entries layered over d.
func (d *Directory) With(zones map[string][]string, coordinates map[string]Coordinates) *Directory {
	out := NewDirectory(zones, coordinates)
	if d == nil {
		return out
	}
	for name, zone := range d.timezones {
		if _, ok := out.timezones[name]; !ok {
			out.timezones[name] = zone
		}
	}
	for name, c := range d.coordinates {
		if _, ok := out.coordinates[name]; !ok {
			out.coordinates[name] = c
		}
	}
	return out
}

// Timezone returns the IANA zone identifier for a post.
func (d *Directory) Timezone(name string) (string, bool) {
	if d == nil {
		return "", false
	}
	zone, ok := d.timezones[name]
	return zone, ok
}

// Coordinates returns the location of a post.
func (d *Directory) Coordinates(name string) (Coordinates, bool) {
	if d == nil {
		return Coordinates{}, false
	}
	c, ok := d.coordinates[name]
	return c, ok
}

// Location loads the post's zone. known is false when the post has no zone
// entry; err is set when the entry names a zone that cannot be loaded.
func (d *Directory) Location(name string) (loc *time.Location, known bool, err error) {
	zone, ok := d.Timezone(name)
	if !ok {
		return nil, false, nil
	}
	loc, err = time.LoadLocation(zone)
	if err != nil {
		return nil, true, fmt.Errorf("load timezone %q for %q: %w", zone, name, err)
	}
	return loc, true, nil
}

// Len reports the number of posts with a timezone and with coordinates.
func (d *Directory) Len() (timezones, coordinates int) {
	if d == nil {
		return 0, 0
	}
	return len(d.timezones), len(d.coordinates)
}
