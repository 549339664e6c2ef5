package domain

import (
	"fmt"
	"strings"
	"time"
)

// readingLayout is the wall-clock format of ReadingDateTime.
const readingLayout = "2006-01-02 15:04:05"

// ResolveTimestamp interprets raw as wall-clock time at the named station and
// renders it in UTC and in the station's zone. Stations missing from the
// directory are treated as reporting in UTC and flagged TimezoneUnknown.
func ResolveTimestamp(raw, station string, dir *Directory) (Date, error) {
	loc, known, err := dir.Location(station)
	if err != nil {
		return Date{}, err
	}
	if !known {
		loc = time.UTC
	}

	t, err := time.ParseInLocation(readingLayout, strings.TrimSpace(raw), loc)
	if err != nil {
		return Date{}, fmt.Errorf("parse reading time %q: %w", raw, err)
	}

	return Date{
		UTC:             t.UTC().Format(time.RFC3339),
		Local:           t.Format(time.RFC3339),
		TimezoneUnknown: !known,
	}, nil
}
