package domain

import (
	"encoding/xml"
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Feed is the parsed content of one post's XML feed.
type Feed struct {
	Station string
	Items   []FeedItem
}

// FeedItem is one hourly reading. RawTimestamp is copied verbatim from the feed.
type FeedItem struct {
	Value        float64
	RawTimestamp string

	// Malformed is set when the concentration could not be parsed; Value is NaN.
	Malformed bool
}

// rssDocument maps the subset of the feed the adapter reads. The root element
// name is not checked.
type rssDocument struct {
	Titles []string  `xml:"channel>title"`
	Items  []rssItem `xml:"channel>item"`
}

type rssItem struct {
	Conc            string `xml:"Conc"`
	ReadingDateTime string `xml:"ReadingDateTime"`
}

// ParseFeed extracts the station name and readings from a feed body. An empty
// body is a feed that does not exist and yields an empty Feed without error.
func ParseFeed(body string) (Feed, error) {
	if strings.TrimSpace(body) == "" {
		return Feed{}, nil
	}

	dec := xml.NewDecoder(strings.NewReader(body))
	dec.Strict = false
	dec.Entity = xml.HTMLEntity

	var doc rssDocument
	if err := dec.Decode(&doc); err != nil {
		return Feed{}, fmt.Errorf("decode feed: %w", err)
	}

	feed := Feed{Items: make([]FeedItem, 0, len(doc.Items))}
	if len(doc.Titles) > 0 {
		feed.Station = strings.TrimSpace(doc.Titles[0])
	}
	for _, it := range doc.Items {
		feed.Items = append(feed.Items, parseItem(it))
	}
	return feed, nil
}

func parseItem(it rssItem) FeedItem {
	item := FeedItem{RawTimestamp: strings.TrimSpace(it.ReadingDateTime)}
	v, err := strconv.ParseFloat(strings.TrimSpace(it.Conc), 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		item.Value = math.NaN()
		item.Malformed = true
		return item
	}
	item.Value = v
	return item
}
