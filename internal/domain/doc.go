// Package domain models air quality readings published by US diplomatic posts
// (the Department of State "StateAir" network, mirrored by AirNow DOS).
//
// # Data Source
//
// Each monitoring post publishes one small RSS-style XML feed per pollutant,
// e.g. http://dosairnowdata.org/dos/RSS/NewDelhi/NewDelhi-PM2.5.xml. The ozone
// feed for the same post lives at the same URL with "PM2.5" replaced by "O3".
// Not every post measures ozone; a missing feed answers 404 and is treated as
// "no readings" rather than an error.
//
// # Feed Format
//
//	<rss><channel>
//	  <title>New Delhi</title>
//	  <item>
//	    <Conc>12.3</Conc>
//	    <ReadingDateTime>2023-06-01 08:00:00</ReadingDateTime>
//	  </item>
//	</channel></rss>
//
// The channel title is the post's display name. Tags are fixed-case. Each item
// is one hourly reading: Conc is the concentration and ReadingDateTime is the
// wall-clock time at the post, with no offset.
//
// # Normalization
//
// Display names are resolved through a [Directory] to an IANA timezone and a
// coordinate pair. Readings are emitted as [Measurement] records with both a
// UTC and a local RFC 3339 timestamp. Posts missing from the directory keep
// nil coordinates and their readings are interpreted as UTC, flagged with
// Date.TimezoneUnknown.
//
// Units are fixed per parameter before conversion:
//
//	pm25: µg/m³
//	o3:   ppb
//
// Malformed concentrations parse to NaN with FeedItem.Malformed set and are
// dropped by [BuildMeasurements]; NaN cannot be encoded as JSON downstream.
package domain
