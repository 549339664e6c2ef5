package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/couchcryptid/stateair-etl/internal/domain"
)

const (
	defaultBroker = "localhost:9092"
	testSourceURL = "http://dosairnowdata.org/dos/RSS/Lima/Lima-PM2.5.xml"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	require.Len(t, cfg.Sources, 2)
	assert.Equal(t, "http://dosairnowdata.org/dos/RSS/NewDelhi/NewDelhi-PM2.5.xml", cfg.Sources[0].URL)
	assert.Empty(t, cfg.DirectoryFile)
	assert.Equal(t, time.Hour, cfg.FetchInterval)
	assert.Equal(t, []string{defaultBroker}, cfg.KafkaBrokers)
	assert.Equal(t, "air-quality-measurements", cfg.KafkaSinkTopic)
	assert.Equal(t, ":8080", cfg.HTTPAddr)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, "json", cfg.LogFormat)
	assert.Equal(t, 10*time.Second, cfg.ShutdownTimeout)
	assert.Equal(t, 30*time.Second, cfg.HTTPTimeout)
	assert.Equal(t, uint32(5), cfg.BreakerMaxFailures)
	assert.Equal(t, time.Minute, cfg.BreakerTimeout)
}

func TestLoad_CustomEnv(t *testing.T) {
	t.Setenv("SOURCES", testSourceURL+", http://dosairnowdata.org/dos/RSS/Dhaka/Dhaka-PM2.5.xml")
	t.Setenv("DIRECTORY_FILE", "/etc/stateair/directory.yaml")
	t.Setenv("FETCH_INTERVAL", "15m")
	t.Setenv("KAFKA_BROKERS", "broker1:9092,broker2:9092")
	t.Setenv("KAFKA_SINK_TOPIC", "custom-sink")
	t.Setenv("HTTP_ADDR", ":9090")
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("LOG_FORMAT", "text")
	t.Setenv("SHUTDOWN_TIMEOUT", "30s")
	t.Setenv("HTTP_TIMEOUT", "5s")
	t.Setenv("BREAKER_MAX_FAILURES", "3")
	t.Setenv("BREAKER_TIMEOUT", "2m")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, []domain.Source{
		{URL: testSourceURL},
		{URL: "http://dosairnowdata.org/dos/RSS/Dhaka/Dhaka-PM2.5.xml"},
	}, cfg.Sources)
	assert.Equal(t, "/etc/stateair/directory.yaml", cfg.DirectoryFile)
	assert.Equal(t, 15*time.Minute, cfg.FetchInterval)
	assert.Equal(t, []string{"broker1:9092", "broker2:9092"}, cfg.KafkaBrokers)
	assert.Equal(t, "custom-sink", cfg.KafkaSinkTopic)
	assert.Equal(t, ":9090", cfg.HTTPAddr)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, "text", cfg.LogFormat)
	assert.Equal(t, 30*time.Second, cfg.ShutdownTimeout)
	assert.Equal(t, 5*time.Second, cfg.HTTPTimeout)
	assert.Equal(t, uint32(3), cfg.BreakerMaxFailures)
	assert.Equal(t, 2*time.Minute, cfg.BreakerTimeout)
}

func TestLoad_InvalidShutdownTimeout(t *testing.T) {
	t.Setenv("SHUTDOWN_TIMEOUT", "not-a-duration")
	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "SHUTDOWN_TIMEOUT")
}

func TestLoad_InvalidDurations(t *testing.T) {
	for _, key := range []string{"FETCH_INTERVAL", "HTTP_TIMEOUT", "BREAKER_TIMEOUT"} {
		t.Run(key, func(t *testing.T) {
			t.Setenv(key, "-1s")
			_, err := Load()
			require.Error(t, err)
			assert.Contains(t, err.Error(), key)
		})
	}
}

func TestLoad_InvalidBreakerMaxFailures(t *testing.T) {
	t.Setenv("BREAKER_MAX_FAILURES", "0")
	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "BREAKER_MAX_FAILURES")
}

func TestLoad_InvalidSource(t *testing.T) {
	t.Setenv("SOURCES", "http://dosairnowdata.org/dos/RSS/Lima/Lima-O3.xml")
	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "SOURCES")
}

func TestLoad_BlankSources(t *testing.T) {
	t.Setenv("SOURCES", " , ")
	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "SOURCES is required")
}

func TestLoadDirectory_Default(t *testing.T) {
	dir, err := LoadDirectory("")
	require.NoError(t, err)

	zone, ok := dir.Timezone("New Delhi")
	require.True(t, ok)
	assert.Equal(t, "Asia/Kolkata", zone)
}

func TestLoadDirectory_Overrides(t *testing.T) {
	path := filepath.Join(t.TempDir(), "directory.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
timezones:
  Asia/Tokyo: [Tokyo, Sapporo]
coordinates:
  Tokyo: {latitude: 35.67, longitude: 139.74}
`), 0o600))

	dir, err := LoadDirectory(path)
	require.NoError(t, err)

	zone, ok := dir.Timezone("Sapporo")
	require.True(t, ok)
	assert.Equal(t, "Asia/Tokyo", zone)

	coords, ok := dir.Coordinates("Tokyo")
	require.True(t, ok)
	assert.Equal(t, domain.Coordinates{Latitude: 35.67, Longitude: 139.74}, coords)

	_, ok = dir.Coordinates("Sapporo")
	assert.False(t, ok)

	_, ok = dir.Timezone("Beijing")
	assert.True(t, ok, "built-in entries are kept")
}

func TestLoadDirectory_Errors(t *testing.T) {
	_, err := LoadDirectory(filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "read directory file")

	path := filepath.Join(t.TempDir(), "bad.yaml")
	require.NoError(t, os.WriteFile(path, []byte("timezones: [not, a, map]"), 0o600))
	_, err = LoadDirectory(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parse directory file")
}
