package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/ttpr0/go-metro/graph"
	"github.com/ttpr0/go-metro/routing"
	"golang.org/x/exp/slog"
)

func TestReadConfigMissingFile(t *testing.T) {
	config, err := ReadConfig("./testdata/missing.yaml")
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), config)
	assert.Equal(t, "builtin", config.Network.Source)
	assert.Equal(t, routing.DIJKSTRA, config.Routing.Algorithm)
	assert.Equal(t, graph.DefaultTimeModel(), config.Routing.TimeModel)
}

func TestReadConfig(t *testing.T) {
	config, err := ReadConfig("./testdata/config.yaml")
	require.NoError(t, err)
	assert.Equal(t, "./parser/testdata/network.yaml", config.Network.Source)
	assert.Equal(t, routing.EXHAUSTIVE, config.Routing.Algorithm)
	assert.Equal(t, graph.TIME, config.Routing.Metric)
	assert.Equal(t, 0, config.Routing.CacheSize)
	assert.Equal(t, graph.TimeModel{Overhead: 60, PerKm: 30}, config.Routing.TimeModel)
	assert.Equal(t, ":8080", config.Server.Address)
	assert.Equal(t, "debug", config.Logging.Level)
}

func TestReadConfigUnknownAlgorithm(t *testing.T) {
	_, err := ReadConfig("./testdata/bad_config.yaml")
	assert.ErrorIs(t, err, routing.ErrUnknownAlgorithm)
}

func TestValidateConfig(t *testing.T) {
	config := DefaultConfig()
	require.NoError(t, config.Validate())

	config.Routing.CacheSize = -1
	assert.Error(t, config.Validate())

	config = DefaultConfig()
	config.Routing.TimeModel.PerKm = 0
	assert.Error(t, config.Validate())

	config = DefaultConfig()
	config.Routing.TimeModel.Overhead = graph.MAX_TIME_PARAM + 1
	assert.Error(t, config.Validate())

	config = DefaultConfig()
	config.Network.Format = "gtfs"
	assert.Error(t, config.Validate())

	config = DefaultConfig()
	config.Logging.Level = "loud"
	assert.Error(t, config.Validate())
}

func TestLogHandler(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(NewLogHandler(&buf, &slog.HandlerOptions{Level: slog.LevelInfo}))

	logger.Debug("hidden")
	logger.Info("loaded network", "stations", 50)

	out := buf.String()
	assert.NotContains(t, out, "hidden")
	assert.Contains(t, out, "INFO loaded network stations=50")
	assert.True(t, strings.HasSuffix(out, "\n"))
}

func TestLogHandlerWithAttrs(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(NewLogHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))

	logger.With("network", "kolkata").WithGroup("route").Debug("cached", "from", "Howrah~G")

	out := buf.String()
	assert.Contains(t, out, "DEBUG cached network=kolkata route.from=Howrah~G")
	assert.Equal(t, 1, strings.Count(out, "\n"))
}

func TestParseLogLevel(t *testing.T) {
	level, err := ParseLogLevel("debug")
	require.NoError(t, err)
	assert.Equal(t, slog.LevelDebug, level)
	level, err = ParseLogLevel("")
	require.NoError(t, err)
	assert.Equal(t, slog.LevelInfo, level)
	_, err = ParseLogLevel("loud")
	assert.Error(t, err)
}
