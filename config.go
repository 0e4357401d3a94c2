package main

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/ttpr0/go-metro/graph"
	"github.com/ttpr0/go-metro/parser"
	"github.com/ttpr0/go-metro/routing"
	. "github.com/ttpr0/go-metro/util"
	"golang.org/x/exp/slog"
	"gopkg.in/yaml.v3"
)

//**********************************************************
// config
//**********************************************************

// ReadConfig reads the yaml config. A missing file yields the default config.
func ReadConfig(file string) (Config, error) {
	config := DefaultConfig()
	data, err := os.ReadFile(file)
	if errors.Is(err, fs.ErrNotExist) {
		slog.Info(fmt.Sprintf("config file %v not found, using defaults", file))
		return config, nil
	}
	if err != nil {
		return config, fmt.Errorf("failed to read config file: %w", err)
	}
	slog.Info("Reading config file " + file)
	if err := yaml.Unmarshal(data, &config); err != nil {
		return config, fmt.Errorf("failed to parse config file %v: %w", file, err)
	}
	if err := config.Validate(); err != nil {
		return config, err
	}
	return config, nil
}

func DefaultConfig() Config {
	config := Config{}
	config.Network.Source = "builtin"
	config.Routing.Algorithm = routing.DIJKSTRA
	config.Routing.Metric = graph.DISTANCE
	config.Routing.CacheSize = 256
	config.Routing.TimeModel = graph.DefaultTimeModel()
	config.Server.Address = ":5002"
	config.Logging.Level = "info"
	return config
}

type Config struct {
	Network NetworkOptions `yaml:"network"`
	Routing RoutingOptions `yaml:"routing"`
	Server  struct {
		Address string `yaml:"address"`
	} `yaml:"server"`
	Logging struct {
		Level string `yaml:"level"`
	} `yaml:"logging"`
}

type NetworkOptions struct {
	Source   string               `yaml:"source"`
	Format   parser.NetworkFormat `yaml:"format"`
	LineTags Dict[string, string] `yaml:"line-tags"`
}

type RoutingOptions struct {
	Algorithm routing.AlgorithmType `yaml:"algorithm"`
	Metric    graph.MetricType      `yaml:"metric"`
	CacheSize int                   `yaml:"cache-size"`
	TimeModel graph.TimeModel       `yaml:"time-model"`
}

func (self Config) Validate() error {
	if self.Routing.CacheSize < 0 {
		return fmt.Errorf("routing.cache-size must not be negative, got %v", self.Routing.CacheSize)
	}
	if err := self.Routing.TimeModel.Validate(); err != nil {
		return fmt.Errorf("invalid routing.time-model: %w", err)
	}
	switch self.Network.Format {
	case "", parser.FORMAT_YAML, parser.FORMAT_CSV, parser.FORMAT_OSM:
	default:
		return fmt.Errorf("unknown network.format %v", self.Network.Format)
	}
	if _, err := ParseLogLevel(self.Logging.Level); err != nil {
		return err
	}
	return nil
}
