package parser

import (
	"bytes"
	_ "embed"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/ttpr0/go-metro/graph"
	"github.com/ttpr0/go-metro/structs"
	. "github.com/ttpr0/go-metro/util"
	"golang.org/x/exp/slog"
	"gopkg.in/yaml.v3"
)

//*******************************************
// network
//*******************************************

// Network is the static input of the graph: station names with their line
// suffix and the connections between them.
type Network struct {
	Name        string                   `yaml:"name" json:"name"`
	Lines       Dict[string, string]     `yaml:"lines" json:"lines"`
	Stations    List[string]             `yaml:"stations" json:"stations"`
	Connections List[structs.Connection] `yaml:"connections" json:"connections"`
}

func (self *Network) BuildGraph() (*graph.Graph, error) {
	g, err := graph.BuildGraph(self.Stations, self.Connections)
	if err != nil {
		return nil, fmt.Errorf("failed to build network %v: %w", self.Name, err)
	}
	return g, nil
}

//go:embed data/kolkata.yaml
var builtin_network []byte

// Builtin returns the network compiled into the binary.
func Builtin() (*Network, error) {
	return ParseYAML(bytes.NewReader(builtin_network))
}

func ParseYAML(reader io.Reader) (*Network, error) {
	network := Network{}
	decoder := yaml.NewDecoder(reader)
	if err := decoder.Decode(&network); err != nil {
		return nil, fmt.Errorf("failed to decode network: %w", err)
	}
	return &network, nil
}

//*******************************************
// network loading
//*******************************************

type NetworkFormat string

const (
	FORMAT_YAML NetworkFormat = "yaml"
	FORMAT_CSV  NetworkFormat = "csv"
	FORMAT_OSM  NetworkFormat = "osm"
)

// LoadNetwork reads a network from the source. "builtin" or an empty source
// selects the embedded network. If no format is given it is guessed from
// the file extension. A csv source is a directory containing stations.csv
// and connections.csv.
func LoadNetwork(source string, format NetworkFormat, line_tags Dict[string, string]) (*Network, error) {
	if source == "" || source == "builtin" {
		slog.Info("loading builtin network")
		return Builtin()
	}
	if format == "" {
		format = _GuessFormat(source)
	}
	slog.Info(fmt.Sprintf("loading %v network from %v", format, source))
	switch format {
	case FORMAT_YAML:
		file, err := os.Open(source)
		if err != nil {
			return nil, err
		}
		defer file.Close()
		return ParseYAML(file)
	case FORMAT_CSV:
		return ParseCSVDir(source)
	case FORMAT_OSM:
		return ParseOSMFile(source, line_tags)
	default:
		return nil, fmt.Errorf("unknown network format %v", format)
	}
}

func _GuessFormat(source string) NetworkFormat {
	if strings.HasSuffix(source, ".osm.pbf") || strings.HasSuffix(source, ".osm") || strings.HasSuffix(source, ".pbf") {
		return FORMAT_OSM
	}
	info, err := os.Stat(source)
	if err == nil && info.IsDir() {
		return FORMAT_CSV
	}
	switch filepath.Ext(source) {
	case ".csv":
		return FORMAT_CSV
	default:
		return FORMAT_YAML
	}
}
