package parser

import (
	"context"
	"fmt"
	"math"
	"os"
	"runtime"
	"strings"
	"unicode"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geo"
	"github.com/paulmach/osm"
	"github.com/paulmach/osm/osmpbf"
	"github.com/paulmach/osm/osmxml"
	"github.com/ttpr0/go-metro/structs"
	. "github.com/ttpr0/go-metro/util"
	"golang.org/x/exp/slices"
	"golang.org/x/exp/slog"
)

//*******************************************
// osm parser structs
//*******************************************

type _OSMStop struct {
	Title string
	Point orb.Point
}

type _OSMRoute struct {
	Line  rune
	Stops List[int64]
}

var route_types = Dict[string, bool]{"subway": true, "light_rail": true, "train": true, "tram": true, "monorail": true}

//*******************************************
// osm parser
//*******************************************

// ParseOSMFile imports the route relations of an osm extract. Files ending
// in .pbf are read with the pbf decoder, everything else as osm xml.
func ParseOSMFile(filename string, line_tags Dict[string, string]) (*Network, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	var scanner osm.Scanner
	if strings.HasSuffix(filename, ".pbf") {
		pbf_scanner := osmpbf.New(context.Background(), file, runtime.GOMAXPROCS(-1))
		pbf_scanner.SkipWays = true
		scanner = pbf_scanner
	} else {
		scanner = osmxml.New(context.Background(), file)
	}
	defer scanner.Close()

	network, err := ParseOSM(scanner, line_tags)
	if err != nil {
		return nil, fmt.Errorf("failed to parse %v: %w", filename, err)
	}
	return network, nil
}

// ParseOSM builds a network from named stop nodes and public transport route
// relations. Every route relation becomes one line, identified by its ref
// (mapped through line_tags if present). Consecutive stops of a route are
// connected with their great circle distance rounded to whole km.
func ParseOSM(scanner osm.Scanner, line_tags Dict[string, string]) (*Network, error) {
	stops := NewDict[int64, _OSMStop](1000)
	routes := NewList[_OSMRoute](10)
	lines := NewDict[string, string](10)

	c := 0
	for scanner.Scan() {
		switch object := scanner.Object().(type) {
		case *osm.Node:
			name := object.Tags.Find("name")
			if name == "" {
				continue
			}
			c += 1
			if c%1000 == 0 {
				slog.Debug(fmt.Sprintf("%v", c))
			}
			stops[object.FeatureID().Ref()] = _OSMStop{
				Title: strings.ReplaceAll(name, structs.LINE_DELIMITER, " "),
				Point: orb.Point{object.Lon, object.Lat},
			}
		case *osm.Relation:
			if object.Tags.Find("type") != "route" {
				continue
			}
			if !route_types.ContainsKey(object.Tags.Find("route")) {
				continue
			}
			line, ok := _GetLineCode(object.Tags, line_tags)
			if !ok {
				slog.Warn(fmt.Sprintf("skipping route relation %v without ref", object.ID))
				continue
			}
			if !lines.ContainsKey(string(line)) {
				lines[string(line)] = _GetLineName(object.Tags)
			}
			route := _OSMRoute{Line: line, Stops: NewList[int64](32)}
			for _, member := range object.Members {
				if member.Type != osm.TypeNode || !strings.HasPrefix(member.Role, "stop") {
					continue
				}
				route.Stops.Add(member.Ref)
			}
			routes.Add(route)
		default:
			continue
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}

	return _CreateNetwork(stops, routes, lines), nil
}

func _CreateNetwork(stops Dict[int64, _OSMStop], routes List[_OSMRoute], lines Dict[string, string]) *Network {
	// stops of the same title are merged into one station
	station_lines := NewDict[string, structs.LineSet](stops.Length())
	points := NewDict[string, orb.Point](stops.Length())
	for _, route := range routes {
		for _, ref := range route.Stops {
			stop, ok := stops[ref]
			if !ok {
				continue
			}
			if station := station_lines[stop.Title]; !station.Contains(route.Line) {
				station_lines[stop.Title] = station.Union(structs.LineSet{route.Line})
			}
			if !points.ContainsKey(stop.Title) {
				points[stop.Title] = stop.Point
			}
		}
	}
	names := NewDict[string, string](station_lines.Length())
	for title, line_set := range station_lines {
		names[title] = structs.MakeStationName(title, line_set)
	}

	network := Network{
		Lines:       lines,
		Stations:    NewList[string](names.Length()),
		Connections: NewList[structs.Connection](names.Length()),
	}
	for _, name := range names {
		network.Stations.Add(name)
	}
	slices.Sort(network.Stations)

	seen := NewDict[Tuple[string, string], bool](names.Length())
	for _, route := range routes {
		prev := ""
		for _, ref := range route.Stops {
			stop, ok := stops[ref]
			if !ok {
				continue
			}
			curr := stop.Title
			if prev != "" && prev != curr {
				key := MakeTuple(min(prev, curr), max(prev, curr))
				if !seen[key] {
					seen[key] = true
					network.Connections.Add(structs.Connection{
						From:     names[prev],
						To:       names[curr],
						Distance: _DistanceKm(points[prev], points[curr]),
					})
				}
			}
			prev = curr
		}
	}
	slog.Info(fmt.Sprintf("osm network: %v routes, %v stations, %v connections", routes.Length(), network.Stations.Length(), network.Connections.Length()))
	return &network
}

//*******************************************
// tag helpers
//*******************************************

func _GetLineCode(tags osm.Tags, line_tags Dict[string, string]) (rune, bool) {
	ref := tags.Find("ref")
	if ref == "" {
		ref = tags.Find("name")
	}
	if ref == "" {
		return 0, false
	}
	if code, ok := line_tags[ref]; ok && code != "" {
		return []rune(code)[0], true
	}
	for _, r := range ref {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			return unicode.ToUpper(r), true
		}
	}
	return 0, false
}

func _GetLineName(tags osm.Tags) string {
	if name := tags.Find("name"); name != "" {
		return name
	}
	return tags.Find("ref")
}

func _DistanceKm(a, b orb.Point) int32 {
	km := int32(math.Round(geo.Distance(a, b) / 1000))
	if km < 1 {
		return 1
	}
	return km
}
