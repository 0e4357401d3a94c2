package itinerary

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"github.com/ttpr0/go-metro/routing"
	"github.com/ttpr0/go-metro/structs"
	. "github.com/ttpr0/go-metro/util"
)

//*******************************************
// segments
//*******************************************

type SegmentKind byte

const (
	START       SegmentKind = 0
	WAYPOINT    SegmentKind = 1
	INTERCHANGE SegmentKind = 2
	END         SegmentKind = 3
)

func (self SegmentKind) String() string {
	switch self {
	case START:
		return "start"
	case WAYPOINT:
		return "waypoint"
	case INTERCHANGE:
		return "interchange"
	case END:
		return "end"
	default:
		panic("unknown segment kind")
	}
}
func (self SegmentKind) MarshalJSON() ([]byte, error) {
	return json.Marshal(self.String())
}

// Segment is one element of an itinerary. Interchange segments carry the
// station where the line is left and the next station on the new line.
type Segment struct {
	Kind    SegmentKind `json:"kind"`
	Station string      `json:"station"`
	Next    string      `json:"next,omitempty"`
}

func (self Segment) String() string {
	if self.Kind == INTERCHANGE {
		return self.Station + " ==> " + self.Next
	}
	return self.Station
}

//*******************************************
// itinerary
//*******************************************

type Itinerary struct {
	Segments     List[Segment] `json:"segments"`
	Interchanges int           `json:"interchanges"`
	Total        int64         `json:"total"`
	Unit         string        `json:"unit"`
}

// Build splits a route into waypoints and interchange markers.
//
// A plain interior station whose neighbours on the route are served by
// different lines marks an interchange: it is emitted together with its
// successor and the successor is not visited again. Hubs served by several
// lines are always plain waypoints. The first and last station always bound
// the itinerary, also when an interchange marker already names the last one.
func Build(stations List[string], total int64, unit string) Itinerary {
	itinerary := Itinerary{
		Segments: NewList[Segment](stations.Length() + 1),
		Total:    total,
		Unit:     unit,
	}
	if stations.Length() == 0 {
		return itinerary
	}
	itinerary.Segments.Add(Segment{Kind: START, Station: stations[0]})
	if stations.Length() == 1 {
		itinerary.Segments.Add(Segment{Kind: END, Station: stations[0]})
		return itinerary
	}

	n := stations.Length()
	for i := 1; i < n-1; i++ {
		curr := structs.ParseStation(stations[i])
		if len(curr.Lines) != 1 {
			itinerary.Segments.Add(Segment{Kind: WAYPOINT, Station: stations[i]})
			continue
		}
		prev := structs.ParseStation(stations[i-1])
		next := structs.ParseStation(stations[i+1])
		if prev.Lines.Equals(next.Lines) {
			itinerary.Segments.Add(Segment{Kind: WAYPOINT, Station: stations[i]})
			continue
		}
		itinerary.Segments.Add(Segment{Kind: INTERCHANGE, Station: stations[i], Next: stations[i+1]})
		itinerary.Interchanges += 1
		i += 1
	}
	itinerary.Segments.Add(Segment{Kind: END, Station: stations[n-1]})
	return itinerary
}

// FromPath builds the itinerary of a route using its display cost.
func FromPath(path routing.Path) Itinerary {
	unit := path.GetMetric().Unit()
	if unit == "s" {
		unit = "min"
	}
	return Build(path.GetStations(), path.GetDisplayCost(), unit)
}

// FromPathString parses the textual form "<station>  <station>  ...  <cost>"
// where the trailing token is the total cost.
func FromPathString(path string, unit string) (Itinerary, error) {
	tokens := routing.SplitPath(path)
	if tokens.Length() < 2 {
		return Itinerary{}, fmt.Errorf("path %q has no stations", path)
	}
	total, err := strconv.ParseInt(tokens.Last(), 10, 64)
	if err != nil {
		return Itinerary{}, fmt.Errorf("path %q has no trailing cost: %w", path, err)
	}
	return Build(tokens[:tokens.Length()-1], total, unit), nil
}

// Strings renders the itinerary as its segments followed by the
// interchange count and the total cost.
func (self Itinerary) Strings() List[string] {
	lines := NewList[string](self.Segments.Length() + 2)
	for _, segment := range self.Segments {
		lines.Add(segment.String())
	}
	lines.Add(strconv.Itoa(self.Interchanges))
	lines.Add(fmt.Sprintf("%v %v", self.Total, self.Unit))
	return lines
}

func (self Itinerary) String() string {
	return strings.Join(self.Strings(), "\n")
}
