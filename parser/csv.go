package parser

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/ttpr0/go-metro/structs"
	. "github.com/ttpr0/go-metro/util"
)

type _StationRow struct {
	Name  string `csv:"name"`
	Lines string `csv:"lines"`
}

// ParseCSV reads a network from two ';' separated tables:
//
//	name;lines
//	from;to;distance
//
// Station rows without a line column are expected to carry the suffix in the name.
func ParseCSV(stations io.Reader, connections io.Reader) (*Network, error) {
	network := Network{
		Lines:       NewDict[string, string](4),
		Stations:    NewList[string](64),
		Connections: NewList[structs.Connection](64),
	}

	station_rows, err := ReadCSV[_StationRow](stations, ';')
	if err != nil {
		return nil, fmt.Errorf("stations: %w", err)
	}
	for row, err := range station_rows {
		if err != nil {
			return nil, fmt.Errorf("stations: %w", err)
		}
		if row.Name == "" {
			continue
		}
		if row.Lines == "" {
			network.Stations.Add(row.Name)
		} else {
			network.Stations.Add(structs.MakeStationName(row.Name, structs.NewLineSet(row.Lines)))
		}
	}

	conn_rows, err := ReadCSV[structs.Connection](connections, ';')
	if err != nil {
		return nil, fmt.Errorf("connections: %w", err)
	}
	for row, err := range conn_rows {
		if err != nil {
			return nil, fmt.Errorf("connections: %w", err)
		}
		network.Connections.Add(row)
	}
	return &network, nil
}

func ParseCSVDir(dir string) (*Network, error) {
	station_file, err := os.Open(filepath.Join(dir, "stations.csv"))
	if err != nil {
		return nil, err
	}
	defer station_file.Close()
	conn_file, err := os.Open(filepath.Join(dir, "connections.csv"))
	if err != nil {
		return nil, err
	}
	defer conn_file.Close()

	network, err := ParseCSV(station_file, conn_file)
	if err != nil {
		return nil, err
	}
	network.Name = filepath.Base(dir)
	return network, nil
}
