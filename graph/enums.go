package graph

import (
	"encoding/json"
	"errors"

	"gopkg.in/yaml.v3"
)

//*******************************************
// metric type
//*******************************************

type MetricType byte

const (
	DISTANCE MetricType = 0
	TIME     MetricType = 1
)

var ErrUnknownMetric = errors.New("unknown metric type")

func (self MetricType) String() string {
	switch self {
	case DISTANCE:
		return "distance"
	case TIME:
		return "time"
	default:
		panic("unknown metric type")
	}
}
func (self MetricType) MarshalJSON() ([]byte, error) {
	return json.Marshal(self.String())
}
func (self *MetricType) UnmarshalJSON(data []byte) error {
	var typ string
	err := json.Unmarshal(data, &typ)
	if err != nil {
		return err
	}
	*self, err = MetricTypeFromString(typ)
	return err
}
func (self MetricType) MarshalYAML() (any, error) {
	return self.String(), nil
}
func (self *MetricType) UnmarshalYAML(value *yaml.Node) error {
	typ, err := MetricTypeFromString(value.Value)
	if err != nil {
		return err
	}
	*self = typ
	return nil
}

func MetricTypeFromString(s string) (MetricType, error) {
	switch s {
	case "distance", "shortest":
		return DISTANCE, nil
	case "time", "fastest":
		return TIME, nil
	default:
		return DISTANCE, ErrUnknownMetric
	}
}

// Unit of the raw cost under the metric.
func (self MetricType) Unit() string {
	if self == TIME {
		return "s"
	}
	return "km"
}
