package graph

import "fmt"

//*******************************************
// weighting interface
//*******************************************

// IWeighting turns the stored edge distance into the cost of traversing it.
type IWeighting interface {
	GetEdgeWeight(distance int32) int64
	Metric() MetricType
}

func BuildWeighting(metric MetricType, model TimeModel) IWeighting {
	if metric == TIME {
		return &TimeWeighting{model: model}
	}
	return &DistanceWeighting{}
}

//*******************************************
// distance weighting
//*******************************************

type DistanceWeighting struct{}

func (self *DistanceWeighting) GetEdgeWeight(distance int32) int64 {
	return int64(distance)
}
func (self *DistanceWeighting) Metric() MetricType {
	return DISTANCE
}

//*******************************************
// time weighting
//*******************************************

// TimeModel gives the seconds needed for one edge: a fixed dwell overhead
// plus a travel time per km.
type TimeModel struct {
	Overhead int32 `yaml:"overhead" json:"overhead"`
	PerKm    int32 `yaml:"per-km" json:"per_km"`
}

func DefaultTimeModel() TimeModel {
	return TimeModel{Overhead: 120, PerKm: 40}
}

// MAX_TIME_PARAM bounds both time model parameters, in seconds.
const MAX_TIME_PARAM = 3600

func (self TimeModel) Validate() error {
	if self.Overhead < 0 || self.Overhead > MAX_TIME_PARAM {
		return fmt.Errorf("time model overhead %v out of range [0, %v]", self.Overhead, MAX_TIME_PARAM)
	}
	if self.PerKm <= 0 || self.PerKm > MAX_TIME_PARAM {
		return fmt.Errorf("time model per-km %v out of range (0, %v]", self.PerKm, MAX_TIME_PARAM)
	}
	return nil
}

type TimeWeighting struct {
	model TimeModel
}

func NewTimeWeighting(model TimeModel) *TimeWeighting {
	return &TimeWeighting{model: model}
}

func (self *TimeWeighting) GetEdgeWeight(distance int32) int64 {
	return int64(self.model.Overhead) + int64(self.model.PerKm)*int64(distance)
}
func (self *TimeWeighting) Metric() MetricType {
	return TIME
}

// SecondsToMinutes rounds up to the next whole minute.
func SecondsToMinutes(seconds int64) int64 {
	if seconds <= 0 {
		return 0
	}
	return (seconds + 59) / 60
}
