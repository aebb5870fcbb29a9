package experiment

import (
	montstats "github.com/montanaflynn/stats"

	"perfmodel/domain/core"
)

// Measurement aggregates the repeated raw values observed at one coordinate.
// The raw repetitions are collapsed to summary statistics at construction;
// downstream fitting only ever consumes the mean or the median.
type Measurement struct {
	Coordinate Coordinate
	Mean       float64
	Median     float64
	Minimum    float64
	Maximum    float64
	StdDev     float64
}

// NewMeasurement computes summary statistics over the repeated values
// observed at the coordinate.
func NewMeasurement(coordinate Coordinate, values []float64) (Measurement, error) {
	if len(values) == 0 {
		return Measurement{}, core.ErrEmptyRepetitions
	}
	data := montstats.Float64Data(values)
	mean, err := montstats.Mean(data)
	if err != nil {
		return Measurement{}, err
	}
	median, err := montstats.Median(data)
	if err != nil {
		return Measurement{}, err
	}
	minimum, err := montstats.Min(data)
	if err != nil {
		return Measurement{}, err
	}
	maximum, err := montstats.Max(data)
	if err != nil {
		return Measurement{}, err
	}
	stdDev, _ := montstats.StandardDeviation(data)
	return Measurement{
		Coordinate: coordinate,
		Mean:       mean,
		Median:     median,
		Minimum:    minimum,
		Maximum:    maximum,
		StdDev:     stdDev,
	}, nil
}

// Value selects the statistic a hypothesis is configured to model. The
// choice must be uniform across fitting and scoring for one hypothesis.
func (m Measurement) Value(useMedian bool) float64 {
	if useMedian {
		return m.Median
	}
	return m.Mean
}

// Values extracts the chosen statistic from each measurement.
func Values(measurements []Measurement, useMedian bool) []float64 {
	out := make([]float64, len(measurements))
	for i, m := range measurements {
		out[i] = m.Value(useMedian)
	}
	return out
}

// ParameterValues extracts the given coordinate dimension from each
// measurement.
func ParameterValues(measurements []Measurement, parameter int) []float64 {
	out := make([]float64, len(measurements))
	for i, m := range measurements {
		out[i] = m.Coordinate[parameter]
	}
	return out
}
