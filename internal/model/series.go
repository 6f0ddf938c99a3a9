package model

import (
	"time"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// Point defines a price value in time.
type Point struct {
	Time  time.Time `json:"time"`
	Value float64   `json:"value"`
}

// NewPoint creates a new reference to a price point.
func NewPoint(t time.Time, value float64) Point {
	return Point{
		Time:  t,
		Value: value,
	}
}

// Series is an ordered sequence of price points together with its presentation metadata.
// Points are ordered by ascending time and the series is non-empty on success.
type Series struct {
	Points []Point `json:"points"`
	Title  string  `json:"title"`
	YLabel string  `json:"y_label"`
}

// Values extracts the raw values of the series.
func (s Series) Values() []float64 {
	vv := make([]float64, len(s.Points))
	for i, p := range s.Points {
		vv[i] = p.Value
	}
	return vv
}

// Summary describes a series with its basic statistics.
type Summary struct {
	Low  float64 `json:"low"`
	High float64 `json:"high"`
	Mean float64 `json:"mean"`
}

// Summary computes the summary statistics for the series.
func (s Series) Summary() Summary {
	if len(s.Points) == 0 {
		return Summary{}
	}
	vv := s.Values()
	return Summary{
		Low:  floats.Min(vv),
		High: floats.Max(vv),
		Mean: stat.Mean(vv, nil),
	}
}
