package model

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestSeries_Summary(t *testing.T) {
	now := time.Now()
	s := Series{Points: []Point{
		NewPoint(now, 1.0),
		NewPoint(now.Add(time.Hour), 3.0),
		NewPoint(now.Add(2*time.Hour), 2.0),
	}}
	summary := s.Summary()
	assert.Equal(t, 1.0, summary.Low)
	assert.Equal(t, 3.0, summary.High)
	assert.Equal(t, 2.0, summary.Mean)
}

func TestSeries_SummaryEmpty(t *testing.T) {
	assert.Equal(t, Summary{}, Series{}.Summary())
}
