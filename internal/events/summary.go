package events

import (
	"math"
	"slices"
	"time"

	"github.com/maruel/plx/models"
)

// Summary describes a series of events.
type Summary struct {
	IsEvent   bool              `json:"is_event"`
	Step      *StepSummary      `json:"step,omitempty"`
	Timestamp *TimestampSummary `json:"timestamp,omitempty"`
	Metric    *MetricSummary    `json:"metric,omitempty"`
}

// StepSummary holds the first and last logged steps.
type StepSummary struct {
	Count int   `json:"count"`
	Min   int64 `json:"min"`
	Max   int64 `json:"max"`
}

// TimestampSummary holds the first and last logged timestamps.
type TimestampSummary struct {
	Min time.Time `json:"min"`
	Max time.Time `json:"max"`
}

// MetricSummary holds descriptive statistics of metric values. Std is nil
// with fewer than two values.
type MetricSummary struct {
	Count int      `json:"count"`
	Mean  float64  `json:"mean"`
	Std   *float64 `json:"std"`
	Min   float64  `json:"min"`
	P25   float64  `json:"25%"`
	P50   float64  `json:"50%"`
	P75   float64  `json:"75%"`
	Max   float64  `json:"max"`
	Last  float64  `json:"last"`
}

// Summarize computes the summary of l. Steps and timestamps are reported in
// logging order; events are appended so the first is the minimum.
func Summarize(l *models.LoggedEventList) *Summary {
	s := &Summary{IsEvent: true}
	var values []float64
	for _, e := range l.GetEvents() {
		if e.Step != nil {
			if s.Step == nil {
				s.Step = &StepSummary{Min: *e.Step}
			}
			s.Step.Count++
			s.Step.Max = *e.Step
		}
		if e.Timestamp != nil {
			if s.Timestamp == nil {
				s.Timestamp = &TimestampSummary{Min: *e.Timestamp}
			}
			s.Timestamp.Max = *e.Timestamp
		}
		if e.Metric != nil && !math.IsNaN(*e.Metric) {
			values = append(values, *e.Metric)
		}
	}
	if l.GetKind() == models.ArtifactKindMetric && len(values) != 0 {
		s.Metric = describe(values)
	}
	return s
}

func describe(values []float64) *MetricSummary {
	m := &MetricSummary{Count: len(values), Last: values[len(values)-1]}
	sum := 0.
	for _, v := range values {
		sum += v
	}
	m.Mean = sum / float64(len(values))
	if len(values) > 1 {
		ss := 0.
		for _, v := range values {
			ss += (v - m.Mean) * (v - m.Mean)
		}
		std := math.Sqrt(ss / float64(len(values)-1))
		m.Std = &std
	}
	sorted := slices.Clone(values)
	slices.Sort(sorted)
	m.Min = sorted[0]
	m.Max = sorted[len(sorted)-1]
	m.P25 = percentile(sorted, 0.25)
	m.P50 = percentile(sorted, 0.5)
	m.P75 = percentile(sorted, 0.75)
	return m
}

// percentile interpolates linearly between the closest ranks.
func percentile(sorted []float64, p float64) float64 {
	pos := p * float64(len(sorted)-1)
	lo := int(math.Floor(pos))
	hi := int(math.Ceil(pos))
	if lo == hi {
		return sorted[lo]
	}
	return sorted[lo] + (sorted[hi]-sorted[lo])*(pos-float64(lo))
}
