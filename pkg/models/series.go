/*
 * Copyright 2025 Carver Automation Corporation.
 *
 * Licensed under the Apache License, Version 2.0 (the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 *
 *     http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */

// Package models defines the shared value types of the Guardian
// summarisation core: fixed-cadence discrete series, half-open GPS
// intervals and state transitions.
package models

// DiscreteSeries is a fixed-cadence integer time series as returned by a
// timeseries provider. Samples are implicit: sample i carries value
// Values[i] at GPS time Start + i*SamplePeriod. A series is immutable once
// produced; disjoint analysis epochs arrive as separate instances and gaps
// between them represent missing data, not state changes.
type DiscreteSeries struct {
	Start        float64 `json:"start"`
	SamplePeriod float64 `json:"sample_period"`
	Values       []int32 `json:"values"`
}

// Len returns the number of samples.
func (s *DiscreteSeries) Len() int {
	return len(s.Values)
}

// Time returns the GPS time of sample i. i == Len() gives the time one
// sample period past the last sample, which is the closing boundary of a
// run that extends to the end of the series.
func (s *DiscreteSeries) Time(i int) float64 {
	return s.Start + float64(i)*s.SamplePeriod
}

// End returns the GPS time immediately after the last sample.
func (s *DiscreteSeries) End() float64 {
	return s.Time(len(s.Values))
}

// Span returns the interval covered by the series.
func (s *DiscreteSeries) Span() Interval {
	return Interval{Start: s.Start, End: s.End()}
}

// Transition records one completed entry into a state: the entry time and
// the raw codes departed from and arrived at around the run. Codes are
// never resolved to names here; unknown-code resolution happens at
// summary time.
type Transition struct {
	Time float64 `json:"time"`
	From int32   `json:"from"`
	To   int32   `json:"to"`
}
