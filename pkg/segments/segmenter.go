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

// Package segments converts discrete state-code series into interval sets
// and aggregates them in a tag-keyed store.
package segments

import (
	"github.com/carverauto/grdsumm/pkg/models"
)

// Segment returns the maximal set of half-open intervals during which the
// series equals value. An interval opens at the first sample of a run and
// closes at the time of the sample after the run; a run reaching the last
// sample closes at series end plus one sample period. A series that never
// takes the value yields an empty set.
//
// Segment is pure and safe to call concurrently.
func Segment(s *models.DiscreteSeries, value int32) models.IntervalSet {
	var out models.IntervalSet

	runStart := -1

	for i, v := range s.Values {
		switch {
		case v == value && runStart < 0:
			runStart = i
		case v != value && runStart >= 0:
			out = append(out, models.Interval{Start: s.Time(runStart), End: s.Time(i)})
			runStart = -1
		}
	}

	if runStart >= 0 {
		out = append(out, models.Interval{Start: s.Time(runStart), End: s.End()})
	}

	return out
}

// SegmentOK segments a node liveness series. The OK channel is a plain
// boolean signal with no state-code indirection: the node is alive
// wherever the series equals one.
func SegmentOK(s *models.DiscreteSeries) models.IntervalSet {
	return Segment(s, 1)
}
