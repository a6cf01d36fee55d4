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

package models

import "sort"

// Interval is a half-open time range [Start, End) in GPS seconds.
type Interval struct {
	Start float64 `json:"start"`
	End   float64 `json:"end"`
}

// Duration returns the length of the interval in seconds.
func (i Interval) Duration() float64 {
	return i.End - i.Start
}

// Contains reports whether t falls inside the interval.
func (i Interval) Contains(t float64) bool {
	return t >= i.Start && t < i.End
}

// IntervalSet is an ordered sequence of non-overlapping intervals.
// Invariant: Intervals[k].End <= Intervals[k+1].Start for all k.
type IntervalSet []Interval

// Livetime returns the total duration covered by the set, in seconds.
func (s IntervalSet) Livetime() float64 {
	var total float64
	for _, iv := range s {
		total += iv.Duration()
	}

	return total
}

// Union merges two interval sets, coalescing any overlapping or touching
// intervals into one. Both inputs are left unmodified.
func (s IntervalSet) Union(other IntervalSet) IntervalSet {
	merged := make(IntervalSet, 0, len(s)+len(other))
	merged = append(merged, s...)
	merged = append(merged, other...)

	if len(merged) == 0 {
		return merged
	}

	sort.Slice(merged, func(a, b int) bool {
		if merged[a].Start != merged[b].Start {
			return merged[a].Start < merged[b].Start
		}

		return merged[a].End < merged[b].End
	})

	out := IntervalSet{merged[0]}

	for _, iv := range merged[1:] {
		last := &out[len(out)-1]
		if iv.Start <= last.End {
			if iv.End > last.End {
				last.End = iv.End
			}

			continue
		}

		out = append(out, iv)
	}

	return out
}

// Intersect returns the coverage common to both sets.
func (s IntervalSet) Intersect(other IntervalSet) IntervalSet {
	var out IntervalSet

	a, b := 0, 0
	for a < len(s) && b < len(other) {
		start := s[a].Start
		if other[b].Start > start {
			start = other[b].Start
		}

		end := s[a].End
		if other[b].End < end {
			end = other[b].End
		}

		if start < end {
			out = append(out, Interval{Start: start, End: end})
		}

		if s[a].End < other[b].End {
			a++
		} else {
			b++
		}
	}

	return out
}
