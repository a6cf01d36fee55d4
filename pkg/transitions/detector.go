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

// Package transitions detects state entry events in discrete series and
// accumulates them per destination state.
package transitions

import (
	"github.com/carverauto/grdsumm/pkg/models"
)

// Detect returns the completed transitions into code, in time order of
// entry.
//
// The scan finds entry indices (sample i >= 1 where the series takes the
// code and the previous sample did not) and exit indices (sample j >= 1
// where the series leaves the code). The k-th entry is paired with the
// k-th exit in order of occurrence, and each pair produces one transition
// at the entry sample's time, with From the value before the entry and To
// the value at the exit sample. When the series starts inside the target
// state, the first exit belongs to that initial run and the positional
// pairing is preserved as-is; downstream tables depend on these exact
// semantics.
//
// A trailing entry with no matching exit (state still active at series
// end) is dropped: only completed runs are counted.
func Detect(s *models.DiscreteSeries, code int32) []models.Transition {
	var entries, exits []int

	for i := 1; i < len(s.Values); i++ {
		cur := s.Values[i] == code
		prev := s.Values[i-1] == code

		if cur && !prev {
			entries = append(entries, i)
		} else if !cur && prev {
			exits = append(exits, i)
		}
	}

	n := len(entries)
	if len(exits) < n {
		n = len(exits)
	}

	if n == 0 {
		return nil
	}

	out := make([]models.Transition, 0, n)

	for k := 0; k < n; k++ {
		entry, exit := entries[k], exits[k]
		out = append(out, models.Transition{
			Time: s.Time(entry),
			From: s.Values[entry-1],
			To:   s.Values[exit],
		})
	}

	return out
}

// DetectAll runs Detect for every code and returns the per-destination
// transition sequences. Codes without transitions map to nil.
func DetectAll(s *models.DiscreteSeries, codes []int32) map[int32][]models.Transition {
	out := make(map[int32][]models.Transition, len(codes))
	for _, code := range codes {
		out[code] = Detect(s, code)
	}

	return out
}
