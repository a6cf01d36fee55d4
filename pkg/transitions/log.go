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

package transitions

import (
	"github.com/carverauto/grdsumm/pkg/models"
)

// Log accumulates transitions per destination state for one node.
// Ordering is insertion order: callers append epochs in chronological
// order and the log never re-sorts, so within each destination bucket
// times are non-decreasing across the whole run.
//
// Log is not safe for concurrent use; each session processor owns the log
// for its node.
type Log struct {
	byState map[int32][]models.Transition
}

// NewLog creates an empty transition log.
func NewLog() *Log {
	return &Log{
		byState: make(map[int32][]models.Transition),
	}
}

// Append adds transitions into code at the end of its bucket.
func (l *Log) Append(code int32, ts ...models.Transition) {
	if len(ts) == 0 {
		return
	}

	l.byState[code] = append(l.byState[code], ts...)
}

// ForState returns the recorded transitions into code, in time order.
// The returned slice is owned by the log; callers must not modify it.
func (l *Log) ForState(code int32) []models.Transition {
	return l.byState[code]
}

// Total returns the number of transitions into code from any state,
// named or not.
func (l *Log) Total(code int32) int {
	return len(l.byState[code])
}

// CountFrom returns the number of transitions into code departing from
// the given state.
func (l *Log) CountFrom(code, from int32) int {
	var n int

	for _, t := range l.byState[code] {
		if t.From == from {
			n++
		}
	}

	return n
}
