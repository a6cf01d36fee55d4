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

package segments

import (
	"sort"
	"sync"

	"github.com/carverauto/grdsumm/pkg/models"
)

// Store accumulates interval sets keyed by tag for one report run.
// Construct one per run and pass it to every session processor; it is the
// only shared mutable state of a run. Re-merging a tag unions time
// coverage rather than overwriting, so repeated processing of overlapping
// epochs is safe and idempotent.
type Store struct {
	mu   sync.RWMutex
	sets map[string]models.IntervalSet
}

// NewStore creates an empty segment store.
func NewStore() *Store {
	return &Store{
		sets: make(map[string]models.IntervalSet),
	}
}

// Merge adds coverage under tag. A new tag is inserted as-is; an existing
// tag is replaced by the union of stored and incoming coverage, with
// overlapping or touching intervals coalesced. Merge is serialised
// internally: union is a read-then-write operation and unsynchronised
// concurrent merges under one tag could drop coverage.
func (st *Store) Merge(tag string, set models.IntervalSet) {
	st.mu.Lock()
	defer st.mu.Unlock()

	existing, ok := st.sets[tag]
	if !ok {
		st.sets[tag] = append(models.IntervalSet(nil), set...)
		return
	}

	st.sets[tag] = existing.Union(set)
}

// Query returns the stored coverage for tag intersected with the validity
// window. An unknown tag yields an empty set.
func (st *Store) Query(tag string, validity models.IntervalSet) models.IntervalSet {
	st.mu.RLock()
	defer st.mu.RUnlock()

	return st.sets[tag].Intersect(validity)
}

// Coverage returns a copy of the full stored coverage for tag.
func (st *Store) Coverage(tag string) models.IntervalSet {
	st.mu.RLock()
	defer st.mu.RUnlock()

	return append(models.IntervalSet(nil), st.sets[tag]...)
}

// Livetime returns the total duration, in seconds, for which tag was
// active within the validity window.
func (st *Store) Livetime(tag string, validity models.IntervalSet) float64 {
	return st.Query(tag, validity).Livetime()
}

// DutyCycle returns the percentage of the validity window covered by tag.
// A zero-duration validity window yields 0, not a division fault.
func (st *Store) DutyCycle(tag string, validity models.IntervalSet) float64 {
	total := validity.Livetime()
	if total <= 0 {
		return 0
	}

	return st.Livetime(tag, validity) / total * 100
}

// Tags returns a sorted snapshot of all stored tags.
func (st *Store) Tags() []string {
	st.mu.RLock()
	defer st.mu.RUnlock()

	tags := make([]string, 0, len(st.sets))
	for tag := range st.sets {
		tags = append(tags, tag)
	}

	sort.Strings(tags)

	return tags
}
