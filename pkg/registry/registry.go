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

// Package registry maps Guardian state codes to display names. The
// registry is built once from configuration and read-only afterwards;
// iteration order is the configured order, not code order.
package registry

// UnknownLabel is the display fallback for codes with no registry entry.
// An unknown code is not an error: it simply labels a state that was not
// chosen for display, and it still counts toward transition totals.
const UnknownLabel = "Unknown"

// State is one registered Guardian state. Display controls whether the
// state appears in rendered tables and plots; it never affects
// segmentation or transition counting.
type State struct {
	Code    int32  `json:"code"`
	Name    string `json:"name"`
	Display bool   `json:"display"`
}

// StateRegistry is an ordered code -> name mapping with a designated
// Unknown fallback and a subset of states of interest for transition
// counting.
type StateRegistry struct {
	states      []State
	byCode      map[int32]State
	transitions []int32
}

// New builds a registry from an ordered state list. transitionCodes marks
// the subset used as rows of the transition table; when empty, every
// registered state is of interest, matching the behaviour when no
// transitions option is configured.
func New(states []State, transitionCodes []int32) *StateRegistry {
	r := &StateRegistry{
		states: append([]State(nil), states...),
		byCode: make(map[int32]State, len(states)),
	}

	for _, st := range r.states {
		r.byCode[st.Code] = st
	}

	if len(transitionCodes) == 0 {
		for _, st := range r.states {
			r.transitions = append(r.transitions, st.Code)
		}
	} else {
		r.transitions = append([]int32(nil), transitionCodes...)
	}

	return r
}

// States returns the registered states in configured order.
func (r *StateRegistry) States() []State {
	return r.states
}

// Codes returns the registered codes in configured order.
func (r *StateRegistry) Codes() []int32 {
	codes := make([]int32, 0, len(r.states))
	for _, st := range r.states {
		codes = append(codes, st.Code)
	}

	return codes
}

// Lookup returns the entry for code, if registered.
func (r *StateRegistry) Lookup(code int32) (State, bool) {
	st, ok := r.byCode[code]
	return st, ok
}

// Name resolves a code to its display name, falling back to UnknownLabel.
// Name is total: it never fails for unregistered codes.
func (r *StateRegistry) Name(code int32) string {
	if st, ok := r.byCode[code]; ok {
		return st.Name
	}

	return UnknownLabel
}

// TransitionStates returns the codes of interest for transition counting,
// in configured order.
func (r *StateRegistry) TransitionStates() []int32 {
	return r.transitions
}

// Len returns the number of registered states.
func (r *StateRegistry) Len() int {
	return len(r.states)
}
