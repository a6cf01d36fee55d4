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

// Package report assembles the per-node summary data consumed by
// renderers: the transition count matrix and per-state details with
// livetime and duty cycle. Rendering itself lives elsewhere; everything
// here is plain data.
package report

import (
	"github.com/carverauto/grdsumm/pkg/guardian"
	"github.com/carverauto/grdsumm/pkg/models"
	"github.com/carverauto/grdsumm/pkg/registry"
	"github.com/carverauto/grdsumm/pkg/segments"
	"github.com/carverauto/grdsumm/pkg/transitions"
)

// MatrixRow counts transitions into one state. Counts is aligned with
// the matrix columns; Total counts transitions from any state, including
// unregistered ones, so it can exceed the sum of Counts.
type MatrixRow struct {
	Code   int32  `json:"code"`
	Name   string `json:"name"`
	Counts []int  `json:"counts"`
	Total  int    `json:"total"`
}

// Matrix is the state transition table: one row per transition state of
// interest, one column per registered state.
type Matrix struct {
	Columns []registry.State `json:"columns"`
	Rows    []MatrixRow      `json:"rows"`
}

// TransitionDetail is one transition with its codes resolved to display
// names. Unregistered codes resolve to the Unknown label.
type TransitionDetail struct {
	Time     float64 `json:"time"`
	FromCode int32   `json:"from_code"`
	FromName string  `json:"from_name"`
	ToCode   int32   `json:"to_code"`
	ToName   string  `json:"to_name"`
}

// StateDetail summarises one state: its completed transitions and its
// active coverage within the report validity window.
type StateDetail struct {
	Code        int32              `json:"code"`
	Name        string             `json:"name"`
	Display     bool               `json:"display"`
	Transitions []TransitionDetail `json:"transitions"`
	Segments    models.IntervalSet `json:"segments"`
	Livetime    float64            `json:"livetime"`
	DutyCycle   float64            `json:"duty_cycle"`
}

// Summary is the full per-node report payload.
type Summary struct {
	IFO         string        `json:"ifo"`
	Node        string        `json:"node"`
	Matrix      *Matrix       `json:"matrix"`
	States      []StateDetail `json:"states"`
	OKLivetime  float64       `json:"ok_livetime"`
	OKDutyCycle float64       `json:"ok_duty_cycle"`
}

// TransitionMatrix builds the transition count table. Rows are the
// registry's transition states, columns all registered states, both in
// configured order. A diagonal cell is always zero: a completed entry
// cannot depart from its own destination state.
func TransitionMatrix(reg *registry.StateRegistry, tlog *transitions.Log) *Matrix {
	columns := reg.States()
	m := &Matrix{Columns: columns}

	for _, code := range reg.TransitionStates() {
		row := MatrixRow{
			Code:   code,
			Name:   reg.Name(code),
			Counts: make([]int, len(columns)),
			Total:  tlog.Total(code),
		}

		for j, col := range columns {
			row.Counts[j] = tlog.CountFrom(code, col.Code)
		}

		m.Rows = append(m.Rows, row)
	}

	return m
}

// BuildSummary assembles the summary for one processed node over a
// validity window. Livetime and duty cycle are computed against the
// window; a zero-duration window yields duty cycle 0.
func BuildSummary(
	store *segments.Store,
	tlog *transitions.Log,
	reg *registry.StateRegistry,
	ifo, node string,
	validity models.IntervalSet,
) *Summary {
	s := &Summary{
		IFO:         ifo,
		Node:        node,
		Matrix:      TransitionMatrix(reg, tlog),
		OKLivetime:  store.Livetime(guardian.OKTag(ifo, node), validity),
		OKDutyCycle: store.DutyCycle(guardian.OKTag(ifo, node), validity),
	}

	for _, st := range reg.States() {
		tag := guardian.SegmentTag(ifo, node, st.Name)
		detail := StateDetail{
			Code:      st.Code,
			Name:      st.Name,
			Display:   st.Display,
			Segments:  store.Query(tag, validity),
			Livetime:  store.Livetime(tag, validity),
			DutyCycle: store.DutyCycle(tag, validity),
		}

		for _, t := range tlog.ForState(st.Code) {
			detail.Transitions = append(detail.Transitions, TransitionDetail{
				Time:     t.Time,
				FromCode: t.From,
				FromName: reg.Name(t.From),
				ToCode:   t.To,
				ToName:   reg.Name(t.To),
			})
		}

		s.States = append(s.States, detail)
	}

	return s
}
