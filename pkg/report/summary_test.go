package report

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/carverauto/grdsumm/pkg/models"
	"github.com/carverauto/grdsumm/pkg/registry"
	"github.com/carverauto/grdsumm/pkg/segments"
	"github.com/carverauto/grdsumm/pkg/transitions"
)

func testRegistry() *registry.StateRegistry {
	return registry.New([]registry.State{
		{Code: 1, Name: "DOWN", Display: true},
		{Code: 2, Name: "LOCKED", Display: true},
	}, nil)
}

func TestTransitionMatrix(t *testing.T) {
	reg := testRegistry()

	tlog := transitions.NewLog()
	tlog.Append(2,
		models.Transition{Time: 10, From: 1, To: 1},
		models.Transition{Time: 30, From: 1, To: 1},
		// From an unregistered state: counted in the total only.
		models.Transition{Time: 50, From: 77, To: 1},
	)
	tlog.Append(1, models.Transition{Time: 20, From: 2, To: 2})

	m := TransitionMatrix(reg, tlog)

	require.Len(t, m.Rows, 2)
	require.Len(t, m.Columns, 2)

	down, locked := m.Rows[0], m.Rows[1]

	assert.Equal(t, "DOWN", down.Name)
	assert.Equal(t, []int{0, 1}, down.Counts)
	assert.Equal(t, 1, down.Total)

	assert.Equal(t, "LOCKED", locked.Name)
	assert.Equal(t, []int{2, 0}, locked.Counts)
	assert.Equal(t, 3, locked.Total)

	// The total exceeds the sum of named-state counts when transitions
	// arrive from unregistered states.
	assert.Greater(t, locked.Total, locked.Counts[0]+locked.Counts[1])
}

func TestTransitionMatrixSubsetRows(t *testing.T) {
	reg := registry.New([]registry.State{
		{Code: 1, Name: "DOWN"},
		{Code: 2, Name: "LOCKED"},
	}, []int32{2})

	m := TransitionMatrix(reg, transitions.NewLog())

	require.Len(t, m.Rows, 1)
	assert.Equal(t, "LOCKED", m.Rows[0].Name)
	require.Len(t, m.Columns, 2)
}

func TestBuildSummary(t *testing.T) {
	reg := testRegistry()
	validity := models.IntervalSet{{Start: 0, End: 100}}

	store := segments.NewStore()
	store.Merge("X1:TEST DOWN", models.IntervalSet{{Start: 0, End: 40}})
	store.Merge("X1:TEST LOCKED", models.IntervalSet{{Start: 40, End: 100}})
	store.Merge("X1:TEST OK", models.IntervalSet{{Start: 0, End: 100}})

	tlog := transitions.NewLog()
	tlog.Append(2, models.Transition{Time: 40, From: 1, To: 99})

	s := BuildSummary(store, tlog, reg, "X1", "TEST", validity)

	assert.Equal(t, "X1", s.IFO)
	assert.Equal(t, "TEST", s.Node)
	assert.InDelta(t, 100.0, s.OKLivetime, 1e-9)
	assert.InDelta(t, 100.0, s.OKDutyCycle, 1e-9)

	require.Len(t, s.States, 2)

	down := s.States[0]
	assert.Equal(t, "DOWN", down.Name)
	assert.InDelta(t, 40.0, down.Livetime, 1e-9)
	assert.InDelta(t, 40.0, down.DutyCycle, 1e-9)
	assert.Empty(t, down.Transitions)

	locked := s.States[1]
	assert.InDelta(t, 60.0, locked.Livetime, 1e-9)
	assert.Empty(t, cmp.Diff(models.IntervalSet{{Start: 40, End: 100}}, locked.Segments))

	require.Len(t, locked.Transitions, 1)
	assert.Equal(t, "DOWN", locked.Transitions[0].FromName)
	// Codes with no registry entry resolve to the Unknown label only
	// here, at summary time.
	assert.Equal(t, registry.UnknownLabel, locked.Transitions[0].ToName)
	assert.Equal(t, int32(99), locked.Transitions[0].ToCode)
}

func TestBuildSummaryZeroValidity(t *testing.T) {
	store := segments.NewStore()
	store.Merge("X1:TEST DOWN", models.IntervalSet{{Start: 0, End: 40}})

	s := BuildSummary(store, transitions.NewLog(), testRegistry(), "X1", "TEST", nil)

	assert.Zero(t, s.OKDutyCycle)

	for _, st := range s.States {
		assert.Zero(t, st.DutyCycle)
		assert.Zero(t, st.Livetime)
	}
}
