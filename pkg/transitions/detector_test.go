package transitions

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/carverauto/grdsumm/pkg/models"
)

func scenarioSeries() *models.DiscreteSeries {
	return &models.DiscreteSeries{
		Start:        0,
		SamplePeriod: 1,
		Values:       []int32{1, 1, 1, 2, 2, 1, 1},
	}
}

func TestDetectCompletedRun(t *testing.T) {
	// The run of state 2 spans [3,5): entered from 1 at t=3, fell back
	// into 1 at t=5.
	got := Detect(scenarioSeries(), 2)

	require.Len(t, got, 1)
	assert.Equal(t, models.Transition{Time: 3, From: 1, To: 1}, got[0])
}

func TestDetectSeriesStartingInState(t *testing.T) {
	// The series opens inside state 1, so the first recorded exit (t=3)
	// belongs to the initial run while the first recorded entry (t=5)
	// belongs to the second. The positional pairing is kept as-is:
	// entry 5 pairs with exit 3, giving To from the exit sample.
	got := Detect(scenarioSeries(), 1)

	require.Len(t, got, 1)
	assert.Equal(t, models.Transition{Time: 5, From: 2, To: 2}, got[0])
}

func TestDetectOpenRunAtSeriesEndDropped(t *testing.T) {
	series := &models.DiscreteSeries{
		Start:        0,
		SamplePeriod: 1,
		Values:       []int32{0, 0, 3, 3},
	}

	// State 3 is still active at series end: no completed transition.
	assert.Empty(t, Detect(series, 3))
}

func TestDetectNoOccurrences(t *testing.T) {
	series := &models.DiscreteSeries{
		Start:        0,
		SamplePeriod: 1,
		Values:       []int32{0, 1, 0},
	}

	assert.Empty(t, Detect(series, 9))
}

func TestDetectSingleSampleRun(t *testing.T) {
	series := &models.DiscreteSeries{
		Start:        100,
		SamplePeriod: 1,
		Values:       []int32{0, 5, 2},
	}

	got := Detect(series, 5)

	require.Len(t, got, 1)
	assert.Equal(t, models.Transition{Time: 101, From: 0, To: 2}, got[0])
}

func TestDetectRecordsRawUnregisteredCodes(t *testing.T) {
	// From/To carry raw codes even when nothing is registered for them;
	// name resolution is a rendering concern.
	series := &models.DiscreteSeries{
		Start:        0,
		SamplePeriod: 1,
		Values:       []int32{99, 5, 42},
	}

	got := Detect(series, 5)

	require.Len(t, got, 1)
	assert.Equal(t, models.Transition{Time: 1, From: 99, To: 42}, got[0])
}

func TestDetectTimesNonDecreasing(t *testing.T) {
	series := &models.DiscreteSeries{
		Start:        0,
		SamplePeriod: 1,
		Values:       []int32{0, 1, 0, 1, 0, 1, 0, 1, 2},
	}

	got := Detect(series, 1)
	require.NotEmpty(t, got)

	for i := 1; i < len(got); i++ {
		assert.GreaterOrEqual(t, got[i].Time, got[i-1].Time)
	}
}

func TestDetectAllCountInvariant(t *testing.T) {
	// Summed over every code, completed transitions equal the number of
	// value-change edges, minus one when the series ends in a state it
	// did not start in (that final run's entry has no exit).
	tests := []struct {
		name   string
		values []int32
	}{
		{name: "ends where it started", values: []int32{1, 1, 1, 2, 2, 1, 1}},
		{name: "ends elsewhere", values: []int32{0, 1, 2}},
		{name: "constant", values: []int32{4, 4, 4}},
		{name: "alternating", values: []int32{0, 1, 0, 1, 0}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			series := &models.DiscreteSeries{Start: 0, SamplePeriod: 1, Values: tt.values}

			codes := map[int32]struct{}{}
			for _, v := range tt.values {
				codes[v] = struct{}{}
			}

			var edges int
			for i := 1; i < len(tt.values); i++ {
				if tt.values[i] != tt.values[i-1] {
					edges++
				}
			}

			want := edges
			if len(tt.values) > 0 && tt.values[0] != tt.values[len(tt.values)-1] {
				want--
			}

			var total int
			for code := range codes {
				total += len(Detect(series, code))
			}

			assert.Equal(t, want, total)
		})
	}
}

func TestDetectAll(t *testing.T) {
	got := DetectAll(scenarioSeries(), []int32{1, 2, 3})

	require.Len(t, got, 3)
	assert.Len(t, got[1], 1)
	assert.Len(t, got[2], 1)
	assert.Empty(t, got[3])
}
