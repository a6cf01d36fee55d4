package segments

import (
	"sync"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/carverauto/grdsumm/pkg/models"
)

func TestStoreMergeNewTag(t *testing.T) {
	st := NewStore()
	st.Merge("X1:NODE state_a", models.IntervalSet{{Start: 0, End: 10}})

	got := st.Coverage("X1:NODE state_a")
	require.Empty(t, cmp.Diff(models.IntervalSet{{Start: 0, End: 10}}, got))
}

func TestStoreMergeCoalescesTouchingEpochs(t *testing.T) {
	// Epoch 1 ends exactly where epoch 2 begins.
	st := NewStore()
	st.Merge("X1:NODE state_a", models.IntervalSet{{Start: 0, End: 10}})
	st.Merge("X1:NODE state_a", models.IntervalSet{{Start: 10, End: 20}})

	got := st.Coverage("X1:NODE state_a")
	require.Empty(t, cmp.Diff(models.IntervalSet{{Start: 0, End: 20}}, got))
}

func TestStoreMergeIdempotent(t *testing.T) {
	set := models.IntervalSet{{Start: 5, End: 15}, {Start: 20, End: 30}}

	st := NewStore()
	st.Merge("tag", set)
	once := st.Coverage("tag")

	st.Merge("tag", set)
	twice := st.Coverage("tag")

	assert.Empty(t, cmp.Diff(once, twice))
}

func TestStoreMergeCommutative(t *testing.T) {
	a := models.IntervalSet{{Start: 0, End: 10}, {Start: 40, End: 50}}
	b := models.IntervalSet{{Start: 8, End: 20}}

	ab := NewStore()
	ab.Merge("tag", a)
	ab.Merge("tag", b)

	ba := NewStore()
	ba.Merge("tag", b)
	ba.Merge("tag", a)

	assert.Empty(t, cmp.Diff(ab.Coverage("tag"), ba.Coverage("tag")))
}

func TestStoreQueryRestrictsToValidity(t *testing.T) {
	st := NewStore()
	st.Merge("tag", models.IntervalSet{{Start: 0, End: 100}})

	got := st.Query("tag", models.IntervalSet{{Start: 30, End: 40}})
	require.Empty(t, cmp.Diff(models.IntervalSet{{Start: 30, End: 40}}, got))

	assert.Empty(t, st.Query("no-such-tag", models.IntervalSet{{Start: 0, End: 100}}))
}

func TestStoreDutyCycleFullCoverage(t *testing.T) {
	// Node OK all-ones for 100 s over a 100 s validity window.
	st := NewStore()
	st.Merge("X1:NODE OK", models.IntervalSet{{Start: 0, End: 100}})

	validity := models.IntervalSet{{Start: 0, End: 100}}

	assert.InDelta(t, 100.0, st.Livetime("X1:NODE OK", validity), 1e-9)
	assert.InDelta(t, 100.0, st.DutyCycle("X1:NODE OK", validity), 1e-9)
}

func TestStoreDutyCycleZeroValidity(t *testing.T) {
	st := NewStore()
	st.Merge("tag", models.IntervalSet{{Start: 0, End: 100}})

	assert.Zero(t, st.DutyCycle("tag", nil))
	assert.Zero(t, st.DutyCycle("tag", models.IntervalSet{{Start: 50, End: 50}}))
}

func TestStoreTags(t *testing.T) {
	st := NewStore()
	st.Merge("b", models.IntervalSet{{Start: 0, End: 1}})
	st.Merge("a", models.IntervalSet{{Start: 0, End: 1}})

	assert.Equal(t, []string{"a", "b"}, st.Tags())
}

func TestStoreConcurrentMergeDistinctTags(t *testing.T) {
	st := NewStore()

	var wg sync.WaitGroup

	for i := 0; i < 8; i++ {
		wg.Add(1)

		go func(n int) {
			defer wg.Done()

			tag := string(rune('a' + n))
			for k := 0; k < 100; k++ {
				st.Merge(tag, models.IntervalSet{{Start: float64(k), End: float64(k + 1)}})
			}
		}(i)
	}

	wg.Wait()

	for i := 0; i < 8; i++ {
		tag := string(rune('a' + i))
		got := st.Coverage(tag)
		require.Len(t, got, 1)
		assert.Equal(t, models.Interval{Start: 0, End: 100}, got[0])
	}
}
