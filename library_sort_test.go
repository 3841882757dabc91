//go:build !nolibsort

package sortbench

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLibrarySorter(t *testing.T) {
	lib := &LibrarySorter{}
	assert.Equal(t, AlgorithmLibrary, lib.Algorithm())
	require.True(t, lib.Available())

	seq := NewIntSequence([]int64{5, 3, 8, 3, 1})
	require.NoError(t, lib.Sort(seq))
	assert.Equal(t, []int64{1, 3, 3, 5, 8}, seq.Ints())

	lib.Disabled = true
	assert.False(t, lib.Available())
	assert.ErrorIs(t, lib.Sort(seq), ErrUnavailable)
}
