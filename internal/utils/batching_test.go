package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSplitIntoBatches(t *testing.T) {
	batches := SplitIntoBatches([]int{0, 1, 2, 3, 4, 5, 6, 7, 8, 9, 10}, 3)

	assert.Equal(t, [][]int{
		{0, 1, 2},
		{3, 4, 5},
		{6, 7, 8},
		{9, 10},
	}, batches)
}

func TestSplitIntoBatchesExact(t *testing.T) {
	batches := SplitIntoBatches([]string{"a", "b", "c", "d"}, 2)

	assert.Len(t, batches, 2)
	assert.Equal(t, []string{"c", "d"}, batches[1])
}

func TestSplitIntoBatchesEdgeCases(t *testing.T) {
	assert.Nil(t, SplitIntoBatches([]int{}, 3))
	assert.Nil(t, SplitIntoBatches([]int{1, 2}, 0))

	single := SplitIntoBatches([]int{1, 2}, 10)
	assert.Equal(t, [][]int{{1, 2}}, single)
}
