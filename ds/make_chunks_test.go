package ds

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMakeChunks(t *testing.T) {
	assert.Equal(t, [][]int{{1, 2}, {3, 4}, {5}}, MakeChunks([]int{1, 2, 3, 4, 5}, 2))
	assert.Equal(t, [][]int{{1, 2, 3}}, MakeChunks([]int{1, 2, 3}, 3))
	assert.Empty(t, MakeChunks([]int{}, 7))
	assert.Len(t, MakeChunks(make([]byte, 56), 7), 8)
}
